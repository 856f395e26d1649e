package services

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// Academic keeps the grade book of every student
type Academic struct {
	Entity
	records map[string]models.GradeBook
}

// NewAcademic creates an academic section with no records
func NewAcademic(name string, lgr zerolog.Logger) *Academic {
	return &Academic{
		Entity:  newEntity("Academic", name, lgr),
		records: make(map[string]models.GradeBook),
	}
}

// AssignGrade sets the student's grade in a subject, creating the year and
// semester as needed. Any faculty member may grade any student.
func (a *Academic) AssignGrade(faculty *models.Faculty, student *models.Student, year, semester int, subject, grade string) models.Outcome {
	if faculty != nil && faculty.Department != student.Branch {
		a.logger.Debug().
			Str("faculty_id", faculty.ID).
			Str("faculty_department", faculty.Department).
			Str("student_branch", student.Branch).
			Msg("Grade assigned outside the faculty's department")
	}

	book, ok := a.records[student.ID]
	if !ok {
		book = make(models.GradeBook)
		a.records[student.ID] = book
	}
	semesters, ok := book[year]
	if !ok {
		semesters = make(models.YearGrades)
		book[year] = semesters
	}
	subjects, ok := semesters[semester]
	if !ok {
		subjects = make(models.SemesterGrades)
		semesters[semester] = subjects
	}
	subjects[subject] = grade

	return a.report(models.NewOutcome(models.OutcomeOK, "Grade assigned to %s in %s (%d year, Sem %d)", student.Name, subject, year, semester))
}

// Grades returns a copy of the student's grade book
func (a *Academic) Grades(studentID string) (models.GradeBook, bool) {
	book, ok := a.records[studentID]
	if !ok {
		a.logger.Info().Str("student_id", studentID).Msg("No records found")
		return nil, false
	}
	return book.Clone(), true
}

// SubjectGrades lists every grade recorded for the subject, ordered by
// student, year and semester
func (a *Academic) SubjectGrades(subject string) []models.SubjectGrade {
	out := []models.SubjectGrade{}
	for studentID, book := range a.records {
		for year, semesters := range book {
			for semester, subjects := range semesters {
				if grade, ok := subjects[subject]; ok {
					out = append(out, models.SubjectGrade{StudentID: studentID, Year: year, Semester: semester, Grade: grade})
				}
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StudentID != out[j].StudentID {
			return out[i].StudentID < out[j].StudentID
		}
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Semester < out[j].Semester
	})
	return out
}

// UpdateGrades replaces the student's whole grade book
func (a *Academic) UpdateGrades(student *models.Student, grades models.GradeBook) models.Outcome {
	a.records[student.ID] = grades.Clone()
	return a.report(models.NewOutcome(models.OutcomeOK, "%s's grades updated", student.Name))
}
