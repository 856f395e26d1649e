package models

// SemesterGrades maps subject to grade
type SemesterGrades map[string]string

// YearGrades maps semester to its grades
type YearGrades map[int]SemesterGrades

// GradeBook maps year to its semesters; one per student
type GradeBook map[int]YearGrades

// Clone returns a deep copy of the grade book
func (g GradeBook) Clone() GradeBook {
	if g == nil {
		return nil
	}
	out := make(GradeBook, len(g))
	for year, semesters := range g {
		yc := make(YearGrades, len(semesters))
		for sem, subjects := range semesters {
			sc := make(SemesterGrades, len(subjects))
			for subject, grade := range subjects {
				sc[subject] = grade
			}
			yc[sem] = sc
		}
		out[year] = yc
	}
	return out
}

// SubjectGrade is one grade of a subject, located by student, year and semester
type SubjectGrade struct {
	StudentID string `json:"studentId"`
	Year      int    `json:"year"`
	Semester  int    `json:"semester"`
	Grade     string `json:"grade"`
}
