package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
)

// Department manages a department's courses, students, faculty and fest
type Department struct {
	Entity
	ID       string
	courses  []*models.Course
	students []*models.Student
	faculty  []*models.Faculty
	fest     *models.FestDetails

	studentRepo *repositories.StudentRepository
	facultyRepo *repositories.FacultyRepository
}

// DepartmentInfo is a read-only view of a department
type DepartmentInfo struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Courses  []*models.Course    `json:"courses"`
	Students []*models.Student   `json:"students"`
	Faculty  []*models.Faculty   `json:"faculty"`
	Fest     *models.FestDetails `json:"fest,omitempty"`
}

// NewDepartment creates a department offering the given courses. The
// repositories resolve IDs passed to AddStudentByID and AddFacultyByID.
func NewDepartment(id, name string, courses []*models.Course, studentRepo *repositories.StudentRepository, facultyRepo *repositories.FacultyRepository, lgr zerolog.Logger) *Department {
	return &Department{
		Entity:      newEntity("Department", name, lgr),
		ID:          id,
		courses:     append([]*models.Course(nil), courses...),
		studentRepo: studentRepo,
		facultyRepo: facultyRepo,
	}
}

// Courses returns the courses offered
func (d *Department) Courses() []*models.Course {
	return append([]*models.Course(nil), d.courses...)
}

// Students returns the enrolled students in enrollment order
func (d *Department) Students() []*models.Student {
	return append([]*models.Student(nil), d.students...)
}

// Faculty returns the department's faculty in joining order
func (d *Department) Faculty() []*models.Faculty {
	return append([]*models.Faculty(nil), d.faculty...)
}

// AddStudent enrolls a student record. The student does not have to exist in
// the student database.
func (d *Department) AddStudent(student *models.Student) models.Outcome {
	for _, s := range d.students {
		if s.ID == student.ID {
			return d.report(models.NewOutcome(models.OutcomeAlreadyPresent, "Student %s already enrolled in %s", student.ID, d.Name))
		}
	}
	d.students = append(d.students, student)
	return d.report(models.NewOutcome(models.OutcomeOK, "Student %s enrolled in %s", student.ID, d.Name))
}

// AddStudentByID enrolls a student taken from the student database
func (d *Department) AddStudentByID(studentID string) models.Outcome {
	student, ok := d.studentRepo.Get(studentID)
	if !ok {
		return d.report(models.NewOutcome(models.OutcomeNotFound, "Student %s not found in database", studentID))
	}
	return d.AddStudent(student)
}

// AddFaculty attaches a faculty member
func (d *Department) AddFaculty(f *models.Faculty) models.Outcome {
	for _, existing := range d.faculty {
		if existing.ID == f.ID {
			return d.report(models.NewOutcome(models.OutcomeAlreadyPresent, "Faculty %s already in %s", f.ID, d.Name))
		}
	}
	d.faculty = append(d.faculty, f)
	return d.report(models.NewOutcome(models.OutcomeOK, "Faculty %s joined %s", f.ID, d.Name))
}

// AddFacultyByID attaches a faculty member taken from the faculty database
func (d *Department) AddFacultyByID(facultyID string) models.Outcome {
	f, ok := d.facultyRepo.Get(facultyID)
	if !ok {
		return d.report(models.NewOutcome(models.OutcomeNotFound, "Faculty %s not found in database", facultyID))
	}
	return d.AddFaculty(f)
}

// OrganiseFest records the fest, replacing any earlier one
func (d *Department) OrganiseFest(fest models.FestDetails) models.Outcome {
	fest.Members = append([]string(nil), fest.Members...)
	d.fest = &fest
	return d.report(models.NewOutcome(models.OutcomeOK, "Organised %s on %s at %s", fest.Name, fest.Date, fest.Location))
}

// Fest returns the organised fest, if any
func (d *Department) Fest() (models.FestDetails, bool) {
	if d.fest == nil {
		return models.FestDetails{}, false
	}
	return *d.fest, true
}

// Info returns the department view
func (d *Department) Info() DepartmentInfo {
	info := DepartmentInfo{
		ID:       d.ID,
		Name:     d.Name,
		Courses:  d.Courses(),
		Students: d.Students(),
		Faculty:  d.Faculty(),
	}
	if fest, ok := d.Fest(); ok {
		info.Fest = &fest
	}
	return info
}
