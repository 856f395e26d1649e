package seed

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/services"
)

// Names of the seeded campus desks
const (
	HostelName  = "Aryabhatt Hostel"
	CanteenName = "IET Cafeteria"
	ClubName    = "Dance Club"
	SocietyName = "SAE"
)

// DepartmentNames lists the seeded departments in ID order, D01 to D06
var DepartmentNames = []string{
	"Computer Science and Engineering",
	"Electrical Engineering Department",
	"Electronics",
	"Mechanical",
	"Civil",
	"Chemical",
}

// Fixture holds the seeded records the demonstration works with
type Fixture struct {
	BTech, MTech, PhD *models.Course
	S1, S2, S3        *models.Student
	F1, F2            *models.Faculty
}

// CreateDefaultData fills an empty campus with the default courses,
// departments, students, faculty, hostel, library and canteen
func CreateDefaultData(campus *services.Campus, lgr zerolog.Logger) (*Fixture, error) {
	lgr.Info().Msg("Creating default campus data")

	fx := &Fixture{
		BTech: &models.Course{ID: "C01", Name: "B.Tech"},
		MTech: &models.Course{ID: "C02", Name: "M.Tech"},
		PhD:   &models.Course{ID: "C03", Name: "PhD"},
	}
	courses := []*models.Course{fx.BTech, fx.MTech, fx.PhD}
	for _, c := range courses {
		campus.AddCourse(c)
	}

	for i, name := range DepartmentNames {
		campus.AddDepartment(departmentID(i), name, courses)
	}

	fx.S1 = &models.Student{ID: "S101", RollNo: "2021CS101", Name: "Amit Sharma", Year: 2, Course: fx.BTech,
		Branch: "Computer Science and Engineering", Phone: "9000000001", Email: "amit@college.edu"}
	fx.S2 = &models.Student{ID: "S102", RollNo: "2020EC102", Name: "Riya Verma", Year: 3, Course: fx.BTech,
		Branch: "Electronics", Phone: "9000000002", Email: "riya@college.edu"}
	fx.S3 = &models.Student{ID: "S103", RollNo: "2022ME103", Name: "Manish Kumar", Year: 1, Course: fx.BTech,
		Branch: "Mechanical", Phone: "9000000003", Email: "manish@college.edu"}

	fx.F1 = &models.Faculty{ID: "F201", Name: "Dr. Anil Singh", Department: "Computer Science and Engineering",
		Phone: "8000000001", Email: "anil@college.edu"}
	fx.F2 = &models.Faculty{ID: "F202", Name: "Prof. Neha Agarwal", Department: "Electronics",
		Phone: "8000000002", Email: "neha@college.edu"}

	var finalErr error
	for _, s := range []*models.Student{fx.S1, fx.S2, fx.S3} {
		campus.AddStudent(s)
		if err := enrollByBranch(campus, s); err != nil {
			lgr.Error().Err(err).Str("student_id", s.ID).Msg("Error enrolling student")
			finalErr = errors.Join(finalErr, err)
		}
	}
	for _, f := range []*models.Faculty{fx.F1, fx.F2} {
		campus.AddFaculty(f)
		dept, err := campus.Department(f.Department)
		if err != nil {
			lgr.Error().Err(err).Str("faculty_id", f.ID).Msg("Error attaching faculty")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		dept.AddFacultyByID(f.ID)
	}

	campus.AddHostel(HostelName, map[string][]*models.Student{"101": {}, "102": {}})
	campus.UseLibrary(services.DefaultLibraryName, map[string]models.BookStock{
		"Python Programming": {Rentable: 2, NonRentable: 1},
		"Digital Logic":      {Rentable: 1, NonRentable: 2},
	})
	campus.AddCanteen(CanteenName, map[string]int64{"Chowmein": 40, "Coffee": 20})

	if finalErr != nil {
		return nil, finalErr
	}
	lgr.Info().
		Int("students", campus.Repos.StudentRepository.Len()).
		Int("faculty", campus.Repos.FacultyRepository.Len()).
		Int("departments", len(campus.Departments())).
		Msg("Default campus data created")
	return fx, nil
}

// CreateDefaultOrganisations registers the default club and society
func CreateDefaultOrganisations(campus *services.Campus, fx *Fixture) error {
	if _, err := campus.AddClub(ClubName, fx.S1, fx.S2, nil); err != nil {
		return err
	}
	campus.AddSociety(SocietyName, "Dr. Rakesh Kumar", "Neha Agarwal")
	return nil
}

func enrollByBranch(campus *services.Campus, s *models.Student) error {
	dept, err := campus.Department(s.Branch)
	if err != nil {
		return err
	}
	dept.AddStudentByID(s.ID)
	return nil
}

func departmentID(i int) string {
	return fmt.Sprintf("D%02d", i+1)
}
