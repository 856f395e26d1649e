package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

// Default names of the campus-wide desks
const (
	DefaultLibraryName  = "Central Library"
	DefaultAccountsName = "Accounts"
	DefaultAcademicName = "Academic Block"
)

// Campus groups every manager of one college around shared databases.
// Managers are not safe for concurrent use; callers that share a Campus
// between goroutines go through WithLock.
type Campus struct {
	mu sync.Mutex

	College models.CollegeInfo
	Repos   *repositories.Repositories

	Library  *Library
	Accounts *AccountsDepartment
	Academic *Academic
	NNF      *NNF

	courses     map[string]*models.Course
	departments map[string]*Department
	clubs       map[string]*Club
	societies   map[string]*Society
	hostels     map[string]*Hostel
	canteens    map[string]*Canteen

	delays config.CampusDelays
	logger zerolog.Logger
}

// NewCampus creates a campus with empty databases and the campus-wide desks
func NewCampus(college models.CollegeInfo, delays config.CampusDelays, lgr zerolog.Logger) *Campus {
	c := &Campus{
		College:     college,
		Repos:       repositories.NewRepositories(),
		Accounts:    NewAccountsDepartment(DefaultAccountsName, lgr),
		Academic:    NewAcademic(DefaultAcademicName, lgr),
		NNF:         NewNNF(DefaultNNFName, lgr),
		courses:     make(map[string]*models.Course),
		departments: make(map[string]*Department),
		clubs:       make(map[string]*Club),
		societies:   make(map[string]*Society),
		hostels:     make(map[string]*Hostel),
		canteens:    make(map[string]*Canteen),
		delays:      delays,
		logger:      lgr,
	}
	c.UseLibrary(DefaultLibraryName, nil)
	return c
}

// WithLock runs fn while holding the campus lock
func (c *Campus) WithLock(fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn()
}

// WithLockContext runs fn while holding the campus lock. The desk delays
// taken through the context fn receives drop the lock while they wait, so
// other requests are served in the meantime.
func (c *Campus) WithLockContext(ctx context.Context, fn func(ctx context.Context) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return fn(withReleaser(ctx, c.release))
}

func (c *Campus) release(wait func() error) error {
	c.mu.Unlock()
	defer c.mu.Lock()
	return wait()
}

// Info logs and returns the college line
func (c *Campus) Info() models.CollegeInfo {
	c.logger.Info().Msg(c.College.String())
	return c.College
}

// Logger returns the campus logger
func (c *Campus) Logger() zerolog.Logger {
	return c.logger
}

// UseLibrary replaces the library with one holding the given stock
func (c *Campus) UseLibrary(name string, books map[string]models.BookStock) *Library {
	c.Library = NewLibrary(name, books, c.logger)
	c.Library.SetShelvingDelay(c.delays.LibraryShelving)
	return c.Library
}

// AddCourse registers a course
func (c *Campus) AddCourse(course *models.Course) {
	c.courses[course.ID] = course
}

// Courses returns the registered courses ordered by ID
func (c *Campus) Courses() []*models.Course {
	out := make([]*models.Course, 0, len(c.courses))
	for _, course := range c.courses {
		out = append(out, course)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddStudent stores a student in the student database
func (c *Campus) AddStudent(student *models.Student) models.Outcome {
	if c.Repos.StudentRepository.Exists(student.ID) {
		c.logger.Warn().Str("student_id", student.ID).Msg("Student already in database")
		return models.NewOutcome(models.OutcomeAlreadyPresent, "Student %s already in database", student.ID)
	}
	c.Repos.StudentRepository.Put(student)
	c.logger.Info().Str("student_id", student.ID).Msg("Student added to database")
	return models.NewOutcome(models.OutcomeCreated, "Student %s added to database", student.ID)
}

// Student looks a student up in the student database
func (c *Campus) Student(id string) (*models.Student, error) {
	student, ok := c.Repos.StudentRepository.Get(id)
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, apperrors.ErrStudentNotFound)
	}
	return student, nil
}

// AddFaculty stores a faculty member in the faculty database
func (c *Campus) AddFaculty(f *models.Faculty) models.Outcome {
	if c.Repos.FacultyRepository.Exists(f.ID) {
		c.logger.Warn().Str("faculty_id", f.ID).Msg("Faculty already in database")
		return models.NewOutcome(models.OutcomeAlreadyPresent, "Faculty %s already in database", f.ID)
	}
	c.Repos.FacultyRepository.Put(f)
	c.logger.Info().Str("faculty_id", f.ID).Msg("Faculty added to database")
	return models.NewOutcome(models.OutcomeCreated, "Faculty %s added to database", f.ID)
}

// Faculty looks a faculty member up in the faculty database
func (c *Campus) Faculty(id string) (*models.Faculty, error) {
	f, ok := c.Repos.FacultyRepository.Get(id)
	if !ok {
		return nil, fmt.Errorf("faculty %s: %w", id, apperrors.ErrFacultyNotFound)
	}
	return f, nil
}

// AddDepartment registers a department offering the given courses
func (c *Campus) AddDepartment(id, name string, courses []*models.Course) *Department {
	d := NewDepartment(id, name, courses, c.Repos.StudentRepository, c.Repos.FacultyRepository, c.logger)
	c.departments[id] = d
	return d
}

// Department looks a department up by ID or by name
func (c *Campus) Department(key string) (*Department, error) {
	if d, ok := c.departments[key]; ok {
		return d, nil
	}
	for _, d := range c.departments {
		if d.Name == key {
			return d, nil
		}
	}
	return nil, fmt.Errorf("department %s: %w", key, apperrors.ErrDepartmentNotFound)
}

// Departments returns every department ordered by ID
func (c *Campus) Departments() []*Department {
	out := make([]*Department, 0, len(c.departments))
	for _, d := range c.departments {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AddClub creates and registers a club whose members are looked up in the
// student database
func (c *Campus) AddClub(name string, treasurer, secretary *models.Student, members map[string]*models.Student) (*Club, error) {
	club, err := NewClub(name, treasurer, secretary, members, c.Repos.StudentRepository, c.logger)
	if err != nil {
		return nil, err
	}
	c.clubs[name] = club
	return club, nil
}

func (c *Campus) Club(name string) (*Club, error) {
	club, ok := c.clubs[name]
	if !ok {
		return nil, fmt.Errorf("club %s: %w", name, apperrors.ErrClubNotFound)
	}
	return club, nil
}

// ClubNames returns the registered club names in order
func (c *Campus) ClubNames() []string {
	return sortedKeys(c.clubs)
}

func (c *Campus) AddSociety(name, head, coordinator string) *Society {
	s := NewSociety(name, head, coordinator, c.logger)
	c.societies[name] = s
	return s
}

func (c *Campus) Society(name string) (*Society, error) {
	s, ok := c.societies[name]
	if !ok {
		return nil, fmt.Errorf("society %s: %w", name, apperrors.ErrSocietyNotFound)
	}
	return s, nil
}

func (c *Campus) SocietyNames() []string {
	return sortedKeys(c.societies)
}

// AddHostel registers a hostel paced by the configured fee delay
func (c *Campus) AddHostel(name string, rooms map[string][]*models.Student) *Hostel {
	h := NewHostel(name, rooms, c.logger)
	h.SetChargeDelay(c.delays.HostelFee)
	c.hostels[name] = h
	return h
}

func (c *Campus) Hostel(name string) (*Hostel, error) {
	h, ok := c.hostels[name]
	if !ok {
		return nil, fmt.Errorf("hostel %s: %w", name, apperrors.ErrHostelNotFound)
	}
	return h, nil
}

func (c *Campus) HostelNames() []string {
	return sortedKeys(c.hostels)
}

// AddCanteen registers a canteen paced by the configured request delay
func (c *Campus) AddCanteen(name string, menu map[string]int64) *Canteen {
	cn := NewCanteen(name, menu, c.logger)
	cn.SetRequestDelay(c.delays.CanteenRequest)
	c.canteens[name] = cn
	return cn
}

func (c *Campus) Canteen(name string) (*Canteen, error) {
	cn, ok := c.canteens[name]
	if !ok {
		return nil, fmt.Errorf("canteen %s: %w", name, apperrors.ErrCanteenNotFound)
	}
	return cn, nil
}

func (c *Campus) CanteenNames() []string {
	return sortedKeys(c.canteens)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
