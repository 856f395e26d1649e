package repositories

import (
	"sort"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// StudentRepository is the student database, keyed by student ID
type StudentRepository struct {
	students map[string]*models.Student
}

// NewStudentRepository creates an empty student database
func NewStudentRepository() *StudentRepository {
	return &StudentRepository{students: make(map[string]*models.Student)}
}

// Get returns the stored student. The pointer is shared: changing Fees on it
// changes the database.
func (r *StudentRepository) Get(id string) (*models.Student, bool) {
	student, ok := r.students[id]
	return student, ok
}

// Put stores the student under its ID, replacing any previous record
func (r *StudentRepository) Put(student *models.Student) {
	r.students[student.ID] = student
}

// Exists reports whether a student with this ID is stored
func (r *StudentRepository) Exists(id string) bool {
	_, ok := r.students[id]
	return ok
}

// Delete removes the student and reports whether it was present
func (r *StudentRepository) Delete(id string) bool {
	if _, ok := r.students[id]; !ok {
		return false
	}
	delete(r.students, id)
	return true
}

// All returns every student ordered by ID
func (r *StudentRepository) All() []*models.Student {
	out := make([]*models.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored students
func (r *StudentRepository) Len() int {
	return len(r.students)
}
