package repositories

import (
	"sort"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// FacultyRepository is the faculty database, keyed by faculty ID
type FacultyRepository struct {
	faculty map[string]*models.Faculty
}

// NewFacultyRepository creates an empty faculty database
func NewFacultyRepository() *FacultyRepository {
	return &FacultyRepository{faculty: make(map[string]*models.Faculty)}
}

// Get returns the stored faculty member
func (r *FacultyRepository) Get(id string) (*models.Faculty, bool) {
	f, ok := r.faculty[id]
	return f, ok
}

// Put stores the faculty member under its ID
func (r *FacultyRepository) Put(f *models.Faculty) {
	r.faculty[f.ID] = f
}

// Exists reports whether a faculty member with this ID is stored
func (r *FacultyRepository) Exists(id string) bool {
	_, ok := r.faculty[id]
	return ok
}

// All returns every faculty member ordered by ID
func (r *FacultyRepository) All() []*models.Faculty {
	out := make([]*models.Faculty, 0, len(r.faculty))
	for _, f := range r.faculty {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Len returns the number of stored faculty members
func (r *FacultyRepository) Len() int {
	return len(r.faculty)
}
