package repositories

import (
	"github.com/yigit/collegeadmin/internal/app/models"
)

// LibraryRepository is the library database, keyed by book title. Entries
// are shared with the library that wrote them.
type LibraryRepository struct {
	books map[string]*models.BookStock
}

// NewLibraryRepository creates an empty library database
func NewLibraryRepository() *LibraryRepository {
	return &LibraryRepository{books: make(map[string]*models.BookStock)}
}

// Get returns the stock entry of a title
func (r *LibraryRepository) Get(title string) (*models.BookStock, bool) {
	stock, ok := r.books[title]
	return stock, ok
}

// Put stores the stock entry of a title
func (r *LibraryRepository) Put(title string, stock *models.BookStock) {
	r.books[title] = stock
}

// Snapshot returns a copy of every entry
func (r *LibraryRepository) Snapshot() map[string]models.BookStock {
	out := make(map[string]models.BookStock, len(r.books))
	for title, stock := range r.books {
		out[title] = *stock
	}
	return out
}

// Len returns the number of stored titles
func (r *LibraryRepository) Len() int {
	return len(r.books)
}
