package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
)

// Library manages book stock, split into rentable and reference copies
type Library struct {
	Entity
	books         map[string]*models.BookStock
	shelvingDelay time.Duration
}

// NewLibrary creates a library with an optional initial stock
func NewLibrary(name string, books map[string]models.BookStock, lgr zerolog.Logger) *Library {
	l := &Library{
		Entity: newEntity("Library", name, lgr),
		books:  make(map[string]*models.BookStock, len(books)),
	}
	for title, stock := range books {
		s := stock
		l.books[title] = &s
	}
	return l
}

// SetShelvingDelay sets the pause taken when an unknown title is shelved
func (l *Library) SetShelvingDelay(d time.Duration) {
	l.shelvingDelay = d
}

// AddRentableBook adds rentable copies, creating the title if needed
func (l *Library) AddRentableBook(title string, count int) models.Outcome {
	if stock, ok := l.books[title]; ok {
		stock.Rentable += count
		return l.report(models.NewOutcome(models.OutcomeOK, "Added %d rentable copies of %s", count, title))
	}
	l.books[title] = &models.BookStock{Rentable: count}
	return l.report(models.NewOutcome(models.OutcomeCreated, "Added %s with %d rentable copies", title, count))
}

// AddNonRentableBook adds reference copies, creating the title if needed
func (l *Library) AddNonRentableBook(title string, count int) models.Outcome {
	if stock, ok := l.books[title]; ok {
		stock.NonRentable += count
		return l.report(models.NewOutcome(models.OutcomeOK, "Added %d non-rentable copies of %s", count, title))
	}
	l.books[title] = &models.BookStock{NonRentable: count}
	return l.report(models.NewOutcome(models.OutcomeCreated, "Added %s with %d non-rentable copies", title, count))
}

// RemoveRentableBook removes rentable copies
func (l *Library) RemoveRentableBook(title string, count int) models.Outcome {
	stock, ok := l.books[title]
	if !ok {
		return l.report(models.NewOutcome(models.OutcomeNotFound, "Book %s is not available in %s", title, l.Name))
	}
	if stock.Rentable < count {
		return l.report(models.NewOutcome(models.OutcomeInsufficientStock, "Not enough rentable copies of %s in %s", title, l.Name))
	}
	stock.Rentable -= count
	return l.report(models.NewOutcome(models.OutcomeOK, "Removed %d rentable copies of %s", count, title))
}

// RemoveNonRentableBook removes reference copies
func (l *Library) RemoveNonRentableBook(title string, count int) models.Outcome {
	stock, ok := l.books[title]
	if !ok {
		return l.report(models.NewOutcome(models.OutcomeNotFound, "Book %s is not available in %s", title, l.Name))
	}
	if stock.NonRentable < count {
		return l.report(models.NewOutcome(models.OutcomeInsufficientStock, "Not enough non-rentable copies of %s in %s", title, l.Name))
	}
	stock.NonRentable -= count
	return l.report(models.NewOutcome(models.OutcomeOK, "Removed %d non-rentable copies of %s", count, title))
}

// IssueBook lends one rentable copy to the student
func (l *Library) IssueBook(title string, student *models.Student) models.Outcome {
	stock, ok := l.books[title]
	if !ok {
		return l.report(models.NewOutcome(models.OutcomeNotFound, "Book %s is not available in %s", title, l.Name))
	}
	if stock.Rentable <= 0 {
		return l.report(models.NewOutcome(models.OutcomeInsufficientStock, "No rentable copies of %s available in %s", title, l.Name))
	}
	stock.Rentable--
	return l.report(models.NewOutcome(models.OutcomeOK, "Book %s issued to %s", title, student.Name))
}

// ReturnBook puts a rentable copy back. A title the library never held is
// shelved as a new title with one rentable copy.
func (l *Library) ReturnBook(ctx context.Context, title string, student *models.Student) (models.Outcome, error) {
	if stock, ok := l.books[title]; ok {
		stock.Rentable++
		return l.report(models.NewOutcome(models.OutcomeOK, "%s returned by %s", title, student.Name)), nil
	}

	l.logger.Info().Str("title", title).Msg("Updating shelf")
	if err := pause(ctx, l.shelvingDelay); err != nil {
		return models.Outcome{}, fmt.Errorf("shelving %s: %w", title, err)
	}
	// Shelved by someone else during the wait
	if stock, ok := l.books[title]; ok {
		stock.Rentable++
		return l.report(models.NewOutcome(models.OutcomeOK, "%s returned by %s", title, student.Name)), nil
	}
	l.books[title] = &models.BookStock{Rentable: 1}
	return l.report(models.NewOutcome(models.OutcomeCreated, "%s added to %s. Shelf updated", title, l.Name)), nil
}

// UpdateDB writes every title into the library database. The database keeps
// the library's own stock entries, so later changes show up there too.
func (l *Library) UpdateDB(repo *repositories.LibraryRepository) models.Outcome {
	for title, stock := range l.books {
		repo.Put(title, stock)
	}
	return l.report(models.NewOutcome(models.OutcomeOK, "Database updated for %s", l.Name))
}

// Books returns a copy of the stock
func (l *Library) Books() map[string]models.BookStock {
	out := make(map[string]models.BookStock, len(l.books))
	for title, stock := range l.books {
		out[title] = *stock
	}
	return out
}

// RentableBooks returns the titles with rentable copies and their counts
func RentableBooks(stock map[string]models.BookStock) map[string]int {
	out := make(map[string]int)
	for title, s := range stock {
		if s.Rentable > 0 {
			out[title] = s.Rentable
		}
	}
	return out
}

// NonRentableBooks returns the titles with reference copies and their counts
func NonRentableBooks(stock map[string]models.BookStock) map[string]int {
	out := make(map[string]int)
	for title, s := range stock {
		if s.NonRentable > 0 {
			out[title] = s.NonRentable
		}
	}
	return out
}
