package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
)

func newTestLibrary() *Library {
	return NewLibrary("Central Library", map[string]models.BookStock{
		"Python Programming": {Rentable: 2, NonRentable: 1},
	}, zerolog.Nop())
}

func TestLibrary_IssueAndReturn(t *testing.T) {
	lib := newTestLibrary()
	student := newTestStudent("S1", "Amit", "CSE")

	out := lib.IssueBook("Python Programming", student)
	assert.Equal(t, models.OutcomeOK, out.Status)
	assert.Equal(t, 1, lib.Books()["Python Programming"].Rentable)

	out, err := lib.ReturnBook(context.Background(), "Python Programming", student)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, out.Status)
	assert.Equal(t, models.BookStock{Rentable: 2, NonRentable: 1}, lib.Books()["Python Programming"])
}

func TestLibrary_IssueWithoutStock(t *testing.T) {
	lib := NewLibrary("Central Library", map[string]models.BookStock{
		"Digital Logic": {Rentable: 0, NonRentable: 2},
	}, zerolog.Nop())
	student := newTestStudent("S1", "Amit", "CSE")

	out := lib.IssueBook("Digital Logic", student)
	assert.Equal(t, models.OutcomeInsufficientStock, out.Status)
	assert.Equal(t, models.BookStock{NonRentable: 2}, lib.Books()["Digital Logic"])

	out = lib.IssueBook("Unknown", student)
	assert.Equal(t, models.OutcomeNotFound, out.Status)
	_, exists := lib.Books()["Unknown"]
	assert.False(t, exists)
}

func TestLibrary_ReturnUnknownTitle(t *testing.T) {
	lib := newTestLibrary()

	out, err := lib.ReturnBook(context.Background(), "Compilers", newTestStudent("S1", "Amit", "CSE"))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeCreated, out.Status)
	assert.Equal(t, models.BookStock{Rentable: 1, NonRentable: 0}, lib.Books()["Compilers"])
}

func TestLibrary_ReturnUnknownTitleCancelled(t *testing.T) {
	lib := newTestLibrary()
	lib.SetShelvingDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lib.ReturnBook(ctx, "Compilers", newTestStudent("S1", "Amit", "CSE"))
	require.ErrorIs(t, err, context.Canceled)
	_, exists := lib.Books()["Compilers"]
	assert.False(t, exists)
}

func TestLibrary_ReturnUnknownTitleShelvedDuringWait(t *testing.T) {
	lib := newTestLibrary()
	lib.SetShelvingDelay(time.Millisecond)

	// Another request stocks the title while the lock is released
	ctx := withReleaser(context.Background(), func(wait func() error) error {
		lib.AddRentableBook("Compilers", 2)
		return wait()
	})

	out, err := lib.ReturnBook(ctx, "Compilers", newTestStudent("S1", "Amit", "CSE"))
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, out.Status)
	assert.Equal(t, models.BookStock{Rentable: 3}, lib.Books()["Compilers"])
}

func TestLibrary_Stock(t *testing.T) {
	lib := newTestLibrary()

	assert.Equal(t, models.OutcomeOK, lib.AddRentableBook("Python Programming", 3).Status)
	assert.Equal(t, models.OutcomeCreated, lib.AddNonRentableBook("Artificial Intelligence", 2).Status)
	assert.Equal(t, models.OutcomeInsufficientStock, lib.RemoveRentableBook("Python Programming", 10).Status)
	assert.Equal(t, models.OutcomeNotFound, lib.RemoveNonRentableBook("Missing", 1).Status)
	assert.Equal(t, models.OutcomeOK, lib.RemoveNonRentableBook("Artificial Intelligence", 2).Status)

	books := lib.Books()
	assert.Equal(t, map[string]int{"Python Programming": 5}, RentableBooks(books))
	assert.Equal(t, map[string]int{"Python Programming": 1}, NonRentableBooks(books))
}

func TestLibrary_UpdateDBSharesEntries(t *testing.T) {
	lib := newTestLibrary()
	repo := repositories.NewLibraryRepository()

	lib.UpdateDB(repo)
	lib.IssueBook("Python Programming", newTestStudent("S1", "Amit", "CSE"))

	stock, ok := repo.Get("Python Programming")
	require.True(t, ok)
	assert.Equal(t, 1, stock.Rentable)
}
