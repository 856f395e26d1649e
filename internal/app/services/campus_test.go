package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

func TestCampus_Records(t *testing.T) {
	campus := newTestCampus(t)
	amit := newTestStudent("S1", "Amit", "CSE")

	assert.Equal(t, models.OutcomeCreated, campus.AddStudent(amit).Status)
	assert.Equal(t, models.OutcomeAlreadyPresent, campus.AddStudent(newTestStudent("S1", "Other", "ME")).Status)

	got, err := campus.Student("S1")
	require.NoError(t, err)
	assert.Equal(t, "Amit", got.Name)

	_, err = campus.Student("S404")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)

	f := &models.Faculty{ID: "F1", Name: "Dr. Singh", Department: "CSE"}
	assert.Equal(t, models.OutcomeCreated, campus.AddFaculty(f).Status)
	assert.Equal(t, models.OutcomeAlreadyPresent, campus.AddFaculty(f).Status)
	_, err = campus.Faculty("F404")
	assert.ErrorIs(t, err, apperrors.ErrFacultyNotFound)
}

func TestCampus_Lookups(t *testing.T) {
	campus := newTestCampus(t)
	require.NotNil(t, campus.Library)
	assert.Equal(t, DefaultLibraryName, campus.Library.Name)

	campus.AddDepartment("D01", "CSE", nil)
	byID, err := campus.Department("D01")
	require.NoError(t, err)
	byName, err := campus.Department("CSE")
	require.NoError(t, err)
	assert.Same(t, byID, byName)

	_, err = campus.Department("D99")
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	_, err = campus.AddClub("Chess Club", nil, nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	_, err = campus.Club("Chess Club")
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)

	_, err = campus.Hostel("Nowhere")
	assert.ErrorIs(t, err, apperrors.ErrHostelNotFound)
	_, err = campus.Canteen("Nowhere")
	assert.ErrorIs(t, err, apperrors.ErrCanteenNotFound)
	_, err = campus.Society("Nowhere")
	assert.ErrorIs(t, err, apperrors.ErrSocietyNotFound)

	campus.AddCanteen("B", nil)
	campus.AddCanteen("A", nil)
	assert.Equal(t, []string{"A", "B"}, campus.CanteenNames())
}

func TestCampus_WithLockReturnsError(t *testing.T) {
	campus := newTestCampus(t)
	err := campus.WithLock(func() error { return apperrors.ErrConflict })
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestCampus_WithLockContextReleasesLockWhilePaused(t *testing.T) {
	campus := newTestCampus(t)

	paused := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- campus.WithLockContext(context.Background(), func(ctx context.Context) error {
			close(paused)
			return pause(ctx, 500*time.Millisecond)
		})
	}()
	<-paused

	start := time.Now()
	require.NoError(t, campus.WithLock(func() error { return nil }))
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	select {
	case <-done:
		t.Fatal("paused operation finished before the concurrent one")
	default:
	}
	require.NoError(t, <-done)
}

func TestCampus_WithLockContextCancelledPause(t *testing.T) {
	campus := newTestCampus(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := campus.WithLockContext(ctx, func(ctx context.Context) error {
		return pause(ctx, time.Hour)
	})
	require.ErrorIs(t, err, context.Canceled)

	// The lock was taken back and released again
	require.NoError(t, campus.WithLock(func() error { return nil }))
}

func TestSociety(t *testing.T) {
	campus := newTestCampus(t)
	sae := campus.AddSociety("SAE", "Dr. Rakesh Kumar", "")
	assert.Equal(t, "Departmental", sae.Category)
	assert.Equal(t, UncategorizedSociety, campus.AddSociety("Robotics", "Head", "").Category)

	amit := models.MemberRecord{Name: "Amit", StudentID: "S1", Department: "CSE"}
	assert.Equal(t, models.OutcomeOK, sae.AddMember(amit).Status)
	assert.Equal(t, models.OutcomeAlreadyPresent, sae.AddMember(amit).Status)
	assert.Equal(t, models.OutcomeOK, sae.AddVolunteer(amit).Status)
	assert.Equal(t, models.OutcomeAlreadyPresent, sae.AddVolunteer(amit).Status)

	info := sae.Info()
	assert.Len(t, info.Members, 1)
	assert.Len(t, info.Volunteers, 1)

	assert.Equal(t, models.OutcomeNotFound, sae.RemoveMember("S404").Status)
	assert.Equal(t, models.OutcomeOK, sae.RemoveMember("S1").Status)
	assert.Equal(t, models.OutcomeOK, sae.RemoveVolunteer("S1").Status)
	assert.Equal(t, models.OutcomeNotFound, sae.RemoveVolunteer("S1").Status)

	sae.SetHead("Dr. New")
	sae.SetCoordinator("Neha")
	assert.Equal(t, "Dr. New", sae.Head())
	assert.Equal(t, "Neha", sae.Coordinator())
}

func TestDepartment(t *testing.T) {
	campus := newTestCampus(t)
	dept := campus.AddDepartment("D01", "CSE", []*models.Course{{ID: "C01", Name: "B.Tech"}})
	amit := newTestStudent("S1", "Amit", "CSE")
	campus.AddStudent(amit)
	campus.AddFaculty(&models.Faculty{ID: "F1", Name: "Dr. Singh", Department: "CSE"})

	assert.Equal(t, models.OutcomeOK, dept.AddStudentByID("S1").Status)
	assert.Equal(t, models.OutcomeAlreadyPresent, dept.AddStudent(amit).Status)
	assert.Equal(t, models.OutcomeNotFound, dept.AddStudentByID("S404").Status)
	assert.Len(t, dept.Students(), 1)

	assert.Equal(t, models.OutcomeOK, dept.AddFacultyByID("F1").Status)
	assert.Equal(t, models.OutcomeAlreadyPresent, dept.AddFacultyByID("F1").Status)
	assert.Equal(t, models.OutcomeNotFound, dept.AddFacultyByID("F404").Status)

	_, ok := dept.Fest()
	assert.False(t, ok)
	dept.OrganiseFest(models.FestDetails{Name: "TechX", Date: "20 Aug 2025", Location: "Auditorium", Budget: 50000})
	fest, ok := dept.Fest()
	require.True(t, ok)
	assert.Equal(t, "TechX", fest.Name)
	assert.NotNil(t, dept.Info().Fest)
}

func TestAccountsDepartment(t *testing.T) {
	accounts := NewAccountsDepartment(DefaultAccountsName, newTestCampus(t).Logger())
	amit := newTestStudent("S1", "Amit", "CSE")
	amit.Fees = 15500

	first, out := accounts.PayFees(amit, 10000)
	assert.Equal(t, models.OutcomeOK, out.Status)
	second, _ := accounts.PayFees(amit, 2000)

	assert.Equal(t, int64(27500), amit.Fees)
	last, ok := accounts.LastPayment("S1")
	require.True(t, ok)
	assert.Equal(t, int64(2000), last)

	receipts := accounts.Receipts("S1")
	require.Len(t, receipts, 2)
	assert.Equal(t, first.ID, receipts[0].ID)
	assert.Equal(t, second.ID, receipts[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, accounts.Receipts("S404"))
}
