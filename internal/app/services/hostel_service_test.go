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
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

func TestHostel_AddRoomMembersReplacesOccupants(t *testing.T) {
	amit := newTestStudent("S1", "Amit", "CSE")
	riya := newTestStudent("S2", "Riya", "ECE")
	manish := newTestStudent("S3", "Manish", "ME")

	h := NewHostel("Aryabhatt Hostel", map[string][]*models.Student{"101": {amit, riya}}, zerolog.Nop())

	out := h.AddRoomMembers("101", manish)
	assert.Equal(t, models.OutcomeOK, out.Status)
	assert.Equal(t, []*models.Student{manish}, h.Roommates("101"))
}

func TestHostel_VacateRoom(t *testing.T) {
	h := NewHostel("Aryabhatt Hostel", map[string][]*models.Student{"101": {}}, zerolog.Nop())

	assert.Equal(t, models.OutcomeOK, h.VacateRoom("101").Status)
	assert.Empty(t, h.Rooms())
	assert.Empty(t, h.Roommates("101"))
	assert.Equal(t, models.OutcomeNotFound, h.VacateRoom("101").Status)
}

func TestHostel_Charges(t *testing.T) {
	students := repositories.NewStudentRepository()
	amit := newTestStudent("S1", "Amit", "CSE")
	manish := newTestStudent("S3", "Manish", "ME")
	students.Put(amit)
	students.Put(manish)

	h := NewHostel("Aryabhatt Hostel", nil, zerolog.Nop())
	h.AddRoomMembers("101", amit, manish)

	out, err := h.PayFees(context.Background(), "101", 15000, students)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, out.Status)

	out, err = h.Penalty(context.Background(), "101", 500, students)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, out.Status)

	assert.Equal(t, int64(15500), amit.Fees)
	assert.Equal(t, int64(15500), manish.Fees)
}

func TestHostel_ChargeUnallocatedRoom(t *testing.T) {
	h := NewHostel("Aryabhatt Hostel", nil, zerolog.Nop())

	out, err := h.PayFees(context.Background(), "999", 100, repositories.NewStudentRepository())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotAllocated, out.Status)

	out, err = h.Penalty(context.Background(), "999", 100, repositories.NewStudentRepository())
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeNotAllocated, out.Status)
}

func TestHostel_ChargeMissingStudent(t *testing.T) {
	students := repositories.NewStudentRepository()
	amit := newTestStudent("S1", "Amit", "CSE")
	ghost := newTestStudent("S404", "Ghost", "CSE")
	students.Put(amit)

	h := NewHostel("Aryabhatt Hostel", map[string][]*models.Student{"101": {amit, ghost}}, zerolog.Nop())

	_, err := h.PayFees(context.Background(), "101", 1000, students)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrKeyNotFound)
	// Occupants charged before the missing one keep their charge
	assert.Equal(t, int64(1000), amit.Fees)
}

func TestHostel_ChargeCancelledBetweenOccupants(t *testing.T) {
	students := repositories.NewStudentRepository()
	amit := newTestStudent("S1", "Amit", "CSE")
	manish := newTestStudent("S3", "Manish", "ME")
	students.Put(amit)
	students.Put(manish)

	h := NewHostel("Aryabhatt Hostel", map[string][]*models.Student{"101": {amit, manish}}, zerolog.Nop())
	h.SetChargeDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := h.PayFees(ctx, "101", 1000, students)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int64(1000), amit.Fees)
	assert.Equal(t, int64(0), manish.Fees)
}

func TestHostel_ChargeKeepsOccupantsAllocatedAtStart(t *testing.T) {
	students := repositories.NewStudentRepository()
	amit := newTestStudent("S1", "Amit", "CSE")
	manish := newTestStudent("S3", "Manish", "ME")
	riya := newTestStudent("S2", "Riya", "ECE")
	for _, s := range []*models.Student{amit, manish, riya} {
		students.Put(s)
	}

	h := NewHostel("Aryabhatt Hostel", map[string][]*models.Student{"101": {amit, manish}}, zerolog.Nop())
	h.SetChargeDelay(time.Millisecond)

	// The room is reallocated while the lock is released between occupants
	ctx := withReleaser(context.Background(), func(wait func() error) error {
		h.AddRoomMembers("101", riya)
		return wait()
	})

	out, err := h.PayFees(ctx, "101", 1000, students)
	require.NoError(t, err)
	assert.Equal(t, models.OutcomeOK, out.Status)
	assert.Equal(t, int64(1000), amit.Fees)
	assert.Equal(t, int64(1000), manish.Fees)
	assert.Equal(t, int64(0), riya.Fees)
	assert.Equal(t, []*models.Student{riya}, h.Roommates("101"))
}
