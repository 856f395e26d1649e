package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

// Hostel manages room allocation and room-level charges. A room present in
// the map is allocated, even when it has no occupants.
type Hostel struct {
	Entity
	rooms map[string][]*models.Student
	delay time.Duration
}

// NewHostel creates a hostel from an initial room allocation
func NewHostel(name string, rooms map[string][]*models.Student, lgr zerolog.Logger) *Hostel {
	h := &Hostel{
		Entity: newEntity("Hostel", name, lgr),
		rooms:  make(map[string][]*models.Student, len(rooms)),
	}
	for room, occupants := range rooms {
		h.rooms[room] = append([]*models.Student{}, occupants...)
	}
	return h
}

// SetChargeDelay sets the pause between charging two occupants
func (h *Hostel) SetChargeDelay(d time.Duration) {
	h.delay = d
}

// VacateRoom frees the room
func (h *Hostel) VacateRoom(room string) models.Outcome {
	if _, ok := h.rooms[room]; !ok {
		return h.report(models.NewOutcome(models.OutcomeNotFound, "Room %s in %s is not allocated", room, h.Name))
	}
	delete(h.rooms, room)
	return h.report(models.NewOutcome(models.OutcomeOK, "Room %s in %s vacated", room, h.Name))
}

// AddRoomMembers vacates the room and allocates it to the given students.
// Previous occupants are dropped without any conflict check.
func (h *Hostel) AddRoomMembers(room string, students ...*models.Student) models.Outcome {
	delete(h.rooms, room)
	h.rooms[room] = append([]*models.Student{}, students...)

	names := make([]string, 0, len(students))
	for _, s := range students {
		names = append(names, s.Name)
	}
	return h.report(models.NewOutcome(models.OutcomeOK, "Room %s in %s allocated to %v", room, h.Name, names))
}

// Roommates returns the occupants of the room, empty when unallocated
func (h *Hostel) Roommates(room string) []*models.Student {
	occupants := append([]*models.Student{}, h.rooms[room]...)

	names := make([]string, 0, len(occupants))
	for _, s := range occupants {
		names = append(names, s.Name)
	}
	h.logger.Info().Str("room", room).Strs("occupants", names).Msg("Roommates")
	return occupants
}

// Rooms returns the allocated room numbers in order
func (h *Hostel) Rooms() []string {
	rooms := make([]string, 0, len(h.rooms))
	for room := range h.rooms {
		rooms = append(rooms, room)
	}
	sort.Strings(rooms)
	return rooms
}

// PayFees adds amount to the fees of every occupant of the room, as recorded
// in students
func (h *Hostel) PayFees(ctx context.Context, room string, amount int64, students *repositories.StudentRepository) (models.Outcome, error) {
	return h.charge(ctx, room, amount, students, "fee")
}

// Penalty adds a penalty amount to the fees of every occupant of the room
func (h *Hostel) Penalty(ctx context.Context, room string, amount int64, students *repositories.StudentRepository) (models.Outcome, error) {
	return h.charge(ctx, room, amount, students, "penalty")
}

// charge walks the occupants in allocation order, as allocated when the walk
// starts. An occupant missing from students aborts the walk with
// apperrors.ErrKeyNotFound; occupants charged before it keep their charge.
func (h *Hostel) charge(ctx context.Context, room string, amount int64, students *repositories.StudentRepository, reason string) (models.Outcome, error) {
	occupants, ok := h.rooms[room]
	if !ok {
		return h.report(models.NewOutcome(models.OutcomeNotAllocated, "Room %s in %s is not allocated", room, h.Name)), nil
	}
	occupants = append([]*models.Student(nil), occupants...)

	for i, occupant := range occupants {
		if i > 0 {
			if err := pause(ctx, h.delay); err != nil {
				return models.Outcome{}, fmt.Errorf("hostel %s %s interrupted after %d of %d occupants: %w", reason, room, i, len(occupants), err)
			}
		}

		record, ok := students.Get(occupant.ID)
		if !ok {
			h.logger.Error().Str("room", room).Str("student_id", occupant.ID).Msg("Occupant missing from student database")
			return models.Outcome{}, fmt.Errorf("charging %s for room %s: student %s: %w", reason, room, occupant.ID, apperrors.ErrKeyNotFound)
		}
		record.Fees += amount

		h.logger.Info().
			Str("room", room).
			Str("student_id", record.ID).
			Str("reason", reason).
			Int64("amount", amount).
			Int64("fees", record.Fees).
			Msgf("Student %s paid %d to %s in %s", record.Name, amount, room, h.Name)
	}

	return h.report(models.NewOutcome(models.OutcomeOK, "Charged %d %s to %d occupants of room %s in %s", amount, reason, len(occupants), room, h.Name)), nil
}
