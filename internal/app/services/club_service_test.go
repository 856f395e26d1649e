package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

func TestNewClub_UnknownName(t *testing.T) {
	_, err := NewClub("Chess Club", nil, nil, nil, repositories.NewStudentRepository(), zerolog.Nop())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestNewClub_ResolvesCategory(t *testing.T) {
	club, err := NewClub("Dance Club", nil, nil, nil, repositories.NewStudentRepository(), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "Cultural", club.Category)
	assert.Equal(t, []string{"Speakers"}, club.Instruments())
}

func TestClub_InstrumentsAreNotShared(t *testing.T) {
	repo := repositories.NewStudentRepository()
	a, err := NewClub("Coding Club", nil, nil, nil, repo, zerolog.Nop())
	require.NoError(t, err)
	b, err := NewClub("Coding Club", nil, nil, nil, repo, zerolog.Nop())
	require.NoError(t, err)

	a.AddInstrument("Servers")

	assert.Contains(t, a.Instruments(), "Servers")
	assert.NotContains(t, b.Instruments(), "Servers")
	assert.NotContains(t, ClubCategories["Technical"]["Coding Club"], "Servers")
}

func TestClub_Members(t *testing.T) {
	repo := repositories.NewStudentRepository()
	amit := newTestStudent("S1", "Amit", "CSE")
	repo.Put(amit)

	club, err := NewClub("Dance Club", nil, nil, nil, repo, zerolog.Nop())
	require.NoError(t, err)

	t.Run("adds a known student", func(t *testing.T) {
		out := club.AddMember("S1")
		assert.Equal(t, models.OutcomeOK, out.Status)
		assert.True(t, club.IsMember("S1"))
	})

	t.Run("duplicate add leaves the roster unchanged", func(t *testing.T) {
		out := club.AddMember("S1")
		assert.Equal(t, models.OutcomeAlreadyPresent, out.Status)
		assert.Len(t, club.Info().Members, 1)
	})

	t.Run("unknown student is not enrolled", func(t *testing.T) {
		out := club.AddMember("S404")
		assert.Equal(t, models.OutcomeNotFound, out.Status)
		assert.False(t, club.IsMember("S404"))
	})

	t.Run("removing an absent member is a no-op", func(t *testing.T) {
		out := club.RemoveMember("S404")
		assert.Equal(t, models.OutcomeNotFound, out.Status)
		assert.Len(t, club.Info().Members, 1)
	})

	t.Run("removes a member", func(t *testing.T) {
		out := club.RemoveMember("S1")
		assert.Equal(t, models.OutcomeOK, out.Status)
		assert.False(t, club.IsMember("S1"))
	})
}

func TestClub_InstrumentsAndOfficers(t *testing.T) {
	club, err := NewClub("Dance Club", nil, nil, nil, repositories.NewStudentRepository(), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, models.OutcomeOK, club.AddInstrument("DJ Console").Status)
	assert.Equal(t, models.OutcomeAlreadyPresent, club.AddInstrument("DJ Console").Status)
	assert.Equal(t, []string{"Speakers", "DJ Console"}, club.Instruments())

	assert.Equal(t, models.OutcomeNotFound, club.RemoveInstrument("Drums").Status)
	assert.Equal(t, models.OutcomeOK, club.RemoveInstrument("Speakers").Status)
	assert.Equal(t, []string{"DJ Console"}, club.Instruments())

	manish := newTestStudent("S3", "Manish", "ME")
	club.ChangeSecretary(manish)
	club.ChangeTreasurer(manish)
	info := club.Info()
	assert.Equal(t, "Manish", info.Secretary)
	assert.Equal(t, "Manish", info.Treasurer)
}

func TestClub_InfoMarksMissingRecords(t *testing.T) {
	members := map[string]*models.Student{"S9": nil}
	club, err := NewClub("Dance Club", nil, nil, members, repositories.NewStudentRepository(), zerolog.Nop())
	require.NoError(t, err)

	info := club.Info()
	require.Len(t, info.Members, 1)
	assert.True(t, info.Members[0].Invalid)
	assert.Equal(t, "S9", info.Members[0].StudentID)
}
