package demo

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/config"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/seed"
)

func newSeededCampus(t *testing.T, delays config.CampusDelays) (*services.Campus, *seed.Fixture) {
	t.Helper()
	lgr := zerolog.Nop()
	campus := services.NewCampus(models.CollegeInfo{Name: "Test College", Address: "Test Road"}, delays, lgr)
	fx, err := seed.CreateDefaultData(campus, lgr)
	require.NoError(t, err)
	require.NoError(t, seed.CreateDefaultOrganisations(campus, fx))
	return campus, fx
}

func TestRun_EndState(t *testing.T) {
	lgr := zerolog.Nop()
	campus, fx := newSeededCampus(t, config.CampusDelays{})
	seededClub, err := campus.Club(seed.ClubName)
	require.NoError(t, err)
	seededSociety, err := campus.Society(seed.SocietyName)
	require.NoError(t, err)

	require.NoError(t, Run(context.Background(), campus, fx, lgr))

	t.Run("fees", func(t *testing.T) {
		assert.Equal(t, int64(25500), fx.S1.Fees)
		assert.Equal(t, int64(12000), fx.S2.Fees)
		assert.Equal(t, int64(15500), fx.S3.Fees)
	})

	t.Run("hostel room vacated", func(t *testing.T) {
		h, err := campus.Hostel(seed.HostelName)
		require.NoError(t, err)
		assert.Empty(t, h.Roommates("101"))
		assert.Equal(t, []string{"102"}, h.Rooms())
	})

	t.Run("library", func(t *testing.T) {
		books := campus.Library.Books()
		assert.Equal(t, 2, books["Python Programming"].Rentable)
		assert.Equal(t, 3, books["Quantum Physics"].Rentable)
		assert.Equal(t, 2, books["Artificial Intelligence"].NonRentable)

		stock, ok := campus.Repos.LibraryRepository.Get("Python Programming")
		require.True(t, ok)
		assert.Equal(t, 2, stock.Rentable)
	})

	t.Run("club", func(t *testing.T) {
		club, err := campus.Club(seed.ClubName)
		require.NoError(t, err)
		assert.Same(t, seededClub, club)
		assert.True(t, club.IsMember(fx.S1.ID))
		assert.False(t, club.IsMember(fx.S2.ID))
		assert.Equal(t, fx.S3, club.Secretary())
		assert.Contains(t, club.Instruments(), "DJ Console")
	})

	t.Run("society", func(t *testing.T) {
		sae, err := campus.Society(seed.SocietyName)
		require.NoError(t, err)
		assert.Same(t, seededSociety, sae)
		assert.Equal(t, "Dr. Rakesh Kumar", sae.Head())
	})

	t.Run("canteen menu shared with the database", func(t *testing.T) {
		want := map[string]int64{"Chowmein": 40, "Coffee": 20, "Pizza": 80, "Sandwich": 30}
		canteen, err := campus.Canteen(seed.CanteenName)
		require.NoError(t, err)
		assert.Equal(t, want, canteen.Menu())

		stored, ok := campus.Repos.CanteenRepository.Get(seed.CanteenName)
		require.True(t, ok)
		assert.Equal(t, want, stored)
	})

	t.Run("grades", func(t *testing.T) {
		grades, ok := campus.Academic.Grades(fx.S1.ID)
		require.True(t, ok)
		assert.Equal(t, models.SemesterGrades{"Data Structures": "A", "OOP": "B+", "Signals": "A"}, grades[2][1])
	})

	t.Run("incubator", func(t *testing.T) {
		info := campus.NNF.Info()
		assert.Equal(t, "Mr. Rajeev Tiwari", info.ChiefDirector)
		assert.Equal(t, []string{"GreenTech Solutions", "EduSpark"}, info.Startups)
		assert.Empty(t, info.Events.Past)
		assert.Empty(t, info.Events.Upcoming)
	})

	t.Run("fest", func(t *testing.T) {
		cse, err := campus.Department("Computer Science and Engineering")
		require.NoError(t, err)
		fest, ok := cse.Fest()
		require.True(t, ok)
		assert.Equal(t, "TechX", fest.Name)
	})
}

func TestRun_Cancelled(t *testing.T) {
	lgr := zerolog.Nop()
	campus, fx := newSeededCampus(t, config.CampusDelays{HostelFee: 1 << 40})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Run(ctx, campus, fx, lgr)
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, err.Error(), "hostel")
}

func TestRun_RequiresSeededClub(t *testing.T) {
	lgr := zerolog.Nop()
	campus := services.NewCampus(models.CollegeInfo{Name: "Test College"}, config.CampusDelays{}, lgr)
	fx, err := seed.CreateDefaultData(campus, lgr)
	require.NoError(t, err)

	err = Run(context.Background(), campus, fx, lgr)
	require.ErrorIs(t, err, apperrors.ErrClubNotFound)
	_, err = campus.Club(seed.ClubName)
	assert.ErrorIs(t, err, apperrors.ErrClubNotFound)
}
