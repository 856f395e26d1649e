package seed

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/config"
)

func TestCreateDefaultData(t *testing.T) {
	campus := services.NewCampus(models.CollegeInfo{Name: "Test College"}, config.CampusDelays{}, zerolog.Nop())

	fx, err := CreateDefaultData(campus, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, CreateDefaultOrganisations(campus, fx))

	assert.Equal(t, 3, campus.Repos.StudentRepository.Len())
	assert.Equal(t, 2, campus.Repos.FacultyRepository.Len())
	assert.Len(t, campus.Departments(), len(DepartmentNames))
	assert.Len(t, campus.Courses(), 3)

	cse, err := campus.Department("D01")
	require.NoError(t, err)
	assert.Equal(t, "Computer Science and Engineering", cse.Name)
	require.Len(t, cse.Students(), 1)
	assert.Equal(t, "S101", cse.Students()[0].ID)
	require.Len(t, cse.Faculty(), 1)

	hostel, err := campus.Hostel(HostelName)
	require.NoError(t, err)
	assert.Equal(t, []string{"101", "102"}, hostel.Rooms())

	assert.Equal(t, models.BookStock{Rentable: 2, NonRentable: 1}, campus.Library.Books()["Python Programming"])

	canteen, err := campus.Canteen(CanteenName)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Chowmein": 40, "Coffee": 20}, canteen.Menu())

	club, err := campus.Club(ClubName)
	require.NoError(t, err)
	assert.Equal(t, fx.S1, club.Treasurer())
	assert.Equal(t, fx.S2, club.Secretary())

	_, err = campus.Society(SocietyName)
	assert.NoError(t, err)
}
