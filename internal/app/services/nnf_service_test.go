package services

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/yigit/collegeadmin/internal/app/models"
)

func TestNNF(t *testing.T) {
	n := NewNNF("", zerolog.Nop())
	assert.Equal(t, DefaultNNFName, n.Name)

	assert.Contains(t, n.SetChiefDirector("Mr. Rajeev Tiwari").Message, "assigned")
	assert.Contains(t, n.SetChiefDirector("Dr. Meera Rao").Message, "changed")
	assert.Equal(t, "Dr. Meera Rao", n.ChiefDirector())

	n.AddStartup("GreenTech Solutions")
	n.AddStartup("EduSpark")
	n.AddPastEvent("Hackathon 2023")
	n.ScheduleEvent("Startup Meet 2025")

	assert.Equal(t, models.OutcomeOK, n.RemovePastEvent("Hackathon 2023").Status)
	assert.Equal(t, models.OutcomeNotFound, n.RemovePastEvent("Hackathon 2023").Status)
	assert.Equal(t, models.OutcomeOK, n.RemoveUpcomingEvent("Startup Meet 2025").Status)
	assert.Equal(t, models.OutcomeNotFound, n.RemoveUpcomingEvent("Nope").Status)

	info := n.Info()
	assert.Equal(t, []string{"GreenTech Solutions", "EduSpark"}, info.Startups)
	assert.Empty(t, info.Events.Past)
	assert.Empty(t, info.Events.Upcoming)
}
