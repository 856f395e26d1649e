package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// DefaultNNFName is the incubator name used when none is given
const DefaultNNFName = "Navchar Navyug Foundation"

// NNF is the campus incubator: director, startups and events
type NNF struct {
	Entity
	chiefDirector  string
	startups       []string
	pastEvents     []string
	upcomingEvents []string
}

// NNFEvents lists the incubator's events
type NNFEvents struct {
	Past     []string `json:"past"`
	Upcoming []string `json:"upcoming"`
}

// NNFInfo is a read-only view of the incubator
type NNFInfo struct {
	Name          string    `json:"name"`
	ChiefDirector string    `json:"chiefDirector,omitempty"`
	Startups      []string  `json:"startups"`
	Events        NNFEvents `json:"events"`
}

// NewNNF creates the incubator; an empty name falls back to DefaultNNFName
func NewNNF(name string, lgr zerolog.Logger) *NNF {
	if name == "" {
		name = DefaultNNFName
	}
	return &NNF{Entity: newEntity("NNF", name, lgr)}
}

// ChiefDirector returns the director, empty when none is assigned
func (n *NNF) ChiefDirector() string { return n.chiefDirector }

// SetChiefDirector assigns or changes the director
func (n *NNF) SetChiefDirector(name string) models.Outcome {
	action := "changed"
	if n.chiefDirector == "" {
		action = "assigned"
	}
	n.chiefDirector = name
	return n.report(models.NewOutcome(models.OutcomeOK, "Chief Director %s: %s", action, name))
}

func (n *NNF) AddStartup(name string) models.Outcome {
	n.startups = append(n.startups, name)
	return n.report(models.NewOutcome(models.OutcomeOK, "Startup '%s' added to Incubation Hub", name))
}

func (n *NNF) Startups() []string {
	return append([]string{}, n.startups...)
}

func (n *NNF) AddPastEvent(event string) models.Outcome {
	n.pastEvents = append(n.pastEvents, event)
	return n.report(models.NewOutcome(models.OutcomeOK, "Past event added: %s", event))
}

func (n *NNF) ScheduleEvent(event string) models.Outcome {
	n.upcomingEvents = append(n.upcomingEvents, event)
	return n.report(models.NewOutcome(models.OutcomeOK, "Upcoming event scheduled: %s", event))
}

// RemovePastEvent removes the first matching past event
func (n *NNF) RemovePastEvent(event string) models.Outcome {
	var removed bool
	n.pastEvents, removed = removeFirst(n.pastEvents, event)
	if !removed {
		return n.report(models.NewOutcome(models.OutcomeNotFound, "Past event not found: %s", event))
	}
	return n.report(models.NewOutcome(models.OutcomeOK, "Past event removed: %s", event))
}

// RemoveUpcomingEvent removes the first matching upcoming event
func (n *NNF) RemoveUpcomingEvent(event string) models.Outcome {
	var removed bool
	n.upcomingEvents, removed = removeFirst(n.upcomingEvents, event)
	if !removed {
		return n.report(models.NewOutcome(models.OutcomeNotFound, "Upcoming event not found: %s", event))
	}
	return n.report(models.NewOutcome(models.OutcomeOK, "Upcoming event removed: %s", event))
}

func (n *NNF) Events() NNFEvents {
	return NNFEvents{
		Past:     append([]string{}, n.pastEvents...),
		Upcoming: append([]string{}, n.upcomingEvents...),
	}
}

func (n *NNF) Info() NNFInfo {
	return NNFInfo{
		Name:          n.Name,
		ChiefDirector: n.chiefDirector,
		Startups:      n.Startups(),
		Events:        n.Events(),
	}
}

func removeFirst(items []string, item string) ([]string, bool) {
	for i, existing := range items {
		if existing == item {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}
