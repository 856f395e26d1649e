package services

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/repositories"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
)

// ClubCategories is the fixed club taxonomy: category to club name to the
// instruments and resources a new club starts with.
var ClubCategories = map[string]map[string][]string{
	"Cultural": {
		"Dance Club":       {"Speakers"},
		"Singing Club":     {"Mic", "Flute", "Tabla", "Microphones", "Guitar", "Electric Guitar", "Keyboard", "Drums"},
		"Drama Club":       {"Props", "Costumes", "Lighting"},
		"Arts Club":        {"Art Supplies", "Canvases", "Paints"},
		"Photography Club": {"Cameras", "Lenses", "Tripods"},
	},
	"Social": {
		"Parmarth":                {"Stationery Kit"},
		"College Media Body Club": {"Cameras", "Mics"},
	},
	"Technical": {
		"Literature Club": {"Journals", "Books"},
		"Coding Club":     {"Laptops", "Monitors", "Keyboards"},
	},
}

// lookupClub resolves a club name to its category and a private copy of its
// starting instruments
func lookupClub(name string) (string, []string, error) {
	for category, clubs := range ClubCategories {
		if instruments, ok := clubs[name]; ok {
			return category, append([]string(nil), instruments...), nil
		}
	}
	return "", nil, apperrors.NewInvalidArgumentError(fmt.Sprintf("club %q not found in predefined categories", name))
}

// Club manages a club's officers, instruments and members
type Club struct {
	Entity
	Category    string
	treasurer   *models.Student
	secretary   *models.Student
	instruments []string
	members     map[string]*models.Student
	students    *repositories.StudentRepository
}

// ClubMember is one line of the club roster
type ClubMember struct {
	StudentID string `json:"studentId"`
	Name      string `json:"name,omitempty"`
	Branch    string `json:"branch,omitempty"`
	RollNo    string `json:"rollNo,omitempty"`
	Invalid   bool   `json:"invalid,omitempty"`
}

// ClubInfo is a read-only view of a club
type ClubInfo struct {
	Name        string       `json:"name"`
	Category    string       `json:"category"`
	Treasurer   string       `json:"treasurer"`
	Secretary   string       `json:"secretary"`
	Instruments []string     `json:"instruments"`
	Members     []ClubMember `json:"members"`
}

// NewClub creates a club. The name must be part of ClubCategories, otherwise
// an apperrors.ErrInvalidArgument error is returned. New members are looked
// up in students.
func NewClub(name string, treasurer, secretary *models.Student, members map[string]*models.Student, students *repositories.StudentRepository, lgr zerolog.Logger) (*Club, error) {
	category, instruments, err := lookupClub(name)
	if err != nil {
		return nil, err
	}

	c := &Club{
		Entity:      newEntity("Club", name, lgr),
		Category:    category,
		treasurer:   treasurer,
		secretary:   secretary,
		instruments: instruments,
		members:     make(map[string]*models.Student, len(members)),
		students:    students,
	}
	for id, s := range members {
		c.members[id] = s
	}
	return c, nil
}

// AddMember enrolls a student found in the student database
func (c *Club) AddMember(studentID string) models.Outcome {
	if _, ok := c.members[studentID]; ok {
		return c.report(models.NewOutcome(models.OutcomeAlreadyPresent, "Student %s is already a member of %s", studentID, c.Name))
	}

	student, ok := c.students.Get(studentID)
	if !ok {
		return c.report(models.NewOutcome(models.OutcomeNotFound, "Student %s not found in database", studentID))
	}

	c.members[studentID] = student
	return c.report(models.NewOutcome(models.OutcomeOK, "Student %s added to %s", studentID, c.Name))
}

// RemoveMember drops a member
func (c *Club) RemoveMember(studentID string) models.Outcome {
	if _, ok := c.members[studentID]; !ok {
		return c.report(models.NewOutcome(models.OutcomeNotFound, "Member %s not found in club", studentID))
	}
	delete(c.members, studentID)
	return c.report(models.NewOutcome(models.OutcomeOK, "Member %s removed from club", studentID))
}

// IsMember reports whether the student is enrolled
func (c *Club) IsMember(studentID string) bool {
	_, ok := c.members[studentID]
	return ok
}

// ChangeSecretary replaces the secretary
func (c *Club) ChangeSecretary(student *models.Student) models.Outcome {
	c.secretary = student
	return c.report(models.NewOutcome(models.OutcomeOK, "Secretary changed to %s for %s", student.Name, c.Name))
}

// ChangeTreasurer replaces the treasurer
func (c *Club) ChangeTreasurer(student *models.Student) models.Outcome {
	c.treasurer = student
	return c.report(models.NewOutcome(models.OutcomeOK, "Treasurer changed to %s for %s", student.Name, c.Name))
}

// Secretary returns the current secretary
func (c *Club) Secretary() *models.Student { return c.secretary }

// Treasurer returns the current treasurer
func (c *Club) Treasurer() *models.Student { return c.treasurer }

// AddInstrument appends an instrument unless it is already listed
func (c *Club) AddInstrument(instrument string) models.Outcome {
	for _, existing := range c.instruments {
		if existing == instrument {
			return c.report(models.NewOutcome(models.OutcomeAlreadyPresent, "Instrument '%s' already listed for %s", instrument, c.Name))
		}
	}
	c.instruments = append(c.instruments, instrument)
	return c.report(models.NewOutcome(models.OutcomeOK, "Instrument '%s' added to %s", instrument, c.Name))
}

// RemoveInstrument removes the first matching instrument
func (c *Club) RemoveInstrument(instrument string) models.Outcome {
	for i, existing := range c.instruments {
		if existing == instrument {
			c.instruments = append(c.instruments[:i], c.instruments[i+1:]...)
			return c.report(models.NewOutcome(models.OutcomeOK, "Instrument '%s' removed from %s", instrument, c.Name))
		}
	}
	return c.report(models.NewOutcome(models.OutcomeNotFound, "Instrument '%s' not listed for %s", instrument, c.Name))
}

// Instruments returns a copy of the instrument list
func (c *Club) Instruments() []string {
	return append([]string(nil), c.instruments...)
}

// Info builds and logs the club view. Members are ordered by student ID.
func (c *Club) Info() ClubInfo {
	info := ClubInfo{
		Name:        c.Name,
		Category:    c.Category,
		Instruments: c.Instruments(),
		Members:     make([]ClubMember, 0, len(c.members)),
	}
	if c.treasurer != nil {
		info.Treasurer = c.treasurer.Name
	}
	if c.secretary != nil {
		info.Secretary = c.secretary.Name
	}

	ids := make([]string, 0, len(c.members))
	for id := range c.members {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		student := c.members[id]
		if student == nil {
			info.Members = append(info.Members, ClubMember{StudentID: id, Invalid: true})
			continue
		}
		info.Members = append(info.Members, ClubMember{
			StudentID: student.ID,
			Name:      student.Name,
			Branch:    student.Branch,
			RollNo:    student.RollNo,
		})
	}

	c.logger.Info().
		Str("category", info.Category).
		Str("treasurer", info.Treasurer).
		Str("secretary", info.Secretary).
		Strs("instruments", info.Instruments).
		Int("members", len(info.Members)).
		Msg("Club info")
	return info
}
