package services

import (
	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// SocietyCategories maps a category to the societies belonging to it
var SocietyCategories = map[string][]string{
	"Departmental":     {"SAE", "IEEE"},
	"Non-Departmental": {"DSW", "E-Cell", "Training and Placement Cell"},
}

// UncategorizedSociety is the category of a society outside SocietyCategories
const UncategorizedSociety = "Uncategorized"

func societyCategory(name string) string {
	for category, names := range SocietyCategories {
		for _, n := range names {
			if n == name {
				return category
			}
		}
	}
	return UncategorizedSociety
}

// Society manages a society's head, coordinator, members and volunteers
type Society struct {
	Entity
	Category    string
	head        string
	coordinator string
	members     []models.MemberRecord
	volunteers  []models.MemberRecord
}

// SocietyInfo is a read-only view of a society
type SocietyInfo struct {
	Name        string                `json:"name"`
	Category    string                `json:"category"`
	Head        string                `json:"head"`
	Coordinator string                `json:"coordinator,omitempty"`
	Members     []models.MemberRecord `json:"members"`
	Volunteers  []models.MemberRecord `json:"volunteers"`
}

// NewSociety creates a society; coordinator may be empty
func NewSociety(name, head, coordinator string, lgr zerolog.Logger) *Society {
	return &Society{
		Entity:      newEntity("Society", name, lgr),
		Category:    societyCategory(name),
		head:        head,
		coordinator: coordinator,
	}
}

// Head returns the society head
func (s *Society) Head() string { return s.head }

// Coordinator returns the coordinator, empty when none is assigned
func (s *Society) Coordinator() string { return s.coordinator }

// SetHead replaces the society head
func (s *Society) SetHead(head string) models.Outcome {
	s.head = head
	return s.report(models.NewOutcome(models.OutcomeOK, "Society head updated to: %s", head))
}

// SetCoordinator replaces the coordinator
func (s *Society) SetCoordinator(coordinator string) models.Outcome {
	s.coordinator = coordinator
	return s.report(models.NewOutcome(models.OutcomeOK, "Coordinator updated to: %s", coordinator))
}

// AddMember appends a member unless the student ID is already listed
func (s *Society) AddMember(record models.MemberRecord) models.Outcome {
	if containsMember(s.members, record.StudentID) {
		return s.report(models.NewOutcome(models.OutcomeAlreadyPresent, "Member with ID %s already in society %s", record.StudentID, s.Name))
	}
	s.members = append(s.members, record)
	return s.report(models.NewOutcome(models.OutcomeOK, "%s added to society %s", record.Name, s.Name))
}

// RemoveMember removes every member entry carrying the student ID
func (s *Society) RemoveMember(studentID string) models.Outcome {
	var removed bool
	s.members, removed = withoutMember(s.members, studentID)
	if !removed {
		return s.report(models.NewOutcome(models.OutcomeNotFound, "Member with ID %s not found in %s", studentID, s.Name))
	}
	return s.report(models.NewOutcome(models.OutcomeOK, "Member with ID %s removed from %s", studentID, s.Name))
}

// AddVolunteer appends a volunteer unless the student ID is already listed
func (s *Society) AddVolunteer(record models.MemberRecord) models.Outcome {
	if containsMember(s.volunteers, record.StudentID) {
		return s.report(models.NewOutcome(models.OutcomeAlreadyPresent, "Volunteer with ID %s already in %s", record.StudentID, s.Name))
	}
	s.volunteers = append(s.volunteers, record)
	return s.report(models.NewOutcome(models.OutcomeOK, "Volunteer %s from %s added to %s", record.Name, record.Department, s.Name))
}

// RemoveVolunteer removes every volunteer entry carrying the student ID
func (s *Society) RemoveVolunteer(studentID string) models.Outcome {
	var removed bool
	s.volunteers, removed = withoutMember(s.volunteers, studentID)
	if !removed {
		return s.report(models.NewOutcome(models.OutcomeNotFound, "Volunteer with ID %s not found in %s", studentID, s.Name))
	}
	return s.report(models.NewOutcome(models.OutcomeOK, "Volunteer with ID %s removed from %s", studentID, s.Name))
}

// Info builds and logs the society view
func (s *Society) Info() SocietyInfo {
	info := SocietyInfo{
		Name:        s.Name,
		Category:    s.Category,
		Head:        s.head,
		Coordinator: s.coordinator,
		Members:     append([]models.MemberRecord{}, s.members...),
		Volunteers:  append([]models.MemberRecord{}, s.volunteers...),
	}
	s.logger.Info().
		Str("category", info.Category).
		Str("head", info.Head).
		Str("coordinator", info.Coordinator).
		Int("members", len(info.Members)).
		Int("volunteers", len(info.Volunteers)).
		Msg("Society info")
	return info
}

func containsMember(records []models.MemberRecord, studentID string) bool {
	for _, r := range records {
		if r.StudentID == studentID {
			return true
		}
	}
	return false
}

func withoutMember(records []models.MemberRecord, studentID string) ([]models.MemberRecord, bool) {
	kept := records[:0]
	removed := false
	for _, r := range records {
		if r.StudentID == studentID {
			removed = true
			continue
		}
		kept = append(kept, r)
	}
	return kept, removed
}
