// Package demo replays the campus walkthrough against a seeded campus:
// profiles, fest, club, society, hostel, library, accounts, grades, canteen
// and incubator, in that order.
package demo

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/seed"
)

// Run executes every step. It stops at the first hard error; soft outcomes
// are only logged.
func Run(ctx context.Context, campus *services.Campus, fx *seed.Fixture, lgr zerolog.Logger) error {
	steps := []struct {
		name string
		fn   func(context.Context, *services.Campus, *seed.Fixture, zerolog.Logger) error
	}{
		{"college info", collegeInfo},
		{"profiles", profiles},
		{"department fest", departmentFest},
		{"club", club},
		{"society", society},
		{"hostel", hostel},
		{"library", library},
		{"accounts", accounts},
		{"academics", academics},
		{"canteen", canteen},
		{"incubator", incubator},
	}

	for i, step := range steps {
		lgr.Info().Int("step", i+1).Str("name", step.name).Msg("Running demo step")
		if err := step.fn(ctx, campus, fx, lgr); err != nil {
			return fmt.Errorf("demo step %q: %w", step.name, err)
		}
	}
	return nil
}

func collegeInfo(_ context.Context, campus *services.Campus, _ *seed.Fixture, _ zerolog.Logger) error {
	campus.Info()
	return nil
}

func profiles(_ context.Context, _ *services.Campus, fx *seed.Fixture, lgr zerolog.Logger) error {
	for _, s := range []*models.Student{fx.S1, fx.S2, fx.S3} {
		lgr.Info().Str("student_id", s.ID).Msg(s.Profile())
	}
	for _, f := range []*models.Faculty{fx.F1, fx.F2} {
		lgr.Info().Str("faculty_id", f.ID).Msg(f.Profile())
	}
	return nil
}

func departmentFest(_ context.Context, campus *services.Campus, _ *seed.Fixture, _ zerolog.Logger) error {
	cse, err := campus.Department("Computer Science and Engineering")
	if err != nil {
		return err
	}
	cse.OrganiseFest(models.FestDetails{
		Name:     "TechX",
		Date:     "20 Aug 2025",
		Location: "Auditorium",
		Budget:   50000,
		Members:  []string{"Amit Sharma", "Team TechX"},
	})
	return nil
}

func club(_ context.Context, campus *services.Campus, fx *seed.Fixture, _ zerolog.Logger) error {
	dance, err := campus.Club(seed.ClubName)
	if err != nil {
		return err
	}
	dance.AddMember(fx.S1.ID)
	dance.AddMember(fx.S2.ID)
	dance.AddInstrument("DJ Console")
	dance.RemoveMember(fx.S2.ID)
	dance.ChangeSecretary(fx.S3)
	dance.Info()
	return nil
}

func society(_ context.Context, campus *services.Campus, _ *seed.Fixture, _ zerolog.Logger) error {
	sae, err := campus.Society(seed.SocietyName)
	if err != nil {
		return err
	}
	sae.AddMember(models.MemberRecord{Name: "Amit Sharma", StudentID: "S101", Department: "Computer Science and Engineering"})
	sae.AddVolunteer(models.MemberRecord{Name: "Riya Verma", StudentID: "S102", Department: "Electronics"})
	sae.Info()
	return nil
}

func hostel(ctx context.Context, campus *services.Campus, fx *seed.Fixture, _ zerolog.Logger) error {
	h, err := campus.Hostel(seed.HostelName)
	if err != nil {
		return err
	}
	students := campus.Repos.StudentRepository

	h.AddRoomMembers("101", fx.S1, fx.S3)
	h.Roommates("101")
	if _, err := h.PayFees(ctx, "101", 15000, students); err != nil {
		return err
	}
	if _, err := h.Penalty(ctx, "101", 500, students); err != nil {
		return err
	}
	h.VacateRoom("101")
	h.Roommates("101")
	return nil
}

func library(ctx context.Context, campus *services.Campus, fx *seed.Fixture, lgr zerolog.Logger) error {
	lib := campus.Library
	lib.AddRentableBook("Quantum Physics", 3)
	lib.AddNonRentableBook("Artificial Intelligence", 2)
	lib.UpdateDB(campus.Repos.LibraryRepository)

	books := lib.Books()
	lgr.Info().Interface("books", services.RentableBooks(books)).Msg("Available rentable books")
	lgr.Info().Interface("books", services.NonRentableBooks(books)).Msg("Available non-rentable books")

	lib.IssueBook("Python Programming", fx.S1)
	_, err := lib.ReturnBook(ctx, "Python Programming", fx.S1)
	return err
}

func accounts(_ context.Context, campus *services.Campus, fx *seed.Fixture, _ zerolog.Logger) error {
	campus.Accounts.PayFees(fx.S1, 10000)
	campus.Accounts.PayFees(fx.S2, 12000)
	return nil
}

func academics(_ context.Context, campus *services.Campus, fx *seed.Fixture, lgr zerolog.Logger) error {
	ac := campus.Academic
	ac.AssignGrade(fx.F1, fx.S1, 2, 1, "Data Structures", "A")
	ac.AssignGrade(fx.F1, fx.S1, 2, 1, "OOP", "B+")
	ac.AssignGrade(fx.F2, fx.S1, 2, 1, "Signals", "A")

	if grades, ok := ac.Grades(fx.S1.ID); ok {
		lgr.Info().Str("student_id", fx.S1.ID).Interface("grades", grades).Msg("Grades")
	}
	lgr.Info().Interface("grades", ac.SubjectGrades("Data Structures")).Msg("Grades for subject Data Structures")
	return nil
}

func canteen(ctx context.Context, campus *services.Campus, fx *seed.Fixture, _ zerolog.Logger) error {
	c, err := campus.Canteen(seed.CanteenName)
	if err != nil {
		return err
	}
	repo := campus.Repos.CanteenRepository

	c.OrderItem(fx.S2, "Coffee")
	c.OrderItem(fx.S3, "Pizza")
	if _, err := c.RequestItem(ctx, "Pizza", 80); err != nil {
		return err
	}
	c.OrderItem(fx.S3, "Pizza")
	c.UpdateDB(repo)
	c.UpdateMenu(repo, "Sandwich", 30)
	c.UpdateDB(repo)
	return nil
}

func incubator(_ context.Context, campus *services.Campus, _ *seed.Fixture, lgr zerolog.Logger) error {
	nnf := campus.NNF
	nnf.SetChiefDirector("Mr. Rajeev Tiwari")
	nnf.AddStartup("GreenTech Solutions")
	nnf.AddStartup("EduSpark")
	nnf.AddPastEvent("Hackathon 2023")
	nnf.ScheduleEvent("Startup Meet 2025")
	nnf.RemovePastEvent("Hackathon 2023")
	nnf.RemoveUpcomingEvent("Startup Meet 2025")

	events := nnf.Events()
	lgr.Info().Strs("startups", nnf.Startups()).Strs("past", events.Past).Strs("upcoming", events.Upcoming).Msg("Incubator status")
	return nil
}
