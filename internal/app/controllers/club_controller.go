package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// ClubController handles clubs and societies
type ClubController struct {
	campusAccess
}

// NewClubController creates a new ClubController
func NewClubController(campus *services.Campus, feed ActivityPublisher) *ClubController {
	return &ClubController{campusAccess{campus: campus, feed: feed}}
}

// GetAllClubs lists the registered clubs
// @Summary List clubs
// @Tags clubs
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]services.ClubInfo}
// @Router /clubs [get]
func (c *ClubController) GetAllClubs(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		names := c.campus.ClubNames()
		out := make([]services.ClubInfo, 0, len(names))
		for _, name := range names {
			club, err := c.campus.Club(name)
			if err != nil {
				return nil, err
			}
			out = append(out, club.Info())
		}
		return out, nil
	})
}

// GetClub returns one club
// @Summary Get a club
// @Tags clubs
// @Produce json
// @Param name path string true "Club name"
// @Success 200 {object} dto.APIResponse{data=services.ClubInfo}
// @Failure 404 {object} dto.ErrorResponse "Club not found"
// @Router /clubs/{name} [get]
func (c *ClubController) GetClub(ctx *gin.Context) {
	name := ctx.Param("name")
	c.read(ctx, func() (interface{}, error) {
		club, err := c.campus.Club(name)
		if err != nil {
			return nil, err
		}
		return club.Info(), nil
	})
}

// AddMember enrolls a student in a club
// @Summary Add a club member
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Club name"
// @Param request body dto.StudentRef true "Student"
// @Success 200 {object} dto.APIResponse
// @Failure 409 {object} dto.APIResponse "Already a member"
// @Router /clubs/{name}/members [post]
func (c *ClubController) AddMember(ctx *gin.Context) {
	var req dto.StudentRef
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.withClub(ctx, func(club *services.Club) (models.Outcome, interface{}, error) {
		return club.AddMember(req.StudentID), nil, nil
	})
}

// RemoveMember drops a club member
// @Summary Remove a club member
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param name path string true "Club name"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Not a member"
// @Router /clubs/{name}/members/{studentId} [delete]
func (c *ClubController) RemoveMember(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	c.withClub(ctx, func(club *services.Club) (models.Outcome, interface{}, error) {
		return club.RemoveMember(studentID), nil, nil
	})
}

// AddInstrument lists a new instrument
// @Summary Add a club instrument
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Club name"
// @Param request body dto.NameRequest true "Instrument"
// @Success 200 {object} dto.APIResponse
// @Router /clubs/{name}/instruments [post]
func (c *ClubController) AddInstrument(ctx *gin.Context) {
	var req dto.NameRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.withClub(ctx, func(club *services.Club) (models.Outcome, interface{}, error) {
		return club.AddInstrument(req.Name), club.Instruments(), nil
	})
}

// RemoveInstrument removes an instrument
// @Summary Remove a club instrument
// @Tags clubs
// @Produce json
// @Security BearerAuth
// @Param name path string true "Club name"
// @Param instrument path string true "Instrument"
// @Success 200 {object} dto.APIResponse
// @Router /clubs/{name}/instruments/{instrument} [delete]
func (c *ClubController) RemoveInstrument(ctx *gin.Context) {
	instrument := ctx.Param("instrument")
	c.withClub(ctx, func(club *services.Club) (models.Outcome, interface{}, error) {
		return club.RemoveInstrument(instrument), club.Instruments(), nil
	})
}

// ChangeSecretary replaces the club secretary
// @Summary Change the club secretary
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Club name"
// @Param request body dto.StudentRef true "New secretary"
// @Success 200 {object} dto.APIResponse
// @Router /clubs/{name}/secretary [put]
func (c *ClubController) ChangeSecretary(ctx *gin.Context) {
	c.changeOfficer(ctx, (*services.Club).ChangeSecretary)
}

// ChangeTreasurer replaces the club treasurer
// @Summary Change the club treasurer
// @Tags clubs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Club name"
// @Param request body dto.StudentRef true "New treasurer"
// @Success 200 {object} dto.APIResponse
// @Router /clubs/{name}/treasurer [put]
func (c *ClubController) ChangeTreasurer(ctx *gin.Context) {
	c.changeOfficer(ctx, (*services.Club).ChangeTreasurer)
}

func (c *ClubController) changeOfficer(ctx *gin.Context, change func(*services.Club, *models.Student) models.Outcome) {
	var req dto.StudentRef
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.withClub(ctx, func(club *services.Club) (models.Outcome, interface{}, error) {
		student, err := c.campus.Student(req.StudentID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return change(club, student), nil, nil
	})
}

func (c *ClubController) withClub(ctx *gin.Context, fn func(*services.Club) (models.Outcome, interface{}, error)) {
	name := ctx.Param("name")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		club, err := c.campus.Club(name)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return fn(club)
	})
}
