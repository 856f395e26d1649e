package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// SocietyController handles societies
type SocietyController struct {
	campusAccess
}

// NewSocietyController creates a new SocietyController
func NewSocietyController(campus *services.Campus, feed ActivityPublisher) *SocietyController {
	return &SocietyController{campusAccess{campus: campus, feed: feed}}
}

// GetAllSocieties lists the registered societies
// @Summary List societies
// @Tags societies
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]services.SocietyInfo}
// @Router /societies [get]
func (c *SocietyController) GetAllSocieties(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		names := c.campus.SocietyNames()
		out := make([]services.SocietyInfo, 0, len(names))
		for _, name := range names {
			s, err := c.campus.Society(name)
			if err != nil {
				return nil, err
			}
			out = append(out, s.Info())
		}
		return out, nil
	})
}

// GetSociety returns one society
// @Summary Get a society
// @Tags societies
// @Produce json
// @Param name path string true "Society name"
// @Success 200 {object} dto.APIResponse{data=services.SocietyInfo}
// @Failure 404 {object} dto.ErrorResponse "Society not found"
// @Router /societies/{name} [get]
func (c *SocietyController) GetSociety(ctx *gin.Context) {
	name := ctx.Param("name")
	c.read(ctx, func() (interface{}, error) {
		s, err := c.campus.Society(name)
		if err != nil {
			return nil, err
		}
		return s.Info(), nil
	})
}

// AddMember adds a society member
// @Summary Add a society member
// @Tags societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Society name"
// @Param request body dto.MemberRecordRequest true "Member"
// @Success 200 {object} dto.APIResponse
// @Router /societies/{name}/members [post]
func (c *SocietyController) AddMember(ctx *gin.Context) {
	c.addRecord(ctx, (*services.Society).AddMember)
}

// AddVolunteer adds a society volunteer
// @Summary Add a society volunteer
// @Tags societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Society name"
// @Param request body dto.MemberRecordRequest true "Volunteer"
// @Success 200 {object} dto.APIResponse
// @Router /societies/{name}/volunteers [post]
func (c *SocietyController) AddVolunteer(ctx *gin.Context) {
	c.addRecord(ctx, (*services.Society).AddVolunteer)
}

// RemoveMember removes a society member
// @Summary Remove a society member
// @Tags societies
// @Produce json
// @Security BearerAuth
// @Param name path string true "Society name"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /societies/{name}/members/{studentId} [delete]
func (c *SocietyController) RemoveMember(ctx *gin.Context) {
	c.removeRecord(ctx, (*services.Society).RemoveMember)
}

// RemoveVolunteer removes a society volunteer
// @Summary Remove a society volunteer
// @Tags societies
// @Produce json
// @Security BearerAuth
// @Param name path string true "Society name"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse
// @Router /societies/{name}/volunteers/{studentId} [delete]
func (c *SocietyController) RemoveVolunteer(ctx *gin.Context) {
	c.removeRecord(ctx, (*services.Society).RemoveVolunteer)
}

// SetHead replaces the society head
// @Summary Set the society head
// @Tags societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Society name"
// @Param request body dto.NameRequest true "Head"
// @Success 200 {object} dto.APIResponse
// @Router /societies/{name}/head [put]
func (c *SocietyController) SetHead(ctx *gin.Context) {
	c.setName(ctx, (*services.Society).SetHead)
}

// SetCoordinator replaces the society coordinator
// @Summary Set the society coordinator
// @Tags societies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Society name"
// @Param request body dto.NameRequest true "Coordinator"
// @Success 200 {object} dto.APIResponse
// @Router /societies/{name}/coordinator [put]
func (c *SocietyController) SetCoordinator(ctx *gin.Context) {
	c.setName(ctx, (*services.Society).SetCoordinator)
}

func (c *SocietyController) addRecord(ctx *gin.Context, add func(*services.Society, models.MemberRecord) models.Outcome) {
	var req dto.MemberRecordRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	record := models.MemberRecord{Name: req.Name, StudentID: req.StudentID, Department: req.Department}
	c.withSociety(ctx, func(s *services.Society) models.Outcome {
		return add(s, record)
	})
}

func (c *SocietyController) removeRecord(ctx *gin.Context, remove func(*services.Society, string) models.Outcome) {
	studentID := ctx.Param("studentId")
	c.withSociety(ctx, func(s *services.Society) models.Outcome {
		return remove(s, studentID)
	})
}

func (c *SocietyController) setName(ctx *gin.Context, set func(*services.Society, string) models.Outcome) {
	var req dto.NameRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.withSociety(ctx, func(s *services.Society) models.Outcome {
		return set(s, req.Name)
	})
}

func (c *SocietyController) withSociety(ctx *gin.Context, fn func(*services.Society) models.Outcome) {
	name := ctx.Param("name")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		s, err := c.campus.Society(name)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return fn(s), nil, nil
	})
}
