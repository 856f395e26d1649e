package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// NNFController handles the incubation foundation
type NNFController struct {
	campusAccess
}

// NewNNFController creates a new NNFController
func NewNNFController(campus *services.Campus, feed ActivityPublisher) *NNFController {
	return &NNFController{campusAccess{campus: campus, feed: feed}}
}

// GetNNF returns the foundation details
// @Summary Foundation details
// @Tags nnf
// @Produce json
// @Success 200 {object} dto.APIResponse{data=services.NNFInfo}
// @Router /nnf [get]
func (c *NNFController) GetNNF(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		return c.campus.NNF.Info(), nil
	})
}

// SetChiefDirector assigns or changes the director
// @Summary Set the chief director
// @Tags nnf
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NameRequest true "Director"
// @Success 200 {object} dto.APIResponse
// @Router /nnf/director [put]
func (c *NNFController) SetChiefDirector(ctx *gin.Context) {
	c.withName(ctx, (*services.NNF).SetChiefDirector)
}

// AddStartup adds a startup to the incubation hub
// @Summary Add a startup
// @Tags nnf
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NameRequest true "Startup"
// @Success 200 {object} dto.APIResponse
// @Router /nnf/startups [post]
func (c *NNFController) AddStartup(ctx *gin.Context) {
	c.withName(ctx, (*services.NNF).AddStartup)
}

// AddPastEvent records a past event
// @Summary Record a past event
// @Tags nnf
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NameRequest true "Event"
// @Success 200 {object} dto.APIResponse
// @Router /nnf/events/past [post]
func (c *NNFController) AddPastEvent(ctx *gin.Context) {
	c.withName(ctx, (*services.NNF).AddPastEvent)
}

// ScheduleEvent schedules an upcoming event
// @Summary Schedule an event
// @Tags nnf
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.NameRequest true "Event"
// @Success 200 {object} dto.APIResponse
// @Router /nnf/events/upcoming [post]
func (c *NNFController) ScheduleEvent(ctx *gin.Context) {
	c.withName(ctx, (*services.NNF).ScheduleEvent)
}

// RemovePastEvent removes a past event
// @Summary Remove a past event
// @Tags nnf
// @Produce json
// @Security BearerAuth
// @Param event path string true "Event"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /nnf/events/past/{event} [delete]
func (c *NNFController) RemovePastEvent(ctx *gin.Context) {
	event := ctx.Param("event")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		return c.campus.NNF.RemovePastEvent(event), c.campus.NNF.Events(), nil
	})
}

// RemoveUpcomingEvent cancels an upcoming event
// @Summary Cancel an upcoming event
// @Tags nnf
// @Produce json
// @Security BearerAuth
// @Param event path string true "Event"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Event not found"
// @Router /nnf/events/upcoming/{event} [delete]
func (c *NNFController) RemoveUpcomingEvent(ctx *gin.Context) {
	event := ctx.Param("event")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		return c.campus.NNF.RemoveUpcomingEvent(event), c.campus.NNF.Events(), nil
	})
}

func (c *NNFController) withName(ctx *gin.Context, fn func(*services.NNF, string) models.Outcome) {
	var req dto.NameRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		return fn(c.campus.NNF, req.Name), nil, nil
	})
}
