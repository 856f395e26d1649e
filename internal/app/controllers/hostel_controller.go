package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/repositories"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// HostelController handles hostel rooms and charges
type HostelController struct {
	campusAccess
}

// NewHostelController creates a new HostelController
func NewHostelController(campus *services.Campus, feed ActivityPublisher) *HostelController {
	return &HostelController{campusAccess{campus: campus, feed: feed}}
}

// RoomResponse lists the occupants of a room
type RoomResponse struct {
	Hostel    string            `json:"hostel"`
	Room      string            `json:"room"`
	Occupants []*models.Student `json:"occupants"`
}

// GetRooms lists the allocated rooms of a hostel
// @Summary List allocated rooms
// @Tags hostels
// @Produce json
// @Param name path string true "Hostel name"
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /hostels/{name}/rooms [get]
func (c *HostelController) GetRooms(ctx *gin.Context) {
	name := ctx.Param("name")
	c.read(ctx, func() (interface{}, error) {
		h, err := c.campus.Hostel(name)
		if err != nil {
			return nil, err
		}
		return h.Rooms(), nil
	})
}

// GetRoommates lists the occupants of a room
// @Summary Get room occupants
// @Tags hostels
// @Produce json
// @Param name path string true "Hostel name"
// @Param room path string true "Room number"
// @Success 200 {object} dto.APIResponse{data=RoomResponse}
// @Router /hostels/{name}/rooms/{room} [get]
func (c *HostelController) GetRoommates(ctx *gin.Context) {
	name, room := ctx.Param("name"), ctx.Param("room")
	c.read(ctx, func() (interface{}, error) {
		h, err := c.campus.Hostel(name)
		if err != nil {
			return nil, err
		}
		return RoomResponse{Hostel: h.Name, Room: room, Occupants: h.Roommates(room)}, nil
	})
}

// AllocateRoom vacates a room and assigns it to the given students
// @Summary Allocate a room
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hostel name"
// @Param room path string true "Room number"
// @Param request body dto.RoomMembersRequest true "Occupants"
// @Success 200 {object} dto.APIResponse
// @Router /hostels/{name}/rooms/{room} [put]
func (c *HostelController) AllocateRoom(ctx *gin.Context) {
	var req dto.RoomMembersRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	room := ctx.Param("room")
	c.withHostel(ctx, func(_ context.Context, h *services.Hostel) (models.Outcome, interface{}, error) {
		occupants := make([]*models.Student, 0, len(req.StudentIDs))
		for _, id := range req.StudentIDs {
			s, err := c.campus.Student(id)
			if err != nil {
				return models.Outcome{}, nil, err
			}
			occupants = append(occupants, s)
		}
		return h.AddRoomMembers(room, occupants...), nil, nil
	})
}

// VacateRoom frees a room
// @Summary Vacate a room
// @Tags hostels
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hostel name"
// @Param room path string true "Room number"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Room not allocated"
// @Router /hostels/{name}/rooms/{room} [delete]
func (c *HostelController) VacateRoom(ctx *gin.Context) {
	room := ctx.Param("room")
	c.withHostel(ctx, func(_ context.Context, h *services.Hostel) (models.Outcome, interface{}, error) {
		return h.VacateRoom(room), nil, nil
	})
}

// PayFees charges the hostel fee to every occupant of a room
// @Summary Charge room fees
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hostel name"
// @Param room path string true "Room number"
// @Param request body dto.AmountRequest true "Amount per occupant"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Room not allocated"
// @Router /hostels/{name}/rooms/{room}/fees [post]
func (c *HostelController) PayFees(ctx *gin.Context) {
	c.charge(ctx, (*services.Hostel).PayFees)
}

// Penalty charges a penalty to every occupant of a room
// @Summary Charge a room penalty
// @Tags hostels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Hostel name"
// @Param room path string true "Room number"
// @Param request body dto.AmountRequest true "Amount per occupant"
// @Success 200 {object} dto.APIResponse
// @Router /hostels/{name}/rooms/{room}/penalty [post]
func (c *HostelController) Penalty(ctx *gin.Context) {
	c.charge(ctx, (*services.Hostel).Penalty)
}

type hostelCharge func(*services.Hostel, context.Context, string, int64, *repositories.StudentRepository) (models.Outcome, error)

func (c *HostelController) charge(ctx *gin.Context, fn hostelCharge) {
	var req dto.AmountRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	room := ctx.Param("room")
	c.withHostel(ctx, func(opCtx context.Context, h *services.Hostel) (models.Outcome, interface{}, error) {
		outcome, err := fn(h, opCtx, room, req.Amount, c.campus.Repos.StudentRepository)
		return outcome, nil, err
	})
}

func (c *HostelController) withHostel(ctx *gin.Context, fn func(context.Context, *services.Hostel) (models.Outcome, interface{}, error)) {
	name := ctx.Param("name")
	c.mutateContext(ctx, func(opCtx context.Context) (models.Outcome, interface{}, error) {
		h, err := c.campus.Hostel(name)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return fn(opCtx, h)
	})
}
