package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// CanteenController handles canteen menus and orders
type CanteenController struct {
	campusAccess
}

// NewCanteenController creates a new CanteenController
func NewCanteenController(campus *services.Campus, feed ActivityPublisher) *CanteenController {
	return &CanteenController{campusAccess{campus: campus, feed: feed}}
}

// GetCanteens lists the canteen names
// @Summary List canteens
// @Tags canteens
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]string}
// @Router /canteens [get]
func (c *CanteenController) GetCanteens(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		return c.campus.CanteenNames(), nil
	})
}

// GetMenu returns a canteen menu
// @Summary Canteen menu
// @Tags canteens
// @Produce json
// @Param name path string true "Canteen name"
// @Success 200 {object} dto.APIResponse{data=map[string]int64}
// @Failure 404 {object} dto.ErrorResponse "Canteen not found"
// @Router /canteens/{name}/menu [get]
func (c *CanteenController) GetMenu(ctx *gin.Context) {
	name := ctx.Param("name")
	c.read(ctx, func() (interface{}, error) {
		canteen, err := c.campus.Canteen(name)
		if err != nil {
			return nil, err
		}
		return canteen.Menu(), nil
	})
}

// OrderItem places an order for a student
// @Summary Order an item
// @Tags canteens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Canteen name"
// @Param request body dto.OrderItemRequest true "Order"
// @Success 200 {object} dto.APIResponse
// @Failure 422 {object} dto.APIResponse "Item unavailable"
// @Router /canteens/{name}/orders [post]
func (c *CanteenController) OrderItem(ctx *gin.Context) {
	var req dto.OrderItemRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.withCanteen(ctx, func(_ context.Context, canteen *services.Canteen) (models.Outcome, interface{}, error) {
		student, err := c.campus.Student(req.StudentID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return canteen.OrderItem(student, req.Item), nil, nil
	})
}

// RequestItem adds an item to the menu after the kitchen confirms it
// @Summary Request a new item
// @Tags canteens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Canteen name"
// @Param request body dto.MenuItemRequest true "Item"
// @Success 200 {object} dto.APIResponse
// @Router /canteens/{name}/requests [post]
func (c *CanteenController) RequestItem(ctx *gin.Context) {
	var req dto.MenuItemRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.withCanteen(ctx, func(opCtx context.Context, canteen *services.Canteen) (models.Outcome, interface{}, error) {
		outcome, err := canteen.RequestItem(opCtx, req.Item, req.Price)
		return outcome, nil, err
	})
}

// UpdateMenu adds or reprices an item in the menu database
// @Summary Update the menu
// @Tags canteens
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Canteen name"
// @Param request body dto.MenuItemRequest true "Item"
// @Success 200 {object} dto.APIResponse
// @Router /canteens/{name}/menu [put]
func (c *CanteenController) UpdateMenu(ctx *gin.Context) {
	var req dto.MenuItemRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.withCanteen(ctx, func(_ context.Context, canteen *services.Canteen) (models.Outcome, interface{}, error) {
		return canteen.UpdateMenu(c.campus.Repos.CanteenRepository, req.Item, req.Price), canteen.Menu(), nil
	})
}

// SyncDB publishes the menu to the canteen database
// @Summary Sync the canteen database
// @Tags canteens
// @Produce json
// @Security BearerAuth
// @Param name path string true "Canteen name"
// @Success 200 {object} dto.APIResponse
// @Router /canteens/{name}/sync [post]
func (c *CanteenController) SyncDB(ctx *gin.Context) {
	c.withCanteen(ctx, func(_ context.Context, canteen *services.Canteen) (models.Outcome, interface{}, error) {
		return canteen.UpdateDB(c.campus.Repos.CanteenRepository), nil, nil
	})
}

func (c *CanteenController) withCanteen(ctx *gin.Context, fn func(context.Context, *services.Canteen) (models.Outcome, interface{}, error)) {
	name := ctx.Param("name")
	c.mutateContext(ctx, func(opCtx context.Context) (models.Outcome, interface{}, error) {
		canteen, err := c.campus.Canteen(name)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return fn(opCtx, canteen)
	})
}
