package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/repositories"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// SnapshotController exports the in-memory databases to PostgreSQL
type SnapshotController struct {
	campusAccess
	snapshots *repositories.SnapshotRepository
}

// NewSnapshotController creates a new SnapshotController
func NewSnapshotController(campus *services.Campus, feed ActivityPublisher, snapshots *repositories.SnapshotRepository) *SnapshotController {
	return &SnapshotController{campusAccess: campusAccess{campus: campus, feed: feed}, snapshots: snapshots}
}

// CreateSnapshot copies the databases under the campus lock and writes
// them outside it
// @Summary Export the databases
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.APIResponse{data=repositories.SnapshotResult}
// @Failure 503 {object} dto.ErrorResponse "Persistence disabled"
// @Router /admin/snapshot [post]
func (c *SnapshotController) CreateSnapshot(ctx *gin.Context) {
	var snap repositories.Snapshot
	_ = c.campus.WithLock(func() error {
		snap = repositories.TakeSnapshot(c.campus.Repos)
		return nil
	})

	result, err := c.snapshots.Save(ctx.Request.Context(), snap)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result, "Snapshot saved"))
}
