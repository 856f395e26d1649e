package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// FacultyController serves the faculty database and the college details
type FacultyController struct {
	campusAccess
}

// NewFacultyController creates a new FacultyController
func NewFacultyController(campus *services.Campus, feed ActivityPublisher) *FacultyController {
	return &FacultyController{campusAccess{campus: campus, feed: feed}}
}

// GetCollege returns the college name and address
// @Summary College details
// @Tags college
// @Produce json
// @Success 200 {object} dto.APIResponse{data=models.CollegeInfo}
// @Router /college [get]
func (c *FacultyController) GetCollege(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(c.campus.College, c.campus.College.String()))
}

// GetAllFaculty lists the faculty database
// @Summary List faculty
// @Tags faculty
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.Faculty}
// @Router /faculty [get]
func (c *FacultyController) GetAllFaculty(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		return c.campus.Repos.FacultyRepository.All(), nil
	})
}

// GetFacultyByID returns one faculty member
// @Summary Get a faculty member
// @Tags faculty
// @Produce json
// @Param id path string true "Faculty ID"
// @Success 200 {object} dto.APIResponse{data=models.Faculty}
// @Failure 404 {object} dto.ErrorResponse "Faculty not found"
// @Router /faculty/{id} [get]
func (c *FacultyController) GetFacultyByID(ctx *gin.Context) {
	id := ctx.Param("id")
	c.read(ctx, func() (interface{}, error) {
		return c.campus.Faculty(id)
	})
}

// CreateFaculty adds a faculty member to the faculty database
// @Summary Create a faculty member
// @Tags faculty
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateFacultyRequest true "Faculty record"
// @Success 201 {object} dto.APIResponse{data=models.Faculty}
// @Failure 409 {object} dto.APIResponse "Faculty already exists"
// @Router /faculty [post]
func (c *FacultyController) CreateFaculty(ctx *gin.Context) {
	var req dto.CreateFacultyRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		f := &models.Faculty{
			ID:         req.ID,
			Name:       req.Name,
			Department: req.Department,
			Phone:      req.Phone,
			Email:      req.Email,
		}
		return c.campus.AddFaculty(f), f, nil
	})
}
