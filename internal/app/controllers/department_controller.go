package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// DepartmentController handles department-related operations
type DepartmentController struct {
	campusAccess
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(campus *services.Campus, feed ActivityPublisher) *DepartmentController {
	return &DepartmentController{campusAccess{campus: campus, feed: feed}}
}

// GetAllDepartments lists every department
// @Summary List departments
// @Tags departments
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]services.DepartmentInfo}
// @Router /departments [get]
func (c *DepartmentController) GetAllDepartments(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		depts := c.campus.Departments()
		out := make([]services.DepartmentInfo, 0, len(depts))
		for _, d := range depts {
			out = append(out, d.Info())
		}
		return out, nil
	})
}

// GetDepartmentByID returns a department by ID or name
// @Summary Get a department
// @Tags departments
// @Produce json
// @Param id path string true "Department ID or name"
// @Success 200 {object} dto.APIResponse{data=services.DepartmentInfo}
// @Failure 404 {object} dto.ErrorResponse "Department not found"
// @Router /departments/{id} [get]
func (c *DepartmentController) GetDepartmentByID(ctx *gin.Context) {
	id := ctx.Param("id")
	c.read(ctx, func() (interface{}, error) {
		d, err := c.campus.Department(id)
		if err != nil {
			return nil, err
		}
		return d.Info(), nil
	})
}

// AddStudent enrolls a student from the student database
// @Summary Enroll a student in a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID or name"
// @Param request body dto.StudentRef true "Student"
// @Success 200 {object} dto.APIResponse
// @Router /departments/{id}/students [post]
func (c *DepartmentController) AddStudent(ctx *gin.Context) {
	var req dto.StudentRef
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	id := ctx.Param("id")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		d, err := c.campus.Department(id)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return d.AddStudentByID(req.StudentID), nil, nil
	})
}

// AddFaculty attaches a faculty member from the faculty database
// @Summary Attach a faculty member to a department
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID or name"
// @Param request body dto.FacultyRef true "Faculty member"
// @Success 200 {object} dto.APIResponse
// @Router /departments/{id}/faculty [post]
func (c *DepartmentController) AddFaculty(ctx *gin.Context) {
	var req dto.FacultyRef
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	id := ctx.Param("id")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		d, err := c.campus.Department(id)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return d.AddFacultyByID(req.FacultyID), nil, nil
	})
}

// OrganiseFest records the department fest
// @Summary Organise a department fest
// @Tags departments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Department ID or name"
// @Param request body dto.OrganiseFestRequest true "Fest details"
// @Success 200 {object} dto.APIResponse{data=models.FestDetails}
// @Router /departments/{id}/fest [put]
func (c *DepartmentController) OrganiseFest(ctx *gin.Context) {
	var req dto.OrganiseFestRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	id := ctx.Param("id")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		d, err := c.campus.Department(id)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		fest := models.FestDetails{
			Name:     req.Name,
			Date:     req.Date,
			Location: req.Location,
			Budget:   req.Budget,
			Members:  req.Members,
		}
		return d.OrganiseFest(fest), fest, nil
	})
}
