package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/helpers"
)

// StudentController serves the student database
type StudentController struct {
	campusAccess
}

// NewStudentController creates a new StudentController
func NewStudentController(campus *services.Campus, feed ActivityPublisher) *StudentController {
	return &StudentController{campusAccess{campus: campus, feed: feed}}
}

// GetAllStudents lists students a page at a time
// @Summary List students
// @Tags students
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param size query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.StudentListResponse}
// @Router /students [get]
func (c *StudentController) GetAllStudents(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	c.read(ctx, func() (interface{}, error) {
		all := c.campus.Repos.StudentRepository.All()
		start, end := helpers.CalculateSliceIndices(page, size, len(all))
		return dto.StudentListResponse{
			Students:       all[start:end],
			PaginationInfo: helpers.NewPaginationInfo(int64(len(all)), page, size),
		}, nil
	})
}

// GetStudentByID returns one student with its accumulated fees
// @Summary Get a student
// @Tags students
// @Produce json
// @Param id path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id := ctx.Param("id")
	c.read(ctx, func() (interface{}, error) {
		return c.campus.Student(id)
	})
}

// CreateStudent adds a student to the student database
// @Summary Create a student
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student record"
// @Success 201 {object} dto.APIResponse{data=models.Student}
// @Failure 409 {object} dto.APIResponse "Student already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		course, ok := findCourse(c.campus, req.CourseID)
		if !ok {
			return models.Outcome{}, nil, apperrors.NewBadRequestError(fmt.Sprintf("unknown course %s", req.CourseID))
		}
		student := &models.Student{
			ID:     req.ID,
			RollNo: req.RollNo,
			Name:   req.Name,
			Year:   req.Year,
			Course: course,
			Branch: req.Branch,
			Phone:  req.Phone,
			Email:  req.Email,
		}
		return c.campus.AddStudent(student), student, nil
	})
}

func findCourse(campus *services.Campus, id string) (*models.Course, bool) {
	for _, course := range campus.Courses() {
		if course.ID == id {
			return course, true
		}
	}
	return nil, false
}
