package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
	"github.com/yigit/collegeadmin/internal/pkg/apperrors"
	"github.com/yigit/collegeadmin/internal/pkg/validation"
)

// AcademicController handles student grade books
type AcademicController struct {
	campusAccess
}

// NewAcademicController creates a new AcademicController
func NewAcademicController(campus *services.Campus, feed ActivityPublisher) *AcademicController {
	return &AcademicController{campusAccess{campus: campus, feed: feed}}
}

// AssignGrade records a grade given by a faculty member
// @Summary Assign a grade
// @Tags academic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AssignGradeRequest true "Grade"
// @Success 200 {object} dto.APIResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid grade"
// @Router /academic/grades [post]
func (c *AcademicController) AssignGrade(ctx *gin.Context) {
	var req dto.AssignGradeRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		faculty, err := c.campus.Faculty(req.FacultyID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		student, err := c.campus.Student(req.StudentID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return c.campus.Academic.AssignGrade(faculty, student, req.Year, req.Semester, req.Subject, req.Grade), nil, nil
	})
}

// GetGrades returns a student's grade book
// @Summary Student grades
// @Tags academic
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=models.GradeBook}
// @Failure 404 {object} dto.ErrorResponse "No records"
// @Router /academic/grades/{studentId} [get]
func (c *AcademicController) GetGrades(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	c.read(ctx, func() (interface{}, error) {
		book, ok := c.campus.Academic.Grades(studentID)
		if !ok {
			return nil, apperrors.NewResourceNotFoundError("no records found for student " + studentID)
		}
		return book, nil
	})
}

// GetSubjectGrades lists every grade recorded for a subject
// @Summary Subject grades
// @Tags academic
// @Produce json
// @Param subject path string true "Subject"
// @Success 200 {object} dto.APIResponse{data=[]models.SubjectGrade}
// @Router /academic/subjects/{subject} [get]
func (c *AcademicController) GetSubjectGrades(ctx *gin.Context) {
	subject := ctx.Param("subject")
	c.read(ctx, func() (interface{}, error) {
		return c.campus.Academic.SubjectGrades(subject), nil
	})
}

// UpdateGrades replaces a student's grade book
// @Summary Replace a grade book
// @Tags academic
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param studentId path string true "Student ID"
// @Param request body dto.UpdateGradesRequest true "Grade book"
// @Success 200 {object} dto.APIResponse
// @Router /academic/grades/{studentId} [put]
func (c *AcademicController) UpdateGrades(ctx *gin.Context) {
	var req dto.UpdateGradesRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	studentID := ctx.Param("studentId")
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		student, err := c.campus.Student(studentID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		book := make(models.GradeBook, len(req.Grades))
		for year, semesters := range req.Grades {
			book[year] = make(models.YearGrades, len(semesters))
			for semester, subjects := range semesters {
				for subject, grade := range subjects {
					if !validation.ValidGrade(grade) {
						return models.Outcome{}, nil, apperrors.NewBadRequestError(
							fmt.Sprintf("invalid grade %q for %s (year %d, semester %d)", grade, subject, year, semester))
					}
				}
				book[year][semester] = models.SemesterGrades(subjects)
			}
		}
		return c.campus.Academic.UpdateGrades(student, book), nil, nil
	})
}
