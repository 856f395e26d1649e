package controllers

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

const rentableKind = "rentable"

// LibraryController handles the campus library
type LibraryController struct {
	campusAccess
}

// NewLibraryController creates a new LibraryController
func NewLibraryController(campus *services.Campus, feed ActivityPublisher) *LibraryController {
	return &LibraryController{campusAccess{campus: campus, feed: feed}}
}

// GetBooks returns the full stock
// @Summary Library stock
// @Tags library
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]models.BookStock}
// @Router /library/books [get]
func (c *LibraryController) GetBooks(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		return c.campus.Library.Books(), nil
	})
}

// GetRentableBooks returns the rentable copy counts
// @Summary Rentable copies
// @Tags library
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]int}
// @Router /library/books/rentable [get]
func (c *LibraryController) GetRentableBooks(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		return services.RentableBooks(c.campus.Library.Books()), nil
	})
}

// GetNonRentableBooks returns the reference copy counts
// @Summary Reference copies
// @Tags library
// @Produce json
// @Success 200 {object} dto.APIResponse{data=map[string]int}
// @Router /library/books/non-rentable [get]
func (c *LibraryController) GetNonRentableBooks(ctx *gin.Context) {
	c.read(ctx, func() (interface{}, error) {
		return services.NonRentableBooks(c.campus.Library.Books()), nil
	})
}

// AddStock adds copies of a title
// @Summary Add copies
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookStockRequest true "Copies"
// @Success 200 {object} dto.APIResponse
// @Success 201 {object} dto.APIResponse "New title"
// @Router /library/stock [post]
func (c *LibraryController) AddStock(ctx *gin.Context) {
	var req dto.BookStockRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		lib := c.campus.Library
		if req.Kind == rentableKind {
			return lib.AddRentableBook(req.Title, req.Count), nil, nil
		}
		return lib.AddNonRentableBook(req.Title, req.Count), nil, nil
	})
}

// RemoveStock removes copies of a title
// @Summary Remove copies
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookStockRequest true "Copies"
// @Success 200 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse "Unknown title"
// @Failure 422 {object} dto.APIResponse "Not enough copies"
// @Router /library/stock/remove [post]
func (c *LibraryController) RemoveStock(ctx *gin.Context) {
	var req dto.BookStockRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		lib := c.campus.Library
		if req.Kind == rentableKind {
			return lib.RemoveRentableBook(req.Title, req.Count), nil, nil
		}
		return lib.RemoveNonRentableBook(req.Title, req.Count), nil, nil
	})
}

// IssueBook lends one rentable copy to a student
// @Summary Issue a book
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookLoanRequest true "Loan"
// @Success 200 {object} dto.APIResponse
// @Failure 422 {object} dto.APIResponse "No copy available"
// @Router /library/issue [post]
func (c *LibraryController) IssueBook(ctx *gin.Context) {
	var req dto.BookLoanRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		student, err := c.campus.Student(req.StudentID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		return c.campus.Library.IssueBook(req.Title, student), nil, nil
	})
}

// ReturnBook takes a rentable copy back
// @Summary Return a book
// @Tags library
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.BookLoanRequest true "Loan"
// @Success 200 {object} dto.APIResponse
// @Success 201 {object} dto.APIResponse "Title shelved for the first time"
// @Router /library/return [post]
func (c *LibraryController) ReturnBook(ctx *gin.Context) {
	var req dto.BookLoanRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.mutateContext(ctx, func(opCtx context.Context) (models.Outcome, interface{}, error) {
		student, err := c.campus.Student(req.StudentID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		outcome, err := c.campus.Library.ReturnBook(opCtx, req.Title, student)
		return outcome, nil, err
	})
}

// SyncDB publishes the stock to the library database
// @Summary Sync the library database
// @Tags library
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse
// @Router /library/sync [post]
func (c *LibraryController) SyncDB(ctx *gin.Context) {
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		return c.campus.Library.UpdateDB(c.campus.Repos.LibraryRepository), nil, nil
	})
}
