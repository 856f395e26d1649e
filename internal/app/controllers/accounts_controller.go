package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/yigit/collegeadmin/internal/app/models"
	"github.com/yigit/collegeadmin/internal/app/models/dto"
	"github.com/yigit/collegeadmin/internal/app/services"
	"github.com/yigit/collegeadmin/internal/middleware"
)

// AccountsController handles fee payments
type AccountsController struct {
	campusAccess
}

// NewAccountsController creates a new AccountsController
func NewAccountsController(campus *services.Campus, feed ActivityPublisher) *AccountsController {
	return &AccountsController{campusAccess{campus: campus, feed: feed}}
}

// PayFees records a fee payment
// @Summary Pay fees
// @Tags accounts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.FeePaymentRequest true "Payment"
// @Success 200 {object} dto.APIResponse{data=models.FeeReceipt}
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /accounts/payments [post]
func (c *AccountsController) PayFees(ctx *gin.Context) {
	var req dto.FeePaymentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}
	c.mutate(ctx, func() (models.Outcome, interface{}, error) {
		student, err := c.campus.Student(req.StudentID)
		if err != nil {
			return models.Outcome{}, nil, err
		}
		receipt, outcome := c.campus.Accounts.PayFees(student, req.Amount)
		return outcome, receipt, nil
	})
}

// GetReceipts lists the receipts issued to a student
// @Summary Fee receipts
// @Tags accounts
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.FeeReceipt}
// @Router /accounts/receipts/{studentId} [get]
func (c *AccountsController) GetReceipts(ctx *gin.Context) {
	studentID := ctx.Param("studentId")
	c.read(ctx, func() (interface{}, error) {
		if _, err := c.campus.Student(studentID); err != nil {
			return nil, err
		}
		return c.campus.Accounts.Receipts(studentID), nil
	})
}
