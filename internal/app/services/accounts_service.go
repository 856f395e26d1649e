package services

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yigit/collegeadmin/internal/app/models"
)

// AccountsDepartment takes fee payments
type AccountsDepartment struct {
	Entity
	feesPaid map[string]int64
	receipts map[string][]models.FeeReceipt
	now      func() time.Time
}

// NewAccountsDepartment creates an accounts department with no payments
func NewAccountsDepartment(name string, lgr zerolog.Logger) *AccountsDepartment {
	return &AccountsDepartment{
		Entity:   newEntity("AccountsDepartment", name, lgr),
		feesPaid: make(map[string]int64),
		receipts: make(map[string][]models.FeeReceipt),
		now:      time.Now,
	}
}

// PayFees records a payment: the student's fees grow by amount and the
// student's last payment becomes amount. A receipt is kept for every payment.
func (a *AccountsDepartment) PayFees(student *models.Student, amount int64) (models.FeeReceipt, models.Outcome) {
	a.feesPaid[student.ID] = amount
	student.Fees += amount

	receipt := models.FeeReceipt{
		ID:        uuid.New().String(),
		StudentID: student.ID,
		Amount:    amount,
		PaidAt:    a.now().UTC(),
	}
	a.receipts[student.ID] = append(a.receipts[student.ID], receipt)

	a.logger.Info().Str("student_id", student.ID).Str("receipt_id", receipt.ID).Int64("fees", student.Fees).Msg("Fee receipt issued")
	return receipt, a.report(models.NewOutcome(models.OutcomeOK, "%s paid ₹%d", student.Name, amount))
}

// LastPayment returns the most recent amount paid by the student
func (a *AccountsDepartment) LastPayment(studentID string) (int64, bool) {
	amount, ok := a.feesPaid[studentID]
	return amount, ok
}

// Receipts returns the student's receipts, oldest first
func (a *AccountsDepartment) Receipts(studentID string) []models.FeeReceipt {
	return append([]models.FeeReceipt{}, a.receipts[studentID]...)
}
