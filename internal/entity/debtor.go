package entity

import (
	"fmt"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

type DebtorStatus string

const (
	DebtorStatusPending DebtorStatus = "pending"
	DebtorStatusPartial DebtorStatus = "partial"
	DebtorStatusOverdue DebtorStatus = "overdue"
	DebtorStatusPaid    DebtorStatus = "paid"
)

func (ds DebtorStatus) Valid() bool {
	switch ds {
	case DebtorStatusPending, DebtorStatusPartial, DebtorStatusOverdue, DebtorStatusPaid:
		return true
	}
	return false
}

// Debtor is an outstanding customer balance. A debtor is active while its
// status is anything but paid.
type Debtor struct {
	ID int `db:"id" json:"id"`
	DebtorInsert
}

// DebtorInsert is the caller-supplied part of a debtor. An empty status
// defaults to pending; debtors opened for a sale inherit the sale's
// payment status instead.
type DebtorInsert struct {
	CustomerName string          `db:"customer_name" json:"customerName" valid:"required"`
	Product      string          `db:"product" json:"product" valid:"required"`
	Amount       decimal.Decimal `db:"amount" json:"amount"`
	DueDate      time.Time       `db:"due_date" json:"dueDate"`
	Status       DebtorStatus    `db:"status" json:"status"`
}

func (di *DebtorInsert) Validate() error {
	if di.Status == "" {
		di.Status = DebtorStatusPending
	}
	if !di.Status.Valid() {
		return errInvalidStatus(string(di.Status))
	}
	_, err := govalidator.ValidateStruct(di)
	return err
}

// Payment records a settled debtor balance.
type Payment struct {
	ID          int             `db:"id" json:"id"`
	DebtorID    int             `db:"debtor_id" json:"debtorId"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	PaymentDate time.Time       `db:"payment_date" json:"paymentDate"`
}

func errInvalidStatus(s string) error {
	return fmt.Errorf("invalid status %q", s)
}
