package entity

import (
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

// Expense is a standalone operating expense. Inventory purchases are not
// recorded here; the expense aggregates add product acquisition cost on top.
type Expense struct {
	ID int `db:"id" json:"id"`
	ExpenseInsert
}

type ExpenseInsert struct {
	Description string          `db:"description" json:"description" valid:"required"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
	ExpenseDate time.Time       `db:"expense_date" json:"expenseDate"`
	Category    string          `db:"category" json:"category"`
}

func (ei *ExpenseInsert) Validate() error {
	_, err := govalidator.ValidateStruct(ei)
	return err
}
