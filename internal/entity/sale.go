package entity

import (
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

// PaymentStatus of a sale. Only paid sales count toward realized revenue
// and profit; every status counts toward gross sales volume (units sold).
type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusOverdue PaymentStatus = "overdue"
)

func (ps PaymentStatus) Valid() bool {
	switch ps {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusPartial, PaymentStatusOverdue:
		return true
	}
	return false
}

// Sale is a recorded sale. CostPrice and Profit are frozen at creation
// time from the product's unit price, so later price edits don't rewrite
// historical margins.
type Sale struct {
	ID            int             `db:"id" json:"id"`
	CustomerName  string          `db:"customer_name" json:"customerName"`
	ProductID     int             `db:"product_id" json:"productId"`
	ProductName   string          `db:"product_name" json:"productName"`
	Quantity      int             `db:"quantity" json:"quantity"`
	Amount        decimal.Decimal `db:"amount" json:"amount"`
	CostPrice     decimal.Decimal `db:"cost_price" json:"costPrice"`
	Profit        decimal.Decimal `db:"profit" json:"profit"`
	SaleDate      time.Time       `db:"sale_date" json:"saleDate"`
	PaymentStatus PaymentStatus   `db:"payment_status" json:"paymentStatus"`
	DueDate       *time.Time      `db:"due_date" json:"dueDate,omitempty"`
}

// SaleInsert is the caller-supplied part of a sale. Cost price, profit and
// the debtor side effects are derived by the store.
type SaleInsert struct {
	CustomerName  string          `json:"customerName" valid:"required"`
	ProductID     int             `json:"productId" valid:"required"`
	Quantity      int             `json:"quantity" valid:"required"`
	Amount        decimal.Decimal `json:"amount"`
	SaleDate      time.Time       `json:"saleDate"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
}

func (si *SaleInsert) Validate() error {
	if !si.PaymentStatus.Valid() {
		return errInvalidStatus(string(si.PaymentStatus))
	}
	_, err := govalidator.ValidateStruct(si)
	return err
}
