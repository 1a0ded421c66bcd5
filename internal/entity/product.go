package entity

import (
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/shopspring/decimal"
)

// Product is an inventory item. TotalPrice is the acquisition cost of the
// whole batch (unit price times quantity at purchase time) and is what the
// expense aggregates charge against the purchase window.
type Product struct {
	ID int `db:"id" json:"id"`
	ProductInsert
}

type ProductInsert struct {
	Name         string          `db:"name" json:"name" valid:"required"`
	UnitPrice    decimal.Decimal `db:"unit_price" json:"unitPrice"`
	Quantity     int             `db:"quantity" json:"quantity"`
	TotalPrice   decimal.Decimal `db:"total_price" json:"totalPrice"`
	PurchaseDate time.Time       `db:"purchase_date" json:"purchaseDate"`
	Category     string          `db:"category" json:"category"`
}

func (pi *ProductInsert) Validate() error {
	_, err := govalidator.ValidateStruct(pi)
	return err
}
