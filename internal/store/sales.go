package store

import (
	"context"
	"fmt"

	"github.com/kagabo/duka-manager/internal/dependency"
	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
)

type saleStore struct {
	*MYSQLStore
}

const saleColumns = `s.id, s.customer_name, s.product_id, p.name AS product_name,
	s.quantity, s.amount, s.cost_price, s.profit, s.sale_date, s.payment_status, s.due_date`

// ListSales returns sales whose sale date falls inside the window, newest
// first.
func (ms *MYSQLStore) ListSales(ctx context.Context, w entity.DateWindow) ([]entity.Sale, error) {
	params := map[string]any{}
	query := `
	SELECT ` + saleColumns + `
	FROM sale s JOIN product p ON s.product_id = p.id` +
		whereClause(windowConds("s.sale_date", w, params)) + `
	ORDER BY s.sale_date DESC, s.id DESC`

	sales, err := QueryListNamed[entity.Sale](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get sales: %w", err)
	}
	return sales, nil
}

// RecentSales returns the newest sales up to limit.
func (ms *MYSQLStore) RecentSales(ctx context.Context, limit int) ([]entity.Sale, error) {
	query := `
	SELECT ` + saleColumns + `
	FROM sale s JOIN product p ON s.product_id = p.id
	ORDER BY s.sale_date DESC, s.id DESC
	LIMIT :limit`

	sales, err := QueryListNamed[entity.Sale](ctx, ms.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get recent sales: %w", err)
	}
	return sales, nil
}

// debtorGraceDays is how long an unpaid customer gets before a debt
// without an explicit due date becomes due.
const debtorGraceDays = 30

// AddSale records a sale inside one transaction. The cost price and
// profit are derived from the product's unit price at the moment of sale,
// stock is decremented, and any sale that is not fully paid opens a
// debtor for the outstanding amount.
func (ms *MYSQLStore) AddSale(ctx context.Context, sale *entity.SaleInsert) (int, error) {
	if err := sale.Validate(); err != nil {
		return 0, err
	}

	var saleId int
	err := ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		prd, err := rep.Products().GetProductById(ctx, sale.ProductID)
		if err != nil {
			return err
		}

		costPrice := prd.UnitPrice.Mul(decimal.NewFromInt(int64(sale.Quantity)))
		profit := sale.Amount.Sub(costPrice)

		if err := rep.Products().ReduceStock(ctx, sale.ProductID, sale.Quantity); err != nil {
			return err
		}

		query := `
		INSERT INTO sale (customer_name, product_id, quantity, amount, cost_price, profit, sale_date, payment_status, due_date)
		VALUES (:customerName, :productId, :quantity, :amount, :costPrice, :profit, :saleDate, :paymentStatus, :dueDate)`

		params := map[string]any{
			"customerName":  sale.CustomerName,
			"productId":     sale.ProductID,
			"quantity":      sale.Quantity,
			"amount":        sale.Amount,
			"costPrice":     costPrice,
			"profit":        profit,
			"saleDate":      sale.SaleDate.Format(dateLayout),
			"paymentStatus": string(sale.PaymentStatus),
			"dueDate":       nil,
		}
		if sale.DueDate != nil {
			params["dueDate"] = sale.DueDate.Format(dateLayout)
		}
		saleId, err = ExecNamedLastId(ctx, rep.DB(), query, params)
		if err != nil {
			return fmt.Errorf("can't insert sale: %w", err)
		}

		if sale.PaymentStatus != entity.PaymentStatusPaid {
			due := sale.SaleDate.AddDate(0, 0, debtorGraceDays)
			if sale.DueDate != nil {
				due = *sale.DueDate
			}
			// partial and overdue sales open partial/overdue debts, not
			// generic pending ones
			_, err = rep.Debtors().AddDebtor(ctx, &entity.DebtorInsert{
				CustomerName: sale.CustomerName,
				Product:      prd.Name,
				Amount:       sale.Amount,
				DueDate:      due,
				Status:       entity.DebtorStatus(sale.PaymentStatus),
			})
			if err != nil {
				return fmt.Errorf("can't open debtor for sale: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saleId, nil
}

// UpdateSaleStatus changes a sale's payment status. Marking a sale paid
// also settles the matching unpaid debtor, keeping the debtor book
// consistent with the sales ledger.
func (ms *MYSQLStore) UpdateSaleStatus(ctx context.Context, id int, status entity.PaymentStatus) error {
	if !status.Valid() {
		return fmt.Errorf("invalid payment status %q", status)
	}
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		sale, err := QueryNamedOne[entity.Sale](ctx,
			rep.DB(),
			`SELECT `+saleColumns+` FROM sale s JOIN product p ON s.product_id = p.id WHERE s.id = :id`,
			map[string]any{"id": id})
		if err != nil {
			return fmt.Errorf("can't get sale: %w", err)
		}

		err = ExecNamed(ctx, rep.DB(),
			`UPDATE sale SET payment_status = :status WHERE id = :id`,
			map[string]any{"status": string(status), "id": id})
		if err != nil {
			return fmt.Errorf("can't update sale status: %w", err)
		}

		if status != entity.PaymentStatusPaid {
			return nil
		}
		type row struct {
			ID int `db:"id"`
		}
		debtors, err := QueryListNamed[row](ctx, rep.DB(),
			`SELECT id FROM debtor
			WHERE customer_name = :customerName AND status != 'paid'
			ORDER BY due_date ASC LIMIT 1`,
			map[string]any{"customerName": sale.CustomerName})
		if err != nil {
			return fmt.Errorf("can't find debtor for sale: %w", err)
		}
		if len(debtors) == 0 {
			return nil
		}
		return rep.Debtors().MarkDebtorPaid(ctx, debtors[0].ID)
	})
}
