package store

import (
	"context"
	"fmt"

	"github.com/kagabo/duka-manager/internal/dependency"
	"github.com/kagabo/duka-manager/internal/entity"
)

type debtorStore struct {
	*MYSQLStore
}

// ListDebtors returns all debtors, earliest due first so the most urgent
// debt tops the list.
func (ms *MYSQLStore) ListDebtors(ctx context.Context) ([]entity.Debtor, error) {
	query := `
	SELECT id, customer_name, product, amount, due_date, status
	FROM debtor
	ORDER BY due_date ASC, id ASC`

	debtors, err := QueryListNamed[entity.Debtor](ctx, ms.DB(), query, map[string]any{})
	if err != nil {
		return nil, fmt.Errorf("can't get debtors: %w", err)
	}
	return debtors, nil
}

// RecentDebtors returns up to limit unpaid debtors, earliest due first.
func (ms *MYSQLStore) RecentDebtors(ctx context.Context, limit int) ([]entity.Debtor, error) {
	query := `
	SELECT id, customer_name, product, amount, due_date, status
	FROM debtor
	WHERE status != 'paid'
	ORDER BY due_date ASC, id ASC
	LIMIT :limit`

	debtors, err := QueryListNamed[entity.Debtor](ctx, ms.DB(), query, map[string]any{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("can't get recent debtors: %w", err)
	}
	return debtors, nil
}

// AddDebtor inserts a debtor and returns its id. Validate defaults an
// empty status to pending, so manual entries open as pending while
// sale-opened debtors keep the sale's status.
func (ms *MYSQLStore) AddDebtor(ctx context.Context, d *entity.DebtorInsert) (int, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	query := `
	INSERT INTO debtor (customer_name, product, amount, due_date, status)
	VALUES (:customerName, :product, :amount, :dueDate, :status)`

	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"customerName": d.CustomerName,
		"product":      d.Product,
		"amount":       d.Amount,
		"dueDate":      d.DueDate.Format(dateLayout),
		"status":       string(d.Status),
	})
	if err != nil {
		return 0, fmt.Errorf("can't insert debtor: %w", err)
	}
	return id, nil
}

// MarkDebtorPaid settles a debtor and records the payment in the same
// transaction.
func (ms *MYSQLStore) MarkDebtorPaid(ctx context.Context, id int) error {
	return ms.Tx(ctx, func(ctx context.Context, rep dependency.Repository) error {
		debtor, err := QueryNamedOne[entity.Debtor](ctx, rep.DB(),
			`SELECT id, customer_name, product, amount, due_date, status FROM debtor WHERE id = :id`,
			map[string]any{"id": id})
		if err != nil {
			return fmt.Errorf("can't get debtor: %w", err)
		}
		if debtor.Status == entity.DebtorStatusPaid {
			return nil
		}

		err = ExecNamed(ctx, rep.DB(),
			`UPDATE debtor SET status = 'paid' WHERE id = :id`,
			map[string]any{"id": id})
		if err != nil {
			return fmt.Errorf("can't settle debtor: %w", err)
		}

		err = ExecNamed(ctx, rep.DB(),
			`INSERT INTO payment (debtor_id, amount, payment_date) VALUES (:debtorId, :amount, :paymentDate)`,
			map[string]any{
				"debtorId":    id,
				"amount":      debtor.Amount,
				"paymentDate": rep.Now().Format(dateLayout),
			})
		if err != nil {
			return fmt.Errorf("can't record payment: %w", err)
		}
		return nil
	})
}
