package store

import (
	"context"
	"fmt"

	"github.com/kagabo/duka-manager/internal/entity"
)

type expenseStore struct {
	*MYSQLStore
}

// ListExpenses returns expenses inside the window, newest first.
func (ms *MYSQLStore) ListExpenses(ctx context.Context, w entity.DateWindow) ([]entity.Expense, error) {
	params := map[string]any{}
	query := `
	SELECT id, description, amount, expense_date, category
	FROM expense` + whereClause(windowConds("expense_date", w, params)) + `
	ORDER BY expense_date DESC, id DESC`

	expenses, err := QueryListNamed[entity.Expense](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get expenses: %w", err)
	}
	return expenses, nil
}

func (ms *MYSQLStore) AddExpense(ctx context.Context, e *entity.ExpenseInsert) (int, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	query := `
	INSERT INTO expense (description, amount, expense_date, category)
	VALUES (:description, :amount, :expenseDate, :category)`

	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"description": e.Description,
		"amount":      e.Amount,
		"expenseDate": e.ExpenseDate.Format(dateLayout),
		"category":    e.Category,
	})
	if err != nil {
		return 0, fmt.Errorf("can't insert expense: %w", err)
	}
	return id, nil
}
