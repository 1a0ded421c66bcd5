package dependency

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kagabo/duka-manager/internal/entity"
	"github.com/shopspring/decimal"
)

//go:generate mockery --with-expecter --case underscore --all --output=./mocks

type (
	Products interface {
		// ListProducts returns products purchased inside the window,
		// newest purchase first. An open window lists everything.
		ListProducts(ctx context.Context, w entity.DateWindow) ([]entity.Product, error)
		// AddProduct inserts an inventory batch and returns its id.
		AddProduct(ctx context.Context, prd *entity.ProductInsert) (int, error)
		// GetProductById returns a product by its id.
		GetProductById(ctx context.Context, id int) (*entity.Product, error)
		// ReduceStock decrements remaining quantity, failing rather than
		// overselling.
		ReduceStock(ctx context.Context, productId, quantity int) error
	}

	Sales interface {
		// ListSales returns sales with sale_date inside the window, newest first.
		ListSales(ctx context.Context, w entity.DateWindow) ([]entity.Sale, error)
		// RecentSales returns the newest sales up to limit.
		RecentSales(ctx context.Context, limit int) ([]entity.Sale, error)
		// AddSale records a sale: derives cost price and profit from the
		// product, reduces stock, and opens a debtor for unpaid sales.
		AddSale(ctx context.Context, sale *entity.SaleInsert) (int, error)
		// UpdateSaleStatus changes payment status; marking a sale paid also
		// settles the matching debtor record.
		UpdateSaleStatus(ctx context.Context, id int, status entity.PaymentStatus) error
	}

	Debtors interface {
		// ListDebtors returns all debtors ordered by due date.
		ListDebtors(ctx context.Context) ([]entity.Debtor, error)
		// RecentDebtors returns up to limit unpaid debtors, earliest due first.
		RecentDebtors(ctx context.Context, limit int) ([]entity.Debtor, error)
		// AddDebtor inserts a debtor and returns its id. An empty status
		// defaults to pending.
		AddDebtor(ctx context.Context, d *entity.DebtorInsert) (int, error)
		// MarkDebtorPaid settles a debtor and records the payment.
		MarkDebtorPaid(ctx context.Context, id int) error
	}

	Expenses interface {
		// ListExpenses returns expenses inside the window, newest first.
		ListExpenses(ctx context.Context, w entity.DateWindow) ([]entity.Expense, error)
		// AddExpense inserts an operating expense and returns its id.
		AddExpense(ctx context.Context, e *entity.ExpenseInsert) (int, error)
	}

	Notes interface {
		ListNotes(ctx context.Context) ([]entity.Note, error)
		AddNote(ctx context.Context, n *entity.NoteInsert) (int, error)
		DeleteNote(ctx context.Context, id int) error
	}

	// Stats are the scalar dashboard aggregates. Every method tolerates a
	// half-open or open window; empty result sets aggregate to zero.
	Stats interface {
		// TotalRevenue sums amounts of paid sales in the window.
		TotalRevenue(ctx context.Context, w entity.DateWindow) (decimal.Decimal, error)
		// TotalProfit sums profit of paid sales in the window.
		TotalProfit(ctx context.Context, w entity.DateWindow) (decimal.Decimal, error)
		// TotalExpenses sums operating expenses plus inventory purchase
		// cost in the window.
		TotalExpenses(ctx context.Context, w entity.DateWindow) (decimal.Decimal, error)
		// ProductsSold sums quantities of all sales in the window,
		// regardless of payment status.
		ProductsSold(ctx context.Context, w entity.DateWindow) (int, error)
		// ActiveDebtors counts debtors whose status is not paid. A non-nil
		// asOf restricts to due dates on or before it, giving a snapshot
		// of the debtor book as it stood at that date.
		ActiveDebtors(ctx context.Context, asOf *time.Time) (int, error)
	}

	Repository interface {
		Products() Products
		Sales() Sales
		Debtors() Debtors
		Expenses() Expenses
		Notes() Notes
		Stats() Stats
		Tx(ctx context.Context, f func(context.Context, Repository) error) error
		TxBegin(ctx context.Context) (Repository, error)
		TxCommit(ctx context.Context) error
		TxRollback(ctx context.Context) error
		Now() time.Time
		InTx() bool
		Close()
		IsErrorRepeat(err error) bool
		DB() DB
	}

	// DB represents database interface.
	DB interface {
		BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
		ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)

		// sqlx methods
		GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
		NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
		QueryRowxContext(ctx context.Context, query string, args ...interface{}) *sqlx.Row
		QueryxContext(ctx context.Context, query string, args ...interface{}) (*sqlx.Rows, error)
		SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	}
)
