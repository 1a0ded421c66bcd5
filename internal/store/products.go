package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kagabo/duka-manager/internal/entity"
)

type productStore struct {
	*MYSQLStore
}

// ListProducts returns inventory batches whose purchase date falls inside
// the window, newest purchase first.
func (ms *MYSQLStore) ListProducts(ctx context.Context, w entity.DateWindow) ([]entity.Product, error) {
	params := map[string]any{}
	query := `
	SELECT id, name, unit_price, quantity, total_price, purchase_date, category
	FROM product` + whereClause(windowConds("purchase_date", w, params)) + `
	ORDER BY purchase_date DESC, id DESC`

	products, err := QueryListNamed[entity.Product](ctx, ms.DB(), query, params)
	if err != nil {
		return nil, fmt.Errorf("can't get products: %w", err)
	}
	return products, nil
}

// AddProduct inserts an inventory batch and returns its id. The total
// price is stored as submitted, not derived, so partial-discount
// purchases keep their real cost.
func (ms *MYSQLStore) AddProduct(ctx context.Context, prd *entity.ProductInsert) (int, error) {
	if err := prd.Validate(); err != nil {
		return 0, err
	}
	query := `
	INSERT INTO product (name, unit_price, quantity, total_price, purchase_date, category)
	VALUES (:name, :unitPrice, :quantity, :totalPrice, :purchaseDate, :category)`

	id, err := ExecNamedLastId(ctx, ms.DB(), query, map[string]any{
		"name":         prd.Name,
		"unitPrice":    prd.UnitPrice,
		"quantity":     prd.Quantity,
		"totalPrice":   prd.TotalPrice,
		"purchaseDate": prd.PurchaseDate.Format(dateLayout),
		"category":     prd.Category,
	})
	if err != nil {
		return 0, fmt.Errorf("can't insert product: %w", err)
	}
	return id, nil
}

func (ms *MYSQLStore) GetProductById(ctx context.Context, id int) (*entity.Product, error) {
	query := `
	SELECT id, name, unit_price, quantity, total_price, purchase_date, category
	FROM product WHERE id = :id`

	prd, err := QueryNamedOne[entity.Product](ctx, ms.DB(), query, map[string]any{"id": id})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("product %d not found", id)
		}
		return nil, fmt.Errorf("can't get product by id: %w", err)
	}
	return &prd, nil
}

// ReduceStock decrements the remaining quantity of a product batch,
// refusing to oversell.
func (ms *MYSQLStore) ReduceStock(ctx context.Context, productId, quantity int) error {
	res, err := ms.DB().ExecContext(ctx,
		`UPDATE product SET quantity = quantity - ? WHERE id = ? AND quantity >= ?`,
		quantity, productId, quantity)
	if err != nil {
		return fmt.Errorf("can't reduce stock: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("not enough stock for product %d", productId)
	}
	return nil
}
