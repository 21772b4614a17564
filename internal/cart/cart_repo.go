package cart

import (
	"context"
	"database/sql"

	"shopping-cart-api/internal/shared/database"
)

type CartItem struct {
	ID         int64
	CustomerID int64
	ProductID  int64
	Quantity   int
}

type InsertCartItemParams struct {
	CustomerID int64
	ProductID  int64
	Quantity   int
}

// CartItemDetailRow is a cart item joined with its product's current fields.
type CartItemDetailRow struct {
	ID        int64
	ProductID int64
	Name      string
	Price     int64
	Stock     int
	ImageURL  string
	Quantity  int
}

type Repository interface {
	WithTx(tx database.DBTX) Repository

	Insert(ctx context.Context, arg InsertCartItemParams) (int64, error)
	GetByID(ctx context.Context, id int64) (CartItem, error)
	ListByCustomerID(ctx context.Context, customerID int64) ([]CartItemDetailRow, error)
	// ExistsByIDAndCustomerID is the ownership check: an index-backed point
	// lookup instead of listing every owned id and scanning for membership.
	ExistsByIDAndCustomerID(ctx context.Context, id, customerID int64) (bool, error)
	UpdateQuantity(ctx context.Context, id int64, quantity int) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db database.DBTX
}

func NewRepository(db database.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx database.DBTX) Repository {
	return &repository{db: tx}
}

func (r *repository) Insert(ctx context.Context, arg InsertCartItemParams) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO cart_items (customer_id, product_id, quantity)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		arg.CustomerID, arg.ProductID, arg.Quantity,
	).Scan(&id)
	return id, err
}

func (r *repository) GetByID(ctx context.Context, id int64) (CartItem, error) {
	var item CartItem
	err := r.db.QueryRowContext(ctx,
		`SELECT id, customer_id, product_id, quantity
		 FROM cart_items
		 WHERE id = $1`,
		id,
	).Scan(&item.ID, &item.CustomerID, &item.ProductID, &item.Quantity)
	return item, err
}

func (r *repository) ListByCustomerID(ctx context.Context, customerID int64) ([]CartItemDetailRow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ci.id, ci.product_id, p.name, p.price, p.stock, p.image_url, ci.quantity
		 FROM cart_items ci
		 JOIN products p ON p.id = ci.product_id
		 WHERE ci.customer_id = $1
		 ORDER BY ci.id`,
		customerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []CartItemDetailRow{}
	for rows.Next() {
		var row CartItemDetailRow
		if err := rows.Scan(
			&row.ID, &row.ProductID, &row.Name, &row.Price,
			&row.Stock, &row.ImageURL, &row.Quantity,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (r *repository) ExistsByIDAndCustomerID(ctx context.Context, id, customerID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM cart_items WHERE id = $1 AND customer_id = $2)`,
		id, customerID,
	).Scan(&exists)
	return exists, err
}

func (r *repository) UpdateQuantity(ctx context.Context, id int64, quantity int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE cart_items SET quantity = $1 WHERE id = $2`, quantity, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
