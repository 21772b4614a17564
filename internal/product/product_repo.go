package product

import (
	"context"
	"database/sql"

	"shopping-cart-api/internal/shared/database"
)

type Repository interface {
	WithTx(tx database.DBTX) Repository

	Create(ctx context.Context, p Product) (int64, error)
	List(ctx context.Context) ([]Product, error)
	GetByID(ctx context.Context, id int64) (Product, error)
	// GetByIDForUpdate locks the product row for the remainder of the
	// surrounding transaction, serializing stock read-modify-write cycles.
	GetByIDForUpdate(ctx context.Context, id int64) (Product, error)
	UpdateStock(ctx context.Context, id int64, stock int) error
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

func (r *repository) Create(ctx context.Context, p Product) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO products (name, price, stock, image_url)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.Name, p.Price, p.Stock, p.ImageURL,
	).Scan(&id)
	return id, err
}

func (r *repository) List(ctx context.Context) ([]Product, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, price, stock, image_url FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id int64) (Product, error) {
	return r.get(ctx, `SELECT id, name, price, stock, image_url FROM products WHERE id = $1`, id)
}

func (r *repository) GetByIDForUpdate(ctx context.Context, id int64) (Product, error) {
	return r.get(ctx, `SELECT id, name, price, stock, image_url FROM products WHERE id = $1 FOR UPDATE`, id)
}

func (r *repository) get(ctx context.Context, query string, id int64) (Product, error) {
	var p Product
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.Price, &p.Stock, &p.ImageURL)
	return p, err
}

func (r *repository) UpdateStock(ctx context.Context, id int64, stock int) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE products SET stock = $1 WHERE id = $2`, stock, id)
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
