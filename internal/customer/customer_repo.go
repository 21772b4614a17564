package customer

import (
	"context"

	"shopping-cart-api/internal/shared/database"
)

type Customer struct {
	ID          int64
	Username    string
	Password    string
	PhoneNumber string
	Address     string
}

type CreateCustomerParams struct {
	Username    string
	Password    string
	PhoneNumber string
	Address     string
}

type Repository interface {
	WithTx(tx database.DBTX) Repository

	Create(ctx context.Context, arg CreateCustomerParams) (Customer, error)
	GetByUsername(ctx context.Context, username string) (Customer, error)
	FindIDByUsername(ctx context.Context, username string) (int64, error)
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

func (r *repository) Create(ctx context.Context, arg CreateCustomerParams) (Customer, error) {
	c := Customer{
		Username:    arg.Username,
		Password:    arg.Password,
		PhoneNumber: arg.PhoneNumber,
		Address:     arg.Address,
	}
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO customers (username, password, phone_number, address)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		arg.Username, arg.Password, arg.PhoneNumber, arg.Address,
	).Scan(&c.ID)
	return c, err
}

func (r *repository) GetByUsername(ctx context.Context, username string) (Customer, error) {
	var c Customer
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password, phone_number, address
		 FROM customers
		 WHERE username = $1`,
		username,
	).Scan(&c.ID, &c.Username, &c.Password, &c.PhoneNumber, &c.Address)
	return c, err
}

func (r *repository) FindIDByUsername(ctx context.Context, username string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`SELECT id FROM customers WHERE username = $1`,
		username,
	).Scan(&id)
	return id, err
}
