package cart

import (
	"context"
	"database/sql"
	"errors"

	"shopping-cart-api/internal/customer"
	"shopping-cart-api/internal/messaging/kafka/producer"
	"shopping-cart-api/internal/product"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type EventPublisher interface {
	PublishCartEvent(ctx context.Context, event producer.CartEvent) error
}

type Service interface {
	FindCartItemsByCustomerName(ctx context.Context, customerName string) ([]CartItemResponse, error)
	AddCart(ctx context.Context, customerName string, req AddCartRequest) (CartItemResponse, error)
	DeleteCart(ctx context.Context, customerName string, cartItemID int64) error
	UpdateQuantity(ctx context.Context, customerName string, cartItemID int64, quantity int) error
}

type service struct {
	db        *sql.DB
	repo      Repository
	customers customer.Repository
	products  product.Repository
	events    EventPublisher
	validate  *validator.Validate
	logger    *zap.Logger
}

type Deps struct {
	DB        *sql.DB
	Repo      Repository
	Customers customer.Repository
	Products  product.Repository
	Events    EventPublisher
	Logger    *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.DB == nil {
		panic("cart service: db cannot be nil")
	}
	if deps.Repo == nil || deps.Customers == nil || deps.Products == nil {
		panic("cart service: repositories cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		db:        deps.DB,
		repo:      deps.Repo,
		customers: deps.Customers,
		products:  deps.Products,
		events:    deps.Events,
		validate:  validator.New(),
		logger:    deps.Logger,
	}
}

func (s *service) FindCartItemsByCustomerName(ctx context.Context, customerName string) ([]CartItemResponse, error) {
	customerID, err := s.resolveCustomerID(ctx, s.customers, customerName)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.ListByCustomerID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	items := make([]CartItemResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, CartItemResponse{
			CartItemID: row.ID,
			ProductID:  row.ProductID,
			Name:       row.Name,
			Price:      row.Price,
			Stock:      row.Stock,
			ImageURL:   row.ImageURL,
			Quantity:   row.Quantity,
		})
	}
	return items, nil
}

// AddCart reserves stock for the requested quantity and creates the cart
// item, all inside one transaction: the product row is locked for the
// duration, so two adds racing on the same product serialize instead of both
// reading the same pre-decrement stock.
func (s *service) AddCart(ctx context.Context, customerName string, req AddCartRequest) (CartItemResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartItemResponse{}, mapValidationError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return CartItemResponse{}, err
	}
	defer tx.Rollback()

	customers := s.customers.WithTx(tx)
	products := s.products.WithTx(tx)
	items := s.repo.WithTx(tx)

	customerID, err := s.resolveCustomerID(ctx, customers, customerName)
	if err != nil {
		return CartItemResponse{}, err
	}

	p, err := products.GetByIDForUpdate(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CartItemResponse{}, product.ErrProductNotFound
		}
		return CartItemResponse{}, err
	}

	if err := p.RemoveStock(req.Quantity); err != nil {
		return CartItemResponse{}, err
	}
	if err := products.UpdateStock(ctx, p.ID, p.Stock); err != nil {
		return CartItemResponse{}, classifyStoreError(err)
	}

	itemID, err := items.Insert(ctx, InsertCartItemParams{
		CustomerID: customerID,
		ProductID:  p.ID,
		Quantity:   req.Quantity,
	})
	if err != nil {
		return CartItemResponse{}, classifyStoreError(err)
	}

	if err := tx.Commit(); err != nil {
		return CartItemResponse{}, classifyStoreError(err)
	}

	s.publish(ctx, producer.CartEvent{
		EventType:  producer.EventCartItemAdded,
		CustomerID: customerID,
		CartItemID: itemID,
		ProductID:  p.ID,
		Quantity:   req.Quantity,
	})

	return CartItemResponse{
		CartItemID: itemID,
		ProductID:  p.ID,
		Name:       p.Name,
		Price:      p.Price,
		Stock:      p.Stock,
		ImageURL:   p.ImageURL,
		Quantity:   req.Quantity,
	}, nil
}

// DeleteCart restores the item's reserved stock and removes the row. The
// ownership check runs before any mutation: a foreign cart item id produces
// no side effect at all.
func (s *service) DeleteCart(ctx context.Context, customerName string, cartItemID int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	customers := s.customers.WithTx(tx)
	products := s.products.WithTx(tx)
	items := s.repo.WithTx(tx)

	customerID, err := s.resolveCustomerID(ctx, customers, customerName)
	if err != nil {
		return err
	}

	owned, err := items.ExistsByIDAndCustomerID(ctx, cartItemID, customerID)
	if err != nil {
		return err
	}
	if !owned {
		return ErrNotOwnedByCustomer
	}

	item, err := items.GetByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCartItemNotFound
		}
		return err
	}

	p, err := products.GetByIDForUpdate(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product.ErrProductNotFound
		}
		return err
	}

	p.AddStock(item.Quantity)
	if err := products.UpdateStock(ctx, p.ID, p.Stock); err != nil {
		return classifyStoreError(err)
	}

	if err := items.Delete(ctx, cartItemID); err != nil {
		return classifyStoreError(err)
	}

	if err := tx.Commit(); err != nil {
		return classifyStoreError(err)
	}

	s.publish(ctx, producer.CartEvent{
		EventType:  producer.EventCartItemRemoved,
		CustomerID: customerID,
		CartItemID: cartItemID,
		ProductID:  item.ProductID,
		Quantity:   item.Quantity,
	})

	return nil
}

// UpdateQuantity sets the item's quantity and applies the stock delta
// (oldQuantity - newQuantity) to the product: growing the item consumes more
// stock, shrinking it gives stock back. The same ownership check as
// DeleteCart applies here; the caller may only touch their own items.
func (s *service) UpdateQuantity(ctx context.Context, customerName string, cartItemID int64, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	customers := s.customers.WithTx(tx)
	products := s.products.WithTx(tx)
	items := s.repo.WithTx(tx)

	customerID, err := s.resolveCustomerID(ctx, customers, customerName)
	if err != nil {
		return err
	}

	item, err := items.GetByID(ctx, cartItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrCartItemNotFound
		}
		return err
	}
	if item.CustomerID != customerID {
		return ErrNotOwnedByCustomer
	}

	p, err := products.GetByIDForUpdate(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return product.ErrProductNotFound
		}
		return err
	}

	delta := item.Quantity - quantity
	if delta >= 0 {
		p.AddStock(delta)
	} else if err := p.RemoveStock(-delta); err != nil {
		return err
	}

	if err := products.UpdateStock(ctx, p.ID, p.Stock); err != nil {
		return classifyStoreError(err)
	}
	if err := items.UpdateQuantity(ctx, cartItemID, quantity); err != nil {
		return classifyStoreError(err)
	}

	if err := tx.Commit(); err != nil {
		return classifyStoreError(err)
	}

	s.publish(ctx, producer.CartEvent{
		EventType:  producer.EventCartItemUpdated,
		CustomerID: customerID,
		CartItemID: cartItemID,
		ProductID:  item.ProductID,
		Quantity:   quantity,
	})

	return nil
}

func (s *service) resolveCustomerID(ctx context.Context, customers customer.Repository, customerName string) (int64, error) {
	id, err := customers.FindIDByUsername(ctx, customerName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, customer.ErrCustomerNotFound
		}
		return 0, err
	}
	return id, nil
}

// publish is fire-and-forget: cart mutations already committed, a broker
// hiccup must not turn them into HTTP failures.
func (s *service) publish(ctx context.Context, event producer.CartEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishCartEvent(ctx, event); err != nil {
		s.logger.Warn("cart event publish failed",
			zap.String("event_type", event.EventType),
			zap.Int64("cart_item_id", event.CartItemID),
			zap.Error(err),
		)
	}
}
