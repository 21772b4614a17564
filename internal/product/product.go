package product

// Product is the source of truth for stock. Stock only changes through
// RemoveStock and AddStock so it can never be driven below zero in memory;
// the DB CHECK constraint backs the same invariant at persistence time.
type Product struct {
	ID       int64
	Name     string
	Price    int64
	Stock    int
	ImageURL string
}

// RemoveStock reserves qty units. Fails without mutating when the product
// does not have that many units left.
func (p *Product) RemoveStock(qty int) error {
	if qty > p.Stock {
		return ErrInsufficientStock
	}
	p.Stock -= qty
	return nil
}

// AddStock releases qty units back, e.g. when a cart item is removed.
func (p *Product) AddStock(qty int) {
	p.Stock += qty
}
