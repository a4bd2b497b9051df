package checkout

import "context"

// Repository is the order store. Create assigns the server-side
// creation timestamp; listing is newest first.
type Repository interface {
	Create(ctx context.Context, order *Order) error
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
	ListRecent(ctx context.Context, limit int) ([]*Order, error)
	UpdateStatus(ctx context.Context, orderID, status string) error
}
