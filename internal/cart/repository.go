package cart

import "context"

// Repository persists one cart per user id.
// Get returns an empty cart when none is stored yet.
type Repository interface {
	Get(ctx context.Context, userID string) (*Cart, error)
	Save(ctx context.Context, userID string, cart *Cart) error
	Delete(ctx context.Context, userID string) error
}
