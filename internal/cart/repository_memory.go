package cart

import (
	"context"
	"sync"
)

// InMemoryRepository is the session-scoped variant: carts live only as
// long as the process. Also used by tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		carts: make(map[string]Cart),
	}
}

func (r *InMemoryRepository) Get(ctx context.Context, userID string) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.carts[userID]
	if !ok {
		return &Cart{}, nil
	}

	c := Cart{Items: make([]Item, len(stored.Items))}
	copy(c.Items, stored.Items)
	return &c, nil
}

func (r *InMemoryRepository) Save(ctx context.Context, userID string, cart *Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := Cart{Items: make([]Item, len(cart.Items))}
	copy(stored.Items, cart.Items)
	r.carts[userID] = stored
	return nil
}

func (r *InMemoryRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)
	return nil
}
