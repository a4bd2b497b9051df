package checkout

import (
	"context"
	"sort"
	"sync"
	"time"
)

// InMemoryRepository backs tests and local runs without postgres.
type InMemoryRepository struct {
	mu     sync.RWMutex
	orders []*Order
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order.CreatedAt = time.Now().UTC()
	stored := *order
	r.orders = append(r.orders, &stored)
	return nil
}

func (r *InMemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*Order
	for _, o := range r.orders {
		if o.UserID == userID {
			cp := *o
			out = append(out, &cp)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *InMemoryRepository) ListRecent(ctx context.Context, limit int) ([]*Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Order, 0, len(r.orders))
	for _, o := range r.orders {
		cp := *o
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *InMemoryRepository) UpdateStatus(ctx context.Context, orderID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.orders {
		if o.ID == orderID {
			o.Status = status
			return nil
		}
	}
	return ErrOrderNotFound
}
