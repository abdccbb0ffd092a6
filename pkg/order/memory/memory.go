// Package memory implements an in-memory order repository.
package memory

import (
	"context"
	"strconv"
	"sync"

	"biltiflow/pkg/order"
)

// Repository provides an in-memory implementation of order.Repository.
// Orders are kept in insertion order.
type Repository struct {
	mu     sync.RWMutex
	orders []order.Order
	seq    int
}

// New creates a repository holding the given orders. Ids handed out by
// Create continue after len(seed).
func New(seed ...order.Order) *Repository {
	r := &Repository{orders: make([]order.Order, 0, len(seed)), seq: len(seed)}
	for _, o := range seed {
		r.orders = append(r.orders, o.Clone())
	}
	return r
}

// Create assigns the next id and appends the order.
func (r *Repository) Create(ctx context.Context, o order.Order) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := o.Clone()
	if stored == nil {
		stored = order.Order{}
	}
	r.seq++
	stored[order.IDField] = strconv.Itoa(r.seq)
	r.orders = append(r.orders, stored)
	return stored.Clone(), nil
}

// Get retrieves the first order with the given id.
func (r *Repository) Get(ctx context.Context, id string) (order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, order.ErrNotFound
	}
	return r.orders[i].Clone(), nil
}

// List returns all orders.
func (r *Repository) List(ctx context.Context) ([]order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.Clone())
	}
	return out, nil
}

// Update merges patch into the first order with the given id.
func (r *Repository) Update(ctx context.Context, id string, patch order.Order) (order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return nil, order.ErrNotFound
	}
	r.orders[i] = r.orders[i].Merge(patch)
	return r.orders[i].Clone(), nil
}

// Delete removes the first order with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return order.ErrNotFound
	}
	r.orders = append(r.orders[:i], r.orders[i+1:]...)
	return nil
}

func (r *Repository) indexOf(id string) int {
	for i, o := range r.orders {
		if o.ID() == id {
			return i
		}
	}
	return -1
}
