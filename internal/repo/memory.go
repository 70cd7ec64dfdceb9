package repo

import (
	"context"
	"sync"
	"time"

	"github.com/opencompanybot/registration-service/internal/entities"
)

// MemoryRepo keeps orders in process memory with the same conditional-update
// semantics as the postgres store. Used by tests and local runs without a
// database.
type MemoryRepo struct {
	mu     sync.RWMutex
	orders map[string]entities.Order
	byRef  map[string]string
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		orders: make(map[string]entities.Order),
		byRef:  make(map[string]string),
	}
}

func (r *MemoryRepo) Create(_ context.Context, o entities.Order) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[o.OrderID]; ok {
		return entities.Order{}, entities.ErrOrderExists
	}
	if o.PaymentReference != "" {
		if _, ok := r.byRef[o.PaymentReference]; ok {
			return entities.Order{}, entities.ErrOrderExists
		}
	}

	now := time.Now().UTC()
	o.Status = entities.StatusPending
	o.CreatedAt = now
	o.UpdatedAt = now
	o.Version = 1

	r.orders[o.OrderID] = o
	if o.PaymentReference != "" {
		r.byRef[o.PaymentReference] = o.OrderID
	}
	return o, nil
}

func (r *MemoryRepo) GetByID(_ context.Context, orderID string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (r *MemoryRepo) GetByPaymentReference(_ context.Context, ref string) (entities.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orderID, ok := r.byRef[ref]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return r.orders[orderID], nil
}

func (r *MemoryRepo) CompareAndUpdate(
	_ context.Context,
	orderID string,
	expectedVersion int64,
	mutate func(*entities.Order) error,
) (entities.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if order.Version != expectedVersion {
		return entities.Order{}, entities.ErrVersionConflict
	}

	if err := mutate(&order); err != nil {
		return entities.Order{}, err
	}

	order.UpdatedAt = time.Now().UTC()
	order.Version = expectedVersion + 1
	r.orders[orderID] = order
	return order, nil
}

func (r *MemoryRepo) ListExpired(_ context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	return r.listInStatus(entities.StatusPending, olderThan, limit, func(o entities.Order) time.Time {
		return o.CreatedAt
	}), nil
}

func (r *MemoryRepo) ListStuckPaid(_ context.Context, olderThan time.Time, limit int) ([]entities.Order, error) {
	return r.listInStatus(entities.StatusPaid, olderThan, limit, func(o entities.Order) time.Time {
		return o.UpdatedAt
	}), nil
}

func (r *MemoryRepo) listInStatus(
	status entities.Status,
	olderThan time.Time,
	limit int,
	ts func(entities.Order) time.Time,
) []entities.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]entities.Order, 0)
	for _, order := range r.orders {
		if order.Status == status && ts(order).Before(olderThan) {
			orders = append(orders, order)
			if len(orders) == limit {
				break
			}
		}
	}
	return orders
}
