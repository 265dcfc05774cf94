package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/marketverse/storefront/internal/models"
)

// orderMemoryRepo keeps finalized orders per user. It holds a reference to
// the cart store so checkout can clear the cart in the same step as the
// order insert; the insert itself cannot fail, which keeps the pair atomic.
type orderMemoryRepo struct {
	mu     sync.RWMutex
	orders map[string][]models.Order
	carts  CartRepository
}

func NewOrderMemoryRepo(carts CartRepository) OrderRepository {
	return &orderMemoryRepo{
		orders: make(map[string][]models.Order),
		carts:  carts,
	}
}

func (r *orderMemoryRepo) CreateOrder(ctx context.Context, order *models.Order) error {
	r.mu.Lock()

	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now

	r.orders[order.UserID] = append(r.orders[order.UserID], *order)
	r.mu.Unlock()

	return r.carts.ClearCart(ctx, order.UserID)
}

func (r *orderMemoryRepo) ListOrdersByUser(ctx context.Context, userEmail string) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := append([]models.Order{}, r.orders[userEmail]...)

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	return orders, nil
}

func (r *orderMemoryRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = make(map[string][]models.Order)

	return nil
}
