package repository

import (
	"context"
	"sync"
	"time"

	"github.com/marketverse/storefront/internal/models"
)

// cartMemoryRepo keys carts by user email. Per-user mutations serialize on
// the store mutex so concurrent handlers cannot interleave line updates.
type cartMemoryRepo struct {
	mu    sync.RWMutex
	carts map[string][]models.CartItem
}

func NewCartMemoryRepo() *cartMemoryRepo {
	return &cartMemoryRepo{carts: make(map[string][]models.CartItem)}
}

func (r *cartMemoryRepo) GetCart(ctx context.Context, userEmail string) ([]models.CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneCart(r.carts[userEmail]), nil
}

func (r *cartMemoryRepo) AddItem(ctx context.Context, userEmail, productID string, quantity int) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[userEmail]

	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity += quantity

			return cloneCart(cart), nil
		}
	}

	cart = append(cart, models.CartItem{
		ProductID: productID,
		Quantity:  quantity,
		AddedAt:   time.Now().UTC(),
	})
	r.carts[userEmail] = cart

	return cloneCart(cart), nil
}

func (r *cartMemoryRepo) SetItemQuantity(ctx context.Context, userEmail, productID string, quantity int) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[userEmail]

	for i := range cart {
		if cart[i].ProductID != productID {
			continue
		}

		if quantity <= 0 {
			cart = append(cart[:i], cart[i+1:]...)
			r.carts[userEmail] = cart
		} else {
			cart[i].Quantity = quantity
		}

		break
	}

	return cloneCart(r.carts[userEmail]), nil
}

func (r *cartMemoryRepo) RemoveItem(ctx context.Context, userEmail, productID string) ([]models.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cart := r.carts[userEmail]
	filtered := cart[:0]

	for _, item := range cart {
		if item.ProductID != productID {
			filtered = append(filtered, item)
		}
	}

	r.carts[userEmail] = filtered

	return cloneCart(filtered), nil
}

func (r *cartMemoryRepo) ClearCart(ctx context.Context, userEmail string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userEmail] = nil

	return nil
}

func (r *cartMemoryRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts = make(map[string][]models.CartItem)

	return nil
}

func cloneCart(cart []models.CartItem) []models.CartItem {
	return append([]models.CartItem{}, cart...)
}
