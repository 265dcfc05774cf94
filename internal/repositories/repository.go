package repository

import (
	"context"
	"errors"

	"github.com/marketverse/storefront/internal/models"
)

// ErrNotFound is the store-level not-found signal. Both backends return it
// for unknown or malformed identifiers; services translate it to an HTTP 404.
var ErrNotFound = errors.New("record not found")

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	ListProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error)
	ListProductsByOwner(ctx context.Context, owner string) ([]models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id string) error
	ListCategories(ctx context.Context) ([]string, error)
	Reset(ctx context.Context) error
}

type CartRepository interface {
	GetCart(ctx context.Context, userEmail string) ([]models.CartItem, error)
	AddItem(ctx context.Context, userEmail, productID string, quantity int) ([]models.CartItem, error)
	SetItemQuantity(ctx context.Context, userEmail, productID string, quantity int) ([]models.CartItem, error)
	RemoveItem(ctx context.Context, userEmail, productID string) ([]models.CartItem, error)
	ClearCart(ctx context.Context, userEmail string) error
	Reset(ctx context.Context) error
}

type OrderRepository interface {
	// CreateOrder persists the order and clears the owner's cart as one
	// atomic step. A failed insert leaves the cart untouched.
	CreateOrder(ctx context.Context, order *models.Order) error
	ListOrdersByUser(ctx context.Context, userEmail string) ([]models.Order, error)
	Reset(ctx context.Context) error
}
