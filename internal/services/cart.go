package service

import (
	"context"
	"errors"

	appErrors "github.com/marketverse/storefront/internal/errors"
	"github.com/marketverse/storefront/internal/models"
	repository "github.com/marketverse/storefront/internal/repositories"
)

type CartService interface {
	GetCart(ctx context.Context, userEmail string) ([]models.PopulatedCartItem, error)
	AddItem(ctx context.Context, req *models.AddCartItemRequest) (*models.CartResponse, error)
	UpdateQuantity(ctx context.Context, req *models.UpdateCartItemRequest) (*models.CartResponse, error)
	RemoveItem(ctx context.Context, userEmail, productID string) (*models.CartResponse, error)
	ClearCart(ctx context.Context, userEmail string) (*models.CartResponse, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) CartService {
	return &cartService{cartRepo: cartRepo, productRepo: productRepo}
}

// GetCart joins each line with its live product. Lines whose product has
// been deleted since they were added are omitted from the view but stay in
// the stored cart; checkout is where they become a hard error.
func (s *cartService) GetCart(ctx context.Context, userEmail string) ([]models.PopulatedCartItem, error) {

	items, err := s.cartRepo.GetCart(ctx, userEmail)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	populated := []models.PopulatedCartItem{}

	for _, item := range items {
		product, err := s.productRepo.GetProductByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}

			return nil, appErrors.DatabaseError("Failed to fetch cart product").WithError(err)
		}

		populated = append(populated, models.PopulatedCartItem{CartItem: item, Product: product})
	}

	return populated, nil
}

func (s *cartService) AddItem(ctx context.Context, req *models.AddCartItemRequest) (*models.CartResponse, error) {

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	if err := s.checkStock(ctx, req.ProductID, quantity); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.AddItem(ctx, req.UserEmail, req.ProductID, quantity)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to add to cart").WithError(err)
	}

	return cartResponse("Product added to cart successfully", cart), nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, req *models.UpdateCartItemRequest) (*models.CartResponse, error) {

	quantity := *req.Quantity

	// Quantity zero removes the line, so stock only matters when raising it.
	if quantity > 0 {
		if err := s.checkStock(ctx, req.ProductID, quantity); err != nil {
			return nil, err
		}
	} else if _, err := s.productRepo.GetProductByID(ctx, req.ProductID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	cart, err := s.cartRepo.SetItemQuantity(ctx, req.UserEmail, req.ProductID, quantity)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cartResponse("Cart updated successfully", cart), nil
}

func (s *cartService) RemoveItem(ctx context.Context, userEmail, productID string) (*models.CartResponse, error) {

	cart, err := s.cartRepo.RemoveItem(ctx, userEmail, productID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cartResponse("Product removed from cart", cart), nil
}

func (s *cartService) ClearCart(ctx context.Context, userEmail string) (*models.CartResponse, error) {

	if err := s.cartRepo.ClearCart(ctx, userEmail); err != nil {
		return nil, appErrors.DatabaseError("Failed to update cart").WithError(err)
	}

	return cartResponse("Cart cleared", []models.CartItem{}), nil
}

func (s *cartService) checkStock(ctx context.Context, productID string, quantity int) error {

	product, err := s.productRepo.GetProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Product not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if !product.InStock || (product.StockQuantity > 0 && product.StockQuantity < quantity) {
		return appErrors.OutOfStockError("Product is out of stock or insufficient quantity")
	}

	return nil
}

func cartResponse(message string, cart []models.CartItem) *models.CartResponse {
	return &models.CartResponse{
		Message:   message,
		Cart:      cart,
		CartCount: CartCount(cart),
	}
}

// CartCount is the badge count: the sum of quantities across all lines.
func CartCount(cart []models.CartItem) int {

	var count int

	for _, item := range cart {
		count += item.Quantity
	}

	return count
}
