package service

import (
	"context"

	appErrors "github.com/marketverse/storefront/internal/errors"
	repository "github.com/marketverse/storefront/internal/repositories"
)

type AdminService interface {
	ResetAll(ctx context.Context) error
}

// adminService backs the development-only reset endpoint that wipes every
// store.
type adminService struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
}

func NewAdminService(productRepo repository.ProductRepository, cartRepo repository.CartRepository, orderRepo repository.OrderRepository) AdminService {
	return &adminService{productRepo: productRepo, cartRepo: cartRepo, orderRepo: orderRepo}
}

func (s *adminService) ResetAll(ctx context.Context) error {

	if err := s.productRepo.Reset(ctx); err != nil {
		return appErrors.DatabaseError("Failed to reset products").WithError(err)
	}

	if err := s.cartRepo.Reset(ctx); err != nil {
		return appErrors.DatabaseError("Failed to reset carts").WithError(err)
	}

	if err := s.orderRepo.Reset(ctx); err != nil {
		return appErrors.DatabaseError("Failed to reset orders").WithError(err)
	}

	return nil
}
