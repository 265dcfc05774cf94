package service

import (
	"context"

	appErrors "github.com/marketverse/storefront/internal/errors"
	"github.com/marketverse/storefront/internal/models"
	repository "github.com/marketverse/storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

type DashboardService interface {
	GetDashboard(ctx context.Context, userEmail string) (*models.Dashboard, error)
}

type dashboardService struct {
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

func NewDashboardService(productRepo repository.ProductRepository, orderRepo repository.OrderRepository) DashboardService {
	return &dashboardService{productRepo: productRepo, orderRepo: orderRepo}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userEmail string) (*models.Dashboard, error) {

	products, err := s.productRepo.ListProductsByOwner(ctx, userEmail)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch user products").WithError(err)
	}

	orders, err := s.orderRepo.ListOrdersByUser(ctx, userEmail)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch user orders").WithError(err)
	}

	revenue := decimal.Zero
	for _, order := range orders {
		revenue = revenue.Add(decimal.NewFromFloat(order.Total))
	}

	return &models.Dashboard{
		User:     models.DashboardUser{Email: userEmail},
		Products: products,
		Orders:   orders,
		Stats: models.DashboardStats{
			TotalProducts: len(products),
			TotalOrders:   len(orders),
			TotalRevenue:  revenue.Round(2).InexactFloat64(),
		},
	}, nil
}
