package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	appErrors "github.com/marketverse/storefront/internal/errors"
	"github.com/marketverse/storefront/internal/models"
	repository "github.com/marketverse/storefront/internal/repositories"
	"github.com/shopspring/decimal"
)

// ConfirmationSender delivers the post-checkout confirmation email. Sending
// is best-effort: a delivery failure never fails the order.
type ConfirmationSender interface {
	SendOrderConfirmation(ctx context.Context, to string, order *models.Order) error
}

type OrderService interface {
	PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error)
	ListOrders(ctx context.Context, userEmail string) ([]models.Order, error)
}

type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	emailer     ConfirmationSender
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, emailer ConfirmationSender) OrderService {
	return &orderService{orderRepo: orderRepo, cartRepo: cartRepo, productRepo: productRepo, emailer: emailer}
}

// PlaceOrder runs the checkout sequence: empty-cart check, product
// resolution, stock verification, total computation, shipping validation,
// order commit (which clears the cart atomically), confirmation email.
// Any failure before the commit leaves the cart untouched.
func (s *orderService) PlaceOrder(ctx context.Context, req *models.CreateOrderRequest) (*models.Order, error) {

	if missing := missingShippingFields(req.ShippingAddress); len(missing) > 0 {
		return nil, appErrors.ValidationError("Missing required shipping fields: " + strings.Join(missing, ", "))
	}

	cart, err := s.cartRepo.GetCart(ctx, req.UserEmail)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch cart").WithError(err)
	}

	if len(cart) == 0 {
		return nil, appErrors.EmptyCartError("Cart is empty")
	}

	total := decimal.Zero
	items := make([]models.OrderItem, 0, len(cart))

	for _, line := range cart {
		product, err := s.productRepo.GetProductByID(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, appErrors.BadRequestError("Product not found: " + line.ProductID).WithError(err)
			}

			return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
		}

		if !product.InStock || (product.StockQuantity > 0 && product.StockQuantity < line.Quantity) {
			return nil, appErrors.OutOfStockError("Insufficient stock for product: " + product.Title)
		}

		lineTotal := decimal.NewFromFloat(product.Price).
			Mul(decimal.NewFromInt(int64(line.Quantity))).
			Round(2)
		total = total.Add(lineTotal)

		items = append(items, models.OrderItem{
			ProductID:    product.ID,
			ProductName:  product.Title,
			ProductPrice: product.Price,
			ProductImage: product.ImageURL,
			Quantity:     line.Quantity,
			Total:        lineTotal.InexactFloat64(),
		})
	}

	order := &models.Order{
		ID:              uuid.NewString(),
		UserID:          req.UserEmail,
		Items:           items,
		Total:           total.Round(2).InexactFloat64(),
		ShippingAddress: *req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		Status:          models.OrderStatusPending,
	}

	// The repository clears the cart in the same atomic step as the insert.
	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, appErrors.DatabaseError("Failed to create order").WithError(err)
	}

	if s.emailer != nil {
		if err := s.emailer.SendOrderConfirmation(ctx, req.UserEmail, order); err != nil {
			slog.Warn("Order confirmation email failed",
				slog.String("orderId", order.ID),
				slog.String("error", err.Error()))
		}
	}

	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userEmail string) ([]models.Order, error) {

	orders, err := s.orderRepo.ListOrdersByUser(ctx, userEmail)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch orders").WithError(err)
	}

	return orders, nil
}

func missingShippingFields(address *models.ShippingAddress) []string {

	var missing []string

	if address.FullName == "" {
		missing = append(missing, "fullName")
	}

	if address.Address == "" {
		missing = append(missing, "address")
	}

	if address.City == "" {
		missing = append(missing, "city")
	}

	if address.PostalCode == "" {
		missing = append(missing, "postalCode")
	}

	return missing
}
