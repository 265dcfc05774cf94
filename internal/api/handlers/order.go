package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/marketverse/storefront/internal/api/middleware"
	appErrors "github.com/marketverse/storefront/internal/errors"
	"github.com/marketverse/storefront/internal/models"
	service "github.com/marketverse/storefront/internal/services"
	"github.com/marketverse/storefront/internal/utils"
	"github.com/marketverse/storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, validator: validator.New()}
}

func (h *OrderHandler) CreateOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateOrderRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		order, err := h.orderService.PlaceOrder(r.Context(), &req)
		if err != nil {
			logger.Error("Error during order creation", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Order created successfully", "orderId", order.ID, "total", order.Total)
		response.WriteJson(w, http.StatusCreated, order)
	}
}

// GET /api/v1/orders?userEmail=
func (h *OrderHandler) ListOrders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userEmail := r.URL.Query().Get("userEmail")
		if userEmail == "" {
			response.Error(w, appErrors.BadRequestError("User email required"))
			return
		}

		orders, err := h.orderService.ListOrders(r.Context(), userEmail)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, orders)
	}
}
