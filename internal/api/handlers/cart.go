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

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

// GET /api/v1/cart?userEmail=
func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userEmail := r.URL.Query().Get("userEmail")
		if userEmail == "" {
			response.Error(w, appErrors.BadRequestError("User email required"))
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), userEmail)
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, cart)
	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.AddCartItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		cart, err := h.cartService.AddItem(r.Context(), &req)
		if err != nil {
			logger.Error("Error adding to cart", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Product added to cart", "productId", req.ProductID)
		response.WriteJson(w, http.StatusCreated, cart)
	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateCartItemRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		cart, err := h.cartService.UpdateQuantity(r.Context(), &req)
		if err != nil {
			logger.Error("Error updating cart", "error", err.Error())
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, cart)
	}
}

// DELETE /api/v1/cart?productId=&userEmail=
// Omitting productId clears the whole cart.
func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		userEmail := r.URL.Query().Get("userEmail")
		if userEmail == "" {
			response.Error(w, appErrors.BadRequestError("User email required"))
			return
		}

		productID := r.URL.Query().Get("productId")

		var cart *models.CartResponse
		var err error

		if productID != "" {
			cart, err = h.cartService.RemoveItem(r.Context(), userEmail, productID)
		} else {
			cart, err = h.cartService.ClearCart(r.Context(), userEmail)
		}

		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, cart)
	}
}
