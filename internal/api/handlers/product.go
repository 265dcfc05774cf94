package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/marketverse/storefront/internal/api/middleware"
	appErrors "github.com/marketverse/storefront/internal/errors"
	"github.com/marketverse/storefront/internal/models"
	service "github.com/marketverse/storefront/internal/services"
	"github.com/marketverse/storefront/internal/utils"
	"github.com/marketverse/storefront/internal/utils/response"
)

type ProductHandler struct {
	catalogService service.CatalogService
	validator      *validator.Validate
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService, validator: validator.New()}
}

// GET /api/v1/products?search=&category=&minPrice=&maxPrice=&sortBy=
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		filters, err := parseProductFilters(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		products, err := h.catalogService.ListProducts(r.Context(), filters)
		if err != nil {
			logger.Error("Failed to fetch products", "error", err.Error())
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, products)
	}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		product, err := h.catalogService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Error during product creation", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", "productId", product.ID)
		response.WriteJson(w, http.StatusCreated, product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		product, err := h.catalogService.GetProduct(r.Context(), r.PathValue("id"))
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.UpdateProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		product, err := h.catalogService.UpdateProduct(r.Context(), r.PathValue("id"), &req)
		if err != nil {
			logger.Error("Error during product update", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully", "productId", product.ID)
		response.WriteJson(w, http.StatusOK, product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.DeleteProductRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, appErrors.BadRequestError(err.Error()))
			return
		}

		if errs := utils.ValidateStruct(h.validator, req); errs != nil {
			response.ValidationError(w, errs)
			return
		}

		id := r.PathValue("id")

		if err := h.catalogService.DeleteProduct(r.Context(), id, req.UserEmail); err != nil {
			logger.Error("Error during product deletion", "error", err.Error())
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted successfully", "productId", id)
		response.WriteJson(w, http.StatusOK, map[string]string{"message": "Product deleted successfully"})
	}
}

func (h *ProductHandler) ListCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		categories, err := h.catalogService.ListCategories(r.Context())
		if err != nil {
			response.Error(w, err)
			return
		}

		response.WriteJson(w, http.StatusOK, categories)
	}
}

func parseProductFilters(r *http.Request) (models.ProductFilters, error) {

	query := r.URL.Query()

	filters := models.ProductFilters{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		SortBy:   query.Get("sortBy"),
	}

	if raw := query.Get("minPrice"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, appErrors.AddValidationError("minPrice", "must be a number")
		}

		filters.MinPrice = &minPrice
	}

	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filters, appErrors.AddValidationError("maxPrice", "must be a number")
		}

		filters.MaxPrice = &maxPrice
	}

	return filters, nil
}
