package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/marketverse/storefront/internal/cache"
	appErrors "github.com/marketverse/storefront/internal/errors"
	"github.com/marketverse/storefront/internal/models"
	repository "github.com/marketverse/storefront/internal/repositories"
)

type CatalogService interface {
	ListProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id, userEmail string) error
	ListCategories(ctx context.Context) ([]string, error)
}

type catalogService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewCatalogService(repo repository.ProductRepository, c cache.Cache) CatalogService {
	return &catalogService{repo: repo, cache: c}
}

func (s *catalogService) ListProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error) {

	products, err := s.repo.ListProducts(ctx, filters)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	return products, nil
}

func (s *catalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {

	var cached models.Product

	found, err := s.cache.Get(ctx, cache.ProductKey(id), &cached)
	if err != nil {
		slog.Warn("Cache lookup failed", slog.String("key", cache.ProductKey(id)), slog.String("error", err.Error()))
	}

	if found {
		return &cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cache.Set(ctx, cache.ProductKey(id), product, 0); err != nil {
		slog.Warn("Cache write failed", slog.String("key", cache.ProductKey(id)), slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	product := &models.Product{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Category:      req.Category,
		Brand:         req.Brand,
		ImageURL:      req.ImageURL,
		InStock:       inStock,
		StockQuantity: req.StockQuantity,
		Tags:          tags,
		Featured:      req.Featured,
		CreatedBy:     req.UserEmail,
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	s.invalidate(ctx, product.ID)

	return product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, id string, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.authorizedProduct(ctx, id, req.UserEmail, "edit")
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		product.Title = *req.Title
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Brand != nil {
		product.Brand = *req.Brand
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Tags != nil {
		product.Tags = *req.Tags
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, id, userEmail string) error {

	if _, err := s.authorizedProduct(ctx, id, userEmail, "delete"); err != nil {
		return err
	}

	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return appErrors.NotFoundError("Product not found").WithError(err)
		}

		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *catalogService) ListCategories(ctx context.Context) ([]string, error) {

	var cached []string

	found, err := s.cache.Get(ctx, cache.KeyCategories, &cached)
	if err != nil {
		slog.Warn("Cache lookup failed", slog.String("key", cache.KeyCategories), slog.String("error", err.Error()))
	}

	if found {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch categories").WithError(err)
	}

	if categories == nil {
		categories = []string{}
	}

	if err := s.cache.Set(ctx, cache.KeyCategories, categories, 0); err != nil {
		slog.Warn("Cache write failed", slog.String("key", cache.KeyCategories), slog.String("error", err.Error()))
	}

	return categories, nil
}

// authorizedProduct loads a product and enforces the owner check: unknown id
// is 404, a foreign owner is 403.
func (s *catalogService) authorizedProduct(ctx context.Context, id, userEmail, action string) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, appErrors.NotFoundError("Product not found").WithError(err)
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if product.CreatedBy != userEmail {
		return nil, appErrors.ForbiddenError("Unauthorized to " + action + " this product")
	}

	return product, nil
}

func (s *catalogService) invalidate(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, cache.ProductKey(id), cache.KeyCategories); err != nil {
		slog.Warn("Cache invalidation failed", slog.String("productId", id), slog.String("error", err.Error()))
	}
}
