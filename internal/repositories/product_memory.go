package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/marketverse/storefront/internal/models"
	"github.com/samber/lo"
)

// productMemoryRepo is the fallback catalog store used when postgres is
// unreachable. State lives for the process lifetime only.
type productMemoryRepo struct {
	mu       sync.RWMutex
	products map[string]models.Product
}

func NewProductMemoryRepo() ProductRepository {
	return &productMemoryRepo{products: make(map[string]models.Product)}
}

func (r *productMemoryRepo) CreateProduct(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	product.CreatedAt = now
	product.UpdatedAt = now

	r.products[product.ID] = cloneProduct(*product)

	return nil
}

func (r *productMemoryRepo) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}

	product = cloneProduct(product)

	return &product, nil
}

func (r *productMemoryRepo) ListProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := []models.Product{}

	for _, product := range r.products {
		if matchesFilters(product, filters) {
			matched = append(matched, cloneProduct(product))
		}
	}

	sortProducts(matched, filters.SortBy)

	return matched, nil
}

func (r *productMemoryRepo) ListProductsByOwner(ctx context.Context, owner string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := []models.Product{}

	for _, product := range r.products {
		if product.CreatedBy == owner {
			owned = append(owned, cloneProduct(product))
		}
	}

	sortProducts(owned, models.SortNewest)

	return owned, nil
}

func (r *productMemoryRepo) UpdateProduct(ctx context.Context, product *models.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return ErrNotFound
	}

	product.UpdatedAt = time.Now().UTC()
	r.products[product.ID] = cloneProduct(*product)

	return nil
}

func (r *productMemoryRepo) DeleteProduct(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}

	delete(r.products, id)

	return nil
}

func (r *productMemoryRepo) ListCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := lo.Uniq(lo.Map(lo.Values(r.products), func(p models.Product, _ int) string {
		return p.Category
	}))

	return categories, nil
}

func (r *productMemoryRepo) Reset(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = make(map[string]models.Product)

	return nil
}

func matchesFilters(product models.Product, filters models.ProductFilters) bool {

	if filters.Search != "" {
		needle := strings.ToLower(filters.Search)
		if !strings.Contains(strings.ToLower(product.Title), needle) &&
			!strings.Contains(strings.ToLower(product.Description), needle) &&
			!strings.Contains(strings.ToLower(product.Brand), needle) {
			return false
		}
	}

	if filters.Category != "" && !strings.EqualFold(filters.Category, "all") {
		if !strings.Contains(strings.ToLower(product.Category), strings.ToLower(filters.Category)) {
			return false
		}
	}

	if filters.MinPrice != nil && product.Price < *filters.MinPrice {
		return false
	}

	if filters.MaxPrice != nil && product.Price > *filters.MaxPrice {
		return false
	}

	return true
}

func sortProducts(products []models.Product, sortBy string) {
	switch sortBy {
	case models.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case models.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case models.SortName:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Title < products[j].Title })
	case models.SortOldest:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.Before(products[j].CreatedAt) })
	default:
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}

func cloneProduct(product models.Product) models.Product {
	product.Tags = append([]string(nil), product.Tags...)

	if product.OriginalPrice != nil {
		original := *product.OriginalPrice
		product.OriginalPrice = &original
	}

	return product
}
