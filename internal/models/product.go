package models

import "time"

type Product struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	OriginalPrice *float64  `json:"originalPrice,omitempty"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand,omitempty"`
	ImageURL      string    `json:"imageUrl"`
	InStock       bool      `json:"inStock"`
	StockQuantity int       `json:"stockQuantity"`
	Tags          []string  `json:"tags"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Featured      bool      `json:"featured"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CreateProductRequest struct {
	Title         string   `json:"title" validate:"required,max=100"`
	Description   string   `json:"description" validate:"required,max=1000"`
	Price         float64  `json:"price" validate:"required,gte=0"`
	OriginalPrice *float64 `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Category      string   `json:"category" validate:"required"`
	Brand         string   `json:"brand,omitempty"`
	ImageURL      string   `json:"imageUrl" validate:"required"`
	InStock       *bool    `json:"inStock,omitempty"`
	StockQuantity int      `json:"stockQuantity" validate:"gte=0"`
	Tags          []string `json:"tags,omitempty"`
	Featured      bool     `json:"featured,omitempty"`
	UserEmail     string   `json:"userEmail" validate:"required,email"`
}

type UpdateProductRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,max=100"`
	Description   *string   `json:"description,omitempty" validate:"omitempty,max=1000"`
	Price         *float64  `json:"price,omitempty" validate:"omitempty,gte=0"`
	OriginalPrice *float64  `json:"originalPrice,omitempty" validate:"omitempty,gte=0"`
	Category      *string   `json:"category,omitempty"`
	Brand         *string   `json:"brand,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	InStock       *bool     `json:"inStock,omitempty"`
	StockQuantity *int      `json:"stockQuantity,omitempty" validate:"omitempty,gte=0"`
	Tags          *[]string `json:"tags,omitempty"`
	Featured      *bool     `json:"featured,omitempty"`
	UserEmail     string    `json:"userEmail" validate:"required,email"`
}

type DeleteProductRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
}

// Sort keys accepted by ProductFilters.SortBy.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortName      = "name"
)

// ProductFilters narrows and orders a catalog listing. Zero values mean
// "no constraint"; an empty SortBy falls back to newest-first.
type ProductFilters struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	SortBy   string
}
