package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"github.com/marketverse/storefront/internal/models"
	"github.com/marketverse/storefront/internal/utils"
)

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, title, description, price, original_price, category, brand, image_url,
	in_stock, stock_quantity, tags, rating, reviews, featured, created_by, created_at, updated_at`

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `INSERT INTO products (id, title, description, price, original_price, category, brand, image_url,
				in_stock, stock_quantity, tags, rating, reviews, featured, created_by, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NOW(), NOW())
			  RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.ID, product.Title, product.Description, product.Price, product.OriginalPrice,
		product.Category, product.Brand, product.ImageURL, product.InStock, product.StockQuantity,
		pq.Array(product.Tags), product.Rating, product.Reviews, product.Featured, product.CreatedBy,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListProducts(ctx context.Context, filters models.ProductFilters) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var conds []string
	var args []any

	if filters.Search != "" {
		args = append(args, "%"+filters.Search+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR brand ILIKE $%d)", n, n, n))
	}

	if filters.Category != "" && !strings.EqualFold(filters.Category, "all") {
		args = append(args, "%"+filters.Category+"%")
		conds = append(conds, fmt.Sprintf("category ILIKE $%d", len(args)))
	}

	if filters.MinPrice != nil {
		args = append(args, *filters.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}

	if filters.MaxPrice != nil {
		args = append(args, *filters.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	query := `SELECT ` + productColumns + ` FROM products`

	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}

	query += " ORDER BY " + orderClause(filters.SortBy)

	rows, err := r.DB.QueryContext(dbCtx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	return collectProducts(rows)
}

func (r *productRepository) ListProductsByOwner(ctx context.Context, owner string) ([]models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE created_by = $1 ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(dbCtx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	return collectProducts(rows)
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		UPDATE products
		SET title = $1, description = $2, price = $3, original_price = $4, category = $5, brand = $6,
			image_url = $7, in_stock = $8, stock_quantity = $9, tags = $10, featured = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	err := r.DB.QueryRowContext(dbCtx, query,
		product.Title, product.Description, product.Price, product.OriginalPrice, product.Category,
		product.Brand, product.ImageURL, product.InStock, product.StockQuantity, pq.Array(product.Tags),
		product.Featured, product.ID,
	).Scan(&product.UpdatedAt)

	if err == sql.ErrNoRows {
		return ErrNotFound
	}

	return err
}

func (r *productRepository) DeleteProduct(ctx context.Context, id string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("reading affected rows: %w", err)
	}

	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *productRepository) ListCategories(ctx context.Context) ([]string, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT DISTINCT category FROM products`)
	if err != nil {
		return nil, fmt.Errorf("querying database: %w", err)
	}

	defer rows.Close()

	var categories []string

	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}

		categories = append(categories, category)
	}

	return categories, rows.Err()
}

func (r *productRepository) Reset(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM products`)

	return err
}

func orderClause(sortBy string) string {
	switch sortBy {
	case models.SortPriceLow:
		return "price ASC"
	case models.SortPriceHigh:
		return "price DESC"
	case models.SortName:
		return "title ASC"
	case models.SortOldest:
		return "created_at ASC"
	default:
		return "created_at DESC"
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {
	product := &models.Product{}

	err := row.Scan(&product.ID, &product.Title, &product.Description, &product.Price,
		&product.OriginalPrice, &product.Category, &product.Brand, &product.ImageURL,
		&product.InStock, &product.StockQuantity, pq.Array(&product.Tags), &product.Rating,
		&product.Reviews, &product.Featured, &product.CreatedBy, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return product, nil
}

func collectProducts(rows *sql.Rows) ([]models.Product, error) {
	products := []models.Product{}

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, *product)
	}

	return products, rows.Err()
}
