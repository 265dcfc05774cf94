package repository_test

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/marketverse/storefront/internal/models"
	repository "github.com/marketverse/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var productTestColumns = []string{
	"id", "title", "description", "price", "original_price", "category", "brand", "image_url",
	"in_stock", "stock_quantity", "tags", "rating", "reviews", "featured", "created_by", "created_at", "updated_at",
}

func productRow(id, title string, price float64) []driver.Value {
	now := time.Now().UTC()
	return []driver.Value{
		id, title, "A product", price, nil, "Home", "Acme", "https://example.com/p.jpg",
		true, 5, []byte("{new,sale}"), 4.5, 12, false, "a@x.com", now, now,
	}
}

func TestProductRepository_GetProductByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)

	t.Run("Success - Scans Row With Tags", func(t *testing.T) {
		rows := sqlmock.NewRows(productTestColumns).AddRow(productRow("p1", "Mug", 9.99)...)
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
			WithArgs("p1").
			WillReturnRows(rows)

		product, err := repo.GetProductByID(context.Background(), "p1")

		require.NoError(t, err)
		assert.Equal(t, "Mug", product.Title)
		assert.Equal(t, []string{"new", "sale"}, product.Tags)
		assert.Equal(t, "a@x.com", product.CreatedBy)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - No Rows Maps To ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE id = \$1`).
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(productTestColumns))

		product, err := repo.GetProductByID(context.Background(), "missing")

		assert.Nil(t, product)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_CreateProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)

	t.Run("Success - Returns Timestamps", func(t *testing.T) {
		now := time.Now().UTC()
		mock.ExpectQuery(`INSERT INTO products`).
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		product := &models.Product{ID: "p1", Title: "Mug", Price: 9.99, InStock: true, Tags: []string{}, CreatedBy: "a@x.com"}

		err := repo.CreateProduct(context.Background(), product)

		require.NoError(t, err)
		assert.Equal(t, now, product.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_ListProducts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)

	t.Run("Success - No Filters Orders By Newest", func(t *testing.T) {
		rows := sqlmock.NewRows(productTestColumns).
			AddRow(productRow("p1", "Mug", 9.99)...).
			AddRow(productRow("p2", "Lamp", 39.99)...)
		mock.ExpectQuery(`SELECT (.+) FROM products ORDER BY created_at DESC`).
			WillReturnRows(rows)

		products, err := repo.ListProducts(context.Background(), models.ProductFilters{})

		require.NoError(t, err)
		assert.Len(t, products, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Search Category And Price Filters Bind In Order", func(t *testing.T) {
		minPrice := 5.0
		filters := models.ProductFilters{
			Search:   "mug",
			Category: "Home",
			MinPrice: &minPrice,
			SortBy:   models.SortPriceLow,
		}

		rows := sqlmock.NewRows(productTestColumns).AddRow(productRow("p1", "Mug", 9.99)...)
		mock.ExpectQuery(`SELECT (.+) FROM products WHERE \(title ILIKE \$1 OR description ILIKE \$1 OR brand ILIKE \$1\) AND category ILIKE \$2 AND price >= \$3 ORDER BY price ASC`).
			WithArgs("%mug%", "%Home%", 5.0).
			WillReturnRows(rows)

		products, err := repo.ListProducts(context.Background(), filters)

		require.NoError(t, err)
		assert.Len(t, products, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Category All Is Ignored", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM products ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows(productTestColumns))

		products, err := repo.ListProducts(context.Background(), models.ProductFilters{Category: "all"})

		require.NoError(t, err)
		assert.Empty(t, products)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_UpdateProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)

	t.Run("Failure - Vanished Row Maps To ErrNotFound", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE products`).
			WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

		err := repo.UpdateProduct(context.Background(), &models.Product{ID: "missing", Tags: []string{}})

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_DeleteProduct(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)

	t.Run("Success - Row Deleted", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("p1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteProduct(context.Background(), "p1"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Zero Rows Maps To ErrNotFound", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("missing").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.DeleteProduct(context.Background(), "missing"), repository.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Exec Error Is Wrapped", func(t *testing.T) {
		mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
			WithArgs("p1").
			WillReturnError(errors.New("connection reset"))

		err := repo.DeleteProduct(context.Background(), "p1")

		assert.ErrorContains(t, err, "deleting product")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepository_ListCategories(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := repository.NewProductRepo(db)

	mock.ExpectQuery(`SELECT DISTINCT category FROM products`).
		WillReturnRows(sqlmock.NewRows([]string{"category"}).AddRow("Home").AddRow("Office"))

	categories, err := repo.ListCategories(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Home", "Office"}, categories)
	assert.NoError(t, mock.ExpectationsWereMet())
}
