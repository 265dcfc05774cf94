package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/marketverse/storefront/internal/models"
	repository "github.com/marketverse/storefront/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeProduct(owner string) *models.Product {
	return &models.Product{
		ID:            uuid.NewString(),
		Title:         gofakeit.ProductName(),
		Description:   gofakeit.Sentence(8),
		Price:         gofakeit.Price(1, 100),
		Category:      gofakeit.ProductCategory(),
		Brand:         gofakeit.Company(),
		ImageURL:      gofakeit.URL(),
		InStock:       true,
		StockQuantity: 10,
		Tags:          []string{"new"},
		CreatedBy:     owner,
	}
}

func seedProduct(t *testing.T, repo repository.ProductRepository, product *models.Product) {
	t.Helper()
	require.NoError(t, repo.CreateProduct(context.Background(), product))
}

func TestProductMemoryRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Create And Get Round Trip", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()
		product := fakeProduct("a@x.com")
		seedProduct(t, repo, product)

		got, err := repo.GetProductByID(ctx, product.ID)

		require.NoError(t, err)
		assert.Equal(t, product.Title, got.Title)
		assert.False(t, got.CreatedAt.IsZero())
		assert.Equal(t, got.CreatedAt, got.UpdatedAt)
	})

	t.Run("Get Returns Detached Copy", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()
		product := fakeProduct("a@x.com")
		seedProduct(t, repo, product)

		first, err := repo.GetProductByID(ctx, product.ID)
		require.NoError(t, err)

		first.Title = "mutated"
		first.Tags[0] = "mutated"

		second, err := repo.GetProductByID(ctx, product.ID)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", second.Title)
		assert.Equal(t, []string{"new"}, second.Tags)
	})

	t.Run("Unknown ID Is Not Found", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()

		_, err := repo.GetProductByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		assert.ErrorIs(t, repo.DeleteProduct(ctx, "missing"), repository.ErrNotFound)
		assert.ErrorIs(t, repo.UpdateProduct(ctx, &models.Product{ID: "missing"}), repository.ErrNotFound)
	})

	t.Run("Filters Search Category And Price", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()

		mug := fakeProduct("a@x.com")
		mug.Title = "Ceramic Mug"
		mug.Category = "Home"
		mug.Price = 9.99
		seedProduct(t, repo, mug)

		lamp := fakeProduct("a@x.com")
		lamp.Title = "Desk Lamp"
		lamp.Category = "Office"
		lamp.Price = 39.99
		seedProduct(t, repo, lamp)

		bySearch, err := repo.ListProducts(ctx, models.ProductFilters{Search: "mug"})
		require.NoError(t, err)
		require.Len(t, bySearch, 1)
		assert.Equal(t, "Ceramic Mug", bySearch[0].Title)

		byCategory, err := repo.ListProducts(ctx, models.ProductFilters{Category: "office"})
		require.NoError(t, err)
		require.Len(t, byCategory, 1)
		assert.Equal(t, "Desk Lamp", byCategory[0].Title)

		all, err := repo.ListProducts(ctx, models.ProductFilters{Category: "All"})
		require.NoError(t, err)
		assert.Len(t, all, 2)

		minPrice := 20.0
		byPrice, err := repo.ListProducts(ctx, models.ProductFilters{MinPrice: &minPrice})
		require.NoError(t, err)
		require.Len(t, byPrice, 1)
		assert.Equal(t, "Desk Lamp", byPrice[0].Title)
	})

	t.Run("Sorts By Price And Name", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()

		for _, p := range []struct {
			title string
			price float64
		}{
			{"Banana Stand", 25.00},
			{"Apple Slicer", 5.00},
			{"Cherry Pitter", 15.00},
		} {
			product := fakeProduct("a@x.com")
			product.Title = p.title
			product.Price = p.price
			seedProduct(t, repo, product)
		}

		lowFirst, err := repo.ListProducts(ctx, models.ProductFilters{SortBy: models.SortPriceLow})
		require.NoError(t, err)
		assert.Equal(t, 5.00, lowFirst[0].Price)
		assert.Equal(t, 25.00, lowFirst[2].Price)

		highFirst, err := repo.ListProducts(ctx, models.ProductFilters{SortBy: models.SortPriceHigh})
		require.NoError(t, err)
		assert.Equal(t, 25.00, highFirst[0].Price)

		byName, err := repo.ListProducts(ctx, models.ProductFilters{SortBy: models.SortName})
		require.NoError(t, err)
		assert.Equal(t, "Apple Slicer", byName[0].Title)
		assert.Equal(t, "Cherry Pitter", byName[1].Title)
	})

	t.Run("Sorts Newest First By Default", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()

		older := fakeProduct("a@x.com")
		older.Title = "Older"
		seedProduct(t, repo, older)

		time.Sleep(2 * time.Millisecond)

		newer := fakeProduct("a@x.com")
		newer.Title = "Newer"
		seedProduct(t, repo, newer)

		products, err := repo.ListProducts(ctx, models.ProductFilters{})
		require.NoError(t, err)
		assert.Equal(t, "Newer", products[0].Title)

		oldest, err := repo.ListProducts(ctx, models.ProductFilters{SortBy: models.SortOldest})
		require.NoError(t, err)
		assert.Equal(t, "Older", oldest[0].Title)
	})

	t.Run("List By Owner", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()
		seedProduct(t, repo, fakeProduct("a@x.com"))
		seedProduct(t, repo, fakeProduct("a@x.com"))
		seedProduct(t, repo, fakeProduct("b@x.com"))

		owned, err := repo.ListProductsByOwner(ctx, "a@x.com")

		require.NoError(t, err)
		assert.Len(t, owned, 2)
	})

	t.Run("Categories Are Distinct", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()

		for _, category := range []string{"Home", "Home", "Office"} {
			product := fakeProduct("a@x.com")
			product.Category = category
			seedProduct(t, repo, product)
		}

		categories, err := repo.ListCategories(ctx)

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Home", "Office"}, categories)
	})

	t.Run("Reset Empties The Store", func(t *testing.T) {
		repo := repository.NewProductMemoryRepo()
		seedProduct(t, repo, fakeProduct("a@x.com"))

		require.NoError(t, repo.Reset(ctx))

		products, err := repo.ListProducts(ctx, models.ProductFilters{})
		require.NoError(t, err)
		assert.Empty(t, products)
	})
}

func TestCartMemoryRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Add Is Additive Per Product", func(t *testing.T) {
		repo := repository.NewCartMemoryRepo()

		_, err := repo.AddItem(ctx, "a@x.com", "p1", 2)
		require.NoError(t, err)

		cart, err := repo.AddItem(ctx, "a@x.com", "p1", 3)
		require.NoError(t, err)

		require.Len(t, cart, 1)
		assert.Equal(t, 5, cart[0].Quantity)
		assert.False(t, cart[0].AddedAt.IsZero())
	})

	t.Run("Carts Are Isolated Per User", func(t *testing.T) {
		repo := repository.NewCartMemoryRepo()

		_, err := repo.AddItem(ctx, "a@x.com", "p1", 1)
		require.NoError(t, err)

		other, err := repo.GetCart(ctx, "b@x.com")
		require.NoError(t, err)
		assert.Empty(t, other)
	})

	t.Run("Set Quantity Is Absolute", func(t *testing.T) {
		repo := repository.NewCartMemoryRepo()

		_, err := repo.AddItem(ctx, "a@x.com", "p1", 5)
		require.NoError(t, err)

		cart, err := repo.SetItemQuantity(ctx, "a@x.com", "p1", 2)
		require.NoError(t, err)

		require.Len(t, cart, 1)
		assert.Equal(t, 2, cart[0].Quantity)
	})

	t.Run("Set Quantity Zero Removes The Line", func(t *testing.T) {
		repo := repository.NewCartMemoryRepo()

		_, err := repo.AddItem(ctx, "a@x.com", "p1", 5)
		require.NoError(t, err)

		cart, err := repo.SetItemQuantity(ctx, "a@x.com", "p1", 0)
		require.NoError(t, err)
		assert.Empty(t, cart)
	})

	t.Run("Set Quantity On Missing Line Is A No-Op", func(t *testing.T) {
		repo := repository.NewCartMemoryRepo()

		_, err := repo.AddItem(ctx, "a@x.com", "p1", 1)
		require.NoError(t, err)

		cart, err := repo.SetItemQuantity(ctx, "a@x.com", "absent", 7)
		require.NoError(t, err)

		require.Len(t, cart, 1)
		assert.Equal(t, "p1", cart[0].ProductID)
		assert.Equal(t, 1, cart[0].Quantity)
	})

	t.Run("Remove And Clear", func(t *testing.T) {
		repo := repository.NewCartMemoryRepo()

		_, err := repo.AddItem(ctx, "a@x.com", "p1", 1)
		require.NoError(t, err)
		_, err = repo.AddItem(ctx, "a@x.com", "p2", 1)
		require.NoError(t, err)

		cart, err := repo.RemoveItem(ctx, "a@x.com", "p1")
		require.NoError(t, err)
		require.Len(t, cart, 1)
		assert.Equal(t, "p2", cart[0].ProductID)

		require.NoError(t, repo.ClearCart(ctx, "a@x.com"))

		cart, err = repo.GetCart(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Empty(t, cart)
	})
}

func TestOrderMemoryRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("Create Clears The Cart", func(t *testing.T) {
		carts := repository.NewCartMemoryRepo()
		repo := repository.NewOrderMemoryRepo(carts)

		_, err := carts.AddItem(ctx, "a@x.com", "p1", 2)
		require.NoError(t, err)

		order := &models.Order{ID: uuid.NewString(), UserID: "a@x.com", Total: 10.00, Status: models.OrderStatusPending}
		require.NoError(t, repo.CreateOrder(ctx, order))

		assert.False(t, order.CreatedAt.IsZero())

		cart, err := carts.GetCart(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Empty(t, cart)
	})

	t.Run("Lists Newest First Per User", func(t *testing.T) {
		carts := repository.NewCartMemoryRepo()
		repo := repository.NewOrderMemoryRepo(carts)

		first := &models.Order{ID: "o1", UserID: "a@x.com"}
		require.NoError(t, repo.CreateOrder(ctx, first))

		time.Sleep(2 * time.Millisecond)

		second := &models.Order{ID: "o2", UserID: "a@x.com"}
		require.NoError(t, repo.CreateOrder(ctx, second))

		foreign := &models.Order{ID: "o3", UserID: "b@x.com"}
		require.NoError(t, repo.CreateOrder(ctx, foreign))

		orders, err := repo.ListOrdersByUser(ctx, "a@x.com")

		require.NoError(t, err)
		require.Len(t, orders, 2)
		assert.Equal(t, "o2", orders[0].ID)
		assert.Equal(t, "o1", orders[1].ID)
	})

	t.Run("Reset Empties The Store", func(t *testing.T) {
		carts := repository.NewCartMemoryRepo()
		repo := repository.NewOrderMemoryRepo(carts)

		require.NoError(t, repo.CreateOrder(ctx, &models.Order{ID: "o1", UserID: "a@x.com"}))
		require.NoError(t, repo.Reset(ctx))

		orders, err := repo.ListOrdersByUser(ctx, "a@x.com")
		require.NoError(t, err)
		assert.Empty(t, orders)
	})
}
