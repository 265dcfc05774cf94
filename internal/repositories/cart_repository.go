package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/marketverse/storefront/internal/models"
	"github.com/marketverse/storefront/internal/utils"
)

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

func (r *cartRepository) GetCart(ctx context.Context, userEmail string) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.selectCart(dbCtx, userEmail)
}

func (r *cartRepository) AddItem(ctx context.Context, userEmail, productID string, quantity int) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		INSERT INTO cart_items (user_email, product_id, quantity, added_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_email, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity
	`

	if _, err := r.DB.ExecContext(dbCtx, query, userEmail, productID, quantity); err != nil {
		return nil, fmt.Errorf("adding cart item: %w", err)
	}

	return r.selectCart(dbCtx, userEmail)
}

func (r *cartRepository) SetItemQuantity(ctx context.Context, userEmail, productID string, quantity int) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	// Quantity zero or below removes the line. A missing line is a no-op,
	// matching the additive add/absolute set contract.
	var query string
	var args []any

	if quantity <= 0 {
		query = `DELETE FROM cart_items WHERE user_email = $1 AND product_id = $2`
		args = []any{userEmail, productID}
	} else {
		query = `UPDATE cart_items SET quantity = $3 WHERE user_email = $1 AND product_id = $2`
		args = []any{userEmail, productID, quantity}
	}

	if _, err := r.DB.ExecContext(dbCtx, query, args...); err != nil {
		return nil, fmt.Errorf("updating cart item: %w", err)
	}

	return r.selectCart(dbCtx, userEmail)
}

func (r *cartRepository) RemoveItem(ctx context.Context, userEmail, productID string) ([]models.CartItem, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `DELETE FROM cart_items WHERE user_email = $1 AND product_id = $2`

	if _, err := r.DB.ExecContext(dbCtx, query, userEmail, productID); err != nil {
		return nil, fmt.Errorf("removing cart item: %w", err)
	}

	return r.selectCart(dbCtx, userEmail)
}

func (r *cartRepository) ClearCart(ctx context.Context, userEmail string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	if _, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE user_email = $1`, userEmail); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}

	return nil
}

func (r *cartRepository) Reset(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items`)

	return err
}

func (r *cartRepository) selectCart(ctx context.Context, userEmail string) ([]models.CartItem, error) {

	query := `
		SELECT product_id, quantity, added_at
		FROM cart_items
		WHERE user_email = $1
		ORDER BY added_at ASC
	`

	rows, err := r.DB.QueryContext(ctx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("querying cart: %w", err)
	}

	defer rows.Close()

	items := []models.CartItem{}

	for rows.Next() {
		var item models.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.AddedAt); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
