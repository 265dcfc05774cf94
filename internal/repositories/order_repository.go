package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/marketverse/storefront/internal/models"
	"github.com/marketverse/storefront/internal/utils"
)

type orderRepository struct {
	DB *sql.DB
}

func NewOrderRepo(db *sql.DB) OrderRepository {
	return &orderRepository{DB: db}
}

// CreateOrder inserts the order and clears the owner's cart inside a single
// transaction, so a checkout either fully commits or leaves the cart intact.
func (r *orderRepository) CreateOrder(ctx context.Context, order *models.Order) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to marshal order items: %w", err)
	}

	shippingJSON, err := json.Marshal(order.ShippingAddress)
	if err != nil {
		return fmt.Errorf("failed to marshal shipping address: %w", err)
	}

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer tx.Rollback()

	query := `
		INSERT INTO orders (id, user_email, items, total, shipping_address, payment_method, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err = tx.QueryRowContext(dbCtx, query,
		order.ID, order.UserID, itemsJSON, order.Total, shippingJSON, order.PaymentMethod, order.Status,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	if _, err := tx.ExecContext(dbCtx, `DELETE FROM cart_items WHERE user_email = $1`, order.UserID); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}

	return tx.Commit()
}

func (r *orderRepository) ListOrdersByUser(ctx context.Context, userEmail string) ([]models.Order, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `
		SELECT id, user_email, items, total, shipping_address, payment_method, status, created_at, updated_at
		FROM orders
		WHERE user_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(dbCtx, query, userEmail)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}

	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		var order models.Order
		var itemsJSON, shippingJSON []byte

		err := rows.Scan(&order.ID, &order.UserID, &itemsJSON, &order.Total, &shippingJSON,
			&order.PaymentMethod, &order.Status, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
		}

		if err := json.Unmarshal(shippingJSON, &order.ShippingAddress); err != nil {
			return nil, fmt.Errorf("failed to unmarshal shipping address: %w", err)
		}

		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (r *orderRepository) Reset(ctx context.Context) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM orders`)

	return err
}
