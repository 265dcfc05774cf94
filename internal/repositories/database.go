package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/marketverse/storefront/internal/config"

	_ "github.com/lib/pq"
)

const (
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

type Repository struct {
	// DB is nil when the service runs on the in-memory fallback.
	DB      *sql.DB
	Backend string

	Product ProductRepository
	Cart    CartRepository
	Order   OrderRepository
}

// New probes postgres once with a bounded timeout and wires either the
// postgres-backed stores or the in-memory fallback. An unreachable database
// is a recoverable condition, not a startup failure.
func New(cfg *config.Config) (*Repository, error) {

	db, err := sql.Open("postgres", cfg.Database.GetDSN())
	if err == nil {
		probeCtx, cancel := context.WithTimeout(context.Background(), cfg.Database.ProbeTimeout)
		defer cancel()

		if err = db.PingContext(probeCtx); err == nil {
			if err = ensureSchema(db); err == nil {
				return &Repository{
					DB:      db,
					Backend: BackendPostgres,
					Product: NewProductRepo(db),
					Cart:    NewCartRepo(db),
					Order:   NewOrderRepo(db),
				}, nil
			}
		}
	}

	slog.Warn("Postgres unreachable, falling back to in-memory stores",
		slog.String("error", err.Error()))

	if db != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Warn("Failed to close probe connection", slog.String("error", closeErr.Error()))
		}
	}

	carts := NewCartMemoryRepo()

	return &Repository{
		Backend: BackendMemory,
		Product: NewProductMemoryRepo(),
		Cart:    carts,
		Order:   NewOrderMemoryRepo(carts),
	}, nil
}

func (r *Repository) Close() error {
	if r.DB == nil {
		return nil
	}

	return r.DB.Close()
}

func ensureSchema(db *sql.DB) error {

	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id             TEXT PRIMARY KEY,
			title          TEXT NOT NULL,
			description    TEXT NOT NULL,
			price          NUMERIC(12,2) NOT NULL CHECK (price >= 0),
			original_price NUMERIC(12,2),
			category       TEXT NOT NULL,
			brand          TEXT NOT NULL DEFAULT '',
			image_url      TEXT NOT NULL,
			in_stock       BOOLEAN NOT NULL DEFAULT TRUE,
			stock_quantity INTEGER NOT NULL DEFAULT 0 CHECK (stock_quantity >= 0),
			tags           TEXT[] NOT NULL DEFAULT '{}',
			rating         NUMERIC(3,2) NOT NULL DEFAULT 0,
			reviews        INTEGER NOT NULL DEFAULT 0,
			featured       BOOLEAN NOT NULL DEFAULT FALSE,
			created_by     TEXT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category)`,
		`CREATE INDEX IF NOT EXISTS idx_products_created_by ON products (created_by)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			user_email TEXT NOT NULL,
			product_id TEXT NOT NULL,
			quantity   INTEGER NOT NULL CHECK (quantity > 0),
			added_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			PRIMARY KEY (user_email, product_id)
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id               TEXT PRIMARY KEY,
			user_email       TEXT NOT NULL,
			items            JSONB NOT NULL,
			total            NUMERIC(12,2) NOT NULL,
			shipping_address JSONB NOT NULL,
			payment_method   TEXT NOT NULL,
			status           TEXT NOT NULL,
			created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_orders_user_email ON orders (user_email)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensuring schema: %w", err)
		}
	}

	return nil
}
