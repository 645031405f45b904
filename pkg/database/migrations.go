package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for PostgreSQL.
// These indexes enable efficient full-text search on item name and description.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_items_name_description_gin
		ON items USING gin(to_tsvector('simple', name || ' ' || COALESCE(description, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create items search index: %w", err)
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 20260415120000_init_schema.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// One active cart per (business, branch, customer)
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS order_business_id_user_id_customer_phone_cart
		ON orders (business_id, user_id, customer_phone_number)
		WHERE status = 'cart'`)
	if err != nil {
		return fmt.Errorf("failed to create cart uniqueness index: %w", err)
	}

	// One confirmed reservation per (table, date, time) slot
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS reservation_table_id_date_time_confirmed
		ON reservations (table_id, reservation_date, reservation_time)
		WHERE status = 'confirmed'`)
	if err != nil {
		return fmt.Errorf("failed to create reservation slot index: %w", err)
	}

	// One open session per (business, customer, platform)
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS chatsession_business_customer_platform_open
		ON chat_sessions (business_id, customer_id, platform)
		WHERE state != 'closed'`)
	if err != nil {
		return fmt.Errorf("failed to create open session index: %w", err)
	}

	return nil
}
