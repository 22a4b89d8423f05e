package sqlstore

import (
	"context"
	"fmt"
	"strings"
)

const schemaTemplate = `
CREATE TABLE IF NOT EXISTS products (
    id {{pk}},
    name VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    benefits TEXT NOT NULL,
    price BIGINT NOT NULL,
    category VARCHAR(64) NOT NULL,
    image_url TEXT NOT NULL,
    options TEXT NOT NULL,
    active BOOLEAN NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
    id {{pk}},
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    phone VARCHAR(64) NOT NULL,
    address TEXT NOT NULL,
    notes TEXT NOT NULL,
    total BIGINT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS order_items (
    id {{pk}},
    order_id BIGINT NOT NULL,
    product_id BIGINT NOT NULL,
    name VARCHAR(255) NOT NULL,
    price BIGINT NOT NULL,
    quantity BIGINT NOT NULL,
    item_option VARCHAR(255) NOT NULL,
    image_url TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contact_messages (
    id {{pk}},
    name VARCHAR(255) NOT NULL,
    email VARCHAR(255) NOT NULL,
    message TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
    id {{pk}},
    username VARCHAR(191) NOT NULL UNIQUE,
    password_hash VARCHAR(255) NOT NULL
);
`

func (db *DB) primaryKey() string {
	switch db.dialect {
	case MySQL:
		return "BIGINT AUTO_INCREMENT PRIMARY KEY"
	case Postgres:
		return "BIGSERIAL PRIMARY KEY"
	default:
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

// EnsureSchema creates the storefront tables when they are missing.
// Existing tables are left untouched.
func (db *DB) EnsureSchema(ctx context.Context) error {
	ddl := strings.ReplaceAll(schemaTemplate, "{{pk}}", db.primaryKey())
	for _, stmt := range strings.Split(ddl, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
