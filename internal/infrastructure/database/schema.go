package database

import (
	"context"
	"fmt"
)

// Collections are stored as one JSONB document per row, keyed by an
// opaque string id assigned at insert time. The document layout is owned
// by the domain models, not the schema.
var collectionTables = []string{"products", "users"}

// EnsureSchema creates the collection tables if they do not exist yet.
// Runs once at bootstrap, before any request is served.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}

	for _, table := range collectionTables {
		stmt := fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id  TEXT PRIMARY KEY,
				doc JSONB NOT NULL
			)
		`, table)

		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure table %s: %w", table, err)
		}
	}

	return nil
}
