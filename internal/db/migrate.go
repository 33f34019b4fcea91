package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list re-runs on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS name_pools (
		name   TEXT NOT NULL,
		kind   TEXT NOT NULL CHECK(kind IN ('given','surname')),
		sex    TEXT NOT NULL CHECK(sex IN ('M','F')),
		weight INTEGER NOT NULL CHECK(weight > 0),
		PRIMARY KEY (name, kind, sex)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_name_pools_kind_sex ON name_pools(kind, sex)`,
}
