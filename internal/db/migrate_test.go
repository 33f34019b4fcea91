package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	// Re-running migrations must succeed without error.
	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))
}

func TestMigrate_CreatesNamePools(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='name_pools'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "name_pools", name)

	err = db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name='idx_name_pools_kind_sex'`).Scan(&name)
	require.NoError(t, err)
}

func TestMigrate_NamePoolConstraints(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO name_pools (name, kind, sex, weight) VALUES ('Anna', 'given', 'F', 25)`)
	require.NoError(t, err)

	// Duplicate primary key is rejected.
	_, err = db.Exec(`INSERT INTO name_pools (name, kind, sex, weight) VALUES ('Anna', 'given', 'F', 1)`)
	assert.Error(t, err)

	// Kind, sex and weight are CHECK constrained.
	_, err = db.Exec(`INSERT INTO name_pools (name, kind, sex, weight) VALUES ('Jan', 'middle', 'M', 1)`)
	assert.Error(t, err)
	_, err = db.Exec(`INSERT INTO name_pools (name, kind, sex, weight) VALUES ('Jan', 'given', 'Q', 1)`)
	assert.Error(t, err)
	_, err = db.Exec(`INSERT INTO name_pools (name, kind, sex, weight) VALUES ('Jan', 'given', 'M', 0)`)
	assert.Error(t, err)
}
