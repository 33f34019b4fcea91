package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/gedgen/internal/db"
	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/namebank"
)

// SQLiteNameRepo implements NameRepo on the name_pools table.
type SQLiteNameRepo struct {
	db *sql.DB
}

// NewSQLiteNameRepo creates a new SQLiteNameRepo.
func NewSQLiteNameRepo(conn *sql.DB) *SQLiteNameRepo {
	return &SQLiteNameRepo{db: conn}
}

func (r *SQLiteNameRepo) ReplacePool(ctx context.Context, kind namebank.Kind, sex domain.Sex, entries []namebank.WeightedName) error {
	if !namebank.ValidKinds[kind] {
		return fmt.Errorf("replacing pool: unknown kind %q", kind)
	}
	if len(entries) == 0 {
		return fmt.Errorf("replacing pool %s/%s: empty list", kind, sex)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM name_pools WHERE kind = ? AND sex = ?`, string(kind), string(sex)); err != nil {
		return fmt.Errorf("clearing pool %s/%s: %w", kind, sex, err)
	}
	for _, e := range entries {
		if err := insertName(ctx, tx, kind, sex, e); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing pool %s/%s: %w", kind, sex, err)
	}
	committed = true
	return nil
}

func insertName(ctx context.Context, conn db.DBTX, kind namebank.Kind, sex domain.Sex, e namebank.WeightedName) error {
	_, err := conn.ExecContext(ctx,
		`INSERT INTO name_pools (name, kind, sex, weight) VALUES (?, ?, ?, ?)`,
		e.Name, string(kind), string(sex), e.Weight)
	if err != nil {
		return fmt.Errorf("inserting name %q into %s/%s: %w", e.Name, kind, sex, err)
	}
	return nil
}

func (r *SQLiteNameRepo) LoadPool(ctx context.Context, kind namebank.Kind, sex domain.Sex) ([]namebank.WeightedName, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, weight FROM name_pools WHERE kind = ? AND sex = ? ORDER BY name`,
		string(kind), string(sex))
	if err != nil {
		return nil, fmt.Errorf("loading pool %s/%s: %w", kind, sex, err)
	}
	defer rows.Close()

	var entries []namebank.WeightedName
	for rows.Next() {
		var e namebank.WeightedName
		if err := rows.Scan(&e.Name, &e.Weight); err != nil {
			return nil, fmt.Errorf("scanning name row: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pool %s/%s: %w", kind, sex, err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("pool %s/%s: %w", kind, sex, ErrNotFound)
	}
	return entries, nil
}

func (r *SQLiteNameRepo) Stats(ctx context.Context) ([]PoolStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT kind, sex, COUNT(*), SUM(weight)
		 FROM name_pools GROUP BY kind, sex ORDER BY kind, sex`)
	if err != nil {
		return nil, fmt.Errorf("loading pool stats: %w", err)
	}
	defer rows.Close()

	var stats []PoolStats
	for rows.Next() {
		var s PoolStats
		var kind, sex string
		if err := rows.Scan(&kind, &sex, &s.Names, &s.TotalWeight); err != nil {
			return nil, fmt.Errorf("scanning stats row: %w", err)
		}
		s.Kind = namebank.Kind(kind)
		s.Sex = domain.Sex(sex)
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pool stats: %w", err)
	}
	return stats, nil
}
