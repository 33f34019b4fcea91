package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/namebank"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// PoolStats summarizes one stored pool for reporting.
type PoolStats struct {
	Kind        namebank.Kind
	Sex         domain.Sex
	Names       int
	TotalWeight int
}

// NameRepo stores weighted name lists keyed by (kind, sex).
type NameRepo interface {
	// ReplacePool atomically swaps the stored list for one (kind, sex) slot.
	ReplacePool(ctx context.Context, kind namebank.Kind, sex domain.Sex, entries []namebank.WeightedName) error
	// LoadPool returns the stored list ordered by name, or ErrNotFound when
	// the slot is empty.
	LoadPool(ctx context.Context, kind namebank.Kind, sex domain.Sex) ([]namebank.WeightedName, error)
	// Stats reports every non-empty slot.
	Stats(ctx context.Context) ([]PoolStats, error)
}
