package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/namebank"
	"github.com/alexanderramin/gedgen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRepo_LoadPool_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNameRepo(db)
	ctx := context.Background()

	_, err := repo.LoadPool(ctx, namebank.KindGiven, domain.SexFemale)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestNameRepo_ReplaceAndLoad(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNameRepo(db)
	ctx := context.Background()

	entries := []namebank.WeightedName{
		{Name: "Zofia", Weight: 3},
		{Name: "Anna", Weight: 7},
	}
	require.NoError(t, repo.ReplacePool(ctx, namebank.KindGiven, domain.SexFemale, entries))

	got, err := repo.LoadPool(ctx, namebank.KindGiven, domain.SexFemale)
	require.NoError(t, err)

	// Rows come back ordered by name.
	require.Len(t, got, 2)
	assert.Equal(t, namebank.WeightedName{Name: "Anna", Weight: 7}, got[0])
	assert.Equal(t, namebank.WeightedName{Name: "Zofia", Weight: 3}, got[1])
}

func TestNameRepo_Replace_SwapsWholePool(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNameRepo(db)
	ctx := context.Background()

	first := []namebank.WeightedName{{Name: "Jan", Weight: 5}, {Name: "Piotr", Weight: 2}}
	require.NoError(t, repo.ReplacePool(ctx, namebank.KindGiven, domain.SexMale, first))

	second := []namebank.WeightedName{{Name: "Adam", Weight: 1}}
	require.NoError(t, repo.ReplacePool(ctx, namebank.KindGiven, domain.SexMale, second))

	got, err := repo.LoadPool(ctx, namebank.KindGiven, domain.SexMale)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Adam", got[0].Name)
}

func TestNameRepo_Replace_FailureLeavesOldPool(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNameRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplacePool(ctx, namebank.KindSurname, domain.SexMale,
		[]namebank.WeightedName{{Name: "Kowalski", Weight: 4}}))

	// Duplicate names violate the primary key; the whole replace rolls back.
	err := repo.ReplacePool(ctx, namebank.KindSurname, domain.SexMale,
		[]namebank.WeightedName{{Name: "Nowak", Weight: 2}, {Name: "Nowak", Weight: 3}})
	require.Error(t, err)

	got, err := repo.LoadPool(ctx, namebank.KindSurname, domain.SexMale)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Kowalski", got[0].Name)
}

func TestNameRepo_Replace_RejectsInvalidInput(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNameRepo(db)
	ctx := context.Background()

	err := repo.ReplacePool(ctx, namebank.Kind("middle"), domain.SexMale,
		[]namebank.WeightedName{{Name: "Jan", Weight: 1}})
	assert.Error(t, err)

	err = repo.ReplacePool(ctx, namebank.KindGiven, domain.SexMale, nil)
	assert.Error(t, err)
}

func TestNameRepo_PoolsAreIndependent(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNameRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.ReplacePool(ctx, namebank.KindGiven, domain.SexFemale,
		[]namebank.WeightedName{{Name: "Anna", Weight: 1}}))
	require.NoError(t, repo.ReplacePool(ctx, namebank.KindSurname, domain.SexFemale,
		[]namebank.WeightedName{{Name: "Nowak", Weight: 1}}))

	given, err := repo.LoadPool(ctx, namebank.KindGiven, domain.SexFemale)
	require.NoError(t, err)
	assert.Equal(t, "Anna", given[0].Name)

	surname, err := repo.LoadPool(ctx, namebank.KindSurname, domain.SexFemale)
	require.NoError(t, err)
	assert.Equal(t, "Nowak", surname[0].Name)
}

func TestNameRepo_Stats(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNameRepo(db)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats)

	require.NoError(t, repo.ReplacePool(ctx, namebank.KindGiven, domain.SexFemale,
		[]namebank.WeightedName{{Name: "Anna", Weight: 7}, {Name: "Zofia", Weight: 3}}))
	require.NoError(t, repo.ReplacePool(ctx, namebank.KindSurname, domain.SexMale,
		[]namebank.WeightedName{{Name: "Kowalski", Weight: 4}}))

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	// Ordered by kind then sex.
	assert.Equal(t, namebank.KindGiven, stats[0].Kind)
	assert.Equal(t, domain.SexFemale, stats[0].Sex)
	assert.Equal(t, 2, stats[0].Names)
	assert.Equal(t, 10, stats[0].TotalWeight)

	assert.Equal(t, namebank.KindSurname, stats[1].Kind)
	assert.Equal(t, domain.SexMale, stats[1].Sex)
	assert.Equal(t, 1, stats[1].Names)
	assert.Equal(t, 4, stats[1].TotalWeight)
}
