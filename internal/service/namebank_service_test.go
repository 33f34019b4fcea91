package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/importer"
	"github.com/alexanderramin/gedgen/internal/namebank"
	"github.com/alexanderramin/gedgen/internal/repository"
	"github.com/alexanderramin/gedgen/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNameBankService(t *testing.T) NameBankService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewNameBankService(repository.NewSQLiteNameRepo(db))
}

func writeNameCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNameBankService_LoadPools_DefaultsWhenEmpty(t *testing.T) {
	svc := newNameBankService(t)
	ctx := context.Background()

	pools, err := svc.LoadPools(ctx)
	require.NoError(t, err)
	require.NoError(t, pools.Validate())

	defaults := namebank.Defaults()
	assert.Equal(t, defaults.GivenMale.Len(), pools.GivenMale.Len())
	assert.Equal(t, defaults.SurnameFemale.Len(), pools.SurnameFemale.Len())
}

func TestNameBankService_Import_ReplacesOneSlot(t *testing.T) {
	svc := newNameBankService(t)
	ctx := context.Background()

	path := writeNameCSV(t, "IMIĘ,PŁEĆ,LICZBA\nHANNA,K,12\nLAURA,K,8\n")
	result, err := svc.Import(ctx, ImportRequest{
		Path:    path,
		Kind:    namebank.KindGiven,
		Sex:     domain.SexFemale,
		Columns: importer.DefaultGivenColumns,
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Names)
	assert.Equal(t, 20, result.TotalWeight)

	pools, err := svc.LoadPools(ctx)
	require.NoError(t, err)

	// The imported slot replaces the defaults, the others keep them.
	assert.Equal(t, 2, pools.GivenFemale.Len())
	assert.Equal(t, "Hanna", pools.GivenFemale.Pick(0))
	assert.Equal(t, namebank.Defaults().GivenMale.Len(), pools.GivenMale.Len())
}

func TestNameBankService_Import_RejectsNonPartnerSex(t *testing.T) {
	svc := newNameBankService(t)

	path := writeNameCSV(t, "name,count\nAlex,1\n")
	_, err := svc.Import(context.Background(), ImportRequest{
		Path:    path,
		Kind:    namebank.KindGiven,
		Sex:     domain.SexUnknown,
		Columns: importer.ColumnSpec{NameCol: 0, WeightCol: 1},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sex must be M or F")
}

func TestNameBankService_Import_BadFileLeavesBankUntouched(t *testing.T) {
	svc := newNameBankService(t)
	ctx := context.Background()

	_, err := svc.Import(ctx, ImportRequest{
		Path:    filepath.Join(t.TempDir(), "absent.csv"),
		Kind:    namebank.KindSurname,
		Sex:     domain.SexMale,
		Columns: importer.DefaultSurnameColumns,
	})
	require.Error(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Empty(t, stats)
}

func TestNameBankService_Stats(t *testing.T) {
	svc := newNameBankService(t)
	ctx := context.Background()

	path := writeNameCSV(t, "NAZWISKO,LICZBA\nNOWAK,100\nKOWALSKI,80\n")
	_, err := svc.Import(ctx, ImportRequest{
		Path:    path,
		Kind:    namebank.KindSurname,
		Sex:     domain.SexMale,
		Columns: importer.DefaultSurnameColumns,
	})
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, namebank.KindSurname, stats[0].Kind)
	assert.Equal(t, domain.SexMale, stats[0].Sex)
	assert.Equal(t, 2, stats[0].Names)
	assert.Equal(t, 180, stats[0].TotalWeight)
}
