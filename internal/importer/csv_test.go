package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/gedgen/internal/namebank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "names.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadWeightedList_GivenNameLayout(t *testing.T) {
	path := writeCSV(t, "IMIĘ,PŁEĆ,LICZBA\nANNA,K,15\nZOFIA,K,9\n")

	entries, err := ReadWeightedList(path, DefaultGivenColumns)
	require.NoError(t, err)

	assert.Equal(t, []namebank.WeightedName{
		{Name: "Anna", Weight: 15},
		{Name: "Zofia", Weight: 9},
	}, entries)
}

func TestReadWeightedList_SurnameLayout(t *testing.T) {
	path := writeCSV(t, "NAZWISKO,LICZBA\nKOWALSKA,120\nNOWAK-MAZUR,30\n")

	entries, err := ReadWeightedList(path, DefaultSurnameColumns)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "Kowalska", entries[0].Name)
	// Hyphenated surnames keep both parts capitalized.
	assert.Equal(t, "Nowak-Mazur", entries[1].Name)
	assert.Equal(t, 30, entries[1].Weight)
}

func TestReadWeightedList_NoTitleCase(t *testing.T) {
	path := writeCSV(t, "name,count\nde la Cruz,4\n")

	entries, err := ReadWeightedList(path, ColumnSpec{NameCol: 0, WeightCol: 1})
	require.NoError(t, err)
	assert.Equal(t, "de la Cruz", entries[0].Name)
}

func TestReadWeightedList_HeaderOnly(t *testing.T) {
	path := writeCSV(t, "IMIĘ,PŁEĆ,LICZBA\n")

	_, err := ReadWeightedList(path, DefaultGivenColumns)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name rows")
}

func TestReadWeightedList_BadWeight(t *testing.T) {
	path := writeCSV(t, "name,count\nAnna,many\n")

	_, err := ReadWeightedList(path, ColumnSpec{NameCol: 0, WeightCol: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadWeightedList_ZeroWeight(t *testing.T) {
	path := writeCSV(t, "name,count\nAnna,0\n")

	_, err := ReadWeightedList(path, ColumnSpec{NameCol: 0, WeightCol: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "weight must be positive")
}

func TestReadWeightedList_MissingColumns(t *testing.T) {
	path := writeCSV(t, "name\nAnna\n")

	_, err := ReadWeightedList(path, ColumnSpec{NameCol: 0, WeightCol: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "columns")
}

func TestReadWeightedList_MissingFile(t *testing.T) {
	_, err := ReadWeightedList(filepath.Join(t.TempDir(), "absent.csv"), DefaultGivenColumns)
	require.Error(t, err)
}
