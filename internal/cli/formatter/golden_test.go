package formatter

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/namebank"
	"github.com/alexanderramin/gedgen/internal/repository"
	"github.com/alexanderramin/gedgen/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ansiPattern matches ANSI escape sequences for stripping before golden comparison.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes from a string so golden files
// are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// goldenTest compares got against a golden file in testdata/<name>.golden.
// Set GOLDEN_UPDATE=1 to regenerate golden files.
func goldenTest(t *testing.T, name, got string) {
	t.Helper()

	goldenDir := filepath.Join("testdata")
	goldenPath := filepath.Join(goldenDir, name+".golden")

	stripped := stripANSI(got)

	if os.Getenv("GOLDEN_UPDATE") == "1" {
		require.NoError(t, os.MkdirAll(goldenDir, 0755))
		require.NoError(t, os.WriteFile(goldenPath, []byte(stripped), 0644))
		t.Logf("updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if os.IsNotExist(err) {
		t.Fatalf("golden file %s does not exist; run with GOLDEN_UPDATE=1 to create it", goldenPath)
	}
	require.NoError(t, err)

	assert.Equal(t, string(expected), stripped,
		"output does not match golden file %s; run with GOLDEN_UPDATE=1 to update", goldenPath)
}

func TestFormatGenerateSummary_Golden_File(t *testing.T) {
	result := &service.GenerateResult{
		Individuals: 120,
		Unions:      38,
		Generations: 6,
		Seed:        42,
		Bytes:       2048,
		Path:        "tree.ged",
	}
	goldenTest(t, "summary_file", FormatGenerateSummary(result))
}

func TestFormatGenerateSummary_Golden_Stdout(t *testing.T) {
	result := &service.GenerateResult{
		Individuals: 1,
		Unions:      0,
		Generations: 1,
		Seed:        1,
		Bytes:       300,
	}
	goldenTest(t, "summary_stdout", FormatGenerateSummary(result))
}

func TestFormatPoolStats_Golden(t *testing.T) {
	stats := []repository.PoolStats{
		{Kind: namebank.KindGiven, Sex: domain.SexFemale, Names: 2, TotalWeight: 20},
		{Kind: namebank.KindSurname, Sex: domain.SexMale, Names: 1, TotalWeight: 4},
	}
	goldenTest(t, "pool_stats", FormatPoolStats(stats))
}

func TestFormatPoolStats_Golden_Empty(t *testing.T) {
	goldenTest(t, "pool_stats_empty", FormatPoolStats(nil))
}
