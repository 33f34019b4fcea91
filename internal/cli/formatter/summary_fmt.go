package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gedgen/internal/repository"
	"github.com/alexanderramin/gedgen/internal/service"
)

// FormatGenerateSummary renders the post-run summary printed after a tree
// has been written.
func FormatGenerateSummary(r *service.GenerateResult) string {
	var b strings.Builder

	b.WriteString(Header("Generated"))
	b.WriteString("\n")

	dest := "stdout"
	if r.Path != "" {
		dest = r.Path
	}

	rows := []struct {
		label string
		value string
	}{
		{"Individuals", StyleGreen.Render(fmt.Sprintf("%d", r.Individuals))},
		{"Families", StyleGreen.Render(fmt.Sprintf("%d", r.Unions))},
		{"Generations", StyleFg.Render(fmt.Sprintf("%d", r.Generations))},
		{"Seed", StyleBlue.Render(fmt.Sprintf("%d", r.Seed))},
		{"Output", StyleFg.Render(dest)},
		{"Size", StyleDim.Render(fmt.Sprintf("%d bytes", r.Bytes))},
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-12s", row.label)), row.value))
	}

	return b.String()
}

// FormatPoolStats renders the name bank contents as a table, or a dimmed
// notice when the bank is empty.
func FormatPoolStats(stats []repository.PoolStats) string {
	if len(stats) == 0 {
		return StyleDim.Render("Name bank is empty; built-in defaults will be used.") + "\n"
	}

	headers := []string{"KIND", "SEX", "NAMES", "TOTAL WEIGHT"}
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			StyleFg.Render(string(s.Kind)),
			StyleFg.Render(string(s.Sex)),
			StyleGreen.Render(fmt.Sprintf("%d", s.Names)),
			StyleBlue.Render(fmt.Sprintf("%d", s.TotalWeight)),
		})
	}
	return RenderTable(headers, rows)
}
