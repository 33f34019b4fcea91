// Package importer loads weighted name lists from CSV statistics files, such
// as the name frequency tables published by national statistics offices.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/gedgen/internal/namebank"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ColumnSpec describes where to find the name and weight in each CSV row.
type ColumnSpec struct {
	// NameCol and WeightCol are zero-based column indexes.
	NameCol   int
	WeightCol int
	// TitleCase rewrites names published in upper case to title case.
	TitleCase bool
}

// DefaultGivenColumns matches the layout of given-name frequency tables:
// name, sex, count.
var DefaultGivenColumns = ColumnSpec{NameCol: 0, WeightCol: 2, TitleCase: true}

// DefaultSurnameColumns matches the layout of surname frequency tables:
// name, count.
var DefaultSurnameColumns = ColumnSpec{NameCol: 0, WeightCol: 1, TitleCase: true}

// ReadWeightedList reads a weighted name list from a CSV file. The first row
// is treated as a header and skipped.
func ReadWeightedList(path string, spec ColumnSpec) ([]namebank.WeightedName, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name list: %w", err)
	}
	defer f.Close()

	entries, err := readWeightedList(f, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

func readWeightedList(r io.Reader, spec ColumnSpec) ([]namebank.WeightedName, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	titler := cases.Title(language.Polish)

	var entries []namebank.WeightedName
	line := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+1, err)
		}
		line++
		if line == 1 {
			// Header row.
			continue
		}

		if spec.NameCol >= len(row) || spec.WeightCol >= len(row) {
			return nil, fmt.Errorf("line %d: expected at least %d columns, got %d",
				line, max(spec.NameCol, spec.WeightCol)+1, len(row))
		}

		name := strings.TrimSpace(row[spec.NameCol])
		if name == "" {
			return nil, fmt.Errorf("line %d: empty name", line)
		}
		if spec.TitleCase {
			name = titler.String(strings.ToLower(name))
		}

		weight, err := strconv.Atoi(strings.TrimSpace(row[spec.WeightCol]))
		if err != nil {
			return nil, fmt.Errorf("line %d: parsing weight: %w", line, err)
		}
		if weight <= 0 {
			return nil, fmt.Errorf("line %d: weight must be positive, got %d", line, weight)
		}

		entries = append(entries, namebank.WeightedName{Name: name, Weight: weight})
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no name rows found")
	}
	return entries, nil
}
