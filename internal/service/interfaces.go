package service

import (
	"context"
	"io"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/gen"
	"github.com/alexanderramin/gedgen/internal/importer"
	"github.com/alexanderramin/gedgen/internal/namebank"
	"github.com/alexanderramin/gedgen/internal/repository"
)

// GenerateRequest describes one generation run.
type GenerateRequest struct {
	Config gen.Config
	// OutPath, when set, is the file the GEDCOM output is written to.
	// Otherwise the output goes to Out.
	OutPath string
	Out     io.Writer
}

// GenerateResult summarizes a finished run.
type GenerateResult struct {
	Individuals int
	Unions      int
	Generations int
	Seed        int64
	Bytes       int
	Path        string
}

// ImportRequest loads one CSV name list into a name bank slot.
type ImportRequest struct {
	Path    string
	Kind    namebank.Kind
	Sex     domain.Sex
	Columns importer.ColumnSpec
}

// ImportResult reports what the import stored.
type ImportResult struct {
	Names       int
	TotalWeight int
}

type GenerateService interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

type NameBankService interface {
	Import(ctx context.Context, req ImportRequest) (*ImportResult, error)
	Stats(ctx context.Context) ([]repository.PoolStats, error)
	// LoadPools assembles the four generation pools, falling back to the
	// built-in defaults for any slot the bank does not cover.
	LoadPools(ctx context.Context) (namebank.Pools, error)
}
