package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/gedgen/internal/gedcom"
	"github.com/alexanderramin/gedgen/internal/gen"
)

type generateService struct {
	names    NameBankService
	observer UseCaseObserver
}

// NewGenerateService creates a GenerateService drawing names from the given
// name bank.
func NewGenerateService(names NameBankService, observers ...UseCaseObserver) GenerateService {
	return &generateService{
		names:    names,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *generateService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	var result *GenerateResult
	fields := map[string]any{
		"seed":  req.Config.Seed,
		"count": req.Config.IndividualCount,
	}
	err := observe(ctx, s.observer, "generate", fields, func() error {
		r, err := s.generate(ctx, req)
		result = r
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *generateService) generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if req.OutPath == "" && req.Out == nil {
		return nil, fmt.Errorf("generate: no output destination")
	}
	if err := req.Config.Validate(); err != nil {
		return nil, err
	}

	pools, err := s.names.LoadPools(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading name pools: %w", err)
	}

	tree, err := gen.Build(req.Config, pools)
	if err != nil {
		return nil, err
	}

	opts := gedcom.Options{}
	if req.OutPath != "" {
		opts.FileName = filepath.Base(req.OutPath)
	}
	out, err := gedcom.EncodeWithOptions(tree, opts)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		Individuals: len(tree.Individuals),
		Unions:      len(tree.Unions),
		Generations: tree.Generations(),
		Seed:        req.Config.Seed,
		Bytes:       len(out),
		Path:        req.OutPath,
	}

	if req.OutPath != "" {
		if err := writeFileAtomic(req.OutPath, out); err != nil {
			return nil, err
		}
		return result, nil
	}

	if _, err := req.Out.Write(out); err != nil {
		return nil, fmt.Errorf("writing output: %w", err)
	}
	return result, nil
}

// writeFileAtomic writes via a temp file in the target directory and renames
// it into place, so a failed run never leaves a truncated file behind.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	return nil
}
