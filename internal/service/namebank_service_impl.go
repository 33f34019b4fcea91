package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/importer"
	"github.com/alexanderramin/gedgen/internal/namebank"
	"github.com/alexanderramin/gedgen/internal/repository"
)

type nameBankService struct {
	names    repository.NameRepo
	observer UseCaseObserver
}

// NewNameBankService creates a NameBankService backed by the given repository.
func NewNameBankService(names repository.NameRepo, observers ...UseCaseObserver) NameBankService {
	return &nameBankService{
		names:    names,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *nameBankService) Import(ctx context.Context, req ImportRequest) (*ImportResult, error) {
	var result *ImportResult
	fields := map[string]any{
		"path": req.Path,
		"kind": string(req.Kind),
		"sex":  string(req.Sex),
	}
	err := observe(ctx, s.observer, "names_import", fields, func() error {
		if !req.Sex.CanPartner() {
			return fmt.Errorf("importing names: sex must be M or F, got %q", req.Sex)
		}
		entries, err := importer.ReadWeightedList(req.Path, req.Columns)
		if err != nil {
			return err
		}
		if err := s.names.ReplacePool(ctx, req.Kind, req.Sex, entries); err != nil {
			return err
		}
		total := 0
		for _, e := range entries {
			total += e.Weight
		}
		result = &ImportResult{Names: len(entries), TotalWeight: total}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *nameBankService) Stats(ctx context.Context) ([]repository.PoolStats, error) {
	return s.names.Stats(ctx)
}

func (s *nameBankService) LoadPools(ctx context.Context) (namebank.Pools, error) {
	defaults := namebank.Defaults()

	pools := namebank.Pools{}
	for _, slot := range []struct {
		kind     namebank.Kind
		sex      domain.Sex
		target   **namebank.Pool
		fallback *namebank.Pool
	}{
		{namebank.KindGiven, domain.SexMale, &pools.GivenMale, defaults.GivenMale},
		{namebank.KindGiven, domain.SexFemale, &pools.GivenFemale, defaults.GivenFemale},
		{namebank.KindSurname, domain.SexMale, &pools.SurnameMale, defaults.SurnameMale},
		{namebank.KindSurname, domain.SexFemale, &pools.SurnameFemale, defaults.SurnameFemale},
	} {
		entries, err := s.names.LoadPool(ctx, slot.kind, slot.sex)
		if errors.Is(err, repository.ErrNotFound) {
			*slot.target = slot.fallback
			continue
		}
		if err != nil {
			return namebank.Pools{}, err
		}
		pool, err := namebank.NewPool(entries)
		if err != nil {
			return namebank.Pools{}, fmt.Errorf("pool %s/%s: %w", slot.kind, slot.sex, err)
		}
		*slot.target = pool
	}
	return pools, nil
}
