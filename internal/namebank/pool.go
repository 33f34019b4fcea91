// Package namebank holds weighted name pools the generator draws from:
// built-in defaults plus pools imported from CSV statistics files into the
// local name bank database.
package namebank

import (
	"fmt"
	"sort"
)

// Kind distinguishes the two pool families.
type Kind string

const (
	KindGiven   Kind = "given"
	KindSurname Kind = "surname"
)

// ValidKinds is the canonical set of accepted pool kinds.
var ValidKinds = map[Kind]bool{KindGiven: true, KindSurname: true}

// WeightedName is one entry of a statistical name list.
type WeightedName struct {
	Name   string
	Weight int
}

// Pool is an immutable cumulative distribution over names. Entries are
// ordered by name so the same list always produces the same distribution
// regardless of input order.
type Pool struct {
	names []string
	cum   []float64
	total float64
}

// NewPool builds a pool from a weighted list.
// Empty lists and non-positive weights are rejected.
func NewPool(entries []WeightedName) (*Pool, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("name pool: empty list")
	}

	sorted := make([]WeightedName, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	p := &Pool{
		names: make([]string, 0, len(sorted)),
		cum:   make([]float64, 0, len(sorted)),
	}
	for _, e := range sorted {
		if e.Name == "" {
			return nil, fmt.Errorf("name pool: empty name")
		}
		if e.Weight <= 0 {
			return nil, fmt.Errorf("name pool: %q: weight must be positive, got %d", e.Name, e.Weight)
		}
		p.total += float64(e.Weight)
		p.names = append(p.names, e.Name)
		p.cum = append(p.cum, p.total)
	}
	return p, nil
}

// Len returns the number of distinct names in the pool.
func (p *Pool) Len() int {
	return len(p.names)
}

// Pick maps a uniform draw f in [0,1) onto the distribution.
func (p *Pool) Pick(f float64) string {
	target := f * p.total
	idx := sort.SearchFloat64s(p.cum, target)
	if idx >= len(p.names) {
		idx = len(p.names) - 1
	}
	// SearchFloat64s finds the first cum >= target; an exact hit belongs to
	// the next bucket.
	if p.cum[idx] == target && idx+1 < len(p.names) {
		idx++
	}
	return p.names[idx]
}

// Pools bundles the four pools one generation run draws from.
type Pools struct {
	GivenMale     *Pool
	GivenFemale   *Pool
	SurnameMale   *Pool
	SurnameFemale *Pool
}

// Validate reports the first missing pool.
func (p Pools) Validate() error {
	for _, c := range []struct {
		name string
		pool *Pool
	}{
		{"given/M", p.GivenMale},
		{"given/F", p.GivenFemale},
		{"surname/M", p.SurnameMale},
		{"surname/F", p.SurnameFemale},
	} {
		if c.pool == nil || c.pool.Len() == 0 {
			return fmt.Errorf("name pool %s: empty", c.name)
		}
	}
	return nil
}
