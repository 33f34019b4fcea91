package gen

import (
	"math/rand"
	"time"

	"github.com/alexanderramin/gedgen/internal/namebank"
)

// Rand wraps one seeded math/rand stream with the domain-specific draws the
// builder needs. Every random decision of a run flows through a single Rand,
// which is what makes a seed reproduce an identical tree bit for bit.
//
// math/rand.Rand is not goroutine-safe; a Rand belongs to exactly one run.
type Rand struct {
	r *rand.Rand
}

// NewRand returns a deterministic Rand for the given seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Chance reports true with probability p.
func (r *Rand) Chance(p float64) bool {
	return r.r.Float64() < p
}

// IntBetween draws uniformly from [min, max] inclusive.
// min > max is a configuration error.
func (r *Rand) IntBetween(min, max int) (int, error) {
	if min > max {
		return 0, &ConfigError{Field: "range", Reason: "min exceeds max"}
	}
	return min + r.r.Intn(max-min+1), nil
}

// DateBetween draws a whole-day date uniformly from [min, max].
// min after max is a configuration error.
func (r *Rand) DateBetween(min, max time.Time) (time.Time, error) {
	if min.After(max) {
		return time.Time{}, &ConfigError{Field: "dateRange", Reason: "min exceeds max"}
	}
	days := int(max.Sub(min).Hours() / 24)
	return min.AddDate(0, 0, r.r.Intn(days+1)), nil
}

// Pick draws a weighted name from the pool.
func (r *Rand) Pick(p *namebank.Pool) string {
	return p.Pick(r.r.Float64())
}

// Float64 exposes the raw uniform draw for CDF sampling.
func (r *Rand) Float64() float64 {
	return r.r.Float64()
}

// PickIndex draws a uniform index from [0, n).
func (r *Rand) PickIndex(n int) int {
	return r.r.Intn(n)
}
