package gen

import (
	"errors"
	"fmt"
	"time"
)

// ConfigError reports an invalid or contradictory generation parameter.
// It is always detected before generation starts and never retried.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
}

// Config holds every parameter of one generation run. A valid config makes
// the builder total: no failure path remains once Validate passes.
type Config struct {
	// IndividualCount is the target tree size N. The finished tree holds
	// between FounderCount and N individuals inclusive.
	IndividualCount int

	// FounderCount is the number of root individuals with no parent union.
	FounderCount int

	// Seed drives the single random stream; the same seed and config
	// reproduce an identical tree bit for bit.
	Seed int64

	// Generations caps tree depth. Zero means derive it from
	// IndividualCount and the expected branching factor.
	Generations int

	MarriageProbability float64
	DeathProbability    float64

	// ExpectedChildren centers the children-count distribution.
	ExpectedChildren int

	// SecondNameChance is the percent chance of a second given name.
	SecondNameChance int

	// FounderBirthStart and FounderBirthYears bound founder birth dates:
	// drawn in [FounderBirthStart, FounderBirthStart + FounderBirthYears).
	FounderBirthStart time.Time
	FounderBirthYears int

	// Reference is the "present" date. No generated date exceeds it.
	Reference time.Time

	// AdulthoodYears is the minimum age at union formation, and therefore
	// the minimum parent-to-child birth offset.
	AdulthoodYears int

	// SpouseAgeGapYears bounds how far a generated spouse's birth may sit
	// from the partner's birth, either direction.
	SpouseAgeGapYears int

	// MinLifespanYears and MaxLifespanYears bound drawn death dates
	// relative to birth.
	MinLifespanYears int
	MaxLifespanYears int

	// SiblingIntervalMonths is the minimum spacing between sibling births.
	SiblingIntervalMonths int
}

// DefaultConfig returns the documented defaults. Distribution shapes the
// source leaves unstated are exposed here rather than hard-coded.
func DefaultConfig() Config {
	return Config{
		IndividualCount:       1000,
		FounderCount:          1,
		Seed:                  1,
		MarriageProbability:   0.85,
		DeathProbability:      0.6,
		ExpectedChildren:      3,
		SecondNameChance:      7,
		FounderBirthStart:     time.Date(1670, 1, 1, 0, 0, 0, 0, time.UTC),
		FounderBirthYears:     10,
		Reference:             time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		AdulthoodYears:        18,
		SpouseAgeGapYears:     8,
		MinLifespanYears:      30,
		MaxLifespanYears:      95,
		SiblingIntervalMonths: 11,
	}
}

// Validate checks the whole config and reports every violation found.
func (c Config) Validate() error {
	var errs []error

	if c.IndividualCount < 1 {
		errs = append(errs, &ConfigError{"individualCount", fmt.Sprintf("must be positive, got %d", c.IndividualCount)})
	}
	if c.FounderCount < 1 {
		errs = append(errs, &ConfigError{"founderCount", fmt.Sprintf("must be at least 1, got %d", c.FounderCount)})
	}
	if c.FounderCount > c.IndividualCount {
		errs = append(errs, &ConfigError{"founderCount", fmt.Sprintf("%d exceeds individualCount %d", c.FounderCount, c.IndividualCount)})
	}
	if c.Generations < 0 {
		errs = append(errs, &ConfigError{"generations", fmt.Sprintf("must not be negative, got %d", c.Generations)})
	}
	if c.MarriageProbability < 0 || c.MarriageProbability > 1 {
		errs = append(errs, &ConfigError{"marriageProbability", fmt.Sprintf("must be within [0,1], got %g", c.MarriageProbability)})
	}
	if c.DeathProbability < 0 || c.DeathProbability > 1 {
		errs = append(errs, &ConfigError{"deathProbability", fmt.Sprintf("must be within [0,1], got %g", c.DeathProbability)})
	}
	if c.ExpectedChildren < 0 {
		errs = append(errs, &ConfigError{"expectedChildren", fmt.Sprintf("must not be negative, got %d", c.ExpectedChildren)})
	}
	if c.SecondNameChance < 0 || c.SecondNameChance > 100 {
		errs = append(errs, &ConfigError{"secondNameChance", fmt.Sprintf("must be within [0,100], got %d", c.SecondNameChance)})
	}
	if c.FounderBirthStart.IsZero() {
		errs = append(errs, &ConfigError{"founderBirthStart", "required"})
	}
	if c.FounderBirthYears < 1 {
		errs = append(errs, &ConfigError{"founderBirthYears", fmt.Sprintf("must be at least 1, got %d", c.FounderBirthYears)})
	}
	if c.Reference.IsZero() {
		errs = append(errs, &ConfigError{"reference", "required"})
	} else if !c.FounderBirthStart.IsZero() && !c.Reference.After(c.FounderBirthStart) {
		errs = append(errs, &ConfigError{"reference", fmt.Sprintf("%s must be after founderBirthStart %s",
			c.Reference.Format("2006-01-02"), c.FounderBirthStart.Format("2006-01-02"))})
	}
	if c.AdulthoodYears < 1 {
		errs = append(errs, &ConfigError{"adulthoodYears", fmt.Sprintf("must be at least 1, got %d", c.AdulthoodYears)})
	}
	if c.SpouseAgeGapYears < 0 {
		errs = append(errs, &ConfigError{"spouseAgeGapYears", fmt.Sprintf("must not be negative, got %d", c.SpouseAgeGapYears)})
	}
	if c.MinLifespanYears < 1 {
		errs = append(errs, &ConfigError{"minLifespanYears", fmt.Sprintf("must be at least 1, got %d", c.MinLifespanYears)})
	}
	if c.MaxLifespanYears < c.MinLifespanYears {
		errs = append(errs, &ConfigError{"maxLifespanYears", fmt.Sprintf("%d is below minLifespanYears %d", c.MaxLifespanYears, c.MinLifespanYears)})
	}
	if c.SiblingIntervalMonths < 1 {
		errs = append(errs, &ConfigError{"siblingIntervalMonths", fmt.Sprintf("must be at least 1, got %d", c.SiblingIntervalMonths)})
	}

	return errors.Join(errs...)
}

// derivedGenerations returns the generation cap: the configured value when
// set, otherwise the depth at which the expected branching reaches
// IndividualCount starting from FounderCount.
func (c Config) derivedGenerations() int {
	if c.Generations > 0 {
		return c.Generations
	}
	branching := c.ExpectedChildren
	if branching < 2 {
		branching = 2
	}
	generations := 1
	capacity := c.FounderCount
	for capacity < c.IndividualCount && generations < 64 {
		capacity *= branching
		generations++
	}
	return generations
}
