package domain

import (
	"fmt"
	"time"
)

// Individual is one person in the tree. Identity is the arena index (ID) plus
// the cross-reference token (XRef) assigned once when the tree is frozen.
// Relationship fields hold union IDs, never pointers, so the cyclic
// individual<->union graph stays navigable without ownership cycles.
type Individual struct {
	ID      int
	XRef    string
	Sex     Sex
	Given   string
	Surname string

	// Birth and Death are nil when unknown. When both are set,
	// Death never precedes Birth.
	Birth *time.Time
	Death *time.Time

	// Generation is the depth from the nearest founder ancestor.
	// It strictly increases along every parent->child edge.
	Generation int

	// ParentUnion is the union this individual is a child of (FAMC),
	// nil for founders.
	ParentUnion *int

	// SpouseUnions lists the unions this individual is a parent in (FAMS).
	SpouseUnions []int
}

// Alive reports whether the individual has no recorded death.
func (i *Individual) Alive() bool {
	return i.Death == nil
}

// Partnered reports whether the individual already belongs to a union as a spouse.
func (i *Individual) Partnered() bool {
	return len(i.SpouseUnions) > 0
}

// Validate checks fields that do not require tree context.
func (i *Individual) Validate() error {
	if !ValidSexes[i.Sex] {
		return fmt.Errorf("individual %d: invalid sex %q", i.ID, i.Sex)
	}
	if i.Birth != nil && i.Death != nil && i.Death.Before(*i.Birth) {
		return fmt.Errorf("individual %d: death %s precedes birth %s",
			i.ID, i.Death.Format("2006-01-02"), i.Birth.Format("2006-01-02"))
	}
	return nil
}
