package domain

import "time"

// Union is a partnership producing zero or more children. Husband and Wife
// are individual IDs and may be nil for unknown-parentage placeholders;
// Children holds individual IDs in insertion order (the encoder re-sorts
// by birth date).
type Union struct {
	ID   int
	XRef string
	Kind RelationKind

	Husband *int
	Wife    *int

	Children []int

	// Formed is the relation start date of the parents.
	Formed time.Time
}

// Parents returns the non-nil parent IDs.
func (u *Union) Parents() []int {
	ids := make([]int, 0, 2)
	if u.Husband != nil {
		ids = append(ids, *u.Husband)
	}
	if u.Wife != nil {
		ids = append(ids, *u.Wife)
	}
	return ids
}

// HasParent reports whether id is the husband or wife of this union.
func (u *Union) HasParent(id int) bool {
	if u.Husband != nil && *u.Husband == id {
		return true
	}
	if u.Wife != nil && *u.Wife == id {
		return true
	}
	return false
}

// HasChild reports whether id is a child of this union.
func (u *Union) HasChild(id int) bool {
	for _, c := range u.Children {
		if c == id {
			return true
		}
	}
	return false
}
