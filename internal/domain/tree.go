package domain

import (
	"fmt"
	"time"
)

// Tree is the root aggregate owning every individual and union. Entities live
// in append-only arenas; an entity's ID is its arena index. The tree is built
// once by the generator, frozen (xrefs assigned), and handed read-only to the
// encoder.
type Tree struct {
	Individuals []*Individual
	Unions      []*Union

	// Reference is the "present" date of the run. It bounds every generated
	// date and is emitted as the header and change date so that the same
	// tree always serializes to the same bytes.
	Reference time.Time
}

// NewTree returns an empty tree with the given reference date.
func NewTree(reference time.Time) *Tree {
	return &Tree{Reference: reference}
}

// AddIndividual appends ind to the arena and returns its assigned ID.
func (t *Tree) AddIndividual(ind *Individual) int {
	ind.ID = len(t.Individuals)
	t.Individuals = append(t.Individuals, ind)
	return ind.ID
}

// AddUnion appends u to the arena and returns its assigned ID.
func (t *Tree) AddUnion(u *Union) int {
	u.ID = len(t.Unions)
	t.Unions = append(t.Unions, u)
	return u.ID
}

// Individual returns the individual with the given ID.
func (t *Tree) Individual(id int) (*Individual, bool) {
	if id < 0 || id >= len(t.Individuals) {
		return nil, false
	}
	return t.Individuals[id], true
}

// Union returns the union with the given ID.
func (t *Tree) Union(id int) (*Union, bool) {
	if id < 0 || id >= len(t.Unions) {
		return nil, false
	}
	return t.Unions[id], true
}

// Founders returns the individuals with no parent union, in ID order.
func (t *Tree) Founders() []*Individual {
	var out []*Individual
	for _, ind := range t.Individuals {
		if ind.ParentUnion == nil {
			out = append(out, ind)
		}
	}
	return out
}

// Generations returns the number of distinct generation levels (max index + 1).
func (t *Tree) Generations() int {
	max := -1
	for _, ind := range t.Individuals {
		if ind.Generation > max {
			max = ind.Generation
		}
	}
	return max + 1
}

// AssignXRefs stamps every entity with its cross-reference token. Tokens are
// derived from arena position so re-freezing the same tree is a no-op.
func (t *Tree) AssignXRefs() {
	for i, ind := range t.Individuals {
		ind.XRef = fmt.Sprintf("I%05d", i)
	}
	for i, u := range t.Unions {
		u.XRef = fmt.Sprintf("F%05d", i)
	}
}

// Validate checks structural integrity: every reference resolves, forward and
// back references agree, every entity carries an xref, and no individual is
// its own ancestor. A violation here indicates a generator bug and is always
// fatal to the run.
func (t *Tree) Validate() error {
	for _, ind := range t.Individuals {
		if ind.XRef == "" {
			return &StructuralError{Entity: fmt.Sprintf("individual %d", ind.ID), Field: "xref", Reason: "missing"}
		}
		if err := ind.Validate(); err != nil {
			return &StructuralError{Entity: ind.XRef, Field: "individual", Reason: err.Error()}
		}
		if ind.ParentUnion != nil {
			u, ok := t.Union(*ind.ParentUnion)
			if !ok {
				return &StructuralError{Entity: ind.XRef, Field: "famc", Reason: fmt.Sprintf("dangling union id %d", *ind.ParentUnion)}
			}
			if !u.HasChild(ind.ID) {
				return &StructuralError{Entity: ind.XRef, Field: "famc", Reason: fmt.Sprintf("union %s does not list individual as child", u.XRef)}
			}
		}
		for _, uid := range ind.SpouseUnions {
			u, ok := t.Union(uid)
			if !ok {
				return &StructuralError{Entity: ind.XRef, Field: "fams", Reason: fmt.Sprintf("dangling union id %d", uid)}
			}
			if !u.HasParent(ind.ID) {
				return &StructuralError{Entity: ind.XRef, Field: "fams", Reason: fmt.Sprintf("union %s does not list individual as parent", u.XRef)}
			}
		}
	}

	for _, u := range t.Unions {
		if u.XRef == "" {
			return &StructuralError{Entity: fmt.Sprintf("union %d", u.ID), Field: "xref", Reason: "missing"}
		}
		for _, pid := range u.Parents() {
			p, ok := t.Individual(pid)
			if !ok {
				return &StructuralError{Entity: u.XRef, Field: "parent", Reason: fmt.Sprintf("dangling individual id %d", pid)}
			}
			if !containsInt(p.SpouseUnions, u.ID) {
				return &StructuralError{Entity: u.XRef, Field: "parent", Reason: fmt.Sprintf("individual %s does not list union as spouse", p.XRef)}
			}
		}
		for _, cid := range u.Children {
			c, ok := t.Individual(cid)
			if !ok {
				return &StructuralError{Entity: u.XRef, Field: "child", Reason: fmt.Sprintf("dangling individual id %d", cid)}
			}
			if c.ParentUnion == nil || *c.ParentUnion != u.ID {
				return &StructuralError{Entity: u.XRef, Field: "child", Reason: fmt.Sprintf("individual %s does not reference union as parent union", c.XRef)}
			}
			for _, pid := range u.Parents() {
				p, _ := t.Individual(pid)
				if p.Generation >= c.Generation {
					return &StructuralError{Entity: u.XRef, Field: "generation", Reason: fmt.Sprintf("parent %s generation %d not below child %s generation %d", p.XRef, p.Generation, c.XRef, c.Generation)}
				}
			}
		}
	}

	for _, ind := range t.Individuals {
		if t.hasCircularAncestry(ind.ID, ind.ID, make(map[int]bool)) {
			return &StructuralError{Entity: ind.XRef, Field: "ancestry", Reason: "individual is its own ancestor"}
		}
	}

	return nil
}

// hasCircularAncestry walks child->parent edges from current looking for target.
func (t *Tree) hasCircularAncestry(current, target int, visited map[int]bool) bool {
	if visited[current] {
		return false
	}
	visited[current] = true

	ind, ok := t.Individual(current)
	if !ok || ind.ParentUnion == nil {
		return false
	}
	u, ok := t.Union(*ind.ParentUnion)
	if !ok {
		return false
	}
	for _, pid := range u.Parents() {
		if pid == target {
			return true
		}
		if t.hasCircularAncestry(pid, target, visited) {
			return true
		}
	}
	return false
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
