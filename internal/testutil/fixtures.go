// Package testutil provides shared helpers for tests: an in-memory name bank
// database and small hand-built trees with consistent links.
package testutil

import (
	"testing"
	"time"

	"github.com/alexanderramin/gedgen/internal/domain"
)

// Date builds a UTC date for fixtures.
func Date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

// DatePtr builds a *time.Time for optional date fields.
func DatePtr(y, m, d int) *time.Time {
	t := Date(y, m, d)
	return &t
}

// NewCoupleTree builds a frozen tree with a married couple and two children,
// one deceased parent, all cross-links consistent.
func NewCoupleTree(t *testing.T) *domain.Tree {
	t.Helper()
	tree := domain.NewTree(Date(2020, 1, 1))

	father := &domain.Individual{
		Sex: domain.SexMale, Given: "Jan", Surname: "Kowalski",
		Birth: DatePtr(1950, 3, 5), Death: DatePtr(2010, 11, 2),
	}
	mother := &domain.Individual{
		Sex: domain.SexFemale, Given: "Anna", Surname: "Nowak",
		Birth: DatePtr(1952, 7, 12),
	}
	first := &domain.Individual{
		Sex: domain.SexFemale, Given: "Maria", Surname: "Kowalski",
		Birth: DatePtr(1975, 1, 20), Generation: 1,
	}
	second := &domain.Individual{
		Sex: domain.SexMale, Given: "Piotr", Surname: "Kowalski",
		Birth: DatePtr(1977, 9, 3), Generation: 1,
	}

	fid := tree.AddIndividual(father)
	mid := tree.AddIndividual(mother)
	cid1 := tree.AddIndividual(first)
	cid2 := tree.AddIndividual(second)

	u := &domain.Union{
		Kind:     domain.RelationMarriage,
		Husband:  &fid,
		Wife:     &mid,
		Children: []int{cid1, cid2},
		Formed:   Date(1973, 6, 1),
	}
	uid := tree.AddUnion(u)
	father.SpouseUnions = []int{uid}
	mother.SpouseUnions = []int{uid}
	first.ParentUnion = &uid
	second.ParentUnion = &uid

	tree.AssignXRefs()
	return tree
}

// NewSingleTree builds a frozen one-person tree with no unions.
func NewSingleTree(t *testing.T) *domain.Tree {
	t.Helper()
	tree := domain.NewTree(Date(2020, 1, 1))
	tree.AddIndividual(&domain.Individual{
		Sex: domain.SexFemale, Given: "Zofia", Surname: "Mazur",
		Birth: DatePtr(1980, 4, 17),
	})
	tree.AssignXRefs()
	return tree
}
