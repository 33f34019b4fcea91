package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y, m, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// coupleWithChild builds a two-parent, one-child tree with consistent links.
func coupleWithChild(t *testing.T) *Tree {
	t.Helper()
	tree := NewTree(date(2020, 1, 1))

	father := &Individual{Sex: SexMale, Given: "Jan", Surname: "Kowalski", Birth: datePtr(1950, 3, 5)}
	mother := &Individual{Sex: SexFemale, Given: "Anna", Surname: "Nowak", Birth: datePtr(1952, 7, 12)}
	child := &Individual{Sex: SexFemale, Given: "Maria", Surname: "Kowalski", Birth: datePtr(1975, 1, 20), Generation: 1}
	fid := tree.AddIndividual(father)
	mid := tree.AddIndividual(mother)
	cid := tree.AddIndividual(child)

	u := &Union{Kind: RelationMarriage, Husband: &fid, Wife: &mid, Children: []int{cid}, Formed: date(1973, 6, 1)}
	uid := tree.AddUnion(u)
	father.SpouseUnions = []int{uid}
	mother.SpouseUnions = []int{uid}
	child.ParentUnion = &uid

	tree.AssignXRefs()
	return tree
}

func TestTreeValidate_ConsistentTree(t *testing.T) {
	tree := coupleWithChild(t)
	require.NoError(t, tree.Validate())
}

func TestTreeValidate_MissingXRef(t *testing.T) {
	tree := coupleWithChild(t)
	tree.Individuals[0].XRef = ""
	err := tree.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xref")
}

func TestTreeValidate_DanglingChild(t *testing.T) {
	tree := coupleWithChild(t)
	tree.Unions[0].Children = append(tree.Unions[0].Children, 99)
	err := tree.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling")
}

func TestTreeValidate_OneSidedSpouseLink(t *testing.T) {
	tree := coupleWithChild(t)
	tree.Individuals[0].SpouseUnions = nil
	err := tree.Validate()
	require.Error(t, err)
	var serr *StructuralError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "parent", serr.Field)
}

func TestTreeValidate_CyclicAncestry(t *testing.T) {
	tree := coupleWithChild(t)
	// Make the father a child of his own union.
	uid := tree.Unions[0].ID
	tree.Unions[0].Children = append(tree.Unions[0].Children, 0)
	tree.Individuals[0].ParentUnion = &uid
	tree.Individuals[0].Generation = 1
	tree.Individuals[2].Generation = 2

	err := tree.Validate()
	require.Error(t, err)
}

func TestTreeValidate_GenerationNotIncreasing(t *testing.T) {
	tree := coupleWithChild(t)
	tree.Individuals[2].Generation = 0
	err := tree.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "generation")
}

func TestIndividualValidate_DeathBeforeBirth(t *testing.T) {
	ind := &Individual{Sex: SexMale, Birth: datePtr(1950, 1, 1), Death: datePtr(1949, 1, 1)}
	require.Error(t, ind.Validate())
}

func TestTreeFounders(t *testing.T) {
	tree := coupleWithChild(t)
	founders := tree.Founders()
	require.Len(t, founders, 2)
	assert.Equal(t, 0, founders[0].ID)
	assert.Equal(t, 1, founders[1].ID)
}

func TestTreeGenerations(t *testing.T) {
	tree := coupleWithChild(t)
	assert.Equal(t, 2, tree.Generations())
}

func TestSexOpposite(t *testing.T) {
	assert.Equal(t, SexFemale, SexMale.Opposite())
	assert.Equal(t, SexMale, SexFemale.Opposite())
	assert.Equal(t, SexUnknown, SexIntersex.Opposite())
}

func TestSexCanPartner(t *testing.T) {
	assert.True(t, SexMale.CanPartner())
	assert.True(t, SexFemale.CanPartner())
	assert.False(t, SexUnknown.CanPartner())
	assert.False(t, SexNotStated.CanPartner())
}

func TestAssignXRefs_Stable(t *testing.T) {
	tree := coupleWithChild(t)
	assert.Equal(t, "I00000", tree.Individuals[0].XRef)
	assert.Equal(t, "I00002", tree.Individuals[2].XRef)
	assert.Equal(t, "F00000", tree.Unions[0].XRef)

	tree.AssignXRefs()
	assert.Equal(t, "I00000", tree.Individuals[0].XRef)
}
