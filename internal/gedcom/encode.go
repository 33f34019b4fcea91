// Package gedcom serializes a finished tree into GEDCOM 5.5.1 lineage-linked
// text and parses such text back for round-trip verification. Encoding is a
// pure function of the tree: the same tree always yields identical bytes.
package gedcom

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/google/uuid"
)

// Version is the generator version advertised in the header.
const Version = "0.1.0"

// uidNamespace scopes the deterministic per-individual _UID values.
var uidNamespace = uuid.MustParse("8a4d1c52-0db3-44f1-9c4e-5a2f6d7b9e31")

// Options tune header fields that are not part of the tree itself.
type Options struct {
	// SourceName is the header SOUR value; defaults to "gedgen".
	SourceName string
	// FileName, when set, is emitted as the header FILE line.
	FileName string
}

// Encode serializes the tree with default options.
func Encode(t *domain.Tree) ([]byte, error) {
	return EncodeWithOptions(t, Options{})
}

// EncodeWithOptions validates the tree and serializes it. Nothing is emitted
// for a malformed tree: validation runs to completion before the first byte
// is produced.
func EncodeWithOptions(t *domain.Tree, opts Options) ([]byte, error) {
	if t == nil {
		return nil, fmt.Errorf("encode: nil tree")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if opts.SourceName == "" {
		opts.SourceName = "gedgen"
	}

	var buf bytes.Buffer
	line := func(format string, args ...any) {
		fmt.Fprintf(&buf, format, args...)
		buf.WriteByte('\n')
	}

	writeHeader(line, t, opts)

	for _, ind := range t.Individuals {
		writeIndividual(line, t, ind)
	}
	for _, u := range sortedUnions(t) {
		writeUnion(line, t, u)
	}

	line("0 TRLR")
	return buf.Bytes(), nil
}

type lineFunc func(format string, args ...any)

func writeHeader(line lineFunc, t *domain.Tree, opts Options) {
	line("0 HEAD")
	line("1 SOUR %s", opts.SourceName)
	line("2 VERS %s", Version)
	line("2 NAME %s synthetic family tree generator", opts.SourceName)
	line("1 DATE %s", FormatDate(t.Reference))
	line("1 SUBM @SUBM@")
	if opts.FileName != "" {
		line("1 FILE %s", opts.FileName)
	}
	line("1 GEDC")
	line("2 VERS 5.5.1")
	line("2 FORM LINEAGE-LINKED")
	line("1 CHAR UTF-8")
	line("0 @SUBM@ SUBM")
	line("1 NAME %s", opts.SourceName)
}

func writeIndividual(line lineFunc, t *domain.Tree, ind *domain.Individual) {
	line("0 @%s@ INDI", ind.XRef)

	line("1 NAME %s /%s/", ind.Given, ind.Surname)
	line("2 TYPE birth")
	if ind.Given != "" {
		line("2 GIVN %s", ind.Given)
	}
	if ind.Surname != "" {
		line("2 SURN %s", ind.Surname)
	}

	line("1 SEX %s", ind.Sex)

	if ind.ParentUnion != nil {
		u, _ := t.Union(*ind.ParentUnion)
		line("1 FAMC @%s@", u.XRef)
		line("2 PEDI birth")
	}
	for _, uid := range sortedSpouseUnions(t, ind) {
		u, _ := t.Union(uid)
		line("1 FAMS @%s@", u.XRef)
	}

	if ind.Birth != nil {
		line("1 BIRT")
		line("2 DATE %s", FormatDate(*ind.Birth))
	}
	if ind.Death != nil {
		line("1 DEAT")
		line("2 DATE %s", FormatDate(*ind.Death))
	}

	line("1 _UID %s", uuid.NewSHA1(uidNamespace, []byte(ind.XRef)))
	line("1 CHAN")
	line("2 DATE %s", FormatDate(t.Reference))
}

func writeUnion(line lineFunc, t *domain.Tree, u *domain.Union) {
	line("0 @%s@ FAM", u.XRef)

	if u.Husband != nil {
		h, _ := t.Individual(*u.Husband)
		line("1 HUSB @%s@", h.XRef)
	}
	if u.Wife != nil {
		w, _ := t.Individual(*u.Wife)
		line("1 WIFE @%s@", w.XRef)
	}
	for _, cid := range sortedChildren(t, u) {
		c, _ := t.Individual(cid)
		line("1 CHIL @%s@", c.XRef)
	}

	// Placeholder unions carry no relation event.
	if len(u.Parents()) > 0 {
		line("1 MARR")
		if u.Kind != domain.RelationMarriage {
			line("2 TYPE %s", u.Kind)
		}
		line("2 DATE %s", FormatDate(u.Formed))
	}

	line("1 CHAN")
	line("2 DATE %s", FormatDate(t.Reference))
}

// sortedUnions orders FAM records by formation date, ties broken by ID.
func sortedUnions(t *domain.Tree) []*domain.Union {
	unions := make([]*domain.Union, len(t.Unions))
	copy(unions, t.Unions)
	sort.SliceStable(unions, func(i, j int) bool {
		if !unions[i].Formed.Equal(unions[j].Formed) {
			return unions[i].Formed.Before(unions[j].Formed)
		}
		return unions[i].ID < unions[j].ID
	})
	return unions
}

// sortedSpouseUnions orders an individual's FAMS references the same way FAM
// records are ordered.
func sortedSpouseUnions(t *domain.Tree, ind *domain.Individual) []int {
	ids := make([]int, len(ind.SpouseUnions))
	copy(ids, ind.SpouseUnions)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := t.Union(ids[i])
		b, _ := t.Union(ids[j])
		if !a.Formed.Equal(b.Formed) {
			return a.Formed.Before(b.Formed)
		}
		return a.ID < b.ID
	})
	return ids
}

// sortedChildren orders CHIL references by birth date ascending, unknown
// births last, ties broken by ID.
func sortedChildren(t *domain.Tree, u *domain.Union) []int {
	ids := make([]int, len(u.Children))
	copy(ids, u.Children)
	sort.SliceStable(ids, func(i, j int) bool {
		a, _ := t.Individual(ids[i])
		b, _ := t.Individual(ids[j])
		switch {
		case a.Birth == nil && b.Birth == nil:
			return a.ID < b.ID
		case a.Birth == nil:
			return false
		case b.Birth == nil:
			return true
		case !a.Birth.Equal(*b.Birth):
			return a.Birth.Before(*b.Birth)
		default:
			return a.ID < b.ID
		}
	})
	return ids
}
