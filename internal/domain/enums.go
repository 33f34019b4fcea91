package domain

// Sex is the one-character sex value carried on an individual, following the
// GEDCOM SEX tag vocabulary.
type Sex string

const (
	SexMale      Sex = "M"
	SexFemale    Sex = "F"
	SexIntersex  Sex = "X"
	SexUnknown   Sex = "U"
	SexNotStated Sex = "N"
)

// ValidSexes is the canonical set of accepted sex values.
var ValidSexes = map[Sex]bool{
	SexMale: true, SexFemale: true, SexIntersex: true,
	SexUnknown: true, SexNotStated: true,
}

// CanPartner reports whether the sex participates in spouse pairing.
// Only M and F individuals are placed into unions as husband or wife.
func (s Sex) CanPartner() bool {
	return s == SexMale || s == SexFemale
}

// Opposite returns the pairing counterpart for M and F, and SexUnknown otherwise.
func (s Sex) Opposite() Sex {
	switch s {
	case SexMale:
		return SexFemale
	case SexFemale:
		return SexMale
	default:
		return SexUnknown
	}
}

// RelationKind is the legal status of the parents of a union.
type RelationKind string

const (
	RelationMarriage    RelationKind = "marriage"
	RelationCivil       RelationKind = "civil"
	RelationNotMarried  RelationKind = "not married"
	RelationUnknown     RelationKind = "unknown"
	RelationReligious   RelationKind = "religious"
	RelationCommonLaw   RelationKind = "common law"
	RelationPartnership RelationKind = "partnership"
	RelationRegistered  RelationKind = "registered partnership"
	RelationCohabiting  RelationKind = "living together"
	RelationLivingApart RelationKind = "living apart together"
)
