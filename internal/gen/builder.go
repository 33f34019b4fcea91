// Package gen grows a random family tree generation by generation from a
// single seeded stream, so that a (seed, config) pair always reproduces an
// identical tree.
package gen

import (
	"time"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/alexanderramin/gedgen/internal/namebank"
)

// builder carries the state of one generation run.
type builder struct {
	cfg      Config
	rng      *Rand
	pools    namebank.Pools
	tree     *domain.Tree
	children cdf[int]
}

// Build validates cfg and produces a frozen tree of at most
// cfg.IndividualCount individuals. Given a valid config the algorithm is
// total: it cannot fail mid-generation.
func Build(cfg Config, pools namebank.Pools) (*domain.Tree, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := pools.Validate(); err != nil {
		return nil, &ConfigError{Field: "namePools", Reason: err.Error()}
	}

	b := &builder{
		cfg:      cfg,
		rng:      NewRand(cfg.Seed),
		pools:    pools,
		tree:     domain.NewTree(cfg.Reference),
		children: childCountCDF(cfg.ExpectedChildren),
	}

	b.createFounders()
	b.growGenerations()
	b.assignDeaths()
	b.tree.AssignXRefs()
	return b.tree, nil
}

func (b *builder) full() bool {
	return len(b.tree.Individuals) >= b.cfg.IndividualCount
}

func (b *builder) createFounders() {
	spread := b.cfg.FounderBirthStart.AddDate(b.cfg.FounderBirthYears, 0, 0)
	for i := 0; i < b.cfg.FounderCount && !b.full(); i++ {
		sex := sexCDF.pick(b.rng.Float64())
		birth, _ := b.rng.DateBetween(b.cfg.FounderBirthStart, spread)
		b.newPerson(sex, "", 0, birth)
	}
}

// newPerson creates an individual with drawn names and adds it to the tree.
// An empty surname means draw one from the pool of the matching sex.
func (b *builder) newPerson(sex domain.Sex, surname string, generation int, birth time.Time) *domain.Individual {
	givenPool := b.pools.GivenMale
	surnamePool := b.pools.SurnameMale
	switch sex {
	case domain.SexMale:
	case domain.SexFemale:
		givenPool = b.pools.GivenFemale
		surnamePool = b.pools.SurnameFemale
	default:
		if b.rng.Chance(0.5) {
			givenPool = b.pools.GivenFemale
			surnamePool = b.pools.SurnameFemale
		}
	}

	given := b.rng.Pick(givenPool)
	if b.rng.Chance(float64(b.cfg.SecondNameChance) / 100) {
		given += " " + b.rng.Pick(givenPool)
	}
	if surname == "" {
		surname = b.rng.Pick(surnamePool)
	}

	bd := birth
	ind := &domain.Individual{
		Sex:        sex,
		Given:      given,
		Surname:    surname,
		Birth:      &bd,
		Generation: generation,
	}
	b.tree.AddIndividual(ind)
	return ind
}

// growGenerations runs the breadth-first growth loop: generation g draws its
// children from the unions formed among generation g-1. Iteration is strictly
// in ID order so that every random draw lands at a reproducible position in
// the stream.
func (b *builder) growGenerations() {
	generations := b.cfg.derivedGenerations()
	for g := 1; g < generations && !b.full(); g++ {
		// Snapshot the parent generation; spouses created inside the loop
		// join it but are already partnered.
		parentIDs := b.generationIDs(g - 1)
		for _, pid := range parentIDs {
			if b.full() {
				return
			}
			p := b.tree.Individuals[pid]
			if p.Partnered() || !p.Sex.CanPartner() || !b.adultByReference(p) {
				continue
			}
			if !b.rng.Chance(b.cfg.MarriageProbability) {
				continue
			}
			spouse := b.findSpouse(p, g-1)
			if spouse == nil {
				continue
			}
			b.formUnion(p, spouse, g)
		}
	}
}

// generationIDs returns the IDs of every individual at the given depth,
// ascending.
func (b *builder) generationIDs(generation int) []int {
	var ids []int
	for _, ind := range b.tree.Individuals {
		if ind.Generation == generation {
			ids = append(ids, ind.ID)
		}
	}
	return ids
}

func (b *builder) adultByReference(ind *domain.Individual) bool {
	return !ind.Birth.AddDate(b.cfg.AdulthoodYears, 0, 0).After(b.cfg.Reference)
}

// findSpouse resolves a partner for p: an even coin decides between a newly
// generated spouse and an existing unpartnered adult of the opposite sex in
// the same generation. Either path falls back to the other when it cannot
// serve, so a marriage draw is never wasted; nil only when both paths are
// exhausted.
func (b *builder) findSpouse(p *domain.Individual, generation int) *domain.Individual {
	preferExisting := b.rng.Chance(0.5)

	if preferExisting {
		if s := b.pickCandidate(p, generation); s != nil {
			return s
		}
		return b.generateSpouse(p, generation)
	}
	if s := b.generateSpouse(p, generation); s != nil {
		return s
	}
	return b.pickCandidate(p, generation)
}

// pickCandidate draws uniformly from the eligible existing partners,
// candidates ordered by ID.
func (b *builder) pickCandidate(p *domain.Individual, generation int) *domain.Individual {
	want := p.Sex.Opposite()
	var candidates []*domain.Individual
	for _, ind := range b.tree.Individuals {
		if ind.ID == p.ID || ind.Generation != generation {
			continue
		}
		if ind.Sex != want || ind.Partnered() || !b.adultByReference(ind) {
			continue
		}
		candidates = append(candidates, ind)
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[b.rng.PickIndex(len(candidates))]
}

// generateSpouse creates a new partner of compatible age, rooted in a
// placeholder parent union so that only configured founders remain without
// one. Returns nil when the tree is too full to fit the spouse.
func (b *builder) generateSpouse(p *domain.Individual, generation int) *domain.Individual {
	if len(b.tree.Individuals)+1 > b.cfg.IndividualCount {
		return nil
	}

	lo := p.Birth.AddDate(-b.cfg.SpouseAgeGapYears, 0, 0)
	hi := p.Birth.AddDate(b.cfg.SpouseAgeGapYears, 0, 0)
	if latest := b.cfg.Reference.AddDate(-b.cfg.AdulthoodYears, 0, 0); hi.After(latest) {
		hi = latest
	}
	if lo.After(hi) {
		lo = hi
	}
	birth, _ := b.rng.DateBetween(lo, hi)

	spouse := b.newPerson(p.Sex.Opposite(), "", generation, birth)

	// Unknown-parentage placeholder: a union with no parents keeps the
	// founder count exact without inventing ancestors.
	placeholder := &domain.Union{
		Kind:     domain.RelationUnknown,
		Children: []int{spouse.ID},
		Formed:   birth.AddDate(0, 0, -1),
	}
	uid := b.tree.AddUnion(placeholder)
	spouse.ParentUnion = &uid

	return spouse
}

// formUnion creates the union of p and spouse and populates it with children
// of generation g.
func (b *builder) formUnion(p, spouse *domain.Individual, g int) {
	elder := *p.Birth
	if spouse.Birth.After(elder) {
		elder = *spouse.Birth
	}
	earliest := elder.AddDate(b.cfg.AdulthoodYears, 0, 0)
	jitter, _ := b.rng.IntBetween(0, 3650)
	formed := earliest.AddDate(0, 0, jitter)
	if formed.After(b.cfg.Reference) {
		formed = b.cfg.Reference
	}

	u := &domain.Union{
		Kind:   relationCDF.pick(b.rng.Float64()),
		Formed: formed,
	}

	husband, wife := p, spouse
	if p.Sex == domain.SexFemale {
		husband, wife = spouse, p
	}
	hid, wid := husband.ID, wife.ID
	u.Husband = &hid
	u.Wife = &wid

	uid := b.tree.AddUnion(u)
	p.SpouseUnions = append(p.SpouseUnions, uid)
	spouse.SpouseUnions = append(spouse.SpouseUnions, uid)

	b.addChildren(u, husband, wife, g)
}

// addChildren draws the child count and births them after the union formed,
// spaced at least the sibling interval apart. Children past the reference
// date or the individual cap are dropped.
func (b *builder) addChildren(u *domain.Union, husband, wife *domain.Individual, g int) {
	count := b.children.pick(b.rng.Float64())
	surname := husband.Surname

	last := u.Formed
	for i := 0; i < count; i++ {
		if b.full() {
			return
		}
		months := b.cfg.SiblingIntervalMonths
		if i == 0 {
			months = 9
		}
		extra, _ := b.rng.IntBetween(0, 24)
		day, _ := b.rng.IntBetween(0, 27)
		birth := last.AddDate(0, months+extra, day)
		if birth.After(b.cfg.Reference) {
			return
		}

		sex := sexCDF.pick(b.rng.Float64())
		child := b.newPerson(sex, surname, g, birth)
		uid := u.ID
		child.ParentUnion = &uid
		u.Children = append(u.Children, child.ID)
		last = birth
	}
}

// assignDeaths retroactively draws death dates. The lower bound respects
// everything already generated: minimum lifespan, union formation dates, and
// every child's birth, so no one dies before their own marriage or offspring.
func (b *builder) assignDeaths() {
	for _, ind := range b.tree.Individuals {
		if !b.rng.Chance(b.cfg.DeathProbability) {
			continue
		}
		lower := ind.Birth.AddDate(b.cfg.MinLifespanYears, 0, 0)
		for _, uid := range ind.SpouseUnions {
			u := b.tree.Unions[uid]
			if u.Formed.After(lower) {
				lower = u.Formed
			}
			for _, cid := range u.Children {
				if cb := b.tree.Individuals[cid].Birth; cb.After(lower) {
					lower = *cb
				}
			}
		}
		upper := ind.Birth.AddDate(b.cfg.MaxLifespanYears, 0, 0)
		if upper.After(b.cfg.Reference) {
			upper = b.cfg.Reference
		}
		if lower.After(upper) {
			// No consistent death date exists; the individual stays alive.
			continue
		}
		death, _ := b.rng.DateBetween(lower, upper)
		ind.Death = &death
	}
}
