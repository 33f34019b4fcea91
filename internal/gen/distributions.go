package gen

import "github.com/alexanderramin/gedgen/internal/domain"

// bucket is one step of a cumulative distribution function.
type bucket[T any] struct {
	upper float64
	value T
}

type cdf[T any] []bucket[T]

// pick maps a uniform draw f in [0,1) onto the distribution.
func (c cdf[T]) pick(f float64) T {
	max := c[len(c)-1].upper
	target := f * max
	for _, b := range c {
		if b.upper > target {
			return b.value
		}
	}
	return c[len(c)-1].value
}

// sexCDF is the weighted sex distribution: predominantly M/F with small
// shares of X, U and N.
var sexCDF = cdf[domain.Sex]{
	{0.48, domain.SexMale},
	{0.96, domain.SexFemale},
	{0.98, domain.SexIntersex},
	{0.99, domain.SexUnknown},
	{1.00, domain.SexNotStated},
}

// relationCDF is the weighted legal-status distribution for unions.
var relationCDF = cdf[domain.RelationKind]{
	{0.60, domain.RelationMarriage},
	{0.70, domain.RelationCivil},
	{0.80, domain.RelationNotMarried},
	{0.85, domain.RelationUnknown},
	{0.86, domain.RelationReligious},
	{0.87, domain.RelationCommonLaw},
	{0.94, domain.RelationPartnership},
	{0.97, domain.RelationRegistered},
	{0.99, domain.RelationCohabiting},
	{1.00, domain.RelationLivingApart},
}

// childCountCDF builds the children-per-union distribution around an expected
// count. Probability grows linearly from one child up to the expected count,
// then falls back toward zero at 3/2 of it; childlessness gets a mass close
// to that of expected-1.
func childCountCDF(expected int) cdf[int] {
	maxCount := expected*3/2 + 1

	if expected == 0 {
		a := 0.4
		b := 0.3
		return cdf[int]{
			{a + b, 0},
			{a + 2*b, 1},
		}
	}

	var out cdf[int]
	total := 0.0
	add := func(n int, prob float64) {
		total += prob
		out = append(out, bucket[int]{total, n})
	}

	totalUpto := (1.0 / float64(maxCount+1)) * (6.0/5.0*float64(expected) + 1)
	totalAfter := 1.0 - totalUpto

	if expected > 1 {
		sumTo := expected * (expected + 1) / 2
		a := 0.8 * totalUpto / float64(expected-1+sumTo)
		b := 0.2 * totalUpto / float64(expected+1)
		add(0, a*float64(expected-1)+b)
		for n := 1; n <= expected; n++ {
			add(n, a*float64(n)+b)
		}
	} else {
		a := 0.2 * totalUpto
		b := 0.8 * totalUpto / 2
		add(0, b)
		add(1, a+b)
	}

	if maxCount-expected > 1 {
		span := maxCount - expected
		sumFalling := span * (span - 1) / 2
		a := 0.8 * totalAfter / float64(sumFalling)
		b := 0.2 * totalAfter / float64(span)
		for n := expected + 1; n <= maxCount; n++ {
			add(n, a*float64(maxCount-n)+b)
		}
	} else {
		for n := expected + 1; n <= maxCount; n++ {
			add(n, totalAfter)
		}
	}

	return out
}
