package gen

import (
	"testing"

	"github.com/alexanderramin/gedgen/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChildCountCDF_MassSumsToOne(t *testing.T) {
	for expected := 0; expected <= 8; expected++ {
		c := childCountCDF(expected)
		require.NotEmpty(t, c, "expected %d", expected)
		assert.InDelta(t, 1.0, c[len(c)-1].upper, 1e-9, "expected %d", expected)
	}
}

func TestChildCountCDF_UppersIncrease(t *testing.T) {
	c := childCountCDF(3)
	for i := 1; i < len(c); i++ {
		assert.Greater(t, c[i].upper, c[i-1].upper)
	}
}

func TestChildCountCDF_CoversZeroToMax(t *testing.T) {
	c := childCountCDF(4)
	assert.Equal(t, 0, c[0].value)
	assert.Equal(t, 4*3/2+1, c[len(c)-1].value)
}

func TestChildCountCDF_ZeroExpected(t *testing.T) {
	c := childCountCDF(0)
	require.Len(t, c, 2)
	assert.Equal(t, 0, c[0].value)
	assert.Equal(t, 1, c[1].value)
	// Childlessness dominates.
	assert.InDelta(t, 0.7, c[0].upper, 1e-9)
}

func TestChildCountCDF_ExpectedIsMode(t *testing.T) {
	c := childCountCDF(5)
	masses := make(map[int]float64)
	prev := 0.0
	for _, b := range c {
		masses[b.value] = b.upper - prev
		prev = b.upper
	}
	for n, m := range masses {
		if n == 5 {
			continue
		}
		assert.LessOrEqual(t, m, masses[5], "count %d should not outweigh the expected count", n)
	}
}

func TestCDFPick_Boundaries(t *testing.T) {
	c := cdf[string]{{0.5, "low"}, {1.0, "high"}}
	assert.Equal(t, "low", c.pick(0))
	assert.Equal(t, "low", c.pick(0.49))
	assert.Equal(t, "high", c.pick(0.5))
	assert.Equal(t, "high", c.pick(0.999))
}

func TestSexCDF_Shares(t *testing.T) {
	assert.Equal(t, domain.SexMale, sexCDF.pick(0.0))
	assert.Equal(t, domain.SexMale, sexCDF.pick(0.47))
	assert.Equal(t, domain.SexFemale, sexCDF.pick(0.48))
	assert.Equal(t, domain.SexFemale, sexCDF.pick(0.95))
	assert.Equal(t, domain.SexIntersex, sexCDF.pick(0.97))
	assert.Equal(t, domain.SexNotStated, sexCDF.pick(0.995))
}

func TestRelationCDF_MarriageDominates(t *testing.T) {
	assert.Equal(t, domain.RelationMarriage, relationCDF.pick(0.0))
	assert.Equal(t, domain.RelationMarriage, relationCDF.pick(0.59))
	assert.Equal(t, domain.RelationCivil, relationCDF.pick(0.65))
	assert.Equal(t, domain.RelationLivingApart, relationCDF.pick(0.999))
}
