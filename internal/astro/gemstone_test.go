package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGemstoneStrongBeneficLord(t *testing.T) {
	// House 9 from Aries is Sagittarius; Jupiter in its own sign is a strong
	// benefic lord and wins the first rule.
	positions := map[Planet]Position{
		Jupiter: posIn(Sagittarius),
	}
	chart := BuildChart(Aries, positions)

	got := Gemstone(9, chart, positions)
	assert.Equal(t, Jupiter.Gemstone(), got)
}

func TestGemstoneStrongBeneficOccupant(t *testing.T) {
	// Lagna in Taurus: house 1 lord is Venus, left weak in Aries. The Moon is
	// exalted in Taurus and occupies the house, so its stone is picked.
	positions := map[Planet]Position{
		Venus: posIn(Aries),
		Moon:  posIn(Taurus),
	}
	chart := BuildChart(Taurus, positions)

	got := Gemstone(1, chart, positions)
	assert.Equal(t, Moon.Gemstone(), got)
}

func TestGemstoneBeneficAspect(t *testing.T) {
	// Mercury in Gemini occupies house 3 and casts its 7th aspect onto house
	// 9; no lord or occupant rule fires first.
	positions := map[Planet]Position{
		Jupiter: posIn(Taurus), // house 2, aspects 6 and 10
		Mercury: posIn(Gemini),
	}
	chart := BuildChart(Aries, positions)

	got := Gemstone(9, chart, positions)
	assert.Equal(t, Mercury.Gemstone(), got)
}

func TestGemstoneDefaultJupiterForTrine(t *testing.T) {
	// Nothing strong touches house 5; houses 5 and 9 default to Jupiter.
	positions := map[Planet]Position{
		Jupiter: posIn(Capricorn), // house 10, aspects 2 and 6
		Venus:   posIn(Aries),     // house 1, aspects 7
		Mercury: posIn(Aries),
		Moon:    posIn(Aries),
	}
	chart := BuildChart(Aries, positions)

	got := Gemstone(5, chart, positions)
	assert.Equal(t, Jupiter.Gemstone(), got)
}

func TestGemstoneHouseOneFallsBackToLord(t *testing.T) {
	// House 1 from Aries is ruled by Mars: malefic, so the chain falls through
	// to the lagna-lord fallback.
	positions := map[Planet]Position{
		Mars:    posIn(Leo),       // weak
		Jupiter: posIn(Capricorn), // aspects 2 and 6
		Venus:   posIn(Virgo),     // house 6, aspects 12
		Mercury: posIn(Virgo),
		Moon:    posIn(Virgo),
	}
	chart := BuildChart(Aries, positions)

	got := Gemstone(1, chart, positions)
	assert.Equal(t, Mars.Gemstone(), got)
}

func TestIsStrong(t *testing.T) {
	assert.True(t, IsStrong(Mars, Aries))      // own sign
	assert.True(t, IsStrong(Mars, Capricorn))  // exaltation
	assert.False(t, IsStrong(Mars, Gemini))
	assert.True(t, IsStrong(Rahu, Taurus))
}
