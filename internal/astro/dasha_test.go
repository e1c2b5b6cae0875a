package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMahadashaBalanceHalfMansionRemaining(t *testing.T) {
	// Second nakshatra (भरणी) selects Venus with a 20-year period; the Moon
	// just shy of halfway through the mansion leaves a 10-year balance.
	moon := Position{Degree: 19.9999, Nakshatra: 1}

	b := MahadashaBalance(moon)
	assert.Equal(t, Venus, b.Planet)
	assert.Equal(t, 10, b.Years)
	assert.Equal(t, 0, b.Months)
	assert.Equal(t, "शुक्र 10 Y 0 M 0 D", b.Text())
}

func TestMahadashaBalanceDecomposition(t *testing.T) {
	// Ketu period of 7 years, half the mansion passed: 3.5 years balance,
	// which decomposes as 3 years, 6 months and a couple of days under the
	// 365.25/30 approximation.
	moon := Position{Degree: 6.66665, Nakshatra: 0}

	b := MahadashaBalance(moon)
	assert.Equal(t, Ketu, b.Planet)
	assert.Equal(t, 3, b.Years)
	assert.Equal(t, 6, b.Months)
	assert.Equal(t, 2, b.Days)
}

func TestMahadashaSequenceWraps(t *testing.T) {
	moon := Position{Degree: 0, Nakshatra: 9} // 9 mod 9 = 0 → केतु again
	assert.Equal(t, Ketu, MahadashaBalance(moon).Planet)
}

func TestIstKaal(t *testing.T) {
	got, err := IstKaal("14:30", "06:06")
	require.NoError(t, err)
	assert.Equal(t, "21-0-0", got)

	got, err = IstKaal("07:00", "06:06")
	require.NoError(t, err)
	assert.Equal(t, "2-15-0", got)

	// 5 minutes after sunrise: 12.5 pal.
	got, err = IstKaal("06:11", "06:06")
	require.NoError(t, err)
	assert.Equal(t, "0-12-30", got)
}

func TestIstKaalBirthBeforeSunrise(t *testing.T) {
	_, err := IstKaal("05:00", "06:06")
	assert.Error(t, err)
}

func TestIstKaalRejectsGarbage(t *testing.T) {
	_, err := IstKaal("25:99", "06:06")
	assert.Error(t, err)
}
