package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	pos := Normalize(54, 24)
	assert.InDelta(t, 30.0, pos.Degree, 1e-9)
	assert.Equal(t, Taurus, pos.Sign)
	assert.Equal(t, 2, pos.Nakshatra) // कृत्तिका
	assert.Equal(t, 2, pos.Pada)
}

func TestNormalizeWrapsNegative(t *testing.T) {
	pos := Normalize(10, 20)
	assert.InDelta(t, 350.0, pos.Degree, 1e-9)
	assert.Equal(t, Pisces, pos.Sign)
	assert.Equal(t, 26, pos.Nakshatra) // रेवती
}

func TestNormalizeLargeInput(t *testing.T) {
	pos := Normalize(720+45, 0)
	assert.InDelta(t, 45.0, pos.Degree, 1e-9)
	assert.Equal(t, Taurus, pos.Sign)
}

func TestPadaClampedToFour(t *testing.T) {
	// A longitude just under the mansion boundary lands in the truncation gap
	// between 4×3.3333 and 13.3333 and must still report pada 4.
	pos := Normalize(13.33325, 0)
	assert.Equal(t, 4, pos.Pada)
}

func TestKetuFromRahu(t *testing.T) {
	rahu := Normalize(34, 24) // 10° sidereal, मेष
	ketu := KetuFrom(rahu)

	assert.InDelta(t, 190.0, ketu.Degree, 1e-9)
	assert.Equal(t, Libra, ketu.Sign)
	assert.Equal(t, 6, int(ketu.Sign)-int(rahu.Sign))

	// Wrap case: Rahu late in the zodiac pushes Ketu past 360.
	rahu = Normalize(350, 0)
	ketu = KetuFrom(rahu)
	assert.InDelta(t, 170.0, ketu.Degree, 1e-9)
}

func TestNamingLetter(t *testing.T) {
	require.Equal(t, "च", NamingLetter(0, 1))
	require.Equal(t, "के", NamingLetter(3, 4))
	require.Equal(t, "", NamingLetter(27, 1))
	require.Equal(t, "", NamingLetter(0, 5))
}

func TestGanaFallback(t *testing.T) {
	assert.Equal(t, "देव गण", Gana(0))
	assert.Equal(t, "अज्ञात गण", Gana(27))
}
