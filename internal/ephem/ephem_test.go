package ephem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJulianDayIST(t *testing.T) {
	// 2000-01-01 12:00 IST is 06:30 UT, JD 2451544.770833.
	jd, err := JulianDayIST("2000-01-01", "12:00")
	require.NoError(t, err)
	assert.InDelta(t, 2451544.770833, jd, 1e-5)

	_, err = JulianDayIST("2000-13-01", "12:00")
	assert.Error(t, err)
}

func TestISTClockRoundTrip(t *testing.T) {
	jd, err := JulianDayIST("1990-05-15", "06:45")
	require.NoError(t, err)
	assert.Equal(t, "06:45", ISTClock(jd))
	assert.Equal(t, "06:45:00 AM", ISTClock12(jd))
}

func TestAyanamsaLahiri(t *testing.T) {
	// Lahiri ayanamsa is about 23.86° at J2000 and increases with time.
	j2000 := AyanamsaLahiri(2451545.0)
	assert.InDelta(t, 23.86, j2000, 0.05)

	later := AyanamsaLahiri(2451545.0 + 20*365.25)
	assert.Greater(t, later, j2000)
}

func TestAscendantRange(t *testing.T) {
	jd, err := JulianDayIST("1990-05-15", "06:45")
	require.NoError(t, err)

	asc := Ascendant(jd, 23.36, 85.33)
	assert.GreaterOrEqual(t, asc, 0.0)
	assert.Less(t, asc, 360.0)

	// One sidereal rotation per day: two hours later the ascendant has moved.
	asc2 := Ascendant(jd+2.0/24, 23.36, 85.33)
	assert.NotEqual(t, asc, asc2)
}
