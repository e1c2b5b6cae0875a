// Package ephem wraps the meeus astronomy library behind plain float64
// degrees. All angles crossing this boundary are tropical ecliptic longitudes
// in [0,360); the sidereal correction happens in the astro package.
package ephem

import (
	"fmt"
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/globe"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/rise"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"

	"kundali-api/internal/astro"
)

// Engine computes tropical positions. VSOP87 planet data is loaded once at
// construction and shared read-only across requests.
type Engine struct {
	earth   *planetposition.V87Planet
	planets map[astro.Planet]*planetposition.V87Planet
}

// New loads the VSOP87 series for Earth and the five classical planets.
// vsopPath may be empty, in which case the library falls back to the VSOP87
// environment variable.
func New(vsopPath string) (*Engine, error) {
	load := func(ibody int) (*planetposition.V87Planet, error) {
		if vsopPath != "" {
			return planetposition.LoadPlanetPath(ibody, vsopPath)
		}
		return planetposition.LoadPlanet(ibody)
	}

	earth, err := load(planetposition.Earth)
	if err != nil {
		return nil, fmt.Errorf("load VSOP87 earth: %w", err)
	}

	bodies := map[astro.Planet]int{
		astro.Mercury: planetposition.Mercury,
		astro.Venus:   planetposition.Venus,
		astro.Mars:    planetposition.Mars,
		astro.Jupiter: planetposition.Jupiter,
		astro.Saturn:  planetposition.Saturn,
	}
	planets := make(map[astro.Planet]*planetposition.V87Planet, len(bodies))
	for p, ibody := range bodies {
		v87, err := load(ibody)
		if err != nil {
			return nil, fmt.Errorf("load VSOP87 %s: %w", p.Hindi(), err)
		}
		planets[p] = v87
	}

	return &Engine{earth: earth, planets: planets}, nil
}

// TropicalLongitude returns the geocentric tropical ecliptic longitude of a
// body at the given Julian day. Ketu is derived from Rahu downstream and is
// never queried here; Rahu is the mean lunar node.
func (e *Engine) TropicalLongitude(p astro.Planet, jd float64) (float64, error) {
	switch p {
	case astro.Sun:
		return wrap360(solar.ApparentLongitude(base.J2000Century(jd)).Deg()), nil
	case astro.Moon:
		lon, _, _ := moonposition.Position(jd)
		return wrap360(lon.Deg()), nil
	case astro.Rahu:
		return wrap360(moonposition.Node(jd).Deg()), nil
	case astro.Ketu:
		return 0, fmt.Errorf("ketu is derived from rahu, not queried")
	}

	v87, ok := e.planets[p]
	if !ok {
		return 0, fmt.Errorf("no ephemeris for planet %s", p.Hindi())
	}
	return e.geocentricLongitude(v87, jd), nil
}

// geocentricLongitude combines heliocentric spherical coordinates of a planet
// and of Earth into the geocentric ecliptic longitude of date.
func (e *Engine) geocentricLongitude(v87 *planetposition.V87Planet, jd float64) float64 {
	l, b, r := v87.Position(jd)
	l0, b0, r0 := e.earth.Position(jd)

	x := r*math.Cos(b.Rad())*math.Cos(l.Rad()) - r0*math.Cos(b0.Rad())*math.Cos(l0.Rad())
	y := r*math.Cos(b.Rad())*math.Sin(l.Rad()) - r0*math.Cos(b0.Rad())*math.Sin(l0.Rad())
	return wrap360(math.Atan2(y, x) * 180 / math.Pi)
}

// Ascendant returns the tropical longitude of the ascendant for an observer
// at lat/lon (degrees, east positive) at the given Julian day.
func Ascendant(jd, lat, lon float64) float64 {
	// Local apparent sidereal time as an angle; unit.Time is seconds of time,
	// 240 seconds per degree.
	lst := wrap360(sidereal.Apparent(jd).Sec()/240 + lon)

	ramc := lst * math.Pi / 180
	eps := nutation.MeanObliquity(jd).Rad()
	phi := lat * math.Pi / 180

	asc := math.Atan2(math.Cos(ramc), -(math.Sin(ramc)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)))
	return wrap360(asc * 180 / math.Pi)
}

// Sunrise returns the Julian day of sunrise on the UT date containing jd for
// an observer at lat/lon (degrees, east positive).
func Sunrise(jd, lat, lon float64) (float64, error) {
	jd0 := math.Floor(jd-0.5) + 0.5 // 0h UT of the day

	th0 := sidereal.Apparent0UT(jd0)
	ra, dec := solar.ApparentEquatorial(jd0)

	// meeus takes longitude positive west.
	coord := globe.Coord{
		Lat: unit.AngleFromDeg(lat),
		Lon: unit.AngleFromDeg(-lon),
	}

	tRise, _, _, err := rise.ApproxTimes(coord, rise.Stdh0Solar, th0, ra, dec)
	if err != nil {
		return 0, fmt.Errorf("sunrise: %w", err)
	}
	return jd0 + tRise.Sec()/86400, nil
}

// AyanamsaLahiri approximates the Lahiri sidereal offset in degrees: the
// reference value 23°15'00.658" on 1956-03-21 advanced at 50.2388475" per
// Julian year.
func AyanamsaLahiri(jd float64) float64 {
	const (
		refJD  = 2435553.5
		refDeg = 23.250182778
		rate   = 50.2388475 / 3600 // degrees per Julian year
	)
	return refDeg + (jd-refJD)/365.25*rate
}

func wrap360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
