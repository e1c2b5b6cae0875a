package astro

import "math"

// Spans used to derive nakshatra and pada from a sidereal longitude. The
// truncated literals match the production rule set; do not replace them with
// the exact 13°20' value.
const (
	NakshatraSpan = 13.3333
	PadaSpan      = 3.3333
)

// Position is the sidereal placement of a body, immutable once computed.
type Position struct {
	Degree    float64 // sidereal longitude, [0,360)
	Sign      Sign
	Nakshatra int // 0-26
	Pada      int // 1-4
}

// Normalize converts a raw tropical longitude plus an ayanamsa offset into a
// sidereal position. Total on all real inputs.
func Normalize(tropical, ayanamsa float64) Position {
	return fromSidereal(wrap360(tropical - ayanamsa))
}

// KetuFrom derives Ketu's position from Rahu's: 180° opposite, with sign,
// nakshatra and pada re-derived from the adjusted longitude. Ketu is never
// queried from the ephemeris independently.
func KetuFrom(rahu Position) Position {
	return fromSidereal(wrap360(rahu.Degree + 180))
}

func fromSidereal(deg float64) Position {
	nak := int(deg/NakshatraSpan) % 27
	pada := int(math.Mod(deg, NakshatraSpan)/PadaSpan) + 1
	if pada > 4 {
		pada = 4
	}
	return Position{
		Degree:    deg,
		Sign:      Sign(int(deg/30) % 12),
		Nakshatra: nak,
		Pada:      pada,
	}
}

// NamingLetter returns the traditional naming syllable for a nakshatra and
// pada, or "" when either index is out of range.
func NamingLetter(nakshatra, pada int) string {
	if nakshatra < 0 || nakshatra >= 27 || pada < 1 || pada > 4 {
		return ""
	}
	return namingLetters[nakshatra][pada-1]
}

// NakshatraName returns the Hindi name of a nakshatra index.
func NakshatraName(nakshatra int) string {
	if nakshatra < 0 || nakshatra >= 27 {
		return "Unknown"
	}
	return NakshatraNames[nakshatra]
}

func wrap360(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	return d
}
