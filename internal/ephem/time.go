package ephem

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
)

// IST is the fixed UTC+5:30 offset all birth inputs are interpreted in.
var IST = time.FixedZone("IST", 5*3600+30*60)

// JulianDayIST converts a "YYYY-MM-DD" date and "HH:MM" clock time in IST to
// the Julian day in Universal Time.
func JulianDayIST(birthDate, birthTime string) (float64, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", birthDate+" "+birthTime, IST)
	if err != nil {
		return 0, fmt.Errorf("invalid birth date/time %q %q: %w", birthDate, birthTime, err)
	}
	return julian.TimeToJD(t.UTC()), nil
}

// ISTClock renders a Julian day as an "HH:MM" IST clock time.
func ISTClock(jd float64) string {
	return julian.JDToTime(jd).In(IST).Format("15:04")
}

// ISTClock12 renders a Julian day as a 12-hour IST clock time with seconds.
func ISTClock12(jd float64) string {
	return julian.JDToTime(jd).In(IST).Format("03:04:05 PM")
}
