package astro

import (
	"fmt"
	"math"
	"time"
)

// DashaBalance is the remaining span of the mahadasha running at birth.
type DashaBalance struct {
	Planet Planet
	Years  int
	Months int
	Days   int
}

// Text renders the balance in the served "planet Y M D" form.
func (b DashaBalance) Text() string {
	return fmt.Sprintf("%s %d Y %d M %d D", b.Planet.Hindi(), b.Years, b.Months, b.Days)
}

// MahadashaBalance derives the ruling planet from the Moon's nakshatra and
// scales its full period by the fraction of the mansion not yet traversed.
// Decomposition uses a 365.25-day year and 30-day month.
func MahadashaBalance(moon Position) DashaBalance {
	ruling := VimshottariSequence[moon.Nakshatra%9]
	total := MahadashaYears[ruling]

	proportionPassed := math.Mod(moon.Degree, NakshatraSpan) / NakshatraSpan
	balanceYears := total * (1 - proportionPassed)

	totalDays := balanceYears * 365.25
	years := int(totalDays / 365.25)
	remaining := totalDays - float64(years)*365.25
	months := int(remaining / 30)
	days := int(remaining - float64(months)*30)

	return DashaBalance{Planet: ruling, Years: years, Months: months, Days: days}
}

// IstKaal converts the birth-time offset from sunrise into the traditional
// ghati-pal-vipal string. Both arguments are "HH:MM" local clock times.
// A birth before sunrise is an error; callers degrade the field to null.
func IstKaal(birthTime, sunriseTime string) (string, error) {
	birth, err := time.Parse("15:04", birthTime)
	if err != nil {
		return "", fmt.Errorf("invalid birth time %q: %w", birthTime, err)
	}
	sunrise, err := time.Parse("15:04", sunriseTime)
	if err != nil {
		return "", fmt.Errorf("invalid sunrise time %q: %w", sunriseTime, err)
	}

	minutes := (birth.Hour()*60 + birth.Minute()) - (sunrise.Hour()*60 + sunrise.Minute())
	if minutes < 0 {
		return "", fmt.Errorf("birth time %s is before sunrise %s", birthTime, sunriseTime)
	}

	totalPal := float64(minutes) * 2.5
	ghati := int(totalPal / 60)
	remainingPal := math.Mod(totalPal, 60)
	pal := int(remainingPal)
	vipal := int((remainingPal - float64(pal)) * 60)
	return fmt.Sprintf("%d-%d-%d", ghati, pal, vipal), nil
}
