package astro

import (
	"fmt"
	"strconv"
	"strings"
)

// Two digit-sum schemes coexist deliberately: mulyank reduces only the
// day-of-month digits, the lucky number reduces every digit of the full date.
// They are distinct named computations and must not be consolidated.

// Mulyank reduces the day-of-month of a "YYYY-MM-DD" date to a single digit.
func Mulyank(birthDate string) (int, error) {
	parts := strings.Split(birthDate, "-")
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid birth date %q", birthDate)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("invalid birth date %q: %w", birthDate, err)
	}
	return reduceDigits(day), nil
}

// LuckyNumber reduces the sum of every digit in the date string to a single
// digit. Non-digit characters are ignored.
func LuckyNumber(birthDate string) int {
	sum := 0
	for _, r := range birthDate {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return reduceDigits(sum)
}

// LuckyDates returns the first three days of the month whose digit sum
// reduces to n.
func LuckyDates(n int) []int {
	var dates []int
	for date := 1; date <= 31; date++ {
		if reduceDigits(date) == n {
			dates = append(dates, date)
		}
		if len(dates) >= 3 {
			break
		}
	}
	return dates
}

// LuckyDatesText renders the dates as served: "1, 10, 19 तारीख".
func LuckyDatesText(dates []int) string {
	parts := make([]string, len(dates))
	for i, d := range dates {
		parts[i] = strconv.Itoa(d)
	}
	return strings.Join(parts, ", ") + " तारीख"
}

func reduceDigits(n int) int {
	for n > 9 {
		sum := 0
		for n > 0 {
			sum += n % 10
			n /= 10
		}
		n = sum
	}
	return n
}
