package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMulyankUsesOnlyDayDigits(t *testing.T) {
	m, err := Mulyank("1990-05-15")
	require.NoError(t, err)
	assert.Equal(t, 6, m) // 1+5

	m, err = Mulyank("2001-12-29")
	require.NoError(t, err)
	assert.Equal(t, 2, m) // 2+9=11 → 1+1

	_, err = Mulyank("garbage")
	assert.Error(t, err)
}

func TestLuckyNumberUsesFullDate(t *testing.T) {
	// 1+9+9+0+0+5+1+5 = 30 → 3. Deliberately different from the mulyank of
	// the same date.
	assert.Equal(t, 3, LuckyNumber("1990-05-15"))
	assert.Equal(t, 9, LuckyNumber("2000-01-06"))
}

func TestLuckyDates(t *testing.T) {
	assert.Equal(t, []int{3, 12, 21}, LuckyDates(3))
	assert.Equal(t, []int{9, 18, 27}, LuckyDates(9))
	assert.Equal(t, []int{1, 10, 19}, LuckyDates(1))
}

func TestLuckyDatesText(t *testing.T) {
	assert.Equal(t, "3, 12, 21 तारीख", LuckyDatesText([]int{3, 12, 21}))
}
