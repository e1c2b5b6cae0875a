package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStudyPredictionLordInDusthana(t *testing.T) {
	// House 5 from Aries is Leo, ruled by the Sun; the Sun in Scorpio stands
	// in house 8.
	chart := BuildChart(Aries, map[Planet]Position{Sun: posIn(Scorpio)})

	p := StudyPrediction(chart)
	assert.Contains(t, p.Statement, "पढ़ाई में बाधाएँ")
	assert.Contains(t, p.Statement, "पांचवे घर का स्वामी सूर्य दुष्टान घर 8 में है")
	assert.Contains(t, p.Resolution, "108 बार")
}

func TestStudyPredictionMaleficOccupant(t *testing.T) {
	chart := BuildChart(Aries, map[Planet]Position{
		Saturn: posIn(Leo), // house 5
		Mars:   posIn(Leo),
	})

	p := StudyPrediction(chart)
	assert.Contains(t, p.Statement, "पांचवे घर में पाप ग्रह")
	assert.Contains(t, p.Statement, "मंगल, शनि")
}

func TestStudyPredictionFavourable(t *testing.T) {
	chart := BuildChart(Aries, map[Planet]Position{Jupiter: posIn(Leo)})

	p := StudyPrediction(chart)
	assert.Equal(t, "पढ़ाई में सफलता के प्रबल योग बन रहे हैं।", p.Statement)
	assert.Contains(t, p.Resolution, "नियमित जाप")
}

func TestMoneyPredictionChecksBothHouses(t *testing.T) {
	// House 11 from Aries is Aquarius; Rahu there is the only affliction.
	chart := BuildChart(Aries, map[Planet]Position{Rahu: posIn(Aquarius)})

	p := MoneyPrediction(chart)
	assert.Contains(t, p.Statement, "धन संबंधी परेशानियाँ")
	assert.Contains(t, p.Statement, "ग्यारहवें घर में पाप ग्रह राहु हैं")
}

func TestWorkAndMarriagePredictions(t *testing.T) {
	// Saturn in Capricorn sits in house 10 (its own sign is irrelevant here,
	// malefic occupancy alone triggers the warning).
	chart := BuildChart(Aries, map[Planet]Position{Saturn: posIn(Capricorn)})
	assert.Contains(t, WorkPrediction(chart).Statement, "कार्यक्षेत्र में चुनौतियाँ")

	clean := BuildChart(Aries, map[Planet]Position{Jupiter: posIn(Sagittarius)})
	assert.Equal(t, "विवाह के लिए शुभ संयोग बन रहे हैं।", MarriagePrediction(clean).Statement)
}

func TestSadeSati(t *testing.T) {
	// Saturn conjunct the Moon: relative position 0.
	conjunct := BuildChart(Aries, map[Planet]Position{
		Moon:   posIn(Cancer),
		Saturn: posIn(Cancer),
	})
	assert.True(t, SadeSati(conjunct))

	// Saturn in the 12th from the Moon.
	twelfth := BuildChart(Aries, map[Planet]Position{
		Moon:   posIn(Cancer),
		Saturn: posIn(Gemini),
	})
	assert.True(t, SadeSati(twelfth))

	clear := BuildChart(Aries, map[Planet]Position{
		Moon:   posIn(Cancer),
		Saturn: posIn(Virgo),
	})
	assert.False(t, SadeSati(clear))
}

func TestMahadashaPredictionMaleficRuler(t *testing.T) {
	chart := BuildChart(Aries, map[Planet]Position{Moon: posIn(Cancer)})

	out := MahadashaSadeSatiPrediction(chart, Rahu)
	assert.Contains(t, out.MahadashaProblem.Statement, "राहु एक पाप ग्रह है")
	assert.Contains(t, out.MahadashaProblem.Resolution, Rahu.Mantra())

	out = MahadashaSadeSatiPrediction(chart, Venus)
	assert.Equal(t, "महादशा अनुकूल है और जीवन में स्थिरता लाएगी।", out.MahadashaProblem.Statement)
	assert.Contains(t, out.MahadashaProblem.Resolution, Venus.Mantra())
}
