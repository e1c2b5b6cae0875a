package astro

import (
	"fmt"
	"strings"
)

// Templated prediction blocks. Each block tests whether the relevant house's
// lord sits in a dusthana house and whether a malefic occupies the house
// itself; any hit selects the warning template with the concatenated reasons,
// otherwise the maintenance template.

// Prediction is one statement/remedy pair of the response.
type Prediction struct {
	Statement  string `json:"statement"`
	Resolution string `json:"resolution"`
}

// MahadashaSadeSati groups the two period-related prediction blocks.
type MahadashaSadeSati struct {
	MahadashaProblem Prediction `json:"mahadasha_problem"`
	SadeSatiProblem  Prediction `json:"sade_sati_problem"`
}

const siteFooter = " (विस्तृत जानकारी के लिए आप हमारी वेबसाइट https://astrologerinranchi.com से व्यक्तिगत कुंडली ऑर्डर कर सकते हैं।)"

var houseOrdinals = map[int]string{
	2:  "दूसरे",
	5:  "पांचवे",
	7:  "सातवें",
	10: "दसवें",
	11: "ग्यारहवें",
}

// houseAfflictions collects the reasons a house is afflicted: its lord in a
// dusthana house, or malefics placed in it. A lord absent from the chart is
// skipped silently.
func houseAfflictions(chart Chart, house int) []string {
	var reasons []string
	ordinal := houseOrdinals[house]

	lord := chart.HouseSign(house).Lord()
	if lordHouse, ok := chart.HouseOf(lord); ok {
		for _, d := range DusthanaHouses {
			if lordHouse == d {
				reasons = append(reasons, fmt.Sprintf("%s घर का स्वामी %s दुष्टान घर %d में है", ordinal, lord.Hindi(), lordHouse))
				break
			}
		}
	}

	var occupying []string
	for _, p := range chart.PlanetsIn(house) {
		if IsMalefic(p) {
			occupying = append(occupying, p.Hindi())
		}
	}
	if len(occupying) > 0 {
		reasons = append(reasons, fmt.Sprintf("%s घर में पाप ग्रह %s हैं", ordinal, strings.Join(occupying, ", ")))
	}
	return reasons
}

func houseBlock(chart Chart, houses []int, problemTmpl, problemRes, okStatement, okRes string) Prediction {
	var reasons []string
	for _, h := range houses {
		reasons = append(reasons, houseAfflictions(chart, h)...)
	}
	if len(reasons) > 0 {
		return Prediction{
			Statement:  fmt.Sprintf(problemTmpl, strings.Join(reasons, ", ")),
			Resolution: problemRes,
		}
	}
	return Prediction{Statement: okStatement, Resolution: okRes}
}

// StudyPrediction covers the 5th house.
func StudyPrediction(chart Chart) Prediction {
	return houseBlock(chart, []int{5},
		"पढ़ाई में बाधाएँ आ सकती हैं क्योंकि %s।",
		"माँ सरस्वती की कृपा हेतु प्रतिदिन \"ॐ ऐं सरस्वत्यै नमः\" मंत्र का 108 बार जाप करें।"+siteFooter,
		"पढ़ाई में सफलता के प्रबल योग बन रहे हैं।",
		"माँ सरस्वती का आशीर्वाद बनाए रखने हेतु \"ॐ ऐं सरस्वत्यै नमः\" मंत्र का नियमित जाप करें।"+siteFooter,
	)
}

// MoneyPrediction covers the 2nd and 11th houses.
func MoneyPrediction(chart Chart) Prediction {
	return houseBlock(chart, []int{2, 11},
		"धन संबंधी परेशानियाँ हो सकती हैं क्योंकि %s।",
		"महालक्ष्मी की कृपा हेतु शुक्रवार को \"ॐ श्रीं ह्रीं क्लीं महालक्ष्म्यै नमः\" मंत्र का 108 बार जाप करें।"+siteFooter,
		"धन प्राप्ति के लिए शुभ योग बन रहे हैं।",
		"लक्ष्मी माता का आशीर्वाद बनाए रखने हेतु \"ॐ श्रीं ह्रीं क्लीं महालक्ष्म्यै नमः\" मंत्र का नियमित जाप करें।"+siteFooter,
	)
}

// WorkPrediction covers the 10th house.
func WorkPrediction(chart Chart) Prediction {
	return houseBlock(chart, []int{10},
		"कार्यक्षेत्र में चुनौतियाँ संभव हैं क्योंकि %s।",
		"हनुमान जी की कृपा हेतु मंगलवार को \"ॐ हं हनुमते नमः\" मंत्र का 108 बार जाप करें।"+siteFooter,
		"कार्यक्षेत्र में उन्नति के शुभ योग हैं।",
		"हनुमान जी का आशीर्वाद बनाए रखने हेतु \"ॐ हं हनुमते नमः\" मंत्र का नियमित जाप करें।"+siteFooter,
	)
}

// MarriagePrediction covers the 7th house.
func MarriagePrediction(chart Chart) Prediction {
	return houseBlock(chart, []int{7},
		"विवाह में देरी या बाधाएँ हो सकती हैं क्योंकि %s।",
		"माँ पार्वती की कृपा हेतु \"ॐ उमायै नमः\" मंत्र का 108 बार जाप करें।"+siteFooter,
		"विवाह के लिए शुभ संयोग बन रहे हैं।",
		"शिव-पार्वती का आशीर्वाद बनाए रखने हेतु \"ॐ उमायै नमः\" मंत्र का नियमित जाप करें।"+siteFooter,
	)
}

// SadeSati reports whether Saturn stands in the 12th, 1st or 2nd house
// counted from the Moon: (saturn − moon) mod 12 in {0, 1, 11}.
func SadeSati(chart Chart) bool {
	moonHouse, okM := chart.HouseOf(Moon)
	saturnHouse, okS := chart.HouseOf(Saturn)
	if !okM || !okS {
		return false
	}
	rel := mod12(saturnHouse - moonHouse)
	return rel == 0 || rel == 1 || rel == 11
}

// MahadashaSadeSatiPrediction builds the mahadasha and sade-sati blocks for
// the current ruling planet.
func MahadashaSadeSatiPrediction(chart Chart, ruling Planet) MahadashaSadeSati {
	var out MahadashaSadeSati

	if IsMalefic(ruling) {
		out.MahadashaProblem = Prediction{
			Statement:  fmt.Sprintf("महादशा के कारण जीवन में उतार-चढ़ाव संभव हैं क्योंकि %s एक पाप ग्रह है।", ruling.Hindi()),
			Resolution: fmt.Sprintf("%s की शांति हेतु \"%s\" मंत्र का 108 बार जाप करें।%s", ruling.Hindi(), ruling.Mantra(), siteFooter),
		}
	} else {
		out.MahadashaProblem = Prediction{
			Statement:  "महादशा अनुकूल है और जीवन में स्थिरता लाएगी।",
			Resolution: fmt.Sprintf("%s का आशीर्वाद बनाए रखने हेतु \"%s\" मंत्र का नियमित जाप करें।%s", ruling.Hindi(), ruling.Mantra(), siteFooter),
		}
	}

	if SadeSati(chart) {
		out.SadeSatiProblem = Prediction{
			Statement:  "साढ़ेसाती के प्रभाव से जीवन में कठिनाइयाँ आ सकती हैं क्योंकि शनि चंद्रमा के निकट है।",
			Resolution: "शनि देव की कृपा हेतु शनिवार को \"ॐ शं शनैश्चराय नमः\" मंत्र का 108 बार जाप करें।" + siteFooter,
		}
	} else {
		out.SadeSatiProblem = Prediction{
			Statement:  "साढ़ेसाती का प्रभाव न्यूनतम है।",
			Resolution: "शनि देव का आशीर्वाद बनाए रखने हेतु \"ॐ शं शनैश्चराय नमः\" मंत्र का नियमित जाप करें।" + siteFooter,
		}
	}
	return out
}
