package astro

// Fixed Vedic lookup tables. Everything in this file is constructed once and
// never mutated; the Hindi strings are the exact text served to the website.

// Planet identifies one of the nine bodies used in a kundali.
type Planet int

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// Planets lists all nine bodies in canonical order. Iteration over charts and
// positions always follows this order so responses are deterministic.
var Planets = []Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

var planetNames = [...]string{
	Sun:     "सूर्य",
	Moon:    "चंद्र",
	Mars:    "मंगल",
	Mercury: "बुध",
	Jupiter: "बृहस्पति",
	Venus:   "शुक्र",
	Saturn:  "शनि",
	Rahu:    "राहु",
	Ketu:    "केतु",
}

// Hindi returns the Devanagari name used in API responses.
func (p Planet) Hindi() string {
	if p < 0 || int(p) >= len(planetNames) {
		return "Unknown"
	}
	return planetNames[p]
}

func (p Planet) String() string { return p.Hindi() }

// Sign is a zodiac sign (rashi), indexed 0-11 from Aries (मेष).
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

var signNames = [...]string{
	"मेष", "वृष", "मिथुन", "कर्क", "सिंह", "कन्या",
	"तुला", "वृश्चिक", "धनु", "मकर", "कुंभ", "मीन",
}

// Hindi returns the Devanagari rashi name.
func (s Sign) Hindi() string {
	if s < 0 || int(s) >= len(signNames) {
		return "Unknown"
	}
	return signNames[s]
}

func (s Sign) String() string { return s.Hindi() }

// Number is the 1-based rashi number (मेष = 1).
func (s Sign) Number() int { return int(s) + 1 }

var signLords = [...]Planet{
	Aries:       Mars,
	Taurus:      Venus,
	Gemini:      Mercury,
	Cancer:      Moon,
	Leo:         Sun,
	Virgo:       Mercury,
	Libra:       Venus,
	Scorpio:     Mars,
	Sagittarius: Jupiter,
	Capricorn:   Saturn,
	Aquarius:    Saturn,
	Pisces:      Jupiter,
}

// Lord returns the ruling planet of the sign.
func (s Sign) Lord() Planet { return signLords[s] }

// exaltedSigns maps each planet to the sign in which it is exalted.
var exaltedSigns = map[Planet]Sign{
	Sun:     Aries,
	Moon:    Taurus,
	Mars:    Capricorn,
	Mercury: Virgo,
	Jupiter: Cancer,
	Venus:   Pisces,
	Saturn:  Libra,
	Rahu:    Taurus,
	Ketu:    Scorpio,
}

// Benefics and Malefics partition the planets for dosha and prediction rules.
var (
	Benefics = []Planet{Jupiter, Venus, Mercury, Moon}
	Malefics = []Planet{Mars, Saturn, Rahu, Ketu}
)

// IsMalefic reports whether p is in the fixed malefic list.
func IsMalefic(p Planet) bool {
	for _, m := range Malefics {
		if m == p {
			return true
		}
	}
	return false
}

// IsBenefic reports whether p is in the fixed benefic list.
func IsBenefic(p Planet) bool {
	for _, b := range Benefics {
		if b == p {
			return true
		}
	}
	return false
}

// planetGemstones maps a planet to its prescribed gemstone text.
var planetGemstones = map[Planet]string{
	Mars:    "मूँगा रक्त इटालियन 7 रत्ती सोना या चाँदी में",
	Venus:   "बज्रमणि सफ़ेद / ब्राउन डायमंड 5 रत्ती / हीरा 50 सेंट",
	Mercury: "पन्ना ब्राज़ीली / पेरिडॉट / ग्रीन तुरमुली 5+ रत्ती चाँदी या प्लैटिनम में",
	Moon:    "नेचुरल मोती 5 रत्ती (चाँदी में)",
	Sun:     "माणिक 5 रत्ती सोना या ब्रॉन्ज़ में",
	Jupiter: "पीत पुखराज / पीला बज्रमणि 5+ रत्ती सोना या ब्रॉन्ज़ में",
	Saturn:  "बज्रमणि ब्लू / नीलम 5+ रत्ती पंचधातु में",
	Rahu:    "गोमेद 5+ रत्ती चाँदी में",
	Ketu:    "लहसुनिया 5+ रत्ती चाँदी में",
}

// Static per-sign gemstone fallbacks.
var bhagyavardhakRatna = map[Sign]string{
	Aries:       planetGemstones[Jupiter],
	Taurus:      planetGemstones[Saturn],
	Gemini:      planetGemstones[Saturn],
	Cancer:      planetGemstones[Jupiter],
	Leo:         planetGemstones[Mars],
	Virgo:       planetGemstones[Venus],
	Libra:       planetGemstones[Mercury],
	Scorpio:     planetGemstones[Moon],
	Sagittarius: planetGemstones[Sun],
	Capricorn:   planetGemstones[Mercury],
	Aquarius:    planetGemstones[Venus],
	Pisces:      planetGemstones[Mars],
}

var jeevanRakshakRatna = map[Sign]string{
	Aries:       planetGemstones[Mars],
	Taurus:      planetGemstones[Venus],
	Gemini:      planetGemstones[Mercury],
	Cancer:      planetGemstones[Moon],
	Leo:         planetGemstones[Sun],
	Virgo:       planetGemstones[Mercury],
	Libra:       planetGemstones[Venus],
	Scorpio:     planetGemstones[Mars],
	Sagittarius: planetGemstones[Jupiter],
	Capricorn:   planetGemstones[Saturn],
	Aquarius:    planetGemstones[Saturn],
	Pisces:      planetGemstones[Jupiter],
}

var vidyaVardhakRatna = jeevanRakshakRatna

// planetMantras holds the shanti mantra recited for each planet.
var planetMantras = map[Planet]string{
	Sun:     "ॐ घृणिः सूर्याय नमः",
	Moon:    "ॐ सों सोमाय नमः",
	Mars:    "ॐ अं अंगारकाय नमः",
	Mercury: "ॐ बुं बुद्धाय नमः",
	Jupiter: "ॐ बृं बृहस्पतये नमः",
	Venus:   "ॐ शुं शुक्राय नमः",
	Saturn:  "ॐ शं शनैश्चराय नमः",
	Rahu:    "ॐ रां राहवे नमः",
	Ketu:    "ॐ कें केतवे नमः",
}

// Mantra returns the planet's shanti mantra.
func (p Planet) Mantra() string { return planetMantras[p] }

// Gemstone returns the planet's prescribed gemstone text.
func (p Planet) Gemstone() string {
	g, ok := planetGemstones[p]
	if !ok {
		return "Unknown"
	}
	return g
}

// NakshatraNames lists the 27 lunar mansions in ecliptic order.
var NakshatraNames = [27]string{
	"अश्विनी", "भरणी", "कृत्तिका", "रोहिणी", "मृगशीर्ष", "आर्द्रा",
	"पुनर्वसु", "पुष्य", "आश्लेषा", "मघा", "पूर्वा फाल्गुनी", "उत्तरा फाल्गुनी",
	"हस्त", "चित्रा", "स्वाति", "विशाखा", "अनुराधा", "ज्येष्ठा",
	"मूल", "पूर्वाषाढ़ा", "उत्तराषाढ़ा", "श्रवण", "धनिष्ठा", "शतभिषा",
	"पूर्वाभाद्रपद", "उत्तराभाद्रपद", "रेवती",
}

var nakshatraGanas = [27]string{
	"देव गण", "मनुष्य गण", "राक्षस गण", "मनुष्य गण", "देव गण", "मनुष्य गण",
	"देव गण", "देव गण", "राक्षस गण", "राक्षस गण", "मनुष्य गण", "मनुष्य गण",
	"देव गण", "राक्षस गण", "देव गण", "राक्षस गण", "देव गण", "राक्षस गण",
	"राक्षस गण", "मनुष्य गण", "मनुष्य गण", "मनुष्य गण", "राक्षस गण", "मनुष्य गण",
	"मनुष्य गण", "राक्षस गण", "देव गण",
}

// Gana returns the gana classification for a nakshatra index, or the unknown
// sentinel when the index is out of range.
func Gana(nakshatra int) string {
	if nakshatra < 0 || nakshatra >= 27 {
		return "अज्ञात गण"
	}
	return nakshatraGanas[nakshatra]
}

// namingLetters gives the four naming syllables of each nakshatra, one per
// pada. Mansions without a specific tradition carry the common vowel set.
var namingLetters = [27][4]string{
	{"च", "चि", "चु", "चे"},
	{"ल", "लि", "लू", "ले"},
	{"अ", "इ", "उ", "ए"},
	{"क", "कि", "कू", "के"},
	{"ग", "गि", "गू", "गे"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"अ", "इ", "उ", "ए"},
	{"भ", "भि", "भू", "ध"},
	{"भ", "भि", "भू", "ध"},
	{"थ", "थि", "थू", "थे"},
	{"ज", "जि", "जू", "जे"},
	{"ज", "जि", "जू", "जे"},
	{"ख", "खि", "खू", "खे"},
	{"ख", "खि", "खू", "खे"},
	{"ल", "लि", "लू", "ले"},
}

// VimshottariSequence is the cyclic order of mahadasha ruling planets.
var VimshottariSequence = [9]Planet{Ketu, Venus, Sun, Moon, Mars, Rahu, Jupiter, Saturn, Mercury}

// MahadashaYears is the full period length of each planet's mahadasha.
var MahadashaYears = map[Planet]float64{
	Ketu:    7,
	Venus:   20,
	Sun:     6,
	Moon:    10,
	Mars:    7,
	Rahu:    18,
	Jupiter: 16,
	Saturn:  19,
	Mercury: 17,
}

// DusthanaHouses are the inauspicious houses used by the prediction rules.
var DusthanaHouses = []int{6, 8, 12}

var signLuckyDays = map[Sign]string{
	Aries:       "मंगलवार",
	Taurus:      "शुक्रवार",
	Gemini:      "बुधवार",
	Cancer:      "सोमवार",
	Leo:         "रविवार",
	Virgo:       "बुधवार",
	Libra:       "शुक्रवार",
	Scorpio:     "मंगलवार, सोमवार",
	Sagittarius: "गुरुवार",
	Capricorn:   "शनिवार",
	Aquarius:    "शनिवार",
	Pisces:      "गुरुवार",
}

// LuckyDay returns the auspicious weekday for a sign.
func LuckyDay(s Sign) string {
	d, ok := signLuckyDays[s]
	if !ok {
		return "Unknown"
	}
	return d
}

var signIshtaDevtas = map[Sign]string{
	Aries:       "पंचमुखी हनुमान",
	Taurus:      "भवानी शंकर",
	Gemini:      "गणेश जी",
	Cancer:      "भवानी शंकर",
	Leo:         "भगवान सूर्य",
	Virgo:       "गणेश जी",
	Libra:       "भवानी शंकर",
	Scorpio:     "भवानी शंकर",
	Sagittarius: "हनुमान जी",
	Capricorn:   "नरसिंह भगवान",
	Aquarius:    "लक्ष्मी नारायण",
	Pisces:      "दुर्गा जी",
}

// IshtaDevta returns the personal deity associated with a sign.
func IshtaDevta(s Sign) string {
	d, ok := signIshtaDevtas[s]
	if !ok {
		return "Unknown"
	}
	return d
}

var planetLuckyColors = map[Planet]string{
	Mars:    "लाल",
	Venus:   "सफेद",
	Mercury: "हरा",
	Moon:    "सफेद",
	Sun:     "नारंगी",
	Jupiter: "पीला",
	Saturn:  "नीला",
}

// LuckyColor returns the color associated with a planet. The lunar nodes have
// no color and degrade to the unknown sentinel.
func LuckyColor(p Planet) string {
	c, ok := planetLuckyColors[p]
	if !ok {
		return "Unknown"
	}
	return c
}
