package astro

// Dosha evaluation over the lagna chart. All rules are fixed; both evaluators
// are pure functions of the chart.

var (
	mangalDoshaHouses = []int{1, 4, 7, 8, 12}
	kendraHouses      = []int{1, 4, 7, 10}
)

// MangalDosha is the malefic-placement affliction result.
type MangalDosha struct {
	Exists    bool
	Nullified bool
	Reasons   []string
}

// EvaluateMangalDosha flags the dosha when Mars sits in houses 1, 4, 7, 8 or
// 12 of the lagna chart, then checks four independent nullifying conditions.
// All conditions are checked; each true one appends its reason.
func EvaluateMangalDosha(chart Chart) MangalDosha {
	res := MangalDosha{Reasons: []string{}}

	marsHouse, ok := chart.HouseOf(Mars)
	if !ok {
		return res
	}
	for _, h := range mangalDoshaHouses {
		if marsHouse == h {
			res.Exists = true
			break
		}
	}
	if !res.Exists {
		return res
	}

	if jupiterHouse, ok := chart.HouseOf(Jupiter); ok {
		aspects := []int{
			AspectHouse(jupiterHouse, 4),
			AspectHouse(jupiterHouse, 6),
			AspectHouse(jupiterHouse, 8),
		}
		for _, a := range aspects {
			if a == marsHouse {
				res.Nullified = true
				res.Reasons = append(res.Reasons, "गुरु मंगल को देख रहा है")
				break
			}
		}
	}

	moonHouse, moonPlaced := chart.HouseOf(Moon)
	if moonPlaced {
		for _, k := range kendraHouses {
			if moonHouse == k {
				res.Nullified = true
				res.Reasons = append(res.Reasons, "चंद्रमा केंद्र में है")
				break
			}
		}
		if moonHouse == marsHouse {
			res.Nullified = true
			res.Reasons = append(res.Reasons, "चंद्रमा मंगल के साथ है")
		}
	}

	if rahuHouse, ok := chart.HouseOf(Rahu); ok && rahuHouse == marsHouse {
		res.Nullified = true
		res.Reasons = append(res.Reasons, "राहु मंगल के साथ है")
	}

	return res
}

// KaalsarpDosha is the nodal-axis affliction result. RahuHouse and KetuHouse
// are 0 when the node is absent from the chart.
type KaalsarpDosha struct {
	Exists    bool
	RahuHouse int
	KetuHouse int
}

// EvaluateKaalsarpDosha tests whether all non-node planets fall on one side of
// the Rahu-Ketu axis. The two containment branches are reproduced exactly as
// the production rule set defines them; the first branch admits any planet not
// conjunct a node's house.
func EvaluateKaalsarpDosha(chart Chart) KaalsarpDosha {
	res := KaalsarpDosha{}

	planetHouses := map[Planet]int{}
	for i := range chart.Houses {
		for _, p := range chart.Houses[i].Planets {
			switch p {
			case Rahu:
				res.RahuHouse = i + 1
			case Ketu:
				res.KetuHouse = i + 1
			default:
				planetHouses[p] = i + 1
			}
		}
	}
	if res.RahuHouse == 0 || res.KetuHouse == 0 {
		return res
	}

	minHouse, maxHouse := res.RahuHouse, res.KetuHouse
	if minHouse > maxHouse {
		minHouse, maxHouse = maxHouse, minHouse
	}

	allBetween := true
	for _, h := range planetHouses {
		inside := minHouse < h && h < maxHouse
		outside := h < minHouse || h > maxHouse
		if !inside && !outside {
			allBetween = false
			break
		}
	}
	if allBetween {
		res.Exists = true
		return res
	}

	allOutside := true
	for _, h := range planetHouses {
		if !(h < minHouse || h > maxHouse) {
			allOutside = false
			break
		}
	}
	res.Exists = allOutside
	return res
}
