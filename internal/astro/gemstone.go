package astro

// Gemstone selection for houses 1, 5 and 9 of the lagna chart. The dynamic
// priority chain runs: strong benefic house lord, strong benefic occupant,
// strong benefic aspecting the house, then a per-house static fallback.

// IsStrong reports whether p standing in sign s counts as strong: own sign or
// exaltation sign.
func IsStrong(p Planet, s Sign) bool {
	return s.Lord() == p || exaltedSigns[p] == s
}

// Gemstone recommends a stone for houseNumber (1, 5 or 9) from the lagna
// chart and the per-planet sidereal positions.
func Gemstone(houseNumber int, chart Chart, positions map[Planet]Position) string {
	rashi := chart.HouseSign(houseNumber)
	lord := rashi.Lord()

	lordSign, lordPlaced := positions[lord]
	lordStrong := lordPlaced && (lordSign.Sign == rashi || exaltedSigns[lord] == lordSign.Sign)
	if lordStrong && IsBenefic(lord) {
		return lord.Gemstone()
	}

	// Benefic planet physically in the house, strong there.
	for _, p := range Benefics {
		if !chart.Contains(houseNumber, p) {
			continue
		}
		pos, ok := positions[p]
		if !ok {
			continue
		}
		if pos.Sign == rashi || exaltedSigns[p] == pos.Sign {
			return p.Gemstone()
		}
	}

	// Benefic aspect onto the house: Jupiter from the 5th and 9th, Venus and
	// Mercury (and Moon) from the 7th.
	for _, p := range Benefics {
		planetHouse, ok := chart.HouseOf(p)
		if !ok {
			continue
		}
		var aspects []int
		if p == Jupiter {
			aspects = []int{AspectHouse(planetHouse, 4), AspectHouse(planetHouse, 8)}
		} else {
			aspects = []int{AspectHouse(planetHouse, 6)}
		}
		for _, a := range aspects {
			if a != houseNumber {
				continue
			}
			pos, ok := positions[p]
			if !ok {
				continue
			}
			if pos.Sign == chart.HouseSign(planetHouse) || exaltedSigns[p] == pos.Sign {
				return p.Gemstone()
			}
		}
	}

	switch houseNumber {
	case 5, 9:
		return Jupiter.Gemstone()
	case 1:
		if g, ok := planetGemstones[lord]; ok {
			return g
		}
		if g, ok := jeevanRakshakRatna[rashi]; ok {
			return g
		}
	}
	return "Unknown"
}
