package astro

// House is one of twelve chart houses. The planet list preserves the
// canonical iteration order of Planets.
type House struct {
	Sign    Sign
	Planets []Planet
}

// Chart is a 12-house map anchored to a sign: house 1 carries the anchor sign
// and each following house the next sign in cyclic order. Two charts are built
// per kundali, one anchored to the lagna and one to the Moon's sign.
type Chart struct {
	Anchor Sign
	Houses [12]House // Houses[0] is house 1
}

// BuildChart places every planet into the house matching its own sign.
// Multiple planets may share a house (conjunction); a planet appears in
// exactly one house.
func BuildChart(anchor Sign, positions map[Planet]Position) Chart {
	c := Chart{Anchor: anchor}
	for i := 0; i < 12; i++ {
		c.Houses[i].Sign = Sign((int(anchor) + i) % 12)
	}
	for _, p := range Planets {
		pos, ok := positions[p]
		if !ok {
			continue
		}
		h := HouseNumber(pos.Sign, anchor)
		c.Houses[h-1].Planets = append(c.Houses[h-1].Planets, p)
	}
	return c
}

// HouseNumber maps a sign to its 1-based house number for a given anchor.
// For a fixed anchor this is a bijection from the 12 signs onto houses 1-12.
func HouseNumber(s, anchor Sign) int {
	return mod12(int(s)-int(anchor)) + 1
}

// HouseSign returns the sign occupying house n (1-12).
func (c Chart) HouseSign(n int) Sign {
	return c.Houses[n-1].Sign
}

// PlanetsIn returns the planets occupying house n (1-12).
func (c Chart) PlanetsIn(n int) []Planet {
	return c.Houses[n-1].Planets
}

// HouseOf locates the house containing p. The second return is false when the
// planet was not placed, which callers treat as a silent data-quality
// fallback rather than an error.
func (c Chart) HouseOf(p Planet) (int, bool) {
	for i := range c.Houses {
		for _, q := range c.Houses[i].Planets {
			if q == p {
				return i + 1, true
			}
		}
	}
	return 0, false
}

// Contains reports whether house n (1-12) holds planet p.
func (c Chart) Contains(n int, p Planet) bool {
	for _, q := range c.Houses[n-1].Planets {
		if q == p {
			return true
		}
	}
	return false
}

// AspectHouse applies a house offset with the 1-based wraparound used by the
// aspect rules: (h+offset) mod 12, with 0 corrected to 12.
func AspectHouse(house, offset int) int {
	h := (house + offset) % 12
	if h == 0 {
		h = 12
	}
	return h
}

func mod12(n int) int {
	m := n % 12
	if m < 0 {
		m += 12
	}
	return m
}
