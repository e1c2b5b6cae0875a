package models

import "kundali-api/internal/astro"

// KundaliRequest is the incoming birth-detail payload.
type KundaliRequest struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`  // YYYY-MM-DD
	BirthTime  string `json:"birth_time"`  // HH:MM, 24h IST
	BirthPlace string `json:"birth_place"` // free text
}

// Location is a resolved place, with the geocoding source that produced it.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Source    string  `json:"source"` // "nominatim" or "photon"
}

// HouseEntry is one house of a served chart map.
type HouseEntry struct {
	Sign    string   `json:"sign"`
	Planets []string `json:"planets"`
}

// PlanetPosition is the per-planet detail block of the response.
type PlanetPosition struct {
	Degree       float64 `json:"degree"`
	Sign         string  `json:"sign"`
	SignNumber   int     `json:"sign_number"`
	Rashi        string  `json:"rashi"`
	RashiNumber  int     `json:"rashi_number"`
	RashiLord    string  `json:"rashi_lord"`
	Nakshatra    string  `json:"nakshatra"`
	Charan       int     `json:"charan"`
	NamingLetter *string `json:"naming_letter"`
}

// MangalDoshaDetails mirrors astro.MangalDosha on the wire.
type MangalDoshaDetails struct {
	Exists    bool     `json:"exists"`
	Nullified bool     `json:"nullified"`
	Reasons   []string `json:"reasons"`
}

// KaalsarpDoshaDetails carries the nodal-axis result with the node houses
// (0 when a node was not placed).
type KaalsarpDoshaDetails struct {
	Exists    bool `json:"exists"`
	RahuHouse int  `json:"rahu_house"`
	KetuHouse int  `json:"ketu_house"`
}

// Mahadasha is the period balance block.
type Mahadasha struct {
	StartingPlanet string `json:"starting_planet"`
	Balance        string `json:"balance"`
}

// Predictions groups the five templated blocks.
type Predictions struct {
	Study             astro.Prediction        `json:"study"`
	Money             astro.Prediction        `json:"money"`
	Work              astro.Prediction        `json:"work"`
	Marriage          astro.Prediction        `json:"marriage"`
	MahadashaSadesati astro.MahadashaSadeSati `json:"mahadasha_sadesati"`
}

// KundaliResponse is the full report returned by POST /kundali.
type KundaliResponse struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	BirthTime  string `json:"birth_time"`
	BirthPlace string `json:"birth_place"`

	Mulyank   int     `json:"mulyank"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	BirthJulianDay   float64 `json:"birth_julian_day"`
	AyanamsaLahiri   float64 `json:"ayanamsa_lahiri"`
	SunriseJulianDay float64 `json:"sunrise_julian_day"`
	SunriseTime      string  `json:"sunrise_time"`
	IstKaal          *string `json:"ist_kaal"`

	LagnaDegree float64 `json:"lagna_degree"`
	LagnaRashi  string  `json:"lagna_rashi"`

	JanamNakshatra     string  `json:"janam_nakshatra"`
	JanamCharan        int     `json:"janam_charan"`
	Rashi              string  `json:"rashi"`
	RashiNaamStartFrom *string `json:"rashi_naam_start_from"`
	Gana               string  `json:"gana"`

	LagnaChart      map[int]HouseEntry        `json:"lagna_chart"`
	ChandraChart    map[int]HouseEntry        `json:"chandra_chart"`
	PlanetPositions map[string]PlanetPosition `json:"planet_positions"`

	ShubhDin    string `json:"shubh_din"`
	IshtaDevta  string `json:"ishta_devta"`
	LuckyNumber int    `json:"lucky_number"`
	LuckyDate   string `json:"lucky_date"`
	LuckyColor  string `json:"lucky_color"`

	BhagyavardhakRatna string `json:"bhagyavardhak_ratna"`
	JeevanRakshakRatna string `json:"jeevan_rakshak_ratna"`
	VidyaVardhakRatna  string `json:"vidya_vardhak_ratna"`

	MangalDosha   MangalDoshaDetails   `json:"mangal_dosha"`
	KaalsarpDosha KaalsarpDoshaDetails `json:"kaalsarp_dosha"`
	Mahadasha     Mahadasha            `json:"mahadasha"`
	Predictions   Predictions          `json:"predictions"`

	LagnaImage   string `json:"lagna_image"`
	ChandraImage string `json:"chandra_image"`
}

// ErrorResponse represents API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code"`
}
