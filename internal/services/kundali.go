package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kundali-api/internal/astro"
	"kundali-api/internal/config"
	"kundali-api/internal/ephem"
	"kundali-api/internal/models"
	"kundali-api/internal/render"
)

// KundaliService coordinates the full report pipeline: geocoding, ephemeris
// calculations, chart rendering and the derived analyses.
type KundaliService struct {
	config   *config.Config
	geocode  *GeocodeService
	engine   *ephem.Engine
	renderer *render.Renderer
	logger   *zap.Logger
}

func NewKundaliService(cfg *config.Config, geocode *GeocodeService, engine *ephem.Engine, renderer *render.Renderer, logger *zap.Logger) *KundaliService {
	return &KundaliService{
		config:   cfg,
		geocode:  geocode,
		engine:   engine,
		renderer: renderer,
		logger:   logger,
	}
}

// Generate computes the complete kundali report for one birth record.
func (s *KundaliService) Generate(ctx context.Context, req models.KundaliRequest) (*models.KundaliResponse, error) {
	CleanupStaticDir(s.config.StaticDir, s.logger)

	loc, err := s.geocode.Resolve(ctx, req.BirthPlace)
	if err != nil {
		return nil, err
	}

	birthJD, err := ephem.JulianDayIST(req.BirthDate, req.BirthTime)
	if err != nil {
		return nil, fmt.Errorf("invalid birth moment: %w", err)
	}
	ayanamsa := ephem.AyanamsaLahiri(birthJD)
	s.logger.Debug("birth moment",
		zap.Float64("jd", birthJD),
		zap.Float64("ayanamsa", ayanamsa))

	lagna := astro.Normalize(ephem.Ascendant(birthJD, loc.Latitude, loc.Longitude), ayanamsa)

	positions, err := s.planetPositions(birthJD, ayanamsa)
	if err != nil {
		return nil, err
	}
	moon := positions[astro.Moon]

	lagnaChart := astro.BuildChart(lagna.Sign, positions)
	chandraChart := astro.BuildChart(moon.Sign, positions)

	lagnaImage, err := s.renderer.DrawChart(lagnaChart, "lagna", req.Name, req.BirthDate, req.BirthTime)
	if err != nil {
		return nil, fmt.Errorf("rendering lagna chart: %w", err)
	}
	chandraImage, err := s.renderer.DrawChart(chandraChart, "chandra", req.Name, req.BirthDate, req.BirthTime)
	if err != nil {
		return nil, fmt.Errorf("rendering chandra chart: %w", err)
	}

	sunriseJD, err := ephem.Sunrise(birthJD, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, fmt.Errorf("sunrise calculation failed: %w", err)
	}
	sunriseTime := ephem.ISTClock(sunriseJD)

	var istKaal *string
	if v, err := astro.IstKaal(req.BirthTime, sunriseTime); err != nil {
		s.logger.Warn("ist kaal unavailable", zap.Error(err))
	} else {
		istKaal = &v
	}

	mulyank, err := astro.Mulyank(req.BirthDate)
	if err != nil {
		return nil, fmt.Errorf("invalid birth date: %w", err)
	}
	luckyNumber := astro.LuckyNumber(req.BirthDate)
	luckyDates := astro.LuckyDatesText(astro.LuckyDates(luckyNumber))

	balance := astro.MahadashaBalance(moon)

	resp := &models.KundaliResponse{
		Name:       req.Name,
		BirthDate:  req.BirthDate,
		BirthTime:  req.BirthTime,
		BirthPlace: req.BirthPlace,

		Mulyank:   mulyank,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,

		BirthJulianDay:   birthJD,
		AyanamsaLahiri:   ayanamsa - 0.88,
		SunriseJulianDay: sunriseJD,
		SunriseTime:      sunriseTime,
		IstKaal:          istKaal,

		LagnaDegree: lagna.Degree,
		LagnaRashi:  lagna.Sign.Hindi(),

		JanamNakshatra:     astro.NakshatraName(moon.Nakshatra),
		JanamCharan:        moon.Pada,
		Rashi:              moon.Sign.Hindi(),
		RashiNaamStartFrom: optional(astro.NamingLetter(moon.Nakshatra, moon.Pada)),
		Gana:               astro.Gana(moon.Nakshatra),

		LagnaChart:      chartEntries(lagnaChart),
		ChandraChart:    chartEntries(chandraChart),
		PlanetPositions: positionEntries(positions),

		ShubhDin:    astro.LuckyDay(moon.Sign),
		IshtaDevta:  astro.IshtaDevta(lagnaChart.HouseSign(12)),
		LuckyNumber: luckyNumber,
		LuckyDate:   luckyDates,
		LuckyColor:  astro.LuckyColor(moon.Sign.Lord()),

		BhagyavardhakRatna: astro.Gemstone(9, lagnaChart, positions),
		JeevanRakshakRatna: astro.Gemstone(1, lagnaChart, positions),
		VidyaVardhakRatna:  astro.Gemstone(5, lagnaChart, positions),

		MangalDosha:   mangalEntry(astro.EvaluateMangalDosha(lagnaChart)),
		KaalsarpDosha: kaalsarpEntry(astro.EvaluateKaalsarpDosha(lagnaChart)),
		Mahadasha: models.Mahadasha{
			StartingPlanet: balance.Planet.Hindi(),
			Balance:        balance.Text(),
		},
		Predictions: models.Predictions{
			Study:             astro.StudyPrediction(lagnaChart),
			Money:             astro.MoneyPrediction(lagnaChart),
			Work:              astro.WorkPrediction(lagnaChart),
			Marriage:          astro.MarriagePrediction(lagnaChart),
			MahadashaSadesati: astro.MahadashaSadeSatiPrediction(lagnaChart, balance.Planet),
		},

		LagnaImage:   s.imageURL(lagnaImage),
		ChandraImage: s.imageURL(chandraImage),
	}

	s.logger.Info("kundali generated",
		zap.String("place", req.BirthPlace),
		zap.String("lagna", resp.LagnaRashi),
		zap.String("rashi", resp.Rashi))
	return resp, nil
}

// planetPositions computes sidereal positions for all nine grahas. Ketu is
// derived from Rahu rather than calculated.
func (s *KundaliService) planetPositions(jd, ayanamsa float64) (map[astro.Planet]astro.Position, error) {
	positions := make(map[astro.Planet]astro.Position, len(astro.Planets))
	for _, p := range astro.Planets {
		if p == astro.Ketu {
			continue
		}
		tropical, err := s.engine.TropicalLongitude(p, jd)
		if err != nil {
			return nil, fmt.Errorf("position of %s: %w", p.Hindi(), err)
		}
		positions[p] = astro.Normalize(tropical, ayanamsa)
	}
	positions[astro.Ketu] = astro.KetuFrom(positions[astro.Rahu])
	return positions, nil
}

func (s *KundaliService) imageURL(name string) string {
	return s.config.PublicBaseURL + "/static/" + name
}

func chartEntries(c astro.Chart) map[int]models.HouseEntry {
	entries := make(map[int]models.HouseEntry, 12)
	for house := 1; house <= 12; house++ {
		planets := []string{}
		for _, p := range c.PlanetsIn(house) {
			planets = append(planets, p.Hindi())
		}
		entries[house] = models.HouseEntry{
			Sign:    c.HouseSign(house).Hindi(),
			Planets: planets,
		}
	}
	return entries
}

func positionEntries(positions map[astro.Planet]astro.Position) map[string]models.PlanetPosition {
	entries := make(map[string]models.PlanetPosition, len(positions))
	for p, pos := range positions {
		var letter *string
		if p == astro.Moon {
			letter = optional(astro.NamingLetter(pos.Nakshatra, pos.Pada))
		}
		entries[p.Hindi()] = models.PlanetPosition{
			Degree:       pos.Degree,
			Sign:         pos.Sign.Hindi(),
			SignNumber:   pos.Sign.Number(),
			Rashi:        pos.Sign.Hindi(),
			RashiNumber:  pos.Sign.Number(),
			RashiLord:    pos.Sign.Lord().Hindi(),
			Nakshatra:    astro.NakshatraName(pos.Nakshatra),
			Charan:       pos.Pada,
			NamingLetter: letter,
		}
	}
	return entries
}

func mangalEntry(d astro.MangalDosha) models.MangalDoshaDetails {
	return models.MangalDoshaDetails{
		Exists:    d.Exists,
		Nullified: d.Nullified,
		Reasons:   d.Reasons,
	}
}

func kaalsarpEntry(d astro.KaalsarpDosha) models.KaalsarpDoshaDetails {
	return models.KaalsarpDoshaDetails{
		Exists:    d.Exists,
		RahuHouse: d.RahuHouse,
		KetuHouse: d.KetuHouse,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
