// Package render draws North-Indian style kundali charts to PNG files.
package render

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"golang.org/x/image/font/opentype"

	"kundali-api/internal/astro"
)

const devanagariTypeface = "NotoSansDevanagari"

var frameColor = color.RGBA{R: 0xD4, G: 0xA0, B: 0x17, A: 0xFF}

type planetGlyph struct {
	symbol string
	color  color.RGBA
}

var planetGlyphs = map[astro.Planet]planetGlyph{
	astro.Sun:     {"सु", color.RGBA{R: 139, A: 0xFF}},
	astro.Moon:    {"च", color.RGBA{B: 128, A: 0xFF}},
	astro.Mars:    {"मं", color.RGBA{R: 255, G: 140, A: 0xFF}},
	astro.Mercury: {"बु", color.RGBA{R: 34, G: 139, B: 34, A: 0xFF}},
	astro.Jupiter: {"गु", color.RGBA{R: 184, G: 134, B: 11, A: 0xFF}},
	astro.Venus:   {"शु", color.RGBA{R: 255, B: 255, A: 0xFF}},
	astro.Saturn:  {"श", color.RGBA{R: 47, G: 79, B: 79, A: 0xFF}},
	astro.Rahu:    {"रा", color.RGBA{R: 128, B: 128, A: 0xFF}},
	astro.Ketu:    {"के", color.RGBA{G: 128, B: 128, A: 0xFF}},
}

var invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]+`)

// SanitizeFilename replaces characters that are unsafe in filenames with
// dashes and trims surrounding spaces and dots.
func SanitizeFilename(name string) string {
	s := invalidFilenameChars.ReplaceAllString(name, "-")
	s = strings.TrimSpace(s)
	return strings.Trim(s, ".")
}

// Renderer draws charts into a static directory. Drawing is serialized
// because the plot font cache is shared process-wide.
type Renderer struct {
	staticDir string
	fontPath  string

	mu         sync.Mutex
	fontLoaded bool
}

func NewRenderer(staticDir, fontPath string) *Renderer {
	return &Renderer{staticDir: staticDir, fontPath: fontPath}
}

// loadFont parses the Devanagari font file and registers it with the plot
// font cache under devanagariTypeface. Called with r.mu held.
func (r *Renderer) loadFont() error {
	if r.fontLoaded {
		return nil
	}
	data, err := os.ReadFile(r.fontPath)
	if err != nil {
		return fmt.Errorf("font file not found at %s: %w", r.fontPath, err)
	}
	fnt, err := opentype.Parse(data)
	if err != nil {
		return fmt.Errorf("parsing font %s: %w", r.fontPath, err)
	}
	font.DefaultCache.Add([]font.Face{
		{Font: font.Font{Typeface: devanagariTypeface}, Face: fnt},
	})
	r.fontLoaded = true
	return nil
}

// DrawChart renders the chart and saves it as a PNG under the static
// directory. The returned name is the saved file's base name.
func (r *Renderer) DrawChart(chart astro.Chart, prefix, personName, birthDate, birthTime string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.loadFont(); err != nil {
		return "", err
	}
	if err := os.MkdirAll(r.staticDir, 0o755); err != nil {
		return "", fmt.Errorf("creating static dir: %w", err)
	}

	base := fmt.Sprintf("%s_%s_%s_%s", prefix, SanitizeFilename(personName), birthDate, birthTime)
	base = strings.ReplaceAll(base, " ", "_")
	base = strings.ReplaceAll(base, ":", "-")
	name := SanitizeFilename(fmt.Sprintf("%s_%s.png", base, uuid.NewString()[:8]))

	p := plot.New()
	p.HideAxes()
	p.BackgroundColor = color.White
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	for _, seg := range frameSegments {
		line, err := plotter.NewLine(plotter.XYs(seg))
		if err != nil {
			return "", fmt.Errorf("building chart frame: %w", err)
		}
		line.LineStyle.Color = frameColor
		line.LineStyle.Width = vg.Points(2)
		p.Add(line)
	}

	if err := r.addRashiNumbers(p, chart); err != nil {
		return "", err
	}
	if err := r.addPlanetSymbols(p, chart); err != nil {
		return "", err
	}

	path := filepath.Join(r.staticDir, name)
	if err := p.Save(6*vg.Inch, 5.4*vg.Inch, path); err != nil {
		return "", fmt.Errorf("saving chart %s: %w", name, err)
	}
	return name, nil
}

func (r *Renderer) addRashiNumbers(p *plot.Plot, chart astro.Chart) error {
	var xyl plotter.XYLabels
	for house := 1; house <= 12; house++ {
		layout := cellLayouts[displayCell[house]]
		xyl.XYs = append(xyl.XYs, layout.rashi)
		xyl.Labels = append(xyl.Labels, fmt.Sprintf("%d", chart.HouseSign(house).Number()))
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return fmt.Errorf("building rashi labels: %w", err)
	}
	for i := range labels.TextStyle {
		st := &labels.TextStyle[i]
		st.Font.Size = vg.Points(18)
		st.Color = color.Black
		st.XAlign = text.XCenter
		st.YAlign = text.YCenter
	}
	p.Add(labels)
	return nil
}

func (r *Renderer) addPlanetSymbols(p *plot.Plot, chart astro.Chart) error {
	var xyl plotter.XYLabels
	var colors []color.RGBA
	for house := 1; house <= 12; house++ {
		layout := cellLayouts[displayCell[house]]
		planets := chart.PlanetsIn(house)
		if len(planets) > len(layout.planets) {
			planets = planets[:len(layout.planets)]
		}
		for i, planet := range planets {
			glyph, ok := planetGlyphs[planet]
			if !ok {
				continue
			}
			xyl.XYs = append(xyl.XYs, layout.planets[i])
			xyl.Labels = append(xyl.Labels, glyph.symbol)
			colors = append(colors, glyph.color)
		}
	}
	if len(xyl.Labels) == 0 {
		return nil
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return fmt.Errorf("building planet labels: %w", err)
	}
	for i := range labels.TextStyle {
		st := &labels.TextStyle[i]
		st.Font.Typeface = devanagariTypeface
		st.Font.Size = vg.Points(12)
		st.Color = colors[i]
		st.XAlign = text.XCenter
		st.YAlign = text.YCenter
	}
	p.Add(labels)
	return nil
}
