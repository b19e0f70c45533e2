package style

import (
	"fmt"
	"strings"
)

// Palette is the color set chosen from a description. Matched is false when no
// color keyword was found, in which case the palette is not applied.
type Palette struct {
	Name      string `json:"name"`
	Matched   bool   `json:"matched"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	// Background may be a gradient.
	Background string `json:"background"`
	Surface    string `json:"surface"`
	Text       string `json:"text"`
	TextLight  string `json:"text_light"`
}

type paletteRule struct {
	keywords []string
	palette  Palette
}

// paletteRules are checked in order and the first match wins.
var paletteRules = []paletteRule{
	{
		keywords: []string{"rouge", "red", "chaudes"},
		palette: Palette{
			Name: "red", Primary: "#dc2626", Secondary: "#b91c1c", Accent: "#f87171",
			Background: "linear-gradient(135deg, #fef2f2, #fee2e2)", Surface: "rgba(254, 242, 242, 0.9)",
			Text: "#7f1d1d", TextLight: "#991b1b",
		},
	},
	{
		keywords: []string{"orange"},
		palette: Palette{
			Name: "orange", Primary: "#ea580c", Secondary: "#c2410c", Accent: "#fb923c",
			Background: "linear-gradient(135deg, #fff7ed, #fed7aa)", Surface: "rgba(255, 247, 237, 0.9)",
			Text: "#9a3412", TextLight: "#c2410c",
		},
	},
	{
		keywords: []string{"jaune", "yellow", "doré", "or"},
		palette: Palette{
			Name: "yellow", Primary: "#d97706", Secondary: "#b45309", Accent: "#fbbf24",
			Background: "linear-gradient(135deg, #fffbeb, #fef3c7)", Surface: "rgba(255, 251, 235, 0.9)",
			Text: "#92400e", TextLight: "#b45309",
		},
	},
	{
		keywords: []string{"vert", "green"},
		palette: Palette{
			Name: "green", Primary: "#16a34a", Secondary: "#15803d", Accent: "#4ade80",
			Background: "linear-gradient(135deg, #f0fdf4, #dcfce7)", Surface: "rgba(240, 253, 244, 0.9)",
			Text: "#14532d", TextLight: "#166534",
		},
	},
	{
		keywords: []string{"bleu", "blue", "froides"},
		palette: Palette{
			Name: "blue", Primary: "#2563eb", Secondary: "#1d4ed8", Accent: "#60a5fa",
			Background: "linear-gradient(135deg, #eff6ff, #dbeafe)", Surface: "rgba(239, 246, 255, 0.9)",
			Text: "#1e3a8a", TextLight: "#1e40af",
		},
	},
	{
		keywords: []string{"violet", "purple"},
		palette: Palette{
			Name: "violet", Primary: "#9333ea", Secondary: "#7c3aed", Accent: "#a855f7",
			Background: "linear-gradient(135deg, #faf5ff, #e9d5ff)", Surface: "rgba(250, 245, 255, 0.9)",
			Text: "#581c87", TextLight: "#6b21a8",
		},
	},
	{
		keywords: []string{"rose", "pink"},
		palette: Palette{
			Name: "pink", Primary: "#e11d48", Secondary: "#be185d", Accent: "#f472b6",
			Background: "linear-gradient(135deg, #fdf2f8, #fce7f3)", Surface: "rgba(253, 242, 248, 0.9)",
			Text: "#831843", TextLight: "#9d174d",
		},
	},
	{
		keywords: []string{"sombre", "dark", "nocturne", "noir"},
		palette: Palette{
			Name: "dark", Primary: "#60a5fa", Secondary: "#3b82f6", Accent: "#93c5fd",
			Background: "linear-gradient(135deg, #0f172a, #1e293b)", Surface: "rgba(30, 41, 59, 0.9)",
			Text: "#f1f5f9", TextLight: "#cbd5e1",
		},
	},
	{
		keywords: []string{"méditerranéen", "italien", "grec"},
		palette: Palette{
			Name: "mediterranean", Primary: "#0ea5e9", Secondary: "#0284c7", Accent: "#38bdf8",
			Background: "linear-gradient(135deg, #f0f9ff, #e0f2fe)", Surface: "rgba(240, 249, 255, 0.9)",
			Text: "#0c4a6e", TextLight: "#075985",
		},
	},
}

// DefaultPalette is returned when no color keyword matches.
func DefaultPalette() Palette {
	return Palette{
		Name: "default", Primary: "#3b82f6", Secondary: "#1e40af", Accent: "#60a5fa",
		Background: "#ffffff", Surface: "rgba(255, 255, 255, 0.9)",
		Text: "#1f2937", TextLight: "#6b7280",
	}
}

// ResolvePalette returns the palette of the first color group with a keyword
// contained in text. text is expected to be lower-cased already.
func ResolvePalette(text string) Palette {
	for _, r := range paletteRules {
		if containsAny(text, r.keywords) {
			p := r.palette
			p.Matched = true
			return p
		}
	}
	return DefaultPalette()
}

// PaletteNames lists the color groups in priority order.
func PaletteNames() []string {
	names := make([]string, 0, len(paletteRules))
	for _, r := range paletteRules {
		names = append(names, r.palette.Name)
	}
	return names
}

// CSS renders the palette as custom properties plus !important overrides.
// Shadow tints append a two-digit alpha to the hex primary.
func (p Palette) CSS() string {
	return fmt.Sprintf(`
/* Palette: %[1]s */
:root {
  --ai-primary: %[2]s;
  --ai-secondary: %[3]s;
  --ai-accent: %[4]s;
  --ai-background: %[5]s;
  --ai-surface: %[6]s;
  --ai-text: %[7]s;
  --ai-text-light: %[8]s;
}

body {
  background: var(--ai-background) !important;
  color: var(--ai-text) !important;
}

.title-section {
  background: var(--ai-surface) !important;
  color: var(--ai-text) !important;
}

.title-section h1 {
  color: var(--ai-primary) !important;
  text-shadow: 0 2px 8px %[2]s40 !important;
}

.gallery-section {
  background: var(--ai-background) !important;
}

.gallery-title, .info-title {
  color: var(--ai-primary) !important;
  text-shadow: 0 2px 6px %[2]s30 !important;
}

.tagline {
  background: var(--ai-surface) !important;
  color: var(--ai-text) !important;
  border-color: var(--ai-accent) !important;
  box-shadow: 0 8px 25px %[2]s20 !important;
}

.info {
  background: var(--ai-surface) !important;
  color: var(--ai-text) !important;
  border-color: var(--ai-accent) !important;
}

.info p {
  color: var(--ai-text-light) !important;
}

.info strong {
  color: var(--ai-primary) !important;
}

.gallery img {
  border-color: var(--ai-accent) !important;
  box-shadow: 0 8px 25px %[2]s30 !important;
}

.gallery img:hover {
  box-shadow: 0 15px 40px %[2]s40 !important;
}

.map-container iframe {
  border-color: var(--ai-accent) !important;
  box-shadow: 0 10px 30px %[2]s25 !important;
}

footer {
  background: linear-gradient(135deg, var(--ai-primary), var(--ai-secondary)) !important;
  color: white !important;
}

footer::before {
  background: linear-gradient(90deg, var(--ai-accent), var(--ai-primary), var(--ai-accent)) !important;
}
`, p.Name, p.Primary, p.Secondary, p.Accent, p.Background, p.Surface, p.Text, p.TextLight)
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
