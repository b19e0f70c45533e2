package style

import "strings"

// TemplateID names one of the built-in visual templates.
type TemplateID string

const (
	Simple  TemplateID = "simple"
	Elegant TemplateID = "elegant"
	Modern  TemplateID = "modern"
	Rustic  TemplateID = "rustic"
)

// TemplateInfo describes a template for listings.
type TemplateInfo struct {
	ID          TemplateID `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
}

type template struct {
	info  TemplateInfo
	light Style
	dark  Style
}

// Templates lists the built-in templates in display order.
func Templates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(templateOrder))
	for _, id := range templateOrder {
		out = append(out, templates[id].info)
	}
	return out
}

// ParseTemplateID maps a user-supplied id to a known template, falling back to
// Simple for anything it does not recognise.
func ParseTemplateID(s string) TemplateID {
	id := TemplateID(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := templates[id]; ok {
		return id
	}
	return Simple
}

// IsTemplate reports whether s names a built-in template exactly.
func IsTemplate(s string) bool {
	_, ok := templates[TemplateID(s)]
	return ok
}

// ForTemplate returns the light or dark variant of a template.
func ForTemplate(id TemplateID, dark bool) Style {
	t, ok := templates[id]
	if !ok {
		t = templates[Simple]
	}
	if dark {
		return t.dark
	}
	return t.light
}

var templateOrder = []TemplateID{Simple, Elegant, Modern, Rustic}

const (
	interPlayfairImport = `<link href="https://fonts.googleapis.com/css2?family=Inter:wght@300;400;500;600;700&family=Playfair+Display:wght@400;600;700&display=swap" rel="stylesheet">`
	cormorantLatoImport = `<link href="https://fonts.googleapis.com/css2?family=Cormorant+Garamond:wght@300;400;500;600;700&family=Lato:wght@300;400;700&display=swap" rel="stylesheet">`
	poppinsSpaceImport  = `<link href="https://fonts.googleapis.com/css2?family=Poppins:wght@300;400;500;600;700&family=Space+Grotesk:wght@400;500;700&display=swap" rel="stylesheet">`
	merriweatherImport  = `<link href="https://fonts.googleapis.com/css2?family=Merriweather:wght@300;400;700&family=Source+Sans+3:wght@300;400;600&display=swap" rel="stylesheet">`
)

const modernKeyframes = `@keyframes modernFadeUp {
      from { opacity: 0; transform: translateY(20px); }
      to { opacity: 1; transform: translateY(0); }
    }`

const rusticTexture = `.title-section h1 {
      letter-spacing: 1px;
    }

    .gallery img {
      filter: sepia(15%);
    }`

var templates = map[TemplateID]template{
	Simple: {
		info: TemplateInfo{ID: Simple, Name: "Simple", Description: "Clean layout with blue accents"},
		light: Style{
			FontImport:        interPlayfairImport,
			BodyFont:          "'Inter', system-ui, sans-serif",
			TitleFont:         "'Playfair Display', serif",
			BackgroundColor:   "#ffffff",
			TextColor:         "#1f2937",
			PrimaryColor:      "#3b82f6",
			SecondaryColor:    "#1e40af",
			AccentColor:       "#60a5fa",
			HeaderBackground:  "linear-gradient(135deg, #f8fafc 0%, #e2e8f0 100%)",
			SectionBackground: "linear-gradient(135deg, #e2e8f0 0%, #f8fafc 100%)",
			TaglineBackground: "rgba(248, 250, 252, 0.9)",
			InfoBackground:    "rgba(255, 255, 255, 0.8)",
			FooterBackground:  "linear-gradient(135deg, #1e293b 0%, #0f172a 100%)",
			FooterTextColor:   "#f1f5f9",
			HeroOverlay:       "linear-gradient(45deg, rgba(59, 130, 246, 0.1) 0%, rgba(96, 165, 250, 0.05) 50%, rgba(30, 64, 175, 0.1) 100%)",
		},
		dark: Style{
			FontImport:        interPlayfairImport,
			BodyFont:          "'Inter', system-ui, sans-serif",
			TitleFont:         "'Playfair Display', serif",
			BackgroundColor:   "#0f172a",
			TextColor:         "#e2e8f0",
			PrimaryColor:      "#60a5fa",
			SecondaryColor:    "#93c5fd",
			AccentColor:       "#3b82f6",
			HeaderBackground:  "linear-gradient(135deg, #1e293b 0%, #0f172a 100%)",
			SectionBackground: "linear-gradient(135deg, #0f172a 0%, #1e293b 100%)",
			TaglineBackground: "rgba(30, 41, 59, 0.9)",
			InfoBackground:    "rgba(30, 41, 59, 0.8)",
			FooterBackground:  "linear-gradient(135deg, #020617 0%, #0f172a 100%)",
			FooterTextColor:   "#cbd5e1",
			HeroOverlay:       "linear-gradient(45deg, rgba(15, 23, 42, 0.5) 0%, rgba(15, 23, 42, 0.2) 50%, rgba(15, 23, 42, 0.5) 100%)",
		},
	},
	Elegant: {
		info: TemplateInfo{ID: Elegant, Name: "Elegant", Description: "Serif titles with gold and ivory tones"},
		light: Style{
			FontImport:        cormorantLatoImport,
			BodyFont:          "'Lato', sans-serif",
			TitleFont:         "'Cormorant Garamond', serif",
			BackgroundColor:   "#fdfbf7",
			TextColor:         "#2d2a26",
			PrimaryColor:      "#8b6f47",
			SecondaryColor:    "#5c4a32",
			AccentColor:       "#c9a96e",
			HeaderBackground:  "linear-gradient(135deg, #fdfbf7 0%, #f3ede2 100%)",
			SectionBackground: "linear-gradient(135deg, #f3ede2 0%, #fdfbf7 100%)",
			TaglineBackground: "rgba(253, 251, 247, 0.95)",
			InfoBackground:    "rgba(255, 255, 255, 0.85)",
			FooterBackground:  "linear-gradient(135deg, #2d2a26 0%, #1a1815 100%)",
			FooterTextColor:   "#f3ede2",
			HeroOverlay:       "linear-gradient(180deg, rgba(45, 42, 38, 0.1) 0%, rgba(45, 42, 38, 0.35) 100%)",
			TitleAnimation:    "letter-spacing: 3px;",
			TaglineAnimation:  "font-style: italic;",
		},
		dark: Style{
			FontImport:        cormorantLatoImport,
			BodyFont:          "'Lato', sans-serif",
			TitleFont:         "'Cormorant Garamond', serif",
			BackgroundColor:   "#14120f",
			TextColor:         "#e9e2d4",
			PrimaryColor:      "#d4b483",
			SecondaryColor:    "#c9a96e",
			AccentColor:       "#a68a5b",
			HeaderBackground:  "linear-gradient(135deg, #1f1c18 0%, #14120f 100%)",
			SectionBackground: "linear-gradient(135deg, #14120f 0%, #1f1c18 100%)",
			TaglineBackground: "rgba(31, 28, 24, 0.9)",
			InfoBackground:    "rgba(31, 28, 24, 0.85)",
			FooterBackground:  "linear-gradient(135deg, #0a0907 0%, #14120f 100%)",
			FooterTextColor:   "#d4b483",
			HeroOverlay:       "linear-gradient(180deg, rgba(10, 9, 7, 0.3) 0%, rgba(10, 9, 7, 0.6) 100%)",
			TitleAnimation:    "letter-spacing: 3px;",
			TaglineAnimation:  "font-style: italic;",
		},
	},
	Modern: {
		info: TemplateInfo{ID: Modern, Name: "Modern", Description: "Geometric sans-serif with violet and cyan"},
		light: Style{
			FontImport:        poppinsSpaceImport,
			BodyFont:          "'Poppins', sans-serif",
			TitleFont:         "'Space Grotesk', sans-serif",
			BackgroundColor:   "#f9fafb",
			TextColor:         "#111827",
			PrimaryColor:      "#7c3aed",
			SecondaryColor:    "#4c1d95",
			AccentColor:       "#06b6d4",
			HeaderBackground:  "linear-gradient(135deg, #ede9fe 0%, #cffafe 100%)",
			SectionBackground: "#ffffff",
			TaglineBackground: "rgba(255, 255, 255, 0.9)",
			InfoBackground:    "rgba(249, 250, 251, 0.9)",
			FooterBackground:  "linear-gradient(135deg, #4c1d95 0%, #111827 100%)",
			FooterTextColor:   "#f9fafb",
			HeroOverlay:       "linear-gradient(135deg, rgba(124, 58, 237, 0.15) 0%, rgba(6, 182, 212, 0.15) 100%)",
			TitleAnimation:    "animation: modernFadeUp 0.8s ease-out both;",
			TaglineAnimation:  "animation: modernFadeUp 1s ease-out both;",
			ImageAnimation:    "animation: modernFadeUp 1.2s ease-out both;",
			AdditionalCSS:     modernKeyframes,
		},
		dark: Style{
			FontImport:        poppinsSpaceImport,
			BodyFont:          "'Poppins', sans-serif",
			TitleFont:         "'Space Grotesk', sans-serif",
			BackgroundColor:   "#030712",
			TextColor:         "#e5e7eb",
			PrimaryColor:      "#a78bfa",
			SecondaryColor:    "#c4b5fd",
			AccentColor:       "#22d3ee",
			HeaderBackground:  "linear-gradient(135deg, #1e1b4b 0%, #083344 100%)",
			SectionBackground: "#111827",
			TaglineBackground: "rgba(17, 24, 39, 0.9)",
			InfoBackground:    "rgba(17, 24, 39, 0.85)",
			FooterBackground:  "linear-gradient(135deg, #1e1b4b 0%, #030712 100%)",
			FooterTextColor:   "#e5e7eb",
			HeroOverlay:       "linear-gradient(135deg, rgba(30, 27, 75, 0.4) 0%, rgba(8, 51, 68, 0.4) 100%)",
			TitleAnimation:    "animation: modernFadeUp 0.8s ease-out both;",
			TaglineAnimation:  "animation: modernFadeUp 1s ease-out both;",
			ImageAnimation:    "animation: modernFadeUp 1.2s ease-out both;",
			AdditionalCSS:     modernKeyframes,
		},
	},
	Rustic: {
		info: TemplateInfo{ID: Rustic, Name: "Rustic", Description: "Warm browns and bistro serif type"},
		light: Style{
			FontImport:        merriweatherImport,
			BodyFont:          "'Source Sans 3', sans-serif",
			TitleFont:         "'Merriweather', serif",
			BackgroundColor:   "#faf6f0",
			TextColor:         "#3f2a1d",
			PrimaryColor:      "#92400e",
			SecondaryColor:    "#78350f",
			AccentColor:       "#d97706",
			HeaderBackground:  "linear-gradient(135deg, #fef3c7 0%, #f5e6d3 100%)",
			SectionBackground: "linear-gradient(135deg, #f5e6d3 0%, #faf6f0 100%)",
			TaglineBackground: "rgba(254, 243, 199, 0.85)",
			InfoBackground:    "rgba(255, 251, 245, 0.9)",
			FooterBackground:  "linear-gradient(135deg, #78350f 0%, #451a03 100%)",
			FooterTextColor:   "#fef3c7",
			HeroOverlay:       "linear-gradient(45deg, rgba(120, 53, 15, 0.2) 0%, rgba(217, 119, 6, 0.1) 100%)",
			AdditionalCSS:     rusticTexture,
		},
		dark: Style{
			FontImport:        merriweatherImport,
			BodyFont:          "'Source Sans 3', sans-serif",
			TitleFont:         "'Merriweather', serif",
			BackgroundColor:   "#1c1410",
			TextColor:         "#f5e6d3",
			PrimaryColor:      "#f59e0b",
			SecondaryColor:    "#fbbf24",
			AccentColor:       "#b45309",
			HeaderBackground:  "linear-gradient(135deg, #292019 0%, #1c1410 100%)",
			SectionBackground: "linear-gradient(135deg, #1c1410 0%, #292019 100%)",
			TaglineBackground: "rgba(41, 32, 25, 0.9)",
			InfoBackground:    "rgba(41, 32, 25, 0.85)",
			FooterBackground:  "linear-gradient(135deg, #0f0a07 0%, #1c1410 100%)",
			FooterTextColor:   "#fbbf24",
			HeroOverlay:       "linear-gradient(45deg, rgba(28, 20, 16, 0.5) 0%, rgba(28, 20, 16, 0.2) 100%)",
			AdditionalCSS:     rusticTexture,
		},
	},
}
