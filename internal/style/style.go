// Package style resolves the CSS slot values a landing page is rendered with,
// either from a named template or from a free-text description.
package style

import "strings"

// Style is the set of slots the page stylesheet is built from. Every field is a
// raw CSS (or, for the import fields, HTML link) snippet.
type Style struct {
	FontImport        string `json:"font_import"`
	BodyFont          string `json:"body_font"`
	TitleFont         string `json:"title_font"`
	BackgroundColor   string `json:"background_color"`
	TextColor         string `json:"text_color"`
	PrimaryColor      string `json:"primary_color"`
	SecondaryColor    string `json:"secondary_color"`
	AccentColor       string `json:"accent_color"`
	HeaderBackground  string `json:"header_background"`
	SectionBackground string `json:"section_background"`
	TaglineBackground string `json:"tagline_background"`
	InfoBackground    string `json:"info_background"`
	FooterBackground  string `json:"footer_background"`
	FooterTextColor   string `json:"footer_text_color"`
	HeroOverlay       string `json:"hero_overlay"`
	TitleAnimation    string `json:"title_animation"`
	TaglineAnimation  string `json:"tagline_animation"`
	ImageAnimation    string `json:"image_animation"`
	SocialAnimation   string `json:"social_animation"`
	AdditionalCSS     string `json:"additional_css"`

	// Set only in AI mode.
	CustomFontImports string `json:"custom_font_imports"`
	CustomCSS         string `json:"custom_css"`
}

// Request selects how a Style is resolved. Template and DarkMode are ignored
// when AIEnabled is set; Customization is used only when it is.
type Request struct {
	Template      string `json:"template"`
	DarkMode      bool   `json:"dark_mode"`
	AIEnabled     bool   `json:"ai_enabled"`
	Customization string `json:"customization"`
}

// Resolve returns the style for a request. It never fails: unknown templates
// fall back to simple, and a description that matches nothing yields the base
// style with no custom CSS.
func Resolve(req Request) Style {
	if !req.AIEnabled {
		return ForTemplate(ParseTemplateID(req.Template), req.DarkMode)
	}

	st := Base()
	a := Analyze(req.Customization)
	st.CustomFontImports = a.FontImports
	st.CustomCSS = a.CSS
	return st
}

// Base is the style AI customization is layered over.
func Base() Style {
	return ForTemplate(Simple, false)
}

// Analysis is the outcome of running the keyword classifier over a description.
type Analysis struct {
	Palette     Palette  `json:"palette"`
	Rules       []string `json:"rules"`
	FontImports string   `json:"font_imports"`
	CSS         string   `json:"css"`
}

// Analyze runs the classifier. The palette is chosen by the first matching color
// group; every other rule group whose keywords appear appends its block, in a
// fixed order, so that later blocks win on conflicting properties.
func Analyze(description string) Analysis {
	a := Analysis{Palette: DefaultPalette(), Rules: []string{}}
	if strings.TrimSpace(description) == "" {
		return a
	}
	text := strings.ToLower(description)

	var css strings.Builder
	a.Palette = ResolvePalette(text)
	if a.Palette.Matched {
		css.WriteString(a.Palette.CSS())
	}
	for _, r := range additiveRules {
		if r.matches(text) {
			a.Rules = append(a.Rules, r.name)
			css.WriteString(r.css)
		}
	}
	if css.Len() > 0 {
		a.CSS = customHeader + css.String()
	}

	var imports strings.Builder
	for _, r := range fontImportRules {
		if r.matches(text) {
			imports.WriteString(r.css)
			imports.WriteByte('\n')
		}
	}
	a.FontImports = imports.String()
	return a
}

const customHeader = "\n/* AI customization: applied last so it wins over the template */\n"
