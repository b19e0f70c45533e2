package style

import (
	"strings"
	"testing"
)

func TestResolvePaletteFirstMatchWins(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"rouge et bleu", "red"},
		{"bleu et rouge", "red"},
		{"couleurs chaudes", "red"},
		{"un orange vif", "orange"},
		{"touches de jaune", "yellow"},
		{"vert et violet", "green"},
		{"couleurs froides", "blue"},
		{"purple", "violet"},
		{"rose poudré", "pink"},
		{"ambiance nocturne", "dark"},
		{"cuisine italienne", "mediterranean"},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			p := ResolvePalette(tt.text)
			if !p.Matched {
				t.Fatalf("ResolvePalette(%q) did not match", tt.text)
			}
			if p.Name != tt.want {
				t.Errorf("ResolvePalette(%q) = %s, want %s", tt.text, p.Name, tt.want)
			}
		})
	}
}

func TestResolvePaletteNoMatch(t *testing.T) {
	p := ResolvePalette("une page toute belle")
	if p.Matched {
		t.Errorf("expected no match, got %s", p.Name)
	}
	if p != DefaultPalette() {
		t.Errorf("unmatched palette = %+v, want default", p)
	}
}

func TestAnalyzeColorsAndWarmMood(t *testing.T) {
	a := Analyze("Je veux des couleurs chaudes comme le rouge et une ambiance chaleureuse")

	if a.Palette.Name != "red" {
		t.Errorf("palette = %s, want red", a.Palette.Name)
	}
	if len(a.Rules) != 1 || a.Rules[0] != "warm" {
		t.Errorf("rules = %v, want [warm]", a.Rules)
	}
	if !strings.Contains(a.CSS, "--ai-primary: #dc2626;") {
		t.Error("palette block missing red primary")
	}
	if strings.Contains(a.CSS, "#2563eb") {
		t.Error("blue palette leaked into CSS")
	}
	if !strings.Contains(a.CSS, "/* Warm */") {
		t.Error("warm block missing")
	}
	if strings.Index(a.CSS, ":root") > strings.Index(a.CSS, "/* Warm */") {
		t.Error("palette block should precede mood blocks")
	}
}

func TestAnalyzeEmptyAndUnmatched(t *testing.T) {
	for _, text := range []string{"", "   ", "une page toute belle"} {
		a := Analyze(text)
		if a.CSS != "" {
			t.Errorf("Analyze(%q).CSS = %q, want empty", text, a.CSS)
		}
		if a.FontImports != "" {
			t.Errorf("Analyze(%q).FontImports = %q, want empty", text, a.FontImports)
		}
		if len(a.Rules) != 0 {
			t.Errorf("Analyze(%q).Rules = %v, want none", text, a.Rules)
		}
	}
}

func TestAnalyzeMoodWithoutPalette(t *testing.T) {
	a := Analyze("Un style élégant")
	if a.Palette.Matched {
		t.Errorf("palette matched %s, want none", a.Palette.Name)
	}
	if strings.Contains(a.CSS, ":root") {
		t.Error("palette block should be omitted when no color matched")
	}
	if !strings.HasPrefix(a.CSS, customHeader) {
		t.Error("custom CSS should start with the header comment")
	}
	if !strings.Contains(a.CSS, "'Cormorant Garamond', 'Cinzel', serif !important") {
		t.Error("elegant block missing")
	}
}

func TestAnalyzeAdditiveOrder(t *testing.T) {
	a := Analyze("Minimaliste mais moderne, avec une écriture manuscrite et des animations")

	want := []string{"handwriting", "animation", "modern", "minimalist"}
	if strings.Join(a.Rules, ",") != strings.Join(want, ",") {
		t.Fatalf("rules = %v, want %v", a.Rules, want)
	}
	last := -1
	for _, marker := range []string{"/* Handwriting */", "/* Animations */", "/* Modern */", "/* Minimalist */"} {
		i := strings.Index(a.CSS, marker)
		if i < 0 {
			t.Fatalf("missing %s", marker)
		}
		if i < last {
			t.Errorf("%s emitted out of order", marker)
		}
		last = i
	}
}

func TestAnalyzeGoldTriggersPaletteAndGlow(t *testing.T) {
	a := Analyze("détails dorés")
	if a.Palette.Name != "yellow" {
		t.Errorf("palette = %s, want yellow", a.Palette.Name)
	}
	if !strings.Contains(a.CSS, "/* Golden */") {
		t.Error("golden block missing")
	}
}

func TestAnalyzeFontImportOrder(t *testing.T) {
	a := Analyze("Futuriste, luxe et manuscrit")

	hand := strings.Index(a.FontImports, "Dancing+Script")
	elegant := strings.Index(a.FontImports, "Cinzel")
	modern := strings.Index(a.FontImports, "Orbitron")
	if hand < 0 || elegant < 0 || modern < 0 {
		t.Fatalf("missing imports: %s", a.FontImports)
	}
	if !(hand < elegant && elegant < modern) {
		t.Errorf("imports out of order: handwriting=%d elegant=%d modern=%d", hand, elegant, modern)
	}
	if n := strings.Count(a.FontImports, "<link "); n != 3 {
		t.Errorf("got %d link tags, want 3", n)
	}
}

func TestAnalyzeChicHasNoFontImport(t *testing.T) {
	// chic fires the elegant CSS block but only élégant/luxe pull the fonts.
	a := Analyze("chic")
	if a.FontImports != "" {
		t.Errorf("FontImports = %q, want empty", a.FontImports)
	}
	if !strings.Contains(a.CSS, "/* Elegant */") {
		t.Error("elegant block missing")
	}
}

func TestAnalyzeIsCaseInsensitive(t *testing.T) {
	if got := Analyze("ROUGE ÉLÉGANT").Palette.Name; got != "red" {
		t.Errorf("palette = %s, want red", got)
	}
	if rules := Analyze("ROUGE ÉLÉGANT").Rules; len(rules) != 1 || rules[0] != "elegant" {
		t.Errorf("rules = %v, want [elegant]", rules)
	}
}

func TestResolveTemplateMode(t *testing.T) {
	light := Resolve(Request{Template: "modern"})
	dark := Resolve(Request{Template: "modern", DarkMode: true})

	if light != ForTemplate(Modern, false) {
		t.Error("light modern mismatch")
	}
	if dark != ForTemplate(Modern, true) {
		t.Error("dark modern mismatch")
	}
	if light.BackgroundColor == dark.BackgroundColor {
		t.Error("dark variant should change the background")
	}
	if light.CustomCSS != "" || light.CustomFontImports != "" {
		t.Error("template mode must not carry custom CSS")
	}
}

func TestResolveTemplateModeIgnoresCustomization(t *testing.T) {
	st := Resolve(Request{Template: "simple", Customization: "rouge animé"})
	if st.CustomCSS != "" {
		t.Error("customization applied without AI mode")
	}
}

func TestResolveUnknownTemplateFallsBack(t *testing.T) {
	for _, id := range []string{"", "fancy", "  SIMPLE "} {
		if got := Resolve(Request{Template: id}); got != ForTemplate(Simple, false) {
			t.Errorf("Resolve(%q) did not fall back to simple", id)
		}
	}
	if ForTemplate(TemplateID("nope"), true) != ForTemplate(Simple, true) {
		t.Error("ForTemplate should fall back to simple")
	}
}

func TestResolveAIModeUsesBase(t *testing.T) {
	st := Resolve(Request{Template: "rustic", DarkMode: true, AIEnabled: true})
	if st != Base() {
		t.Error("AI mode with empty description should equal the base style")
	}

	st = Resolve(Request{AIEnabled: true, Customization: "dynamique et moderne"})
	if st.BackgroundColor != Base().BackgroundColor {
		t.Error("AI mode should keep base slots")
	}
	if !strings.Contains(st.CustomCSS, "aiGlow") {
		t.Error("animation block missing")
	}
	if !strings.Contains(st.CustomFontImports, "Orbitron") {
		t.Error("modern font import missing")
	}
}

func TestResolveDeterministic(t *testing.T) {
	req := Request{AIEnabled: true, Customization: "Rouge, élégant, manuscrit, doré et minimaliste"}
	first := Resolve(req)
	for i := 0; i < 5; i++ {
		if Resolve(req) != first {
			t.Fatal("Resolve is not deterministic")
		}
	}
}

func TestTemplatesComplete(t *testing.T) {
	infos := Templates()
	if len(infos) != 4 || infos[0].ID != Simple {
		t.Fatalf("Templates() = %v", infos)
	}
	for _, info := range infos {
		if !IsTemplate(string(info.ID)) {
			t.Errorf("%s not recognised", info.ID)
		}
		for _, dark := range []bool{false, true} {
			st := ForTemplate(info.ID, dark)
			slots := map[string]string{
				"FontImport":        st.FontImport,
				"BodyFont":          st.BodyFont,
				"TitleFont":         st.TitleFont,
				"BackgroundColor":   st.BackgroundColor,
				"TextColor":         st.TextColor,
				"PrimaryColor":      st.PrimaryColor,
				"SecondaryColor":    st.SecondaryColor,
				"AccentColor":       st.AccentColor,
				"HeaderBackground":  st.HeaderBackground,
				"SectionBackground": st.SectionBackground,
				"TaglineBackground": st.TaglineBackground,
				"InfoBackground":    st.InfoBackground,
				"FooterBackground":  st.FooterBackground,
				"FooterTextColor":   st.FooterTextColor,
				"HeroOverlay":       st.HeroOverlay,
			}
			for name, v := range slots {
				if v == "" {
					t.Errorf("%s (dark=%v): %s is empty", info.ID, dark, name)
				}
			}
		}
	}
}

func TestPaletteCSSUsesHexAlpha(t *testing.T) {
	css := ResolvePalette("vert").CSS()
	if !strings.Contains(css, "text-shadow: 0 2px 8px #16a34a40 !important;") {
		t.Errorf("expected hex alpha shadow in:\n%s", css)
	}
	if strings.Contains(css, "var(--ai-primary)40") {
		t.Error("alpha suffix must not follow a var() reference")
	}
}

func TestListings(t *testing.T) {
	if names := PaletteNames(); names[0] != "red" || names[len(names)-1] != "mediterranean" {
		t.Errorf("PaletteNames() = %v", names)
	}
	rules := Rules()
	if len(rules) != 7 || rules[0].Name != "handwriting" || rules[6].Name != "minimalist" {
		t.Errorf("Rules() = %v", rules)
	}
	if len(PaletteKeywords()) != len(PaletteNames()) {
		t.Error("PaletteKeywords and PaletteNames disagree")
	}
}
