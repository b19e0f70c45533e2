// Package page assembles the standalone landing page HTML from a restaurant
// record and a resolved style. Rendering is pure and never fails: every
// optional field has a defined empty rendering.
package page

import (
	"fmt"
	"html"
	"strings"
	"text/template"

	"github.com/easylandingweb/easylanding/internal/restaurant"
	"github.com/easylandingweb/easylanding/internal/style"
)

// Filename is the suggested name for a downloaded or published page.
const Filename = "index.html"

// Options tunes rendering.
type Options struct {
	// StrictURLs drops URL values that could break out of their attribute or
	// use a scheme other than http, https, mailto or tel. Off, URLs are
	// inserted exactly as typed.
	StrictURLs bool
}

var pageTmpl = template.Must(template.New("page").Parse(skeleton))

type socialView struct {
	URL   string
	Class string
	Icon  string
	Name  string
}

type view struct {
	Name        string
	Tagline     string
	BannerURL   string
	Address     string
	Phone       string
	Hours       string
	Images      []string
	MapURL      string
	Socials     []socialView
	FontImports string
	Style       style.Style
}

// RequestFor builds the style request described by a record's style fields.
func RequestFor(rec restaurant.Record) style.Request {
	return style.Request{
		Template:      rec.Template,
		DarkMode:      rec.DarkMode,
		AIEnabled:     rec.AIEnabled,
		Customization: rec.Customization,
	}
}

// Generate resolves the record's style and renders it.
func Generate(rec restaurant.Record, opts Options) string {
	return Render(rec, style.Resolve(RequestFor(rec)), opts)
}

// Render produces the complete HTML document for rec using st.
func Render(rec restaurant.Record, st style.Style, opts Options) string {
	v := view{
		Name:        Escape(rec.Name),
		Tagline:     Escape(rec.Tagline),
		Address:     textBlock(rec.Address),
		Phone:       Escape(rec.Phone),
		Hours:       textBlock(rec.OpeningHours),
		BannerURL:   rec.BannerURL,
		FontImports: indentLines(strings.TrimSpace(st.CustomFontImports), "  "),
		Style:       st,
	}
	if opts.StrictURLs && !SafeURL(v.BannerURL) {
		v.BannerURL = ""
	}

	for _, img := range rec.GalleryImages() {
		if opts.StrictURLs && !SafeURL(img) {
			continue
		}
		v.Images = append(v.Images, img)
	}

	if rec.HasMap() && (!opts.StrictURLs || SafeURL(rec.MapEmbedURL)) {
		v.MapURL = rec.MapEmbedURL
	}

	for _, s := range rec.ActiveSocials() {
		if opts.StrictURLs && !SafeURL(s.URL) {
			continue
		}
		v.Socials = append(v.Socials, socialView{
			URL:   s.URL,
			Class: SocialClass(s.Name),
			Icon:  Icon(s.Name),
			Name:  Escape(s.Name),
		})
	}

	var b strings.Builder
	if err := pageTmpl.Execute(&b, v); err != nil {
		// The template is fixed and the view holds only strings.
		panic(fmt.Sprintf("page: executing template: %v", err))
	}
	return b.String()
}

// Escape replaces the characters that are significant in HTML text and
// attribute values (& < > " ') with entities.
func Escape(s string) string {
	return html.EscapeString(s)
}

// textBlock escapes a multi-line value and turns its line breaks into <br>.
func textBlock(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(Escape(s), "\n", "<br>")
}

func indentLines(s, prefix string) string {
	return strings.ReplaceAll(s, "\n", "\n"+prefix)
}
