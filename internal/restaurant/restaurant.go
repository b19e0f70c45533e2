// Package restaurant defines the form record a landing page is generated from.
// JSON keys follow the EasyLandingWeb form export format, so files exported
// from the browser form load unchanged.
package restaurant

import (
	"strconv"
	"strings"
)

// DefaultTemplate is the template id used when a record names none.
const DefaultTemplate = "simple"

// SocialLink is one entry of the social banner.
type SocialLink struct {
	Name string `json:"nom" yaml:"nom"`
	URL  string `json:"url" yaml:"url"`
}

// Record holds everything the owner typed into the form. The generator never
// mutates it.
type Record struct {
	Name         string       `json:"nom" yaml:"nom"`
	Tagline      string       `json:"accroche" yaml:"accroche"`
	BannerURL    string       `json:"banniere_url" yaml:"banniere_url"`
	Images       []string     `json:"images" yaml:"images"`
	Address      string       `json:"adresse" yaml:"adresse"`
	MapEmbedURL  string       `json:"maps_url" yaml:"maps_url"`
	Phone        string       `json:"telephone" yaml:"telephone"`
	OpeningHours string       `json:"horaires" yaml:"horaires"`
	Socials      []SocialLink `json:"socials" yaml:"socials"`

	Template      string `json:"template" yaml:"template"`
	DarkMode      bool   `json:"darkMode" yaml:"darkMode"`
	Customization string `json:"customization" yaml:"customization"`
	AIEnabled     bool   `json:"aiCustomizationEnabled" yaml:"aiCustomizationEnabled"`
}

// New returns an empty record with the default template selected.
func New() Record {
	return Record{
		Images:   []string{},
		Socials:  []SocialLink{},
		Template: DefaultTemplate,
	}
}

// GalleryImages returns the image URLs that are not blank, in their original order.
func (r Record) GalleryImages() []string {
	out := make([]string, 0, len(r.Images))
	for _, img := range r.Images {
		if strings.TrimSpace(img) == "" {
			continue
		}
		out = append(out, img)
	}
	return out
}

// ActiveSocials returns the social entries that have both a name and a URL.
func (r Record) ActiveSocials() []SocialLink {
	out := make([]SocialLink, 0, len(r.Socials))
	for _, s := range r.Socials {
		if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.URL) == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// HasMap reports whether the map section should be rendered.
func (r Record) HasMap() bool {
	return strings.TrimSpace(r.MapEmbedURL) != ""
}

// Warnings lists soft problems with the record. None of them stop generation;
// they are shown to the user so a half-filled form can still be previewed.
func (r Record) Warnings() []string {
	var warnings []string
	if strings.TrimSpace(r.Name) == "" {
		warnings = append(warnings, "restaurant name is empty")
	}
	if strings.TrimSpace(r.BannerURL) == "" {
		warnings = append(warnings, "no banner image: the hero section will be blank")
	}
	if len(r.GalleryImages()) == 0 {
		warnings = append(warnings, "gallery has no images")
	}
	if r.AIEnabled && strings.TrimSpace(r.Customization) == "" {
		warnings = append(warnings, "AI customization is enabled but the description is empty")
	}
	if dropped := len(r.Images) - len(r.GalleryImages()); dropped > 0 {
		warnings = append(warnings, pluralize(dropped, "blank image entry", "blank image entries")+" will be skipped")
	}
	if dropped := len(r.Socials) - len(r.ActiveSocials()); dropped > 0 {
		warnings = append(warnings, pluralize(dropped, "incomplete social link", "incomplete social links")+" will be skipped")
	}
	return warnings
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return "1 " + one
	}
	return strconv.Itoa(n) + " " + many
}
