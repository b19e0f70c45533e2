// Package form fills a restaurant record interactively, one prompt per field.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/easylandingweb/easylanding/internal/page"
	"github.com/easylandingweb/easylanding/internal/restaurant"
	"github.com/easylandingweb/easylanding/internal/style"
)

// Asker is the prompt surface the form needs.
type Asker interface {
	// Ask reads one line of text, offering def as the default.
	Ask(label, def string) (string, error)
	// Choose returns the index of the selected item.
	Choose(label string, items []string, cursor int) (int, error)
}

// ErrAborted is returned when the user interrupts the form.
var ErrAborted = errors.New("form aborted")

// Terminal asks through promptui.
type Terminal struct{}

func (Terminal) Ask(label, def string) (string, error) {
	p := promptui.Prompt{Label: label, Default: def, AllowEdit: true}
	v, err := p.Run()
	return v, wrapPromptErr(err)
}

func (Terminal) Choose(label string, items []string, cursor int) (int, error) {
	s := promptui.Select{Label: label, Items: items, CursorPos: cursor, Size: len(items)}
	idx, _, err := s.Run()
	return idx, wrapPromptErr(err)
}

func wrapPromptErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrAborted
	}
	return err
}

const (
	otherNetwork = "Other..."
	doneItem     = "Done"
)

// Fill walks through every field of rec and returns the edited copy. Multi-line
// fields are typed on one line with \n escapes.
func Fill(a Asker, rec restaurant.Record) (restaurant.Record, error) {
	var err error
	text := func(label string, dst *string) {
		if err == nil {
			*dst, err = a.Ask(label, *dst)
		}
	}
	multiline := func(label string, dst *string) {
		if err != nil {
			return
		}
		var v string
		v, err = a.Ask(label+` (use \n for new lines)`, EscapeLines(*dst))
		*dst = UnescapeLines(v)
	}

	text("Restaurant name", &rec.Name)
	multiline("Tagline", &rec.Tagline)
	text("Banner image URL", &rec.BannerURL)
	if err != nil {
		return rec, err
	}

	if rec.Images, err = fillImages(a, rec.Images); err != nil {
		return rec, err
	}

	multiline("Address", &rec.Address)
	text("Google Maps embed URL", &rec.MapEmbedURL)
	text("Phone", &rec.Phone)
	multiline("Opening hours", &rec.OpeningHours)
	if err != nil {
		return rec, err
	}

	if rec.Socials, err = fillSocials(a, rec.Socials); err != nil {
		return rec, err
	}

	return fillStyle(a, rec)
}

func fillImages(a Asker, images []string) ([]string, error) {
	existing := restaurant.Record{Images: images}.GalleryImages()
	kept, err := keepExisting(a, "images", len(existing))
	if err != nil {
		return nil, err
	}
	out := []string{}
	if kept {
		out = append(out, existing...)
	}
	for {
		v, err := a.Ask(fmt.Sprintf("Gallery image URL #%d (blank to finish)", len(out)+1), "")
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(v) == "" {
			return out, nil
		}
		out = append(out, strings.TrimSpace(v))
	}
}

func fillSocials(a Asker, socials []restaurant.SocialLink) ([]restaurant.SocialLink, error) {
	active := restaurant.Record{Socials: socials}.ActiveSocials()
	kept, err := keepExisting(a, "social links", len(active))
	if err != nil {
		return nil, err
	}
	out := []restaurant.SocialLink{}
	if kept {
		out = append(out, active...)
	}

	items := append(append([]string{}, page.SocialPlatforms...), otherNetwork, doneItem)
	for {
		idx, err := a.Choose(fmt.Sprintf("Social network #%d", len(out)+1), items, len(items)-1)
		if err != nil {
			return nil, err
		}
		name := items[idx]
		switch name {
		case doneItem:
			return out, nil
		case otherNetwork:
			if name, err = a.Ask("Network name", ""); err != nil {
				return nil, err
			}
		}
		url, err := a.Ask(name+" URL", "")
		if err != nil {
			return nil, err
		}
		link := restaurant.SocialLink{Name: strings.TrimSpace(name), URL: strings.TrimSpace(url)}
		if link.Name != "" && link.URL != "" {
			out = append(out, link)
		}
	}
}

func keepExisting(a Asker, what string, n int) (bool, error) {
	if n == 0 {
		return false, nil
	}
	idx, err := a.Choose(fmt.Sprintf("Keep the %d existing %s?", n, what), []string{"Keep", "Replace"}, 0)
	return idx == 0, err
}

func fillStyle(a Asker, rec restaurant.Record) (restaurant.Record, error) {
	modes := []string{"Template", "AI customization (describe the mood)"}
	cursor := 0
	if rec.AIEnabled {
		cursor = 1
	}
	idx, err := a.Choose("Styling", modes, cursor)
	if err != nil {
		return rec, err
	}
	rec.AIEnabled = idx == 1

	if rec.AIEnabled {
		rec.Customization, err = a.Ask("Describe the look (colors, mood, fonts)", rec.Customization)
		return rec, err
	}

	infos := style.Templates()
	items := make([]string, len(infos))
	current := style.ParseTemplateID(rec.Template)
	cursor = 0
	for i, t := range infos {
		items[i] = fmt.Sprintf("%-8s %s", t.ID, t.Description)
		if t.ID == current {
			cursor = i
		}
	}
	if idx, err = a.Choose("Template", items, cursor); err != nil {
		return rec, err
	}
	rec.Template = string(infos[idx].ID)

	themeCursor := 0
	if rec.DarkMode {
		themeCursor = 1
	}
	if idx, err = a.Choose("Theme", []string{"Light", "Dark"}, themeCursor); err != nil {
		return rec, err
	}
	rec.DarkMode = idx == 1
	return rec, nil
}

// EscapeLines turns line breaks into literal \n so a value fits on one line.
func EscapeLines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\n", `\n`)
}

// UnescapeLines is the inverse of EscapeLines.
func UnescapeLines(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
