package page

import (
	"net/url"
	"strings"
)

var allowedSchemes = map[string]bool{
	"http":   true,
	"https":  true,
	"mailto": true,
	"tel":    true,
}

// SafeURL reports whether u can be inserted into an attribute or a CSS url('')
// without escaping its quoting, and uses an allowed scheme. Relative URLs are
// accepted.
func SafeURL(u string) bool {
	u = strings.TrimSpace(u)
	if u == "" {
		return false
	}
	if strings.ContainsAny(u, "\"'<>\\` ") {
		return false
	}
	parsed, err := url.Parse(u)
	if err != nil {
		return false
	}
	if parsed.Scheme == "" {
		return true
	}
	return allowedSchemes[strings.ToLower(parsed.Scheme)]
}
