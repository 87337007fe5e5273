package extract

import (
	"regexp"
	"strings"
)

var urlRE = regexp.MustCompile(`https?://[^\s<>"]+`)

// Map-link hosts seen in broadcasts, including the short forms that need
// redirect expansion before coordinates can be read.
var mapLinkDomains = []string{
	"maps.google",
	"google.com/maps",
	"goo.gl/maps",
	"maps.app.goo.gl",
	"gmap",
}

// FindURL returns the first URL-shaped token in the line, stripped of
// trailing punctuation, or "".
func FindURL(line string) string {
	raw := urlRE.FindString(line)
	if raw == "" {
		return ""
	}
	return strings.TrimSpace(strings.Trim(raw, ".,);]"))
}

// IsMapLink reports whether the line mentions a known map-link domain.
func IsMapLink(line string) bool {
	lower := strings.ToLower(line)
	for _, domain := range mapLinkDomains {
		if strings.Contains(lower, domain) {
			return true
		}
	}
	return false
}
