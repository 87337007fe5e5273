package geo

import (
	"errors"
	"net/url"
	"regexp"
	"strconv"

	"jadwalkajian/backend/internal/models"
)

// Indonesian archipelago bounding envelope. Coordinates outside it are
// extraction noise, not data.
const (
	MinLat = -11.0
	MaxLat = 6.0
	MinLng = 95.0
	MaxLng = 141.0
)

// Extraction failures as surfaced in batch reports. Both are expected
// conditions, not faults: a batch run records them per item and moves on.
var (
	ErrNoMatch     = errors.New("could not extract coordinates from URL")
	ErrOutOfBounds = errors.New("invalid coordinates (out of bounds)")
)

// coordPattern is one step of the extraction cascade. Patterns are tried in
// declaration order and the first structural match decides the outcome.
type coordPattern struct {
	name     string
	re       *regexp.Regexp
	fallback bool
}

var coordPatterns = []coordPattern{
	{name: "query_q", re: regexp.MustCompile(`[?&]q=(-?\d{1,3}\.\d+)\s*,\s*(-?\d{1,3}\.\d+)`)},
	{name: "at_segment", re: regexp.MustCompile(`@(-?\d{1,3}\.\d+),(-?\d{1,3}\.\d+)`)},
	{name: "place_at", re: regexp.MustCompile(`/place/[^/]+/@(-?\d{1,3}\.\d+),(-?\d{1,3}\.\d+)`)},
	{name: "query_ll", re: regexp.MustCompile(`[?&]ll=(-?\d{1,3}\.\d+)\s*,\s*(-?\d{1,3}\.\d+)`)},
	{name: "dir_segment", re: regexp.MustCompile(`/maps/dir//(-?\d{1,3}\.\d+),(-?\d{1,3}\.\d+)`)},
	// The bare pair is the least specific shape; candidates count only when
	// they land inside the envelope, so noise like zoom levels is skipped.
	{name: "bare_pair", re: regexp.MustCompile(`(-?\d{1,2}\.\d{4,})\s*,\s*(-?\d{1,3}\.\d{4,})`), fallback: true},
	{name: "proto_3d4d", re: regexp.MustCompile(`!3d(-?\d{1,3}\.\d+).*?!4d(-?\d{1,3}\.\d+)`)},
}

// InEnvelope reports whether the pair sits inside the Indonesian bounding box.
func InEnvelope(lat, lng float64) bool {
	return lat >= MinLat && lat <= MaxLat && lng >= MinLng && lng <= MaxLng
}

// ExtractCoordinates runs the ordered pattern cascade over a (possibly
// shortened-then-expanded) map URL. Every successful extraction is checked
// against the envelope; a structural match outside it returns ErrOutOfBounds.
func ExtractCoordinates(rawURL string) (models.Coordinates, error) {
	if rawURL == "" {
		return models.Coordinates{}, ErrNoMatch
	}
	decoded := rawURL
	if unescaped, err := url.QueryUnescape(rawURL); err == nil {
		decoded = unescaped
	}

	for _, p := range coordPatterns {
		if p.fallback {
			for _, m := range p.re.FindAllStringSubmatch(decoded, -1) {
				if c, ok := parsePair(m[1], m[2]); ok && InEnvelope(c.Lat, c.Lng) {
					return c, nil
				}
			}
			continue
		}
		m := p.re.FindStringSubmatch(decoded)
		if m == nil {
			continue
		}
		c, ok := parsePair(m[1], m[2])
		if !ok {
			return models.Coordinates{}, ErrNoMatch
		}
		if !InEnvelope(c.Lat, c.Lng) {
			return models.Coordinates{}, ErrOutOfBounds
		}
		return c, nil
	}
	return models.Coordinates{}, ErrNoMatch
}

func parsePair(latStr, lngStr string) (models.Coordinates, bool) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: lat, Lng: lng}, true
}
