package core

import (
	"strings"

	"jadwalkajian/backend/internal/models"
)

// Format identifies which segmentation grammar applies to a broadcast.
type Format string

const (
	FormatRekapan Format = "rekapan"
	FormatDauroh  Format = "dauroh"
	FormatUnknown Format = "unknown"
)

// Grammar parses one classified broadcast into schedule entries. Parsing is
// pure and never fails on malformed input: unrecognized text yields an empty
// slice.
type Grammar interface {
	Parse(text string) []models.ScheduleEntry
}

// VenueMarker is the glyph conventionally prefixing a venue name line.
const VenueMarker = "🕌"

// Leading glyphs of a date-header line.
var DateHeaderGlyphs = []string{"🗓️", "🗓", "📆", "📅", "▶️", "▶", "➡️", "➡", "⏩"}

// Leading glyphs of a city/section header line.
var CityHeaderGlyphs = []string{"📍", "🌐", "🏙️", "🏙"}

// Indonesian day names, including the spellings broadcasts actually use.
var DayNames = []string{"senin", "selasa", "rabu", "kamis", "jumat", "jum'at", "jum’at", "sabtu", "ahad", "minggu"}

// Keywords that cue the single-event dauroh/seminar grammar.
var daurohKeywords = []string{"dauroh", "daurah", "seminar", "tabligh akbar", "kajian akbar", "bedah buku"}

// HasDayNamePrefix reports whether the line starts with an Indonesian day
// name, ignoring leading decoration.
func HasDayNamePrefix(line string) bool {
	lower := strings.ToLower(strings.TrimLeft(line, " \t*_~-•●○◦▪️"))
	for _, day := range DayNames {
		if strings.HasPrefix(lower, day) {
			return true
		}
	}
	return false
}

// IsDateHeaderLine reports whether the line is led by a calendar/arrow glyph
// or begins with a day name.
func IsDateHeaderLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t*_~")
	for _, glyph := range DateHeaderGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	return HasDayNamePrefix(line)
}

// IsCityHeaderLine reports whether the line marks a city/region section.
func IsCityHeaderLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t*_~")
	for _, glyph := range CityHeaderGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	lower := strings.ToLower(trimmed)
	return strings.HasPrefix(lower, "kota ") || strings.HasPrefix(lower, "kabupaten ") || strings.HasPrefix(lower, "wilayah ")
}
