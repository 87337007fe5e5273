package grammars

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"jadwalkajian/backend/internal/broadcast/core"
	"jadwalkajian/backend/internal/broadcast/extract"
	"jadwalkajian/backend/internal/models"
)

var venueLabelRE = regexp.MustCompile(`(?i)^[^a-z0-9]*(?:tempat|lokasi|bertempat di)\s*[:：]?\s*(.*)$`)

// DaurohGrammar parses a standalone seminar/intensive-course announcement.
// Unlike a rekapan there is one event per broadcast, cued by calendar and pin
// glyphs rather than repeated venue markers.
type DaurohGrammar struct{}

// NewDaurohGrammar creates dauroh grammar.
func NewDaurohGrammar() *DaurohGrammar {
	return &DaurohGrammar{}
}

// Parse implements core.Grammar.
func (g *DaurohGrammar) Parse(text string) []models.ScheduleEntry {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	ctx := &parseContext{}
	entry := models.ScheduleEntry{}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if idx := strings.LastIndex(line, core.VenueMarker); idx >= 0 && entry.VenueName == "" {
			entry.VenueName = line[idx+len(core.VenueMarker):]
			continue
		}
		if m := venueLabelRE.FindStringSubmatch(line); m != nil {
			if entry.VenueName == "" {
				entry.VenueName = m[1]
			} else {
				entry.Address = joinAddress(entry.Address, m[1])
			}
			continue
		}
		if core.IsDateHeaderLine(line) && ctx.currentDate == "" {
			if span := extract.NormalizeValue(line); utf8.RuneCountInString(span) >= minHeaderSpan {
				ctx.currentDate = span
				continue
			}
		}
		if kind, value, ok := extract.MatchLabel(line); ok {
			switch kind {
			case extract.FieldSpeaker:
				entry.Speaker = value
			case extract.FieldTopic:
				entry.Topic = value
			case extract.FieldTime:
				entry.Time = value
			case extract.FieldContact:
				entry.Contact = value
			case extract.FieldMapURL:
				entry.MapURL = mapURLFromLine(line, value)
			}
			continue
		}
		if extract.IsMapLink(line) {
			entry.MapURL = mapURLFromLine(line, line)
			continue
		}
		if u := extract.FindURL(line); u != "" {
			if entry.InfoLink == "" {
				entry.InfoLink = u
			}
			continue
		}
		if isPinLine(line) {
			value := extract.NormalizeValue(line)
			if entry.VenueName == "" {
				entry.VenueName = value
			} else {
				entry.Address = joinAddress(entry.Address, value)
			}
			continue
		}
		if entry.Topic == "" {
			// The headline of the announcement doubles as the topic.
			entry.Topic = trimmed
		}
	}

	finalized, ok := finalizeEntry(entry, ctx)
	if !ok {
		return []models.ScheduleEntry{}
	}
	return []models.ScheduleEntry{finalized}
}

func isPinLine(line string) bool {
	trimmed := strings.TrimLeft(line, " \t*_~")
	for _, glyph := range core.CityHeaderGlyphs {
		if strings.HasPrefix(trimmed, glyph) {
			return true
		}
	}
	return false
}

func joinAddress(existing, addition string) string {
	addition = strings.TrimSpace(addition)
	if addition == "" {
		return existing
	}
	if existing == "" {
		return addition
	}
	return existing + ", " + addition
}
