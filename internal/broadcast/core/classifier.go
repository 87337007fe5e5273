package core

import (
	"strings"

	"jadwalkajian/backend/internal/models"
)

// Classifier decides which grammar applies to a raw broadcast and dispatches
// to it. When neither grammar's triggers are present the broadcast is left
// alone: an empty result, never a guess.
type Classifier struct {
	grammars map[Format]Grammar
}

// NewClassifier creates classifier.
func NewClassifier(grammars map[Format]Grammar) *Classifier {
	cloned := make(map[Format]Grammar, len(grammars))
	for k, v := range grammars {
		cloned[k] = v
	}
	return &Classifier{grammars: cloned}
}

// Detect inspects the raw text for grammar triggers. Rekapan markers win over
// dauroh keywords because a rekapan topic line routinely mentions "dauroh".
func (c *Classifier) Detect(text string) Format {
	if strings.TrimSpace(text) == "" {
		return FormatUnknown
	}
	if strings.Contains(text, VenueMarker) {
		return FormatRekapan
	}
	lower := strings.ToLower(text)
	for _, kw := range daurohKeywords {
		if strings.Contains(lower, kw) {
			return FormatDauroh
		}
	}
	// A date header plus a pin glyph without venue markers still reads as a
	// single-event announcement.
	hasDate := false
	hasPin := false
	for _, line := range strings.Split(text, "\n") {
		if IsDateHeaderLine(line) {
			hasDate = true
		}
		if IsCityHeaderLine(line) {
			hasPin = true
		}
	}
	if hasDate && hasPin {
		return FormatDauroh
	}
	return FormatUnknown
}

// Parse classifies and parses the broadcast. Unrecognized formats yield an
// empty slice.
func (c *Classifier) Parse(text string) []models.ScheduleEntry {
	if c == nil {
		return nil
	}
	format := c.Detect(text)
	grammar := c.grammars[format]
	if grammar == nil {
		return []models.ScheduleEntry{}
	}
	entries := grammar.Parse(text)
	if entries == nil {
		return []models.ScheduleEntry{}
	}
	return entries
}
