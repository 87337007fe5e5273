package grammars

import (
	"strings"
	"unicode/utf8"

	"jadwalkajian/backend/internal/broadcast/core"
	"jadwalkajian/backend/internal/broadcast/extract"
	"jadwalkajian/backend/internal/models"
)

type parserState int

const (
	stateScanning parserState = iota
	stateEntryOpen
)

const (
	// Header scan depth: headers sit at the top of a rekapan, entries below.
	headerScanLimit = 30
	// A header capture shorter than this is a lone glyph, not a header.
	minHeaderSpan = 4
)

// parseContext is the mutable per-call parse state. It lives for one Parse
// call only, so independent broadcasts parse concurrently without locking.
type parseContext struct {
	currentDate string
	currentCity string
}

// RekapanGrammar walks the line sequence of a multi-venue "rekapan" broadcast.
// Broadcasts are hand-typed and wildly inconsistent, so the machine is
// permissive by default: unknown lines fold into the address, and recovery
// happens at the venue marker and terminator anchors.
type RekapanGrammar struct{}

// NewRekapanGrammar creates rekapan grammar.
func NewRekapanGrammar() *RekapanGrammar {
	return &RekapanGrammar{}
}

// Parse implements core.Grammar.
func (g *RekapanGrammar) Parse(text string) []models.ScheduleEntry {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	ctx := &parseContext{}
	scanHeaders(lines, ctx)

	out := make([]models.ScheduleEntry, 0)
	state := stateScanning
	var open *models.ScheduleEntry

	finalize := func() {
		if open != nil {
			if entry, ok := finalizeEntry(*open, ctx); ok {
				out = append(out, entry)
			}
		}
		open = nil
		state = stateScanning
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isTerminator(trimmed) {
			finalize()
			continue
		}

		if idx := strings.LastIndex(line, core.VenueMarker); idx >= 0 {
			finalize()
			open = &models.ScheduleEntry{VenueName: line[idx+len(core.VenueMarker):]}
			state = stateEntryOpen
			continue
		}

		if state != stateEntryOpen {
			// Between entries only headers matter; everything else is noise.
			if core.IsDateHeaderLine(line) {
				if span := extract.NormalizeValue(line); utf8.RuneCountInString(span) >= minHeaderSpan {
					ctx.currentDate = span
				}
			} else if core.IsCityHeaderLine(line) {
				if span := extract.NormalizeValue(line); utf8.RuneCountInString(span) >= minHeaderSpan {
					ctx.currentCity = span
				}
			}
			continue
		}

		if kind, value, ok := extract.MatchLabel(line); ok {
			switch kind {
			case extract.FieldSpeaker:
				if open.Speaker != "" {
					// Second speaker before a terminator: back-to-back
					// sessions sharing one venue line. Close the first
					// session and seed the next from the same venue.
					seed := models.ScheduleEntry{
						VenueName: open.VenueName,
						Address:   open.Address,
						MapURL:    open.MapURL,
					}
					finalize()
					open = &seed
					state = stateEntryOpen
				}
				open.Speaker = value
			case extract.FieldTopic:
				open.Topic = value
			case extract.FieldTime:
				open.Time = value
			case extract.FieldContact:
				open.Contact = value
			case extract.FieldMapURL:
				open.MapURL = mapURLFromLine(line, value)
			}
			continue
		}
		if extract.IsMapLink(line) {
			open.MapURL = mapURLFromLine(line, line)
			continue
		}
		if u := extract.FindURL(line); u != "" {
			if open.InfoLink == "" {
				open.InfoLink = u
			}
			continue
		}
		if open.Speaker == "" && open.Topic == "" {
			// Multi-line address preceding the labeled fields.
			if open.Address == "" {
				open.Address = trimmed
			} else {
				open.Address += ", " + trimmed
			}
		}
	}
	finalize()
	return out
}

// scanHeaders is the bounded phase-A pass that seeds the date/city context
// before the entry walk begins.
func scanHeaders(lines []string, ctx *parseContext) {
	limit := len(lines)
	if limit > headerScanLimit {
		limit = headerScanLimit
	}
	for i := 0; i < limit; i++ {
		line := lines[i]
		if ctx.currentDate == "" && core.IsDateHeaderLine(line) {
			if span := extract.NormalizeValue(line); utf8.RuneCountInString(span) >= minHeaderSpan {
				ctx.currentDate = span
				continue
			}
		}
		if ctx.currentCity == "" && core.IsCityHeaderLine(line) {
			if span := extract.NormalizeValue(line); utf8.RuneCountInString(span) >= minHeaderSpan {
				ctx.currentCity = span
			}
		}
		if ctx.currentDate != "" && ctx.currentCity != "" {
			return
		}
	}
}

func isTerminator(trimmed string) bool {
	return trimmed == "***" || trimmed == "."
}

func mapURLFromLine(line, fallback string) string {
	if u := extract.FindURL(line); u != "" {
		return u
	}
	return extract.NormalizeValue(fallback)
}

var femaleOnlyQualifiers = []string{"khusus akhwat", "akhwat only", "khusus muslimah", "muslimah only", "khusus wanita"}

var onlineQualifiers = []string{"online", "zoom", "streaming", "live ig", "youtube"}

func mentionsAny(keywords []string, fields ...string) bool {
	for _, field := range fields {
		lower := strings.ToLower(field)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// finalizeEntry applies defaults, normalizes every field, and decides whether
// the candidate is emittable. Entries without a venue name are noise and are
// dropped silently.
func finalizeEntry(e models.ScheduleEntry, ctx *parseContext) (models.ScheduleEntry, bool) {
	e.VenueName = extract.NormalizeValue(e.VenueName)
	if e.VenueName == "" {
		return e, false
	}
	e.Address = extract.NormalizeValue(e.Address)
	e.Speaker = extract.NormalizeValue(e.Speaker)
	e.Topic = extract.NormalizeValue(e.Topic)
	e.Time = extract.NormalizeValue(e.Time)
	e.Contact = extract.NormalizeValue(e.Contact)
	e.MapURL = strings.TrimSpace(e.MapURL)
	e.InfoLink = strings.TrimSpace(e.InfoLink)

	if e.Speaker == "" {
		e.Speaker = models.DefaultSpeaker
	}
	if e.Topic == "" {
		e.Topic = models.DefaultTopic
	}
	if e.Time == "" {
		e.Time = models.DefaultTime
	}
	e.Date = ctx.currentDate
	if e.Date == "" {
		e.Date = models.DefaultDate
	}
	e.Region = models.DefaultRegion
	e.City = ctx.currentCity
	if e.City == "" && mentionsAny(onlineQualifiers, e.Time, e.VenueName, e.Address) {
		e.City = models.OnlineCity
	}
	e.FemaleOnly = mentionsAny(femaleOnlyQualifiers, e.Time, e.Topic, e.Address)
	return e, true
}
