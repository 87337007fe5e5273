package extract

import "regexp"

// FieldKind names the labeled fields a broadcast line can carry.
type FieldKind string

const (
	FieldSpeaker FieldKind = "speaker"
	FieldTopic   FieldKind = "topic"
	FieldTime    FieldKind = "time"
	FieldContact FieldKind = "contact"
	FieldMapURL  FieldKind = "map_url"
)

// labelPattern pairs a field with its compiled label matcher. Patterns are
// tried in declaration order; the first hit wins, so speaker labels outrank
// topic labels and so on down the list.
type labelPattern struct {
	kind FieldKind
	re   *regexp.Regexp
}

var labelPatterns = []labelPattern{
	{FieldSpeaker, regexp.MustCompile(`(?i)^[^a-z0-9]*(?:pemateri|pembicara|narasumber|bersama)\s*[:：]?\s*(.*)$`)},
	{FieldTopic, regexp.MustCompile(`(?i)^[^a-z0-9]*(?:tema|materi|judul|pembahasan)\s*[:：]?\s*(.*)$`)},
	{FieldTime, regexp.MustCompile(`(?i)^[^a-z0-9]*(?:waktu|pukul|jam)\s*[:：]?\s*(.*)$`)},
	{FieldContact, regexp.MustCompile(`(?i)^[^a-z0-9]*(?:cp|contact person|kontak|narahubung)\s*[:：.]?\s*(.*)$`)},
	{FieldMapURL, regexp.MustCompile(`(?i)^[^a-z0-9]*(?:maps?|gmaps|lokasi maps|google maps?)\s*[:：]?\s*(.*)$`)},
}

// MatchLabel classifies one line against the labeled-field markers. It returns
// the field kind and the text following the label.
func MatchLabel(line string) (FieldKind, string, bool) {
	for _, p := range labelPatterns {
		if m := p.re.FindStringSubmatch(line); m != nil {
			return p.kind, m[1], true
		}
	}
	return "", "", false
}
