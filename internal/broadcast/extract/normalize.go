package extract

import (
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"
)

// Zero-width characters smuggled into broadcasts by messenger clients.
var zeroWidthReplacer = strings.NewReplacer(
	"\u200b", "",
	"\u200c", "",
	"\u200d", "",
	"\ufeff", "",
	"\u2063", "",
)

// Decorative glyphs used as visual separators in hand-typed broadcasts.
// These never carry field content, only layout.
var decorativeGlyphs = []string{
	"【", "】", "〖", "〗", "「", "」", "『", "』",
	"◦", "•", "▪", "▫", "●", "○", "◉", "◈", "✦", "✧", "⭐",
	"▶️", "▶", "➡️", "➡", "⏩", "→", "➤", "►",
	"📍", "🕌", "🌐", "🗓️", "🗓", "📆", "📅", "📌",
	"🔊", "🎙️", "🎙", "📖", "📚", "⏰", "🕰️", "🕰", "☎️", "☎", "📱", "📲",
	"✅", "☑️", "✔️", "🔴", "🟢", "🔵", "⚠️", "❗", "❕",
}

var markdownReplacer = strings.NewReplacer("*", "", "_", "", "~", "", "`", "")

const edgeTrimCutset = " -:|\t\n\r.,\u200b\u200c\u200d\ufeff\u2063"

// NormalizeValue strips messenger debris from one extracted field: zero-width
// characters, decorative glyphs, markdown emphasis, and a run of separator
// characters at both ends. Idempotent; empty input yields empty output.
func NormalizeValue(raw string) string {
	if raw == "" {
		return ""
	}
	s := zeroWidthReplacer.Replace(raw)
	for _, glyph := range decorativeGlyphs {
		s = strings.ReplaceAll(s, glyph, "")
	}
	s = markdownReplacer.Replace(s)
	return strings.Trim(s, edgeTrimCutset)
}

var (
	namePunctRE     = regexp.MustCompile(`[^a-z0-9\s]+`)
	nameStopWordsRE *regexp.Regexp
	venueTypeWords  = []string{"masjid", "mesjid", "musholla", "mushola", "mushalla", "musala", "surau", "langgar"}
	honorificWords  = []string{"ustadz", "ustad", "ustadzah", "ust", "al", "dr", "dokter", "doktor", "drs", "prof", "professor", "kh", "syaikh", "syekh", "sheikh", "shaykh", "habib", "lc", "ma", "hafidzahullah", "hafizhahullah"}
)

func init() {
	words := make([]string, 0, len(venueTypeWords)+len(honorificWords))
	words = append(words, venueTypeWords...)
	words = append(words, honorificWords...)
	nameStopWordsRE = regexp.MustCompile(`\b(?:` + strings.Join(words, "|") + `)\b`)
}

// NormalizeName produces a comparison key for venue/speaker names: it is never
// shown to users. Transliterates to ASCII, lowercases, strips punctuation,
// removes generic venue-type words and honorifics, and collapses whitespace,
// so "Masjid Al-Ikhlas" and "Al-Ikhlas" normalize close together.
func NormalizeName(raw string) string {
	s := NormalizeValue(raw)
	if s == "" {
		return ""
	}
	s = strings.ToLower(unidecode.Unidecode(s))
	s = namePunctRE.ReplaceAllString(s, " ")
	s = nameStopWordsRE.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}
