package extract

import "testing"

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "Masjid Al-Ikhlas", want: "Masjid Al-Ikhlas"},
		{name: "markdown emphasis", input: "*Masjid Al-Ikhlas*", want: "Masjid Al-Ikhlas"},
		{name: "decorative glyphs", input: "📍 Jl. Merdeka No. 10", want: "Jl. Merdeka No. 10"},
		{name: "zero width", input: "Ustadz\u200b Ahmad\ufeff", want: "Ustadz Ahmad"},
		{name: "edge separators", input: "-- Waktu : Ba'da Maghrib --", want: "Waktu : Ba'da Maghrib"},
		{name: "arrow header", input: "*▶️Selasa, 23 Desember 2025*", want: "Selasa, 23 Desember 2025"},
		{name: "empty", input: "", want: ""},
		{name: "only decoration", input: "*** 📍 ***", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeValue(tt.input)
			if got != tt.want {
				t.Fatalf("NormalizeValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := NormalizeValue(got); again != got {
				t.Fatalf("not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "venue type stripped", input: "Masjid Al-Ikhlas", want: "ikhlas"},
		{name: "bare venue", input: "Al-Ikhlas", want: "ikhlas"},
		{name: "spelling variant", input: "Mesjid Al Ikhlas", want: "ikhlas"},
		{name: "honorifics stripped", input: "Ustadz Dr. Ahmad Zainuddin, Lc", want: "ahmad zainuddin"},
		{name: "short honorific", input: "Ust. Ahmad Zainuddin", want: "ahmad zainuddin"},
		{name: "whitespace collapsed", input: "Musholla   An - Nur", want: "an nur"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeName(tt.input)
			if got != tt.want {
				t.Fatalf("NormalizeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
