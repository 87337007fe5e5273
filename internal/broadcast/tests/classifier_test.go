package tests

import (
	"testing"

	"jadwalkajian/backend/internal/broadcast"
	"jadwalkajian/backend/internal/broadcast/core"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want core.Format
	}{
		{name: "venue marker", text: "🕌 Masjid Al-Ikhlas\nPemateri: Ustadz A", want: core.FormatRekapan},
		{name: "marker beats dauroh keyword", text: "🕌 Masjid Raya\nTema: Dauroh Fiqih", want: core.FormatRekapan},
		{name: "dauroh keyword", text: "DAUROH ILMIAH\nTempat: Aula Uje", want: core.FormatDauroh},
		{name: "seminar keyword", text: "Seminar Parenting Nabawiyah", want: core.FormatDauroh},
		{name: "date plus pin", text: "🗓 Sabtu, 10 Januari 2026\n📍 Aula Masjid Raya", want: core.FormatDauroh},
		{name: "plain chatter", text: "halo, jadi berangkat jam berapa?", want: core.FormatUnknown},
		{name: "empty", text: "", want: core.FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := broadcast.Detect(tt.text); got != tt.want {
				t.Fatalf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseUnknownFormatReturnsEmptySlice(t *testing.T) {
	entries := broadcast.Parse("halo, jadi berangkat jam berapa?")
	if entries == nil {
		t.Fatal("entries must not be nil")
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty result, got %+v", entries)
	}
}

func TestParseHTML(t *testing.T) {
	input := `<div><p>🕌 Masjid Al-Ikhlas</p><p>Pemateri: Ustadz Ahmad</p><p>***</p></div>`
	entries, err := broadcast.ParseHTML(input)
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].VenueName != "Masjid Al-Ikhlas" || entries[0].Speaker != "Ustadz Ahmad" {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}
