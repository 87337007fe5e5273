package preextract

import (
	"testing"
)

func TestSanitizeBatch(t *testing.T) {
	payload := []byte(`[
		{
			"venueName": "*Masjid Al-Ikhlas*",
			"address": "📍 Jl. Merdeka No. 10",
			"city": "Bandung",
			"speaker": "Ustadz Ahmad",
			"lat": -6.914744,
			"lng": 107.60981
		},
		{
			"venueName": "X"
		},
		{
			"venueName": "Masjid An-Nur",
			"lat": 48.8584,
			"lng": 2.2945
		}
	]`)

	s := NewSanitizer()
	entries, err := s.Sanitize(payload)
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(entries), entries)
	}

	first := entries[0]
	if first.VenueName != "Masjid Al-Ikhlas" {
		t.Fatalf("venue = %q", first.VenueName)
	}
	if first.Address != "Jl. Merdeka No. 10" {
		t.Fatalf("address = %q", first.Address)
	}
	if first.Region != "INDONESIA" {
		t.Fatalf("region default = %q", first.Region)
	}
	if first.Coordinates == nil || first.Coordinates.Lat != -6.914744 {
		t.Fatalf("coordinates = %+v", first.Coordinates)
	}

	second := entries[1]
	if second.VenueName != "Masjid An-Nur" {
		t.Fatalf("venue = %q", second.VenueName)
	}
	if second.Coordinates != nil {
		t.Fatalf("out-of-envelope coordinates kept: %+v", second.Coordinates)
	}
	if second.Speaker != "TBD" || second.Topic != "Kajian" || second.Time != "TBD" || second.Date != "TBD" {
		t.Fatalf("defaults not applied: %+v", second)
	}
}

func TestSanitizeSingleObject(t *testing.T) {
	s := NewSanitizer()
	entries, err := s.Sanitize([]byte(`{"venueName": "Masjid As-Salam"}`))
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	if len(entries) != 1 || entries[0].VenueName != "Masjid As-Salam" {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestSanitizeRejectsMalformedJSON(t *testing.T) {
	s := NewSanitizer()
	if _, err := s.Sanitize([]byte(`{"venueName":`)); err == nil {
		t.Fatal("expected error for malformed payload")
	}
}

func TestSanitizeRejectsBadURL(t *testing.T) {
	s := NewSanitizer()
	entries, err := s.Sanitize([]byte(`{"venueName": "Masjid As-Salam", "mapUrl": "bukan url"}`))
	if err != nil {
		t.Fatalf("sanitize failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("entry with invalid map url should be skipped: %+v", entries)
	}
}
