package geo

import (
	"context"
	"errors"
	"testing"
)

type fakeResolver struct {
	expansions map[string]string
}

func (f *fakeResolver) Resolve(_ context.Context, rawURL string) string {
	if expanded, ok := f.expansions[rawURL]; ok {
		return expanded
	}
	return rawURL
}

func TestIsShortenedMapURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{url: "https://goo.gl/maps/abc123", want: true},
		{url: "https://maps.app.goo.gl/abc123", want: true},
		{url: "https://bit.ly/kajian-bandung", want: true},
		{url: "https://s.id/kajianjkt", want: true},
		{url: "https://www.google.com/maps/@-6.2,106.8,15z", want: false},
		{url: "not a url", want: false},
		{url: "", want: false},
	}

	for _, tt := range tests {
		if got := IsShortenedMapURL(tt.url); got != tt.want {
			t.Fatalf("IsShortenedMapURL(%q) = %v, want %v", tt.url, got, tt.want)
		}
	}
}

func TestResolveAndExtract(t *testing.T) {
	extractor := NewExtractor(&fakeResolver{expansions: map[string]string{
		"https://goo.gl/maps/abc123": "https://www.google.com/maps/@-6.914744,107.60981,17z",
		"https://goo.gl/maps/paris":  "https://maps.google.com/?q=48.8584,2.2945",
	}})

	coords, err := extractor.ResolveAndExtract(context.Background(), "https://goo.gl/maps/abc123")
	if err != nil {
		t.Fatalf("extract failed: %v", err)
	}
	if coords.Lat != -6.914744 || coords.Lng != 107.60981 {
		t.Fatalf("got (%v, %v)", coords.Lat, coords.Lng)
	}

	if _, err := extractor.ResolveAndExtract(context.Background(), "https://goo.gl/maps/paris"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}

	if _, err := extractor.ResolveAndExtract(context.Background(), "https://goo.gl/maps/unknown"); !errors.Is(err, ErrNoMatch) {
		t.Fatalf("err = %v, want ErrNoMatch", err)
	}
}
