package match

import "testing"

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "ikhlas", b: "ikhlas", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "ikhlas", b: "", want: 0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Similarity(tt.a, tt.b); got != tt.want {
				t.Fatalf("Similarity(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSimilarityProperties(t *testing.T) {
	pairs := [][2]string{
		{"ikhlas", "ikhlash"},
		{"an nur", "annur"},
		{"ahmad zainuddin", "ahmad zainudin"},
		{"istiqlal", "baiturrahman"},
	}
	for _, pair := range pairs {
		ab := Similarity(pair[0], pair[1])
		ba := Similarity(pair[1], pair[0])
		if ab != ba {
			t.Fatalf("not symmetric for %q/%q: %v vs %v", pair[0], pair[1], ab, ba)
		}
		if ab < 0 || ab > 1 {
			t.Fatalf("out of range for %q/%q: %v", pair[0], pair[1], ab)
		}
	}
}

func TestSimilarityNearVariants(t *testing.T) {
	if got := Similarity("ikhlas", "ikhlash"); got <= Threshold {
		t.Fatalf("single-letter variant should pass the threshold, got %v", got)
	}
	if got := Similarity("ikhlas", "an nur"); got > Threshold {
		t.Fatalf("unrelated names should stay below the threshold, got %v", got)
	}
}
