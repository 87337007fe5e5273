package match

import (
	"testing"

	"jadwalkajian/backend/internal/models"
)

func stored(venue, speaker string) models.Schedule {
	return models.Schedule{ScheduleEntry: models.ScheduleEntry{
		VenueName: venue,
		Speaker:   speaker,
		Date:      "Selasa, 23 Desember 2025",
	}}
}

func TestIsDuplicate(t *testing.T) {
	tests := []struct {
		name      string
		candidate models.ScheduleEntry
		existing  []models.Schedule
		want      bool
	}{
		{
			name:      "venue type prefix ignored",
			candidate: models.ScheduleEntry{VenueName: "Masjid Al-Ikhlas", Speaker: "Ustadz Ahmad"},
			existing:  []models.Schedule{stored("Al-Ikhlas", "Ust. Ahmad")},
			want:      true,
		},
		{
			name:      "minor spelling variant",
			candidate: models.ScheduleEntry{VenueName: "Masjid Al-Ikhlash", Speaker: "Ustadz Ahmad"},
			existing:  []models.Schedule{stored("Masjid Al-Ikhlas", "Ustadz Ahmad")},
			want:      true,
		},
		{
			name:      "different venue",
			candidate: models.ScheduleEntry{VenueName: "Masjid An-Nur", Speaker: "Ustadz Ahmad"},
			existing:  []models.Schedule{stored("Masjid Al-Ikhlas", "Ustadz Ahmad")},
			want:      false,
		},
		{
			name:      "same venue different speaker",
			candidate: models.ScheduleEntry{VenueName: "Masjid Al-Ikhlas", Speaker: "Ustadz Budi Santoso"},
			existing:  []models.Schedule{stored("Masjid Al-Ikhlas", "Ustadz Ahmad Zainuddin")},
			want:      false,
		},
		{
			name:      "both speakers missing",
			candidate: models.ScheduleEntry{VenueName: "Masjid Al-Ikhlas"},
			existing:  []models.Schedule{stored("Masjid Al-Ikhlas", "")},
			want:      true,
		},
		{
			name:      "one speaker missing stays below threshold",
			candidate: models.ScheduleEntry{VenueName: "Masjid Al-Ikhlas"},
			existing:  []models.Schedule{stored("Masjid Al-Ikhlas", "Ustadz Ahmad")},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matches := IsDuplicate(tt.candidate, tt.existing)
			if got != tt.want {
				t.Fatalf("IsDuplicate = %v (matches %+v), want %v", got, matches, tt.want)
			}
			if got && len(matches) == 0 {
				t.Fatal("duplicate verdict without matches")
			}
		})
	}
}

func TestFindDuplicatesReturnsAllCollisions(t *testing.T) {
	candidate := models.ScheduleEntry{VenueName: "Masjid Al-Ikhlas", Speaker: "Ustadz Ahmad"}
	existing := []models.Schedule{
		stored("Al-Ikhlas", "Ustadz Ahmad"),
		stored("Masjid An-Nur", "Ustadz Ahmad"),
		stored("Mesjid Al Ikhlas", "Ust. Ahmad"),
	}
	matches := FindDuplicates(candidate, existing)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(matches), matches)
	}
	for _, m := range matches {
		if m.VenueSim <= Threshold || m.SpeakerSim <= Threshold {
			t.Fatalf("reported match below threshold: %+v", m)
		}
	}
}

func TestGroupVariants(t *testing.T) {
	names := []string{
		"Masjid Al-Ikhlas",
		"Al-Ikhlas",
		"Masjid Al-Ikhlas",
		"Masjid An-Nur",
	}
	groups := GroupVariants(names)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d: %+v", len(groups), groups)
	}
	g := groups[0]
	if g.Canonical != "Masjid Al-Ikhlas" {
		t.Fatalf("canonical = %q", g.Canonical)
	}
	if len(g.Variants) != 1 || g.Variants[0] != "Al-Ikhlas" {
		t.Fatalf("variants = %+v", g.Variants)
	}
	if g.Total != 3 {
		t.Fatalf("total = %d", g.Total)
	}
}

func TestGroupVariantsSkipsSingletonsAndEmpty(t *testing.T) {
	groups := GroupVariants([]string{"Masjid Istiqlal", "Masjid Baiturrahman", "", "📍"})
	if len(groups) != 0 {
		t.Fatalf("expected no groups, got %+v", groups)
	}
}
