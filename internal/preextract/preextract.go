package preextract

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"jadwalkajian/backend/internal/broadcast/extract"
	"jadwalkajian/backend/internal/geo"
	"jadwalkajian/backend/internal/models"
)

// Entry is the JSON shape the upstream model produces when pre-extracting
// schedules from an image or pasted text. Nothing in it is trusted: every
// field goes back through the normalizer and the coordinate envelope.
type Entry struct {
	Region     string   `json:"region"`
	City       string   `json:"city"`
	VenueName  string   `json:"venueName" validate:"required,min=2"`
	Address    string   `json:"address"`
	MapURL     string   `json:"mapUrl" validate:"omitempty,url"`
	Lat        *float64 `json:"lat"`
	Lng        *float64 `json:"lng"`
	Speaker    string   `json:"speaker"`
	Topic      string   `json:"topic"`
	Time       string   `json:"time"`
	Contact    string   `json:"contact"`
	Date       string   `json:"date"`
	FemaleOnly bool     `json:"femaleOnly"`
	InfoLink   string   `json:"infoLink" validate:"omitempty,url"`
}

// Sanitizer validates and post-processes pre-extracted entries.
type Sanitizer struct {
	validate *validator.Validate
}

// NewSanitizer creates sanitizer.
func NewSanitizer() *Sanitizer {
	return &Sanitizer{validate: validator.New()}
}

// Sanitize parses a JSON payload holding one entry or an array of entries and
// returns the entries that survive validation. Individually invalid entries
// are skipped, mirroring how noise lines are dropped during broadcast parsing;
// only malformed JSON is an error.
func (s *Sanitizer) Sanitize(raw []byte) ([]models.ScheduleEntry, error) {
	var batch []Entry
	if err := json.Unmarshal(raw, &batch); err != nil {
		var single Entry
		if err := json.Unmarshal(raw, &single); err != nil {
			return nil, fmt.Errorf("invalid payload: %w", err)
		}
		batch = []Entry{single}
	}

	out := make([]models.ScheduleEntry, 0, len(batch))
	for _, item := range batch {
		if entry, ok := s.sanitizeOne(item); ok {
			out = append(out, entry)
		}
	}
	return out, nil
}

// sanitizeOne handles sanitize one behavior.
func (s *Sanitizer) sanitizeOne(item Entry) (models.ScheduleEntry, bool) {
	if err := s.validate.Struct(item); err != nil {
		return models.ScheduleEntry{}, false
	}

	entry := models.ScheduleEntry{
		Region:     extract.NormalizeValue(item.Region),
		City:       extract.NormalizeValue(item.City),
		VenueName:  extract.NormalizeValue(item.VenueName),
		Address:    extract.NormalizeValue(item.Address),
		MapURL:     item.MapURL,
		Speaker:    extract.NormalizeValue(item.Speaker),
		Topic:      extract.NormalizeValue(item.Topic),
		Time:       extract.NormalizeValue(item.Time),
		Contact:    extract.NormalizeValue(item.Contact),
		Date:       extract.NormalizeValue(item.Date),
		FemaleOnly: item.FemaleOnly,
		InfoLink:   item.InfoLink,
	}
	if entry.VenueName == "" {
		return models.ScheduleEntry{}, false
	}
	if entry.Region == "" {
		entry.Region = models.DefaultRegion
	}
	if entry.Speaker == "" {
		entry.Speaker = models.DefaultSpeaker
	}
	if entry.Topic == "" {
		entry.Topic = models.DefaultTopic
	}
	if entry.Time == "" {
		entry.Time = models.DefaultTime
	}
	if entry.Date == "" {
		entry.Date = models.DefaultDate
	}
	if item.Lat != nil && item.Lng != nil && geo.InEnvelope(*item.Lat, *item.Lng) {
		entry.Coordinates = &models.Coordinates{Lat: *item.Lat, Lng: *item.Lng}
	}
	return entry, true
}
