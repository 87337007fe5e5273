package models

import "time"

// Sentinel values applied by the parser when a broadcast omits a field.
const (
	DefaultRegion  = "INDONESIA"
	DefaultSpeaker = "TBD"
	DefaultTopic   = "Kajian"
	DefaultTime    = "TBD"
	DefaultDate    = "TBD"

	// OnlineCity marks virtual events that have no physical venue city.
	OnlineCity = "Online"
)

// Coordinates is a latitude/longitude pair extracted from a map URL.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ScheduleEntry is the canonical parse output for one lecture slot.
// Entries are transient: identity is assigned only when a row is persisted.
type ScheduleEntry struct {
	Region      string       `json:"region"`
	City        string       `json:"city"`
	VenueName   string       `json:"venueName"`
	Address     string       `json:"address,omitempty"`
	MapURL      string       `json:"mapUrl,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	Speaker     string       `json:"speaker"`
	Topic       string       `json:"topic"`
	Time        string       `json:"time"`
	Contact     string       `json:"contact,omitempty"`
	Date        string       `json:"date"`
	FemaleOnly  bool         `json:"femaleOnly,omitempty"`
	InfoLink    string       `json:"infoLink,omitempty"`
}

// Schedule is a persisted ScheduleEntry.
type Schedule struct {
	ID int64 `json:"id"`
	ScheduleEntry
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DuplicateMatch pairs a stored schedule with the similarity scores that
// flagged it against a candidate entry.
type DuplicateMatch struct {
	Schedule   Schedule `json:"schedule"`
	VenueSim   float64  `json:"venueSim"`
	SpeakerSim float64  `json:"speakerSim"`
}

// NameGroup is a cluster of near-duplicate raw name spellings proposed for
// operator-driven bulk merge.
type NameGroup struct {
	Canonical string   `json:"canonical"`
	Variants  []string `json:"variants"`
	Total     int      `json:"total"`
}

// BackfillResult classifies one record of a coordinate backfill run.
type BackfillResult struct {
	ScheduleID int64        `json:"scheduleId"`
	MapURL     string       `json:"mapUrl"`
	Coords     *Coordinates `json:"coordinates,omitempty"`
	OK         bool         `json:"ok"`
	Reason     string       `json:"reason,omitempty"`
}
