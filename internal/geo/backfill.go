package geo

import (
	"context"
	"log/slog"

	"jadwalkajian/backend/internal/models"
)

// ScheduleStore is the slice of the persistence layer the backfiller needs.
type ScheduleStore interface {
	ListMissingCoordinates(ctx context.Context, limit int) ([]models.Schedule, error)
	UpdateCoordinates(ctx context.Context, id int64, coords models.Coordinates) error
}

// Backfiller walks stored schedules that carry a map URL but no coordinates
// and fills them in one row at a time. A failed record is reported, never
// retried, and never blocks the rest of the batch.
type Backfiller struct {
	store     ScheduleStore
	extractor *Extractor
	logger    *slog.Logger
}

// NewBackfiller creates backfiller.
func NewBackfiller(store ScheduleStore, extractor *Extractor, logger *slog.Logger) *Backfiller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Backfiller{store: store, extractor: extractor, logger: logger}
}

// Run processes up to limit records sequentially and returns the per-record
// report.
func (b *Backfiller) Run(ctx context.Context, limit int) ([]models.BackfillResult, error) {
	if limit <= 0 {
		limit = 100
	}
	schedules, err := b.store.ListMissingCoordinates(ctx, limit)
	if err != nil {
		return nil, err
	}

	results := make([]models.BackfillResult, 0, len(schedules))
	for _, schedule := range schedules {
		result := models.BackfillResult{ScheduleID: schedule.ID, MapURL: schedule.MapURL}
		coords, err := b.extractor.ResolveAndExtract(ctx, schedule.MapURL)
		if err != nil {
			result.Reason = err.Error()
			b.logger.Info("backfill_record", "schedule_id", schedule.ID, "status", "failed", "reason", err.Error())
			results = append(results, result)
			continue
		}
		if err := b.store.UpdateCoordinates(ctx, schedule.ID, coords); err != nil {
			result.Reason = err.Error()
			b.logger.Warn("backfill_record", "schedule_id", schedule.ID, "status", "db_error", "error", err)
			results = append(results, result)
			continue
		}
		result.Coords = &models.Coordinates{Lat: coords.Lat, Lng: coords.Lng}
		result.OK = true
		b.logger.Info("backfill_record", "schedule_id", schedule.ID, "status", "ok", "lat", coords.Lat, "lng", coords.Lng)
		results = append(results, result)
	}
	return results, nil
}
