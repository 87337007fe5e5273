package repository

import (
	"context"
	"database/sql"

	"jadwalkajian/backend/internal/models"

	"github.com/jackc/pgx/v5"
)

const scheduleColumns = `id, region, city, venue_name, address, map_url, lat, lng, speaker, topic, time_text, contact, date_text, female_only, info_link, created_at, updated_at`

func scanSchedule(row pgx.Row) (models.Schedule, error) {
	var out models.Schedule
	var city, address, mapURL, contact, infoLink sql.NullString
	var lat, lng sql.NullFloat64
	err := row.Scan(
		&out.ID, &out.Region, &city, &out.VenueName, &address, &mapURL,
		&lat, &lng, &out.Speaker, &out.Topic, &out.Time, &contact,
		&out.Date, &out.FemaleOnly, &infoLink, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		return out, err
	}
	out.City = city.String
	out.Address = address.String
	out.MapURL = mapURL.String
	out.Contact = contact.String
	out.InfoLink = infoLink.String
	if lat.Valid && lng.Valid {
		out.Coordinates = &models.Coordinates{Lat: lat.Float64, Lng: lng.Float64}
	}
	return out, nil
}

func (r *Repository) InsertSchedule(ctx context.Context, entry models.ScheduleEntry) (models.Schedule, error) {
	if err := r.ensurePool(); err != nil {
		return models.Schedule{}, err
	}
	query := `
INSERT INTO schedules (region, city, venue_name, address, map_url, lat, lng, speaker, topic, time_text, contact, date_text, female_only, info_link)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING ` + scheduleColumns + `;`

	var lat, lng sql.NullFloat64
	if entry.Coordinates != nil {
		lat = sql.NullFloat64{Float64: entry.Coordinates.Lat, Valid: true}
		lng = sql.NullFloat64{Float64: entry.Coordinates.Lng, Valid: true}
	}
	row := r.pool.QueryRow(ctx, query,
		entry.Region, nullString(entry.City), entry.VenueName, nullString(entry.Address),
		nullString(entry.MapURL), lat, lng, entry.Speaker, entry.Topic, entry.Time,
		nullString(entry.Contact), entry.Date, entry.FemaleOnly, nullString(entry.InfoLink),
	)
	return scanSchedule(row)
}

func (r *Repository) GetSchedule(ctx context.Context, id int64) (models.Schedule, error) {
	if err := r.ensurePool(); err != nil {
		return models.Schedule{}, err
	}
	row := r.pool.QueryRow(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id)
	return scanSchedule(row)
}

func (r *Repository) ListSchedules(ctx context.Context, limit, offset int) ([]models.Schedule, int, error) {
	if err := r.ensurePool(); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules ORDER BY id DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]models.Schedule, 0, limit)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*) FROM schedules`).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

// ListByDate is the cheap exact-date pre-filter that precedes fuzzy duplicate
// detection.
func (r *Repository) ListByDate(ctx context.Context, date string) ([]models.Schedule, error) {
	if err := r.ensurePool(); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE date_text = $1 ORDER BY id`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Schedule, 0)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, schedule)
	}
	return out, rows.Err()
}

// UpdateCoordinates is a one-row idempotent update so partial failure of one
// backfill record never blocks the others.
func (r *Repository) UpdateCoordinates(ctx context.Context, id int64, coords models.Coordinates) error {
	if err := r.ensurePool(); err != nil {
		return err
	}
	command, err := r.pool.Exec(ctx, `UPDATE schedules SET lat = $1, lng = $2, updated_at = now() WHERE id = $3`, coords.Lat, coords.Lng, id)
	if err != nil {
		return err
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListMissingCoordinates returns schedules that carry a map URL but no
// extracted coordinates yet.
func (r *Repository) ListMissingCoordinates(ctx context.Context, limit int) ([]models.Schedule, error) {
	if err := r.ensurePool(); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules WHERE map_url IS NOT NULL AND map_url <> '' AND (lat IS NULL OR lng IS NULL) ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.Schedule, 0, limit)
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, schedule)
	}
	return out, rows.Err()
}

func (r *Repository) DeleteSchedule(ctx context.Context, id int64) error {
	if err := r.ensurePool(); err != nil {
		return err
	}
	command, err := r.pool.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListVenueNames returns every stored venue name, repetitions included, so
// the variant grouper can pick the most frequent raw form as canonical.
func (r *Repository) ListVenueNames(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT venue_name FROM schedules`)
}

// ListSpeakerNames returns every stored speaker name, repetitions included.
func (r *Repository) ListSpeakerNames(ctx context.Context) ([]string, error) {
	return r.listNames(ctx, `SELECT speaker FROM schedules WHERE speaker <> $1`, models.DefaultSpeaker)
}

func (r *Repository) listNames(ctx context.Context, query string, args ...interface{}) ([]string, error) {
	if err := r.ensurePool(); err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

// RenameVenue applies an operator-approved canonical spelling to every row
// holding one of the variant spellings.
func (r *Repository) RenameVenue(ctx context.Context, canonical string, variants []string) (int64, error) {
	if err := r.ensurePool(); err != nil {
		return 0, err
	}
	command, err := r.pool.Exec(ctx, `UPDATE schedules SET venue_name = $1, updated_at = now() WHERE venue_name = ANY($2)`, canonical, variants)
	if err != nil {
		return 0, err
	}
	return command.RowsAffected(), nil
}
