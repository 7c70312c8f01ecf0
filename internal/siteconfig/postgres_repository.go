package siteconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// PostgresRepository stores configuration sections as JSONB rows in a
// single key-value table:
//
//	CREATE TABLE site_config (
//	    section     TEXT PRIMARY KEY,
//	    value       JSONB NOT NULL,
//	    updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgreSQL-backed configuration repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

func (r *PostgresRepository) get(ctx context.Context, section string, out any) error {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM site_config WHERE section = $1`,
		section,
	).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("get %s: %w", section, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", section, err)
	}
	return nil
}

func (r *PostgresRepository) save(ctx context.Context, section string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", section, err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO site_config (section, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (section) DO UPDATE SET value = EXCLUDED.value, updated_at = now()
	`, section, raw)
	if err != nil {
		return fmt.Errorf("save %s: %w", section, err)
	}
	return nil
}

// GetHours retrieves the weekly schedule.
func (r *PostgresRepository) GetHours(ctx context.Context) (openinghours.WeeklySchedule, error) {
	var schedule openinghours.WeeklySchedule
	if err := r.get(ctx, SectionHours, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SaveHours persists the weekly schedule.
func (r *PostgresRepository) SaveHours(ctx context.Context, schedule openinghours.WeeklySchedule) error {
	return r.save(ctx, SectionHours, schedule)
}

// GetTimezone retrieves the configured display timezone.
func (r *PostgresRepository) GetTimezone(ctx context.Context) (string, error) {
	var timezone string
	if err := r.get(ctx, SectionTimezone, &timezone); err != nil {
		return "", err
	}
	return timezone, nil
}

// SaveTimezone persists the display timezone.
func (r *PostgresRepository) SaveTimezone(ctx context.Context, timezone string) error {
	return r.save(ctx, SectionTimezone, timezone)
}

// GetScheduledClosings retrieves the scheduled closings list.
func (r *PostgresRepository) GetScheduledClosings(ctx context.Context) ([]openinghours.ScheduledClosing, error) {
	var closings []openinghours.ScheduledClosing
	if err := r.get(ctx, SectionScheduledClosings, &closings); err != nil {
		return nil, err
	}
	return closings, nil
}

// SaveScheduledClosings persists the scheduled closings list.
func (r *PostgresRepository) SaveScheduledClosings(ctx context.Context, closings []openinghours.ScheduledClosing) error {
	return r.save(ctx, SectionScheduledClosings, closings)
}

// GetEmergencyClosings retrieves the emergency closings list.
func (r *PostgresRepository) GetEmergencyClosings(ctx context.Context) ([]openinghours.EmergencyClosing, error) {
	var closings []openinghours.EmergencyClosing
	if err := r.get(ctx, SectionEmergencyClosings, &closings); err != nil {
		return nil, err
	}
	return closings, nil
}

// SaveEmergencyClosings persists the emergency closings list.
func (r *PostgresRepository) SaveEmergencyClosings(ctx context.Context, closings []openinghours.EmergencyClosing) error {
	return r.save(ctx, SectionEmergencyClosings, closings)
}

// GetSpecialMessages retrieves the special messages list.
func (r *PostgresRepository) GetSpecialMessages(ctx context.Context) ([]openinghours.SpecialMessage, error) {
	var messages []openinghours.SpecialMessage
	if err := r.get(ctx, SectionSpecialMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveSpecialMessages persists the special messages list.
func (r *PostgresRepository) SaveSpecialMessages(ctx context.Context, messages []openinghours.SpecialMessage) error {
	return r.save(ctx, SectionSpecialMessages, messages)
}
