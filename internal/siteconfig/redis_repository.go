package siteconfig

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// keyPrefix namespaces every configuration key in Redis.
const keyPrefix = "siteconfig:"

// RedisRepository stores each configuration section as a JSON blob under a
// namespaced key. This mirrors the original site's key-value layout, so a
// dump from it restores directly.
type RedisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed configuration repository.
func NewRedisRepository(client redis.UniversalClient) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) get(ctx context.Context, section string, out any) error {
	raw, err := r.client.Get(ctx, keyPrefix+section).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("get %s: %w", section, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("decode %s: %w", section, err)
	}
	return nil
}

func (r *RedisRepository) save(ctx context.Context, section string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", section, err)
	}
	if err := r.client.Set(ctx, keyPrefix+section, raw, 0).Err(); err != nil {
		return fmt.Errorf("save %s: %w", section, err)
	}
	return nil
}

// GetHours retrieves the weekly schedule.
func (r *RedisRepository) GetHours(ctx context.Context) (openinghours.WeeklySchedule, error) {
	var schedule openinghours.WeeklySchedule
	if err := r.get(ctx, SectionHours, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SaveHours persists the weekly schedule.
func (r *RedisRepository) SaveHours(ctx context.Context, schedule openinghours.WeeklySchedule) error {
	return r.save(ctx, SectionHours, schedule)
}

// GetTimezone retrieves the configured display timezone.
func (r *RedisRepository) GetTimezone(ctx context.Context) (string, error) {
	var timezone string
	if err := r.get(ctx, SectionTimezone, &timezone); err != nil {
		return "", err
	}
	return timezone, nil
}

// SaveTimezone persists the display timezone.
func (r *RedisRepository) SaveTimezone(ctx context.Context, timezone string) error {
	return r.save(ctx, SectionTimezone, timezone)
}

// GetScheduledClosings retrieves the scheduled closings list.
func (r *RedisRepository) GetScheduledClosings(ctx context.Context) ([]openinghours.ScheduledClosing, error) {
	var closings []openinghours.ScheduledClosing
	if err := r.get(ctx, SectionScheduledClosings, &closings); err != nil {
		return nil, err
	}
	return closings, nil
}

// SaveScheduledClosings persists the scheduled closings list.
func (r *RedisRepository) SaveScheduledClosings(ctx context.Context, closings []openinghours.ScheduledClosing) error {
	return r.save(ctx, SectionScheduledClosings, closings)
}

// GetEmergencyClosings retrieves the emergency closings list.
func (r *RedisRepository) GetEmergencyClosings(ctx context.Context) ([]openinghours.EmergencyClosing, error) {
	var closings []openinghours.EmergencyClosing
	if err := r.get(ctx, SectionEmergencyClosings, &closings); err != nil {
		return nil, err
	}
	return closings, nil
}

// SaveEmergencyClosings persists the emergency closings list.
func (r *RedisRepository) SaveEmergencyClosings(ctx context.Context, closings []openinghours.EmergencyClosing) error {
	return r.save(ctx, SectionEmergencyClosings, closings)
}

// GetSpecialMessages retrieves the special messages list.
func (r *RedisRepository) GetSpecialMessages(ctx context.Context) ([]openinghours.SpecialMessage, error) {
	var messages []openinghours.SpecialMessage
	if err := r.get(ctx, SectionSpecialMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveSpecialMessages persists the special messages list.
func (r *RedisRepository) SaveSpecialMessages(ctx context.Context, messages []openinghours.SpecialMessage) error {
	return r.save(ctx, SectionSpecialMessages, messages)
}
