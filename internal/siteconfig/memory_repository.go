package siteconfig

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development. Values round-trip through JSON so it behaves like the real
// backends, including ErrNotFound for unwritten sections.
type InMemoryRepository struct {
	mu       sync.RWMutex
	sections map[string][]byte
}

// NewInMemoryRepository creates an empty in-memory repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{sections: make(map[string][]byte)}
}

func (r *InMemoryRepository) get(section string, out any) error {
	r.mu.RLock()
	raw, ok := r.sections[section]
	r.mu.RUnlock()
	if !ok {
		return ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

func (r *InMemoryRepository) save(section string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.sections[section] = raw
	r.mu.Unlock()
	return nil
}

// GetHours retrieves the weekly schedule.
func (r *InMemoryRepository) GetHours(_ context.Context) (openinghours.WeeklySchedule, error) {
	var schedule openinghours.WeeklySchedule
	if err := r.get(SectionHours, &schedule); err != nil {
		return nil, err
	}
	return schedule, nil
}

// SaveHours persists the weekly schedule.
func (r *InMemoryRepository) SaveHours(_ context.Context, schedule openinghours.WeeklySchedule) error {
	return r.save(SectionHours, schedule)
}

// GetTimezone retrieves the configured display timezone.
func (r *InMemoryRepository) GetTimezone(_ context.Context) (string, error) {
	var timezone string
	if err := r.get(SectionTimezone, &timezone); err != nil {
		return "", err
	}
	return timezone, nil
}

// SaveTimezone persists the display timezone.
func (r *InMemoryRepository) SaveTimezone(_ context.Context, timezone string) error {
	return r.save(SectionTimezone, timezone)
}

// GetScheduledClosings retrieves the scheduled closings list.
func (r *InMemoryRepository) GetScheduledClosings(_ context.Context) ([]openinghours.ScheduledClosing, error) {
	var closings []openinghours.ScheduledClosing
	if err := r.get(SectionScheduledClosings, &closings); err != nil {
		return nil, err
	}
	return closings, nil
}

// SaveScheduledClosings persists the scheduled closings list.
func (r *InMemoryRepository) SaveScheduledClosings(_ context.Context, closings []openinghours.ScheduledClosing) error {
	return r.save(SectionScheduledClosings, closings)
}

// GetEmergencyClosings retrieves the emergency closings list.
func (r *InMemoryRepository) GetEmergencyClosings(_ context.Context) ([]openinghours.EmergencyClosing, error) {
	var closings []openinghours.EmergencyClosing
	if err := r.get(SectionEmergencyClosings, &closings); err != nil {
		return nil, err
	}
	return closings, nil
}

// SaveEmergencyClosings persists the emergency closings list.
func (r *InMemoryRepository) SaveEmergencyClosings(_ context.Context, closings []openinghours.EmergencyClosing) error {
	return r.save(SectionEmergencyClosings, closings)
}

// GetSpecialMessages retrieves the special messages list.
func (r *InMemoryRepository) GetSpecialMessages(_ context.Context) ([]openinghours.SpecialMessage, error) {
	var messages []openinghours.SpecialMessage
	if err := r.get(SectionSpecialMessages, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

// SaveSpecialMessages persists the special messages list.
func (r *InMemoryRepository) SaveSpecialMessages(_ context.Context, messages []openinghours.SpecialMessage) error {
	return r.save(SectionSpecialMessages, messages)
}
