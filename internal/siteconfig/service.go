package siteconfig

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// ServiceConfig holds configuration for the site configuration service.
type ServiceConfig struct {
	Repository Repository
	Logger     zerolog.Logger

	// CacheTTL is how long a fetched snapshot is served without going back
	// to storage. Default: 30 seconds.
	CacheTTL time.Duration

	// Metrics is optional; when nil no instruments are recorded.
	Metrics *Metrics
}

// Service serves configuration snapshots with a short-lived cache and a
// circuit breaker around storage reads. When storage is unavailable the last
// good snapshot keeps being served stale: the public status endpoint
// degrades, it never fails.
type Service struct {
	repo     Repository
	logger   zerolog.Logger
	cacheTTL time.Duration
	breaker  *gobreaker.CircuitBreaker[*Snapshot]
	metrics  *Metrics

	mu          sync.RWMutex
	cached      *Snapshot
	cacheExpiry time.Time
}

// NewService creates a new site configuration service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Second
	}

	breaker := gobreaker.NewCircuitBreaker[*Snapshot](gobreaker.Settings{
		Name:    "siteconfig",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Service{
		repo:     cfg.Repository,
		logger:   cfg.Logger,
		cacheTTL: cacheTTL,
		breaker:  breaker,
		metrics:  cfg.Metrics,
	}
}

// Snapshot returns the current configuration snapshot, from cache when
// fresh. On storage failure a stale snapshot is returned if one exists.
func (s *Service) Snapshot(ctx context.Context) (*Snapshot, error) {
	if snapshot := s.getCached(false); snapshot != nil {
		s.metrics.recordCacheHit(ctx)
		return snapshot, nil
	}
	s.metrics.recordCacheMiss(ctx)

	snapshot, err := s.breaker.Execute(func() (*Snapshot, error) {
		start := time.Now()
		loaded, loadErr := s.load(ctx)
		s.metrics.recordLoad(ctx, time.Since(start), loadErr)
		return loaded, loadErr
	})
	if err != nil {
		if stale := s.getCached(true); stale != nil {
			s.metrics.recordStale(ctx)
			s.logger.Warn().Err(err).
				Time("fetched_at", stale.FetchedAt).
				Msg("configuration storage unavailable, serving stale snapshot")
			return stale, nil
		}
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	s.setCached(snapshot)
	return snapshot, nil
}

// Warmup fetches an initial snapshot with exponential-backoff retries so a
// restart during a storage blip still comes up serving data.
func (s *Service) Warmup(ctx context.Context) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		_, err := s.Snapshot(ctx)
		return err
	}, backoff.WithContext(bo, ctx))
}

// load assembles a snapshot from storage. Sections that have never been
// written fall back to defaults; any other storage error aborts the load.
func (s *Service) load(ctx context.Context) (*Snapshot, error) {
	hours, err := s.repo.GetHours(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		hours = DefaultSchedule()
	}

	timezone, err := s.repo.GetTimezone(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		timezone = DefaultTimezone
	}

	scheduled, err := s.repo.GetScheduledClosings(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	emergency, err := s.repo.GetEmergencyClosings(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	messages, err := s.repo.GetSpecialMessages(ctx)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	return &Snapshot{
		Timezone:          timezone,
		Hours:             hours,
		ScheduledClosings: scheduled,
		EmergencyClosings: emergency,
		SpecialMessages:   messages,
		FetchedAt:         time.Now(),
	}, nil
}

// UpdateHours validates and persists a new weekly schedule.
func (s *Service) UpdateHours(ctx context.Context, schedule openinghours.WeeklySchedule) error {
	if fieldErrors := ValidateSchedule(schedule); len(fieldErrors) > 0 {
		return &ValidationError{Errors: fieldErrors}
	}
	if err := s.repo.SaveHours(ctx, schedule); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// UpdateTimezone validates and persists the display timezone.
func (s *Service) UpdateTimezone(ctx context.Context, timezone string) error {
	if _, err := time.LoadLocation(timezone); err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "timezone", Message: "unknown timezone name"}}}
	}
	if err := s.repo.SaveTimezone(ctx, timezone); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// UpdateScheduledClosings validates and persists the scheduled closings
// list, assigning IDs to new records.
func (s *Service) UpdateScheduledClosings(ctx context.Context, closings []openinghours.ScheduledClosing) error {
	var fieldErrors []FieldError
	for i := range closings {
		if closings[i].ID == "" {
			closings[i].ID = newID("scl")
		}
		fieldErrors = append(fieldErrors, validateScheduledClosing(i, closings[i])...)
	}
	if len(fieldErrors) > 0 {
		return &ValidationError{Errors: fieldErrors}
	}
	if err := s.repo.SaveScheduledClosings(ctx, closings); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// UpdateEmergencyClosings validates and persists the emergency closings
// list, assigning IDs to new records.
func (s *Service) UpdateEmergencyClosings(ctx context.Context, closings []openinghours.EmergencyClosing) error {
	var fieldErrors []FieldError
	for i := range closings {
		if closings[i].ID == "" {
			closings[i].ID = newID("emg")
		}
		fieldErrors = append(fieldErrors, validateEmergencyClosing(i, closings[i])...)
	}
	if len(fieldErrors) > 0 {
		return &ValidationError{Errors: fieldErrors}
	}
	if err := s.repo.SaveEmergencyClosings(ctx, closings); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

// UpdateSpecialMessages validates and persists the special messages list,
// assigning IDs to new records.
func (s *Service) UpdateSpecialMessages(ctx context.Context, messages []openinghours.SpecialMessage) error {
	var fieldErrors []FieldError
	for i := range messages {
		if messages[i].ID == "" {
			messages[i].ID = newID("msg")
		}
		fieldErrors = append(fieldErrors, validateSpecialMessage(i, messages[i])...)
	}
	if len(fieldErrors) > 0 {
		return &ValidationError{Errors: fieldErrors}
	}
	if err := s.repo.SaveSpecialMessages(ctx, messages); err != nil {
		return err
	}
	s.invalidate()
	return nil
}

func (s *Service) getCached(allowStale bool) *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil {
		return nil
	}
	if !allowStale && time.Now().After(s.cacheExpiry) {
		return nil
	}
	return s.cached
}

func (s *Service) setCached(snapshot *Snapshot) {
	s.mu.Lock()
	s.cached = snapshot
	s.cacheExpiry = time.Now().Add(s.cacheTTL)
	s.mu.Unlock()
}

// invalidate drops the cached snapshot so the next read sees the write.
func (s *Service) invalidate() {
	s.mu.Lock()
	s.cached = nil
	s.cacheExpiry = time.Time{}
	s.mu.Unlock()
}

func newID(prefix string) string {
	return prefix + "_" + uuid.New().String()[:22]
}
