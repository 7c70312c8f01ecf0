// Package analytics tracks QR-code campaign scans. Counters are bumped on
// the public redirect path and summarized for the dashboard; nothing here is
// on the status-resolution path.
package analytics

import (
	"context"
	"errors"
	"regexp"
	"time"
)

// ErrInvalidCampaign is returned for campaign slugs that do not match the
// allowed shape.
var ErrInvalidCampaign = errors.New("invalid campaign slug")

// campaignSlugRegex bounds what we accept as a campaign identifier: short
// lowercase slugs like "table-sticker" or "menu2024".
var campaignSlugRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,62}[a-z0-9]$|^[a-z0-9]$`)

// DayCount is the number of scans recorded on one calendar day.
type DayCount struct {
	Day   string `json:"day"` // "2006-01-02"
	Count int64  `json:"count"`
}

// CampaignSummary aggregates a campaign's scan counters.
type CampaignSummary struct {
	Campaign string     `json:"campaign"`
	Total    int64      `json:"total"`
	Days     []DayCount `json:"days"`
}

// Repository is the storage contract for scan counters. Implementations
// must be safe for concurrent use; increments may race freely (counters are
// commutative).
type Repository interface {
	// IncrementScan bumps the counter for the campaign on the given day
	// and its running total.
	IncrementScan(ctx context.Context, campaign, day string) error

	// Campaigns lists every campaign that has recorded at least one scan.
	Campaigns(ctx context.Context) ([]string, error)

	// Total returns a campaign's all-time scan count.
	Total(ctx context.Context, campaign string) (int64, error)

	// CountsForDays returns the per-day counts for the given day keys, in
	// the same order. Days with no scans count zero.
	CountsForDays(ctx context.Context, campaign string, days []string) ([]int64, error)
}

// Service provides campaign scan recording and reporting.
type Service struct {
	repo Repository
}

// NewService creates a new analytics service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// RecordScan registers one scan of the campaign's QR code at the given
// instant. The day bucket uses the instant's own zone; callers pass a
// zone-adjusted time the same way the status path does.
func (s *Service) RecordScan(ctx context.Context, campaign string, at time.Time) error {
	if !campaignSlugRegex.MatchString(campaign) {
		return ErrInvalidCampaign
	}
	return s.repo.IncrementScan(ctx, campaign, at.Format("2006-01-02"))
}

// Summary reports a campaign's total and per-day counts for the windowDays
// days ending at the given instant, oldest day first.
func (s *Service) Summary(ctx context.Context, campaign string, windowDays int, until time.Time) (*CampaignSummary, error) {
	if !campaignSlugRegex.MatchString(campaign) {
		return nil, ErrInvalidCampaign
	}
	if windowDays <= 0 {
		windowDays = 7
	}

	days := make([]string, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		days = append(days, until.AddDate(0, 0, -i).Format("2006-01-02"))
	}

	counts, err := s.repo.CountsForDays(ctx, campaign, days)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Total(ctx, campaign)
	if err != nil {
		return nil, err
	}

	summary := &CampaignSummary{Campaign: campaign, Total: total, Days: make([]DayCount, len(days))}
	for i, day := range days {
		summary.Days[i] = DayCount{Day: day, Count: counts[i]}
	}
	return summary, nil
}

// Campaigns lists every campaign with recorded scans.
func (s *Service) Campaigns(ctx context.Context) ([]string, error) {
	return s.repo.Campaigns(ctx)
}
