package analytics

import (
	"context"
	"sort"
	"sync"
)

// InMemoryRepository is a map-backed Repository for tests and local
// development.
type InMemoryRepository struct {
	mu     sync.Mutex
	counts map[string]map[string]int64 // campaign -> day -> count
	totals map[string]int64
}

// NewInMemoryRepository creates an empty in-memory analytics repository.
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		counts: make(map[string]map[string]int64),
		totals: make(map[string]int64),
	}
}

// IncrementScan bumps the day and total counters.
func (r *InMemoryRepository) IncrementScan(_ context.Context, campaign, day string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.counts[campaign] == nil {
		r.counts[campaign] = make(map[string]int64)
	}
	r.counts[campaign][day]++
	r.totals[campaign]++
	return nil
}

// Campaigns lists known campaign slugs, sorted.
func (r *InMemoryRepository) Campaigns(_ context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	campaigns := make([]string, 0, len(r.totals))
	for campaign := range r.totals {
		campaigns = append(campaigns, campaign)
	}
	sort.Strings(campaigns)
	return campaigns, nil
}

// Total returns a campaign's all-time scan count.
func (r *InMemoryRepository) Total(_ context.Context, campaign string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.totals[campaign], nil
}

// CountsForDays returns per-day counts in request order.
func (r *InMemoryRepository) CountsForDays(_ context.Context, campaign string, days []string) ([]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	counts := make([]int64, len(days))
	for i, day := range days {
		counts[i] = r.counts[campaign][day]
	}
	return counts, nil
}
