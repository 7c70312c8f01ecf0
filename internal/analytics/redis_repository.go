package analytics

import (
	"context"
	"fmt"
	"sort"

	"github.com/redis/go-redis/v9"
)

// Redis key layout:
//
//	analytics:qr:campaigns              set of known campaign slugs
//	analytics:qr:<campaign>:total       all-time counter
//	analytics:qr:<campaign>:<day>       per-day counter
const (
	campaignsKey = "analytics:qr:campaigns"
	counterFmt   = "analytics:qr:%s:%s"
)

// RedisRepository stores scan counters in Redis.
type RedisRepository struct {
	client redis.UniversalClient
}

// NewRedisRepository creates a Redis-backed analytics repository.
func NewRedisRepository(client redis.UniversalClient) *RedisRepository {
	return &RedisRepository{client: client}
}

// IncrementScan bumps the day and total counters in one pipeline round trip.
func (r *RedisRepository) IncrementScan(ctx context.Context, campaign, day string) error {
	pipe := r.client.Pipeline()
	pipe.SAdd(ctx, campaignsKey, campaign)
	pipe.Incr(ctx, fmt.Sprintf(counterFmt, campaign, day))
	pipe.Incr(ctx, fmt.Sprintf(counterFmt, campaign, "total"))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("increment scan: %w", err)
	}
	return nil
}

// Campaigns lists known campaign slugs, sorted for stable output.
func (r *RedisRepository) Campaigns(ctx context.Context) ([]string, error) {
	campaigns, err := r.client.SMembers(ctx, campaignsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	sort.Strings(campaigns)
	return campaigns, nil
}

// Total returns a campaign's all-time scan count, zero when unknown.
func (r *RedisRepository) Total(ctx context.Context, campaign string) (int64, error) {
	total, err := r.client.Get(ctx, fmt.Sprintf(counterFmt, campaign, "total")).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("get total: %w", err)
	}
	return total, nil
}

// CountsForDays fetches the per-day counters with a single MGET.
func (r *RedisRepository) CountsForDays(ctx context.Context, campaign string, days []string) ([]int64, error) {
	if len(days) == 0 {
		return nil, nil
	}

	keys := make([]string, len(days))
	for i, day := range days {
		keys[i] = fmt.Sprintf(counterFmt, campaign, day)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get day counts: %w", err)
	}

	counts := make([]int64, len(days))
	for i, value := range values {
		if value == nil {
			continue
		}
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var n int64
		if _, err := fmt.Sscan(raw, &n); err == nil {
			counts[i] = n
		}
	}
	return counts, nil
}
