package siteconfig

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/oliveraie/oliveraie/internal/siteconfig"

// Metrics holds instruments for monitoring configuration storage reads.
type Metrics struct {
	loadDuration metric.Float64Histogram
	loadTotal    metric.Int64Counter
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
	staleServed  metric.Int64Counter
}

// NewMetrics creates metrics for monitoring the configuration store.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(meterName)

	loadDuration, err := meter.Float64Histogram(
		"siteconfig.load.duration",
		metric.WithDescription("Duration of configuration storage loads in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	loadTotal, err := meter.Int64Counter(
		"siteconfig.load.total",
		metric.WithDescription("Total number of configuration storage loads"),
		metric.WithUnit("{load}"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"siteconfig.cache.hit",
		metric.WithDescription("Number of snapshot cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter(
		"siteconfig.cache.miss",
		metric.WithDescription("Number of snapshot cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	staleServed, err := meter.Int64Counter(
		"siteconfig.stale.served",
		metric.WithDescription("Number of requests answered with a stale snapshot"),
		metric.WithUnit("{snapshot}"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		loadDuration: loadDuration,
		loadTotal:    loadTotal,
		cacheHits:    cacheHits,
		cacheMisses:  cacheMisses,
		staleServed:  staleServed,
	}, nil
}

// recordLoad records a completed storage load.
func (m *Metrics) recordLoad(ctx context.Context, duration time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := []attribute.KeyValue{}
	if err != nil {
		attrs = append(attrs, attribute.Bool("error", true))
	}
	m.loadDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
	m.loadTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
}

// recordCacheHit records a snapshot served from the fresh cache.
func (m *Metrics) recordCacheHit(ctx context.Context) {
	if m == nil {
		return
	}
	m.cacheHits.Add(ctx, 1)
}

// recordCacheMiss records a snapshot request that had to hit storage.
func (m *Metrics) recordCacheMiss(ctx context.Context) {
	if m == nil {
		return
	}
	m.cacheMisses.Add(ctx, 1)
}

// recordStale records a request answered with an expired snapshot because
// storage was unavailable.
func (m *Metrics) recordStale(ctx context.Context) {
	if m == nil {
		return
	}
	m.staleServed.Add(ctx, 1)
}
