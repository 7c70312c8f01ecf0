package siteconfig_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveraie/oliveraie/internal/siteconfig"
	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

func newRedisRepository(t *testing.T) *siteconfig.RedisRepository {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return siteconfig.NewRedisRepository(client)
}

func TestRedisRepository_UnwrittenSectionsReturnNotFound(t *testing.T) {
	repo := newRedisRepository(t)
	ctx := context.Background()

	_, err := repo.GetHours(ctx)
	assert.ErrorIs(t, err, siteconfig.ErrNotFound)

	_, err = repo.GetTimezone(ctx)
	assert.ErrorIs(t, err, siteconfig.ErrNotFound)

	_, err = repo.GetSpecialMessages(ctx)
	assert.ErrorIs(t, err, siteconfig.ErrNotFound)
}

func TestRedisRepository_HoursRoundTrip(t *testing.T) {
	repo := newRedisRepository(t)
	ctx := context.Background()

	schedule := siteconfig.DefaultSchedule()
	require.NoError(t, repo.SaveHours(ctx, schedule))

	got, err := repo.GetHours(ctx)
	require.NoError(t, err)
	assert.Equal(t, schedule, got)
}

func TestRedisRepository_ClosingsAndMessages(t *testing.T) {
	repo := newRedisRepository(t)
	ctx := context.Background()

	closings := []openinghours.ScheduledClosing{
		{ID: "scl_1", Title: "Congés annuels", IsActive: true, StartDate: "2024-08-01", EndDate: "2024-08-21"},
	}
	require.NoError(t, repo.SaveScheduledClosings(ctx, closings))

	emergencies := []openinghours.EmergencyClosing{
		{ID: "emg_1", Title: "Panne électrique", IsActive: true, StartDate: "2024-03-01", EndDate: "2024-03-02", Priority: 1},
	}
	require.NoError(t, repo.SaveEmergencyClosings(ctx, emergencies))

	messages := []openinghours.SpecialMessage{
		{ID: "msg_1", Type: "info", Title: "Menu de Noël", Message: "Réservations ouvertes", IsActive: true, StartDate: "2024-12-01", Priority: 1},
	}
	require.NoError(t, repo.SaveSpecialMessages(ctx, messages))

	gotClosings, err := repo.GetScheduledClosings(ctx)
	require.NoError(t, err)
	assert.Equal(t, closings, gotClosings)

	gotEmergencies, err := repo.GetEmergencyClosings(ctx)
	require.NoError(t, err)
	assert.Equal(t, emergencies, gotEmergencies)

	gotMessages, err := repo.GetSpecialMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, messages, gotMessages)
}

func TestRedisRepository_TimezoneRoundTrip(t *testing.T) {
	repo := newRedisRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.SaveTimezone(ctx, "Europe/Paris"))
	got, err := repo.GetTimezone(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Europe/Paris", got)
}
