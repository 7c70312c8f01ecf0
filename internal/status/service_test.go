package status_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oliveraie/oliveraie/internal/siteconfig"
	"github.com/oliveraie/oliveraie/internal/status"
	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

func newStatusService(t *testing.T, seed func(ctx context.Context, cfg *siteconfig.Service)) *status.Service {
	t.Helper()
	cfg := siteconfig.NewService(siteconfig.ServiceConfig{
		Repository: siteconfig.NewInMemoryRepository(),
		Logger:     zerolog.Nop(),
		CacheTTL:   time.Millisecond,
	})
	if seed != nil {
		seed(context.Background(), cfg)
	}
	return status.NewService(status.ServiceConfig{
		Config: cfg,
		Logger: zerolog.Nop(),
	})
}

// paris returns an instant expressed in the configured default timezone.
func paris(t *testing.T, value string) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	parsed, err := time.ParseInLocation("2006-01-02T15:04:05", value, loc)
	require.NoError(t, err)
	return parsed
}

func TestService_At_OpenDuringService(t *testing.T) {
	service := newStatusService(t, nil)

	// Tuesday 2024-01-02, during the default lunch service.
	report, err := service.At(context.Background(), "fr", paris(t, "2024-01-02T12:30:00"))
	require.NoError(t, err)

	assert.True(t, report.IsOpen)
	assert.Equal(t, "Ouvert actuellement", report.Badge)
	require.NotNil(t, report.CurrentPeriod)
	assert.Equal(t, openinghours.TimeOfDay("12:00"), report.CurrentPeriod.Open)
	assert.Equal(t, "fr", report.Locale)
	assert.Equal(t, "Europe/Paris", report.Timezone)
}

func TestService_At_ClosedMonday(t *testing.T) {
	service := newStatusService(t, nil)

	report, err := service.At(context.Background(), "en", paris(t, "2024-01-01T13:00:00"))
	require.NoError(t, err)

	assert.False(t, report.IsOpen)
	assert.Equal(t, "Closed — opens tomorrow at 12:00", report.Badge)
	require.NotNil(t, report.NextOpening)
	assert.Equal(t, "tuesday", report.NextOpening.Day)
	assert.False(t, report.NextOpening.IsToday)
}

func TestService_At_OpeningSoon(t *testing.T) {
	service := newStatusService(t, nil)

	// Tuesday 18:30, dinner opens at 19:00.
	report, err := service.At(context.Background(), "en", paris(t, "2024-01-02T18:30:00"))
	require.NoError(t, err)

	assert.False(t, report.IsOpen)
	assert.Equal(t, "Opens in 30 min", report.Badge)
}

func TestService_At_EmergencyClosingOverridesSchedule(t *testing.T) {
	service := newStatusService(t, func(ctx context.Context, cfg *siteconfig.Service) {
		err := cfg.UpdateEmergencyClosings(ctx, []openinghours.EmergencyClosing{
			{Title: "Dégât des eaux", IsActive: true, StartDate: "2024-01-02", EndDate: "2024-01-03", Priority: 1},
		})
		require.NoError(t, err)
	})

	// During lunch service, but the emergency closing wins.
	report, err := service.At(context.Background(), "fr", paris(t, "2024-01-02T12:30:00"))
	require.NoError(t, err)

	assert.False(t, report.IsOpen)
	require.NotNil(t, report.ActiveEmergency)
	assert.Equal(t, "Dégât des eaux", report.ActiveEmergency.Title)
	assert.Equal(t, "Fermé actuellement", report.Badge)
}

func TestService_At_ScheduledClosingAndUpcoming(t *testing.T) {
	service := newStatusService(t, func(ctx context.Context, cfg *siteconfig.Service) {
		err := cfg.UpdateScheduledClosings(ctx, []openinghours.ScheduledClosing{
			{Title: "Travaux", IsActive: true, StartDate: "2024-01-02", EndDate: "2024-01-03"},
			{Title: "Jour férié", IsActive: true, Date: "2024-01-10"},
		})
		require.NoError(t, err)
	})

	report, err := service.At(context.Background(), "fr", paris(t, "2024-01-02T12:30:00"))
	require.NoError(t, err)

	assert.False(t, report.IsOpen)
	require.NotNil(t, report.ActiveClosing)
	assert.Equal(t, "Travaux", report.ActiveClosing.Title)
	require.Len(t, report.UpcomingClosings, 1)
	assert.Equal(t, "Jour férié", report.UpcomingClosings[0].Title)
}

func TestService_At_ActiveMessagesSortedByPriority(t *testing.T) {
	service := newStatusService(t, func(ctx context.Context, cfg *siteconfig.Service) {
		err := cfg.UpdateSpecialMessages(ctx, []openinghours.SpecialMessage{
			{Title: "Nouvelle carte", IsActive: true, StartDate: "2024-01-01", Priority: 5},
			{Title: "Réservez pour la Saint-Valentin", IsActive: true, StartDate: "2024-01-01", EndDate: "2024-02-14", Priority: 1},
			{Title: "Expirée", IsActive: true, StartDate: "2023-01-01", EndDate: "2023-02-01", Priority: 0},
		})
		require.NoError(t, err)
	})

	report, err := service.At(context.Background(), "fr", paris(t, "2024-01-02T12:30:00"))
	require.NoError(t, err)

	require.Len(t, report.Messages, 2)
	assert.Equal(t, "Réservez pour la Saint-Valentin", report.Messages[0].Title)
	assert.Equal(t, "Nouvelle carte", report.Messages[1].Title)
}

func TestService_WeekOverview(t *testing.T) {
	service := newStatusService(t, nil)

	t.Run("english uses 12-hour display", func(t *testing.T) {
		overview, err := service.WeekOverview(context.Background(), "en-US")
		require.NoError(t, err)
		require.Len(t, overview, 7)

		assert.Equal(t, "monday", overview[0].Key)
		assert.False(t, overview[0].IsOpen)
		assert.Empty(t, overview[0].Periods)

		tuesday := overview[1]
		require.Len(t, tuesday.Periods, 2)
		assert.Equal(t, "12:00 PM", tuesday.Periods[0].OpenDisplay)
		assert.Equal(t, "7:00 PM", tuesday.Periods[1].OpenDisplay)
	})

	t.Run("french uses 24-hour display", func(t *testing.T) {
		overview, err := service.WeekOverview(context.Background(), "fr")
		require.NoError(t, err)

		tuesday := overview[1]
		require.Len(t, tuesday.Periods, 2)
		assert.Equal(t, "12:00", tuesday.Periods[0].OpenDisplay)
		assert.Equal(t, "22:30", tuesday.Periods[1].CloseDisplay)
	})
}
