package reporting

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
	storagemocks "github.com/fakturo-lab/fakturo/internal/mocks/storage"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestService_Stats_ComputesDeltas(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	period := storage.StatsPeriodFor(now)

	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		StatsFacets(mock.Anything, period).
		Return(&storage.StatsFacets{
			TotalRevenue:     10000,
			CurrentRevenue:   1200,
			PreviousRevenue:  1000,
			TotalInvoices:    50,
			CurrentInvoices:  6,
			PreviousInvoices: 4,
			CurrentPaid:      3,
		}, nil).
		Once()

	svc := NewService(store)
	svc.nowFn = func() time.Time { return now }

	stats, source, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)
	require.Equal(t, 10000.0, stats.TotalRevenue)
	require.Equal(t, 20.0, stats.RevenueChange)
	require.Equal(t, int64(50), stats.TotalInvoices)
	require.Equal(t, 50.0, stats.InvoiceChange)
	require.Equal(t, 1200.0, stats.ThisMonthRevenue)
	require.Equal(t, int64(6), stats.ThisMonthInvoices)
	require.Equal(t, int64(3), stats.PaidInvoicesThisMonth)
	require.Equal(t, 1000.0, stats.LastMonthRevenue)
	require.Equal(t, int64(4), stats.LastMonthInvoices)
	require.Equal(t, now, stats.UpdatedAt)
}

func TestService_Stats_ServesFreshCacheWithoutStore(t *testing.T) {
	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		StatsFacets(mock.Anything, mock.Anything).
		Return(&storage.StatsFacets{TotalRevenue: 500, TotalInvoices: 2}, nil).
		Once()

	svc := NewService(store)

	first, source, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)

	second, source, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceCache, source)
	require.Same(t, first, second)
}

func TestService_Stats_ServesStaleOnStoreFailure(t *testing.T) {
	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		StatsFacets(mock.Anything, mock.Anything).
		Return(&storage.StatsFacets{TotalRevenue: 750, TotalInvoices: 3}, nil).
		Once()
	store.EXPECT().
		StatsFacets(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: dial failed", storage.ErrUnavailable)).
		Once()

	clock := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	svc := NewService(store)
	svc.statsCache.SetClock(func() time.Time { return clock })

	first, source, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)

	clock = clock.Add(statsTTL + time.Second)

	stale, source, err := svc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceCacheStale, source)
	require.Same(t, first, stale)
}

func TestService_Stats_ErrorWhenCacheEmpty(t *testing.T) {
	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		StatsFacets(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: dial failed", storage.ErrUnavailable)).
		Once()

	svc := NewService(store)

	_, _, err := svc.Stats(context.Background())
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestClampWindow(t *testing.T) {
	tests := []struct {
		name   string
		months int
		want   int
	}{
		{name: "zero falls back to default", months: 0, want: 6},
		{name: "negative falls back to default", months: -3, want: 6},
		{name: "within bounds", months: 12, want: 12},
		{name: "lower bound", months: 1, want: 1},
		{name: "upper bound", months: 24, want: 24},
		{name: "above bound clamps", months: 36, want: 24},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ClampWindow(tc.months))
		})
	}
}

func TestService_MonthlyRevenue_ZeroFillsWindow(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		MonthlyRevenue(mock.Anything, from, to).
		Return([]storage.MonthBucket{
			{Year: 2026, Month: time.February, Revenue: 1500, InvoiceCount: 3},
		}, nil).
		Once()

	svc := NewService(store)
	svc.nowFn = func() time.Time { return now }

	series, source, err := svc.MonthlyRevenue(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)
	require.Equal(t, []MonthRevenue{
		{Month: "Jan", Year: 2026, Revenue: 0, InvoiceCount: 0},
		{Month: "Feb", Year: 2026, Revenue: 1500, InvoiceCount: 3},
		{Month: "Mar", Year: 2026, Revenue: 0, InvoiceCount: 0},
	}, series)
}

func TestService_MonthlyRevenue_WindowCrossesYearBoundary(t *testing.T) {
	now := time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)
	from := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		MonthlyRevenue(mock.Anything, from, to).
		Return([]storage.MonthBucket{
			{Year: 2025, Month: time.November, Revenue: 900, InvoiceCount: 2},
			{Year: 2026, Month: time.January, Revenue: 400, InvoiceCount: 1},
		}, nil).
		Once()

	svc := NewService(store)
	svc.nowFn = func() time.Time { return now }

	series, source, err := svc.MonthlyRevenue(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)
	require.Equal(t, []MonthRevenue{
		{Month: "Nov", Year: 2025, Revenue: 900, InvoiceCount: 2},
		{Month: "Dec", Year: 2025, Revenue: 0, InvoiceCount: 0},
		{Month: "Jan", Year: 2026, Revenue: 400, InvoiceCount: 1},
	}, series)
}

func TestService_MonthlyRevenue_CachesPerWindowSize(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		MonthlyRevenue(mock.Anything, mock.Anything, mock.Anything).
		Return([]storage.MonthBucket{}, nil).
		Twice()

	svc := NewService(store)
	svc.nowFn = func() time.Time { return now }

	_, source, err := svc.MonthlyRevenue(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)

	// Same window hits the cache.
	series, source, err := svc.MonthlyRevenue(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, SourceCache, source)
	require.Len(t, series, 6)

	// A different window size is a separate cache entry.
	_, source, err = svc.MonthlyRevenue(context.Background(), 3)
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)
}

func TestService_MonthlyRevenue_ServesStaleOnStoreFailure(t *testing.T) {
	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		MonthlyRevenue(mock.Anything, mock.Anything, mock.Anything).
		Return([]storage.MonthBucket{
			{Year: 2026, Month: time.March, Revenue: 100, InvoiceCount: 1},
		}, nil).
		Once()
	store.EXPECT().
		MonthlyRevenue(mock.Anything, mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: dial failed", storage.ErrUnavailable)).
		Once()

	clock := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	svc := NewService(store)
	svc.nowFn = func() time.Time { return clock }
	svc.monthlyCache.SetClock(func() time.Time { return clock })

	first, _, err := svc.MonthlyRevenue(context.Background(), 6)
	require.NoError(t, err)

	clock = clock.Add(reportTTL + time.Second)

	stale, source, err := svc.MonthlyRevenue(context.Background(), 6)
	require.NoError(t, err)
	require.Equal(t, SourceCacheStale, source)
	require.Equal(t, first, stale)
}

func TestService_StatusBreakdown_AllStatusesPresent(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		CountByStatus(mock.Anything).
		Return(map[storage.InvoiceStatus]int64{
			storage.StatusPaid:    2,
			storage.StatusPending: 1,
			storage.StatusOverdue: 1,
		}, nil).
		Once()

	svc := NewService(store)
	svc.nowFn = func() time.Time { return now }

	breakdown, source, err := svc.StatusBreakdown(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)
	require.Equal(t, int64(4), breakdown.Total)
	require.Equal(t, now, breakdown.UpdatedAt)
	require.Equal(t, []StatusEntry{
		{Name: "Zaplatené", Value: 2, Percentage: 50, Color: "#22c55e", Status: storage.StatusPaid},
		{Name: "Čakajúce", Value: 1, Percentage: 25, Color: "#eab308", Status: storage.StatusPending},
		{Name: "Po splatnosti", Value: 1, Percentage: 25, Color: "#ef4444", Status: storage.StatusOverdue},
		{Name: "Koncept", Value: 0, Percentage: 0, Color: "#6b7280", Status: storage.StatusDraft},
	}, breakdown.Data)

	var sum int
	for _, entry := range breakdown.Data {
		sum += entry.Percentage
	}
	require.Equal(t, 100, sum)
}

func TestService_StatusBreakdown_EmptyStore(t *testing.T) {
	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		CountByStatus(mock.Anything).
		Return(map[storage.InvoiceStatus]int64{}, nil).
		Once()

	svc := NewService(store)

	breakdown, source, err := svc.StatusBreakdown(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, source)
	require.Equal(t, int64(0), breakdown.Total)
	require.Len(t, breakdown.Data, 4)
	for _, entry := range breakdown.Data {
		require.Equal(t, int64(0), entry.Value)
		require.Equal(t, 0, entry.Percentage)
	}
}

func TestService_StatusBreakdown_ServesStaleOnStoreFailure(t *testing.T) {
	store := storagemocks.NewInvoiceStore(t)
	store.EXPECT().
		CountByStatus(mock.Anything).
		Return(map[storage.InvoiceStatus]int64{storage.StatusPaid: 1}, nil).
		Once()
	store.EXPECT().
		CountByStatus(mock.Anything).
		Return(nil, fmt.Errorf("%w: dial failed", storage.ErrUnavailable)).
		Once()

	clock := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	svc := NewService(store)
	svc.nowFn = func() time.Time { return clock }
	svc.statusCache.SetClock(func() time.Time { return clock })

	first, _, err := svc.StatusBreakdown(context.Background())
	require.NoError(t, err)

	clock = clock.Add(reportTTL + time.Second)

	stale, source, err := svc.StatusBreakdown(context.Background())
	require.NoError(t, err)
	require.Equal(t, SourceCacheStale, source)
	require.Same(t, first, stale)
}
