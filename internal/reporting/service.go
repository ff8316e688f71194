// Package reporting implements the dashboard read paths: aggregate
// statistics, the trailing monthly revenue series and the status breakdown.
// Every path shares the same policy: serve fresh cache hits without touching
// the store, recompute on miss or expiry, and fall back to the last cached
// value when the store fails.
package reporting

import (
	"context"
	"log/slog"
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/cache"
	"github.com/fakturo-lab/fakturo/internal/core/storage"
)

const (
	statsTTL   = 5 * time.Minute
	reportTTL  = 2 * time.Minute
	maxWindow  = 24
	defWindow  = 6
	windowKeys = maxWindow // one cached series per window size
)

// monthLabels is the fixed localized month abbreviation table, indexed by
// zero-based month number.
var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "Máj", "Jún",
	"Júl", "Aug", "Sep", "Okt", "Nov", "Dec",
}

// statusConfig fixes the breakdown vocabulary: display order, localized
// labels and chart colors. Reports left-join against this table so every
// status appears even with zero invoices.
var statusConfig = []struct {
	status storage.InvoiceStatus
	name   string
	color  string
}{
	{storage.StatusPaid, "Zaplatené", "#22c55e"},
	{storage.StatusPending, "Čakajúce", "#eab308"},
	{storage.StatusOverdue, "Po splatnosti", "#ef4444"},
	{storage.StatusDraft, "Koncept", "#6b7280"},
}

// Service computes and caches the dashboard reports.
type Service struct {
	invoices storage.InvoiceStore

	statsCache   *cache.TTL[*StatsResponse]
	monthlyCache *cache.KeyedTTL[int, []MonthRevenue]
	statusCache  *cache.TTL[*StatusBreakdown]

	nowFn func() time.Time
}

// NewService creates the reporting service over an invoice store.
func NewService(invoices storage.InvoiceStore) *Service {
	return &Service{
		invoices:     invoices,
		statsCache:   cache.NewTTL[*StatsResponse](statsTTL),
		monthlyCache: cache.NewKeyedTTL[int, []MonthRevenue](windowKeys, reportTTL),
		statusCache:  cache.NewTTL[*StatusBreakdown](reportTTL),
		nowFn: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Stats returns the dashboard statistics, preferring a fresh cached value and
// falling back to a stale one when the store fails.
func (s *Service) Stats(ctx context.Context) (*StatsResponse, Source, error) {
	if cached, state := s.statsCache.Get(); state == cache.Fresh {
		return cached, SourceCache, nil
	}

	stats, err := s.computeStats(ctx)
	if err != nil {
		if cached, state := s.statsCache.Get(); state != cache.Empty {
			slog.Warn("[Reporting] Serving stale stats after store failure", "error", err)
			return cached, SourceCacheStale, nil
		}
		return nil, "", err
	}

	s.statsCache.Set(stats)
	return stats, SourceDatabase, nil
}

func (s *Service) computeStats(ctx context.Context) (*StatsResponse, error) {
	now := s.nowFn()
	facets, err := s.invoices.StatsFacets(ctx, storage.StatsPeriodFor(now))
	if err != nil {
		return nil, err
	}

	return &StatsResponse{
		TotalRevenue:          facets.TotalRevenue,
		RevenueChange:         percentChange(facets.CurrentRevenue, facets.PreviousRevenue),
		TotalInvoices:         facets.TotalInvoices,
		InvoiceChange:         percentChange(float64(facets.CurrentInvoices), float64(facets.PreviousInvoices)),
		ThisMonthRevenue:      facets.CurrentRevenue,
		ThisMonthInvoices:     facets.CurrentInvoices,
		PaidInvoicesThisMonth: facets.CurrentPaid,
		LastMonthRevenue:      facets.PreviousRevenue,
		LastMonthInvoices:     facets.PreviousInvoices,
		UpdatedAt:             now,
	}, nil
}

// ClampWindow bounds a requested window size to [1, 24], substituting the
// default for zero or negative values.
func ClampWindow(months int) int {
	if months <= 0 {
		return defWindow
	}
	if months > maxWindow {
		return maxWindow
	}
	return months
}

// MonthlyRevenue returns the trailing monthly revenue series for the given
// window size, oldest month first, with months lacking paid invoices
// zero-filled. The series is cached per window size.
func (s *Service) MonthlyRevenue(ctx context.Context, months int) ([]MonthRevenue, Source, error) {
	months = ClampWindow(months)

	if cached, state := s.monthlyCache.Get(months); state == cache.Fresh {
		return cached, SourceCache, nil
	}

	series, err := s.computeMonthlyRevenue(ctx, months)
	if err != nil {
		if cached, state := s.monthlyCache.Get(months); state != cache.Empty {
			slog.Warn("[Reporting] Serving stale monthly revenue after store failure",
				"months", months, "error", err)
			return cached, SourceCacheStale, nil
		}
		return nil, "", err
	}

	s.monthlyCache.Set(months, series)
	return series, SourceDatabase, nil
}

func (s *Service) computeMonthlyRevenue(ctx context.Context, months int) ([]MonthRevenue, error) {
	now := s.nowFn()
	year, month, _ := now.Date()

	// Window spans the first day of the oldest month up to (exclusive) the
	// first day of next month, so the current partial month is included.
	from := time.Date(year, month-time.Month(months-1), 1, 0, 0, 0, 0, now.Location())
	to := time.Date(year, month+1, 1, 0, 0, 0, 0, now.Location())

	buckets, err := s.invoices.MonthlyRevenue(ctx, from, to)
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month time.Month
	}
	byMonth := make(map[key]storage.MonthBucket, len(buckets))
	for _, b := range buckets {
		byMonth[key{b.Year, b.Month}] = b
	}

	series := make([]MonthRevenue, 0, months)
	for i := 0; i < months; i++ {
		cursor := from.AddDate(0, i, 0)
		y, m, _ := cursor.Date()
		entry := MonthRevenue{
			Month: monthLabels[int(m)-1],
			Year:  y,
		}
		if b, ok := byMonth[key{y, m}]; ok {
			entry.Revenue = b.Revenue
			entry.InvoiceCount = b.InvoiceCount
		}
		series = append(series, entry)
	}
	return series, nil
}

// StatusBreakdown returns the invoice count and share per status, with every
// enumerated status present even at zero.
func (s *Service) StatusBreakdown(ctx context.Context) (*StatusBreakdown, Source, error) {
	if cached, state := s.statusCache.Get(); state == cache.Fresh {
		return cached, SourceCache, nil
	}

	breakdown, err := s.computeStatusBreakdown(ctx)
	if err != nil {
		if cached, state := s.statusCache.Get(); state != cache.Empty {
			slog.Warn("[Reporting] Serving stale status breakdown after store failure", "error", err)
			return cached, SourceCacheStale, nil
		}
		return nil, "", err
	}

	s.statusCache.Set(breakdown)
	return breakdown, SourceDatabase, nil
}

func (s *Service) computeStatusBreakdown(ctx context.Context) (*StatusBreakdown, error) {
	counts, err := s.invoices.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	var total int64
	for _, cfg := range statusConfig {
		total += counts[cfg.status]
	}

	entries := make([]StatusEntry, 0, len(statusConfig))
	for _, cfg := range statusConfig {
		value := counts[cfg.status]
		entries = append(entries, StatusEntry{
			Name:       cfg.name,
			Value:      value,
			Percentage: wholePercent(value, total),
			Color:      cfg.color,
			Status:     cfg.status,
		})
	}

	return &StatusBreakdown{
		Data:      entries,
		Total:     total,
		UpdatedAt: s.nowFn(),
	}, nil
}
