package reporting

import (
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/storage"
)

// Source tags where a response payload came from. Surfaced to clients as the
// X-Data-Source header so degraded (cache-served) data is observable.
type Source string

const (
	SourceDatabase   Source = "database"
	SourceCache      Source = "cache"
	SourceCacheStale Source = "cache-stale"
)

// StatsResponse is the dashboard statistics payload.
type StatsResponse struct {
	TotalRevenue          float64   `json:"totalRevenue"`
	RevenueChange         float64   `json:"revenueChange"`
	TotalInvoices         int64     `json:"totalInvoices"`
	InvoiceChange         float64   `json:"invoiceChange"`
	ThisMonthRevenue      float64   `json:"thisMonthRevenue"`
	ThisMonthInvoices     int64     `json:"thisMonthInvoices"`
	PaidInvoicesThisMonth int64     `json:"paidInvoicesThisMonth"`
	LastMonthRevenue      float64   `json:"lastMonthRevenue"`
	LastMonthInvoices     int64     `json:"lastMonthInvoices"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// MonthRevenue is one entry of the trailing monthly revenue series.
type MonthRevenue struct {
	Month        string  `json:"month"`
	Year         int     `json:"year"`
	Revenue      float64 `json:"revenue"`
	InvoiceCount int64   `json:"invoiceCount"`
}

// StatusEntry is one slice of the status breakdown.
type StatusEntry struct {
	Name       string                `json:"name"`
	Value      int64                 `json:"value"`
	Percentage int                   `json:"percentage"`
	Color      string                `json:"color"`
	Status     storage.InvoiceStatus `json:"status"`
}

// StatusBreakdown is the status distribution payload.
type StatusBreakdown struct {
	Data      []StatusEntry `json:"data"`
	Total     int64         `json:"total"`
	UpdatedAt time.Time     `json:"updatedAt"`
}
