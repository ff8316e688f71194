package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound marks single-entity lookups that matched nothing.
	// List and aggregate reads never return it; emptiness is not an error.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID marks a malformed document identifier. It is raised before
	// any store round-trip so that a bad id can never surface as a
	// driver-level cast error.
	ErrInvalidID = errors.New("invalid document id")

	// ErrInvalidQuery marks query parameters that fail validation.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrUnavailable marks a failure to reach the store at all, as opposed to
	// a failure executing a query on a live connection.
	ErrUnavailable = errors.New("store unavailable")
)

// InvoiceQuery scopes and pages an invoice listing. Page and Limit are
// assumed pre-clamped by the listing service.
type InvoiceQuery struct {
	Search   string
	FolderID string
	Status   InvoiceStatus
	Page     int
	Limit    int
}

// Skip returns the number of documents to skip for the requested page.
func (q InvoiceQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// ClientQuery scopes and pages a client listing.
type ClientQuery struct {
	Search string
	Page   int
	Limit  int
}

// Skip returns the number of documents to skip for the requested page.
func (q ClientQuery) Skip() int64 {
	return int64(q.Page-1) * int64(q.Limit)
}

// SearchQuery bounds the quick-search endpoint.
type SearchQuery struct {
	Term  string
	Limit int
}

// InvoiceStore is the read surface over the invoice collection.
type InvoiceStore interface {
	// Find returns one page of invoices matching the query, newest first.
	Find(ctx context.Context, q InvoiceQuery) ([]Invoice, error)
	// Count returns the total number of invoices matching the query.
	Count(ctx context.Context, q InvoiceQuery) (int64, error)
	// FindByID returns one invoice or ErrNotFound / ErrInvalidID.
	FindByID(ctx context.Context, id string) (*Invoice, error)
	// Recent returns the latest invoices by creation time.
	Recent(ctx context.Context, limit int) ([]Invoice, error)
	// Search runs the bounded quick search, newest first.
	Search(ctx context.Context, q SearchQuery) ([]Invoice, error)
	// StatsFacets runs the multi-branch dashboard aggregation in one pass.
	StatsFacets(ctx context.Context, period StatsPeriod) (*StatsFacets, error)
	// MonthlyRevenue groups paid invoices by calendar month within
	// [from, to) in one pass. Months with no invoices are absent; the
	// caller gap-fills.
	MonthlyRevenue(ctx context.Context, from, to time.Time) ([]MonthBucket, error)
	// CountByStatus counts invoices per status. Statuses with no invoices
	// are absent from the map.
	CountByStatus(ctx context.Context) (map[InvoiceStatus]int64, error)
}

// ClientStore is the read surface over the client collection.
type ClientStore interface {
	// FindWithInvoiceCounts returns one page of clients, each carrying a
	// live-joined invoice count.
	FindWithInvoiceCounts(ctx context.Context, q ClientQuery) ([]ClientWithInvoiceCount, error)
	// Count returns the total number of clients matching the query.
	Count(ctx context.Context, q ClientQuery) (int64, error)
	// FindByID returns one client or ErrNotFound / ErrInvalidID.
	FindByID(ctx context.Context, id string) (*Client, error)
	// FindAll returns a minimal projection of every client.
	FindAll(ctx context.Context) ([]Client, error)
}

// FolderStore is the read surface over the folder collection.
type FolderStore interface {
	// Find returns folders, newest first, capped at limit.
	Find(ctx context.Context, limit int) ([]Folder, error)
}
