// Package listing implements the paginated, filterable read paths for
// invoices, clients and folders. Listings fail fast on bad input; the count
// and page fetch of a listing are independent reads over the same filter and
// run concurrently.
package listing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/fakturo-lab/fakturo/internal/core/cache"
	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"golang.org/x/sync/errgroup"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	searchMinQueryLen = 2
	searchMaxQueryLen = 100
	searchDefLimit    = 20
	searchMaxLimit    = 50

	recentDefLimit = 5
	recentMaxLimit = 20

	foldersDefLimit = 50
	foldersMaxLimit = 1000
	foldersTTL      = time.Minute
)

// ListParams are the raw pagination and filter inputs of a listing request.
type ListParams struct {
	Page     int
	Limit    int
	Search   string
	FolderID string
	Status   string
}

// Service serves the listing read paths.
type Service struct {
	invoices storage.InvoiceStore
	clients  storage.ClientStore
	folders  storage.FolderStore

	folderCache *cache.KeyedTTL[int, []storage.Folder]
}

// NewService creates the listing service.
func NewService(invoices storage.InvoiceStore, clients storage.ClientStore, folders storage.FolderStore) *Service {
	return &Service{
		invoices:    invoices,
		clients:     clients,
		folders:     folders,
		folderCache: cache.NewKeyedTTL[int, []storage.Folder](8, foldersTTL),
	}
}

func clampPage(page int) int {
	if page < defaultPage {
		return defaultPage
	}
	return page
}

func clampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}

// Invoices returns one page of invoices with paging metadata. The count and
// the page fetch run concurrently.
func (s *Service) Invoices(ctx context.Context, p ListParams) (*InvoicePage, error) {
	q := storage.InvoiceQuery{
		Search:   strings.TrimSpace(p.Search),
		FolderID: strings.TrimSpace(p.FolderID),
		Status:   storage.InvoiceStatus(p.Status),
		Page:     clampPage(p.Page),
		Limit:    clampLimit(p.Limit, defaultLimit, maxLimit),
	}

	var (
		invoices []storage.Invoice
		total    int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoices.Find(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.invoices.Count(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if invoices == nil {
		invoices = []storage.Invoice{}
	}
	return &InvoicePage{
		Invoices:   invoices,
		Pagination: paginate(total, q.Page, q.Limit),
	}, nil
}

// Clients returns one page of clients, each carrying its invoice count, with
// paging metadata. Count and page fetch run concurrently.
func (s *Service) Clients(ctx context.Context, p ListParams) (*ClientPage, error) {
	q := storage.ClientQuery{
		Search: strings.TrimSpace(p.Search),
		Page:   clampPage(p.Page),
		Limit:  clampLimit(p.Limit, defaultLimit, maxLimit),
	}

	var (
		clients []storage.ClientWithInvoiceCount
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		clients, err = s.clients.FindWithInvoiceCounts(gctx, q)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.clients.Count(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if clients == nil {
		clients = []storage.ClientWithInvoiceCount{}
	}
	return &ClientPage{
		Data:       clients,
		Pagination: paginate(total, q.Page, q.Limit),
	}, nil
}

// Search runs the bounded invoice quick search.
func (s *Service) Search(ctx context.Context, term string, limit int) (*SearchResult, error) {
	term = strings.TrimSpace(term)
	if len(term) < searchMinQueryLen {
		return nil, fmt.Errorf("%w: query must be at least %d characters",
			storage.ErrInvalidQuery, searchMinQueryLen)
	}
	if len(term) > searchMaxQueryLen {
		return nil, fmt.Errorf("%w: query too long (max %d characters)",
			storage.ErrInvalidQuery, searchMaxQueryLen)
	}

	q := storage.SearchQuery{
		Term:  term,
		Limit: clampLimit(limit, searchDefLimit, searchMaxLimit),
	}
	invoices, err := s.invoices.Search(ctx, q)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []storage.Invoice{}
	}

	return &SearchResult{
		Data: invoices,
		Meta: SearchMeta{
			Count:   len(invoices),
			HasMore: len(invoices) == q.Limit,
			Query:   term,
		},
	}, nil
}

// Recent returns the latest invoices by creation time.
func (s *Service) Recent(ctx context.Context, limit int) ([]storage.Invoice, error) {
	invoices, err := s.invoices.Recent(ctx, clampLimit(limit, recentDefLimit, recentMaxLimit))
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []storage.Invoice{}
	}
	return invoices, nil
}

// InvoiceByID returns one invoice.
func (s *Service) InvoiceByID(ctx context.Context, id string) (*storage.Invoice, error) {
	return s.invoices.FindByID(ctx, id)
}

// ClientByID returns one client.
func (s *Service) ClientByID(ctx context.Context, id string) (*storage.Client, error) {
	return s.clients.FindByID(ctx, id)
}

// AllClients returns the unpaginated minimal client projection.
func (s *Service) AllClients(ctx context.Context) ([]storage.Client, error) {
	clients, err := s.clients.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if clients == nil {
		clients = []storage.Client{}
	}
	return clients, nil
}

// Folders returns folders, newest first, served through a short TTL cache
// with stale fallback keyed by the effective limit.
func (s *Service) Folders(ctx context.Context, limit int) ([]storage.Folder, error) {
	limit = clampLimit(limit, foldersDefLimit, foldersMaxLimit)

	if cached, state := s.folderCache.Get(limit); state == cache.Fresh {
		return cached, nil
	}

	folders, err := s.folders.Find(ctx, limit)
	if err != nil {
		if cached, state := s.folderCache.Get(limit); state != cache.Empty {
			slog.Warn("[Listing] Serving stale folders after store failure", "error", err)
			return cached, nil
		}
		return nil, err
	}
	if folders == nil {
		folders = []storage.Folder{}
	}

	s.folderCache.Set(limit, folders)
	return folders, nil
}
