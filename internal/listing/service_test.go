package listing

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

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		total int64
		page  int
		limit int
		want  Pagination
	}{
		{
			name: "partial last page", total: 25, page: 2, limit: 10,
			want: Pagination{Total: 25, Page: 2, Limit: 10, Pages: 3, HasNext: true, HasPrev: true},
		},
		{
			name: "single short page", total: 3, page: 1, limit: 5,
			want: Pagination{Total: 3, Page: 1, Limit: 5, Pages: 1, HasNext: false, HasPrev: false},
		},
		{
			name: "exact multiple", total: 20, page: 2, limit: 10,
			want: Pagination{Total: 20, Page: 2, Limit: 10, Pages: 2, HasNext: false, HasPrev: true},
		},
		{
			name: "empty set", total: 0, page: 1, limit: 10,
			want: Pagination{Total: 0, Page: 1, Limit: 10, Pages: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "page beyond last", total: 10, page: 5, limit: 10,
			want: Pagination{Total: 10, Page: 5, Limit: 10, Pages: 1, HasNext: false, HasPrev: true},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, paginate(tc.total, tc.page, tc.limit))
		})
	}
}

func newService(t *testing.T) (*Service, *storagemocks.InvoiceStore, *storagemocks.ClientStore, *storagemocks.FolderStore) {
	invoices := storagemocks.NewInvoiceStore(t)
	clients := storagemocks.NewClientStore(t)
	folders := storagemocks.NewFolderStore(t)
	return NewService(invoices, clients, folders), invoices, clients, folders
}

func TestService_Invoices_ClampsPageAndLimit(t *testing.T) {
	tests := []struct {
		name      string
		params    ListParams
		wantQuery storage.InvoiceQuery
	}{
		{
			name:      "defaults for zero values",
			params:    ListParams{},
			wantQuery: storage.InvoiceQuery{Page: 1, Limit: 10},
		},
		{
			name:      "negative page clamps to one",
			params:    ListParams{Page: -4, Limit: 25},
			wantQuery: storage.InvoiceQuery{Page: 1, Limit: 25},
		},
		{
			name:      "limit clamps to max",
			params:    ListParams{Page: 2, Limit: 500},
			wantQuery: storage.InvoiceQuery{Page: 2, Limit: 100},
		},
		{
			name:   "filters trimmed and passed through",
			params: ListParams{Page: 1, Limit: 10, Search: "  INV-2026  ", FolderID: "abc", Status: "paid"},
			wantQuery: storage.InvoiceQuery{
				Search: "INV-2026", FolderID: "abc", Status: storage.StatusPaid, Page: 1, Limit: 10,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, invoices, _, _ := newService(t)
			invoices.EXPECT().Find(mock.Anything, tc.wantQuery).Return([]storage.Invoice{}, nil).Once()
			invoices.EXPECT().Count(mock.Anything, tc.wantQuery).Return(int64(0), nil).Once()

			page, err := svc.Invoices(context.Background(), tc.params)
			require.NoError(t, err)
			require.Equal(t, tc.wantQuery.Page, page.Pagination.Page)
			require.Equal(t, tc.wantQuery.Limit, page.Pagination.Limit)
		})
	}
}

func TestService_Invoices_CombinesCountAndPage(t *testing.T) {
	svc, invoices, _, _ := newService(t)

	stored := []storage.Invoice{
		{ID: "inv-1", InvoiceNumber: "2026-001", Status: storage.StatusPaid, Total: 120},
		{ID: "inv-2", InvoiceNumber: "2026-002", Status: storage.StatusPending, Total: 80},
	}
	invoices.EXPECT().Find(mock.Anything, mock.Anything).Return(stored, nil).Once()
	invoices.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(25), nil).Once()

	page, err := svc.Invoices(context.Background(), ListParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, stored, page.Invoices)
	require.Equal(t, Pagination{Total: 25, Page: 2, Limit: 10, Pages: 3, HasNext: true, HasPrev: true}, page.Pagination)
}

func TestService_Invoices_EmptyResultIsNotAnError(t *testing.T) {
	svc, invoices, _, _ := newService(t)

	invoices.EXPECT().Find(mock.Anything, mock.Anything).Return(nil, nil).Once()
	invoices.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(0), nil).Once()

	page, err := svc.Invoices(context.Background(), ListParams{})
	require.NoError(t, err)
	require.NotNil(t, page.Invoices)
	require.Empty(t, page.Invoices)
}

func TestService_Invoices_PropagatesStoreError(t *testing.T) {
	svc, invoices, _, _ := newService(t)

	invoices.EXPECT().Find(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: dial failed", storage.ErrUnavailable)).Once()
	invoices.EXPECT().Count(mock.Anything, mock.Anything).Return(int64(0), nil).Maybe()

	_, err := svc.Invoices(context.Background(), ListParams{})
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrUnavailable)
}

func TestService_Clients_CombinesCountAndPage(t *testing.T) {
	svc, _, clients, _ := newService(t)

	stored := []storage.ClientWithInvoiceCount{
		{Client: storage.Client{ID: "cl-1", Name: "Acme"}, InvoiceCount: 7},
	}
	wantQuery := storage.ClientQuery{Search: "acme", Page: 1, Limit: 10}
	clients.EXPECT().FindWithInvoiceCounts(mock.Anything, wantQuery).Return(stored, nil).Once()
	clients.EXPECT().Count(mock.Anything, wantQuery).Return(int64(1), nil).Once()

	page, err := svc.Clients(context.Background(), ListParams{Search: "acme"})
	require.NoError(t, err)
	require.Equal(t, stored, page.Data)
	require.Equal(t, Pagination{Total: 1, Page: 1, Limit: 10, Pages: 1, HasNext: false, HasPrev: false}, page.Pagination)
}

func TestService_Search_ValidatesTerm(t *testing.T) {
	longTerm := make([]byte, 101)
	for i := range longTerm {
		longTerm[i] = 'a'
	}

	tests := []struct {
		name string
		term string
	}{
		{name: "too short", term: "a"},
		{name: "whitespace only", term: "   "},
		{name: "too long", term: string(longTerm)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _ := newService(t)

			_, err := svc.Search(context.Background(), tc.term, 20)
			require.Error(t, err)
			require.ErrorIs(t, err, storage.ErrInvalidQuery)
		})
	}
}

func TestService_Search_BuildsMeta(t *testing.T) {
	svc, invoices, _, _ := newService(t)

	stored := []storage.Invoice{
		{ID: "inv-1", InvoiceNumber: "2026-001"},
		{ID: "inv-2", InvoiceNumber: "2026-002"},
		{ID: "inv-3", InvoiceNumber: "2026-003"},
	}
	invoices.EXPECT().
		Search(mock.Anything, storage.SearchQuery{Term: "ab", Limit: 5}).
		Return(stored, nil).
		Once()

	result, err := svc.Search(context.Background(), "ab", 5)
	require.NoError(t, err)
	require.Equal(t, stored, result.Data)
	require.Equal(t, SearchMeta{Count: 3, HasMore: false, Query: "ab"}, result.Meta)
}

func TestService_Search_HasMoreWhenPageFull(t *testing.T) {
	svc, invoices, _, _ := newService(t)

	stored := []storage.Invoice{{ID: "inv-1"}, {ID: "inv-2"}}
	invoices.EXPECT().
		Search(mock.Anything, storage.SearchQuery{Term: "inv", Limit: 2}).
		Return(stored, nil).
		Once()

	result, err := svc.Search(context.Background(), "inv", 2)
	require.NoError(t, err)
	require.True(t, result.Meta.HasMore)
}

func TestService_Recent_ClampsLimit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "default", limit: 0, wantLimit: 5},
		{name: "within bounds", limit: 10, wantLimit: 10},
		{name: "clamped to max", limit: 100, wantLimit: 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, invoices, _, _ := newService(t)
			invoices.EXPECT().Recent(mock.Anything, tc.wantLimit).Return([]storage.Invoice{}, nil).Once()

			_, err := svc.Recent(context.Background(), tc.limit)
			require.NoError(t, err)
		})
	}
}

func TestService_Folders_CachesAndFallsBackToStale(t *testing.T) {
	svc, _, _, folders := newService(t)

	stored := []storage.Folder{{ID: "f-1", Name: "2026"}}
	folders.EXPECT().Find(mock.Anything, 50).Return(stored, nil).Once()
	folders.EXPECT().Find(mock.Anything, 50).
		Return(nil, fmt.Errorf("%w: dial failed", storage.ErrUnavailable)).Once()

	clock := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	svc.folderCache.SetClock(func() time.Time { return clock })

	first, err := svc.Folders(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, stored, first)

	// Fresh hit does not touch the store.
	cached, err := svc.Folders(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, stored, cached)

	// Expired entry plus a failing store serves the stale copy.
	clock = clock.Add(foldersTTL + time.Second)
	stale, err := svc.Folders(context.Background(), 0)
	require.NoError(t, err)
	require.Equal(t, stored, stale)
}

func TestService_Folders_ErrorWhenCacheEmpty(t *testing.T) {
	svc, _, _, folders := newService(t)

	folders.EXPECT().Find(mock.Anything, 50).
		Return(nil, fmt.Errorf("%w: dial failed", storage.ErrUnavailable)).Once()

	_, err := svc.Folders(context.Background(), 50)
	require.Error(t, err)
	require.ErrorIs(t, err, storage.ErrUnavailable)
}
