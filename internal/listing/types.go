package listing

import "github.com/fakturo-lab/fakturo/internal/core/storage"

// Pagination is the paging metadata attached to every listing response.
type Pagination struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	Limit   int   `json:"limit"`
	Pages   int   `json:"pages"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

// paginate derives the paging metadata for a page of a filtered set.
func paginate(total int64, page, limit int) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Total:   total,
		Page:    page,
		Limit:   limit,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// InvoicePage is the paginated invoice listing payload.
type InvoicePage struct {
	Invoices   []storage.Invoice `json:"invoices"`
	Pagination Pagination        `json:"pagination"`
}

// ClientPage is the paginated client listing payload.
type ClientPage struct {
	Data       []storage.ClientWithInvoiceCount `json:"data"`
	Pagination Pagination                       `json:"pagination"`
}

// SearchMeta describes a quick-search result set.
type SearchMeta struct {
	Count   int    `json:"count"`
	HasMore bool   `json:"hasMore"`
	Query   string `json:"query"`
}

// SearchResult is the quick-search payload.
type SearchResult struct {
	Data []storage.Invoice `json:"data"`
	Meta SearchMeta        `json:"meta"`
}
