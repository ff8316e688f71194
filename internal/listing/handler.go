package listing

import (
	"errors"
	"net/http"

	httperr "github.com/fakturo-lab/fakturo/internal/core/errors"
	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the listing API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/invoices", s.HandleListInvoices)
	r.GET("/v1/invoices/recent", s.HandleRecentInvoices)
	r.GET("/v1/invoices/search", s.HandleSearchInvoices)
	r.GET("/v1/invoices/:id", s.HandleGetInvoice)

	r.GET("/v1/clients", s.HandleListClients)
	r.GET("/v1/clients/all", s.HandleAllClients)
	r.GET("/v1/clients/:id", s.HandleGetClient)

	r.GET("/v1/folders", s.HandleListFolders)
}

type listQuery struct {
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
	Search   string `form:"search"`
	FolderID string `form:"folderId"`
	Status   string `form:"status"`
}

// HandleListInvoices handles GET /v1/invoices?page&limit&folderId&search&status.
func (s *Service) HandleListInvoices(c *gin.Context) {
	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	page, err := s.Invoices(c.Request.Context(), ListParams{
		Page:     query.Page,
		Limit:    query.Limit,
		Search:   query.Search,
		FolderID: query.FolderID,
		Status:   query.Status,
	})
	if err != nil {
		listError(c, "Failed to fetch invoices", err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleRecentInvoices handles GET /v1/invoices/recent?limit.
func (s *Service) HandleRecentInvoices(c *gin.Context) {
	var query struct {
		Limit int `form:"limit,default=5"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	invoices, err := s.Recent(c.Request.Context(), query.Limit)
	if err != nil {
		listError(c, "Failed to fetch recent invoices", err)
		return
	}

	c.JSON(http.StatusOK, invoices)
}

// HandleSearchInvoices handles GET /v1/invoices/search?q&limit.
func (s *Service) HandleSearchInvoices(c *gin.Context) {
	var query struct {
		Q     string `form:"q"`
		Limit int    `form:"limit,default=20"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	result, err := s.Search(c.Request.Context(), query.Q, query.Limit)
	if err != nil {
		listError(c, "Failed to search invoices", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetInvoice handles GET /v1/invoices/:id.
func (s *Service) HandleGetInvoice(c *gin.Context) {
	invoice, err := s.InvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		listError(c, "Failed to fetch invoice", err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// HandleListClients handles GET /v1/clients?page&limit&search.
func (s *Service) HandleListClients(c *gin.Context) {
	var query listQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	page, err := s.Clients(c.Request.Context(), ListParams{
		Page:   query.Page,
		Limit:  query.Limit,
		Search: query.Search,
	})
	if err != nil {
		listError(c, "Failed to fetch clients", err)
		return
	}

	c.JSON(http.StatusOK, page)
}

// HandleAllClients handles GET /v1/clients/all.
func (s *Service) HandleAllClients(c *gin.Context) {
	clients, err := s.AllClients(c.Request.Context())
	if err != nil {
		listError(c, "Failed to fetch clients", err)
		return
	}

	c.JSON(http.StatusOK, clients)
}

// HandleGetClient handles GET /v1/clients/:id.
func (s *Service) HandleGetClient(c *gin.Context) {
	client, err := s.ClientByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		listError(c, "Failed to fetch client", err)
		return
	}

	c.JSON(http.StatusOK, client)
}

// HandleListFolders handles GET /v1/folders?limit.
func (s *Service) HandleListFolders(c *gin.Context) {
	var query struct {
		Limit int `form:"limit,default=50"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	folders, err := s.Folders(c.Request.Context(), query.Limit)
	if err != nil {
		listError(c, "Failed to fetch folders", err)
		return
	}

	c.JSON(http.StatusOK, folders)
}

func badRequest(c *gin.Context, message string, err error) {
	c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
		ErrorType: httperr.HttpInvalidQueryError,
		Message:   message,
		Details:   err.Error(),
	})
}

// listError maps a listing failure to its HTTP status. Validation failures
// never reach the store; not-found applies to single-entity lookups only.
func listError(c *gin.Context, message string, err error) {
	switch {
	case errors.Is(err, storage.ErrInvalidID), errors.Is(err, storage.ErrInvalidQuery):
		badRequest(c, message, err)
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, httperr.ErrorResponse{
			ErrorType: httperr.HttpNotFoundError,
			Message:   message,
			Details:   err.Error(),
		})
	case errors.Is(err, storage.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType: httperr.HttpStoreUnavailable,
			Message:   message,
			Details:   err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
			ErrorType: httperr.HttpInternalError,
			Message:   message,
			Details:   err.Error(),
		})
	}
}
