package reporting

import (
	"errors"
	"net/http"

	httperr "github.com/fakturo-lab/fakturo/internal/core/errors"
	"github.com/fakturo-lab/fakturo/internal/core/storage"
	"github.com/gin-gonic/gin"
)

const dataSourceHeader = "X-Data-Source"

// RegisterRoutes registers the reporting API routes on the given router.
func (s *Service) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/invoices/stats", s.HandleStats)
	r.GET("/v1/invoices/monthly-revenue", s.HandleMonthlyRevenue)
	r.GET("/v1/invoices/status-count", s.HandleStatusCount)
}

// HandleStats handles GET /v1/invoices/stats.
func (s *Service) HandleStats(c *gin.Context) {
	stats, source, err := s.Stats(c.Request.Context())
	if err != nil {
		reportError(c, "Failed to fetch statistics", err)
		return
	}

	c.Header(dataSourceHeader, string(source))
	c.JSON(http.StatusOK, stats)
}

// HandleMonthlyRevenue handles GET /v1/invoices/monthly-revenue?months=N.
func (s *Service) HandleMonthlyRevenue(c *gin.Context) {
	var query struct {
		Months int `form:"months,default=6"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, httperr.ErrorResponse{
			ErrorType: httperr.HttpInvalidQueryError,
			Message:   "Invalid query parameters",
			Details:   err.Error(),
		})
		return
	}

	series, source, err := s.MonthlyRevenue(c.Request.Context(), query.Months)
	if err != nil {
		reportError(c, "Failed to fetch monthly revenue", err)
		return
	}

	c.Header(dataSourceHeader, string(source))
	c.JSON(http.StatusOK, series)
}

// HandleStatusCount handles GET /v1/invoices/status-count.
func (s *Service) HandleStatusCount(c *gin.Context) {
	breakdown, source, err := s.StatusBreakdown(c.Request.Context())
	if err != nil {
		reportError(c, "Failed to fetch status counts", err)
		return
	}

	c.Header(dataSourceHeader, string(source))
	c.JSON(http.StatusOK, breakdown)
}

// reportError maps a reporting failure to its HTTP status. Stale fallback has
// already been attempted by the service; whatever arrives here is a hard
// failure.
func reportError(c *gin.Context, message string, err error) {
	if errors.Is(err, storage.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, httperr.ErrorResponse{
			ErrorType: httperr.HttpStoreUnavailable,
			Message:   message,
			Details:   err.Error(),
		})
		return
	}
	c.JSON(http.StatusInternalServerError, httperr.ErrorResponse{
		ErrorType: httperr.HttpInternalError,
		Message:   message,
		Details:   err.Error(),
	})
}
