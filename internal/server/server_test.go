package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Ping(ctx context.Context) error { return s.err }

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		pingErr        error
		expectedStatus int
	}{
		{name: "reachable store reports healthy", pingErr: nil, expectedStatus: http.StatusOK},
		{name: "unreachable store reports unhealthy", pingErr: errors.New("dial refused"), expectedStatus: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New("127.0.0.1:0", stubHealthChecker{err: tc.pingErr}, "release")

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, req)

			require.Equal(t, tc.expectedStatus, resp.Code)
		})
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	s := New("127.0.0.1:0", stubHealthChecker{}, "release")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}
