package health

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradesbook-ie/tradesbook/internal/interfaces/http/handlers/testutil"
	"github.com/tradesbook-ie/tradesbook/internal/shared/logger"
)

func TestHealthHandler_HealthCheck(t *testing.T) {
	ok := CheckerFunc(func(context.Context) error { return nil })
	down := CheckerFunc(func(context.Context) error { return fmt.Errorf("dial tcp: connection refused") })

	t.Run("all healthy", func(t *testing.T) {
		handler := NewHealthHandler(map[string]Checker{"database": ok, "redis": ok}, logger.Nop())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		handler.HealthCheck(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp testutil.APIResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Contains(t, string(resp.Data), `"status":"healthy"`)
	})

	t.Run("redis down", func(t *testing.T) {
		handler := NewHealthHandler(map[string]Checker{"database": ok, "redis": down}, logger.Nop())
		c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)

		handler.HealthCheck(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), `"redis":"unavailable"`)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
	})
}
