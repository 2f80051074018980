//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"refreshing-booking/internal/handler/middleware"
	"refreshing-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.DebugLevel)

	router := gin.New()
	router.Use(middleware.NewLogger(zap.New(core)).LoggingMiddleware())
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	router.GET("/fail", func(c *gin.Context) { c.Status(http.StatusBadGateway) })

	t.Run("assigns and echoes a request id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, nil)

		id := rec.Header().Get(middleware.RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("keeps a valid incoming id", func(t *testing.T) {
		incoming := uuid.NewString()
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/ok", nil, map[string]string{middleware.RequestIDHeader: incoming})
		assert.Equal(t, incoming, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("server errors are logged at error level", func(t *testing.T) {
		logs.TakeAll()
		httptest.PerformRequest(t, router, http.MethodGet, "/fail", nil, nil)

		completed := logs.FilterMessage("Request completed").All()
		if assert.Len(t, completed, 1) {
			assert.Equal(t, zap.ErrorLevel, completed[0].Level)
			assert.Equal(t, int64(http.StatusBadGateway), completed[0].ContextMap()["status_code"])
		}
	})
}
