//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"refreshing-booking/internal/handler/httperr"
	"refreshing-booking/internal/handler/middleware"
	"refreshing-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestErrorMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.ErrorLevel)

	router := gin.New()
	router.Use(middleware.CustomRecovery(zap.New(core)), middleware.ErrorHandler())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	router.GET("/public", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusBadRequest, assert.AnError, "Ogiltig förfrågan", nil)
	})
	router.GET("/silent", func(c *gin.Context) {})

	t.Run("panic becomes a generic 500 and is logged with a stack", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Serverfel")

		entries := logs.FilterMessage("recovered from panic").All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, "boom", entries[0].ContextMap()["panic"])
			assert.NotEmpty(t, entries[0].ContextMap()["stack"])
		}
	})

	t.Run("public errors keep their status and message", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusBadRequest, "Ogiltig förfrågan")
	})

	t.Run("handler that writes nothing gets a generic 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/silent", nil, nil)
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Serverfel")
	})
}
