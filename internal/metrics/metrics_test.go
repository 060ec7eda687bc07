package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New()
	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusTeapot) })

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/42", nil))
		require.Equal(t, http.StatusTeapot, w.Code)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/items/:id", "418")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.HTTPActiveRequests))
}

func TestObserveOperation(t *testing.T) {
	m := New()

	var err error
	m.ObserveOperation("health_score", time.Now(), &err)
	err = errors.New("boom")
	m.ObserveOperation("health_score", time.Now(), &err)
	m.ObserveOperation("chat", time.Now(), nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EngineOperationsTotal.WithLabelValues("health_score", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EngineOperationsTotal.WithLabelValues("health_score", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EngineOperationsTotal.WithLabelValues("chat", "ok")))
}

func TestCacheResultAndHandler(t *testing.T) {
	m := New()
	m.CacheResult("insights", true)
	m.CacheResult("insights", false)
	m.CacheResult("insights", false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheHitsTotal.WithLabelValues("insights")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CacheMissesTotal.WithLabelValues("insights")))

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "healthshop_cache_misses_total"))
	assert.True(t, strings.Contains(body, "go_goroutines"))
}
