package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/auth"
	"github.com/pageza/healthshop/backend/internal/cache"
	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/metrics"
	"github.com/pageza/healthshop/backend/internal/models"
	"github.com/pageza/healthshop/backend/internal/service"
	"github.com/pageza/healthshop/backend/internal/store"
	th "github.com/pageza/healthshop/backend/internal/testhelpers"
	"github.com/pageza/healthshop/backend/internal/types"
)

type testApp struct {
	router  *gin.Engine
	tokens  *auth.TokenService
	product *models.Product
}

func setup(t *testing.T, ping func(context.Context) error) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	db := th.SetupSQLite(t)

	vitamins := th.NewCategory("Vitamins")
	zinc := th.NewProduct("Zinc 25mg", 9.5)
	th.InCategory(vitamins, zinc)
	th.SeedCatalog(t, db, []*models.Category{vitamins}, []*models.Product{zinc}, nil)

	engine := service.NewEngine(
		store.NewCatalogStore(db, log),
		store.NewOrderStore(db, log),
		store.NewProfileStore(db, log),
		knowledge.New(),
		log,
	)
	tokens := auth.NewTokenService("router-test-secret", "healthshop")
	r := SetupRouter(Deps{
		Engine:  engine,
		Tokens:  tokens,
		Cache:   cache.Noop{},
		Metrics: metrics.New(),
		Ping:    ping,
		Log:     log,
	})
	return &testApp{router: r, tokens: tokens, product: zinc}
}

func (a *testApp) get(t *testing.T, path string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authed {
		token, err := a.tokens.Generate(uuid.New(), "shopper")
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	app := setup(t, func(context.Context) error { return nil })

	for _, path := range []string{"/health", "/api/v1/health"} {
		w := app.get(t, path, false)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "healthy")
	}
}

func TestHealthDatabaseDown(t *testing.T) {
	app := setup(t, func(context.Context) error { return errors.New("connection refused") })

	w := app.get(t, "/health", false)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := setup(t, nil)

	w := app.get(t, "/api/v1/ai/daily-tips", false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.get(t, "/api/v1/ai/daily-tips", true)
	require.Equal(t, http.StatusOK, w.Code)
	var tips []types.HealthTip
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tips))
	assert.Len(t, tips, 4)
}

func TestDosageAgainstDatabase(t *testing.T) {
	app := setup(t, nil)

	w := app.get(t, "/api/v1/ai/dosage/"+app.product.ID.String(), true)
	require.Equal(t, http.StatusOK, w.Code)
	var dosage types.Dosage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dosage))
	assert.Equal(t, "Zinc 25mg", dosage.ProductName)

	w = app.get(t, "/api/v1/ai/dosage/"+uuid.NewString(), true)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportNotRegisteredWithoutBucket(t *testing.T) {
	app := setup(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/ai/health-insights/export", nil)
	token, err := app.tokens.Generate(uuid.New(), "shopper")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	app := setup(t, nil)
	app.get(t, "/api/v1/ai/daily-tips", true)

	w := app.get(t, "/metrics", false)
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "healthshop_http_requests_total"))
	assert.Contains(t, body, `path="/api/v1/ai/daily-tips"`)
}

func TestCORSPreflight(t *testing.T) {
	app := setup(t, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommendations", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	app.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
