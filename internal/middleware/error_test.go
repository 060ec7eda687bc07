package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/healthshop/backend/internal/apierr"
	"github.com/pageza/healthshop/backend/internal/logger"
)

func newErrorRouter(handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNop()))
	r.GET("/", handler)
	return r
}

func serve(r *gin.Engine) (*httptest.ResponseRecorder, ErrorResponse) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	var body ErrorResponse
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorHandlerRendersAPIError(t *testing.T) {
	r := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(apierr.BadRequest("too_many_products", errors.New("at most 4 products")))
	})
	w, body := serve(r)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, ErrorResponse{Error: "at most 4 products", Code: "too_many_products"}, body)
}

func TestErrorHandlerHidesUnknownErrors(t *testing.T) {
	r := newErrorRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("pq: connection refused"))
	})
	w, body := serve(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, ErrorResponse{Error: "internal server error", Code: "internal_error"}, body)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := newErrorRouter(func(c *gin.Context) { panic("boom") })
	w, body := serve(r)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "internal_error", body.Code)
}

func TestErrorHandlerLeavesWrittenResponses(t *testing.T) {
	r := newErrorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(errors.New("late"))
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())
}
