package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pageza/healthshop/backend/internal/apierr"
	"github.com/pageza/healthshop/backend/internal/middleware"
	"github.com/pageza/healthshop/backend/internal/service"
)

var errUnauthenticated = errors.New("unauthorized")

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Health insights API is running",
		"version": "v1.0.0",
	})
}

// currentUser reads the authenticated user, recording an error on the
// context when there is none.
func currentUser(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		_ = c.Error(apierr.Unauthorized("unauthorized", errUnauthenticated))
	}
	return userID, ok
}

// productParam parses the :productId path parameter.
func productParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		_ = c.Error(apierr.BadRequest("invalid_product_id", errors.New("productId must be a UUID")))
		return uuid.Nil, false
	}
	return id, true
}

// bindJSON decodes the request body, recording a 400 on failure.
func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		_ = c.Error(apierr.BadRequest("invalid_request", err))
		return false
	}
	return true
}

// fail maps engine errors to API errors and records them on the context.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInsufficientProducts):
		err = apierr.BadRequest("insufficient_products", err)
	case errors.Is(err, service.ErrTooManyProducts):
		err = apierr.BadRequest("too_many_products", err)
	case errors.Is(err, service.ErrProductNotFound):
		err = apierr.NotFound("product_not_found", err)
	case errors.Is(err, service.ErrInvalidProfile):
		err = apierr.BadRequest("invalid_profile", err)
	}
	_ = c.Error(err)
}
