package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthshop/backend/internal/apierr"
	"github.com/pageza/healthshop/backend/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// ErrorHandler renders the last error attached with c.Error as JSON and turns
// panics into a 500. Errors that are not *apierr.Error are logged and their
// message is hidden from the client.
func ErrorHandler(log *logger.Logger) gin.HandlerFunc {
	log = log.With("middleware", "error")
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic recovered", "path", c.Request.URL.Path, "panic", rec)
				c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
					Error: "internal server error",
					Code:  "internal_error",
				})
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err
		var ae *apierr.Error
		if errors.As(err, &ae) {
			if ae.Status >= http.StatusInternalServerError {
				log.Error("request failed", "path", c.Request.URL.Path, "code", ae.Code, "error", err)
			}
			c.JSON(ae.Status, ErrorResponse{Error: ae.Error(), Code: ae.Code})
			return
		}
		log.Error("unhandled error", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error", Code: "internal_error"})
	}
}
