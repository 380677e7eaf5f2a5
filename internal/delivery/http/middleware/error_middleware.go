package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts errors appended to the gin context into the
// standard response envelope. Every failure path produces a structured
// body; nothing escapes as an opaque 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				// SECURITY: the wrapped cause may hold transport detail;
				// log it server-side, send only the public message
				if appErr.Err != nil {
					logger.Log.Error("request failed",
						"status", appErr.Code,
						"error", appErr.Err,
						"path", c.FullPath(),
					)
				}
				response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			} else {
				logger.Log.Error("unhandled error", "error", err, "path", c.FullPath())
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
