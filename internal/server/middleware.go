package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
	"go.uber.org/zap"
)

// errorFilter is the single translation point from handler errors to the
// response envelope. Domain errors surface their own status and message;
// anything else becomes a generic 500 so internals never leak.
func errorFilter(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		var domainErr *apperr.Error
		if errors.As(err, &domainErr) {
			c.JSON(domainErr.Status, gin.H{
				"success": false,
				"errors":  []string{domainErr.Message},
			})
			return
		}

		log.Error("unhandled error",
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"errors":  []string{"internal server error"},
		})
	}
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
