package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shop-service/pkg/logger"
)

// RequestID assigns every request an ID, taken from the X-Request-ID header
// when the client sent one. The ID is echoed in the response header and
// stored in the request context for logging.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(logger.RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(string(logger.RequestIDKey), id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Header(logger.RequestIDHeader, id)

		c.Next()
	}
}
