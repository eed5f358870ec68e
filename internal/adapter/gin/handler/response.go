package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "shop-service/pkg/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// MessageResponse is returned by successful deletes.
type MessageResponse struct {
	Message string `json:"message"`
}

// parseID reads a positive integer path parameter. On failure it writes a 400
// response and returns false.
func parseID(c *gin.Context, log *zap.Logger, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		log.Warn("invalid path id", zap.String("param", name), zap.String("value", raw))
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_id",
			Message: name + " must be a positive integer",
		})
		return 0, false
	}
	return id, true
}

// bindError answers a request whose body or query failed gin binding.
func bindError(c *gin.Context, log *zap.Logger, err error) {
	log.Warn("invalid request", zap.String("path", c.FullPath()), zap.Error(err))
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
	})
}

// handleError converts usecase errors to HTTP responses.
func handleError(c *gin.Context, log *zap.Logger, err error) {
	var (
		validationErr *apperrors.ValidationError
		notFoundErr   *apperrors.NotFoundError
		conflictErr   *apperrors.ConflictError
		referenceErr  *apperrors.ReferentialIntegrityError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid_input", Message: validationErr.Error()})
	case errors.As(err, &notFoundErr):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not_found", Message: notFoundErr.Error()})
	case errors.As(err, &referenceErr):
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid_reference", Message: referenceErr.Error()})
	case errors.As(err, &conflictErr):
		c.JSON(http.StatusConflict, ErrorResponse{Error: "conflict", Message: conflictErr.Error()})
	default:
		log.Error("unhandled error", zap.String("path", c.FullPath()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "An internal error occurred",
		})
	}
}
