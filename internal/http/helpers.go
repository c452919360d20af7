package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/openshelf/openshelf/internal/auth"
	"github.com/openshelf/openshelf/internal/services"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"` // field-level violations, etc.
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// GetUserID extracts the authenticated user's ID from the Gin context.
func GetUserID(c *gin.Context) uint {
	return auth.GetUserID(c)
}

// --- Error Response Helpers ---

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: message})
}

// respondOperationError maps a failed transaction operation to a status
// code by its error kind. The detail string travels as-is; internal causes
// are logged, never exposed.
func respondOperationError(c *gin.Context, err error) {
	var opErr *services.Error
	if !errors.As(err, &opErr) {
		log.Printf("Unclassified error: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	switch opErr.Kind {
	case services.KindValidation:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: opErr.Message, Details: opErr.Violations})
	case services.KindConflict:
		c.JSON(http.StatusConflict, ErrorResponse{Error: opErr.Message})
	case services.KindNotFound:
		c.JSON(http.StatusNotFound, ErrorResponse{Error: opErr.Message})
	case services.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: opErr.Message})
	default:
		log.Printf("Internal error: %v", opErr)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// --- Success Response Helpers ---

func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, SuccessResponse{Message: message})
}

func respondCreated(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// --- Parameter Parsing ---

// parseIDParam extracts and validates an unsigned integer ID from URL
// parameters. Responds with a 400 error and returns false on failure.
func parseIDParam(c *gin.Context, paramName string) (uint, bool) {
	idStr := c.Param(paramName)
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid "+paramName)
		return 0, false
	}
	return uint(id), true
}
