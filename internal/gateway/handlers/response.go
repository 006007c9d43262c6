package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staffdir-system/internal/apperr"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

func successResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func errorResponse(message string) APIResponse {
	return APIResponse{
		Success: false,
		Message: message,
	}
}

func successWithMetaResponse(message string, data interface{}, meta interface{}) APIResponse {
	return APIResponse{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	}
}

// respondError translates service errors into HTTP statuses. Field
// violations carry their per-field messages so the client can render them
// next to the inputs.
func respondError(c *gin.Context, err error) {
	var violations apperr.Violations
	if errors.As(err, &violations) {
		c.JSON(http.StatusBadRequest, APIResponse{
			Success: false,
			Message: "validation failed",
			Data:    gin.H{"violations": violations},
		})
		return
	}

	switch {
	case errors.Is(err, apperr.ErrUserNotFound), errors.Is(err, apperr.ErrCompanyNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, apperr.ErrEmailTaken):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	case errors.Is(err, apperr.ErrInvalidSalary):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, errorResponse(err.Error()))
	}
}
