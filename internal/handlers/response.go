package handlers

import (
	"errors"
	"net/http"

	"interview-service/internal/service"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func SuccessResponse(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Message: message})
}

// ServiceError maps the service error taxonomy onto HTTP status codes.
// Upstream AI failures never reach here; the services recover them locally.
func ServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrAlreadySubmitted):
		ErrorResponse(c, http.StatusBadRequest, "Session already submitted")
	case errors.Is(err, service.ErrForbidden):
		ErrorResponse(c, http.StatusForbidden, "Not authorized for this session")
	case errors.Is(err, service.ErrValidation):
		ErrorResponse(c, http.StatusBadRequest, "Missing or invalid fields")
	default:
		ErrorResponse(c, http.StatusInternalServerError, "Server error")
	}
}
