// Package utils holds small response/query helpers shared by handlers,
// in the same spirit as the teacher's internal/utils package.
package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"salon-booking-api/internal/apperr"
)

// APIResponse is the standard envelope for every JSON response.
type APIResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id,omitempty"`
}

func requestID(c *gin.Context) string {
	if id, ok := c.Get("request_id"); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return ""
}

// Success writes a 200 envelope with the given data.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}

// Created writes a 201 envelope with the given data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}

// statusForKind maps an apperr.Kind to the HTTP status table in §6.2.
func statusForKind(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Fail writes an error envelope, deriving the HTTP status from the error's
// apperr.Kind (defaulting to 500 for anything not tagged).
func Fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	status := statusForKind(kind)

	message := err.Error()
	if kind == apperr.KindInternal {
		message = "internal server error"
	}

	c.JSON(status, APIResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}

// FailWithStatus writes an error envelope at an explicit status, for the
// handful of places (auth challenges) that need to set response headers
// alongside the body.
func FailWithStatus(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{
		Success:   false,
		Message:   message,
		Timestamp: time.Now(),
		RequestID: requestID(c),
	})
}
