package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gianmatteo-arcana/engine-lever/pkg/services"
)

// respondServiceError maps service-layer errors to HTTP error responses.
func respondServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	if errors.Is(err, services.ErrAlreadyResponded) {
		c.JSON(http.StatusConflict, gin.H{"error": "request has already been answered"})
		return
	}
	if errors.Is(err, services.ErrNotCancellable) {
		c.JSON(http.StatusConflict, gin.H{"error": "request is not in a cancellable state"})
		return
	}
	if errors.Is(err, services.ErrTaskTerminal) {
		c.JSON(http.StatusConflict, gin.H{"error": "task has reached a terminal status"})
		return
	}
	if errors.Is(err, services.ErrConcurrentWrite) {
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent modification, retry the request"})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
