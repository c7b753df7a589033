package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"whisperchat_server/helpers"
	"whisperchat_server/services"
)

// HealthCheckHandler provides a basic health check
func HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// WelcomeHandler provides a welcome message
func WelcomeHandler(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONResponse(w, http.StatusOK, map[string]string{"message": "Welcome to WhisperChat"})
}

// writeServiceError maps service errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrNotFound):
		helpers.WriteJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrMediaDisabled):
		helpers.WriteJSONError(w, http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		helpers.WriteJSONError(w, http.StatusRequestTimeout, "request cancelled")
	default:
		log.Printf("❌ Unexpected error: %v", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
