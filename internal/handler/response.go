package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/boolen-kitchen/api/internal/service"
	"github.com/boolen-kitchen/api/internal/store"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps service-layer failures onto the HTTP taxonomy:
// validation 400, missing order 404, workflow violation 409, storage 503.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case service.IsValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrOrderNotFound):
		writeError(w, http.StatusNotFound, "order not found")
	case errors.Is(err, service.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrUnavailable):
		log.Printf("ERROR: storage unavailable: %v", err)
		writeError(w, http.StatusServiceUnavailable, "storage unavailable")
	default:
		log.Printf("ERROR: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
