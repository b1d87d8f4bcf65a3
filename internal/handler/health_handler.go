package handlers

import (
	"net/http"
	"time"
)

const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Health is a liveness probe; it does not touch the database.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(isoMillis),
	}, http.StatusOK)
}

func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.GetStats(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, stats, http.StatusOK)
}
