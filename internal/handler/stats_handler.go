package handlers

import (
	"net/http"
)

func (h *Handlers) HomeHandler(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"service": "adboard", "status": "ok"}, http.StatusOK)
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}

	WriteSuccess(w, map[string]string{"status": "healthy"}, http.StatusOK)
}

// StatsHandler отдаёт количество строк по таблицам доски объявлений.
func (h *Handlers) StatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.StatsService.GetRowCounts(r.Context())
	if err != nil {
		WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	WriteSuccess(w, stats, http.StatusOK)
}
