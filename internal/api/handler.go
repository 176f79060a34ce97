// Package api serves the container stats snapshot over HTTP.
package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/rusenback/docker-stats/internal/model"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Collector produces one sorted snapshot per call.
type Collector interface {
	Collect(ctx context.Context) ([]model.Metric, error)
}

type handler struct {
	collector Collector
	log       *slog.Logger
}

// NewHandler routes GET /containers/stats and GET /healthz.
func NewHandler(c Collector, log *slog.Logger) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	h := &handler{collector: c, log: log}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /containers/stats", h.stats)
	mux.HandleFunc("GET /healthz", h.healthz)
	return otelhttp.NewHandler(mux, "docker-stats")
}

func (h *handler) stats(w http.ResponseWriter, r *http.Request) {
	rows, err := h.collector.Collect(r.Context())
	if err != nil {
		h.log.Error("Failed to collect container stats.", "err", err)
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: errEnumerate})
		return
	}
	if rows == nil {
		rows = []model.Metric{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// errEnumerate is the client-facing text; the cause stays in the log.
const errEnumerate = "cannot enumerate containers"

type errorBody struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// The status line is already out; nothing useful left to do on failure.
	_ = json.NewEncoder(w).Encode(v)
}
