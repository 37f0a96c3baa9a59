package handler

import (
	"context"
	"net/http"

	"github.com/dynamicweb/dynamicweb/internal/api/middleware"
	"github.com/dynamicweb/dynamicweb/internal/api/response"
)

// DBPinger checks database connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles the GET /health endpoint.
type HealthHandler struct {
	dbPinger DBPinger
	provider string
	version  string
}

// NewHealthHandler creates a new HealthHandler. A nil pinger means history
// is kept in memory.
func NewHealthHandler(pinger DBPinger, provider, version string) *HealthHandler {
	return &HealthHandler{dbPinger: pinger, provider: provider, version: version}
}

type historyStatus struct {
	Backend   string `json:"backend"`
	Connected bool   `json:"connected"`
}

type healthData struct {
	Status   string        `json:"status"`
	Version  string        `json:"version"`
	Provider string        `json:"provider"`
	History  historyStatus `json:"history"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	status := "healthy"
	hist := historyStatus{Backend: "memory", Connected: true}
	if h.dbPinger != nil {
		hist.Backend = "postgres"
		if err := h.dbPinger.Ping(r.Context()); err != nil {
			hist.Connected = false
			status = "degraded"
		}
	}

	response.Success(w, http.StatusOK, healthData{
		Status:   status,
		Version:  h.version,
		Provider: h.provider,
		History:  hist,
	}, requestID)
}
