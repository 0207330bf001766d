package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

const (
	statusUp   = "ok"
	statusDown = "down"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the probes at /live, /ready and /health. Probe
// responses are plain JSON, not the result envelope, so load balancers can
// read them directly.
type HealthHandler struct {
	db      dbPinger
	version string
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version}
}

type probeResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version,omitempty"`
	Database  *componentStatus `json:"database,omitempty"`
	CheckedAt time.Time        `json:"checkedAt"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, probeResponse{Status: statusUp, CheckedAt: time.Now().UTC()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.pingDatabase(r.Context())
	writeJSON(w, statusCode(db), probeResponse{Status: db.Status, CheckedAt: time.Now().UTC()})
}

// Health is Ready plus the build version and the database round-trip time.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDatabase(r.Context())
	writeJSON(w, statusCode(db), probeResponse{
		Status:    db.Status,
		Version:   h.version,
		Database:  &db,
		CheckedAt: time.Now().UTC(),
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) componentStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return componentStatus{Status: statusDown}
	}
	return componentStatus{Status: statusUp, Latency: time.Since(start).String()}
}

func statusCode(c componentStatus) int {
	if c.Status != statusUp {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
