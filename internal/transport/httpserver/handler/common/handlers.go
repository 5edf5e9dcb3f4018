package common

import (
	"context"
	"net/http"
	"time"

	"gym-membership-go/pkg/logger"
)

const healthTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error {
	return f(ctx)
}

type Handlers struct {
	db  Pinger
	now func() time.Time
	log logger.Logger
}

func New(db Pinger, log logger.Logger) *Handlers {
	return &Handlers{
		db:  db,
		now: time.Now,
		log: log,
	}
}

type healthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", Database: "ok", Timestamp: h.now().UTC()}

	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		h.log.InternalError("health: db ping failed", err)
		resp.Status = "degraded"
		resp.Database = "unavailable"
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
