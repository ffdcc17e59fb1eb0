// internal/app/features/health/handler.go
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler serves liveness and readiness checks for load balancers.
type Handler struct {
	Client *mongo.Client
	Log    *zap.Logger
}

func NewHandler(client *mongo.Client, logger *zap.Logger) *Handler {
	return &Handler{Client: client, Log: logger}
}

// ServeLive reports process liveness.
// GET /health/live
func (h *Handler) ServeLive(w http.ResponseWriter, r *http.Request) {
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ServeReady reports readiness, including a Mongo ping.
// GET /health/ready
func (h *Handler) ServeReady(w http.ResponseWriter, r *http.Request) {
	if h.Client != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.Client.Ping(ctx, readpref.Primary()); err != nil {
			h.Log.Warn("readiness ping failed", zap.Error(err))
			httpjson.Respond(w, http.StatusServiceUnavailable, map[string]string{"status": "db unreachable"})
			return
		}
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "ready"})
}
