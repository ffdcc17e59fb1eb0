// internal/app/features/adminusers/watch.go
package adminusers

import (
	"encoding/json"
	"net/http"

	"github.com/uovhub/campusevents/internal/app/store/live"
	"github.com/uovhub/campusevents/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// ServeWatch streams the user collection as newline-delimited JSON: one
// full snapshot on connect, then a replacement snapshot after every change,
// until the client disconnects. Backed by the live subscription layer.
// GET /admin/users/watch
func (h *Handler) ServeWatch(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Cache-Control", "no-cache")

	enc := json.NewEncoder(w)
	deliver := func(snap live.Snapshot) {
		users := make([]models.User, 0, len(snap.Docs))
		for _, raw := range snap.Docs {
			var u models.User
			if err := bson.Unmarshal(raw, &u); err != nil {
				h.Log.Warn("snapshot decode failed", zap.Error(err))
				continue
			}
			users = append(users, u)
		}
		if err := enc.Encode(users); err != nil {
			return
		}
		flusher.Flush()
	}

	sub, err := live.Subscribe(r.Context(), h.DB, "users", bson.M{}, h.Log, deliver)
	if err != nil {
		h.Log.Warn("user watch failed", zap.Error(err))
		http.Error(w, "watch unavailable", http.StatusServiceUnavailable)
		return
	}
	defer sub.Stop()

	<-r.Context().Done()
}
