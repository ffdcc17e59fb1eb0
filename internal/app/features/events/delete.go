// internal/app/features/events/delete.go
package events

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/policy/eventpolicy"
	"github.com/uovhub/campusevents/internal/app/system/authz"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"go.uber.org/zap"
)

// HandleDelete removes an event. Admins may delete any event; organizers
// only events they created. Deletion is permanent.
// POST /events/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	// Load first: the ownership rule needs created_by.
	event, err := h.Events.GetByID(r.Context(), id)
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	actor, _ := authz.ActorCtx(r)
	if d := eventpolicy.CanDelete(actor, event); !d.Allowed {
		httpjson.Err(w, h.Log, apperr.Denied(d.Reason))
		return
	}

	if err := h.Events.Delete(r.Context(), id); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	h.Log.Info("event deleted",
		zap.String("event_id", id.Hex()),
		zap.String("deleted_by", actor.ID))
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}
