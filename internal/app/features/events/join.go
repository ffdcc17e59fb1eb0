// internal/app/features/events/join.go
package events

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/policy/eventpolicy"
	"github.com/uovhub/campusevents/internal/app/system/authz"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/apperr"
)

// HandleJoin adds the acting user to the event's membership set. The store
// applies an atomic set-union, so joining twice is a no-op and returns the
// same membership as a single join.
// POST /events/{id}/join
func (h *Handler) HandleJoin(w http.ResponseWriter, r *http.Request) {
	actor, _ := authz.ActorCtx(r)
	if d := eventpolicy.CanJoin(actor); !d.Allowed {
		httpjson.Err(w, h.Log, apperr.Denied(d.Reason))
		return
	}

	id, ok := h.eventID(w, r)
	if !ok {
		return
	}

	updated, err := h.Events.Join(r.Context(), id, actor.ID)
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	httpjson.Respond(w, http.StatusOK, viewOf(*updated))
}
