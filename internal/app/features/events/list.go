// internal/app/features/events/list.go
package events

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// eventView is the list/detail wire shape; it adds the member count the
// clients display next to each event.
type eventView struct {
	models.Event
	MemberCount int `json:"member_count"`
}

func viewOf(e models.Event) eventView {
	return eventView{Event: e, MemberCount: e.MemberCount()}
}

// ServeList returns all events, newest first.
// GET /events
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	list, err := h.Events.List(r.Context())
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}
	views := make([]eventView, 0, len(list))
	for _, e := range list {
		views = append(views, viewOf(e))
	}
	httpjson.Respond(w, http.StatusOK, views)
}

// ServeDetail returns a single event.
// GET /events/{id}
func (h *Handler) ServeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := h.eventID(w, r)
	if !ok {
		return
	}
	e, err := h.Events.GetByID(r.Context(), id)
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}
	httpjson.Respond(w, http.StatusOK, viewOf(*e))
}

// eventID parses the {id} route param, writing a 400 on malformed input.
func (h *Handler) eventID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		httpjson.Respond(w, http.StatusBadRequest, map[string]string{"error": "malformed event id"})
		return primitive.NilObjectID, false
	}
	return id, true
}
