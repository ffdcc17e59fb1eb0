// internal/app/features/events/create.go
package events

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/policy/eventpolicy"
	"github.com/uovhub/campusevents/internal/app/system/authz"
	"github.com/uovhub/campusevents/internal/app/system/htmlsanitize"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/app/system/normalize"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"
	"go.uber.org/zap"
)

type createRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// HandleCreate creates an event. Approved organizers and admins only.
// POST /events
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, _ := authz.ActorCtx(r)
	if d := eventpolicy.CanCreate(actor); !d.Allowed {
		httpjson.Err(w, h.Log, apperr.Denied(d.Reason))
		return
	}

	var req createRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	title := htmlsanitize.StripTags(normalize.Name(req.Title))
	date := normalize.Name(req.Date)
	location := htmlsanitize.StripTags(normalize.Name(req.Location))
	description := htmlsanitize.StripTags(req.Description)

	switch {
	case title == "":
		httpjson.Err(w, h.Log, apperr.Validation("title is required"))
		return
	case date == "":
		httpjson.Err(w, h.Log, apperr.Validation("date is required"))
		return
	case location == "":
		httpjson.Err(w, h.Log, apperr.Validation("location is required"))
		return
	case description == "":
		httpjson.Err(w, h.Log, apperr.Validation("description is required"))
		return
	}

	created, err := h.Events.Create(r.Context(), models.Event{
		Title:       title,
		Date:        date,
		Location:    location,
		Description: description,
		CreatedBy:   actor.ID,
	})
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	h.Log.Info("event created",
		zap.String("event_id", created.ID.Hex()),
		zap.String("created_by", actor.ID))
	httpjson.Respond(w, http.StatusCreated, viewOf(created))
}
