// internal/app/features/adminusers/actions.go
package adminusers

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/policy/userpolicy"
	"github.com/uovhub/campusevents/internal/app/system/authz"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"
	"go.uber.org/zap"
)

// HandleApprove moves a pending account to approved. The only status
// transition in the system; there is no way back to pending.
// POST /admin/users/{id}/approve
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}
	actor, _ := authz.ActorCtx(r)
	if d := userpolicy.CanApprove(actor, target); !d.Allowed {
		httpjson.Err(w, h.Log, apperr.Denied(d.Reason))
		return
	}

	if err := h.Users.Approve(r.Context(), target.ID); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	h.logAction("user approved", actor.ID, target.ID)
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "approved"})
}

// HandlePromote makes an approved student an organizer.
// POST /admin/users/{id}/promote
func (h *Handler) HandlePromote(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}
	actor, _ := authz.ActorCtx(r)
	if d := userpolicy.CanPromote(actor, target); !d.Allowed {
		httpjson.Err(w, h.Log, apperr.Denied(d.Reason))
		return
	}

	if err := h.Users.SetRole(r.Context(), target.ID, models.RoleOrganizer); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	h.logAction("user promoted to organizer", actor.ID, target.ID)
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "promoted"})
}

// HandleDemote returns an organizer to student.
// POST /admin/users/{id}/demote
func (h *Handler) HandleDemote(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}
	actor, _ := authz.ActorCtx(r)
	if d := userpolicy.CanDemote(actor, target); !d.Allowed {
		httpjson.Err(w, h.Log, apperr.Denied(d.Reason))
		return
	}

	if err := h.Users.SetRole(r.Context(), target.ID, models.RoleStudent); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	h.logAction("user demoted to student", actor.ID, target.ID)
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "demoted"})
}

// HandleDelete removes an account. Admins cannot delete themselves through
// this action; events the target created stay behind.
// POST /admin/users/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}
	actor, _ := authz.ActorCtx(r)
	if d := userpolicy.CanDelete(actor, target); !d.Allowed {
		httpjson.Err(w, h.Log, apperr.Denied(d.Reason))
		return
	}

	if err := h.Users.Delete(r.Context(), target.ID); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	h.logAction("user deleted", actor.ID, target.ID)
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) logAction(msg, actorID, targetID string) {
	h.Log.Info(msg, zap.String("actor_id", actorID), zap.String("target_id", targetID))
}
