// internal/app/features/profile/profile.go
package profile

import (
	"errors"
	"net/http"

	identitystore "github.com/uovhub/campusevents/internal/app/store/identities"
	"github.com/uovhub/campusevents/internal/app/system/auth"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"

	"go.uber.org/zap"
)

type profileResponse struct {
	User *models.User `json:"user"`
}

// ServeProfile returns the signed-in user's own record. The middleware has
// already loaded it fresh, so role and status here are current.
// GET /me
func (h *Handler) ServeProfile(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)
	httpjson.Respond(w, http.StatusOK, profileResponse{User: u})
}

type changePasswordRequest struct {
	NewPassword string `json:"new_password"`
}

// HandleChangePassword replaces the signed-in user's password and ends the
// session; the client prompts for a fresh login with the new password.
// POST /me/password
func (h *Handler) HandleChangePassword(w http.ResponseWriter, r *http.Request) {
	u, _ := auth.CurrentUser(r)

	var req changePasswordRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	if err := h.Identities.UpdatePassword(r.Context(), u.ID, req.NewPassword); err != nil {
		if errors.Is(err, identitystore.ErrWeakPassword) {
			httpjson.Err(w, h.Log, apperr.Validation("%v", err))
			return
		}
		httpjson.Err(w, h.Log, err)
		return
	}

	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("session clear after password change failed", zap.Error(err))
	}

	h.Log.Info("password changed", zap.String("user_id", u.ID))
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "password updated, sign in again"})
}
