// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/system/auth"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
}

func NewHandler(sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{Log: logger, SessionMgr: sessionMgr}
}

// HandleLogout clears the session. Safe to call when not signed in.
// POST /logout
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.SessionMgr.SignOut(w, r); err != nil {
		h.Log.Warn("logout session save failed", zap.Error(err))
	}
	httpjson.Respond(w, http.StatusOK, map[string]string{"status": "signed out"})
}
