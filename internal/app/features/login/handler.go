// internal/app/features/login/handler.go
package login

import (
	"errors"
	"net/http"

	identitystore "github.com/uovhub/campusevents/internal/app/store/identities"
	userstore "github.com/uovhub/campusevents/internal/app/store/users"
	"github.com/uovhub/campusevents/internal/app/system/auth"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Identities *identitystore.Store
	Users      *userstore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Identities: identitystore.New(db),
		Users:      userstore.New(db),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	User *models.User `json:"user"`
}

// HandleLogin verifies credentials and establishes a session. Pending
// accounts may sign in; the client shows the await-review state and the
// policies gate what they can do.
// POST /login
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httpjson.Decode(r, &req); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}
	if req.Email == "" || req.Password == "" {
		httpjson.Err(w, h.Log, apperr.Validation("email and password are required"))
		return
	}

	identityID, err := h.Identities.Verify(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identitystore.ErrInvalidCredentials) {
			httpjson.Respond(w, http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
			return
		}
		httpjson.Err(w, h.Log, apperr.Unavailable("credential check", err))
		return
	}

	user, err := h.Users.GetByID(r.Context(), identityID)
	if err != nil {
		// Credentials without a profile: an admission compensation that
		// never ran, or an admin-deleted account with stale credentials.
		httpjson.Err(w, h.Log, err)
		return
	}

	if err := h.SessionMgr.SignIn(w, r, user.ID); err != nil {
		httpjson.Err(w, h.Log, err)
		return
	}

	h.Log.Info("user signed in", zap.String("user_id", user.ID), zap.String("role", string(user.Role)))
	httpjson.Respond(w, http.StatusOK, loginResponse{User: user})
}
