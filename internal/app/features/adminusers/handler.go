// internal/app/features/adminusers/handler.go

// Package adminusers serves the admin dashboard API: the live user list and
// the four account actions (approve, promote, demote, delete). Every action
// loads a fresh target record and consults userpolicy before writing; the
// handlers never hand-roll permission checks.
package adminusers

import (
	"net/http"

	userstore "github.com/uovhub/campusevents/internal/app/store/users"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/models"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	DB    *mongo.Database
	Log   *zap.Logger
	Users *userstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:    db,
		Log:   logger,
		Users: userstore.New(db),
	}
}

// targetUser loads the {id} route param's user record, writing the error
// response itself on failure.
func (h *Handler) targetUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	id := chi.URLParam(r, "id")
	u, err := h.Users.GetByID(r.Context(), id)
	if err != nil {
		httpjson.Err(w, h.Log, err)
		return nil, false
	}
	return u, true
}
