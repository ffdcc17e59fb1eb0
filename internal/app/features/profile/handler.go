// internal/app/features/profile/handler.go

// Package profile serves the signed-in user's own account view and the
// password change form.
package profile

import (
	identitystore "github.com/uovhub/campusevents/internal/app/store/identities"
	"github.com/uovhub/campusevents/internal/app/system/auth"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Identities *identitystore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Identities: identitystore.New(db),
	}
}
