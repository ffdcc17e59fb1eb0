// internal/app/bootstrap/routes.go
package bootstrap

import (
	"context"
	"net/http"

	adminusersfeature "github.com/uovhub/campusevents/internal/app/features/adminusers"
	eventsfeature "github.com/uovhub/campusevents/internal/app/features/events"
	healthfeature "github.com/uovhub/campusevents/internal/app/features/health"
	loginfeature "github.com/uovhub/campusevents/internal/app/features/login"
	logoutfeature "github.com/uovhub/campusevents/internal/app/features/logout"
	profilefeature "github.com/uovhub/campusevents/internal/app/features/profile"
	signupfeature "github.com/uovhub/campusevents/internal/app/features/signup"
	userstore "github.com/uovhub/campusevents/internal/app/store/users"
	"github.com/uovhub/campusevents/internal/app/system/auth"
	"github.com/uovhub/campusevents/internal/domain/models"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// sessionUserFetcher adapts userstore to the auth.UserFetcher interface so
// LoadSessionUser pulls a fresh user record on each request. Role changes,
// approvals, and deletions take effect immediately.
type sessionUserFetcher struct {
	users *userstore.Store
}

func (f sessionUserFetcher) FetchSessionUser(ctx context.Context, id string) (*models.User, error) {
	return f.users.GetByID(ctx, id)
}

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. It creates the session manager, mounts every
// feature router, and returns the chi router as the app's handler.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}
	sessionMgr.SetUserFetcher(sessionUserFetcher{users: userstore.New(deps.MongoDatabase)})

	r := chi.NewRouter()

	// Global auth middleware: loads the fresh user into context if a
	// session exists, making auth.CurrentUser(r) available everywhere.
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Account creation and authentication
	signupHandler := signupfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	loginHandler := loginfeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	// Own-profile view and password change
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, sessionMgr, logger)
	r.Mount("/me", profilefeature.Routes(profileHandler))

	// Events: listing, creation, membership, deletion
	eventsHandler := eventsfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/events", eventsfeature.Routes(eventsHandler))

	// Admin dashboard: user review and role management
	adminHandler := adminusersfeature.NewHandler(deps.MongoDatabase, logger)
	r.Mount("/admin/users", adminusersfeature.Routes(adminHandler))

	return r, nil
}
