// internal/app/system/authz/authz.go

// Package authz bridges the request context and the policy layer: it turns
// the session's fresh user record into the explicit Actor every policy call
// takes. No permission logic lives here; the policies are the single source
// of truth.
package authz

import (
	"net/http"

	"github.com/uovhub/campusevents/internal/app/policy"
	"github.com/uovhub/campusevents/internal/app/system/auth"
	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/models"
)

// ActorCtx returns the acting user's policy view and a found flag. When no
// user is signed in it returns a zero Actor, which every policy denies with
// not_signed_in.
func ActorCtx(r *http.Request) (policy.Actor, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return policy.Actor{}, false
	}
	return policy.ActorFor(u), true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.Role == models.RoleAdmin
}

// IsApproved reports whether the current request's user has approved status.
func IsApproved(r *http.Request) bool {
	u, ok := auth.CurrentUser(r)
	return ok && u.Status == models.StatusApproved
}

// RequireAdmin rejects non-admin requests with 403. Route-level coarse
// gate; per-target checks still go through the policies.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.CurrentUser(r); !ok {
			httpjson.Respond(w, http.StatusUnauthorized, map[string]string{"error": "sign in required"})
			return
		}
		if !IsAdmin(r) {
			httpjson.Respond(w, http.StatusForbidden, map[string]string{"error": "admin only"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
