// internal/app/system/auth/auth.go

// Package auth manages cookie sessions and puts the current user into the
// request context. The session stores only the identity ID; the full user
// record is fetched fresh on every request so role and status changes (and
// account deletion) take effect immediately.
package auth

import (
	"context"
	"net/http"

	"github.com/uovhub/campusevents/internal/app/system/httpjson"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const userIDKey = "user_id"

type ctxKey string

const currentUserKey ctxKey = "currentUser"

// UserFetcher loads the fresh user record for a session's identity ID.
// userstore satisfies this through a small adapter in bootstrap.
type UserFetcher interface {
	FetchSessionUser(ctx context.Context, id string) (*models.User, error)
}

// SessionManager owns the cookie store and session lifecycle.
type SessionManager struct {
	store   *sessions.CookieStore
	name    string
	log     *zap.Logger
	fetcher UserFetcher
}

// NewSessionManager builds a cookie-backed session manager. An empty key is
// replaced with a random one, which invalidates sessions on restart; fine
// for dev, set a real key in production.
func NewSessionManager(key, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	keyBytes := []byte(key)
	if len(keyBytes) == 0 {
		keyBytes = securecookie.GenerateRandomKey(32)
		logger.Warn("session key not configured; using a random key (sessions reset on restart)")
	}
	store := sessions.NewCookieStore(keyBytes)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   86400 * 7,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, name: name, log: logger}, nil
}

// SetUserFetcher wires the per-request user lookup.
func (m *SessionManager) SetUserFetcher(f UserFetcher) { m.fetcher = f }

// SignIn records the identity ID in the session.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, userID string) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[userIDKey] = userID
	return sess.Save(r, w)
}

// SignOut clears the session.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Options.MaxAge = -1
	delete(sess.Values, userIDKey)
	return sess.Save(r, w)
}

// LoadSessionUser injects the fresh user record into context when a valid
// session exists. A session pointing at a deleted account is dropped.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.name)
		id, _ := sess.Values[userIDKey].(string)
		if id == "" || m.fetcher == nil {
			next.ServeHTTP(w, r)
			return
		}

		u, err := m.fetcher.FetchSessionUser(r.Context(), id)
		if err != nil {
			if apperr.IsKind(err, apperr.KindNotFound) {
				sess.Options.MaxAge = -1
				_ = sess.Save(r, w)
			} else {
				m.log.Warn("session user fetch failed", zap.Error(err))
			}
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, withUser(r, u))
	})
}

// CurrentUser returns the fresh user record and a found flag.
func CurrentUser(r *http.Request) (*models.User, bool) {
	u, ok := r.Context().Value(currentUserKey).(*models.User)
	return u, ok
}

// RequireSignedIn rejects requests without a user in context with 401.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			httpjson.Respond(w, http.StatusUnauthorized, map[string]string{"error": "sign in required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func withUser(r *http.Request, u *models.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), currentUserKey, u))
}

// WithTestUser injects a user into the request context, bypassing session
// middleware. For handler tests only.
func WithTestUser(r *http.Request, u *models.User) *http.Request {
	return withUser(r, u)
}
