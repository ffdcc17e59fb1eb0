// internal/testutil/http.go
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/uovhub/campusevents/internal/app/system/auth"
	"github.com/uovhub/campusevents/internal/domain/models"

	"github.com/google/uuid"
)

// TestUser returns an in-memory user for handler tests. It is not persisted;
// use Fixtures.CreateUser when the handler reads the user back from the
// database.
func TestUser(role models.Role, status models.Status) *models.User {
	return &models.User{
		ID:        uuid.NewString(),
		FullName:  "Test " + string(role),
		RegNo:     "2021/ICT/001",
		Email:     uuid.NewString()[:8] + "@test.local",
		Role:      role,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
}

// NewRequest builds a request with an optional JSON body.
func NewRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	buf, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request body: %v", err)
	}
	r := httptest.NewRequest(method, target, bytes.NewReader(buf))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewAuthenticatedRequest builds a JSON request with u injected into the
// request context, bypassing the session middleware.
func NewAuthenticatedRequest(t *testing.T, method, target string, body any, u *models.User) *http.Request {
	t.Helper()
	return auth.WithTestUser(NewRequest(t, method, target, body), u)
}

// DecodeJSON unmarshals a recorded response body into out.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
}
