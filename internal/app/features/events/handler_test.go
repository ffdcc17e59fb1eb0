// internal/app/features/events/handler_test.go
package events

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/uovhub/campusevents/internal/app/policy/decision"
	"github.com/uovhub/campusevents/internal/domain/models"
	"github.com/uovhub/campusevents/internal/testutil"
	"go.uber.org/zap"
)

func serve(t *testing.T, h *Handler, r *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	Routes(h).ServeHTTP(rec, r)
	return rec
}

func TestCreateRequiresApprovedOrganizer(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	body := map[string]string{
		"title":       "Tech Meetup",
		"date":        "2026-10-01",
		"location":    "Main Auditorium",
		"description": "Lightning talks.",
	}

	cases := []struct {
		name       string
		user       *models.User
		wantStatus int
		wantReason string
	}{
		{"approved student", testutil.TestUser(models.RoleStudent, models.StatusApproved), http.StatusForbidden, decision.ReasonRoleNotAllowed},
		{"pending organizer", testutil.TestUser(models.RoleOrganizer, models.StatusPending), http.StatusForbidden, decision.ReasonNotApproved},
		{"approved organizer", testutil.TestUser(models.RoleOrganizer, models.StatusApproved), http.StatusCreated, ""},
		{"approved admin", testutil.TestUser(models.RoleAdmin, models.StatusApproved), http.StatusCreated, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/", body, tc.user)
			rec := serve(t, h, req)
			if rec.Code != tc.wantStatus {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tc.wantStatus, rec.Body.String())
			}
			if tc.wantReason != "" {
				var resp map[string]string
				testutil.DecodeJSON(t, rec, &resp)
				if resp["reason"] != tc.wantReason {
					t.Errorf("reason = %q, want %q", resp["reason"], tc.wantReason)
				}
			}
		})
	}
}

func TestCreateAnonymousRejected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	req := testutil.NewRequest(t, http.MethodPost, "/", map[string]string{"title": "x"})
	rec := serve(t, h, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateStampsOwnerAndSanitizes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	organizer := testutil.TestUser(models.RoleOrganizer, models.StatusApproved)
	body := map[string]string{
		"title":       "  Tech   <script>alert(1)</script>Meetup ",
		"date":        "2026-10-01",
		"location":    "Main Auditorium",
		"description": "<b>Lightning</b> talks.",
	}
	// created_by comes from the session, not the payload
	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/", body, organizer)
	rec := serve(t, h, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201 (body %s)", rec.Code, rec.Body.String())
	}

	var view eventView
	testutil.DecodeJSON(t, rec, &view)
	if view.CreatedBy != organizer.ID {
		t.Errorf("created_by = %q, want %q", view.CreatedBy, organizer.ID)
	}
	if strings.Contains(view.Title, "<script>") || strings.Contains(view.Title, "alert") {
		t.Errorf("title not sanitized: %q", view.Title)
	}
	if view.MemberCount != 0 {
		t.Errorf("member_count = %d, want 0", view.MemberCount)
	}
}

func TestCreateMissingFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	organizer := testutil.TestUser(models.RoleOrganizer, models.StatusApproved)
	body := map[string]string{"title": "Tech Meetup", "date": "2026-10-01"}
	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/", body, organizer)
	rec := serve(t, h, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 (body %s)", rec.Code, rec.Body.String())
	}
}

func TestJoinIsIdempotentOverHTTP(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	event := fx.CreateEvent(ctx, "owner-1")

	studentRec := testutil.TestUser(models.RoleStudent, models.StatusApproved)
	target := "/" + event.ID.Hex() + "/join"

	for i := 0; i < 2; i++ {
		req := testutil.NewAuthenticatedRequest(t, http.MethodPost, target, nil, studentRec)
		rec := serve(t, h, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("join %d: status = %d (body %s)", i+1, rec.Code, rec.Body.String())
		}
		var view eventView
		testutil.DecodeJSON(t, rec, &view)
		if view.MemberCount != 1 {
			t.Fatalf("join %d: member_count = %d, want 1", i+1, view.MemberCount)
		}
	}
}

func TestJoinRequiresApproval(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	event := fx.CreateEvent(ctx, "owner-1")

	pending := testutil.TestUser(models.RoleStudent, models.StatusPending)
	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/"+event.ID.Hex()+"/join", nil, pending)
	rec := serve(t, h, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403 (body %s)", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	testutil.DecodeJSON(t, rec, &resp)
	if resp["reason"] != decision.ReasonNotApproved {
		t.Errorf("reason = %q, want %q", resp["reason"], decision.ReasonNotApproved)
	}
}

func TestDeleteOwnershipRules(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())
	fx := testutil.NewFixtures(t, db)

	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := testutil.TestUser(models.RoleOrganizer, models.StatusApproved)
	other := testutil.TestUser(models.RoleOrganizer, models.StatusApproved)
	admin := testutil.TestUser(models.RoleAdmin, models.StatusApproved)

	ownEvent := fx.CreateEvent(ctx, owner.ID)

	// Another organizer may not delete it.
	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/"+ownEvent.ID.Hex()+"/delete", nil, other)
	rec := serve(t, h, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("other organizer: status = %d, want 403", rec.Code)
	}
	var resp map[string]string
	testutil.DecodeJSON(t, rec, &resp)
	if resp["reason"] != decision.ReasonNotEventOwner {
		t.Errorf("reason = %q, want %q", resp["reason"], decision.ReasonNotEventOwner)
	}

	// The owner may.
	req = testutil.NewAuthenticatedRequest(t, http.MethodPost, "/"+ownEvent.ID.Hex()+"/delete", nil, owner)
	rec = serve(t, h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("owner delete: status = %d (body %s)", rec.Code, rec.Body.String())
	}

	// An admin may delete anyone's event.
	otherEvent := fx.CreateEvent(ctx, other.ID)
	req = testutil.NewAuthenticatedRequest(t, http.MethodPost, "/"+otherEvent.ID.Hex()+"/delete", nil, admin)
	rec = serve(t, h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin delete: status = %d (body %s)", rec.Code, rec.Body.String())
	}

	// Deleting again reports not found.
	req = testutil.NewAuthenticatedRequest(t, http.MethodPost, "/"+otherEvent.ID.Hex()+"/delete", nil, admin)
	rec = serve(t, h, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete: status = %d, want 404", rec.Code)
	}
}

func TestMalformedEventID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewHandler(db, zap.NewNop())

	student := testutil.TestUser(models.RoleStudent, models.StatusApproved)
	req := testutil.NewAuthenticatedRequest(t, http.MethodPost, "/not-an-id/join", nil, student)
	rec := serve(t, h, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
