package userpolicy_test

import (
	"testing"

	"github.com/uovhub/campusevents/internal/app/policy"
	"github.com/uovhub/campusevents/internal/app/policy/decision"
	"github.com/uovhub/campusevents/internal/app/policy/userpolicy"
	"github.com/uovhub/campusevents/internal/domain/models"
)

func admin(id string) policy.Actor {
	return policy.Actor{ID: id, Role: models.RoleAdmin, Status: models.StatusApproved}
}

func user(id string, role models.Role, status models.Status) *models.User {
	return &models.User{ID: id, Role: role, Status: status}
}

func TestCanApprove_PendingTarget(t *testing.T) {
	if d := userpolicy.CanApprove(admin("a1"), user("u1", models.RoleStudent, models.StatusPending)); !d.Allowed {
		t.Errorf("admin denied approving pending user: %q", d.Reason)
	}
}

func TestCanApprove_AlreadyApproved(t *testing.T) {
	d := userpolicy.CanApprove(admin("a1"), user("u1", models.RoleStudent, models.StatusApproved))
	if d.Allowed {
		t.Fatal("approve must be denied when target is not pending")
	}
	if d.Reason != decision.ReasonStatusNotPending {
		t.Errorf("reason: got %q", d.Reason)
	}
}

func TestCanApprove_NonAdminActor(t *testing.T) {
	actor := policy.Actor{ID: "o1", Role: models.RoleOrganizer, Status: models.StatusApproved}
	d := userpolicy.CanApprove(actor, user("u1", models.RoleStudent, models.StatusPending))
	if d.Allowed || d.Reason != decision.ReasonRoleNotAllowed {
		t.Errorf("organizer approve: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
}

func TestCanPromote_ApprovedStudent(t *testing.T) {
	if d := userpolicy.CanPromote(admin("a1"), user("u1", models.RoleStudent, models.StatusApproved)); !d.Allowed {
		t.Errorf("admin denied promoting approved student: %q", d.Reason)
	}
}

func TestCanPromote_PendingStudent(t *testing.T) {
	d := userpolicy.CanPromote(admin("a1"), user("u1", models.RoleStudent, models.StatusPending))
	if d.Allowed || d.Reason != decision.ReasonNotApproved {
		t.Errorf("promote pending: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
}

// promote on someone already past student has no defined transition
func TestCanPromote_Organizer(t *testing.T) {
	d := userpolicy.CanPromote(admin("a1"), user("u1", models.RoleOrganizer, models.StatusApproved))
	if d.Allowed || d.Reason != decision.ReasonNotAStudent {
		t.Errorf("promote organizer: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
}

func TestCanDemote_Organizer(t *testing.T) {
	if d := userpolicy.CanDemote(admin("a1"), user("u1", models.RoleOrganizer, models.StatusApproved)); !d.Allowed {
		t.Errorf("admin denied demoting organizer: %q", d.Reason)
	}
}

// demote on a student has no defined transition
func TestCanDemote_Student(t *testing.T) {
	d := userpolicy.CanDemote(admin("a1"), user("u1", models.RoleStudent, models.StatusApproved))
	if d.Allowed || d.Reason != decision.ReasonNotAnOrganizer {
		t.Errorf("demote student: allowed=%v reason=%q", d.Allowed, d.Reason)
	}
}

func TestCanDelete_OtherUser(t *testing.T) {
	if d := userpolicy.CanDelete(admin("a1"), user("u1", models.RoleStudent, models.StatusApproved)); !d.Allowed {
		t.Errorf("admin denied deleting user: %q", d.Reason)
	}
}

func TestCanDelete_Self(t *testing.T) {
	d := userpolicy.CanDelete(admin("a1"), user("a1", models.RoleAdmin, models.StatusApproved))
	if d.Allowed {
		t.Fatal("admin must not delete their own account")
	}
	if d.Reason != decision.ReasonCannotDeleteSelf {
		t.Errorf("reason: got %q", d.Reason)
	}
}

func TestCanDelete_OtherAdmin(t *testing.T) {
	if d := userpolicy.CanDelete(admin("a1"), user("a2", models.RoleAdmin, models.StatusApproved)); !d.Allowed {
		t.Errorf("admin denied deleting another admin: %q", d.Reason)
	}
}

func TestAllActions_AnonymousActor(t *testing.T) {
	target := user("u1", models.RoleStudent, models.StatusPending)
	checks := map[string]decision.Decision{
		"approve": userpolicy.CanApprove(policy.Actor{}, target),
		"promote": userpolicy.CanPromote(policy.Actor{}, target),
		"demote":  userpolicy.CanDemote(policy.Actor{}, target),
		"delete":  userpolicy.CanDelete(policy.Actor{}, target),
	}
	for name, d := range checks {
		if d.Allowed || d.Reason != decision.ReasonNotSignedIn {
			t.Errorf("%s: allowed=%v reason=%q", name, d.Allowed, d.Reason)
		}
	}
}
