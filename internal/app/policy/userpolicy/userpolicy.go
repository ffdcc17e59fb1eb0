// internal/app/policy/userpolicy/userpolicy.go

// Package userpolicy provides authorization policies for account
// administration and doubles as the user state machine: an admin action is
// legal exactly when the corresponding policy allows it.
//
// Authorization rules (all actions require an admin actor):
//   - Approve: target must be pending (the only status transition;
//     there is no way back to pending)
//   - Promote: target must be an approved student
//   - Demote: target must be an organizer
//   - Delete: target must not be the actor's own account; any other
//     account, including another admin's, may be deleted
//
// The admin role itself is provisioned out-of-band; no policy grants it.
package userpolicy

import (
	"github.com/uovhub/campusevents/internal/app/policy"
	"github.com/uovhub/campusevents/internal/app/policy/decision"
	"github.com/uovhub/campusevents/internal/domain/models"
)

func requireAdmin(actor policy.Actor) (decision.Decision, bool) {
	if actor.ID == "" {
		return decision.Deny(decision.ReasonNotSignedIn), false
	}
	if actor.Role != models.RoleAdmin {
		return decision.Deny(decision.ReasonRoleNotAllowed), false
	}
	return decision.Allow(), true
}

// CanApprove reports whether the actor may approve the target account.
func CanApprove(actor policy.Actor, target *models.User) decision.Decision {
	if d, ok := requireAdmin(actor); !ok {
		return d
	}
	if target.Status != models.StatusPending {
		return decision.Deny(decision.ReasonStatusNotPending)
	}
	return decision.Allow()
}

// CanPromote reports whether the actor may promote the target to organizer.
func CanPromote(actor policy.Actor, target *models.User) decision.Decision {
	if d, ok := requireAdmin(actor); !ok {
		return d
	}
	if target.Status != models.StatusApproved {
		return decision.Deny(decision.ReasonNotApproved)
	}
	if target.Role != models.RoleStudent {
		return decision.Deny(decision.ReasonNotAStudent)
	}
	return decision.Allow()
}

// CanDemote reports whether the actor may demote the target to student.
func CanDemote(actor policy.Actor, target *models.User) decision.Decision {
	if d, ok := requireAdmin(actor); !ok {
		return d
	}
	if target.Role != models.RoleOrganizer {
		return decision.Deny(decision.ReasonNotAnOrganizer)
	}
	return decision.Allow()
}

// CanDelete reports whether the actor may delete the target account.
// Admins may not delete themselves through this action.
func CanDelete(actor policy.Actor, target *models.User) decision.Decision {
	if d, ok := requireAdmin(actor); !ok {
		return d
	}
	if target.ID == actor.ID {
		return decision.Deny(decision.ReasonCannotDeleteSelf)
	}
	return decision.Allow()
}
