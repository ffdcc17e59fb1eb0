// internal/app/policy/eventpolicy/eventpolicy.go

// Package eventpolicy provides authorization policies for events.
//
// Authorization rules:
//   - Create: approved organizers and admins
//   - Delete: admins always; organizers only for events they created
//   - Join: any approved user regardless of role; joining an event the
//     user already belongs to is a no-op, not an error
//
// All functions are pure: they decide over the actor and target passed in
// and never touch the database.
package eventpolicy

import (
	"github.com/uovhub/campusevents/internal/app/policy"
	"github.com/uovhub/campusevents/internal/app/policy/decision"
	"github.com/uovhub/campusevents/internal/domain/models"
)

// CanCreate reports whether the actor may create a new event.
func CanCreate(actor policy.Actor) decision.Decision {
	if actor.ID == "" {
		return decision.Deny(decision.ReasonNotSignedIn)
	}
	if actor.Status != models.StatusApproved {
		return decision.Deny(decision.ReasonNotApproved)
	}
	if actor.Role != models.RoleOrganizer && actor.Role != models.RoleAdmin {
		return decision.Deny(decision.ReasonRoleNotAllowed)
	}
	return decision.Allow()
}

// CanDelete reports whether the actor may delete the event.
// Admins may delete any event; organizers only their own.
func CanDelete(actor policy.Actor, event *models.Event) decision.Decision {
	if actor.ID == "" {
		return decision.Deny(decision.ReasonNotSignedIn)
	}
	if actor.Role == models.RoleAdmin {
		return decision.Allow()
	}
	if actor.Role != models.RoleOrganizer {
		return decision.Deny(decision.ReasonRoleNotAllowed)
	}
	if event.CreatedBy != actor.ID {
		return decision.Deny(decision.ReasonNotEventOwner)
	}
	return decision.Allow()
}

// CanJoin reports whether the actor may join an event. Pending accounts are
// denied; the role does not matter.
func CanJoin(actor policy.Actor) decision.Decision {
	if actor.ID == "" {
		return decision.Deny(decision.ReasonNotSignedIn)
	}
	if actor.Status != models.StatusApproved {
		return decision.Deny(decision.ReasonNotApproved)
	}
	return decision.Allow()
}
