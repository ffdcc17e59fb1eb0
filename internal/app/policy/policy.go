// internal/app/policy/policy.go

// Package policy holds the actor identity threaded through every
// authorization check. Handlers build an Actor from the *freshly loaded*
// user record, never from cached session fields, so role and status changes
// take effect on the next request.
package policy

import "github.com/uovhub/campusevents/internal/domain/models"

// Actor is the acting user as the policies see it.
type Actor struct {
	ID     string
	Role   models.Role
	Status models.Status
}

// ActorFor builds an Actor from a user record.
func ActorFor(u *models.User) Actor {
	return Actor{ID: u.ID, Role: u.Role, Status: u.Status}
}
