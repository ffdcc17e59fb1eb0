// internal/app/policy/decision/decision.go

// Package decision defines the result value shared by all authorization
// policies. Policies return a typed denial with a reason code instead of an
// error, so callers can branch UX without exception-style control flow; the
// feature layer converts a denial into apperr.Denied at the HTTP boundary.
package decision

// Reason codes carried by denials. These are wire-visible: the admin client
// keys its messages off them, so treat them as stable identifiers.
const (
	ReasonNotSignedIn      = "not_signed_in"
	ReasonNotApproved      = "not_approved"
	ReasonRoleNotAllowed   = "role_not_allowed"
	ReasonNotEventOwner    = "not_event_owner"
	ReasonStatusNotPending = "status_not_pending"
	ReasonNotAStudent      = "not_a_student"
	ReasonNotAnOrganizer   = "not_an_organizer"
	ReasonCannotDeleteSelf = "cannot_delete_self"
)

// Decision is the outcome of a policy check.
type Decision struct {
	Allowed bool
	Reason  string // set only when denied
}

// Allow is the positive outcome.
func Allow() Decision { return Decision{Allowed: true} }

// Deny is a negative outcome with the given reason code.
func Deny(reason string) Decision { return Decision{Reason: reason} }
