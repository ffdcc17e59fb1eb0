// internal/domain/models/user.go
package models

import "time"

// Role is the capability tier of a user account.
type Role string

const (
	RoleStudent   Role = "student"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ValidRole reports whether r is one of the three defined roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleOrganizer, RoleAdmin:
		return true
	}
	return false
}

// Status is the admission state of a user account.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// ValidStatus reports whether s is a defined status.
func ValidStatus(s Status) bool {
	return s == StatusPending || s == StatusApproved
}

// User is a registered account.
//
// The document _id equals the identity ID issued at signup, so the users
// collection is keyed by the same opaque identifier the session carries.
// Role changes only through promote/demote, status only through approve;
// there is no approved -> pending transition.
type User struct {
	ID         string    `bson:"_id" json:"id"`
	FullName   string    `bson:"full_name" json:"full_name"`
	FullNameCI string    `bson:"full_name_ci" json:"-"` // lowercase, diacritics-stripped
	RegNo      string    `bson:"reg_no" json:"reg_no"`  // normalized: trimmed, uppercase
	Email      string    `bson:"email" json:"email"`    // normalized: trimmed, lowercase
	Role       Role      `bson:"role" json:"role"`
	Status     Status    `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// IsApproved reports whether the account has passed admission review.
func (u *User) IsApproved() bool { return u.Status == StatusApproved }
