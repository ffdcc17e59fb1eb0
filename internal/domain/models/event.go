// internal/domain/models/event.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Event is a campus event users can join.
//
// JoinedUsers is a set of user IDs maintained with $addToSet, so membership
// is duplicate-free and only ever grows (there is no leave operation).
// CreatedBy is immutable once set; organizer-scoped delete authorization
// compares it against the acting user's ID.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Date        string             `bson:"date" json:"date"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	CreatedBy   string             `bson:"created_by" json:"created_by"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	JoinedUsers []string           `bson:"joined_users" json:"joined_users"`
}

// MemberCount is the number of users who have joined the event.
func (e *Event) MemberCount() int { return len(e.JoinedUsers) }

// HasJoined reports whether the given user is already in the membership set.
func (e *Event) HasJoined(userID string) bool {
	for _, id := range e.JoinedUsers {
		if id == userID {
			return true
		}
	}
	return false
}
