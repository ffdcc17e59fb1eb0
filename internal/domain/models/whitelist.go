// internal/domain/models/whitelist.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WhitelistEntry is a pre-approved registration number.
//
// Entries are written only by the batch import utility and never mutated;
// RegNo is stored normalized (trimmed, uppercase) so signup checks are
// exact-match lookups.
type WhitelistEntry struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RegNo   string             `bson:"reg_no" json:"reg_no"`
	AddedAt time.Time          `bson:"added_at" json:"added_at"`
}
