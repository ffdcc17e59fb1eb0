// internal/app/store/whitelist/whiteliststore.go

// Package whiteliststore reads and loads the append-only set of pre-approved
// registration numbers consulted during signup.
package whiteliststore

import (
	"context"
	"errors"
	"time"

	"github.com/uovhub/campusevents/internal/app/system/normalize"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("whitelist")}
}

// IsWhitelisted reports whether the registration number is pre-approved.
// The input is normalized (trim, uppercase) before the exact-match lookup.
//
// A definite miss returns (false, nil). A store failure returns a
// KindUnavailable error instead of false: admission must abort rather than
// silently demote a legitimate applicant to pending during an outage.
func (s *Store) IsWhitelisted(ctx context.Context, regNo string) (bool, error) {
	clean := normalize.RegNo(regNo)
	if clean == "" {
		return false, nil
	}
	err := s.c.FindOne(ctx, bson.M{"reg_no": clean}).Err()
	if err == nil {
		return true, nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	return false, apperr.Unavailable("whitelist lookup", err)
}

// AddBatch inserts the given registration numbers, normalizing each and
// skipping blanks and numbers already present (unique index on reg_no).
// Returns the count actually inserted. Used by the batch import utility;
// the serving path never writes to this collection.
func (s *Store) AddBatch(ctx context.Context, regNos []string) (int, error) {
	inserted := 0
	now := time.Now().UTC()
	for _, raw := range regNos {
		clean := normalize.RegNo(raw)
		if clean == "" {
			continue
		}
		entry := models.WhitelistEntry{RegNo: clean, AddedAt: now}
		if _, err := s.c.InsertOne(ctx, entry); err != nil {
			if wafflemongo.IsDup(err) {
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}

// Count returns the number of whitelist entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{})
}
