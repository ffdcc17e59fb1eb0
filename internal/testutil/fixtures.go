// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/uovhub/campusevents/internal/domain/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role and status and returns it.
func (f *Fixtures) CreateUser(ctx context.Context, role models.Role, status models.Status) models.User {
	f.t.Helper()

	u := models.User{
		ID:        uuid.NewString(),
		FullName:  "Test " + string(role),
		RegNo:     "2021/ICT/" + uuid.NewString()[:4],
		Email:     uuid.NewString()[:8] + "@test.local",
		Role:      role,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("fixture user insert: %v", err)
	}
	return u
}

// CreateEvent inserts an event owned by createdBy and returns it.
func (f *Fixtures) CreateEvent(ctx context.Context, createdBy string) models.Event {
	f.t.Helper()

	e := models.Event{
		Title:       "Tech Meetup",
		Date:        "2026-10-01",
		Location:    "Main Auditorium",
		Description: "An evening of lightning talks.",
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
		JoinedUsers: []string{},
	}
	res, err := f.db.Collection("events").InsertOne(ctx, e)
	if err != nil {
		f.t.Fatalf("fixture event insert: %v", err)
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return e
}

// CreateWhitelistEntry inserts a whitelist entry for regNo.
func (f *Fixtures) CreateWhitelistEntry(ctx context.Context, regNo string) {
	f.t.Helper()

	entry := models.WhitelistEntry{
		RegNo:   regNo,
		AddedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("whitelist").InsertOne(ctx, entry); err != nil {
		f.t.Fatalf("fixture whitelist insert: %v", err)
	}
}
