// internal/app/store/users/userstore.go

// Package userstore persists user accounts. The document _id is the identity
// ID issued at signup (not a generated ObjectID), so a session's identity
// key addresses the profile directly.
package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/uovhub/campusevents/internal/app/system/normalize"
	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrDuplicateEmail is returned when attempting to create a user with an
// email that already exists.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

// Create inserts a new user after normalizing fields. The caller supplies
// the ID (identity key), role, and status; admission is the only caller.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	if u.ID == "" {
		return models.User{}, apperr.Validation("user id is required")
	}
	u.FullName = normalize.Name(u.FullName)
	u.FullNameCI = text.Fold(u.FullName)
	u.RegNo = normalize.RegNo(u.RegNo)
	u.Email = normalize.Email(u.Email)

	if !models.ValidRole(u.Role) {
		return models.User{}, apperr.Validation("role %q is not valid", u.Role)
	}
	if !models.ValidStatus(u.Status) {
		return models.User{}, apperr.Validation("status %q is not valid", u.Status)
	}

	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// GetByID loads a user by identity ID.
func (s *Store) GetByID(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by normalized email.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("user")
		}
		return nil, err
	}
	return &u, nil
}

// List returns all users, pending accounts first, newest first within each
// status. This is the admin dashboard ordering.
func (s *Store) List(ctx context.Context) ([]models.User, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "status", Value: -1}, // "pending" > "approved" lexically
		{Key: "created_at", Value: -1},
	})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var users []models.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Approve sets a pending user's status to approved. A single-field $set:
// concurrent admin actions on the same record resolve last-writer-wins per
// field at the store, never read-modify-write in the app.
func (s *Store) Approve(ctx context.Context, id string) error {
	return s.setField(ctx, id, "status", models.StatusApproved)
}

// SetRole updates a user's role (promote/demote target value).
func (s *Store) SetRole(ctx context.Context, id string, role models.Role) error {
	if !models.ValidRole(role) {
		return apperr.Validation("role %q is not valid", role)
	}
	return s.setField(ctx, id, "role", role)
}

func (s *Store) setField(ctx context.Context, id, field string, value any) error {
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{field: value}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("user")
	}
	return nil
}

// Delete removes the user record. Events the user created are left in
// place with a dangling created_by; admins can still delete those events.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("user")
	}
	return nil
}
