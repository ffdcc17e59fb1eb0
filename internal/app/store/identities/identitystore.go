// internal/app/store/identities/identitystore.go

// Package identitystore is the identity-provider collaborator: it owns
// email+password credentials, separate from the user profile. Identity IDs
// are opaque UUIDs; the users collection reuses them as document keys.
package identitystore

import (
	"context"
	"errors"
	"time"

	"github.com/uovhub/campusevents/internal/app/system/normalize"
	"github.com/uovhub/campusevents/internal/domain/apperr"

	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	bcryptCost        = 12
	minPasswordLength = 6
)

var (
	// ErrEmailInUse is returned when an identity already exists for the email.
	ErrEmailInUse = errors.New("an identity with this email already exists")
	// ErrWeakPassword is returned for passwords under the minimum length.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
	// ErrInvalidCredentials is returned when email or password do not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type identity struct {
	ID           string    `bson:"_id"`
	Email        string    `bson:"email"`
	PasswordHash []byte    `bson:"password_hash"`
	CreatedAt    time.Time `bson:"created_at"`
}

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("identities")}
}

// CreateIdentity registers credentials for the email and returns the new
// identity ID.
func (s *Store) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	if len(password) < minPasswordLength {
		return "", ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	id := identity{
		ID:           uuid.NewString(),
		Email:        normalize.Email(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, id); err != nil {
		if wafflemongo.IsDup(err) {
			return "", ErrEmailInUse
		}
		return "", err
	}
	return id.ID, nil
}

// Verify checks email+password and returns the identity ID on success.
// Wrong email and wrong password both return ErrInvalidCredentials.
func (s *Store) Verify(ctx context.Context, email, password string) (string, error) {
	var id identity
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&id)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword(id.PasswordHash, []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}
	return id.ID, nil
}

// UpdatePassword replaces the stored hash with one for the new password,
// applying the same minimum length as signup.
func (s *Store) UpdatePassword(ctx context.Context, id, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return ErrWeakPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return err
	}
	res, err := s.c.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"password_hash": hash}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("identity")
	}
	return nil
}

// DeleteIdentity removes the credentials. Admission uses this as the
// compensating action when the profile write fails, so a missing identity
// is not an error.
func (s *Store) DeleteIdentity(ctx context.Context, id string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
