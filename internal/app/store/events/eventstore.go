// internal/app/store/events/eventstore.go

// Package eventstore persists events and their membership sets.
package eventstore

import (
	"context"
	"errors"
	"time"

	"github.com/uovhub/campusevents/internal/domain/apperr"
	"github.com/uovhub/campusevents/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("events")}
}

// Create inserts a new event with an empty membership set. CreatedBy must
// already be stamped by the caller; it is immutable afterward.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	e.ID = primitive.NewObjectID()
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.JoinedUsers == nil {
		e.JoinedUsers = []string{}
	}
	if _, err := s.c.InsertOne(ctx, e); err != nil {
		return models.Event{}, err
	}
	return e, nil
}

// GetByID loads an event.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var e models.Event
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("event")
		}
		return nil, err
	}
	return &e, nil
}

// List returns all events, newest first.
func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.c.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var events []models.Event
	if err := cur.All(ctx, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Join adds userID to the event's membership set and returns the updated
// event. The $addToSet runs server-side, so the operation is an atomic
// set-union: concurrent joins cannot lose each other and repeated joins by
// the same user leave the set unchanged.
func (s *Store) Join(ctx context.Context, id primitive.ObjectID, userID string) (*models.Event, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var e models.Event
	err := s.c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"joined_users": userID}},
		opts,
	).Decode(&e)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperr.NotFound("event")
		}
		return nil, err
	}
	return &e, nil
}

// Delete removes the event permanently. No soft delete, no cascade.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return apperr.NotFound("event")
	}
	return nil
}
