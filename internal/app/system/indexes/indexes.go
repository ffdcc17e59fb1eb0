// internal/app/system/indexes/indexes.go

// Package indexes creates the indexes the stores rely on. Each ensure*
// function is idempotent; errors are aggregated so any problem is visible
// and startup can fail fast.
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureWhitelist(ctx, db); err != nil {
		problems = append(problems, "whitelist: "+err.Error())
	}
	if err := ensureIdentities(ctx, db); err != nil {
		problems = append(problems, "identities: "+err.Error())
	}
	if err := ensureEvents(ctx, db); err != nil {
		problems = append(problems, "events: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "users", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
		{
			// admin dashboard: pending first, newest first
			Keys:    bson.D{{Key: "status", Value: -1}, {Key: "created_at", Value: -1}},
			Options: options.Index().SetName("status_created"),
		},
	})
}

func ensureWhitelist(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "whitelist", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "reg_no", Value: 1}},
			Options: options.Index().SetName("reg_no_unique").SetUnique(true),
		},
	})
}

func ensureIdentities(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "identities", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("email_unique").SetUnique(true),
		},
	})
}

func ensureEvents(ctx context.Context, db *mongo.Database) error {
	return createIndexes(ctx, db, "events", []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "created_at", Value: -1}},
			Options: options.Index().SetName("created_desc"),
		},
		{
			Keys:    bson.D{{Key: "created_by", Value: 1}},
			Options: options.Index().SetName("created_by"),
		},
	})
}

func createIndexes(ctx context.Context, db *mongo.Database, coll string, models []mongo.IndexModel) error {
	_, err := db.Collection(coll).Indexes().CreateMany(ctx, models)
	return err
}
