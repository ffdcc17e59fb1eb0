// Command whitelistimport loads a JSON array of registration numbers into
// the whitelist collection. It writes directly to the store the way the
// admission check reads it: normalized, one immutable entry per number,
// duplicates skipped.
//
// Usage:
//
//	whitelistimport -file allowed_students.json \
//	    -mongo-uri mongodb://localhost:27017 -mongo-database campusevents
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	whiteliststore "github.com/uovhub/campusevents/internal/app/store/whitelist"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const batchSize = 400

func main() {
	var (
		file     = flag.String("file", "", "path to a JSON array of registration numbers (required)")
		mongoURI = flag.String("mongo-uri", "mongodb://localhost:27017", "MongoDB connection URI")
		mongoDB  = flag.String("mongo-database", "campusevents", "MongoDB database name")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if *file == "" {
		logger.Fatal("-file is required")
	}

	data, err := os.ReadFile(*file)
	if err != nil {
		logger.Fatal("read input file", zap.Error(err))
	}
	var regNos []string
	if err := json.Unmarshal(data, &regNos); err != nil {
		logger.Fatal("input must be a JSON array of strings", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
	if err != nil {
		logger.Fatal("mongo connect", zap.Error(err))
	}
	defer client.Disconnect(context.Background())

	store := whiteliststore.New(client.Database(*mongoDB))

	total := 0
	for start := 0; start < len(regNos); start += batchSize {
		end := start + batchSize
		if end > len(regNos) {
			end = len(regNos)
		}
		inserted, err := store.AddBatch(ctx, regNos[start:end])
		total += inserted
		if err != nil {
			logger.Fatal("batch insert failed",
				zap.Int("inserted_so_far", total), zap.Error(err))
		}
		logger.Info("batch imported", zap.Int("through", end), zap.Int("inserted", inserted))
	}

	logger.Info("whitelist import complete",
		zap.Int("supplied", len(regNos)), zap.Int("inserted", total))
}
