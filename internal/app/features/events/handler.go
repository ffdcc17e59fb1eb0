// internal/app/features/events/handler.go
package events

import (
	eventstore "github.com/uovhub/campusevents/internal/app/store/events"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for events.
type Handler struct {
	Log    *zap.Logger
	Events *eventstore.Store
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		Log:    logger,
		Events: eventstore.New(db),
	}
}
