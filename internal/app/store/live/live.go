// internal/app/store/live/live.go

// Package live delivers full-snapshot collection subscriptions, mirroring a
// document store's onSnapshot semantics: the callback receives a complete
// replacement view on subscribe and again after every change. Decision code
// stays pure over the delivered records; this package owns the only
// callback-driven machinery in the system.
package live

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Snapshot is a point-in-time view of a subscribed collection.
type Snapshot struct {
	Docs []bson.Raw
}

// Subscription is a handle to an active collection watch. Stop it when the
// consumer goes away; deliveries cease after Stop returns.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop unsubscribes and waits for the delivery goroutine to exit.
func (s *Subscription) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Subscribe watches a collection and invokes fn with a fresh full snapshot
// on every change, starting with the current contents. The filter scopes
// the snapshot queries only; the change stream watches the whole
// collection, so a change outside the filter costs one extra re-query and
// delivers an identical snapshot.
//
// Change streams require a replica set; if Watch fails the initial snapshot
// is still delivered and the subscription degrades to a one-shot view.
func Subscribe(ctx context.Context, db *mongo.Database, collection string, filter bson.M, logger *zap.Logger, fn func(Snapshot)) (*Subscription, error) {
	if filter == nil {
		filter = bson.M{}
	}
	coll := db.Collection(collection)

	snap, err := querySnapshot(ctx, coll, filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{cancel: cancel, done: make(chan struct{})}

	fn(snap)

	stream, err := coll.Watch(ctx, mongo.Pipeline{})
	if err != nil {
		logger.Warn("change stream unavailable; live view is a one-shot snapshot",
			zap.String("collection", collection), zap.Error(err))
		close(sub.done)
		return sub, nil
	}

	go func() {
		defer close(sub.done)
		defer stream.Close(context.Background())
		for stream.Next(ctx) {
			snap, err := querySnapshot(ctx, coll, filter)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warn("snapshot re-query failed",
					zap.String("collection", collection), zap.Error(err))
				continue
			}
			fn(snap)
		}
	}()

	return sub, nil
}

func querySnapshot(ctx context.Context, coll *mongo.Collection, filter bson.M) (Snapshot, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return Snapshot{}, err
	}
	defer cur.Close(ctx)

	var docs []bson.Raw
	if err := cur.All(ctx, &docs); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Docs: docs}, nil
}
