// Package mongostore is the document store driver. Each entity type lives in
// its own collection; multi-valued relations embed as id arrays on the
// parent document.
package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store implements store.Store over MongoDB.
type Store struct {
	client *mongo.Client

	users            *mongo.Collection
	projects         *mongo.Collection
	areas            *mongo.Collection
	responsibilities *mongo.Collection
	tasks            *mongo.Collection
	meetings         *mongo.Collection
	meetingNotes     *mongo.Collection
	templates        *mongo.Collection
}

// Open connects to MongoDB, pings it and binds the collections.
func Open(uri, dbName string) (*Store, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}

	db := client.Database(dbName)
	return &Store{
		client:           client,
		users:            db.Collection("users"),
		projects:         db.Collection("projects"),
		areas:            db.Collection("areas"),
		responsibilities: db.Collection("responsibilities"),
		tasks:            db.Collection("tasks"),
		meetings:         db.Collection("meetings"),
		meetingNotes:     db.Collection("meeting_notes"),
		templates:        db.Collection("project_templates"),
	}, nil
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}
