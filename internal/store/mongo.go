package store

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ErrNotFound reports a lookup by ID that matched no document.
var ErrNotFound = errors.New("document not found")

// Mongo wraps the document-database connection shared by the repositories.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// NewMongo connects to the document store and verifies the connection.
// The caller bounds the attempt through ctx.
func NewMongo(ctx context.Context, uri, database string, log *zap.Logger) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger := log.Named("mongo")
	logger.Info("connected to mongodb", zap.String("database", database))

	return &Mongo{
		client: client,
		db:     client.Database(database),
		log:    logger,
	}, nil
}

// Disconnect closes the connection.
func (m *Mongo) Disconnect(ctx context.Context) error {
	m.log.Info("closing mongodb connection")
	return m.client.Disconnect(ctx)
}

// Ping checks store health.
func (m *Mongo) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Collection returns a handle on a named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}
