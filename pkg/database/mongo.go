package database

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var ErrMissingDatabaseName = errors.New("database: DATABASE_NAME is required for mongodb")

// NewMongoConnection connects, pings the primary, and returns the named database
func NewMongoConnection(ctx context.Context, uri, dbName string) (*mongo.Client, *mongo.Database, error) {
	if dbName == "" {
		return nil, nil, ErrMissingDatabaseName
	}

	opts := options.Client().
		ApplyURI(uri).
		SetMaxPoolSize(10).
		SetServerSelectionTimeout(5 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, nil, err
	}

	return client, client.Database(dbName), nil
}
