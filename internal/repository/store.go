package repository

import (
	"context"
	"fmt"

	"neurodek-backend/internal/domain"
	"neurodek-backend/internal/repository/mongodb"
	"neurodek-backend/internal/repository/postgres"
	"neurodek-backend/pkg/database"
)

// OpenStore connects to the store named by databaseURL. An empty URL is not
// an error: it returns a nil store and the service runs without persistence.
func OpenStore(ctx context.Context, databaseURL, databaseName string) (domain.DocumentStore, error) {
	if databaseURL == "" {
		return nil, nil
	}

	scheme, err := database.DetectScheme(databaseURL)
	if err != nil {
		return nil, err
	}

	switch scheme {
	case database.SchemeMongo:
		client, db, err := database.NewMongoConnection(ctx, databaseURL, databaseName)
		if err != nil {
			return nil, fmt.Errorf("mongodb: %w", err)
		}
		return mongodb.NewContactStore(client, db), nil

	case database.SchemePostgres:
		pool, err := database.NewPostgresConnection(ctx, databaseURL)
		if err != nil {
			return nil, fmt.Errorf("postgres: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("postgres: ensure schema: %w", err)
		}
		return postgres.NewContactStore(pool), nil
	}

	return nil, fmt.Errorf("database: no store for scheme %q", scheme)
}
