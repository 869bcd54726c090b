package mongodb

import (
	"context"
	"fmt"

	"neurodek-backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type contactStore struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewContactStore wraps a connected database. client may be nil in tests,
// in which case Close is a no-op.
func NewContactStore(client *mongo.Client, db *mongo.Database) domain.DocumentStore {
	return &contactStore{client: client, db: db}
}

func (s *contactStore) Driver() string {
	return domain.DriverMongo
}

// Create inserts the submission into the contact collection. The driver
// generates the ObjectID; its hex form is returned.
func (s *contactStore) Create(ctx context.Context, submission *domain.ContactSubmission) (string, error) {
	res, err := s.db.Collection(domain.ContactCollection).InsertOne(ctx, submission)
	if err != nil {
		return "", err
	}

	switch id := res.InsertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	default:
		return fmt.Sprint(id), nil
	}
}

func (s *contactStore) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

func (s *contactStore) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
