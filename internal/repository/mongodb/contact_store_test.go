package mongodb_test

import (
	"context"
	"testing"
	"time"

	"neurodek-backend/internal/domain"
	"neurodek-backend/internal/repository/mongodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func submission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:      "Ana",
		Email:     "ana@x.com",
		Message:   "Hello there",
		CreatedAt: time.Now().UTC(),
	}
}

func TestContactStore(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create returns generated object id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		store := mongodb.NewContactStore(nil, mt.DB)

		id, err := store.Create(context.Background(), submission())
		require.NoError(mt, err)

		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err)
	})

	mt.Run("create surfaces write errors", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		store := mongodb.NewContactStore(nil, mt.DB)

		_, err := store.Create(context.Background(), submission())
		assert.ErrorContains(mt, err, "duplicate key")
	})

	mt.Run("lists collection names", func(mt *mtest.T) {
		ns := mt.DB.Name() + ".$cmd.listCollections"
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "name", Value: "contact"}, {Key: "type", Value: "collection"}},
			bson.D{{Key: "name", Value: "users"}, {Key: "type", Value: "collection"}},
		))
		store := mongodb.NewContactStore(nil, mt.DB)

		names, err := store.CollectionNames(context.Background())
		require.NoError(mt, err)
		assert.ElementsMatch(mt, []string{"contact", "users"}, names)
		assert.Equal(mt, domain.DriverMongo, store.Driver())
	})

	mt.Run("close without client is a no-op", func(mt *mtest.T) {
		store := mongodb.NewContactStore(nil, mt.DB)
		assert.NoError(mt, store.Close(context.Background()))
	})
}
