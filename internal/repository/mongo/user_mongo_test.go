package mongo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

func TestUserMongo_FindByUsername(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewUserMongo(mt.DB)

		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plant_monitoring.api_users", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "username", Value: "sensor-gw"},
			{Key: "password", Value: "$2a$10$abcdefghijklmnopqrstuv"},
			{Key: "role", Value: bson.A{model.RolePlantMonitoring}},
			{Key: "token", Value: ""},
		}))

		user, err := repo.FindByUsername(context.Background(), "sensor-gw")

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "sensor-gw", user.Username)
		assert.Equal(t, []string{model.RolePlantMonitoring}, user.Roles)
	})

	mt.Run("unknown user", func(mt *mtest.T) {
		repo := NewUserMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plant_monitoring.api_users", mtest.FirstBatch))

		user, err := repo.FindByUsername(context.Background(), "nobody")

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, user)
	})
}

func TestUserMongo_UpdateToken(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewUserMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		err := repo.UpdateToken(context.Background(), "sensor-gw", "eyJhbGciOiJIUzI1NiJ9.x.y")

		assert.NoError(t, err)
	})

	mt.Run("command error", func(mt *mtest.T) {
		repo := NewUserMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11601,
			Message: "operation was interrupted",
			Name:    "Interrupted",
		}))

		err := repo.UpdateToken(context.Background(), "sensor-gw", "tok")

		assert.Error(t, err)
	})
}
