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

var plantFixture = model.Plant{
	Name:        "Monstera",
	Type:        "tropical",
	Location:    "living room",
	Description: "split leaves",
}

func TestPlantMongo_List(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		first := primitive.NewObjectID()
		second := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plant_monitoring.plants", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: first},
				{Key: "name", Value: "Monstera"},
				{Key: "type", Value: "tropical"},
				{Key: "location", Value: "living room"},
				{Key: "description", Value: "split leaves"},
				{Key: "imageUrl", Value: "http://minio/plants/a.jpg"},
			},
			bson.D{
				{Key: "_id", Value: second},
				{Key: "name", Value: "Basil"},
				{Key: "type", Value: "herb"},
				{Key: "location", Value: "kitchen"},
				{Key: "description", Value: ""},
				{Key: "imageUrl", Value: ""},
			},
		))

		plants, err := repo.List(context.Background())

		assert.NoError(t, err)
		assert.Len(t, plants, 2)
		assert.Equal(t, first.Hex(), plants[0].ID)
		assert.Equal(t, "Monstera", plants[0].Name)
		assert.Equal(t, second.Hex(), plants[1].ID)
	})

	mt.Run("empty", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plant_monitoring.plants", mtest.FirstBatch))

		plants, err := repo.List(context.Background())

		assert.NoError(t, err)
		assert.NotNil(t, plants)
		assert.Len(t, plants, 0)
	})
}

func TestPlantMongo_FindByID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("found", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plant_monitoring.plants", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "name", Value: "Monstera"},
			{Key: "type", Value: "tropical"},
			{Key: "location", Value: "living room"},
			{Key: "description", Value: "split leaves"},
			{Key: "imageUrl", Value: ""},
		}))

		plant, err := repo.FindByID(context.Background(), oid.Hex())

		assert.NoError(t, err)
		assert.NotNil(t, plant)
		assert.Equal(t, oid.Hex(), plant.ID)
		assert.Equal(t, "Monstera", plant.Name)
	})

	mt.Run("not found", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateCursorResponse(0, "plant_monitoring.plants", mtest.FirstBatch))

		plant, err := repo.FindByID(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, plant)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		plant, err := repo.FindByID(context.Background(), "not-a-hex-id")

		assert.ErrorIs(t, err, repository.ErrInvalidID)
		assert.Nil(t, plant)
	})
}

func TestPlantMongo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := repo.Create(context.Background(), &plantFixture)

		assert.NoError(t, err)
		assert.NotEmpty(t, id)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(t, err)
	})

	mt.Run("write error", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key",
		}))

		id, err := repo.Create(context.Background(), &plantFixture)

		assert.Error(t, err)
		assert.Empty(t, id)
	})
}

func TestPlantMongo_Update(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("matched", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), &plantFixture)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)
		assert.Empty(t, res.UpsertedID)
		assert.True(t, res.Acknowledged)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.Update(context.Background(), primitive.NewObjectID().Hex(), &plantFixture)

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, int64(0), res.MatchedCount)
		assert.Equal(t, int64(0), res.ModifiedCount)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		res, err := repo.Update(context.Background(), "xyz", &plantFixture)

		assert.ErrorIs(t, err, repository.ErrInvalidID)
		assert.Nil(t, res)
	})
}

func TestPlantMongo_SetImageURL(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.SetImageURL(context.Background(), primitive.NewObjectID().Hex(), "http://minio/plants/b.png")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)
	})
}

func TestPlantMongo_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())

		assert.NoError(t, err)
		assert.NotNil(t, res)
		assert.Equal(t, int64(1), res.DeletedCount)
		assert.True(t, res.Acknowledged)
	})

	mt.Run("no match", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		res, err := repo.Delete(context.Background(), primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, res)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewPlantMongo(mt.DB)

		res, err := repo.Delete(context.Background(), "bad")

		assert.ErrorIs(t, err, repository.ErrInvalidID)
		assert.Nil(t, res)
	})
}
