package mongo

// Package mongo implements the repository interfaces on top of MongoDB.
// The ObjectID round-trip for opaque string identifiers lives here and
// nowhere else; callers see repository.ErrInvalidID / repository.ErrNotFound
// instead of driver errors.

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"plantmon/internal/repository"
)

// Collection names used as the system of record.
const (
	plantCollection         = "plants"
	sensorReadingCollection = "sensor_outputs"
	deviceCollection        = "devices"
	userCollection          = "api_users"
)

// objectIDFromHex converts an opaque string identifier into an ObjectID.
// Malformed input maps to repository.ErrInvalidID so it surfaces as a
// client error, not a store failure.
func objectIDFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, repository.ErrInvalidID
	}
	return oid, nil
}

// insertedIDHex extracts the hex form of a store-assigned ObjectID.
func insertedIDHex(v any) (string, error) {
	oid, ok := v.(primitive.ObjectID)
	if !ok {
		return "", errors.New("unexpected inserted id type")
	}
	return oid.Hex(), nil
}

// upsertedIDHex renders an optional upserted ID; absent IDs become "".
func upsertedIDHex(v any) string {
	if v == nil {
		return ""
	}
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return ""
}

// translateErr maps driver-level lookup errors onto repository sentinels.
func translateErr(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNotFound
	}
	return err
}
