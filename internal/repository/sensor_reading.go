package repository

import (
	"context"

	"plantmon/internal/model"
)

// SensorReadingRepository defines data access for sensor readings.
// Readings are append-only: there is no update or delete.
type SensorReadingRepository interface {
	// ListByPlant returns all readings recorded for the given plant ID.
	ListByPlant(ctx context.Context, plantID string) ([]model.SensorReading, error)

	// Create inserts a new reading and returns the store-assigned ID.
	// The plant reference is not validated against the plants collection.
	Create(ctx context.Context, r *model.SensorReading) (string, error)
}
