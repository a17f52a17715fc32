package service

import (
	"context"
	"time"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

// SensorReadingService defines the use cases for recording and querying
// sensor output.
type SensorReadingService interface {
	// ListByPlant returns all readings stored for the given plant ID.
	ListByPlant(ctx context.Context, plantID string) ([]model.SensorReading, error)

	// Create stamps the reading with the current time, stores it, and returns
	// the assigned ID. The plant reference is not validated against the
	// plants collection.
	Create(ctx context.Context, reading *model.SensorReading) (string, error)
}

type sensorReadingService struct {
	repo repository.SensorReadingRepository
}

// NewSensorReadingService constructs a new SensorReadingService.
func NewSensorReadingService(repo repository.SensorReadingRepository) SensorReadingService {
	return &sensorReadingService{repo: repo}
}

func (s *sensorReadingService) ListByPlant(ctx context.Context, plantID string) ([]model.SensorReading, error) {
	if plantID == "" {
		return nil, ErrIDRequired
	}
	readings, err := s.repo.ListByPlant(ctx, plantID)
	if err != nil {
		return nil, translateRepoErr(err)
	}
	return readings, nil
}

func (s *sensorReadingService) Create(ctx context.Context, reading *model.SensorReading) (string, error) {
	if reading.PlantID == "" {
		return "", ErrIDRequired
	}
	reading.Timestamp = time.Now().UTC()

	id, err := s.repo.Create(ctx, reading)
	if err != nil {
		return "", translateRepoErr(err)
	}
	return id, nil
}
