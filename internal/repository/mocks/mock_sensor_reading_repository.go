package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"plantmon/internal/model"
)

type MockSensorReadingRepository struct {
	mock.Mock
}

func (m *MockSensorReadingRepository) ListByPlant(ctx context.Context, plantID string) ([]model.SensorReading, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.SensorReading), args.Error(1)
}

func (m *MockSensorReadingRepository) Create(ctx context.Context, reading *model.SensorReading) (string, error) {
	args := m.Called(ctx, reading)
	return args.String(0), args.Error(1)
}
