package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

type MockDeviceRepository struct {
	mock.Mock
}

func (m *MockDeviceRepository) List(ctx context.Context) ([]model.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDeviceRepository) ListAvailable(ctx context.Context) ([]model.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindByID(ctx context.Context, id string) (*model.Device, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceRepository) FindByPlantID(ctx context.Context, plantID string) (*model.Device, error) {
	args := m.Called(ctx, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceRepository) Create(ctx context.Context, d *model.Device) (string, error) {
	args := m.Called(ctx, d)
	return args.String(0), args.Error(1)
}

func (m *MockDeviceRepository) Update(ctx context.Context, id string, upd repository.DeviceUpdate) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockDeviceRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}
