package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"plantmon/internal/model"
	"plantmon/internal/service"
)

type MockDeviceService struct {
	mock.Mock
}

func (m *MockDeviceService) List(ctx context.Context) ([]model.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDeviceService) ListAvailable(ctx context.Context) ([]model.Device, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Device), args.Error(1)
}

func (m *MockDeviceService) Get(ctx context.Context, deviceID, plantID string) (*model.Device, error) {
	args := m.Called(ctx, deviceID, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceService) Create(ctx context.Context, deviceName, plantID string) (*model.Device, error) {
	args := m.Called(ctx, deviceName, plantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Device), args.Error(1)
}

func (m *MockDeviceService) Update(ctx context.Context, in service.DeviceUpdateInput) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}

func (m *MockDeviceService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
