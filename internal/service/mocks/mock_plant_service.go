package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"plantmon/internal/model"
	"plantmon/internal/service"
)

type MockPlantService struct {
	mock.Mock
}

func (m *MockPlantService) List(ctx context.Context) ([]model.Plant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plant), args.Error(1)
}

func (m *MockPlantService) Get(ctx context.Context, id string) (*model.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plant), args.Error(1)
}

func (m *MockPlantService) Create(ctx context.Context, p *model.Plant) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockPlantService) Update(ctx context.Context, p *model.Plant) (*service.PlantUpdateDetails, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlantUpdateDetails), args.Error(1)
}

func (m *MockPlantService) Delete(ctx context.Context, id string) (*service.PlantDeleteDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlantDeleteDetails), args.Error(1)
}

func (m *MockPlantService) UploadImage(ctx context.Context, plantID string, r io.Reader, originalFilename string, contentType string, size int64) (*service.PlantImageDetails, error) {
	args := m.Called(ctx, plantID, r, originalFilename, contentType, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PlantImageDetails), args.Error(1)
}
