package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

type MockPlantRepository struct {
	mock.Mock
}

func (m *MockPlantRepository) List(ctx context.Context) ([]model.Plant, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Plant), args.Error(1)
}

func (m *MockPlantRepository) FindByID(ctx context.Context, id string) (*model.Plant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Plant), args.Error(1)
}

func (m *MockPlantRepository) Create(ctx context.Context, p *model.Plant) (string, error) {
	args := m.Called(ctx, p)
	return args.String(0), args.Error(1)
}

func (m *MockPlantRepository) Update(ctx context.Context, id string, p *model.Plant) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockPlantRepository) SetImageURL(ctx context.Context, id, imageURL string) (*repository.UpdateResult, error) {
	args := m.Called(ctx, id, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.UpdateResult), args.Error(1)
}

func (m *MockPlantRepository) Delete(ctx context.Context, id string) (*repository.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.DeleteResult), args.Error(1)
}
