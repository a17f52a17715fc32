package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"plantmon/internal/model"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateToken(ctx context.Context, username, token string) error {
	args := m.Called(ctx, username, token)
	return args.Error(0)
}
