package repository

import (
	"context"

	"plantmon/internal/model"
)

// UserRepository defines data access for API users. Users are provisioned
// out of band; the API only reads them and refreshes their stored token.
type UserRepository interface {
	// FindByUsername returns a user by username.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// UpdateToken stores the most recently issued access token for a user.
	UpdateToken(ctx context.Context, username, token string) error
}
