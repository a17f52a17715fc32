package service

import (
	"errors"

	"plantmon/internal/repository"
)

var (
	ErrIDRequired         = errors.New("id is required")
	ErrInvalidID          = errors.New("invalid id")
	ErrNotFound           = errors.New("record not found")
	ErrNoUpdateFields     = errors.New("no fields provided for update")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrTokenInvalid       = errors.New("could not validate credentials")
	ErrReaderNil          = errors.New("reader is nil")
)

// translateRepoErr maps repository sentinels onto their service equivalents so
// callers never match against repository errors directly.
func translateRepoErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repository.ErrInvalidID):
		return ErrInvalidID
	}
	return err
}
