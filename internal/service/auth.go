package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"plantmon/internal/model"
	"plantmon/internal/repository"
)

// Token is the credential pair handed back to authenticated callers.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// AuthService issues and verifies the bearer tokens that gate the API.
type AuthService interface {
	// Login checks the username/password pair against the user store and
	// returns a signed token. A previously issued token is reused as long
	// as it has not expired.
	Login(ctx context.Context, username, password string) (*Token, error)

	// VerifyToken validates a bearer token and resolves the user it was
	// issued to. Any parse, signature, or expiry failure maps to
	// ErrTokenInvalid.
	VerifyToken(ctx context.Context, token string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
}

// NewAuthService constructs a new AuthService signing HS256 tokens with the
// given secret.
func NewAuthService(users repository.UserRepository, secret string, ttl time.Duration) AuthService {
	return &authService{users: users, secret: []byte(secret), ttl: ttl}
}

func (s *authService) Login(ctx context.Context, username, password string) (*Token, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Hand back the stored token while it is still valid.
	if user.Token != "" {
		if _, err := s.parseClaims(user.Token); err == nil {
			return &Token{AccessToken: user.Token, TokenType: "bearer"}, nil
		}
	}

	claims := jwt.RegisteredClaims{
		Subject:   user.Username,
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(s.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	if err := s.users.UpdateToken(ctx, username, signed); err != nil {
		return nil, fmt.Errorf("store token: %w", err)
	}
	return &Token{AccessToken: signed, TokenType: "bearer"}, nil
}

func (s *authService) VerifyToken(ctx context.Context, token string) (*model.User, error) {
	claims, err := s.parseClaims(token)
	if err != nil || claims.Subject == "" {
		return nil, ErrTokenInvalid
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	return user, nil
}

// parseClaims validates the signature, algorithm, and expiry of a token and
// returns its registered claims.
func (s *authService) parseClaims(raw string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
