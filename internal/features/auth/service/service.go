package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"loadharbour/internal/core/cache"
	"loadharbour/internal/core/storage"
	"loadharbour/internal/features/auth/domain"
	"loadharbour/internal/features/auth/ports"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned on a failed login. The message is
// identical for unknown emails and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidToken is returned for missing, expired, or unknown tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

const tokenKeyPrefix = "auth:token:"

// AuthServiceImpl implements ports.AuthService. Sessions live in the
// cache port under an opaque uuid token.
type AuthServiceImpl struct {
	repo     ports.UserRepository
	sessions cache.Cache
	tokenTTL time.Duration
	now      func() time.Time
}

// NewAuthService creates a new AuthServiceImpl.
func NewAuthService(repo ports.UserRepository, sessions cache.Cache, tokenTTL time.Duration) *AuthServiceImpl {
	return &AuthServiceImpl{
		repo:     repo,
		sessions: sessions,
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// Register creates an account. Emails are unique case-insensitively;
// the stored user carries only the salt and hash, never the password.
func (s *AuthServiceImpl) Register(ctx context.Context, creds domain.Credentials) (domain.User, error) {
	if err := creds.ValidateRegister(); err != nil {
		return domain.User{}, err
	}

	salt, err := domain.GenerateSalt()
	if err != nil {
		return domain.User{}, fmt.Errorf("service: failed to generate salt: %w", err)
	}
	hash, err := domain.HashPassword(creds.Password, salt)
	if err != nil {
		return domain.User{}, fmt.Errorf("service: failed to hash password: %w", err)
	}

	user := domain.User{
		Email:        strings.ToLower(creds.Email),
		Name:         creds.Name,
		Role:         creds.Role,
		PasswordSalt: salt,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC().Format(time.RFC3339),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.User{}, fmt.Errorf("service: failed to create user: %w", err)
	}
	return created, nil
}

// Login verifies the credentials and issues a session token with the
// configured TTL.
func (s *AuthServiceImpl) Login(ctx context.Context, creds domain.Credentials) (domain.Session, error) {
	if err := creds.ValidateLogin(); err != nil {
		return domain.Session{}, err
	}

	email := strings.ToLower(creds.Email)
	user, err := s.repo.Find(ctx, func(u domain.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Session{}, ErrInvalidCredentials
		}
		return domain.Session{}, fmt.Errorf("service: failed to find user: %w", err)
	}

	if !domain.VerifyPassword(creds.Password, user.PasswordSalt, user.PasswordHash) {
		return domain.Session{}, ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.sessions.Set(ctx, tokenKeyPrefix+token, []byte(user.ID), s.tokenTTL); err != nil {
		return domain.Session{}, fmt.Errorf("service: failed to store session: %w", err)
	}

	return domain.Session{User: user, Token: token}, nil
}

// Logout invalidates the token. Unknown tokens are a no-op.
func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, tokenKeyPrefix+token); err != nil {
		return fmt.Errorf("service: failed to delete session: %w", err)
	}
	return nil
}

// Resolve maps a bearer token back to its user.
func (s *AuthServiceImpl) Resolve(ctx context.Context, token string) (domain.User, error) {
	if token == "" {
		return domain.User{}, ErrInvalidToken
	}

	userID, err := s.sessions.Get(ctx, tokenKeyPrefix+token)
	if err != nil {
		return domain.User{}, ErrInvalidToken
	}

	user, err := s.repo.Get(ctx, string(userID))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, fmt.Errorf("service: failed to load user: %w", err)
	}
	return user, nil
}
