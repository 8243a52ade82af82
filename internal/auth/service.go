package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/mealloan/backend/internal/db"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is the single failure the login path ever reports.
// Unknown identifier and wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash is a bcrypt hash of a throwaway value. When the identifier is
// unknown we still run one bcrypt comparison against it so the response
// timing stays in the same class as the wrong-password path.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

type UserRepository interface {
	GetByIdentifier(ctx context.Context, identifier string) (*db.User, error)
}

type Service struct {
	repo UserRepository
	jwt  *JWTManager
	ttl  time.Duration
}

func NewService(repo UserRepository, jwt *JWTManager, ttl time.Duration) *Service {
	return &Service{repo: repo, jwt: jwt, ttl: ttl}
}

// Login verifies the credential and mints a bearer token. Stored credentials
// are always bcrypt hashes; there is no plaintext comparison path.
func (s *Service) Login(ctx context.Context, identifier, password string) (string, error) {
	identifier = strings.TrimSpace(identifier)

	user, err := s.repo.GetByIdentifier(ctx, identifier)
	if errors.Is(err, db.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return "", ErrInvalidCredentials
	}
	if err != nil {
		// Storage failure, not a credential failure; let the caller
		// report it as such.
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.jwt.Mint(user.Identifier, s.ttl)
	if err != nil {
		return "", err
	}
	return token, nil
}

func HashPassword(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
