package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrUserNotFound distinguishes a missing row from a storage failure so
// callers can keep outages out of the invalid-credentials path.
var ErrUserNotFound = errors.New("user not found")

type User struct {
	Identifier   string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*User, error) {
	q := `SELECT identifier, password_hash, created_at FROM users WHERE identifier = $1`
	u := &User{}
	err := r.pool.QueryRow(ctx, q, identifier).
		Scan(&u.Identifier, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// EnsureUser inserts the bootstrap user if it does not exist yet. An
// existing row is left untouched so restarts never rotate the credential.
func (r *UserRepository) EnsureUser(ctx context.Context, identifier, passwordHash string) error {
	q := `
INSERT INTO users (identifier, password_hash)
VALUES ($1, $2)
ON CONFLICT (identifier) DO NOTHING
`
	_, err := r.pool.Exec(ctx, q, identifier, passwordHash)
	return err
}
