package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	clientdomain "github.com/mealloan/backend/internal/domain/client"
)

type ClientRepository struct {
	pool *pgxpool.Pool
}

func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

func (r *ClientRepository) Create(ctx context.Context, in clientdomain.CreateInput) (*clientdomain.Entity, error) {
	q := `
INSERT INTO clients (identifier, full_name, phone_number, available_amount)
VALUES ($1, $2, $3, $4)
RETURNING identifier, full_name, phone_number, available_amount, created_at
`
	out := &clientdomain.Entity{}
	err := r.pool.QueryRow(ctx, q, in.Identifier, in.FullName, in.PhoneNumber, in.AvailableAmount).
		Scan(&out.Identifier, &out.FullName, &out.PhoneNumber, &out.AvailableAmount, &out.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, clientdomain.ErrExists
		}
		return nil, err
	}
	return out, nil
}

func (r *ClientRepository) GetByIdentifier(ctx context.Context, identifier string) (*clientdomain.Entity, error) {
	q := `
SELECT identifier, full_name, phone_number, available_amount, created_at
FROM clients
WHERE identifier = $1
`
	out := &clientdomain.Entity{}
	err := r.pool.QueryRow(ctx, q, identifier).
		Scan(&out.Identifier, &out.FullName, &out.PhoneNumber, &out.AvailableAmount, &out.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, clientdomain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}
