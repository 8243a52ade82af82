package postgres

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	loandomain "github.com/mealloan/backend/internal/domain/loan"
)

type LedgerRepository struct {
	pool *pgxpool.Pool
}

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// IssueLoan debits the client's available amount and appends the loan row
// inside one transaction. The balance row is taken FOR UPDATE so concurrent
// loans against the same client serialize; clients on other rows are not
// blocked. Runs at read committed, which together with the row lock is
// enough: nobody can read-modify-write this balance concurrently.
func (r *LedgerRepository) IssueLoan(ctx context.Context, clientIdentifier string, amount int64) (*loandomain.Transfer, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// No-op after a successful commit; otherwise releases the row lock and
	// discards both writes.
	defer tx.Rollback(ctx)

	var available int64
	err = tx.QueryRow(ctx,
		`SELECT available_amount FROM clients WHERE identifier = $1 FOR UPDATE`,
		clientIdentifier,
	).Scan(&available)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, loandomain.ErrClientNotFound
	}
	if err != nil {
		return nil, err
	}

	remaining := available - amount
	if remaining < 0 {
		return nil, loandomain.ErrInsufficientBalance
	}

	if _, err := tx.Exec(ctx,
		`UPDATE clients SET available_amount = $2 WHERE identifier = $1`,
		clientIdentifier, remaining,
	); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO loans (client_identifier, amount) VALUES ($1, $2)`,
		clientIdentifier, amount,
	); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &loandomain.Transfer{PreviousAmount: available, RemainingAmount: remaining}, nil
}

func (r *LedgerRepository) List(ctx context.Context, f loandomain.ListFilter) ([]loandomain.Entity, error) {
	if f.Limit <= 0 {
		f.Limit = 50
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	builder := strings.Builder{}
	builder.WriteString(`
SELECT id, client_identifier, amount, created_at
FROM loans
WHERE 1=1`)

	args := []any{}
	argPos := 1
	if strings.TrimSpace(f.ClientIdentifier) != "" {
		builder.WriteString(" AND client_identifier = $")
		builder.WriteString(strconv.Itoa(argPos))
		args = append(args, f.ClientIdentifier)
		argPos++
	}
	builder.WriteString(" ORDER BY created_at DESC, id DESC")
	builder.WriteString(" LIMIT $")
	builder.WriteString(strconv.Itoa(argPos))
	args = append(args, f.Limit)
	argPos++
	builder.WriteString(" OFFSET $")
	builder.WriteString(strconv.Itoa(argPos))
	args = append(args, f.Offset)

	rows, err := r.pool.Query(ctx, builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]loandomain.Entity, 0)
	for rows.Next() {
		var item loandomain.Entity
		if err := rows.Scan(&item.ID, &item.ClientIdentifier, &item.Amount, &item.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
