package loan

import (
	"context"
	"time"
)

type Entity struct {
	ID               int64     `json:"id"`
	ClientIdentifier string    `json:"client_identifier"`
	Amount           int64     `json:"amount"`
	CreatedAt        time.Time `json:"created_at"`
}

// Transfer reports the balance movement a committed loan produced.
type Transfer struct {
	PreviousAmount  int64 `json:"previous_amount"`
	RemainingAmount int64 `json:"remaining_amount"`
}

type ListFilter struct {
	ClientIdentifier string
	Limit            int32
	Offset           int32
}

// Ledger is the storage contract for the balance-transfer transaction.
// IssueLoan must debit the client's available amount and append the loan
// record as one atomic unit: on any failure neither write survives.
type Ledger interface {
	IssueLoan(ctx context.Context, clientIdentifier string, amount int64) (*Transfer, error)
	List(ctx context.Context, f ListFilter) ([]Entity, error)
}
