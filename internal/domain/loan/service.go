package loan

import (
	"context"
	"strings"
)

const defaultListLimit = 50

type Service struct {
	ledger Ledger
}

func NewService(ledger Ledger) *Service {
	return &Service{ledger: ledger}
}

// CreateLoan validates the request and hands it to the ledger, which runs
// the debit and the append inside a single row-locked transaction. Nothing
// is retried here: a failed transfer is reported to the caller, since an
// automatic retry could mask a legitimate insufficient-funds condition.
func (s *Service) CreateLoan(ctx context.Context, clientIdentifier string, amount int64) (*Transfer, error) {
	clientIdentifier = strings.TrimSpace(clientIdentifier)
	if clientIdentifier == "" {
		return nil, ErrClientNotFound
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	return s.ledger.IssueLoan(ctx, clientIdentifier, amount)
}

// ListLoans returns loan records newest first.
func (s *Service) ListLoans(ctx context.Context, f ListFilter) ([]Entity, error) {
	f.ClientIdentifier = strings.TrimSpace(f.ClientIdentifier)
	if f.Limit <= 0 {
		f.Limit = defaultListLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.ledger.List(ctx, f)
}
