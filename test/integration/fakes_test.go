package integration

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mealloan/backend/internal/auth"
	"github.com/mealloan/backend/internal/config"
	"github.com/mealloan/backend/internal/db"
	clientdomain "github.com/mealloan/backend/internal/domain/client"
	loandomain "github.com/mealloan/backend/internal/domain/loan"
	"github.com/mealloan/backend/internal/http/handlers"
	"github.com/mealloan/backend/internal/server"
)

type fakeUserRepo struct {
	users map[string]*db.User
}

func (r *fakeUserRepo) GetByIdentifier(_ context.Context, identifier string) (*db.User, error) {
	if u, ok := r.users[identifier]; ok {
		return u, nil
	}
	return nil, db.ErrUserNotFound
}

// fakeLedger mirrors the postgres ledger semantics in memory. The mutex
// stands in for the row lock so concurrent requests exercise the same
// serialization the real repository gets from FOR UPDATE.
type fakeLedger struct {
	mu       sync.Mutex
	balances map[string]int64
	loans    []loandomain.Entity
	nextID   int64
}

func newFakeLedger(balances map[string]int64) *fakeLedger {
	return &fakeLedger{balances: balances}
}

func (l *fakeLedger) IssueLoan(_ context.Context, clientIdentifier string, amount int64) (*loandomain.Transfer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	available, ok := l.balances[clientIdentifier]
	if !ok {
		return nil, loandomain.ErrClientNotFound
	}
	remaining := available - amount
	if remaining < 0 {
		return nil, loandomain.ErrInsufficientBalance
	}
	l.balances[clientIdentifier] = remaining
	l.nextID++
	l.loans = append(l.loans, loandomain.Entity{
		ID:               l.nextID,
		ClientIdentifier: clientIdentifier,
		Amount:           amount,
		CreatedAt:        time.Now().UTC(),
	})
	return &loandomain.Transfer{PreviousAmount: available, RemainingAmount: remaining}, nil
}

func (l *fakeLedger) List(_ context.Context, f loandomain.ListFilter) ([]loandomain.Entity, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]loandomain.Entity, 0, len(l.loans))
	for i := len(l.loans) - 1; i >= 0; i-- {
		item := l.loans[i]
		if f.ClientIdentifier != "" && item.ClientIdentifier != f.ClientIdentifier {
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (l *fakeLedger) balance(clientIdentifier string) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balances[clientIdentifier]
}

type fakeClientRepo struct {
	mu           sync.Mutex
	byIdentifier map[string]*clientdomain.Entity
}

func (r *fakeClientRepo) Create(_ context.Context, in clientdomain.CreateInput) (*clientdomain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byIdentifier[in.Identifier]; ok {
		return nil, clientdomain.ErrExists
	}
	e := &clientdomain.Entity{
		Identifier:      in.Identifier,
		FullName:        in.FullName,
		PhoneNumber:     in.PhoneNumber,
		AvailableAmount: in.AvailableAmount,
		CreatedAt:       time.Now().UTC(),
	}
	r.byIdentifier[in.Identifier] = e
	return e, nil
}

func (r *fakeClientRepo) GetByIdentifier(_ context.Context, identifier string) (*clientdomain.Entity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.byIdentifier[identifier]; ok {
		return e, nil
	}
	return nil, clientdomain.ErrNotFound
}

type testEnv struct {
	router     *gin.Engine
	jwtManager *auth.JWTManager
	ledger     *fakeLedger
}

func newTestEnv(t *testing.T, balances map[string]int64) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hash, err := auth.HashPassword("password123")
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	userRepo := &fakeUserRepo{users: map[string]*db.User{
		"36933538": {Identifier: "36933538", PasswordHash: hash},
	}}

	jwtManager := auth.NewJWTManager("issuer", "aud", "super-secret")
	authService := auth.NewService(userRepo, jwtManager, time.Hour)
	ledger := newFakeLedger(balances)
	loanService := loandomain.NewService(ledger)
	clientService := clientdomain.NewService(&fakeClientRepo{byIdentifier: map[string]*clientdomain.Entity{}})

	logger := slog.Default()
	router := server.NewRouter(config.Config{Env: "test", AllowedOrigins: []string{"http://localhost:5173"}}, logger, server.Dependencies{
		AuthHandler:   handlers.NewAuthHandler(authService, logger),
		LoanHandler:   handlers.NewLoanHandler(loanService, logger),
		ClientHandler: handlers.NewClientHandler(clientService, logger),
		JWTManager:    jwtManager,
	})

	return &testEnv{router: router, jwtManager: jwtManager, ledger: ledger}
}

func (e *testEnv) bearer(t *testing.T) string {
	t.Helper()
	tok, err := e.jwtManager.Mint("36933538", time.Hour)
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	return "Bearer " + tok
}
