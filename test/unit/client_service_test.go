package unit

import (
	"context"
	"errors"
	"testing"
	"time"

	clientdomain "github.com/mealloan/backend/internal/domain/client"
)

type clientRepoMock struct {
	byIdentifier map[string]*clientdomain.Entity
}

func (m *clientRepoMock) Create(_ context.Context, in clientdomain.CreateInput) (*clientdomain.Entity, error) {
	if _, ok := m.byIdentifier[in.Identifier]; ok {
		return nil, clientdomain.ErrExists
	}
	e := &clientdomain.Entity{
		Identifier:      in.Identifier,
		FullName:        in.FullName,
		PhoneNumber:     in.PhoneNumber,
		AvailableAmount: in.AvailableAmount,
		CreatedAt:       time.Now().UTC(),
	}
	m.byIdentifier[in.Identifier] = e
	return e, nil
}

func (m *clientRepoMock) GetByIdentifier(_ context.Context, identifier string) (*clientdomain.Entity, error) {
	if e, ok := m.byIdentifier[identifier]; ok {
		return e, nil
	}
	return nil, clientdomain.ErrNotFound
}

func TestRegisterClientTrimsAndStores(t *testing.T) {
	repo := &clientRepoMock{byIdentifier: map[string]*clientdomain.Entity{}}
	svc := clientdomain.NewService(repo)

	created, err := svc.Register(context.Background(), clientdomain.CreateInput{
		Identifier:      "  12345678 ",
		FullName:        " Jane Doe ",
		AvailableAmount: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Identifier != "12345678" || created.FullName != "Jane Doe" {
		t.Fatalf("input not trimmed: %+v", created)
	}
}

func TestRegisterClientRejectsInvalidInput(t *testing.T) {
	repo := &clientRepoMock{byIdentifier: map[string]*clientdomain.Entity{}}
	svc := clientdomain.NewService(repo)

	cases := []clientdomain.CreateInput{
		{Identifier: "", FullName: "Jane"},
		{Identifier: "123", FullName: ""},
		{Identifier: "123", FullName: "Jane", AvailableAmount: -1},
	}
	for _, in := range cases {
		if _, err := svc.Register(context.Background(), in); !errors.Is(err, clientdomain.ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestRegisterClientDuplicate(t *testing.T) {
	repo := &clientRepoMock{byIdentifier: map[string]*clientdomain.Entity{}}
	svc := clientdomain.NewService(repo)

	in := clientdomain.CreateInput{Identifier: "123", FullName: "Jane", AvailableAmount: 500}
	if _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Register(context.Background(), in); !errors.Is(err, clientdomain.ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
}

func TestGetClientUnknown(t *testing.T) {
	repo := &clientRepoMock{byIdentifier: map[string]*clientdomain.Entity{}}
	svc := clientdomain.NewService(repo)

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, clientdomain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
