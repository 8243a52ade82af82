package client

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid client input")
	ErrNotFound     = errors.New("client not found")
	ErrExists       = errors.New("client already exists")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Register(ctx context.Context, in CreateInput) (*Entity, error) {
	in.Identifier = strings.TrimSpace(in.Identifier)
	in.FullName = strings.TrimSpace(in.FullName)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)

	if in.Identifier == "" || in.FullName == "" {
		return nil, ErrInvalidInput
	}
	if in.AvailableAmount < 0 {
		return nil, ErrInvalidInput
	}
	return s.repo.Create(ctx, in)
}

func (s *Service) Get(ctx context.Context, identifier string) (*Entity, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrNotFound
	}
	return s.repo.GetByIdentifier(ctx, identifier)
}
