package client

import (
	"context"
	"time"
)

type Entity struct {
	Identifier      string    `json:"identifier"`
	FullName        string    `json:"full_name"`
	PhoneNumber     string    `json:"phone_number"`
	AvailableAmount int64     `json:"available_amount"`
	CreatedAt       time.Time `json:"created_at"`
}

type CreateInput struct {
	Identifier      string
	FullName        string
	PhoneNumber     string
	AvailableAmount int64
}

type Repository interface {
	Create(ctx context.Context, in CreateInput) (*Entity, error)
	GetByIdentifier(ctx context.Context, identifier string) (*Entity, error)
}
