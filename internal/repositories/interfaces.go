package repositories

import (
	"context"

	"churchconnect/internal/models"
)

// EventRepositoryInterface defines the contract for the events seed table
type EventRepositoryInterface interface {
	List(ctx context.Context) ([]models.Event, error)
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, events []models.Event) (int, error)
}

// TransactionRepositoryInterface defines the contract for the transactions seed table
type TransactionRepositoryInterface interface {
	List(ctx context.Context) ([]models.Transaction, error)
	Count(ctx context.Context) (int64, error)
	SeedIfEmpty(ctx context.Context, transactions []models.Transaction) (int, error)
}
