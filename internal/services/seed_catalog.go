package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"churchconnect/internal/models"
	"churchconnect/internal/repositories"
)

// SeedCatalog serves the collections that have no REST source. With
// repositories configured it reads the seed tables; otherwise it serves the
// built-in rows extended by generated ones.
type SeedCatalog struct {
	events       repositories.EventRepositoryInterface
	transactions repositories.TransactionRepositoryInterface
	generator    SeedGeneratorInterface
	generated    int
	now          time.Time
	logger       *slog.Logger

	once             sync.Once
	seedEvents       []models.Event
	seedTransactions []models.Transaction
	seedAttendees    []models.Attendee
}

type SeedCatalogOption func(*SeedCatalog)

// WithSeedRepositories reads events and transactions from the database.
func WithSeedRepositories(events repositories.EventRepositoryInterface, transactions repositories.TransactionRepositoryInterface) SeedCatalogOption {
	return func(c *SeedCatalog) {
		c.events = events
		c.transactions = transactions
	}
}

// WithGeneratedRows appends count generated rows to each built-in seed.
func WithGeneratedRows(generator SeedGeneratorInterface, count int) SeedCatalogOption {
	return func(c *SeedCatalog) {
		c.generator = generator
		c.generated = count
	}
}

func NewSeedCatalog(logger *slog.Logger, opts ...SeedCatalogOption) *SeedCatalog {
	c := &SeedCatalog{
		now:    time.Now().UTC(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *SeedCatalog) builtin() {
	c.once.Do(func() {
		c.seedEvents = DefaultEvents()
		c.seedTransactions = DefaultTransactions()
		c.seedAttendees = DefaultAttendees()

		if c.generator == nil || c.generated <= 0 {
			return
		}
		c.seedEvents = append(c.seedEvents, c.generator.GenerateEvents(c.generated, c.now)...)
		c.seedTransactions = append(c.seedTransactions, c.generator.GenerateTransactions(c.generated, c.now)...)
		c.seedAttendees = append(c.seedAttendees, c.generator.GenerateAttendees(c.generated, c.now)...)
		c.logger.Info("generated seed rows", "per_collection", c.generated)
	})
}

// Events returns a fresh copy on every call so sessions never share a slice.
func (c *SeedCatalog) Events(ctx context.Context) ([]models.Event, error) {
	if c.events != nil {
		return c.events.List(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.builtin()
	return append([]models.Event(nil), c.seedEvents...), nil
}

func (c *SeedCatalog) Transactions(ctx context.Context) ([]models.Transaction, error) {
	if c.transactions != nil {
		return c.transactions.List(ctx)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.builtin()
	return append([]models.Transaction(nil), c.seedTransactions...), nil
}

func (c *SeedCatalog) Attendees(ctx context.Context) ([]models.Attendee, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.builtin()
	return append([]models.Attendee(nil), c.seedAttendees...), nil
}

// SeedDatabase fills empty seed tables with the built-in rows.
func (c *SeedCatalog) SeedDatabase(ctx context.Context) error {
	if c.events == nil || c.transactions == nil {
		return nil
	}
	c.builtin()

	events, err := c.events.SeedIfEmpty(ctx, c.seedEvents)
	if err != nil {
		return err
	}
	transactions, err := c.transactions.SeedIfEmpty(ctx, c.seedTransactions)
	if err != nil {
		return err
	}

	if events > 0 || transactions > 0 {
		c.logger.Info("seed tables populated", "events", events, "transactions", transactions)
	}
	return nil
}
