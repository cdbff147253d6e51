package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"churchconnect/internal/models"
)

// MemberDirectoryInterface is the members REST API the dashboard consumes
type MemberDirectoryInterface interface {
	ListMembers(ctx context.Context) ([]models.Member, error)
	WorkerCategories(ctx context.Context) (models.WorkerCategories, error)
	CreateMember(ctx context.Context, member models.Member) (models.Member, error)
	UpdateMember(ctx context.Context, id int64, member models.Member) (models.Member, error)
}

// SeedCatalogInterface provides the initial collections that have no REST source
type SeedCatalogInterface interface {
	Events(ctx context.Context) ([]models.Event, error)
	Transactions(ctx context.Context) ([]models.Transaction, error)
	Attendees(ctx context.Context) ([]models.Attendee, error)
}

// SeedGeneratorInterface fabricates additional demo rows
type SeedGeneratorInterface interface {
	GenerateEvents(count int, from time.Time) []models.Event
	GenerateTransactions(count int, from time.Time) []models.Transaction
	GenerateAttendees(count int, from time.Time) []models.Attendee
}

// EmailSenderInterface delivers email through a provider
type EmailSenderInterface interface {
	Send(ctx context.Context, req SendRequest) (SendResult, error)
	SendBatch(ctx context.Context, reqs []SendRequest) ([]SendResult, error)
}

// BulkEmailServiceInterface runs asynchronous bulk sends and tracks their jobs
type BulkEmailServiceInterface interface {
	Start(ctx context.Context, req models.BulkEmailRequest, recipients []string) (models.BulkEmailJob, error)
	Job(id uuid.UUID) (models.BulkEmailJob, bool)
	Wait()
}

// SettingsServiceInterface holds the in-memory dashboard settings
type SettingsServiceInterface interface {
	Get() models.Settings
	Theme() models.Theme
	Update(ctx context.Context, apply func(models.Settings) models.Settings) (models.Settings, error)
	Flush()
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() CircuitState
	Reset()
	GetFailureCount() int
}

// ScreenLoggerInterface writes structured logs for screen session activity
type ScreenLoggerInterface interface {
	LogSessionMounted(ctx context.Context, sessionID uuid.UUID, screen string)
	LogSessionUnmounted(ctx context.Context, sessionID uuid.UUID, screen, reason string)
	LogCollectionLoaded(ctx context.Context, screen string, count int, duration time.Duration)
	LogCollectionLoadFailed(ctx context.Context, screen string, errorMsg string, duration time.Duration)
	LogEntityMutated(ctx context.Context, screen, operation string, entityID int64)
	LogExport(ctx context.Context, screen, fileName string, rows int)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
