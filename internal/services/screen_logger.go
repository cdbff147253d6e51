package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// ScreenLogger provides structured logging for screen session activity
type ScreenLogger struct {
	logger *slog.Logger
}

// NewScreenLogger creates a new screen logger
func NewScreenLogger(logger *slog.Logger) *ScreenLogger {
	return &ScreenLogger{
		logger: logger,
	}
}

// LogSessionMounted logs a screen being mounted
func (sl *ScreenLogger) LogSessionMounted(ctx context.Context, sessionID uuid.UUID, screen string) {
	sl.logger.InfoContext(ctx, "screen mounted",
		slog.String("event_type", "screen_mounted"),
		slog.String("session_id", sessionID.String()),
		slog.String("screen", screen),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogSessionUnmounted logs a screen being unmounted, by request or after idling
func (sl *ScreenLogger) LogSessionUnmounted(ctx context.Context, sessionID uuid.UUID, screen, reason string) {
	sl.logger.InfoContext(ctx, "screen unmounted",
		slog.String("event_type", "screen_unmounted"),
		slog.String("session_id", sessionID.String()),
		slog.String("screen", screen),
		slog.String("reason", reason),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *ScreenLogger) LogCollectionLoaded(ctx context.Context, screen string, count int, duration time.Duration) {
	sl.logger.InfoContext(ctx, "collection loaded",
		slog.String("event_type", "collection_loaded"),
		slog.String("screen", screen),
		slog.Int("count", count),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
}

// LogCollectionLoadFailed logs a failed initial fetch; the collection stays empty
func (sl *ScreenLogger) LogCollectionLoadFailed(ctx context.Context, screen string, errorMsg string, duration time.Duration) {
	sl.logger.WarnContext(ctx, "collection load failed",
		slog.String("event_type", "collection_load_failed"),
		slog.String("screen", screen),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", duration.Milliseconds()),
	)
}

func (sl *ScreenLogger) LogEntityMutated(ctx context.Context, screen, operation string, entityID int64) {
	sl.logger.InfoContext(ctx, "entity "+operation,
		slog.String("event_type", "entity_"+operation),
		slog.String("screen", screen),
		slog.Int64("entity_id", entityID),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

func (sl *ScreenLogger) LogExport(ctx context.Context, screen, fileName string, rows int) {
	sl.logger.InfoContext(ctx, "view exported",
		slog.String("event_type", "view_exported"),
		slog.String("screen", screen),
		slog.String("file_name", fileName),
		slog.Int("rows", rows),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (sl *ScreenLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	sl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.String("trace_id", getTraceID(ctx)),
	)
}

type traceIDKey struct{}

// WithTraceID stores the request trace id for the loggers.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

func getTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDKey{}).(string); ok {
		return traceID
	}
	return ""
}
