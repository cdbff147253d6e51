package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"churchconnect/internal/debounce"
	"churchconnect/internal/models"
)

// SettingsService keeps the dashboard settings in memory and auto-saves
// changes once edits pause.
type SettingsService struct {
	mu       sync.RWMutex
	current  models.Settings
	saved    models.Settings
	autosave *debounce.Debouncer
	logger   *slog.Logger
}

func NewSettingsService(initial models.Settings, autosaveDelay time.Duration, logger *slog.Logger) *SettingsService {
	return &SettingsService{
		current:  initial,
		saved:    initial,
		autosave: debounce.New(autosaveDelay),
		logger:   logger,
	}
}

func (s *SettingsService) Get() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Theme is the descriptor injected into screens at mount.
func (s *SettingsService) Theme() models.Theme {
	return s.Get().ThemeDescriptor()
}

// Update applies a change, validates the result and schedules an autosave.
// An invalid result leaves the settings untouched.
func (s *SettingsService) Update(ctx context.Context, apply func(models.Settings) models.Settings) (models.Settings, error) {
	s.mu.Lock()
	next := apply(s.current)
	if err := next.Validate(); err != nil {
		s.mu.Unlock()
		return s.Get(), err
	}
	s.current = next
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "settings changed", "theme", next.Theme)
	s.autosave.Trigger(s.save)
	return next, nil
}

func (s *SettingsService) save() {
	s.mu.Lock()
	if s.saved == s.current {
		s.mu.Unlock()
		return
	}
	s.saved = s.current
	saved := s.saved
	s.mu.Unlock()

	s.logger.Info("settings auto-saved",
		slog.String("theme", saved.Theme),
		slog.String("language", saved.Language),
		slog.String("timezone", saved.Timezone),
		slog.Bool("auto_backup", saved.AutoBackup),
		slog.String("backup_frequency", saved.BackupFrequency),
	)
}

// Saved returns the last auto-saved settings.
func (s *SettingsService) Saved() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.saved
}

// Flush saves a pending change immediately.
func (s *SettingsService) Flush() {
	s.autosave.Flush()
}
