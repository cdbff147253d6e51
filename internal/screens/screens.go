package screens

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"churchconnect/internal/collection"
	"churchconnect/internal/config"
	"churchconnect/internal/dto"
	"churchconnect/internal/export"
	"churchconnect/internal/models"
	"churchconnect/internal/services"
	"churchconnect/internal/view"
)

const (
	ScreenMembers   = "members"
	ScreenEvents    = "events"
	ScreenFinance   = "finance"
	ScreenAttendees = "attendees"
)

var ErrUnknownScreen = errors.New("unknown screen")

// Dependencies are shared by every mounted screen.
type Dependencies struct {
	Directory services.MemberDirectoryInterface
	Seeds     services.SeedCatalogInterface
	BulkEmail services.BulkEmailServiceInterface
	Metrics   services.MetricsRecorderInterface
	Logger    services.ScreenLoggerInterface
	Slog      *slog.Logger
	Config    config.ScreensConfig
	Now       func() time.Time
}

func (d Dependencies) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}

func (d Dependencies) logger() *slog.Logger {
	if d.Slog != nil {
		return d.Slog
	}
	return slog.Default()
}

func (d Dependencies) binderOptions(theme models.Theme) BinderOptions {
	return BinderOptions{
		Theme:    theme,
		Debounce: d.Config.SearchDebounce,
		Metrics:  d.Metrics,
		Logger:   d.Logger,
	}
}

// Factory builds an unmounted controller for one screen.
type Factory func(ctx context.Context, deps Dependencies, theme models.Theme) Controller

// DefaultFactories returns the dashboard screens keyed by name.
func DefaultFactories() map[string]Factory {
	return map[string]Factory{
		ScreenMembers: func(ctx context.Context, deps Dependencies, theme models.Theme) Controller {
			return NewMembersScreen(ctx, deps, theme)
		},
		ScreenEvents: func(ctx context.Context, deps Dependencies, theme models.Theme) Controller {
			return NewEventsScreen(ctx, deps, theme)
		},
		ScreenFinance: func(ctx context.Context, deps Dependencies, theme models.Theme) Controller {
			return NewFinanceScreen(ctx, deps, theme)
		},
		ScreenAttendees: func(ctx context.Context, deps Dependencies, theme models.Theme) Controller {
			return NewAttendeesScreen(ctx, deps, theme)
		},
	}
}

// EventsScreen adds the month calendar to the events binder.
type EventsScreen struct {
	*Binder[models.Event]
}

func NewEventsScreen(ctx context.Context, deps Dependencies, theme models.Theme) *EventsScreen {
	def := Definition[models.Event]{
		Name:     ScreenEvents,
		Schema:   view.EventSchema(),
		PageSize: deps.Config.EventsPageSize,
		Loader:   collection.LoaderFunc[models.Event](deps.Seeds.Events),
		Validate: models.Event.Validate,
		Decode: func(body []byte) (models.Event, error) {
			return decodeRequest(body, dto.EventRequest.ToModel)
		},
		Patch: func(current models.Event, body []byte) (models.Event, error) {
			return decodePatch(current, body, dto.EventPatch.Apply)
		},
		Export: export.Events(),
		Aggregate: func(_, visible []models.Event, _ view.Criteria) any {
			return view.AggregateEvents(visible)
		},
		Options: func(all []models.Event) view.Options {
			return view.EventOptions(all)
		},
	}
	return &EventsScreen{Binder: NewBinder(ctx, def, deps.binderOptions(theme))}
}

// Calendar lays out the filtered events of one month.
func (s *EventsScreen) Calendar(month time.Time) (view.CalendarMonth, error) {
	visible, err := s.Visible()
	if err != nil {
		return view.CalendarMonth{}, err
	}
	return view.Calendar(visible, month), nil
}

func NewFinanceScreen(ctx context.Context, deps Dependencies, theme models.Theme) *Binder[models.Transaction] {
	def := Definition[models.Transaction]{
		Name:     ScreenFinance,
		Schema:   view.TransactionSchema(),
		PageSize: deps.Config.FinancePageSize,
		Loader:   collection.LoaderFunc[models.Transaction](deps.Seeds.Transactions),
		Validate: models.Transaction.Validate,
		Decode: func(body []byte) (models.Transaction, error) {
			return decodeRequest(body, dto.TransactionRequest.ToModel)
		},
		Patch: func(current models.Transaction, body []byte) (models.Transaction, error) {
			return decodePatch(current, body, dto.TransactionPatch.Apply)
		},
		Export: export.Transactions(),
		Aggregate: func(_, visible []models.Transaction, _ view.Criteria) any {
			return view.AggregateFinance(visible)
		},
		Options: func(all []models.Transaction) view.Options {
			return view.FinanceOptions(all)
		},
	}
	return NewBinder(ctx, def, deps.binderOptions(theme))
}

func NewAttendeesScreen(ctx context.Context, deps Dependencies, theme models.Theme) *Binder[models.Attendee] {
	def := Definition[models.Attendee]{
		Name:     ScreenAttendees,
		Schema:   view.AttendeeSchema(),
		PageSize: deps.Config.AttendeesPageSize,
		Loader:   collection.LoaderFunc[models.Attendee](deps.Seeds.Attendees),
		Validate: models.Attendee.Validate,
		Decode: func(body []byte) (models.Attendee, error) {
			return decodeRequest(body, func(r dto.AttendeeRequest) models.Attendee {
				return r.ToModel(deps.now())
			})
		},
		Patch: func(current models.Attendee, body []byte) (models.Attendee, error) {
			return decodePatch(current, body, dto.AttendeePatch.Apply)
		},
		Export: export.Attendees(),
		Aggregate: func(all, visible []models.Attendee, _ view.Criteria) any {
			return view.AggregateAttendees(all, len(visible))
		},
		Options: func([]models.Attendee) view.Options {
			return view.AttendeeOptions()
		},
	}
	return NewBinder(ctx, def, deps.binderOptions(theme))
}
