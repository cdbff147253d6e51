package screens

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"churchconnect/internal/collection"
	"churchconnect/internal/dto"
	"churchconnect/internal/export"
	"churchconnect/internal/models"
	"churchconnect/internal/services"
	"churchconnect/internal/view"
)

var ErrJobNotFound = errors.New("bulk email job not found")

// memberRemote persists member forms through the members API.
type memberRemote struct {
	directory services.MemberDirectoryInterface
}

func (r memberRemote) Create(ctx context.Context, m models.Member) (models.Member, error) {
	return r.directory.CreateMember(ctx, m)
}

func (r memberRemote) Update(ctx context.Context, id int64, m models.Member) (models.Member, error) {
	return r.directory.UpdateMember(ctx, id, m)
}

// MembersScreen is the member directory. Adds and edits go through the
// members API; deletes are local.
type MembersScreen struct {
	*Binder[models.Member]

	directory services.MemberDirectoryInterface
	bulk      services.BulkEmailServiceInterface
	logger    *slog.Logger

	mu         sync.Mutex
	categories models.WorkerCategories
	jobs       map[uuid.UUID]struct{}
}

var _ Controller = (*MembersScreen)(nil)

func NewMembersScreen(ctx context.Context, deps Dependencies, theme models.Theme) *MembersScreen {
	s := &MembersScreen{
		directory:  deps.Directory,
		bulk:       deps.BulkEmail,
		logger:     deps.logger(),
		categories: models.DefaultWorkerCategories(),
		jobs:       make(map[uuid.UUID]struct{}),
	}

	def := Definition[models.Member]{
		Name:     ScreenMembers,
		Schema:   view.MemberSchema(),
		PageSize: deps.Config.MembersPageSize,
		Loader:   collection.LoaderFunc[models.Member](s.load),
		Validate: models.Member.Validate,
		Decode: func(body []byte) (models.Member, error) {
			return decodeRequest(body, func(r dto.MemberRequest) models.Member {
				return r.ToModel(deps.now())
			})
		},
		Patch: func(current models.Member, body []byte) (models.Member, error) {
			return decodePatch(current, body, dto.MemberPatch.Apply)
		},
		Export: export.Members(),
		Aggregate: func(_, visible []models.Member, c view.Criteria) any {
			category, _ := c.Active(view.KeyWorkerCategory)
			return view.AggregateMembers(visible, category)
		},
		Options: func([]models.Member) view.Options {
			return view.MemberOptions(s.Categories())
		},
	}
	if deps.Directory != nil {
		def.Remote = memberRemote{directory: deps.Directory}
	}

	s.Binder = NewBinder(ctx, def, deps.binderOptions(theme))
	return s
}

// load fetches members, then the worker categories. A category failure
// keeps the defaults and does not fail the screen.
func (s *MembersScreen) load(ctx context.Context) ([]models.Member, error) {
	if s.directory == nil {
		return nil, errors.New("members API is not configured")
	}

	members, err := s.directory.ListMembers(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.directory.WorkerCategories(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "worker categories unavailable, using defaults", "error", err)
		return members, nil
	}
	if len(categories) > 0 {
		s.mu.Lock()
		s.categories = categories
		s.mu.Unlock()
	}
	return members, nil
}

func (s *MembersScreen) Categories() models.WorkerCategories {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(models.WorkerCategories, len(s.categories))
	for k, v := range s.categories {
		out[k] = v
	}
	return out
}

// SendBulkEmail starts an asynchronous send to the chosen audience. The
// job is abandoned if the screen unmounts before delivery starts.
func (s *MembersScreen) SendBulkEmail(ctx context.Context, req models.BulkEmailRequest) (models.BulkEmailJob, error) {
	if s.bulk == nil {
		return models.BulkEmailJob{}, ErrUnsupported
	}
	if s.Unmounted() {
		return models.BulkEmailJob{}, ErrUnmounted
	}
	if err := req.Validate(); err != nil {
		return models.BulkEmailJob{}, err
	}

	job, err := s.bulk.Start(s.Context(), req, s.Recipients(req))
	if err != nil {
		return models.BulkEmailJob{}, fmt.Errorf("start bulk email: %w", err)
	}

	s.mu.Lock()
	s.jobs[job.ID] = struct{}{}
	s.mu.Unlock()
	return job, nil
}

// BulkEmailJob reports a job started from this screen.
func (s *MembersScreen) BulkEmailJob(id uuid.UUID) (models.BulkEmailJob, error) {
	s.mu.Lock()
	_, ours := s.jobs[id]
	s.mu.Unlock()

	if !ours || s.bulk == nil {
		return models.BulkEmailJob{}, ErrJobNotFound
	}
	job, ok := s.bulk.Job(id)
	if !ok {
		return models.BulkEmailJob{}, ErrJobNotFound
	}
	return job, nil
}

// Recipients resolves the distinct addresses of an audience. The category
// audience draws from the whole collection, not the filtered view.
func (s *MembersScreen) Recipients(req models.BulkEmailRequest) []string {
	all, _ := s.Store().Snapshot()

	include := func(m models.Member) bool {
		return view.Unconstrained(req.Category) || m.WorkerCategory == req.Category
	}
	if req.Audience == models.AudienceSelected {
		selected := make(map[int64]struct{})
		for _, id := range s.Selected() {
			selected[id] = struct{}{}
		}
		include = func(m models.Member) bool {
			_, ok := selected[m.ID]
			return ok
		}
	}

	seen := make(map[string]struct{})
	recipients := []string{}
	for _, m := range all {
		if m.Email == "" || !include(m) {
			continue
		}
		if _, dup := seen[m.Email]; dup {
			continue
		}
		seen[m.Email] = struct{}{}
		recipients = append(recipients, m.Email)
	}
	return recipients
}
