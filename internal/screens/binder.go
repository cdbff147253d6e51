// Package screens binds user interactions on a dashboard screen to its
// collection and derives the view the client renders.
package screens

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"churchconnect/internal/collection"
	"churchconnect/internal/debounce"
	"churchconnect/internal/export"
	"churchconnect/internal/models"
	"churchconnect/internal/services"
	"churchconnect/internal/view"
)

var (
	ErrUnmounted   = errors.New("screen is unmounted")
	ErrLoading     = errors.New("collection is still loading")
	ErrUnsupported = errors.New("operation not supported on this screen")
)

type LoadState string

const (
	LoadLoading LoadState = "loading"
	LoadReady   LoadState = "ready"
	LoadFailed  LoadState = "failed"
)

// Remote persists adds and edits through a collaborator before the store
// is changed. The collaborator's answer is what gets stored.
type Remote[T any] interface {
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id int64, entity T) (T, error)
}

// Definition describes one screen: where its collection comes from and how
// it is filtered, aggregated, edited and exported.
type Definition[T collection.Entity[T]] struct {
	Name      string
	Schema    view.Schema[T]
	PageSize  int
	Loader    collection.Loader[T]
	Remote    Remote[T]
	Validate  func(T) error
	Decode    func(body []byte) (T, error)
	Patch     func(current T, body []byte) (T, error)
	Export    export.Table[T]
	Aggregate func(all, visible []T, c view.Criteria) any
	Options   func(all []T) view.Options
}

type BinderOptions struct {
	Theme    models.Theme
	Debounce time.Duration
	Metrics  services.MetricsRecorderInterface
	Logger   services.ScreenLoggerInterface
}

// View is the derived projection of one screen.
type View[T any] struct {
	Screen          string        `json:"screen"`
	Theme           models.Theme  `json:"theme"`
	LoadState       LoadState     `json:"load_state"`
	LoadError       string        `json:"load_error,omitempty"`
	SearchInput     string        `json:"search_input"`
	SearchPending   bool          `json:"search_pending"`
	Criteria        view.Criteria `json:"criteria"`
	Sort            view.Sort     `json:"sort"`
	Items           []T           `json:"items"`
	Pagination      view.PageInfo `json:"pagination"`
	Selected        []int64       `json:"selected"`
	AllSelected     bool          `json:"all_selected"`
	Aggregates      any           `json:"aggregates,omitempty"`
	Options         view.Options  `json:"options,omitempty"`
	CollectionCount int           `json:"collection_count"`
	Version         uint64        `json:"version"`
}

// Binder holds the interaction state of one mounted screen. The search
// input changes immediately; the effective search criterion follows after
// the debounce delay.
type Binder[T collection.Entity[T]] struct {
	def     Definition[T]
	store   *collection.Store[T]
	search  *debounce.Debouncer
	theme   models.Theme
	metrics services.MetricsRecorderInterface
	logger  services.ScreenLoggerInterface

	ctx    context.Context
	cancel context.CancelFunc
	loaded chan struct{}

	// editMu orders edits; it is never taken while holding mu.
	editMu sync.Mutex

	mu          sync.Mutex
	searchInput string
	searchSeq   uint64
	criteria    view.Criteria
	sort        view.Sort
	page        int
	selection   map[int64]struct{}
	loadState   LoadState
	loadErr     error
	unmounted   bool
}

// NewBinder creates an unmounted binder. parent supplies request-scoped
// values only; the binder's lifetime ends with Unmount.
func NewBinder[T collection.Entity[T]](parent context.Context, def Definition[T], opts BinderOptions) *Binder[T] {
	if def.PageSize < 1 {
		def.PageSize = 10
	}
	ctx, cancel := context.WithCancel(context.WithoutCancel(parent))

	return &Binder[T]{
		def:       def,
		store:     collection.NewStore[T](def.Name, def.Loader),
		search:    debounce.New(opts.Debounce),
		theme:     opts.Theme,
		metrics:   opts.Metrics,
		logger:    opts.Logger,
		ctx:       ctx,
		cancel:    cancel,
		loaded:    make(chan struct{}),
		criteria:  view.NewCriteria(),
		page:      1,
		selection: make(map[int64]struct{}),
		loadState: LoadLoading,
	}
}

func (b *Binder[T]) Screen() string {
	return b.def.Name
}

// Context is cancelled when the screen unmounts.
func (b *Binder[T]) Context() context.Context {
	return b.ctx
}

func (b *Binder[T]) Store() *collection.Store[T] {
	return b.store
}

// Mount starts the initial fetch in the background.
func (b *Binder[T]) Mount() {
	go func() {
		defer close(b.loaded)
		_ = b.load(b.ctx, LoadLoading, nil)
	}()
}

// WaitLoaded blocks until the initial fetch has finished or ctx is done.
func (b *Binder[T]) WaitLoaded(ctx context.Context) error {
	select {
	case <-b.loaded:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reload retries the fetch. It is abandoned when either ctx or the screen
// ends; an abandoned reload leaves the previous load state in place.
func (b *Binder[T]) Reload(ctx context.Context) error {
	b.mu.Lock()
	if b.unmounted {
		b.mu.Unlock()
		return ErrUnmounted
	}
	prevState, prevErr := b.loadState, b.loadErr
	b.loadState = LoadLoading
	b.loadErr = nil
	b.mu.Unlock()

	loadCtx, cancel := context.WithCancel(b.ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	return b.load(loadCtx, prevState, prevErr)
}

// load runs one fetch. If the fetch is abandoned while the screen is still
// mounted, the state goes back to prevState and prevErr.
func (b *Binder[T]) load(ctx context.Context, prevState LoadState, prevErr error) error {
	start := time.Now()
	err := b.store.Load(ctx)
	elapsed := time.Since(start)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted || errors.Is(err, collection.ErrClosed) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		b.loadState = prevState
		b.loadErr = prevErr
		return err
	}

	status := "success"
	if err != nil {
		status = "failed"
		b.loadState = LoadFailed
		b.loadErr = err
		if b.logger != nil {
			b.logger.LogCollectionLoadFailed(ctx, b.def.Name, err.Error(), elapsed)
		}
	} else {
		b.loadState = LoadReady
		b.loadErr = nil
		b.pruneSelectionLocked()
		if b.logger != nil {
			b.logger.LogCollectionLoaded(ctx, b.def.Name, b.store.Len(), elapsed)
		}
	}

	if b.metrics != nil {
		b.metrics.IncrementCounter("collection_load", map[string]string{"screen": b.def.Name, "status": status})
		b.metrics.RecordProcessingTime("collection_load", elapsed)
	}
	return err
}

// Unmount cancels pending work and disposes the store. It is idempotent.
func (b *Binder[T]) Unmount() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return
	}
	b.unmounted = true
	b.cancel()
	b.search.Stop()
	b.store.Close()
}

func (b *Binder[T]) Unmounted() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.unmounted
}

func (b *Binder[T]) LoadState() (LoadState, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loadState, b.loadErr
}

// SetSearch records the visible input and schedules the effective search.
func (b *Binder[T]) SetSearch(text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return ErrUnmounted
	}
	b.searchInput = text
	b.searchSeq++
	seq := b.searchSeq
	b.search.Trigger(func() { b.applySearch(seq) })
	b.record("set_search", nil)
	return nil
}

// FlushSearch applies the pending search input without waiting.
func (b *Binder[T]) FlushSearch() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return ErrUnmounted
	}
	b.search.Cancel()
	b.applySearchLocked()
	return nil
}

func (b *Binder[T]) applySearch(seq uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted || seq != b.searchSeq {
		return
	}
	b.applySearchLocked()
}

func (b *Binder[T]) applySearchLocked() {
	if b.criteria.Search == b.searchInput {
		return
	}
	next := b.criteria.Clone()
	next.Search = b.searchInput
	b.setCriteriaLocked(next)
}

// setCriteriaLocked installs c and returns to the first page when the
// effective constraints changed.
func (b *Binder[T]) setCriteriaLocked(c view.Criteria) {
	changed := !b.criteria.Equal(c)
	b.criteria = c
	if changed {
		b.page = 1
	}
}

// SetFilter validates and applies one filter. "" and "all" lift the constraint.
func (b *Binder[T]) SetFilter(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return ErrUnmounted
	}
	if err := b.def.Schema.ValidateFilter(key, value); err != nil {
		b.record("set_filter", err)
		return err
	}
	b.setCriteriaLocked(b.criteria.With(key, value))
	b.record("set_filter", nil)
	return nil
}

// ClearFilters drops every filter and the search, including pending input.
func (b *Binder[T]) ClearFilters() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return ErrUnmounted
	}
	b.search.Cancel()
	b.searchSeq++
	b.searchInput = ""
	b.criteria = view.NewCriteria()
	b.page = 1
	b.record("clear_filters", nil)
	return nil
}

func (b *Binder[T]) SetSort(key, direction string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return ErrUnmounted
	}
	s, err := view.NormalizeSort(b.def.Schema, key, direction)
	if err != nil {
		return models.NewFieldError("sort", err.Error())
	}
	if s != b.sort {
		b.page = 1
	}
	b.sort = s
	return nil
}

// GotoPage moves to page n clamped to the pages of the filtered view and
// returns the page actually shown.
func (b *Binder[T]) GotoPage(n int) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return 0, ErrUnmounted
	}
	visible, _, err := b.visibleLocked()
	if err != nil {
		return 0, err
	}
	b.page = view.ClampPage(n, view.TotalPages(len(visible), b.def.PageSize))
	return b.page, nil
}

func (b *Binder[T]) NextPage() (int, error) {
	b.mu.Lock()
	page := b.page
	b.mu.Unlock()
	return b.GotoPage(page + 1)
}

func (b *Binder[T]) PrevPage() (int, error) {
	b.mu.Lock()
	page := b.page
	b.mu.Unlock()
	return b.GotoPage(page - 1)
}

// SelectEntity adds or removes one id from the selection.
func (b *Binder[T]) SelectEntity(id int64, selected bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return ErrUnmounted
	}
	if !selected {
		delete(b.selection, id)
		return nil
	}
	if _, ok := b.store.Get(id); !ok {
		return fmt.Errorf("select %s %d: %w", b.def.Name, id, collection.ErrNotFound)
	}
	b.selection[id] = struct{}{}
	return nil
}

// SelectAll selects exactly the entities of the filtered view, or clears
// the selection. It returns the selection size.
func (b *Binder[T]) SelectAll(selected bool) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return 0, ErrUnmounted
	}
	b.selection = make(map[int64]struct{})
	if !selected {
		return 0, nil
	}

	visible, _, err := b.visibleLocked()
	if err != nil {
		return 0, err
	}
	for _, item := range visible {
		b.selection[item.EntityID()] = struct{}{}
	}
	return len(b.selection), nil
}

func (b *Binder[T]) Selected() []int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedLocked()
}

func (b *Binder[T]) selectedLocked() []int64 {
	ids := slices.Collect(maps.Keys(b.selection))
	slices.Sort(ids)
	return ids
}

func (b *Binder[T]) pruneSelectionLocked() {
	for id := range b.selection {
		if _, ok := b.store.Get(id); !ok {
			delete(b.selection, id)
		}
	}
}

// mutable reports whether the collection may be changed right now.
func (b *Binder[T]) mutable() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch {
	case b.unmounted:
		return ErrUnmounted
	case b.loadState == LoadLoading:
		return ErrLoading
	default:
		return nil
	}
}

// AddEntity validates entity, persists it remotely when the screen has a
// collaborator, and appends it to the collection.
func (b *Binder[T]) AddEntity(ctx context.Context, entity T) (T, error) {
	var zero T
	if err := b.mutable(); err != nil {
		return zero, err
	}
	if b.def.Validate != nil {
		if err := b.def.Validate(entity); err != nil {
			b.rejected(ctx, "add", err)
			return zero, err
		}
	}

	if b.def.Remote != nil {
		created, err := b.def.Remote.Create(ctx, entity)
		if err != nil {
			b.record("add", err)
			return zero, fmt.Errorf("create %s: %w", b.def.Name, err)
		}
		entity = created
	}

	added, err := b.store.Add(entity)
	if err != nil {
		return zero, b.storeErr(err)
	}
	b.record("add", nil)
	if b.logger != nil {
		b.logger.LogEntityMutated(ctx, b.def.Name, "added", added.EntityID())
	}
	return added, nil
}

// EditEntity shallow-merges a change into the entity with id. A missing id
// is reported as collection.ErrNotFound and nothing changes. Edits are
// serialized so each patch is applied to the latest stored value.
func (b *Binder[T]) EditEntity(ctx context.Context, id int64, patch func(current T) (T, error)) (T, error) {
	var zero T
	if err := b.mutable(); err != nil {
		return zero, err
	}

	b.editMu.Lock()
	defer b.editMu.Unlock()

	current, ok := b.store.Get(id)
	if !ok {
		err := fmt.Errorf("edit %s %d: %w", b.def.Name, id, collection.ErrNotFound)
		b.record("edit", err)
		return zero, err
	}

	next, err := patch(current)
	if err != nil {
		b.record("edit", err)
		return zero, err
	}
	next = next.WithEntityID(id)

	if b.def.Validate != nil {
		if err := b.def.Validate(next); err != nil {
			b.rejected(ctx, "edit", err)
			return zero, err
		}
	}

	if b.def.Remote != nil {
		stored, err := b.def.Remote.Update(ctx, id, next)
		if err != nil {
			b.record("edit", err)
			return zero, fmt.Errorf("update %s %d: %w", b.def.Name, id, err)
		}
		next = stored
	}

	updated, err := b.store.Update(id, func(T) T { return next })
	if err != nil {
		return zero, b.storeErr(err)
	}
	b.record("edit", nil)
	if b.logger != nil {
		b.logger.LogEntityMutated(ctx, b.def.Name, "updated", id)
	}
	return updated, nil
}

// DeleteEntity removes the entity locally and drops it from the selection.
func (b *Binder[T]) DeleteEntity(ctx context.Context, id int64) error {
	if err := b.mutable(); err != nil {
		return err
	}

	if _, err := b.store.Remove(id); err != nil {
		b.record("delete", err)
		return b.storeErr(err)
	}

	b.mu.Lock()
	delete(b.selection, id)
	b.mu.Unlock()

	b.record("delete", nil)
	if b.logger != nil {
		b.logger.LogEntityMutated(ctx, b.def.Name, "deleted", id)
	}
	return nil
}

func (b *Binder[T]) storeErr(err error) error {
	if errors.Is(err, collection.ErrClosed) {
		return ErrUnmounted
	}
	return err
}

// visibleLocked filters and orders the current snapshot.
func (b *Binder[T]) visibleLocked() ([]T, []T, error) {
	all, _ := b.store.Snapshot()
	filtered, err := view.Apply(all, b.def.Schema, b.criteria)
	if err != nil {
		return nil, all, err
	}
	return view.Ordered(filtered, b.def.Schema, b.sort), all, nil
}

// Visible returns the whole filtered and ordered view, not only one page.
func (b *Binder[T]) Visible() ([]T, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return nil, ErrUnmounted
	}
	visible, _, err := b.visibleLocked()
	return visible, err
}

// View derives the current page, aggregates and selection state.
func (b *Binder[T]) View() (View[T], error) {
	start := time.Now()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.unmounted {
		return View[T]{}, ErrUnmounted
	}

	all, version := b.store.Snapshot()
	filtered, err := view.Apply(all, b.def.Schema, b.criteria)
	if err != nil {
		return View[T]{}, err
	}
	visible := view.Ordered(filtered, b.def.Schema, b.sort)

	items, info := view.Paginate(visible, b.page, b.def.PageSize)
	b.page = info.Page

	out := View[T]{
		Screen:          b.def.Name,
		Theme:           b.theme,
		LoadState:       b.loadState,
		SearchInput:     b.searchInput,
		SearchPending:   b.searchInput != b.criteria.Search,
		Criteria:        b.criteria.Clone(),
		Sort:            b.sort,
		Items:           items,
		Pagination:      info,
		Selected:        b.selectedLocked(),
		AllSelected:     allSelected(visible, b.selection),
		CollectionCount: len(all),
		Version:         version,
	}
	if b.loadErr != nil {
		out.LoadError = b.loadErr.Error()
	}
	if b.def.Aggregate != nil {
		out.Aggregates = b.def.Aggregate(all, visible, b.criteria)
	}
	if b.def.Options != nil {
		out.Options = b.def.Options(all)
	}

	if b.metrics != nil {
		b.metrics.RecordProcessingTime("derived_view", time.Since(start))
	}
	return out, nil
}

func allSelected[T collection.Entity[T]](visible []T, selection map[int64]struct{}) bool {
	if len(visible) == 0 {
		return false
	}
	for _, item := range visible {
		if _, ok := selection[item.EntityID()]; !ok {
			return false
		}
	}
	return true
}

// ExportVisible renders the whole filtered view as CSV.
func (b *Binder[T]) ExportVisible(ctx context.Context, now time.Time) (export.File, error) {
	visible, err := b.Visible()
	if err != nil {
		return export.File{}, err
	}

	file, err := b.def.Export.Render(visible, now)
	if err != nil {
		return export.File{}, err
	}

	if b.logger != nil {
		b.logger.LogExport(ctx, b.def.Name, file.Name, file.Rows)
	}
	if b.metrics != nil {
		b.metrics.IncrementCounter("csv_export", map[string]string{"screen": b.def.Name})
		b.metrics.RecordGauge("csv_export_rows", float64(file.Rows), nil)
	}
	return file, nil
}

func (b *Binder[T]) record(operation string, err error) {
	if b.metrics == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "failed"
	}
	b.metrics.IncrementCounter("screen_operation", map[string]string{
		"screen":    b.def.Name,
		"operation": operation,
		"status":    status,
	})
}

func (b *Binder[T]) rejected(ctx context.Context, operation string, err error) {
	b.record(operation, err)
	if b.logger != nil {
		b.logger.LogValidationFailure(ctx, b.def.Name+"."+operation, err.Error())
	}
}
