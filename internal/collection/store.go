package collection

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrNotFound = errors.New("entity not found")
	ErrClosed   = errors.New("collection store closed")
)

// LoadKindFetchFailed is the only load failure kind the collaborators report.
const LoadKindFetchFailed = "fetch-failed"

// LoadError reports a failed initial fetch. The collection is left empty.
type LoadError struct {
	Kind   string
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Entity is implemented by value types carrying an integer id.
type Entity[T any] interface {
	EntityID() int64
	WithEntityID(id int64) T
}

// Loader fetches or seeds the initial collection.
type Loader[T any] interface {
	Load(ctx context.Context) ([]T, error)
}

type LoaderFunc[T any] func(ctx context.Context) ([]T, error)

func (f LoaderFunc[T]) Load(ctx context.Context) ([]T, error) {
	return f(ctx)
}

// Store holds the authoritative list for one entity type. Every mutation
// swaps in a new slice so snapshots handed out earlier never change.
type Store[T Entity[T]] struct {
	mu      sync.RWMutex
	source  string
	loader  Loader[T]
	items   []T
	version uint64
	closed  bool
}

func NewStore[T Entity[T]](source string, loader Loader[T]) *Store[T] {
	return &Store[T]{
		source: source,
		loader: loader,
		items:  []T{},
	}
}

func (s *Store[T]) Source() string {
	return s.source
}

// Load replaces the collection with the loader's result. A failed fetch
// empties the collection and returns a *LoadError. If ctx is cancelled or
// the store is closed before the fetch returns, nothing is mutated.
func (s *Store[T]) Load(ctx context.Context) error {
	if s.loader == nil {
		return &LoadError{Kind: LoadKindFetchFailed, Source: s.source, Err: errors.New("no loader configured")}
	}

	items, fetchErr := s.loader.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if fetchErr != nil {
		s.items = []T{}
		s.version++
		var loadErr *LoadError
		if errors.As(fetchErr, &loadErr) {
			return fetchErr
		}
		return &LoadError{Kind: LoadKindFetchFailed, Source: s.source, Err: fetchErr}
	}

	s.items = withUniqueIDs(items)
	s.version++
	return nil
}

// withUniqueIDs keeps the first holder of each id and renumbers entities
// whose id is zero or already taken.
func withUniqueIDs[T Entity[T]](items []T) []T {
	next := int64(0)
	for _, item := range items {
		if item.EntityID() > next {
			next = item.EntityID()
		}
	}

	seen := make(map[int64]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		id := item.EntityID()
		if _, dup := seen[id]; id <= 0 || dup {
			next++
			id = next
			item = item.WithEntityID(id)
		}
		seen[id] = struct{}{}
		out = append(out, item)
	}
	return out
}

func (s *Store[T]) nextIDLocked() int64 {
	highest := int64(0)
	for _, item := range s.items {
		if item.EntityID() > highest {
			highest = item.EntityID()
		}
	}
	return highest + 1
}

func (s *Store[T]) indexLocked(id int64) int {
	return slices.IndexFunc(s.items, func(item T) bool { return item.EntityID() == id })
}

// Add appends entity. A zero or already used id is replaced with max id + 1.
func (s *Store[T]) Add(entity T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return entity, ErrClosed
	}

	if id := entity.EntityID(); id <= 0 || s.indexLocked(id) >= 0 {
		entity = entity.WithEntityID(s.nextIDLocked())
	}

	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.items = append(next, entity)
	s.version++
	return entity, nil
}

// Update replaces the entity with merge(current). The id is preserved
// whatever merge returns.
func (s *Store[T]) Update(id int64, merge func(current T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.closed {
		return zero, ErrClosed
	}

	idx := s.indexLocked(id)
	if idx < 0 {
		return zero, fmt.Errorf("update %s %d: %w", s.source, id, ErrNotFound)
	}

	updated := merge(s.items[idx]).WithEntityID(id)
	next := slices.Clone(s.items)
	next[idx] = updated
	s.items = next
	s.version++
	return updated, nil
}

// Remove deletes the entity with id and returns it.
func (s *Store[T]) Remove(id int64) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	if s.closed {
		return zero, ErrClosed
	}

	idx := s.indexLocked(id)
	if idx < 0 {
		return zero, fmt.Errorf("remove %s %d: %w", s.source, id, ErrNotFound)
	}

	removed := s.items[idx]
	next := make([]T, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	s.version++
	return removed, nil
}

func (s *Store[T]) Get(id int64) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	idx := s.indexLocked(id)
	if idx < 0 {
		return zero, false
	}
	return s.items[idx], true
}

// Snapshot returns the current items and the version they belong to. The
// slice must not be modified.
func (s *Store[T]) Snapshot() ([]T, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.items, s.version
}

func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Close disposes the store. Later loads and mutations leave it untouched.
func (s *Store[T]) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *Store[T]) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}
