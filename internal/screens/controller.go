package screens

import (
	"context"
	"time"

	"churchconnect/internal/export"
)

// Controller is the screen-agnostic surface the HTTP layer drives.
type Controller interface {
	Screen() string
	Mount()
	WaitLoaded(ctx context.Context) error
	Unmount()
	Reload(ctx context.Context) error
	Snapshot() (any, error)

	SetSearch(text string) error
	FlushSearch() error
	SetFilter(key, value string) error
	ClearFilters() error
	SetSort(key, direction string) error
	GotoPage(n int) (int, error)

	SelectEntity(id int64, selected bool) error
	SelectAll(selected bool) (int, error)
	Selected() []int64

	AddJSON(ctx context.Context, body []byte) (any, error)
	EditJSON(ctx context.Context, id int64, body []byte) (any, error)
	DeleteEntity(ctx context.Context, id int64) error
	ExportVisible(ctx context.Context, now time.Time) (export.File, error)
}

// Snapshot returns the View as an untyped value for encoding.
func (b *Binder[T]) Snapshot() (any, error) {
	v, err := b.View()
	if err != nil {
		return nil, err
	}
	return v, nil
}

// AddJSON decodes a form body and adds the entity it describes.
func (b *Binder[T]) AddJSON(ctx context.Context, body []byte) (any, error) {
	if b.def.Decode == nil {
		return nil, ErrUnsupported
	}
	entity, err := b.def.Decode(body)
	if err != nil {
		b.record("add", err)
		return nil, err
	}
	added, err := b.AddEntity(ctx, entity)
	if err != nil {
		return nil, err
	}
	return added, nil
}

// EditJSON merges a partial form body into the entity with id.
func (b *Binder[T]) EditJSON(ctx context.Context, id int64, body []byte) (any, error) {
	if b.def.Patch == nil {
		return nil, ErrUnsupported
	}
	updated, err := b.EditEntity(ctx, id, func(current T) (T, error) {
		return b.def.Patch(current, body)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
