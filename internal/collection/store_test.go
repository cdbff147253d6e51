package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"churchconnect/internal/models"
)

type StoreTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func staticLoader(members ...models.Member) Loader[models.Member] {
	return LoaderFunc[models.Member](func(context.Context) ([]models.Member, error) {
		return members, nil
	})
}

func (s *StoreTestSuite) loadedStore(members ...models.Member) *Store[models.Member] {
	store := NewStore[models.Member]("members", staticLoader(members...))
	s.Require().NoError(store.Load(s.ctx))
	return store
}

func (s *StoreTestSuite) TestLoad_AssignsMissingAndDuplicateIDs() {
	store := s.loadedStore(
		models.Member{ID: 4, Name: "Ann"},
		models.Member{Name: "Ben"},
		models.Member{ID: 4, Name: "Cy"},
	)

	items, version := store.Snapshot()
	s.Equal(uint64(1), version)
	s.Require().Len(items, 3)
	s.Equal(int64(4), items[0].ID)
	s.Equal(int64(5), items[1].ID)
	s.Equal(int64(6), items[2].ID)
}

func (s *StoreTestSuite) TestLoad_FailureLeavesCollectionEmpty() {
	calls := 0
	store := NewStore[models.Member]("members", LoaderFunc[models.Member](func(context.Context) ([]models.Member, error) {
		calls++
		if calls == 1 {
			return []models.Member{{ID: 1}}, nil
		}
		return nil, errors.New("connection refused")
	}))
	s.Require().NoError(store.Load(s.ctx))
	s.Equal(1, store.Len())

	err := store.Load(s.ctx)

	var loadErr *LoadError
	s.Require().ErrorAs(err, &loadErr)
	s.Equal(LoadKindFetchFailed, loadErr.Kind)
	s.Equal("members", loadErr.Source)
	s.Contains(err.Error(), "connection refused")
	s.Equal(0, store.Len())
}

func (s *StoreTestSuite) TestLoad_KeepsLoaderLoadError() {
	upstream := &LoadError{Kind: LoadKindFetchFailed, Source: "members api", Err: errors.New("status 503")}
	store := NewStore[models.Member]("members", LoaderFunc[models.Member](func(context.Context) ([]models.Member, error) {
		return nil, upstream
	}))

	err := store.Load(s.ctx)

	s.Same(upstream, err)
	s.Equal(0, store.Len())
}

func (s *StoreTestSuite) TestLoad_WithoutLoaderFails() {
	store := NewStore[models.Member]("members", nil)

	var loadErr *LoadError
	s.ErrorAs(store.Load(s.ctx), &loadErr)
}

func (s *StoreTestSuite) TestLoad_ResolvingAfterCloseDoesNotMutate() {
	release := make(chan struct{})
	store := NewStore[models.Member]("members", LoaderFunc[models.Member](func(context.Context) ([]models.Member, error) {
		<-release
		return []models.Member{{ID: 1, Name: "Ann"}}, nil
	}))

	done := make(chan error, 1)
	go func() { done <- store.Load(s.ctx) }()

	store.Close()
	close(release)

	s.ErrorIs(<-done, ErrClosed)
	s.Equal(0, store.Len())
	s.Equal(uint64(0), store.Version())
}

func (s *StoreTestSuite) TestLoad_CancelledContextDoesNotMutate() {
	ctx, cancel := context.WithCancel(s.ctx)
	store := NewStore[models.Member]("members", LoaderFunc[models.Member](func(context.Context) ([]models.Member, error) {
		cancel()
		return []models.Member{{ID: 1}}, nil
	}))

	s.ErrorIs(store.Load(ctx), context.Canceled)
	s.Equal(0, store.Len())
}

func (s *StoreTestSuite) TestAdd() {
	testCases := []struct {
		name   string
		seed   []models.Member
		add    models.Member
		wantID int64
	}{
		{name: "empty store starts at one", add: models.Member{Name: "Ann"}, wantID: 1},
		{name: "max plus one", seed: []models.Member{{ID: 3}, {ID: 9}}, add: models.Member{Name: "Ann"}, wantID: 10},
		{name: "duplicate id is replaced", seed: []models.Member{{ID: 3}}, add: models.Member{ID: 3}, wantID: 4},
		{name: "unique id is kept", seed: []models.Member{{ID: 3}}, add: models.Member{ID: 42}, wantID: 42},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			store := s.loadedStore(tc.seed...)

			added, err := store.Add(tc.add)

			s.Require().NoError(err)
			s.Equal(tc.wantID, added.ID)
			items, _ := store.Snapshot()
			s.Equal(added, items[len(items)-1])
		})
	}
}

func (s *StoreTestSuite) TestUpdate_ShallowMergeKeepsID() {
	store := s.loadedStore(models.Member{ID: 1, Name: "Ann", Email: "ann@example.com"})

	updated, err := store.Update(1, func(m models.Member) models.Member {
		m.Name = "Annabel"
		m.ID = 99
		return m
	})

	s.Require().NoError(err)
	s.Equal(int64(1), updated.ID)
	s.Equal("Annabel", updated.Name)
	s.Equal("ann@example.com", updated.Email)

	got, ok := store.Get(1)
	s.True(ok)
	s.Equal(updated, got)
}

func (s *StoreTestSuite) TestUpdateAndRemove_MissingIDIsNotFound() {
	store := s.loadedStore(models.Member{ID: 1, Name: "Ann"})
	before := store.Version()

	_, err := store.Update(7, func(m models.Member) models.Member { return m })
	s.ErrorIs(err, ErrNotFound)

	_, err = store.Remove(7)
	s.ErrorIs(err, ErrNotFound)

	s.Equal(before, store.Version())
	s.Equal(1, store.Len())
}

func (s *StoreTestSuite) TestRemove() {
	store := s.loadedStore(models.Member{ID: 1}, models.Member{ID: 2}, models.Member{ID: 3})

	removed, err := store.Remove(2)

	s.Require().NoError(err)
	s.Equal(int64(2), removed.ID)
	items, _ := store.Snapshot()
	s.Equal([]int64{1, 3}, []int64{items[0].ID, items[1].ID})
}

func (s *StoreTestSuite) TestSnapshotsAreImmutable() {
	store := s.loadedStore(models.Member{ID: 1, Name: gofakeit.Name()})
	before, v1 := store.Snapshot()

	_, err := store.Add(models.Member{Name: gofakeit.Name()})
	s.Require().NoError(err)
	_, err = store.Update(1, func(m models.Member) models.Member {
		m.Name = "changed"
		return m
	})
	s.Require().NoError(err)

	s.Len(before, 1)
	s.NotEqual("changed", before[0].Name)
	s.Greater(store.Version(), v1)
}

func (s *StoreTestSuite) TestClosedStoreRejectsMutations() {
	store := s.loadedStore(models.Member{ID: 1})
	store.Close()

	_, err := store.Add(models.Member{})
	s.ErrorIs(err, ErrClosed)
	_, err = store.Update(1, func(m models.Member) models.Member { return m })
	s.ErrorIs(err, ErrClosed)
	_, err = store.Remove(1)
	s.ErrorIs(err, ErrClosed)
	s.True(store.Closed())
	s.Equal(1, store.Len())
}
