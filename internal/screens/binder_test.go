package screens

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"churchconnect/internal/collection"
	"churchconnect/internal/config"
	"churchconnect/internal/models"
	"churchconnect/internal/services"
	"churchconnect/internal/services/service_mocks"
	"churchconnect/internal/view"
)

// BinderTestSuite drives mounted screens the way the HTTP layer does
type BinderTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	directory *service_mocks.MockMemberDirectoryInterface
	seeds     *service_mocks.MockSeedCatalogInterface
	bulk      *service_mocks.MockBulkEmailServiceInterface
	deps      Dependencies
	ctx       context.Context
	now       time.Time
}

func TestBinderTestSuite(t *testing.T) {
	suite.Run(t, new(BinderTestSuite))
}

func (s *BinderTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.directory = service_mocks.NewMockMemberDirectoryInterface(s.ctrl)
	s.seeds = service_mocks.NewMockSeedCatalogInterface(s.ctrl)
	s.bulk = service_mocks.NewMockBulkEmailServiceInterface(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2024, time.January, 15, 9, 30, 0, 0, time.UTC)
	s.deps = Dependencies{
		Directory: s.directory,
		Seeds:     s.seeds,
		BulkEmail: s.bulk,
		Config: config.ScreensConfig{
			MembersPageSize:   6,
			EventsPageSize:    12,
			FinancePageSize:   20,
			AttendeesPageSize: 20,
			SearchDebounce:    20 * time.Millisecond,
		},
		Now: func() time.Time { return s.now },
	}
}

func (s *BinderTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

var testTheme = models.Theme{Name: models.ThemeDark, Dark: true}

func (s *BinderTestSuite) mountMembers(members ...models.Member) *MembersScreen {
	s.directory.EXPECT().ListMembers(gomock.Any()).Return(members, nil)
	s.directory.EXPECT().WorkerCategories(gomock.Any()).Return(models.WorkerCategories{"media": "Media", "ushers": "Ushers"}, nil)

	screen := NewMembersScreen(s.ctx, s.deps, testTheme)
	screen.Mount()
	s.Require().NoError(screen.WaitLoaded(s.ctx))
	s.T().Cleanup(screen.Unmount)
	return screen
}

func (s *BinderTestSuite) mountEvents(events ...models.Event) *EventsScreen {
	s.seeds.EXPECT().Events(gomock.Any()).Return(events, nil)

	screen := NewEventsScreen(s.ctx, s.deps, testTheme)
	screen.Mount()
	s.Require().NoError(screen.WaitLoaded(s.ctx))
	s.T().Cleanup(screen.Unmount)
	return screen
}

func (s *BinderTestSuite) mountFinance(transactions ...models.Transaction) *Binder[models.Transaction] {
	s.seeds.EXPECT().Transactions(gomock.Any()).Return(transactions, nil)

	screen := NewFinanceScreen(s.ctx, s.deps, testTheme)
	screen.Mount()
	s.Require().NoError(screen.WaitLoaded(s.ctx))
	s.T().Cleanup(screen.Unmount)
	return screen
}

func member(name, status, category string) models.Member {
	return models.Member{Name: name, Email: strings.ToLower(name) + "@example.com", Status: status, WorkerCategory: category}
}

func names(members []models.Member) []string {
	out := make([]string, 0, len(members))
	for _, m := range members {
		out = append(out, m.Name)
	}
	return out
}

// TestStatusFilter tests case-insensitive status filtering
func (s *BinderTestSuite) TestStatusFilter() {
	screen := s.mountMembers(member("Ann", "Active", "media"), member("Ben", "Inactive", "media"))

	s.Require().NoError(screen.SetFilter(view.KeyStatus, "active"))
	v, err := screen.View()

	s.Require().NoError(err)
	s.Equal([]string{"Ann"}, names(v.Items))
	s.Equal(1, v.Pagination.TotalItems)
	s.Equal(2, v.CollectionCount)
	s.Equal(testTheme, v.Theme)
	s.Equal(LoadReady, v.LoadState)
}

// TestCapacityRange tests range filtering on events
func (s *BinderTestSuite) TestCapacityRange() {
	date := time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)
	screen := s.mountEvents(
		models.Event{Title: "Small", Capacity: 50, Date: date},
		models.Event{Title: "Medium", Capacity: 150, Date: date},
		models.Event{Title: "Large", Capacity: 300, Date: date},
	)

	s.Require().NoError(screen.SetFilter(view.KeyCapacity, "51-150"))
	v, err := screen.View()

	s.Require().NoError(err)
	s.Require().Len(v.Items, 1)
	s.Equal("Medium", v.Items[0].Title)
}

// TestFinanceAggregates tests income and expense totals
func (s *BinderTestSuite) TestFinanceAggregates() {
	date := time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)
	screen := s.mountFinance(
		models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(100), Category: "Donations", Description: "Gift", Date: date},
		models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(-40), Category: "Utilities", Description: "Water", Date: date},
	)

	v, err := screen.View()
	s.Require().NoError(err)

	agg, ok := v.Aggregates.(view.FinanceAggregates)
	s.Require().True(ok)
	s.True(agg.TotalIncome.Equal(decimal.NewFromInt(100)))
	s.True(agg.TotalExpenses.Equal(decimal.NewFromInt(40)))
	s.True(agg.NetIncome.Equal(decimal.NewFromInt(60)))
}

// TestGotoPage_Clamps tests paging past the last page
func (s *BinderTestSuite) TestGotoPage_Clamps() {
	members := make([]models.Member, 0, 13)
	for range 13 {
		members = append(members, member(gofakeit.FirstName(), "Active", "media"))
	}
	screen := s.mountMembers(members...)

	page, err := screen.GotoPage(5)

	s.Require().NoError(err)
	s.Equal(3, page)
	v, err := screen.View()
	s.Require().NoError(err)
	s.Equal(3, v.Pagination.TotalPages)
	s.Len(v.Items, 1)

	page, err = screen.GotoPage(-2)
	s.Require().NoError(err)
	s.Equal(1, page)
}

// TestSearch_IsDebounced tests the immediate input and the delayed criterion
func (s *BinderTestSuite) TestSearch_IsDebounced() {
	screen := s.mountMembers(member("Sarah", "Active", "media"), member("Tom", "Active", "media"))

	s.Require().NoError(screen.SetSearch("s"))
	s.Require().NoError(screen.SetSearch("sa"))

	v, err := screen.View()
	s.Require().NoError(err)
	s.Equal("sa", v.SearchInput)
	s.True(v.SearchPending)
	s.Len(v.Items, 2)

	s.Eventually(func() bool {
		v, err := screen.View()
		return err == nil && !v.SearchPending
	}, time.Second, 5*time.Millisecond)

	v, err = screen.View()
	s.Require().NoError(err)
	s.Equal("sa", v.Criteria.Search)
	s.Equal([]string{"Sarah"}, names(v.Items))
}

// TestFlushSearch tests applying the input without waiting
func (s *BinderTestSuite) TestFlushSearch() {
	s.deps.Config.SearchDebounce = time.Hour
	screen := s.mountMembers(member("Sarah", "Active", "media"), member("Tom", "Active", "media"))

	s.Require().NoError(screen.SetSearch("TOM"))
	s.Require().NoError(screen.FlushSearch())

	v, err := screen.View()
	s.Require().NoError(err)
	s.False(v.SearchPending)
	s.Equal([]string{"Tom"}, names(v.Items))
}

// TestCriteriaChange_ResetsPage tests that a new filter returns to page one
func (s *BinderTestSuite) TestCriteriaChange_ResetsPage() {
	members := make([]models.Member, 0, 13)
	for range 13 {
		members = append(members, member(gofakeit.FirstName(), "Active", "ushers"))
	}
	screen := s.mountMembers(members...)
	_, err := screen.GotoPage(2)
	s.Require().NoError(err)

	s.Require().NoError(screen.SetFilter(view.KeyWorkerCategory, "ushers"))

	v, err := screen.View()
	s.Require().NoError(err)
	s.Equal(1, v.Pagination.Page)

	_, err = screen.GotoPage(3)
	s.Require().NoError(err)
	s.Require().NoError(screen.SetFilter(view.KeyWorkerCategory, "ushers"))
	v, err = screen.View()
	s.Require().NoError(err)
	s.Equal(3, v.Pagination.Page)
}

// TestSetFilter_UnknownKey tests filter validation
func (s *BinderTestSuite) TestSetFilter_UnknownKey() {
	screen := s.mountMembers(member("Ann", "Active", "media"))

	err := screen.SetFilter("shoeSize", "9")

	s.Error(err)
	v, viewErr := screen.View()
	s.Require().NoError(viewErr)
	s.Empty(v.Criteria.Filters)
}

// TestClearFilters tests that search, pending input and filters are dropped
func (s *BinderTestSuite) TestClearFilters() {
	s.deps.Config.SearchDebounce = time.Hour
	screen := s.mountMembers(member("Ann", "Active", "media"), member("Ben", "Inactive", "ushers"))
	s.Require().NoError(screen.SetFilter(view.KeyStatus, "inactive"))
	s.Require().NoError(screen.SetSearch("zzz"))

	s.Require().NoError(screen.ClearFilters())

	v, err := screen.View()
	s.Require().NoError(err)
	s.Empty(v.SearchInput)
	s.False(v.SearchPending)
	s.Len(v.Items, 2)
}

// TestSetSort tests ordering and invalid sort keys
func (s *BinderTestSuite) TestSetSort() {
	screen := s.mountMembers(member("Cy", "Active", "media"), member("ann", "Active", "media"), member("Ben", "Active", "media"))

	s.Require().NoError(screen.SetSort("name", "desc"))
	v, err := screen.View()
	s.Require().NoError(err)
	s.Equal([]string{"Cy", "Ben", "ann"}, names(v.Items))

	var verr *models.ValidationError
	s.ErrorAs(screen.SetSort("shoeSize", "asc"), &verr)
}

// TestSetSort_ResetsPage tests that a new ordering starts from the first page
func (s *BinderTestSuite) TestSetSort_ResetsPage() {
	members := make([]models.Member, 0, 13)
	for range 13 {
		members = append(members, member(gofakeit.FirstName(), "Active", "media"))
	}
	screen := s.mountMembers(members...)

	_, err := screen.GotoPage(3)
	s.Require().NoError(err)
	s.Require().NoError(screen.SetSort("name", "asc"))

	v, err := screen.View()
	s.Require().NoError(err)
	s.Equal(1, v.Pagination.Page)

	_, err = screen.GotoPage(2)
	s.Require().NoError(err)
	s.Require().NoError(screen.SetSort("name", "asc"))

	v, err = screen.View()
	s.Require().NoError(err)
	s.Equal(2, v.Pagination.Page)
}

// TestSelectAll_SelectsFilteredOnly tests that select-all follows the filtered view
func (s *BinderTestSuite) TestSelectAll_SelectsFilteredOnly() {
	members := make([]models.Member, 0, 10)
	for i := range 10 {
		category := "ushers"
		if i < 4 {
			category = "media"
		}
		members = append(members, member(gofakeit.FirstName(), "Active", category))
	}
	screen := s.mountMembers(members...)
	s.Require().NoError(screen.SetFilter(view.KeyWorkerCategory, "media"))

	n, err := screen.SelectAll(true)

	s.Require().NoError(err)
	s.Equal(4, n)
	v, err := screen.View()
	s.Require().NoError(err)
	s.True(v.AllSelected)
	s.Len(v.Selected, 4)

	n, err = screen.SelectAll(false)
	s.Require().NoError(err)
	s.Zero(n)
	s.Empty(screen.Selected())
}

// TestSelectEntity tests single selection toggles
func (s *BinderTestSuite) TestSelectEntity() {
	screen := s.mountMembers(member("Ann", "Active", "media"), member("Ben", "Active", "media"))

	s.Require().NoError(screen.SelectEntity(2, true))
	s.Equal([]int64{2}, screen.Selected())

	s.ErrorIs(screen.SelectEntity(99, true), collection.ErrNotFound)

	s.Require().NoError(screen.SelectEntity(2, false))
	s.Empty(screen.Selected())
}

// TestAddMember_GoesThroughDirectory tests that the API's answer is stored
func (s *BinderTestSuite) TestAddMember_GoesThroughDirectory() {
	screen := s.mountMembers(member("Ann", "Active", "media"))
	s.directory.EXPECT().CreateMember(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m models.Member) (models.Member, error) {
			s.Equal("2024-01-15", m.JoinDate)
			s.Equal(models.MemberStatusActive, m.Status)
			m.ID = 41
			return m, nil
		})

	added, err := screen.AddJSON(s.ctx, []byte(`{"name":"Ben","email":"ben@example.com","workerCategory":"ushers"}`))

	s.Require().NoError(err)
	s.Equal(int64(41), added.(models.Member).ID)
	v, err := screen.View()
	s.Require().NoError(err)
	s.Equal([]string{"Ann", "Ben"}, names(v.Items))
}

// TestAddMember_InvalidFormNeverReachesDirectory tests form validation
func (s *BinderTestSuite) TestAddMember_InvalidFormNeverReachesDirectory() {
	screen := s.mountMembers(member("Ann", "Active", "media"))

	_, err := screen.AddJSON(s.ctx, []byte(`{"name":"","email":"not-an-email"}`))

	var verr *models.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "name")
	s.Contains(verr.Fields, "email")
	s.Equal(1, screen.Store().Len())
}

// TestAddEvent_ValidationFailureIsLogged tests that rejected entities reach the screen logger
func (s *BinderTestSuite) TestAddEvent_ValidationFailureIsLogged() {
	logger := service_mocks.NewMockScreenLoggerInterface(s.ctrl)
	logger.EXPECT().LogCollectionLoaded(gomock.Any(), ScreenEvents, 0, gomock.Any())
	logger.EXPECT().LogValidationFailure(gomock.Any(), "events.add", gomock.Any())
	s.deps.Logger = logger

	screen := s.mountEvents()
	_, err := screen.AddEntity(s.ctx, models.Event{})

	var verr *models.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal(0, screen.Store().Len())
}

// TestAddMember_RemoteFailureLeavesCollection tests that a rejected add changes nothing
func (s *BinderTestSuite) TestAddMember_RemoteFailureLeavesCollection() {
	screen := s.mountMembers(member("Ann", "Active", "media"))
	before := screen.Store().Version()
	s.directory.EXPECT().CreateMember(gomock.Any(), gomock.Any()).Return(models.Member{}, services.ErrCircuitBreakerOpen)

	_, err := screen.AddJSON(s.ctx, []byte(`{"name":"Ben","email":"ben@example.com"}`))

	s.ErrorIs(err, services.ErrCircuitBreakerOpen)
	s.Equal(before, screen.Store().Version())
}

// TestEditMember tests a partial edit sent through the directory
func (s *BinderTestSuite) TestEditMember() {
	screen := s.mountMembers(member("Ann", "Active", "media"))
	s.directory.EXPECT().UpdateMember(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, m models.Member) (models.Member, error) {
			return m, nil
		})

	updated, err := screen.EditJSON(s.ctx, 1, []byte(`{"status":"Inactive"}`))

	s.Require().NoError(err)
	m := updated.(models.Member)
	s.Equal("Inactive", m.Status)
	s.Equal("ann@example.com", m.Email)
}

// TestEditMember_ConcurrentPatchesBothApply tests that parallel edits of one
// member do not overwrite each other
func (s *BinderTestSuite) TestEditMember_ConcurrentPatchesBothApply() {
	screen := s.mountMembers(member("Ann", "Active", "media"))
	s.directory.EXPECT().UpdateMember(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
		func(_ context.Context, id int64, m models.Member) (models.Member, error) {
			time.Sleep(5 * time.Millisecond)
			return m, nil
		}).Times(2)

	var wg sync.WaitGroup
	for _, body := range []string{`{"status":"Inactive"}`, `{"workerCategory":"ushers"}`} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := screen.EditJSON(s.ctx, 1, []byte(body))
			s.NoError(err)
		}()
	}
	wg.Wait()

	stored, ok := screen.Store().Get(1)
	s.Require().True(ok)
	s.Equal("Inactive", stored.Status)
	s.Equal("ushers", stored.WorkerCategory)
}

// TestEditAndDelete_MissingIDIsNotFound tests the explicit not found outcome
func (s *BinderTestSuite) TestEditAndDelete_MissingIDIsNotFound() {
	screen := s.mountMembers(member("Ann", "Active", "media"))
	before := screen.Store().Version()

	_, err := screen.EditJSON(s.ctx, 9, []byte(`{"name":"Nobody"}`))
	s.ErrorIs(err, collection.ErrNotFound)

	s.ErrorIs(screen.DeleteEntity(s.ctx, 9), collection.ErrNotFound)
	s.Equal(before, screen.Store().Version())
}

// TestDelete_DropsSelection tests that a deleted entity leaves the selection
func (s *BinderTestSuite) TestDelete_DropsSelection() {
	screen := s.mountMembers(member("Ann", "Active", "media"), member("Ben", "Active", "media"))
	_, err := screen.SelectAll(true)
	s.Require().NoError(err)

	s.Require().NoError(screen.DeleteEntity(s.ctx, 1))

	s.Equal([]int64{2}, screen.Selected())
	s.Equal(1, screen.Store().Len())
}

// TestLoadFailure tests that a failed fetch is reported and leaves nothing
func (s *BinderTestSuite) TestLoadFailure() {
	s.directory.EXPECT().ListMembers(gomock.Any()).Return(nil, errors.New("connection refused"))
	screen := NewMembersScreen(s.ctx, s.deps, testTheme)
	defer screen.Unmount()

	screen.Mount()
	s.Require().NoError(screen.WaitLoaded(s.ctx))

	v, err := screen.View()
	s.Require().NoError(err)
	s.Equal(LoadFailed, v.LoadState)
	s.Contains(v.LoadError, "connection refused")
	s.Empty(v.Items)

	var loadErr *collection.LoadError
	_, stateErr := screen.LoadState()
	s.ErrorAs(stateErr, &loadErr)
}

// TestWorkerCategoriesFailure_KeepsDefaults tests the category fallback
func (s *BinderTestSuite) TestWorkerCategoriesFailure_KeepsDefaults() {
	s.directory.EXPECT().ListMembers(gomock.Any()).Return([]models.Member{member("Ann", "Active", "media")}, nil)
	s.directory.EXPECT().WorkerCategories(gomock.Any()).Return(nil, errors.New("timeout"))
	screen := NewMembersScreen(s.ctx, s.deps, testTheme)
	defer screen.Unmount()

	screen.Mount()
	s.Require().NoError(screen.WaitLoaded(s.ctx))

	state, _ := screen.LoadState()
	s.Equal(LoadReady, state)
	s.Equal(models.DefaultWorkerCategories(), screen.Categories())
}

// TestMutationsWhileLoading tests that edits wait for the initial fetch
func (s *BinderTestSuite) TestMutationsWhileLoading() {
	release := make(chan struct{})
	s.seeds.EXPECT().Events(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Event, error) {
		<-release
		return nil, nil
	})
	screen := NewEventsScreen(s.ctx, s.deps, testTheme)
	defer screen.Unmount()
	screen.Mount()

	_, err := screen.AddJSON(s.ctx, []byte(`{"title":"Picnic","date":"2024-05-01","location":"Park","category":"Community"}`))
	s.ErrorIs(err, ErrLoading)

	close(release)
	s.Require().NoError(screen.WaitLoaded(s.ctx))
}

// TestUnmount_DuringLoad tests that a fetch resolving after unmount changes nothing
func (s *BinderTestSuite) TestUnmount_DuringLoad() {
	started := make(chan struct{})
	s.seeds.EXPECT().Events(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.Event, error) {
		close(started)
		<-ctx.Done()
		return []models.Event{{Title: "Late"}}, nil
	})
	screen := NewEventsScreen(s.ctx, s.deps, testTheme)
	screen.Mount()
	<-started

	screen.Unmount()
	s.Require().NoError(screen.WaitLoaded(s.ctx))

	s.Equal(0, screen.Store().Len())
	_, err := screen.View()
	s.ErrorIs(err, ErrUnmounted)
	s.ErrorIs(screen.SetSearch("x"), ErrUnmounted)
	screen.Unmount()
}

// TestReload tests retrying after a failure
func (s *BinderTestSuite) TestReload() {
	gomock.InOrder(
		s.seeds.EXPECT().Transactions(gomock.Any()).Return(nil, errors.New("boom")),
		s.seeds.EXPECT().Transactions(gomock.Any()).Return([]models.Transaction{{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(5)}}, nil),
	)
	screen := NewFinanceScreen(s.ctx, s.deps, testTheme)
	defer screen.Unmount()
	screen.Mount()
	s.Require().NoError(screen.WaitLoaded(s.ctx))

	s.Require().NoError(screen.Reload(s.ctx))

	state, err := screen.LoadState()
	s.Equal(LoadReady, state)
	s.NoError(err)
	s.Equal(1, screen.Store().Len())
}

// TestReload_CancelledKeepsPreviousState tests that a reload abandoned by
// its caller does not leave the screen loading
func (s *BinderTestSuite) TestReload_CancelledKeepsPreviousState() {
	s.Run("ready", func() {
		screen := s.mountMembers(member("Ann", "Active", "media"))
		ctx, cancel := context.WithCancel(s.ctx)
		s.directory.EXPECT().ListMembers(gomock.Any()).DoAndReturn(
			func(loadCtx context.Context) ([]models.Member, error) {
				cancel()
				<-loadCtx.Done()
				return nil, loadCtx.Err()
			})

		s.ErrorIs(screen.Reload(ctx), context.Canceled)

		state, err := screen.LoadState()
		s.Equal(LoadReady, state)
		s.NoError(err)
		s.Equal(1, screen.Store().Len())
		s.NoError(screen.DeleteEntity(s.ctx, 1))
	})

	s.Run("failed", func() {
		s.directory.EXPECT().ListMembers(gomock.Any()).Return(nil, errors.New("connection refused"))
		screen := NewMembersScreen(s.ctx, s.deps, testTheme)
		defer screen.Unmount()
		screen.Mount()
		s.Require().NoError(screen.WaitLoaded(s.ctx))

		ctx, cancel := context.WithCancel(s.ctx)
		s.directory.EXPECT().ListMembers(gomock.Any()).DoAndReturn(
			func(loadCtx context.Context) ([]models.Member, error) {
				cancel()
				<-loadCtx.Done()
				return nil, loadCtx.Err()
			})

		s.ErrorIs(screen.Reload(ctx), context.Canceled)

		state, err := screen.LoadState()
		s.Equal(LoadFailed, state)
		s.ErrorContains(err, "connection refused")
	})
}

// TestExportVisible tests that the whole filtered view is exported
func (s *BinderTestSuite) TestExportVisible() {
	date := time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)
	rows := make([]models.Transaction, 0, 25)
	for range 25 {
		rows = append(rows, models.Transaction{Type: models.TransactionTypeIncome, Amount: decimal.NewFromInt(10), Category: "Donations", Description: "Gift", Date: date, Method: "Cash"})
	}
	rows = append(rows, models.Transaction{Type: models.TransactionTypeExpense, Amount: decimal.NewFromInt(-5), Category: "Utilities", Description: "Water", Date: date, Method: "Cash"})
	screen := s.mountFinance(rows...)
	s.Require().NoError(screen.SetFilter(view.KeyType, models.TransactionTypeIncome))

	file, err := screen.ExportVisible(s.ctx, s.now)

	s.Require().NoError(err)
	s.Equal("transactions_2024-01-15.csv", file.Name)
	s.Equal(25, file.Rows)
	s.NotContains(string(file.Body), "Water")
}

// TestCalendar tests the month grid over the filtered events
func (s *BinderTestSuite) TestCalendar() {
	screen := s.mountEvents(
		models.Event{Title: "Retreat", Category: "Youth", Date: time.Date(2023, time.December, 29, 0, 0, 0, 0, time.UTC)},
		models.Event{Title: "Carols", Category: "Worship", Date: time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC)},
		models.Event{Title: "Class", Category: "Education", Date: time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)},
	)
	s.Require().NoError(screen.SetFilter(view.KeyCategory, "Youth"))

	cal, err := screen.Calendar(time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC))

	s.Require().NoError(err)
	s.Require().Len(cal.Days, 1)
	s.Equal(29, cal.Days[0].Day)
	s.Equal("Retreat", cal.Days[0].Events[0].Title)
}

// TestRecipients tests audience resolution for bulk email
func (s *BinderTestSuite) TestRecipients() {
	screen := s.mountMembers(
		member("Ann", "Active", "media"),
		member("Ben", "Active", "ushers"),
		member("Cy", "Inactive", "media"),
	)
	s.Require().NoError(screen.SetFilter(view.KeyStatus, "active"))

	byCategory := screen.Recipients(models.BulkEmailRequest{Audience: models.AudienceCategory, Category: "media"})
	s.Equal([]string{"ann@example.com", "cy@example.com"}, byCategory)

	everyone := screen.Recipients(models.BulkEmailRequest{Audience: models.AudienceCategory, Category: "all"})
	s.Len(everyone, 3)

	s.Require().NoError(screen.SelectEntity(2, true))
	selected := screen.Recipients(models.BulkEmailRequest{Audience: models.AudienceSelected})
	s.Equal([]string{"ben@example.com"}, selected)
}

// TestSendBulkEmail tests that jobs are scoped to the screen that started them
func (s *BinderTestSuite) TestSendBulkEmail() {
	screen := s.mountMembers(member("Ann", "Active", "media"))
	req := models.BulkEmailRequest{Audience: models.AudienceCategory, Category: "media", Subject: "Hi", Message: "Hello"}
	job := models.BulkEmailJob{ID: uuid.New(), Status: models.BulkEmailStatusSending, Recipients: 1}

	s.bulk.EXPECT().Start(gomock.Any(), req, []string{"ann@example.com"}).Return(job, nil)
	s.bulk.EXPECT().Job(job.ID).Return(job, true)

	started, err := screen.SendBulkEmail(s.ctx, req)
	s.Require().NoError(err)

	got, err := screen.BulkEmailJob(started.ID)
	s.Require().NoError(err)
	s.Equal(job, got)

	_, err = screen.BulkEmailJob(uuid.New())
	s.ErrorIs(err, ErrJobNotFound)
}
