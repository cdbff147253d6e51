package view

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"churchconnect/internal/models"
)

type FilterTestSuite struct {
	suite.Suite
}

func TestFilterTestSuite(t *testing.T) {
	suite.Run(t, new(FilterTestSuite))
}

func randomMembers(n int) []models.Member {
	members := make([]models.Member, 0, n)
	for i := 1; i <= n; i++ {
		members = append(members, models.Member{
			ID:             int64(i),
			Name:           gofakeit.Name(),
			Email:          gofakeit.Email(),
			Status:         gofakeit.RandomString([]string{models.MemberStatusActive, models.MemberStatusInactive}),
			WorkerCategory: gofakeit.RandomString([]string{"member", "media", "ushers", "children"}),
		})
	}
	return members
}

func (s *FilterTestSuite) TestStatusFilterIsCaseInsensitive() {
	members := []models.Member{
		{ID: 1, Name: "Ann", Status: "Active"},
		{ID: 2, Name: "Ben", Status: "Inactive"},
	}

	visible, err := Apply(members, MemberSchema(), NewCriteria().With(KeyStatus, "active"))

	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal("Ann", visible[0].Name)
	s.Equal(1, AggregateMembers(visible, "").Total)
}

func (s *FilterTestSuite) TestCapacityBucket() {
	events := []models.Event{
		{ID: 1, Title: "Small", Capacity: 50},
		{ID: 2, Title: "Medium", Capacity: 150},
		{ID: 3, Title: "Large", Capacity: 300},
	}

	testCases := []struct {
		name   string
		bucket string
		want   []int64
	}{
		{name: "closed range", bucket: "51-150", want: []int64{2}},
		{name: "inclusive lower bound", bucket: "0-50", want: []int64{1}},
		{name: "open range with plus", bucket: "300+", want: []int64{3}},
		{name: "bare minimum means at least", bucket: "151", want: []int64{3}},
		{name: "all lifts the constraint", bucket: "all", want: []int64{1, 2, 3}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			visible, err := Apply(events, EventSchema(), NewCriteria().With(KeyCapacity, tc.bucket))
			s.Require().NoError(err)

			ids := []int64{}
			for _, e := range visible {
				ids = append(ids, e.ID)
			}
			s.Equal(tc.want, ids)
		})
	}
}

func (s *FilterTestSuite) TestSearchIsCaseInsensitiveSubstring() {
	members := []models.Member{
		{ID: 1, Name: "Sarah", Email: "s@example.com"},
		{ID: 2, Name: "Tom", Email: "tom@example.com"},
	}

	criteria := NewCriteria()
	criteria.Search = "sa"
	visible, err := Apply(members, MemberSchema(), criteria)

	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal("Sarah", visible[0].Name)
}

func (s *FilterTestSuite) TestSearchMatchesSecondaryField() {
	transactions := []models.Transaction{
		{ID: 1, Description: "HVAC Repair", Category: "Maintenance"},
		{ID: 2, Description: "Sunday Service Collection", Category: "Tithes & Offerings"},
	}

	criteria := NewCriteria()
	criteria.Search = "MAINT"
	visible, err := Apply(transactions, TransactionSchema(), criteria)

	s.Require().NoError(err)
	s.Require().Len(visible, 1)
	s.Equal(int64(1), visible[0].ID)
}

func (s *FilterTestSuite) TestDerivedMonthAndYear() {
	transactions := []models.Transaction{
		{ID: 1, Category: "Donations", Date: time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Category: "Donations", Date: time.Date(2023, time.November, 3, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Category: "Utilities", Date: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)},
	}

	byMonth, err := Apply(transactions, TransactionSchema(), NewCriteria().With(KeyMonth, "December 2023"))
	s.Require().NoError(err)
	s.Len(byMonth, 1)

	byYear, err := Apply(transactions, TransactionSchema(), NewCriteria().With(KeyYear, "2023").With(KeyCategory, "Donations"))
	s.Require().NoError(err)
	s.Len(byYear, 2)
}

func (s *FilterTestSuite) TestUnknownKeyAndMalformedRangeAreRejected() {
	_, err := Apply([]models.Event{}, EventSchema(), NewCriteria().With("colour", "red"))
	var verr *models.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Contains(verr.Fields, "colour")

	s.Error(EventSchema().ValidateFilter(KeyCapacity, "big"))
	s.Error(EventSchema().ValidateFilter(KeyCapacity, "150-50"))
	s.NoError(EventSchema().ValidateFilter(KeyCapacity, "all"))
	s.NoError(EventSchema().ValidateFilter(KeyCapacity, "51-150"))
}

func (s *FilterTestSuite) TestFilterIsSubsetIdempotentAndPartitions() {
	members := randomMembers(60)
	criteria := NewCriteria().With(KeyStatus, "active").With(KeyWorkerCategory, "media")
	criteria.Search = "a"

	match, err := MemberSchema().Compile(criteria)
	s.Require().NoError(err)

	once := Filter(members, match)
	twice := Filter(once, match)
	s.Equal(once, twice)

	kept := make(map[int64]bool)
	for _, m := range once {
		kept[m.ID] = true
		s.True(match(m))
	}
	for _, m := range members {
		if !kept[m.ID] {
			s.False(match(m), "member %d was dropped but satisfies every criterion", m.ID)
		}
	}

	// source order is preserved
	for i := 1; i < len(once); i++ {
		s.Less(once[i-1].ID, once[i].ID)
	}
}

func (s *FilterTestSuite) TestAggregatesMatchVisibleRows() {
	members := randomMembers(40)
	visible, err := Apply(members, MemberSchema(), NewCriteria().With(KeyWorkerCategory, "ushers"))
	s.Require().NoError(err)

	agg := AggregateMembers(visible, "ushers")
	active := 0
	for _, m := range visible {
		if m.IsActive() {
			active++
		}
	}
	s.Equal(len(visible), agg.Total)
	s.Equal(active, agg.Active)
	s.Equal(len(visible)-active, agg.Inactive)
	s.Equal("Workers", agg.StatsLabel)
}

func (s *FilterTestSuite) TestCriteriaHelpers() {
	c := NewCriteria().With(KeyStatus, "active")
	s.False(c.IsEmpty())

	cleared := c.With(KeyStatus, "all")
	s.True(cleared.IsEmpty())
	s.NotContains(cleared.Filters, KeyStatus)
	s.Contains(c.Filters, KeyStatus, "With must not mutate the receiver")

	s.True(NewCriteria().Equal(Criteria{Filters: map[string]string{KeyStatus: ""}}))
	s.False(c.Equal(cleared))
}

type PaginateTestSuite struct {
	suite.Suite
}

func TestPaginateTestSuite(t *testing.T) {
	suite.Run(t, new(PaginateTestSuite))
}

func (s *PaginateTestSuite) TestThirteenItemsSixPerPage() {
	items := make([]int, 13)
	for i := range items {
		items[i] = i
	}

	s.Equal(3, TotalPages(13, 6))
	s.Equal(3, ClampPage(5, TotalPages(13, 6)))

	window, info := Paginate(items, 5, 6)
	s.Equal(3, info.Page)
	s.Equal([]int{12}, window)
	s.True(info.HasPrev)
	s.False(info.HasNext)
	s.True(info.ShowControls)

	window, info = Paginate(items, 2, 6)
	s.Equal([]int{6, 7, 8, 9, 10, 11}, window)
	s.Equal(6, info.Start)
	s.Equal(12, info.End)
}

func (s *PaginateTestSuite) TestEmptyViewIsOnePageWithoutControls() {
	window, info := Paginate([]int{}, 4, 6)

	s.Empty(window)
	s.Equal(1, info.Page)
	s.Equal(0, info.TotalPages)
	s.False(info.ShowControls)
	s.Equal(1, ClampPage(0, 0))
	s.Equal(1, ClampPage(-3, 2))
}

func (s *PaginateTestSuite) TestSortIsStableAndDirectional() {
	events := []models.Event{
		{ID: 1, Capacity: 50},
		{ID: 2, Capacity: 300},
		{ID: 3, Capacity: 50},
	}

	sort, err := NormalizeSort(EventSchema(), "capacity", "")
	s.Require().NoError(err)
	s.Equal(SortAsc, sort.Direction)

	asc := Ordered(events, EventSchema(), sort)
	s.Equal([]int64{1, 3, 2}, []int64{asc[0].ID, asc[1].ID, asc[2].ID})

	desc := Ordered(events, EventSchema(), Sort{Key: "capacity", Direction: SortDesc})
	s.Equal([]int64{2, 1, 3}, []int64{desc[0].ID, desc[1].ID, desc[2].ID})

	s.Equal(int64(1), events[0].ID, "source must be untouched")

	_, err = NormalizeSort(EventSchema(), "colour", "asc")
	s.Error(err)
	_, err = NormalizeSort(EventSchema(), "date", "sideways")
	s.Error(err)
}

type AggregatesTestSuite struct {
	suite.Suite
}

func TestAggregatesTestSuite(t *testing.T) {
	suite.Run(t, new(AggregatesTestSuite))
}

func (s *AggregatesTestSuite) TestFinanceSplitsBySign() {
	agg := AggregateFinance([]models.Transaction{
		{ID: 1, Category: "Donations", Amount: decimal.NewFromInt(100)},
		{ID: 2, Category: "Utilities", Amount: decimal.NewFromInt(-40)},
	})

	s.True(decimal.NewFromInt(100).Equal(agg.TotalIncome))
	s.True(decimal.NewFromInt(40).Equal(agg.TotalExpenses))
	s.True(decimal.NewFromInt(60).Equal(agg.NetIncome))
	s.Equal(1, agg.IncomeCount)
	s.Equal(1, agg.ExpenseCount)
	s.True(decimal.NewFromInt(-40).Equal(agg.MinAmount))
	s.True(decimal.NewFromInt(100).Equal(agg.MaxAmount))
	s.True(decimal.NewFromInt(70).Equal(agg.AverageAmount))
	s.Require().NotNil(agg.TopCategory)
	s.Equal("Donations", agg.TopCategory.Category)
	s.True(decimal.NewFromInt(60).Equal(agg.HealthScore))
	s.Equal(HealthWarning, agg.HealthRating)
	s.True(agg.PositiveCashFlow)
}

func (s *AggregatesTestSuite) TestFinanceSeedTotals() {
	date := time.Date(2023, time.December, 22, 0, 0, 0, 0, time.UTC)
	agg := AggregateFinance([]models.Transaction{
		{Category: "Tithes & Offerings", Amount: decimal.NewFromInt(2450), Date: date},
		{Category: "Utilities", Amount: decimal.NewFromInt(-320), Date: date},
		{Category: "Donations", Amount: decimal.NewFromInt(1200), Date: date},
		{Category: "Maintenance", Amount: decimal.NewFromInt(-180), Date: date},
		{Category: "Special Events", Amount: decimal.NewFromInt(850), Date: date},
	})

	s.True(decimal.NewFromInt(4500).Equal(agg.TotalIncome))
	s.True(decimal.NewFromInt(500).Equal(agg.TotalExpenses))
	s.True(decimal.NewFromInt(4000).Equal(agg.NetIncome))
	s.Equal("Tithes & Offerings", agg.TopCategory.Category)
	s.Len(agg.ByCategory, 5)
	s.Equal(HealthPositive, agg.HealthRating)
}

func (s *AggregatesTestSuite) TestHealthScoreEdges() {
	s.True(decimal.NewFromInt(100).Equal(HealthScore(decimal.Zero, decimal.Zero)))
	s.True(decimal.Zero.Equal(HealthScore(decimal.Zero, decimal.NewFromInt(10))))
	s.True(decimal.Zero.Equal(HealthScore(decimal.NewFromInt(10), decimal.NewFromInt(50))))
	s.Equal(HealthNegative, HealthRating(decimal.NewFromInt(40)))
}

func (s *AggregatesTestSuite) TestFinanceEmpty() {
	agg := AggregateFinance(nil)

	s.Equal(0, agg.Count)
	s.Nil(agg.TopCategory)
	s.True(agg.NetIncome.IsZero())
	s.Empty(agg.ByCategory)
}

func (s *AggregatesTestSuite) TestEvents() {
	agg := AggregateEvents([]models.Event{
		{Category: "Worship", Capacity: 300, Registered: 245, Status: models.EventStatusOpen},
		{Category: "Youth", Capacity: 50, Registered: 42, Status: models.EventStatusOpen},
		{Category: "Community", Capacity: 150, Attended: 142, Status: models.EventStatusCompleted},
		{Category: "Community", Capacity: 200, Attended: 185, Status: models.EventStatusCompleted},
	})

	s.Equal(4, agg.Total)
	s.Equal(2, agg.Upcoming)
	s.Equal(2, agg.Completed)
	s.Equal(350, agg.TotalCapacity)
	s.Equal(287, agg.TotalRegistered)
	s.Equal(164, agg.AverageAttendance)
	s.Equal(50, agg.CompletionRate)
	s.Equal(50, agg.MinCapacity)
	s.Equal(300, agg.MaxCapacity)
	s.Equal(175.0, agg.AverageCapacity)
	s.Equal(82.0, agg.FillRate)
	s.Equal([]CategoryCount{
		{Category: "Worship", Count: 1},
		{Category: "Youth", Count: 1},
		{Category: "Community", Count: 2},
	}, agg.ByCategory)
}

func (s *AggregatesTestSuite) TestAttendeesCountWholeList() {
	all := []models.Attendee{
		{Status: models.AttendeeStatusConfirmed},
		{Status: models.AttendeeStatusPending},
		{Status: models.AttendeeStatusConfirmed},
		{Status: models.AttendeeStatusWaitlist},
	}

	agg := AggregateAttendees(all, 1)

	s.Equal(AttendeeAggregates{Total: 4, Visible: 1, Confirmed: 2, Pending: 1, Waitlist: 1}, agg)
}

func (s *AggregatesTestSuite) TestCalendarGroupsByDay() {
	events := []models.Event{
		{ID: 1, Date: time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Date: time.Date(2023, time.December, 29, 0, 0, 0, 0, time.UTC)},
		{ID: 3, Date: time.Date(2023, time.December, 24, 0, 0, 0, 0, time.UTC)},
		{ID: 4, Date: time.Date(2024, time.January, 7, 0, 0, 0, 0, time.UTC)},
	}
	month, err := ParseMonth("2023-12")
	s.Require().NoError(err)

	cal := Calendar(events, month)

	s.Equal("December 2023", cal.Month)
	s.Equal(31, cal.DaysInMonth)
	s.Equal(int(time.Friday), cal.FirstWeekday)
	s.Require().Len(cal.Days, 2)
	s.Equal(24, cal.Days[0].Day)
	s.Len(cal.Days[0].Events, 2)
	s.Equal("2023-12-29", cal.Days[1].Date)

	_, err = ParseMonth("December")
	s.Error(err)
}

func (s *AggregatesTestSuite) TestFinanceOptionsNewestMonthFirst() {
	opts := FinanceOptions([]models.Transaction{
		{Category: "Utilities", Method: "Cash", Date: time.Date(2023, time.November, 2, 0, 0, 0, 0, time.UTC)},
		{Category: "Donations", Method: "Online", Date: time.Date(2023, time.December, 20, 0, 0, 0, 0, time.UTC)},
		{Category: "Donations", Method: "Cash", Date: time.Date(2022, time.December, 20, 0, 0, 0, 0, time.UTC)},
	})

	s.Equal([]string{"December 2023", "November 2023", "December 2022"}, opts[KeyMonth])
	s.Equal([]string{"2023", "2022"}, opts[KeyYear])
	s.Equal([]string{"Donations", "Utilities"}, opts[KeyCategory])
	s.Equal([]string{"Cash", "Online"}, opts[KeyMethod])
}

func (s *AggregatesTestSuite) TestRangeParsing() {
	testCases := []struct {
		raw     string
		want    Range
		wantErr bool
	}{
		{raw: "51-150", want: Range{Min: 51, Max: 150, HasMax: true}},
		{raw: "300+", want: Range{Min: 300}},
		{raw: "300", want: Range{Min: 300}},
		{raw: " 0 - 50 ", want: Range{Min: 0, Max: 50, HasMax: true}},
		{raw: "", wantErr: true},
		{raw: "a-b", wantErr: true},
		{raw: "10-", wantErr: true},
		{raw: "150-50", wantErr: true},
	}

	for _, tc := range testCases {
		s.Run(tc.raw, func() {
			got, err := ParseRange(tc.raw)
			if tc.wantErr {
				s.Error(err)
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}

	s.Equal("51-150", Range{Min: 51, Max: 150, HasMax: true}.String())
	s.Equal("300+", Range{Min: 300}.String())
}
