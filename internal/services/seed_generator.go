package services

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"churchconnect/internal/models"
)

type seedGenerator struct {
	faker *gofakeit.Faker
}

const (
	generatedEventWindowDays = 120
	incomeShare              = 60
	maxIncomeAmount          = 3000
	maxExpenseAmount         = 800
)

var (
	eventTitleSuffixes = []string{"Gathering", "Night", "Workshop", "Service", "Meetup", "Outreach"}
	eventTimes         = []string{"9:00 AM", "10:00 AM", "2:00 PM", "5:00 PM", "6:30 PM", "7:00 PM"}
	incomeCategories   = []string{"Tithes & Offerings", "Donations", "Special Events"}
	expenseCategories  = []string{"Utilities", "Maintenance", "Staff Salaries", "Ministry Programs", "Missions"}
	attendeeStatuses   = []string{models.AttendeeStatusConfirmed, models.AttendeeStatusPending, models.AttendeeStatusWaitlist}
)

// NewSeedGenerator creates a generator. A zero seed picks a random one; any
// other seed reproduces the same rows.
func NewSeedGenerator(seed int64) SeedGeneratorInterface {
	return &seedGenerator{faker: gofakeit.New(uint64(seed))}
}

// GenerateEvents spreads events over the window around from. Events before
// from are completed and carry attendance.
func (g *seedGenerator) GenerateEvents(count int, from time.Time) []models.Event {
	events := make([]models.Event, 0, count)
	half := time.Duration(generatedEventWindowDays/2) * 24 * time.Hour

	for range count {
		category := g.faker.RandomString(models.EventCategories)
		date := g.faker.DateRange(from.Add(-half), from.Add(half)).Truncate(24 * time.Hour)
		capacity := g.faker.IntRange(10, 400)

		event := models.Event{
			Title:       fmt.Sprintf("%s %s", category, g.faker.RandomString(eventTitleSuffixes)),
			Description: fmt.Sprintf("%s hosted in %s", category, g.faker.City()),
			Date:        date,
			Time:        g.faker.RandomString(eventTimes),
			Location:    g.faker.Company() + " Hall",
			Capacity:    capacity,
			Category:    category,
		}
		if date.Before(from) {
			event.Status = models.EventStatusCompleted
			event.Attended = g.faker.IntRange(0, capacity)
		} else {
			event.Status = models.EventStatusOpen
			event.Registered = g.faker.IntRange(0, capacity)
		}
		events = append(events, event)
	}
	return events
}

// GenerateTransactions produces a mix of income and expenses dated in the
// year before from.
func (g *seedGenerator) GenerateTransactions(count int, from time.Time) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)

	for range count {
		txType := models.TransactionTypeExpense
		category := g.faker.RandomString(expenseCategories)
		amount := g.faker.Price(10, maxExpenseAmount)
		if g.faker.IntRange(1, 100) <= incomeShare {
			txType = models.TransactionTypeIncome
			category = g.faker.RandomString(incomeCategories)
			amount = g.faker.Price(25, maxIncomeAmount)
		}

		transactions = append(transactions, models.Transaction{
			Type:        txType,
			Category:    category,
			Amount:      models.SignedAmount(txType, decimal.NewFromFloat(amount).Round(2)),
			Date:        g.faker.DateRange(from.AddDate(-1, 0, 0), from).Truncate(24 * time.Hour),
			Description: fmt.Sprintf("%s - %s", category, g.faker.Company()),
			Method:      g.faker.RandomString(models.PaymentMethods),
		})
	}
	return transactions
}

func (g *seedGenerator) GenerateAttendees(count int, from time.Time) []models.Attendee {
	attendees := make([]models.Attendee, 0, count)

	for range count {
		attendees = append(attendees, models.Attendee{
			Name:         g.faker.FirstName() + " " + g.faker.LastName(),
			Email:        g.faker.Email(),
			Phone:        g.faker.Numerify("(555) ###-####"),
			Status:       g.faker.RandomString(attendeeStatuses),
			RegisteredAt: g.faker.DateRange(from.AddDate(0, -1, 0), from),
		})
	}
	return attendees
}
