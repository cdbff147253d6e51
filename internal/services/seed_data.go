package services

import (
	"time"

	"github.com/shopspring/decimal"

	"churchconnect/internal/models"
)

func seedDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DefaultEvents is the built-in events seed: four upcoming and two past events.
func DefaultEvents() []models.Event {
	return []models.Event{
		{ID: 1, Title: "Christmas Eve Service", Description: "Special Christmas Eve worship service with candlelight and carols", Date: seedDate(2023, time.December, 24), Time: "7:00 PM", Location: "Main Sanctuary", Capacity: 300, Registered: 245, Status: models.EventStatusOpen, Category: "Worship"},
		{ID: 2, Title: "Youth New Year Retreat", Description: "3-day retreat for youth ages 13-18 with activities and worship", Date: seedDate(2023, time.December, 29), Time: "6:00 PM", Location: "Mountain View Camp", Capacity: 50, Registered: 42, Status: models.EventStatusOpen, Category: "Youth"},
		{ID: 3, Title: "New Members Class", Description: "Introduction class for new church members", Date: seedDate(2024, time.January, 7), Time: "10:00 AM", Location: "Conference Room A", Capacity: 25, Registered: 18, Status: models.EventStatusOpen, Category: "Education"},
		{ID: 4, Title: "Women's Bible Study", Description: "Weekly women's Bible study and fellowship", Date: seedDate(2024, time.January, 10), Time: "7:00 PM", Location: "Fellowship Hall", Capacity: 40, Registered: 35, Status: models.EventStatusOpen, Category: "Bible Study"},
		{ID: 5, Title: "Thanksgiving Dinner", Description: "Community Thanksgiving dinner and fellowship", Date: seedDate(2023, time.November, 23), Time: "5:00 PM", Location: "Fellowship Hall", Capacity: 150, Attended: 142, Status: models.EventStatusCompleted, Category: "Community"},
		{ID: 6, Title: "Fall Festival", Description: "Annual fall festival with games, food, and family fun", Date: seedDate(2023, time.October, 28), Time: "2:00 PM", Location: "Church Grounds", Capacity: 200, Attended: 185, Status: models.EventStatusCompleted, Category: "Community"},
	}
}

// DefaultTransactions is the built-in ledger seed. Expenses carry negative amounts.
func DefaultTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: 1, Type: models.TransactionTypeIncome, Category: "Tithes & Offerings", Amount: decimal.NewFromInt(2450), Date: seedDate(2023, time.December, 22), Description: "Sunday Service Collection", Method: "Cash"},
		{ID: 2, Type: models.TransactionTypeExpense, Category: "Utilities", Amount: decimal.NewFromInt(-320), Date: seedDate(2023, time.December, 21), Description: "Electric Bill - December", Method: "Bank Transfer"},
		{ID: 3, Type: models.TransactionTypeIncome, Category: "Donations", Amount: decimal.NewFromInt(1200), Date: seedDate(2023, time.December, 20), Description: "Building Fund Donation", Method: "Online"},
		{ID: 4, Type: models.TransactionTypeExpense, Category: "Maintenance", Amount: decimal.NewFromInt(-180), Date: seedDate(2023, time.December, 19), Description: "HVAC Repair", Method: "Credit Card"},
		{ID: 5, Type: models.TransactionTypeIncome, Category: "Special Events", Amount: decimal.NewFromInt(850), Date: seedDate(2023, time.December, 18), Description: "Christmas Concert Donations", Method: "Mixed"},
	}
}

func DefaultAttendees() []models.Attendee {
	return []models.Attendee{
		{ID: 1, Name: "Sarah Johnson", Email: "sarah.j@email.com", Phone: "(555) 123-4567", Status: models.AttendeeStatusConfirmed, RegisteredAt: seedDate(2023, time.December, 15)},
		{ID: 2, Name: "Michael Chen", Email: "m.chen@email.com", Phone: "(555) 234-5678", Status: models.AttendeeStatusPending, RegisteredAt: seedDate(2023, time.December, 16)},
		{ID: 3, Name: "Emily Davis", Email: "emily.davis@email.com", Phone: "(555) 345-6789", Status: models.AttendeeStatusConfirmed, RegisteredAt: seedDate(2023, time.December, 17)},
		{ID: 4, Name: "Robert Wilson", Email: "r.wilson@email.com", Phone: "(555) 456-7890", Status: models.AttendeeStatusWaitlist, RegisteredAt: seedDate(2023, time.December, 18)},
	}
}
