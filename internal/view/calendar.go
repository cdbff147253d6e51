package view

import (
	"fmt"
	"time"

	"churchconnect/internal/models"
)

// CalendarDay holds the events falling on one day of the month.
type CalendarDay struct {
	Day    int            `json:"day"`
	Date   string         `json:"date"`
	Events []models.Event `json:"events"`
}

// CalendarMonth is the month grid of the events calendar.
type CalendarMonth struct {
	Month        string        `json:"month"`
	DaysInMonth  int           `json:"days_in_month"`
	FirstWeekday int           `json:"first_weekday"`
	Days         []CalendarDay `json:"days"`
}

// ParseMonth reads a "2006-01" value.
func ParseMonth(raw string) (time.Time, error) {
	month, err := time.Parse("2006-01", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("month must look like YYYY-MM: %w", err)
	}
	return month, nil
}

// Calendar groups events by day for the month containing month. Only days
// that have events are listed, in day order.
func Calendar(events []models.Event, month time.Time) CalendarMonth {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := first.AddDate(0, 1, 0)

	byDay := make(map[int][]models.Event)
	for _, e := range events {
		d := e.Date.UTC()
		if d.Before(first) || !d.Before(next) {
			continue
		}
		byDay[d.Day()] = append(byDay[d.Day()], e)
	}

	cal := CalendarMonth{
		Month:        first.Format("January 2006"),
		DaysInMonth:  next.AddDate(0, 0, -1).Day(),
		FirstWeekday: int(first.Weekday()),
		Days:         []CalendarDay{},
	}
	for day := 1; day <= cal.DaysInMonth; day++ {
		if dayEvents, ok := byDay[day]; ok {
			cal.Days = append(cal.Days, CalendarDay{
				Day:    day,
				Date:   first.AddDate(0, 0, day-1).Format(models.DateLayout),
				Events: dayEvents,
			})
		}
	}
	return cal
}
