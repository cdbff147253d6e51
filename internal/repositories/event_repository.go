package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"churchconnect/internal/models"
)

const seedBatchSize = 100

// eventRepository reads the events seed table
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepositoryInterface {
	return &eventRepository{
		db: db,
	}
}

// List returns every event, upcoming ones first by date
func (r *eventRepository) List(ctx context.Context) ([]models.Event, error) {
	var events []models.Event
	if err := r.db.WithContext(ctx).
		Order("CASE WHEN status = 'Open' THEN 0 ELSE 1 END").
		Order("date ASC").
		Order("id ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (r *eventRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Event{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count events: %w", err)
	}
	return total, nil
}

// SeedIfEmpty inserts events when the table has no rows and reports how many were written
func (r *eventRepository) SeedIfEmpty(ctx context.Context, events []models.Event) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.Event{}).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 || len(events) == 0 {
			return nil
		}

		rows := make([]models.Event, len(events))
		copy(rows, events)
		for i := range rows {
			rows[i].ID = 0
		}
		if err := tx.CreateInBatches(rows, seedBatchSize).Error; err != nil {
			return err
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to seed events: %w", err)
	}
	return inserted, nil
}
