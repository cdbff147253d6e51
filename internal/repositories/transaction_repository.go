package repositories

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"churchconnect/internal/models"
)

// transactionRepository reads the transactions seed table
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// List returns every transaction, newest first
func (r *transactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Order("id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}

func (r *transactionRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// SeedIfEmpty inserts transactions when the table has no rows and reports how many were written
func (r *transactionRepository) SeedIfEmpty(ctx context.Context, transactions []models.Transaction) (int, error) {
	inserted := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.Transaction{}).Count(&total).Error; err != nil {
			return err
		}
		if total > 0 || len(transactions) == 0 {
			return nil
		}

		rows := make([]models.Transaction, len(transactions))
		copy(rows, transactions)
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
		return 0, fmt.Errorf("failed to seed transactions: %w", err)
	}
	return inserted, nil
}
