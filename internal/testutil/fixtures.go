package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finboard/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// NewTransaction builds an unsaved transaction for the given amount and category.
func NewTransaction(amount string, category models.Category, date string) models.Transaction {
	return models.Transaction{
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
		Description: fmt.Sprintf("Test transaction %d", nextID()),
		Category:    category,
	}
}

// CreateTestTransaction inserts a transaction directly, bypassing the store.
func CreateTestTransaction(t *testing.T, db *gorm.DB, amount string, category models.Category) *models.Transaction {
	t.Helper()
	return CreateTestTransactionAt(t, db, amount, category, time.Now())
}

// CreateTestTransactionAt inserts a transaction with a fixed creation time so
// tests can control list order.
func CreateTestTransactionAt(t *testing.T, db *gorm.DB, amount string, category models.Category, createdAt time.Time) *models.Transaction {
	t.Helper()

	tx := NewTransaction(amount, category, createdAt.Format("2006-01-02"))
	tx.CreatedAt = createdAt
	tx.UpdatedAt = createdAt
	if err := db.Create(&tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}
	return &tx
}
