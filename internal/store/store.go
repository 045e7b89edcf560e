// Package store persists transactions. Every backend honours the same
// contract: ids and timestamps are assigned on create, listing is
// newest-first, and deleting an unknown id is not an error.
package store

import (
	"context"

	"finboard/internal/models"
)

// TransactionStore is the persistence boundary for transactions.
type TransactionStore interface {
	// Create assigns an id and timestamps, defaults the category to Other,
	// and persists the record. Any id or timestamps on tx are ignored.
	Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error)
	// List returns every transaction ordered by creation time, newest first.
	List(ctx context.Context) ([]models.Transaction, error)
	// DeleteByID removes the transaction if it exists.
	DeleteByID(ctx context.Context, id string) error
}

// prepare copies tx with store-owned fields cleared and the category defaulted.
func prepare(tx *models.Transaction) models.Transaction {
	rec := *tx
	rec.Base = models.Base{}
	rec.Category = models.NormalizeCategory(rec.Category)
	return rec
}
