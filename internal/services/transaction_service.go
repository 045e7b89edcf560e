package services

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/store"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	store store.TransactionStore
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(s store.TransactionStore) TransactionServicer {
	return &transactionService{store: s}
}

// CreateTransaction records a new transaction. A blank category becomes Other;
// an unknown one is rejected. The amount is rounded to models.AmountScale
// places and must stay below models.MaxAmount. The date is stored as given.
func (s *transactionService) CreateTransaction(
	ctx context.Context,
	amount decimal.Decimal,
	date string,
	description string,
	category models.Category,
) (*models.Transaction, error) {
	category = models.NormalizeCategory(category)
	if !category.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unknown category: "+string(category))
	}

	amount, ok := models.NormalizeAmount(amount)
	if !ok {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Amount out of range")
	}

	return s.store.Create(ctx, &models.Transaction{
		Amount:      amount,
		Date:        date,
		Description: description,
		Category:    category,
	})
}

// ListTransactions returns the full snapshot, newest first.
func (s *transactionService) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return s.store.List(ctx)
}

// DeleteTransaction removes a transaction. Deleting an id that does not
// exist succeeds.
func (s *transactionService) DeleteTransaction(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.ErrMissingID
	}
	return s.store.DeleteByID(ctx, id)
}
