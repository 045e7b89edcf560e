package store

import (
	"context"

	"gorm.io/gorm"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/uuid"
)

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a TransactionStore backed by a SQL database.
func NewGormStore(db *gorm.DB) TransactionStore {
	return &gormStore{db: db}
}

func (s *gormStore) Create(ctx context.Context, tx *models.Transaction) (*models.Transaction, error) {
	rec := prepare(tx)
	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return &rec, nil
}

func (s *gormStore) List(ctx context.Context) ([]models.Transaction, error) {
	transactions := []models.Transaction{}
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return transactions, nil
}

func (s *gormStore) DeleteByID(ctx context.Context, id string) error {
	// Ids are UUIDs; anything else cannot match a row.
	if !uuid.IsValid(id) {
		return nil
	}
	if err := s.db.WithContext(ctx).Delete(&models.Transaction{}, "id = ?", id).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrStoreUnavailable, err)
	}
	return nil
}
