package services

import (
	"context"

	"github.com/shopspring/decimal"

	"finboard/internal/aggregate"
	"finboard/internal/models"
)

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(ctx context.Context, amount decimal.Decimal, date, description string, category models.Category) (*models.Transaction, error)
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
}

// DashboardServicer builds the aggregated dashboard view.
type DashboardServicer interface {
	GetDashboard(ctx context.Context, budget models.Budget) (*Dashboard, error)
}

// Dashboard is a fetched snapshot together with everything derived from it.
type Dashboard struct {
	Summary      aggregate.Summary    `json:"summary"`
	Transactions []models.Transaction `json:"transactions"`
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
