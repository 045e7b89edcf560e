package services

import (
	"context"

	"finboard/internal/aggregate"
	"finboard/internal/models"
)

type dashboardService struct {
	transactions TransactionServicer
}

// NewDashboardService creates a DashboardServicer that refetches the full
// snapshot on every call.
func NewDashboardService(transactions TransactionServicer) DashboardServicer {
	return &dashboardService{transactions: transactions}
}

func (s *dashboardService) GetDashboard(ctx context.Context, budget models.Budget) (*Dashboard, error) {
	txs, err := s.transactions.ListTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return &Dashboard{
		Summary:      aggregate.Build(txs, budget),
		Transactions: txs,
	}, nil
}
