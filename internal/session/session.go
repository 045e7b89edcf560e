// Package session keeps per-visitor dashboard state in memory. Nothing here
// is persisted: entries expire after a TTL, the oldest are evicted when the
// cache is full, and everything is lost on restart.
package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"finboard/internal/models"
)

// Budgets holds one budget per session id.
type Budgets struct {
	cache *expirable.LRU[string, models.Budget]
}

// NewBudgets creates a budget cache holding at most size sessions, each
// living for ttl after its last write.
func NewBudgets(size int, ttl time.Duration) *Budgets {
	return &Budgets{cache: expirable.NewLRU[string, models.Budget](size, nil, ttl)}
}

// Get returns a copy of the session's budget, or an empty budget for a new
// or expired session.
func (b *Budgets) Get(sessionID string) models.Budget {
	if budget, ok := b.cache.Get(sessionID); ok {
		return budget.Clone()
	}
	return models.NewBudget()
}

// Set replaces the session's budget.
func (b *Budgets) Set(sessionID string, budget models.Budget) {
	b.cache.Add(sessionID, budget.Clone())
}

// Update applies fn to the session's current budget and stores the result.
func (b *Budgets) Update(sessionID string, fn func(models.Budget)) models.Budget {
	budget := b.Get(sessionID)
	fn(budget)
	b.Set(sessionID, budget)
	return budget
}

// Len reports how many sessions currently hold a budget.
func (b *Budgets) Len() int {
	return b.cache.Len()
}
