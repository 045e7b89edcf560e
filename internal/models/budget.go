package models

import "github.com/shopspring/decimal"

// Budget maps a category to its budgeted amount for a single dashboard
// session. Budgets are never persisted.
type Budget map[Category]decimal.Decimal

// NewBudget returns an empty budget.
func NewBudget() Budget {
	return make(Budget, len(Categories))
}

// Set records the budget for c. Negative amounts are clamped to zero.
func (b Budget) Set(c Category, amount decimal.Decimal) {
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	b[c] = amount
}

// Amount returns the budget for c, or zero when none was set.
func (b Budget) Amount(c Category) decimal.Decimal {
	if amount, ok := b[c]; ok {
		return amount
	}
	return decimal.Zero
}

// Clone returns an independent copy of b.
func (b Budget) Clone() Budget {
	out := make(Budget, len(b))
	for c, amount := range b {
		out[c] = amount
	}
	return out
}
