// Package aggregate derives dashboard views from a snapshot of transactions.
// Every function is pure: it reads its arguments and returns new values.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"finboard/internal/models"
)

// RecentLimit is how many entries the dashboard shows as recent.
const RecentLimit = 5

// MonthTotal is the summed amount for one calendar month.
type MonthTotal struct {
	Month string          `json:"month"`
	Total decimal.Decimal `json:"total"`

	// sortKey is year*12+month, or -1 for unparseable dates.
	sortKey int
}

// CategoryTotal is the summed amount for one category.
type CategoryTotal struct {
	Category models.Category `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

// BudgetLine compares a category's budget with what was actually recorded.
type BudgetLine struct {
	Category   models.Category `json:"category"`
	Budget     decimal.Decimal `json:"budget"`
	Actual     decimal.Decimal `json:"actual"`
	Remaining  decimal.Decimal `json:"remaining"`
	Percentage float64         `json:"percentage"`
	OverBudget bool            `json:"over_budget"`
}

// Summary bundles every derived view the dashboard renders.
type Summary struct {
	TotalSpent     decimal.Decimal      `json:"total_spent"`
	TopCategory    models.Category      `json:"top_category"`
	Count          int                  `json:"count"`
	Monthly        []MonthTotal         `json:"monthly"`
	CategoryTotals []CategoryTotal      `json:"category_totals"`
	Budget         []BudgetLine         `json:"budget"`
	Recent         []models.Transaction `json:"recent"`
}

// Build computes the full summary for a newest-first snapshot. An empty
// snapshot yields zero totals, empty series, and an empty TopCategory.
func Build(txs []models.Transaction, budget models.Budget) Summary {
	totals := CategoryTotals(txs)
	top, _ := TopCategory(totals)
	return Summary{
		TotalSpent:     TotalSpent(txs),
		TopCategory:    top,
		Count:          len(txs),
		Monthly:        MonthlyTotals(txs),
		CategoryTotals: RankCategories(totals),
		Budget:         CompareBudgets(budget, totals),
		Recent:         Recent(txs, RecentLimit),
	}
}

// TotalSpent sums every amount. Negative amounts reduce the total.
func TotalSpent(txs []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}
	return total
}

// MonthlyTotals groups by the month of each transaction's date and returns
// the buckets in chronological order. Unparseable dates share one bucket,
// labelled InvalidMonth and placed last.
func MonthlyTotals(txs []models.Transaction) []MonthTotal {
	months := MonthlyTotalsInOrder(txs)
	sort.SliceStable(months, func(i, j int) bool {
		a, b := months[i].sortKey, months[j].sortKey
		if a < 0 || b < 0 {
			return b < 0 && a >= 0
		}
		return a < b
	})
	return months
}

// MonthlyTotalsInOrder groups like MonthlyTotals but keeps buckets in the
// order each month is first seen in txs.
func MonthlyTotalsInOrder(txs []models.Transaction) []MonthTotal {
	months := []MonthTotal{}
	index := make(map[string]int)

	for _, tx := range txs {
		label, key := InvalidMonth, -1
		if t, ok := ParseDate(tx.Date); ok {
			label, key = MonthLabel(t), t.Year()*12+int(t.Month())-1
		}

		i, seen := index[label]
		if !seen {
			i = len(months)
			index[label] = i
			months = append(months, MonthTotal{Month: label, Total: decimal.Zero, sortKey: key})
		}
		months[i].Total = months[i].Total.Add(tx.Amount)
	}
	return months
}

// CategoryTotals sums amounts per category, treating an empty category as Other.
func CategoryTotals(txs []models.Transaction) map[models.Category]decimal.Decimal {
	totals := make(map[models.Category]decimal.Decimal)
	for _, tx := range txs {
		c := models.NormalizeCategory(tx.Category)
		totals[c] = totals[c].Add(tx.Amount)
	}
	return totals
}

// RankCategories orders totals from largest to smallest. Equal totals keep
// the fixed category order; names outside it sort alphabetically after.
func RankCategories(totals map[models.Category]decimal.Decimal) []CategoryTotal {
	ranked := make([]CategoryTotal, 0, len(totals))
	for c, total := range totals {
		ranked = append(ranked, CategoryTotal{Category: c, Total: total})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if cmp := ranked[i].Total.Cmp(ranked[j].Total); cmp != 0 {
			return cmp > 0
		}
		ri, rj := ranked[i].Category.Rank(), ranked[j].Category.Rank()
		if ri != rj {
			return ri < rj
		}
		return ranked[i].Category < ranked[j].Category
	})
	return ranked
}

// TopCategory returns the category with the largest total. ok is false when
// totals is empty.
func TopCategory(totals map[models.Category]decimal.Decimal) (top models.Category, ok bool) {
	ranked := RankCategories(totals)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].Category, true
}

// CompareBudgets returns one line per fixed category, in display order,
// whether or not any transactions or budget exist for it.
func CompareBudgets(budget models.Budget, totals map[models.Category]decimal.Decimal) []BudgetLine {
	hundred := decimal.NewFromInt(100)
	lines := make([]BudgetLine, 0, len(models.Categories))

	for _, c := range models.Categories {
		planned := budget.Amount(c)
		actual, ok := totals[c]
		if !ok {
			actual = decimal.Zero
		}

		line := BudgetLine{
			Category:  c,
			Budget:    planned,
			Actual:    actual,
			Remaining: planned.Sub(actual),
		}
		if planned.IsPositive() {
			line.Percentage = actual.Div(planned).Mul(hundred).Round(2).InexactFloat64()
			line.OverBudget = actual.GreaterThan(planned)
		}
		lines = append(lines, line)
	}
	return lines
}

// Recent returns the first n transactions of a newest-first snapshot.
func Recent(txs []models.Transaction, n int) []models.Transaction {
	if n > len(txs) {
		n = len(txs)
	}
	if n < 0 {
		n = 0
	}
	out := make([]models.Transaction, n)
	copy(out, txs[:n])
	return out
}
