package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"

	"finboard/internal/models"
)

func tx(amount string, category models.Category, date string) models.Transaction {
	return models.Transaction{
		Amount:      decimal.RequireFromString(amount),
		Date:        date,
		Description: string(category) + " " + amount,
		Category:    category,
	}
}

func assertDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func sampleSnapshot() []models.Transaction {
	return []models.Transaction{
		tx("30", models.CategoryTransport, "2024-03-02"),
		tx("-12.5", models.CategoryShopping, "2024-01-20"),
		tx("50", models.CategoryFood, "2024-03-01"),
		tx("8", "", "not a date"),
		tx("100", models.CategoryFood, "2023-12-31"),
		tx("19.99", models.CategoryEntertainment, "2024-01-05T18:30:00Z"),
	}
}

func TestScenario_FoodAndTransport(t *testing.T) {
	txs := []models.Transaction{
		tx("100", models.CategoryFood, "2024-02-01"),
		tx("50", models.CategoryFood, "2024-02-03"),
		tx("30", models.CategoryTransport, "2024-02-04"),
	}

	totals := CategoryTotals(txs)
	if len(totals) != 2 {
		t.Fatalf("expected 2 categories, got %v", totals)
	}
	assertDecimal(t, totals[models.CategoryFood], "150")
	assertDecimal(t, totals[models.CategoryTransport], "30")
	assertDecimal(t, TotalSpent(txs), "180")

	top, ok := TopCategory(totals)
	if !ok || top != models.CategoryFood {
		t.Errorf("expected top category Food, got %q (ok=%v)", top, ok)
	}
}

func TestEmptySnapshot(t *testing.T) {
	s := Build(nil, nil)

	assertDecimal(t, s.TotalSpent, "0")
	if s.TopCategory != "" {
		t.Errorf("expected empty top category, got %q", s.TopCategory)
	}
	if len(s.Monthly) != 0 || s.Monthly == nil {
		t.Errorf("expected empty non-nil monthly series, got %#v", s.Monthly)
	}
	if len(s.Recent) != 0 || s.Recent == nil {
		t.Errorf("expected empty non-nil recent list, got %#v", s.Recent)
	}
	if len(s.CategoryTotals) != 0 {
		t.Errorf("expected no category totals, got %v", s.CategoryTotals)
	}
	if len(s.Budget) != len(models.Categories) {
		t.Errorf("expected %d budget lines, got %d", len(models.Categories), len(s.Budget))
	}
	if _, ok := TopCategory(CategoryTotals(nil)); ok {
		t.Error("expected no top category for empty input")
	}
}

func TestSumProperties(t *testing.T) {
	snapshots := map[string][]models.Transaction{
		"sample": sampleSnapshot(),
		"single": {tx("7.25", models.CategoryUtilities, "2024-06-30")},
		"refund": {tx("40", models.CategoryFood, "2024-01-01"), tx("-40", models.CategoryFood, "2024-01-02")},
	}

	for name, txs := range snapshots {
		t.Run(name, func(t *testing.T) {
			total := TotalSpent(txs)

			monthly := decimal.Zero
			for _, m := range MonthlyTotals(txs) {
				monthly = monthly.Add(m.Total)
			}
			if !monthly.Equal(total) {
				t.Errorf("monthly sum %s != total %s", monthly, total)
			}

			byCategory := decimal.Zero
			for _, v := range CategoryTotals(txs) {
				byCategory = byCategory.Add(v)
			}
			if !byCategory.Equal(total) {
				t.Errorf("category sum %s != total %s", byCategory, total)
			}
		})
	}
}

func TestTotalSpent_NegativeReduces(t *testing.T) {
	txs := []models.Transaction{
		tx("100", models.CategoryShopping, "2024-01-01"),
		tx("-25", models.CategoryShopping, "2024-01-02"),
	}
	assertDecimal(t, TotalSpent(txs), "75")
}

func TestCategoryTotals_EmptyCategoryIsOther(t *testing.T) {
	totals := CategoryTotals([]models.Transaction{
		tx("5", "", "2024-01-01"),
		tx("6", models.CategoryOther, "2024-01-01"),
	})
	if len(totals) != 1 {
		t.Fatalf("expected a single Other bucket, got %v", totals)
	}
	assertDecimal(t, totals[models.CategoryOther], "11")
}

func TestMonthlyTotals(t *testing.T) {
	months := MonthlyTotals(sampleSnapshot())

	want := []struct {
		label string
		total string
	}{
		{"Dec 2023", "100"},
		{"Jan 2024", "7.49"},
		{"Mar 2024", "80"},
		{InvalidMonth, "8"},
	}
	if len(months) != len(want) {
		t.Fatalf("expected %d months, got %+v", len(want), months)
	}
	for i, w := range want {
		if months[i].Month != w.label {
			t.Errorf("position %d: expected %s, got %s", i, w.label, months[i].Month)
		}
		assertDecimal(t, months[i].Total, w.total)
	}
}

func TestMonthlyTotalsInOrder(t *testing.T) {
	months := MonthlyTotalsInOrder(sampleSnapshot())

	wantOrder := []string{"Mar 2024", "Jan 2024", InvalidMonth, "Dec 2023"}
	if len(months) != len(wantOrder) {
		t.Fatalf("expected %d months, got %+v", len(wantOrder), months)
	}
	for i, label := range wantOrder {
		if months[i].Month != label {
			t.Errorf("position %d: expected %s, got %s", i, label, months[i].Month)
		}
	}
}

func TestTopCategory(t *testing.T) {
	t.Run("picks the largest total", func(t *testing.T) {
		top, ok := TopCategory(CategoryTotals(sampleSnapshot()))
		if !ok || top != models.CategoryFood {
			t.Errorf("expected Food, got %q", top)
		}
	})

	t.Run("tie resolves to one of the tied categories", func(t *testing.T) {
		totals := CategoryTotals([]models.Transaction{
			tx("20", models.CategoryShopping, "2024-01-01"),
			tx("20", models.CategoryUtilities, "2024-01-01"),
			tx("5", models.CategoryFood, "2024-01-01"),
		})
		top, ok := TopCategory(totals)
		if !ok {
			t.Fatal("expected a top category")
		}
		if top != models.CategoryShopping && top != models.CategoryUtilities {
			t.Errorf("expected one of the tied categories, got %q", top)
		}
	})
}

func TestRankCategories(t *testing.T) {
	ranked := RankCategories(CategoryTotals(sampleSnapshot()))

	for i := 1; i < len(ranked); i++ {
		if ranked[i-1].Total.LessThan(ranked[i].Total) {
			t.Errorf("ranking not descending at %d: %s < %s", i, ranked[i-1].Total, ranked[i].Total)
		}
	}
	if ranked[len(ranked)-1].Category != models.CategoryShopping {
		t.Errorf("expected the refund-only category last, got %q", ranked[len(ranked)-1].Category)
	}
}

func TestCompareBudgets(t *testing.T) {
	t.Run("always lists the six categories", func(t *testing.T) {
		inputs := [][]models.Transaction{nil, sampleSnapshot(), {tx("1", models.CategoryFood, "")}}
		for _, txs := range inputs {
			lines := CompareBudgets(nil, CategoryTotals(txs))
			if len(lines) != 6 {
				t.Fatalf("expected 6 lines, got %d", len(lines))
			}
			for i, c := range models.Categories {
				if lines[i].Category != c {
					t.Errorf("line %d: expected %s, got %s", i, c, lines[i].Category)
				}
			}
		}
	})

	t.Run("fills budget and actual with zero defaults", func(t *testing.T) {
		budget := models.NewBudget()
		budget.Set(models.CategoryFood, decimal.NewFromInt(120))
		budget.Set(models.CategoryUtilities, decimal.NewFromInt(50))

		lines := CompareBudgets(budget, CategoryTotals(sampleSnapshot()))
		byCategory := make(map[models.Category]BudgetLine)
		for _, l := range lines {
			byCategory[l.Category] = l
		}

		food := byCategory[models.CategoryFood]
		assertDecimal(t, food.Budget, "120")
		assertDecimal(t, food.Actual, "150")
		assertDecimal(t, food.Remaining, "-30")
		if !food.OverBudget {
			t.Error("expected Food to be over budget")
		}
		if food.Percentage != 125 {
			t.Errorf("expected 125%%, got %v", food.Percentage)
		}

		utilities := byCategory[models.CategoryUtilities]
		assertDecimal(t, utilities.Actual, "0")
		if utilities.OverBudget || utilities.Percentage != 0 {
			t.Errorf("expected untouched utilities budget, got %+v", utilities)
		}

		transport := byCategory[models.CategoryTransport]
		assertDecimal(t, transport.Budget, "0")
		assertDecimal(t, transport.Actual, "30")
		if transport.OverBudget {
			t.Error("a category without a budget is never over budget")
		}
	})
}

func TestRecent(t *testing.T) {
	txs := make([]models.Transaction, 0, 7)
	for i := 0; i < 7; i++ {
		txs = append(txs, tx(decimal.NewFromInt(int64(i)).String(), models.CategoryFood, "2024-01-01"))
	}

	recent := Recent(txs, RecentLimit)
	if len(recent) != 5 {
		t.Fatalf("expected 5 recent entries, got %d", len(recent))
	}
	for i := range recent {
		if recent[i].Description != txs[i].Description {
			t.Errorf("position %d: expected %q, got %q", i, txs[i].Description, recent[i].Description)
		}
	}

	if got := Recent(txs[:2], RecentLimit); len(got) != 2 {
		t.Errorf("expected 2 entries for a short snapshot, got %d", len(got))
	}

	recent[0].Description = "changed"
	if txs[0].Description == "changed" {
		t.Error("Recent should not alias the snapshot")
	}
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in    string
		label string
		ok    bool
	}{
		{"2024-03-15", "Mar 2024", true},
		{"2024-03-15T23:30:00Z", "Mar 2024", true},
		{"03/15/2024", "Mar 2024", true},
		{"March 15, 2024", "Mar 2024", true},
		{"  2024-11-01 ", "Nov 2024", true},
		{"", "", false},
		{"yesterday", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseDate(tc.in)
		if ok != tc.ok {
			t.Errorf("ParseDate(%q) ok = %v, want %v", tc.in, ok, tc.ok)
			continue
		}
		if ok && MonthLabel(got) != tc.label {
			t.Errorf("ParseDate(%q) label = %s, want %s", tc.in, MonthLabel(got), tc.label)
		}
	}
}
