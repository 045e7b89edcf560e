package web

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"finboard/internal/models"
)

func TestTemplates(t *testing.T) {
	tmpl := Templates()
	if tmpl.Lookup("dashboard.html") == nil {
		t.Fatal("expected dashboard.html to be parsed")
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"180", "180.00"},
		{"12.5", "12.50"},
		{"-20.125", "-20.13"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := formatAmount(decimal.RequireFromString(tt.in)); got != tt.want {
				t.Errorf("formatAmount(%s) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBudgetValue(t *testing.T) {
	fn := Funcs["budgetValue"].(func(models.Budget, models.Category) string)
	b := models.NewBudget()
	b.Set(models.CategoryFood, decimal.NewFromInt(200))

	if got := fn(b, models.CategoryFood); got != "200" {
		t.Errorf("expected 200, got %q", got)
	}
	if got := fn(b, models.CategoryOther); got != "" {
		t.Errorf("expected blank for unset budget, got %q", got)
	}
	if strings.Contains(fn(b, models.CategoryTransport), "0") {
		t.Error("zero budgets should render blank")
	}
}
