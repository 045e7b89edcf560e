// Package web holds the server-rendered dashboard templates.
package web

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"

	"finboard/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Funcs are the helpers available inside every template.
var Funcs = template.FuncMap{
	"amount": formatAmount,
	"budgetValue": func(b models.Budget, c models.Category) string {
		if amount := b.Amount(c); !amount.IsZero() {
			return amount.String()
		}
		return ""
	},
}

// Templates parses the embedded templates. It panics if they are malformed,
// which can only happen at build time.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(Funcs).ParseFS(templateFS, "templates/*.html"))
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
