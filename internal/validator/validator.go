// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"finboard/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("transaction_category", validateTransactionCategory)
	}
}

// validateTransactionCategory accepts the fixed categories. Blank values pass
// so the store can default them to Other.
func validateTransactionCategory(fl validator.FieldLevel) bool {
	c := models.NormalizeCategory(models.Category(fl.Field().String()))
	return c.IsValid()
}
