package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"

	"finboard/internal/models"
)

type categoryPayload struct {
	Category models.Category `validate:"transaction_category"`
}

func TestValidateTransactionCategory(t *testing.T) {
	v := validator.New()
	if err := v.RegisterValidation("transaction_category", validateTransactionCategory); err != nil {
		t.Fatalf("RegisterValidation: %v", err)
	}

	valid := []models.Category{"Food", "Transport", "Utilities", "Entertainment", "Shopping", "Other", "", " Food "}
	for _, c := range valid {
		if err := v.Struct(categoryPayload{Category: c}); err != nil {
			t.Errorf("expected %q to be accepted: %v", c, err)
		}
	}

	invalid := []models.Category{"Travel", "food", "OTHER"}
	for _, c := range invalid {
		if err := v.Struct(categoryPayload{Category: c}); err == nil {
			t.Errorf("expected %q to be rejected", c)
		}
	}
}
