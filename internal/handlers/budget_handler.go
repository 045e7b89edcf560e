package handlers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
	"finboard/internal/session"
)

// BudgetHandler handles the per-session category budgets.
type BudgetHandler struct {
	budgets      *session.Budgets
	auditService services.AuditServicer
}

// NewBudgetHandler creates a new BudgetHandler.
func NewBudgetHandler(budgets *session.Budgets, auditService services.AuditServicer) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, auditService: auditService}
}

// BudgetResponse maps every category to its budgeted amount.
type BudgetResponse map[models.Category]decimal.Decimal

// UpdateBudgetsRequest maps category names to budgeted amounts. Categories
// left out keep their current value.
type UpdateBudgetsRequest map[models.Category]decimal.Decimal

func newBudgetResponse(b models.Budget) BudgetResponse {
	resp := make(BudgetResponse, len(models.Categories))
	for _, c := range models.Categories {
		resp[c] = b.Amount(c)
	}
	return resp
}

// GetBudgets handles the retrieval of the session's budgets
// @Summary     Get budgets
// @Description Get the budgeted amount for every category in the current session
// @Tags        budgets
// @Produce     json
// @Success     200 {object} map[string]number "Budgets by category"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /budgets [get]
func (h *BudgetHandler) GetBudgets(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newBudgetResponse(h.budgets.Get(sessionID)))
}

// UpdateBudgets handles changes to the session's budgets
// @Summary     Update budgets
// @Description Set budgeted amounts per category. Negative amounts are stored as 0.
// @Tags        budgets
// @Accept      json
// @Produce     json
// @Param       request body     map[string]number true "Budgets by category"
// @Success     200     {object} map[string]number "Budgets by category"
// @Failure     400     {object} ErrorResponse "Invalid input"
// @Failure     500     {object} ErrorResponse "Server error"
// @Router      /budgets [put]
func (h *BudgetHandler) UpdateBudgets(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateBudgetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}
	for category := range req {
		if !category.IsValid() {
			respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidCategory, "Unknown category: "+string(category)))
			return
		}
	}

	budget := h.budgets.Update(sessionID, func(b models.Budget) {
		for category, amount := range req {
			b.Set(category, amount)
		}
	})

	h.auditService.Log("UPDATE_BUDGETS", "budget", sessionID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, newBudgetResponse(budget))
}

// SubmitBudgetForm replaces the session's budgets from the dashboard form and
// redirects back to the dashboard. Blank, unparseable, and negative values
// become 0.
func (h *BudgetHandler) SubmitBudgetForm(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget := models.NewBudget()
	for _, category := range models.Categories {
		budget.Set(category, parseBudgetValue(c.PostForm(string(category))))
	}
	h.budgets.Set(sessionID, budget)

	h.auditService.Log("UPDATE_BUDGETS", "budget", sessionID, c.ClientIP(), nil)

	c.Redirect(http.StatusSeeOther, "/")
}

func parseBudgetValue(raw string) decimal.Decimal {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}
