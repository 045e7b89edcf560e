package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "finboard/internal/errors"
	"finboard/internal/models"
	"finboard/internal/services"
	"finboard/internal/session"
)

// notAvailable is shown in summary cards that have nothing to display.
const notAvailable = "N/A"

// DashboardHandler serves the dashboard page, its JSON mirror, and the
// transaction forms embedded in it.
type DashboardHandler struct {
	dashboardService   services.DashboardServicer
	transactionService services.TransactionServicer
	budgets            *session.Budgets
	auditService       services.AuditServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(
	dashboardService services.DashboardServicer,
	transactionService services.TransactionServicer,
	budgets *session.Budgets,
	auditService services.AuditServicer,
) *DashboardHandler {
	return &DashboardHandler{
		dashboardService:   dashboardService,
		transactionService: transactionService,
		budgets:            budgets,
		auditService:       auditService,
	}
}

// TransactionForm holds the raw values of the new-transaction form.
type TransactionForm struct {
	Amount      string `form:"amount"`
	Date        string `form:"date"`
	Description string `form:"description"`
	Category    string `form:"category"`
}

func (f TransactionForm) complete() bool {
	for _, v := range []string{f.Amount, f.Date, f.Description, f.Category} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// DashboardView is the data passed to the dashboard template.
type DashboardView struct {
	*services.Dashboard
	TopCategory string
	RecentEntry string
	Categories  []models.Category
	Budget      models.Budget
	Form        TransactionForm
	FormError   string
}

func newDashboardView(d *services.Dashboard, budget models.Budget) DashboardView {
	view := DashboardView{
		Dashboard:   d,
		TopCategory: notAvailable,
		RecentEntry: notAvailable,
		Categories:  models.Categories,
		Budget:      budget,
	}
	if d.Summary.TopCategory != "" {
		view.TopCategory = string(d.Summary.TopCategory)
	}
	if len(d.Summary.Recent) > 0 {
		latest := d.Summary.Recent[0]
		view.RecentEntry = fmt.Sprintf("%s (%s)", latest.Description, latest.Category)
	}
	return view
}

// GetDashboard handles the retrieval of the aggregated dashboard
// @Summary     Get dashboard
// @Description Get every transaction plus the summary computed against the session's budgets
// @Tags        dashboard
// @Produce     json
// @Success     200 {object} services.Dashboard "Dashboard"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), h.budgets.Get(sessionID))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}

// Show renders the dashboard page.
func (h *DashboardHandler) Show(c *gin.Context) {
	h.render(c, http.StatusOK, TransactionForm{}, "")
}

// SubmitTransactionForm creates a transaction from the dashboard form. An
// incomplete or rejected form re-renders the page with the error; success
// redirects so the page is fetched again.
func (h *DashboardHandler) SubmitTransactionForm(c *gin.Context) {
	var form TransactionForm
	if err := c.ShouldBind(&form); err != nil {
		h.render(c, http.StatusBadRequest, form, apperrors.ErrInvalidInput.Message)
		return
	}
	if !form.complete() {
		h.render(c, http.StatusBadRequest, form, apperrors.ErrMissingFields.Message)
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(form.Amount))
	if err != nil {
		h.render(c, http.StatusBadRequest, form, "Amount must be a number")
		return
	}

	transaction, err := h.transactionService.CreateTransaction(
		c.Request.Context(),
		amount,
		strings.TrimSpace(form.Date),
		strings.TrimSpace(form.Description),
		models.Category(form.Category),
	)
	if err != nil {
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) && appErr.StatusCode < http.StatusInternalServerError {
			h.render(c, appErr.StatusCode, form, appErr.Message)
			return
		}
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{"amount": transaction.Amount.String(), "category": transaction.Category})

	c.Redirect(http.StatusSeeOther, "/")
}

// SubmitDeleteForm deletes a transaction from the dashboard list and
// redirects back to the dashboard.
func (h *DashboardHandler) SubmitDeleteForm(c *gin.Context) {
	id := c.Param("id")
	if err := h.transactionService.DeleteTransaction(c.Request.Context(), id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_TRANSACTION", "transaction", id, c.ClientIP(), nil)

	c.Redirect(http.StatusSeeOther, "/")
}

func (h *DashboardHandler) render(c *gin.Context, status int, form TransactionForm, formErr string) {
	sessionID, err := getSessionID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	budget := h.budgets.Get(sessionID)
	dashboard, err := h.dashboardService.GetDashboard(c.Request.Context(), budget)
	if err != nil {
		respondWithError(c, err)
		return
	}

	view := newDashboardView(dashboard, budget)
	view.Form = form
	view.FormError = formErr
	c.HTML(status, "dashboard.html", view)
}
