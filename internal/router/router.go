// Package router wires middleware, handlers, and routes into a Gin engine.
package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "finboard/internal/docs" // Import swagger docs
	"finboard/internal/handlers"
	"finboard/internal/middleware"
	"finboard/internal/services"
	"finboard/internal/session"
	"finboard/web"
)

// Deps are the long-lived collaborators the routes are built from.
type Deps struct {
	Transactions services.TransactionServicer
	Dashboard    services.DashboardServicer
	Audit        services.AuditServicer
	Budgets      *session.Budgets
	SessionTTL   time.Duration
}

// New builds the Gin engine serving the JSON API, the dashboard pages, and
// the Swagger UI.
func New(deps Deps) *gin.Engine {
	transactionHandler := handlers.NewTransactionHandler(deps.Transactions, deps.Audit)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard, deps.Transactions, deps.Budgets, deps.Audit)
	budgetHandler := handlers.NewBudgetHandler(deps.Budgets, deps.Audit)

	router := gin.New()
	router.SetHTMLTemplate(web.Templates())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	withSession := router.Group("/", middleware.Session(int(deps.SessionTTL.Seconds())))

	api := router.Group("/api")

	// Transaction routes
	transactions := api.Group("/transactions")
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.DELETE("/", transactionHandler.DeleteTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Session-scoped routes
	sessionAPI := withSession.Group("/api")
	sessionAPI.GET("/dashboard", dashboardHandler.GetDashboard)
	sessionAPI.GET("/budgets", budgetHandler.GetBudgets)
	sessionAPI.PUT("/budgets", budgetHandler.UpdateBudgets)

	// Dashboard pages
	withSession.GET("/", dashboardHandler.Show)
	withSession.POST("/transactions", dashboardHandler.SubmitTransactionForm)
	withSession.POST("/transactions/:id/delete", dashboardHandler.SubmitDeleteForm)
	withSession.POST("/budgets", budgetHandler.SubmitBudgetForm)

	return router
}
