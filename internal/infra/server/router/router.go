// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finly/backend/internal/integration/entrypoint/controller"
	"github.com/finly/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	walletController      *controller.WalletController
	stockController       *controller.StockController
	assetController       *controller.AssetController
	noteController        *controller.NoteController
	budgetPlanController  *controller.BudgetPlanController
	marketDataController  *controller.MarketDataController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	walletController *controller.WalletController,
	stockController *controller.StockController,
	assetController *controller.AssetController,
	noteController *controller.NoteController,
	budgetPlanController *controller.BudgetPlanController,
	marketDataController *controller.MarketDataController,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		walletController:      walletController,
		stockController:       stockController,
		assetController:       assetController,
		noteController:        noteController,
		budgetPlanController:  budgetPlanController,
		marketDataController:  marketDataController,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	r.engine = gin.Default()
	r.engine.Use(middleware.RequestID())

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		if r.transactionController != nil {
			transactions := v1.Group("/transactions")
			{
				transactions.GET("", r.transactionController.List)
				transactions.POST("", r.transactionController.Create)
				transactions.GET("/summary/totals", r.transactionController.Totals)
				transactions.GET("/:id", r.transactionController.Get)
				transactions.PUT("/:id", r.transactionController.Update)
				transactions.DELETE("/:id", r.transactionController.Delete)
			}
		}

		if r.walletController != nil {
			wallets := v1.Group("/wallets")
			{
				wallets.GET("", r.walletController.List)
				wallets.POST("", r.walletController.Create)
				wallets.GET("/summary/totals", r.walletController.Totals)
				wallets.GET("/:id", r.walletController.Get)
				wallets.PUT("/:id", r.walletController.Update)
				wallets.DELETE("/:id", r.walletController.Delete)
			}

			v1.POST("/transfers", r.walletController.Transfer)
		}

		if r.stockController != nil {
			stocks := v1.Group("/stocks")
			{
				stocks.GET("", r.stockController.List)
				stocks.POST("", r.stockController.Create)
				stocks.GET("/holdings", r.stockController.Holdings)
				stocks.GET("/:id", r.stockController.Get)
				stocks.PUT("/:id", r.stockController.Update)
				stocks.DELETE("/:id", r.stockController.Delete)
			}
		}

		if r.assetController != nil {
			assets := v1.Group("/assets")
			{
				assets.GET("", r.assetController.List)
				assets.POST("", r.assetController.Create)
				assets.GET("/summary/totals", r.assetController.Totals)
				assets.PUT("/:id", r.assetController.Update)
				assets.DELETE("/:id", r.assetController.Delete)
			}
		}

		if r.noteController != nil {
			notes := v1.Group("/notes")
			{
				notes.GET("", r.noteController.List)
				notes.POST("", r.noteController.Create)
				notes.PUT("/:id", r.noteController.Update)
				notes.DELETE("/:id", r.noteController.Delete)
			}
		}

		if r.budgetPlanController != nil {
			budgetPlans := v1.Group("/budget-plans")
			{
				budgetPlans.GET("", r.budgetPlanController.List)
				budgetPlans.POST("", r.budgetPlanController.Create)
				budgetPlans.PUT("/:id", r.budgetPlanController.Update)
				budgetPlans.DELETE("/:id", r.budgetPlanController.Delete)
			}
		}

		if r.marketDataController != nil {
			marketData := v1.Group("/market-data")
			{
				marketData.GET("", r.marketDataController.Summary)
				marketData.GET("/all", r.marketDataController.Overview)
				marketData.GET("/gold", r.marketDataController.Gold)
				marketData.GET("/crypto/:symbol", r.marketDataController.Crypto)
				marketData.GET("/stock/:symbol", r.marketDataController.Stock)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
