package main

import (
	"fmt"
	"net/http"
	"os"

	"expenseflow/internal/config"
	"expenseflow/internal/database"
	"expenseflow/internal/handlers"
	"expenseflow/internal/logger"
	"expenseflow/internal/middleware"
	"expenseflow/internal/services"
	"expenseflow/internal/store"
	"expenseflow/internal/validator"

	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Load the ledger snapshot once at startup; the service owns it for the
	// life of the process.
	snapshotStore := store.New(dbManager.DB(), appConfig.SnapshotKey)
	snapshot, err := snapshotStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load ledger snapshot: %w", err)
	}

	ledgerService := services.NewLedgerService(snapshot, snapshotStore)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(ledgerService)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)
	settingsHandler := handlers.NewSettingsHandler(ledgerService)
	insightsHandler := handlers.NewInsightsHandler(ledgerService)
	exportHandler := handlers.NewExportHandler(ledgerService)

	// Register custom request validators
	validator.Register()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Account and card routes
	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)

	cards := v1.Group("/cards")
	cards.POST("", accountHandler.CreateCard)
	cards.GET("", accountHandler.GetCards)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/recent", transactionHandler.GetRecentTransactions)

	// Settings routes
	settings := v1.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)
	settings.PUT("/theme", settingsHandler.UpdateTheme)

	// Insight routes
	insights := v1.Group("/insights")
	insights.GET("/summary", insightsHandler.GetSummary)
	insights.GET("/categories", insightsHandler.GetCategoryBreakdown)
	insights.GET("/trend", insightsHandler.GetMonthlyTrend)

	// Snapshot export
	v1.GET("/export", exportHandler.Export)

	log.Infof("Starting ExpenseFlow backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
