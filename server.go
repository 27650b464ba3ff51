package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/shamsoft/pos_backend/config"
	"github.com/shamsoft/pos_backend/handlers"
	"github.com/shamsoft/pos_backend/middlewares"
	"github.com/shamsoft/pos_backend/models"
)

const defaultPort = "8472"

func main() {
	logger := config.GetLogger()

	config.ConnectDatabase()
	models.MigrateTable()
	models.SeedDefaults()

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	registerRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.WithField("port", port).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}
}

func registerRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", handlers.Login)
		auth.POST("/register", handlers.Register)
		auth.GET("/has-users", handlers.HasUsers)
	}

	api := r.Group("/api", middlewares.AuthRequired())
	{
		api.POST("/invoices", handlers.ProcessInvoice)
		api.PUT("/invoices/:id", handlers.EditInvoice)
		api.GET("/invoices", handlers.GetInvoices)
		api.GET("/invoices/next-number", handlers.GetNextInvoiceNumber)
		api.GET("/invoices/:id", handlers.GetInvoice)

		api.POST("/products", handlers.CreateProduct)
		api.PUT("/products/:id", handlers.UpdateProduct)
		api.PATCH("/products/:id/stock", handlers.UpdateProductStock)
		api.DELETE("/products/:id", handlers.DeleteProduct)
		api.GET("/products", handlers.GetProducts)
		api.GET("/products/:id", handlers.GetProduct)

		api.POST("/categories", handlers.CreateCategory)
		api.PUT("/categories/:id", handlers.UpdateCategory)
		api.DELETE("/categories/:id", handlers.DeleteCategory)
		api.GET("/categories", handlers.GetCategories)

		api.POST("/customers", handlers.CreateCustomer)
		api.PUT("/customers/:id", handlers.UpdateCustomer)
		api.DELETE("/customers/:id", handlers.DeleteCustomer)
		api.GET("/customers", handlers.GetCustomers)

		api.POST("/suppliers", handlers.CreateSupplier)
		api.PUT("/suppliers/:id", handlers.UpdateSupplier)
		api.DELETE("/suppliers/:id", handlers.DeleteSupplier)
		api.GET("/suppliers", handlers.GetSuppliers)

		api.POST("/payments", handlers.RecordPayment)

		api.POST("/cash-registers", handlers.CreateCashRegister)
		api.PUT("/cash-registers/:id", handlers.UpdateCashRegister)
		api.DELETE("/cash-registers/:id", handlers.DeleteCashRegister)
		api.GET("/cash-registers", handlers.GetCashRegisters)
		api.GET("/cash-transactions", handlers.GetCashTransactions)
		api.POST("/transfers", handlers.TransferFunds)
		api.POST("/movements", handlers.RecordMovement)

		api.POST("/expense-categories", handlers.CreateExpenseCategory)
		api.GET("/expense-categories", handlers.GetExpenseCategories)
		api.POST("/expenses", handlers.RecordExpense)
		api.GET("/expenses", handlers.GetExpenses)

		api.GET("/settings/exchange-rates", handlers.GetExchangeRates)
		api.PUT("/settings/exchange-rates", handlers.SetExchangeRates)
		api.GET("/settings/company-info", handlers.GetCompanyInfo)
		api.PUT("/settings/company-info", handlers.SetCompanyInfo)
		api.GET("/settings/printer", handlers.GetPrinterSettings)
		api.PUT("/settings/printer", handlers.SetPrinterSettings)
		api.GET("/settings/setup", handlers.GetSetupStatus)
		api.POST("/settings/setup/complete", handlers.CompleteSetup)

		api.GET("/reports/profit-and-loss", handlers.GetProfitAndLoss)
		api.GET("/reports/profit-and-loss/excel", handlers.ExportProfitAndLossExcel)
		api.GET("/reports/daily-cash-flow", handlers.GetDailyCashFlow)
		api.GET("/reports/product-movement/:id", handlers.GetProductMovement)
		api.GET("/reports/inventory-valuation", handlers.GetInventoryValuation)
		api.GET("/reports/inventory-valuation/excel", handlers.ExportInventoryValuationExcel)
		api.GET("/reports/best-sellers", handlers.GetBestSellers)

		admin := api.Group("", middlewares.AdminRequired())
		{
			admin.GET("/backup", handlers.ExportBackup)
			admin.POST("/backup/restore", handlers.RestoreBackup)
			admin.POST("/backup/restore-merge", handlers.RestoreMergeBackup)
		}
	}
}
