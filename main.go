package main

import (
	"log"
	"os"

	"owner-wallet-service/internal/database"
	"owner-wallet-service/internal/handlers"
	"owner-wallet-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found in current directory, trying parent")
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using system environment variables")
		}
	}

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}

	// Initialize Database
	database.Connect()
	database.Migrate()
	db := database.DB

	// Redis/Asynq Client
	redisAddr := os.Getenv("REDIS_URL")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: redisAddr})
	defer asynqClient.Close()

	// Init Services
	walletService := services.NewWalletService(db)
	configService := services.NewConfigService(db)
	chargeService := services.NewChargeService(db, walletService, configService)
	sponsorService := services.NewSponsorService(db, walletService)
	orderService := services.NewOrderService(db)
	userService := services.NewUserService(db, asynqClient)
	bonusService := services.NewBonusService(db, walletService)
	reconciliationService := services.NewReconciliationService(db)

	// Handlers
	walletHandler := handlers.NewWalletHandler(walletService)
	chargeHandler := handlers.NewChargeHandler(chargeService)
	sponsorHandler := handlers.NewSponsorHandler(sponsorService)
	orderHandler := handlers.NewOrderHandler(orderService)
	userHandler := handlers.NewUserHandler(userService)
	bonusHandler := handlers.NewBonusHandler(bonusService)
	configHandler := handlers.NewConfigHandler(configService)

	// Initialize Gin
	r := gin.Default()

	// Ping endpoint
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Welcome To Owner Wallet service",
		})
	})

	// Wallet Routes
	r.GET("/wallets/:ownerId", walletHandler.GetWallet)
	r.GET("/wallets/:ownerId/transactions", walletHandler.ListTransactions)

	// Charge Routes
	r.POST("/charges", chargeHandler.RequestCharge)
	r.POST("/charges/:id/approve", chargeHandler.Approve)
	r.POST("/charges/:id/reject", chargeHandler.Reject)
	r.GET("/charges", chargeHandler.ListCharges)
	r.GET("/charges/pending/count", chargeHandler.PendingCount)

	// Sponsor Routes
	r.GET("/sponsor/plans", sponsorHandler.ListPlans)
	r.POST("/stores/:id/sponsor/apply", sponsorHandler.Apply)
	r.GET("/sponsor/applications", sponsorHandler.ListApplications)
	r.POST("/sponsor/applications/:id/approve", sponsorHandler.ApproveApplication)
	r.POST("/sponsor/applications/:id/reject", sponsorHandler.RejectApplication)
	r.POST("/stores/:id/sponsor", sponsorHandler.PurchaseLevel)
	r.PUT("/stores/:id/sponsor/bonus", sponsorHandler.UpdateBonusSettings)
	r.DELETE("/stores/:id/sponsor", sponsorHandler.Deactivate)
	r.GET("/sponsors", sponsorHandler.ListSponsors)
	r.GET("/sponsor/payments", sponsorHandler.ListPayments)

	// Visit Bonus Routes
	r.PUT("/stores/:id/bonus", bonusHandler.UpdateSettings)
	r.POST("/stores/:id/bonus/pay", bonusHandler.PayVisitBonus)
	r.GET("/stores/:id/bonus/payments", bonusHandler.ListPayments)

	// Order Routes
	r.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	r.GET("/orders", orderHandler.ListOrders)
	r.GET("/orders/stats", orderHandler.Stats)

	// User Routes
	r.POST("/users/:id/points", userHandler.AdjustPoints)
	r.PUT("/users/:id/blocked", userHandler.SetBlocked)
	r.POST("/users/:id/notify", userHandler.Notify)
	r.GET("/users", userHandler.ListUsers)
	r.GET("/users/:id/points/history", userHandler.PointHistory)

	// Config Routes
	r.GET("/config", configHandler.Get)
	r.PUT("/config", configHandler.Update)

	// Start Cron Schedulers
	reconciliationService.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("HTTP Server starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
