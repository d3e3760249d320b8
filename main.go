package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/skandpro/insurcomm_backend/config"
	"github.com/skandpro/insurcomm_backend/controllers"
	"github.com/skandpro/insurcomm_backend/middleware"
	"github.com/skandpro/insurcomm_backend/repositories"
	"github.com/skandpro/insurcomm_backend/routes"
	"github.com/skandpro/insurcomm_backend/services"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis (optional, backs the rule-set cache)
	redisClient := config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()
	db := client.Database(config.DBName())

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "Insurcomm Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	// Initialize repositories
	dealerRules := repositories.NewRuleRepository(db, "dealerCommissions")
	partnerRules := repositories.NewRuleRepository(db, "partnerCommissions")
	masterRepo := repositories.NewMasterRepository(db)
	policyRepo := repositories.NewPolicyRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)

	// Initialize services
	ruleService := services.NewRuleService(dealerRules, partnerRules, masterRepo)
	reportService := services.NewReportService(policyRepo, ruleService, redisClient)

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	dealerController := controllers.NewDealerCommissionController(ruleService)
	partnerController := controllers.NewPartnerCommissionController(ruleService)
	reportController := controllers.NewReportController(reportService)
	policyController := controllers.NewPolicyController(policyRepo, customerRepo)
	masterController := controllers.NewMasterController(masterRepo)
	customerController := controllers.NewCustomerController(customerRepo)

	// Register routes
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterCommissionRoutes(e, dealerController, partnerController, reportController)
	routes.SetupRoutes(e, policyController, masterController, customerController)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}
