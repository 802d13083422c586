package main

import (
	"log"
	"net/http"
	"os"

	_ "cardguard/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cardguard/internal/auth"
	"cardguard/internal/cache"
	"cardguard/internal/config"
	"cardguard/internal/db"
	"cardguard/internal/handler"
	"cardguard/internal/model"
	"cardguard/internal/repository"
	"cardguard/internal/router"
	"cardguard/internal/service"
)

// @title Card Management & Fraud Detection API
// @version 1.0
// @description Bank card lifecycle management, operation recording and fraud alerting.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.FraudAlert{},
			&model.Operation{},
			&model.Card{},
			&model.Client{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Client{},
		&model.Card{},
		&model.Operation{},
		&model.FraudAlert{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	clientRepo := repository.NewClientRepository(gormDB)
	cardRepo := repository.NewCardRepository(gormDB)
	operationRepo := repository.NewOperationRepository(gormDB)
	alertRepo := repository.NewAlertRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(clientRepo, jwtService, tokenStore)
	clientService := service.NewClientService(clientRepo)
	cardService := service.NewCardService(cardRepo, cacheClient)
	operationService := service.NewOperationService(operationRepo, cardService)
	fraudService := service.NewFraudService(alertRepo, operationRepo, cardRepo, cardService)
	reportService := service.NewReportService(cardRepo, operationRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	clientHandler := handler.NewClientHandler(clientService)
	cardHandler := handler.NewCardHandler(cardService)
	operationHandler := handler.NewOperationHandler(operationService)
	fraudHandler := handler.NewFraudHandler(fraudService)
	reportHandler := handler.NewReportHandler(reportService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		clientHandler,
		cardHandler,
		operationHandler,
		fraudHandler,
		reportHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
