package main

import (
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/OlegMusatov3000/BlitzMarket/docs"
	"github.com/OlegMusatov3000/BlitzMarket/internal/auth"
	"github.com/OlegMusatov3000/BlitzMarket/internal/cache"
	"github.com/OlegMusatov3000/BlitzMarket/internal/config"
	"github.com/OlegMusatov3000/BlitzMarket/internal/db"
	"github.com/OlegMusatov3000/BlitzMarket/internal/handler"
	"github.com/OlegMusatov3000/BlitzMarket/internal/model"
	"github.com/OlegMusatov3000/BlitzMarket/internal/notify"
	"github.com/OlegMusatov3000/BlitzMarket/internal/repository"
	"github.com/OlegMusatov3000/BlitzMarket/internal/router"
	"github.com/OlegMusatov3000/BlitzMarket/internal/service"
)

// @title Blitz Market API
// @version 1.0
// @description Classifieds marketplace API: ads, comments, reviews, complaints and role moderation.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// .env is optional; in containers everything arrives via the environment.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

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
			&model.Complaint{},
			&model.Review{},
			&model.Comment{},
			&model.Ad{},
			&model.User{},
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
		&model.User{},
		&model.Ad{},
		&model.Comment{},
		&model.Review{},
		&model.Complaint{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Error alerting: Telegram when configured, otherwise silent.
	var notifier notify.Notifier = notify.Noop{}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("Warning: telegram notifier disabled: %v", err)
		} else {
			notifier = tg
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	adRepo := repository.NewAdRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	complaintRepo := repository.NewComplaintRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	adService := service.NewAdService(adRepo, cacheClient)
	commentService := service.NewCommentService(commentRepo, adRepo)
	reviewService := service.NewReviewService(reviewRepo, adRepo)
	complaintService := service.NewComplaintService(complaintRepo, adRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	adHandler := handler.NewAdHandler(adService)
	commentHandler := handler.NewCommentHandler(commentService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	userHandler := handler.NewUserHandler(userService)

	// Register routes
	router.Register(
		e,
		cfg,
		notifier,
		authHandler,
		adHandler,
		commentHandler,
		reviewHandler,
		complaintHandler,
		userHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
