package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/bioscizone/bioscizone-api/internal/auth"
	"github.com/bioscizone/bioscizone-api/internal/config"
	"github.com/bioscizone/bioscizone-api/internal/database"
	"github.com/bioscizone/bioscizone-api/internal/handler"
	"github.com/bioscizone/bioscizone-api/internal/middleware"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/repository"
	"github.com/bioscizone/bioscizone-api/internal/router"
	"github.com/bioscizone/bioscizone-api/internal/service"
	"github.com/bioscizone/bioscizone-api/pkg/mailer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Buddy{},
		&models.Article{},
		&models.Lab{},
		&models.Feedback{},
		&models.SystemSetting{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTAlgorithm)
	if err != nil {
		log.Fatalf("failed to create token service: %v", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	smtp := mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		FromName: cfg.SMTPFromName,
	}, logger)

	adminRepo := repository.NewAdminRepository(db)
	buddyRepo := repository.NewBuddyRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	labRepo := repository.NewLabRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	settingRepo := repository.NewSettingRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	auditService := service.NewAuditService(auditRepo, logger)
	authService := service.NewAuthService(adminRepo, settingRepo, tokens, auditService, service.FallbackCredentials{
		Username: cfg.FallbackAdminUser,
		Password: cfg.FallbackAdminPass,
	}, cfg.AccessTokenTTL, logger)
	adminAccountService := service.NewAdminAccountService(adminRepo, auditService, validate, logger)
	settingService := service.NewSettingService(settingRepo, auditService, logger)
	buddyService := service.NewBuddyService(buddyRepo, auditService, validate, logger)
	articleService := service.NewArticleService(articleRepo, auditService, validate, logger)
	labService := service.NewLabService(labRepo, auditService, validate, logger)
	notifier := service.NewEmailFeedbackNotifier(smtp, adminRepo, logger)
	feedbackService := service.NewFeedbackService(feedbackRepo, notifier, validate, logger)
	searchService := service.NewSearchService(buddyRepo, articleRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{
		Logger:       &logger,
		AllowOrigins: cfg.CORSOrigins,
	})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:          handler.NewAuthHandler(authService, logger),
		BuddyHandler:         handler.NewBuddyHandler(buddyService, logger),
		AdminBuddyHandler:    handler.NewAdminBuddyHandler(buddyService, logger),
		ArticleHandler:       handler.NewArticleHandler(articleService, logger),
		AdminArticleHandler:  handler.NewAdminArticleHandler(articleService, logger),
		LabHandler:           handler.NewLabHandler(labService, logger),
		AdminLabHandler:      handler.NewAdminLabHandler(labService, logger),
		FeedbackHandler:      handler.NewFeedbackHandler(feedbackService, logger),
		AdminFeedbackHandler: handler.NewAdminFeedbackHandler(feedbackService, logger),
		SearchHandler:        handler.NewSearchHandler(searchService, logger),
		AdminAccountHandler:  handler.NewAdminAccountHandler(adminAccountService, logger),
		SettingHandler:       handler.NewSettingHandler(settingService, logger),
		AuditHandler:         handler.NewAuditHandler(auditService, logger),
		JWTMiddleware:        middleware.JWTProtected(tokens),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
