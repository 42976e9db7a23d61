package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bioscizone/bioscizone-api/internal/config"
	"github.com/bioscizone/bioscizone-api/internal/handler"
	"github.com/bioscizone/bioscizone-api/internal/middleware"
	"github.com/bioscizone/bioscizone-api/internal/models"
	"github.com/bioscizone/bioscizone-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler          *handler.AuthHandler
	BuddyHandler         *handler.BuddyHandler
	AdminBuddyHandler    *handler.AdminBuddyHandler
	ArticleHandler       *handler.ArticleHandler
	AdminArticleHandler  *handler.AdminArticleHandler
	LabHandler           *handler.LabHandler
	AdminLabHandler      *handler.AdminLabHandler
	FeedbackHandler      *handler.FeedbackHandler
	AdminFeedbackHandler *handler.AdminFeedbackHandler
	SearchHandler        *handler.SearchHandler
	AdminAccountHandler  *handler.AdminAccountHandler
	SettingHandler       *handler.SettingHandler
	AuditHandler         *handler.AuditHandler
	JWTMiddleware        fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Public content surface
	if deps.BuddyHandler != nil {
		deps.BuddyHandler.Register(api.Group("/buddies"))
	}
	if deps.ArticleHandler != nil {
		deps.ArticleHandler.Register(api.Group("/articles"))
	}
	if deps.LabHandler != nil {
		deps.LabHandler.Register(api.Group("/labs"))
	}
	if deps.SearchHandler != nil {
		deps.SearchHandler.Register(api.Group("/search"))
	}
	if deps.FeedbackHandler != nil {
		feedback := api.Group("/feedback", middleware.RateLimit("feedback", 10, time.Minute))
		deps.FeedbackHandler.Register(feedback)
	}
	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterPublic(api)
	}

	// Admin surface. Login and seeding stay outside the JWT gate; the auth
	// handler mounts /me behind it explicitly.
	admin := app.Group("/api/admin")
	if deps.AuthHandler != nil {
		deps.AuthHandler.Register(admin, jwtMiddleware)
	}

	staff := admin.Group("", jwtMiddleware, middleware.RequireRole(models.RoleAdmin, models.RoleSuperadmin))
	if deps.AdminBuddyHandler != nil {
		deps.AdminBuddyHandler.Register(staff)
	}
	if deps.AdminArticleHandler != nil {
		deps.AdminArticleHandler.Register(staff.Group("/articles"))
	}
	if deps.AdminLabHandler != nil {
		deps.AdminLabHandler.Register(staff.Group("/labs"))
	}
	if deps.AdminFeedbackHandler != nil {
		deps.AdminFeedbackHandler.Register(staff.Group("/feedbacks"))
	}

	super := admin.Group("", jwtMiddleware, middleware.RequireRole(models.RoleSuperadmin))
	if deps.AdminAccountHandler != nil {
		deps.AdminAccountHandler.Register(super.Group("/admins"))
	}
	if deps.SettingHandler != nil {
		deps.SettingHandler.Register(super.Group("/settings"))
	}
	if deps.AuditHandler != nil {
		deps.AuditHandler.Register(super.Group("/audit-logs"))
	}
}
