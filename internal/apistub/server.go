package apistub

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/creatorhub/platform-client/internal/apistub/handler"
	"github.com/creatorhub/platform-client/internal/apistub/memstore"
	"github.com/creatorhub/platform-client/internal/apistub/middleware"
	"github.com/creatorhub/platform-client/internal/apistub/service"
	"github.com/creatorhub/platform-client/internal/config"
	"github.com/creatorhub/platform-client/internal/core/domain"
)

const feedItemsPerSource = 12

// Options tunes the stub beyond configuration, mainly for tests.
type Options struct {
	// SkipSeed disables the startup fixtures (demo accounts and content).
	SkipSeed bool
	// Metrics enables the echoprometheus middleware and /metrics endpoint.
	// Off by default so httptest instances don't fight over the default
	// prometheus registry.
	Metrics bool
}

// New builds the stub server with every route of the platform contract
// registered under /api.
func New(cfg config.StubConfig, log zerolog.Logger, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	if opts.Metrics {
		e.Use(echoprometheus.NewMiddleware("creatorhub_stub"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	users := memstore.NewUsers()
	contents := memstore.NewContents()
	feed := memstore.NewFeed(feedItemsPerSource)
	reports := memstore.NewReports()

	auth := service.NewAuthService(users, cfg.JWTSecret, time.Duration(cfg.TokenTTL)*time.Hour)
	if !opts.SkipSeed {
		seed(auth, contents, log)
	}

	requireAuth := middleware.Auth(cfg.JWTSecret)
	requireAdmin := middleware.RBAC(domain.RoleAdmin)

	api := e.Group("/api")

	authHandler := handler.NewAuthHandler(auth)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", authHandler.Me, requireAuth)

	userHandler := handler.NewUserHandler(users)
	api.GET("/users/profile", userHandler.Profile, requireAuth)
	api.PUT("/users/profile", userHandler.UpdateProfile, requireAuth)

	contentHandler := handler.NewContentHandler(contents, users)
	api.GET("/content", contentHandler.List)
	api.GET("/content/:id", contentHandler.Get)
	api.POST("/content", contentHandler.Create, requireAuth)
	api.PUT("/content/:id", contentHandler.Update, requireAuth)
	api.DELETE("/content/:id", contentHandler.Delete, requireAuth)
	api.PUT("/content/:id/like", contentHandler.Like, requireAuth)
	api.POST("/content/:id/comments", contentHandler.Comment, requireAuth)

	feedHandler := handler.NewFeedHandler(feed)
	api.GET("/feed", feedHandler.List)
	api.POST("/feed/save", feedHandler.Save, requireAuth)
	api.GET("/feed/saved", feedHandler.Saved, requireAuth)
	api.DELETE("/feed/saved/:id", feedHandler.DeleteSaved, requireAuth)

	reportHandler := handler.NewReportHandler(reports)
	api.POST("/reports", reportHandler.Create, requireAuth)
	api.GET("/reports", reportHandler.List, requireAuth, requireAdmin)
	api.PUT("/reports/:id", reportHandler.UpdateStatus, requireAuth, requireAdmin)

	e.GET("/health", handler.NewHealthHandler().Liveness)

	return e
}

// seed creates the demo accounts and a little published content so a fresh
// stub is immediately browsable.
func seed(auth *service.AuthService, contents *memstore.Contents, log zerolog.Logger) {
	admin, err := auth.Seed("Admin", "admin@creatorhub.local", "admin123", domain.RoleAdmin)
	if err != nil {
		log.Warn().Err(err).Msg("seed admin failed")
		return
	}
	creator, err := auth.Seed("Demo Creator", "creator@creatorhub.local", "creator123", domain.RoleUser)
	if err != nil {
		log.Warn().Err(err).Msg("seed creator failed")
		return
	}

	contents.Create(creator.ID, domain.ContentInput{
		Type:        domain.ContentArticle,
		Title:       "Getting started with the platform",
		Description: "A short tour of publishing on CreatorHub",
		Body:        "Welcome aboard. This article was seeded by the API stub.",
		Tags:        []string{"welcome", "guide"},
	})
	contents.Create(creator.ID, domain.ContentInput{
		Type:     domain.ContentVideo,
		Title:    "Studio setup walkthrough",
		MediaURL: "https://media.example.com/videos/studio-setup",
		Tags:     []string{"studio"},
	})

	log.Info().
		Str("admin", admin.Email).
		Str("creator", creator.Email).
		Msg("stub seeded")
}
