package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mflix/catalog-api/internal/api/handler"
	"github.com/mflix/catalog-api/internal/api/middleware"
	"github.com/mflix/catalog-api/internal/core/service"
	mongodb "github.com/mflix/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/mflix/catalog-api/internal/infrastructure/db/redis"
	"github.com/mflix/catalog-api/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	commentRepo := mongodb.NewCommentRepository(db, log, cfg.Mongo.OpTimeout)
	userRepo := mongodb.NewUserRepository(db, log, cfg.Mongo.OpTimeout)
	reportCache := redisdb.NewReportCache(rdb, cfg.ReportCacheTTL)

	commentService := service.NewCommentService(commentRepo, reportCache, log)
	userService := service.NewUserService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)

	authHandler := handler.NewAuthHandler(userService)
	commentHandler := handler.NewCommentHandler(commentService)
	userHandler := handler.NewUserHandler(userService)
	authMiddleware := middleware.Auth(cfg.JWTSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- API routes ---
	v1 := e.Group("/api/v1")
	v1.GET("/comments/:id", commentHandler.Get)
	v1.POST("/comments", commentHandler.Add, authMiddleware)
	v1.PUT("/comments/:id", commentHandler.Update, authMiddleware)
	v1.DELETE("/comments/:id", commentHandler.Delete, authMiddleware)
	v1.GET("/reports/most-active-commenters", commentHandler.MostActiveCommenters, authMiddleware)

	v1.GET("/user", userHandler.Get, authMiddleware)
	v1.PUT("/user/preferences", userHandler.UpdatePreferences, authMiddleware)
	v1.DELETE("/user", userHandler.DeleteAccount, authMiddleware)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	return e
}
