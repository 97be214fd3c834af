package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tokoku/store-api/internal/api/handler"
	"github.com/tokoku/store-api/internal/api/middleware"
	"github.com/tokoku/store-api/internal/core/domain"
	"github.com/tokoku/store-api/internal/core/service"
	"github.com/tokoku/store-api/internal/infrastructure/config"
	mongodb "github.com/tokoku/store-api/internal/infrastructure/db/mongo"
	redisdb "github.com/tokoku/store-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("store"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	itemRepo := mongodb.NewItemRepository(db)
	catalogCache := redisdb.NewCatalogCache(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, tokenService)
	catalogService := service.NewCatalogService(itemRepo, catalogCache, log)
	profileService := service.NewProfileService(userRepo)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	profileHandler := handler.NewProfileHandler(profileService)

	// Auth must precede RBAC so authentication failures are always reported
	// before authorization failures.
	authRequired := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/auth/login", authHandler.Login)
	e.GET("/items", catalogHandler.List)

	// --- Authenticated routes ---
	e.GET("/profile", profileHandler.Get, authRequired)
	e.PUT("/profile/update", profileHandler.Update, authRequired)
	e.POST("/profile/update", profileHandler.Update, authRequired)

	// --- Admin routes ---
	e.POST("/items/add", catalogHandler.Add, authRequired, adminOnly)
	e.GET("/users", profileHandler.ListUsers, authRequired, adminOnly)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
