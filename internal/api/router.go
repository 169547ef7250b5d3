package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gramsetu/complaints-api/internal/api/handler"
	"github.com/gramsetu/complaints-api/internal/api/middleware"
	"github.com/gramsetu/complaints-api/internal/core/domain"
	"github.com/gramsetu/complaints-api/internal/core/service"
	storemongo "github.com/gramsetu/complaints-api/internal/infrastructure/db/mongo"
	storeredis "github.com/gramsetu/complaints-api/internal/infrastructure/db/redis"
	"github.com/gramsetu/complaints-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// Dependencies are constructed once here and injected downward; nothing
// below this point reads configuration or builds clients per request.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	e.Use(echoprometheus.NewMiddleware("gramsetu"))

	// --- Dependencies ---
	complaintRepo := storemongo.NewComplaintRepository(db)
	reputationRepo := storemongo.NewReputationRepository(db)
	authRepo := storemongo.NewAuthRepository(db)
	reputationCache := storeredis.NewReputationCache(rdb)

	reputationService := service.NewReputationService(reputationRepo, reputationCache, log)
	complaintService := service.NewComplaintService(complaintRepo, reputationService, log)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)

	authHandler := handler.NewAuthHandler(authService)
	complaintHandler := handler.NewComplaintHandler(complaintService)
	reputationHandler := handler.NewReputationHandler(reputationService)
	analyticsHandler := handler.NewAnalyticsHandler(complaintService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Complaint routes ---
	complaints := e.Group("/complaints", authMiddleware)
	complaints.POST("", complaintHandler.Create)
	complaints.GET("", complaintHandler.List)
	complaints.GET("/:id", complaintHandler.Get)
	complaints.PUT("/:id", complaintHandler.Update)
	complaints.DELETE("/:id", complaintHandler.Delete)

	// --- User routes ---
	users := e.Group("/users", authMiddleware)
	users.GET("/reputation", reputationHandler.Get)

	// --- Analytics (officer roles only) ---
	analytics := e.Group("/analytics", authMiddleware,
		middleware.RBAC(domain.RoleDistrictOfficer, domain.RoleStateOfficer, domain.RoleNationalAdmin))
	analytics.GET("/complaints", analyticsHandler.Summary)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
