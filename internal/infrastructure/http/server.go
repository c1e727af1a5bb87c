package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	handlers "github.com/gymlink/wellness-backend/internal/adapter/handler/http"
	"github.com/gymlink/wellness-backend/internal/config"
	"github.com/gymlink/wellness-backend/internal/infrastructure/database"
	"github.com/gymlink/wellness-backend/internal/infrastructure/wellness"
	"github.com/gymlink/wellness-backend/internal/middleware/auth"
	"github.com/gymlink/wellness-backend/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	config *config.Config
	logger *zap.Logger
	echo   *echo.Echo
	repos  *database.Repositories
}

type requestValidator struct {
	validate *validator.Validate
}

func (v *requestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func NewServer(cfg *config.Config, logger *zap.Logger, repos *database.Repositories) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &requestValidator{validate: validator.New()}

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.Service.ClientURL},
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE},
	}))

	return &Server{
		config: cfg,
		logger: logger,
		echo:   e,
		repos:  repos,
	}
}

func (s *Server) Start() error {
	// Setup routes
	s.setupRoutes()

	addr := fmt.Sprintf("%s:%d", s.config.Server.HTTP.Host, s.config.Server.HTTP.Port)
	s.logger.Info("Starting HTTP server", zap.String("address", addr))

	return s.echo.Start(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	// Health check
	s.echo.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "healthy",
			"service": s.config.Service.Name,
		})
	})

	// Wellness API access shared by the sync jobs and the login flow
	authenticator := wellness.NewAuthenticator(
		s.config.Wellness.BaseURL,
		s.config.Wellness.Username,
		s.config.Wellness.Password,
		s.logger,
	)
	client := wellness.NewClient(&s.config.Wellness, authenticator, s.logger)

	// Sync jobs
	consultantSync := usecase.NewConsultantSyncService(client, s.repos.Consultant, s.logger)
	subscriptionSync := usecase.NewSubscriptionSyncService(client, s.repos.Subscription, s.logger)
	customerSync := usecase.NewCustomerSyncService(client, s.repos.Consultant, s.repos.Customer, s.logger)
	saleSync := usecase.NewSaleSyncService(client, s.repos.Subscription, s.repos.CustomerSubscription, s.config.Wellness.DaysRange, s.logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(s.logger, s.config.JWT.Secret, authenticator, s.repos.Consultant)
	jobHandler := handlers.NewJobHandler(s.logger, consultantSync, customerSync, subscriptionSync, saleSync)
	customerHandler := handlers.NewCustomerHandler(s.logger, s.repos.Customer, s.repos.Card, s.repos.CustomerSubscription)
	cardHandler := handlers.NewCardHandler(s.logger, s.repos.Card)
	ptHandler := handlers.NewPTHandler(s.logger, s.repos.Training)

	// JWT middleware configuration
	jwtConfig := auth.JWTConfig{
		Secret: s.config.JWT.Secret,
		Logger: s.logger,
		SkipPaths: []string{
			"/health",
			"/auth/token",
		},
	}

	// Public routes
	s.echo.POST("/auth/token", authHandler.Token)

	// API v1 routes (all require authentication)
	v1 := s.echo.Group("/api/v1", auth.JWTMiddleware(jwtConfig))

	// Sync job triggers
	v1.POST("/jobs/:job", jobHandler.Trigger)

	// Customers
	v1.GET("/customers", customerHandler.Dashboard)
	v1.GET("/customers/:id", customerHandler.Detail)

	// Training cards
	v1.POST("/cards", cardHandler.Create)
	v1.PUT("/cards/:id/reschedule", cardHandler.Reschedule)
	v1.PUT("/cards/:id/undo", cardHandler.Undo)

	// Personal training
	v1.GET("/customers/:id/pt", ptHandler.ActivePackage)
	v1.GET("/customers/:id/pt/history", ptHandler.PackageHistory)
	v1.POST("/customers/:id/pt", ptHandler.CreatePackage)
	v1.PUT("/pt/:id/upgrade", ptHandler.UpgradePackage)
	v1.POST("/pt/:id/sessions", ptHandler.CreateSession)
	v1.DELETE("/pt/:id/sessions/:sessionId", ptHandler.DeleteSession)
}
