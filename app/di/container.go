package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"staff-auth/app/config"
	"staff-auth/app/driver/postgres"
	"staff-auth/app/driver/security"
	"staff-auth/app/driver/token"
	"staff-auth/app/port"
	"staff-auth/app/rest"
	"staff-auth/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB *postgres.DB

	// Usecases
	AuthUsecase port.AuthUsecase
	UserUsecase port.UserUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database connection
	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize repositories and drivers
	userRepository := postgres.NewUserRepository(container.DB.Pool(), logger)
	hasher := security.NewBcryptHasher(cfg.BcryptCost)
	tokenIssuer := token.NewJWTIssuer(token.JWTConfig{
		Secret: cfg.TokenSecretKey,
		TTL:    cfg.TokenTTL,
	})

	// Initialize usecases
	container.AuthUsecase = usecase.NewAuthUsecase(userRepository, hasher, tokenIssuer, logger)
	container.UserUsecase = usecase.NewUserUsecase(userRepository, hasher, cfg.CompanyDomain, logger)

	logger.Info("Container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:      c.Logger,
		AuthUsecase: c.AuthUsecase,
		UserUsecase: c.UserUsecase,
		EnableDebug: c.Config.LogLevel == "debug",
	}

	router := rest.NewRouter(routerConfig)

	c.Logger.Info("Full API router created")
	return router
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("Container closed successfully")
	return nil
}
