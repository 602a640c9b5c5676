// Package app wires configuration, storage, cache, broker and HTTP handlers
// into a runnable Fiber application.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop/internal/cache"
	"shop/internal/config"
	"shop/internal/database"
	"shop/internal/handlers"
	"shop/internal/logger"
	"shop/internal/metrics"
	"shop/internal/middleware"
	"shop/internal/repositories"
	"shop/internal/services"
	"shop/pkg/rabbitmq"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// App is the assembled HTTP service and the resources it owns.
type App struct {
	Fiber    *fiber.App
	Services *services.Factory

	cfg   config.Config
	db    *gorm.DB
	redis *redis.Client
	mq    *rabbitmq.Client
}

// New builds the application from cfg. Redis and RabbitMQ are optional:
// when their address is empty, or they cannot be reached, the app runs
// without a category cache or order events.
func New(cfg config.Config) (*App, error) {
	a := &App{cfg: cfg}

	store, err := a.openStore()
	if err != nil {
		return nil, err
	}

	categoryCache := a.openCache()

	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logger.Warn().Err(err).Msg("RabbitMQ unavailable, order events disabled")
		} else {
			a.mq = mq
			publisher = mq
		}
	}

	a.Services = services.NewFactory(store, categoryCache, publisher, cfg.JWTSecret)
	a.Fiber = a.newFiber()
	return a, nil
}

func (a *App) openStore() (repositories.Store, error) {
	if a.cfg.DBDriver == config.DriverMemory {
		logger.Info().Msg("Using in-memory store")
		return repositories.NewMemoryStore(), nil
	}

	db, err := database.Open(a.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	a.db = db
	return repositories.NewGORMStore(db), nil
}

func (a *App) openCache() cache.CategoryCache {
	if a.cfg.RedisAddr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.RedisAddr,
		Password: a.cfg.RedisPassword,
		DB:       a.cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Str("addr", a.cfg.RedisAddr).Msg("Redis unavailable, category cache disabled")
		client.Close()
		return nil
	}

	a.redis = client
	logger.Info().Str("addr", a.cfg.RedisAddr).Msg("Redis connected")
	return cache.NewRedisCategoryCache(client, a.cfg.CacheTTL)
}

func (a *App) newFiber() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      a.cfg.ServiceName,
		ErrorHandler: errorHandler,
	})

	app.Use(recover.New())
	app.Use(logger.RequestLogger())
	app.Use(metrics.Middleware())

	app.Get("/health", a.handleHealth)
	app.Get("/metrics", metrics.Handler())

	auth := middleware.AuthRequired(tokenValidator{a.Services})
	apiV1 := app.Group("/api/v1")

	handlers.NewAuthHandler(a.Services).RegisterRoutes(apiV1)
	handlers.NewProductHandler(a.Services).RegisterRoutes(apiV1, auth)
	handlers.NewCategoryHandler(a.Services).RegisterRoutes(apiV1, auth)
	handlers.NewOrderHandler(a.Services).RegisterRoutes(apiV1, auth)

	f := a.Services
	handlers.NewCrudHandler("/banners", f.Banners).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/blogs", f.Blogs).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/coupons", f.Coupons).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/comments", f.Comments).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/contacts", f.Contacts).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/customers", f.Customers).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/page-contents", f.PageContents).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/social-medias", f.SocialMedias).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/information-websites", f.InformationWebsites).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/files", f.Files).RegisterRoutes(apiV1, auth)
	handlers.NewCrudHandler("/wish-lists", f.WishLists).RegisterRoutes(apiV1, auth)

	return app
}

// tokenValidator validates tokens without holding on to a session.
type tokenValidator struct {
	factory *services.Factory
}

func (v tokenValidator) ValidateToken(token string) (jwt.MapClaims, error) {
	return v.factory.Auth().ValidateToken(token)
}

func (a *App) handleHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	}
	code := fiber.StatusOK

	if a.db != nil {
		status["database"] = "connected"
		if sqlDB, err := a.db.DB(); err != nil || sqlDB.PingContext(ctx) != nil {
			status["database"] = "unreachable"
			status["status"] = "degraded"
			code = fiber.StatusServiceUnavailable
		}
	}
	if a.redis != nil {
		status["redis"] = "connected"
		if err := a.redis.Ping(ctx).Err(); err != nil {
			status["redis"] = "unreachable"
		}
	}
	if a.mq != nil {
		status["rabbitmq"] = "connected"
	}

	return c.Status(code).JSON(status)
}

// StartConsumer starts consuming order events if RabbitMQ is connected.
func (a *App) StartConsumer() error {
	if a.mq == nil {
		return nil
	}
	return a.mq.Consume(rabbitmq.HandleOrderMessage)
}

// Listen serves HTTP on the configured port until Shutdown is called.
func (a *App) Listen() error {
	return a.Fiber.Listen(a.cfg.AppPort)
}

// Shutdown stops the HTTP server and releases every resource.
func (a *App) Shutdown() error {
	var errs []error
	if a.Fiber != nil {
		if err := a.Fiber.Shutdown(); err != nil {
			errs = append(errs, fmt.Errorf("failed to shut down http server: %w", err))
		}
	}
	if err := a.Close(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Close releases the database, Redis and RabbitMQ connections.
func (a *App) Close() error {
	var errs []error
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close redis: %w", err))
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, fmt.Errorf("failed to close database: %w", err))
			}
		}
	}
	return errors.Join(errs...)
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"message": statusMessage(code),
		"error":   err.Error(),
	})
}

func statusMessage(code int) string {
	if code >= fiber.StatusInternalServerError {
		return "Internal server error"
	}
	return "Request failed"
}
