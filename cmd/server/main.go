package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"kundali-api/internal/config"
	"kundali-api/internal/ephem"
	"kundali-api/internal/handlers"
	"kundali-api/internal/render"
	"kundali-api/internal/services"
)

func main() {
	// Load .env if present, real env wins
	_ = godotenv.Load()

	cfg := config.Load()

	zlog, err := newLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()

	engine, err := ephem.New(cfg.VSOP87Path)
	if err != nil {
		zlog.Fatal("Failed to load planetary theory", zap.Error(err))
	}

	renderer := render.NewRenderer(cfg.StaticDir, cfg.FontPath)

	// Initialize services
	geocodeCache := services.NewGeocodeCache(cfg.RedisURL, cfg.GeocodeCacheTTL, zlog)
	defer geocodeCache.Close()
	geocodeService := services.NewGeocodeService(geocodeCache, cfg.NominatimBaseURL, cfg.PhotonBaseURL, zlog)
	kundaliService := services.NewKundaliService(cfg, geocodeService, engine, renderer, zlog)

	// Initialize handlers
	kundaliHandler := handlers.NewKundaliHandler(kundaliService, cfg.RequestTimeout)
	healthHandler := handlers.NewHealthHandler()

	app := fiber.New(fiber.Config{
		Prefork:       false,
		StrictRouting: true,
		CaseSensitive: true,
		ServerHeader:  "Kundali-API",
		AppName:       "Kundali v1.0",
		ReadTimeout:   time.Second * 10,
		WriteTimeout:  time.Second * 30,
		BodyLimit:     1 * 1024 * 1024, // 1MB
		ErrorHandler:  handlers.CustomErrorHandler,
	})

	// Middleware stack
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigin,
		AllowMethods:     "GET,POST,OPTIONS",
		AllowHeaders:     "Origin,Content-Type,Accept",
		AllowCredentials: false,
		MaxAge:           86400,
	}))
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(429).JSON(fiber.Map{
				"error": "Rate limit exceeded. Please try again later.",
			})
		},
	}))

	// Routes
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Kundali API",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	app.Get("/ping", healthHandler.Ping)
	app.Get("/health", healthHandler.Health)
	app.Post("/kundali", kundaliHandler.Generate)
	app.Static("/static", cfg.StaticDir)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	// Graceful shutdown
	go func() {
		if err := app.Listen(":" + port); err != nil {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	zlog.Info("Kundali API started",
		zap.String("port", port),
		zap.String("environment", cfg.Environment),
		zap.String("allow_origin", cfg.AllowOrigin))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("Shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		zlog.Fatal("Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("Server shutdown complete")
}

func newLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
