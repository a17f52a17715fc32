package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"plantmon/docs"
	"plantmon/internal/config"
	"plantmon/internal/database"
	"plantmon/internal/database/migration"
	handlers "plantmon/internal/http/handler"
	"plantmon/internal/http/middleware"
	"plantmon/internal/otel"
	mongorepo "plantmon/internal/repository/mongo"
	"plantmon/internal/service"
	"plantmon/internal/storage"
)

// @title Plant Monitoring API
// @version 1.0
// @description Backend API for the plant monitoring mobile application and sensor devices.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is required")
	}

	ctx := context.Background()

	// Initialize tracing; exporter failures degrade to noop
	shutdownTracing, err := otel.Init(ctx, time.Local)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Connect MongoDB and make sure the query-path indexes exist
	client, err := database.NewMongo(cfg.Mongo)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer client.Disconnect(ctx)

	db := client.Database(cfg.Mongo.Database)
	if err := migration.EnsureIndexes(ctx, db, time.Local); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	// Initialize reusable S3-compatible object storage client (MinIO-supported)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	// Initialize repositories and services
	plantRepo := mongorepo.NewPlantMongo(db)
	sensorRepo := mongorepo.NewSensorReadingMongo(db)
	deviceRepo := mongorepo.NewDeviceMongo(db)
	userRepo := mongorepo.NewUserMongo(db)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute
	authSvc := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, tokenTTL)
	plantSvc := service.NewPlantService(objStore, plantRepo)
	sensorSvc := service.NewSensorReadingService(sensorRepo)
	deviceSvc := service.NewDeviceService(deviceRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Server spans for every request
	app.Use(otelfiber.Middleware())

	promMW, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}
	app.Use(promMW.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Register HTTP routes with injected services
	ping := func(ctx context.Context) error {
		return client.Ping(ctx, readpref.Primary())
	}
	handlers.RegisterRoutes(app, ping, authSvc, plantSvc, sensorSvc, deviceSvc)

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
