package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"trackflow-backend/internal/api/handlers"
	"trackflow-backend/internal/api/routes"
	"trackflow-backend/internal/auth"
	"trackflow-backend/internal/config"
	"trackflow-backend/internal/database"
	"trackflow-backend/internal/logger"
	"trackflow-backend/internal/repository"
	"trackflow-backend/internal/service"
	"trackflow-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "trackflow-backend/docs" // This is needed for swag
)

const shutdownTimeout = 15 * time.Second

//	@title			TrackFlow Backend API
//	@version		1.0
//	@description	Team and project management API: teams with join, leave and invitation workflows, projects, tasks, comments, time logs, attachments, notifications and activity.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	deps := routes.Dependencies{
		DB:           db,
		Config:       cfg,
		Validator:    service.NewValidator(),
		HealthChecks: map[string]handlers.HealthCheck{},
	}

	if cfg.MongoURI != "" {
		mongoClient, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			logrus.Fatal("Failed to connect to mongo:", err)
		}
		defer func() { _ = mongoClient.Close(context.Background()) }()

		activityRepo := repository.NewMongoActivityLogRepository(mongoClient.DB)
		if err := activityRepo.EnsureIndexes(ctx); err != nil {
			logrus.Fatal("Failed to create activity log indexes:", err)
		}
		deps.ActivityRepo = activityRepo
		deps.HealthChecks["mongo"] = func(ctx context.Context) error {
			return mongoClient.Client.Ping(ctx, nil)
		}
		logrus.Info("Activity logs stored in mongo")
	}

	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			logrus.Fatal("Failed to connect to redis:", err)
		}
		defer func() { _ = redisClient.Close() }()

		deps.Denylist = auth.NewRedisDenylist(redisClient)
		deps.HealthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	} else {
		logrus.Warn("REDIS_URL not set, revoked sessions are kept in memory")
	}

	if cfg.StorageConfigured() {
		objectStorage, err := storage.NewMinioStorage(ctx, storage.Options{
			Endpoint:  cfg.StorageEndpoint,
			AccessKey: cfg.StorageAccessKey,
			SecretKey: cfg.StorageSecretKey,
			Bucket:    cfg.StorageBucket,
			UseTLS:    cfg.StorageUseTLS,
		})
		if err != nil {
			logrus.Fatal("Failed to initialize object storage:", err)
		}
		// deps.Storage must remain an untyped nil when storage is off
		deps.Storage = objectStorage
		deps.HealthChecks["storage"] = objectStorage.Ping
	} else {
		logrus.Warn("STORAGE_ENDPOINT not set, attachments are disabled")
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(deps)

	port := cfg.Port
	if port == "" {
		port = "7008"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logrus.Fatal("Failed to start server:", err)
		}
	case <-ctx.Done():
	}

	logrus.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
