package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tradenomi-backend/config"
	_ "tradenomi-backend/docs" // Important for Swagger
	"tradenomi-backend/internal/delivery/http/middleware"
	"tradenomi-backend/internal/domain"
	v1 "tradenomi-backend/internal/delivery/http/v1"
	"tradenomi-backend/internal/repository/postgres"
	"tradenomi-backend/internal/usecase"
	"tradenomi-backend/pkg/auth"
	"tradenomi-backend/pkg/collation"
	"tradenomi-backend/pkg/crm"
	"tradenomi-backend/pkg/database"
	"tradenomi-backend/pkg/email"
	"tradenomi-backend/pkg/imaging"
	"tradenomi-backend/pkg/logger"
	"tradenomi-backend/pkg/redis"
	"tradenomi-backend/pkg/storage"

	goredis "github.com/redis/go-redis/v9"
)

// @title           Tradenomi Marketplace API
// @version         1.0
// @description     Member profiles, ads, business cards and notification settings.
// @BasePath        /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting tradenomi backend", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Optional Redis for rate limiting
	var redisClient *goredis.Client
	health := map[string]usecase.Pinger{"database": dbPool}
	if cfg.UpstashRedisURL != "" {
		redisClient, err = redis.NewClient(ctx, redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword})
		if err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
		} else {
			defer redisClient.Close()
			health["redis"] = usecase.PingFunc(func(ctx context.Context) error { return redisClient.Ping(ctx).Err() })
		}
	}
	limiter := middleware.NewRateLimiter(redisClient)
	if redisClient == nil {
		limiter.StartCleanup(ctx, 5*time.Minute)
	}

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool, cfg.DBQueryTimeout)
	adRepo := postgres.NewAdRepository(dbPool, cfg.DBQueryTimeout)
	contactRepo := postgres.NewContactRepository(dbPool, cfg.DBQueryTimeout)

	// 6. Setup external services
	sorter, err := collation.New(cfg.CollationLocale)
	if err != nil {
		logger.Log.Error("Invalid COLLATION_LOCALE", "locale", cfg.CollationLocale, "error", err)
		os.Exit(1)
	}

	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - notifications will be skipped")
	}

	crmClient := crm.NewClient(cfg)
	if !crmClient.IsConfigured() {
		logger.Log.Warn("CRM client not configured - title catalogs will be unavailable")
	}

	s3Cfg := storage.S3Config{
		AccessKeyID:     cfg.S3AccessKeyID,
		SecretAccessKey: cfg.S3SecretAccessKey,
		Region:          cfg.S3Region,
		Bucket:          cfg.S3Bucket,
		Endpoint:        cfg.S3Endpoint,
		PublicBaseURL:   cfg.S3PublicURL,
	}
	var imageStore domain.ImageStore
	var imageDir string
	if s3Cfg.IsConfigured() {
		imageStore, err = storage.NewS3Store(ctx, s3Cfg)
		if err != nil {
			logger.Log.Error("Failed to init S3 client", "error", err)
			os.Exit(1)
		}
	} else {
		imageStore, err = storage.NewDiskStore(cfg.ImageDir, "/kuvat")
		if err != nil {
			logger.Log.Error("Failed to prepare image directory", "dir", cfg.ImageDir, "error", err)
			os.Exit(1)
		}
		imageDir = cfg.ImageDir
	}

	// 7. Setup UseCases
	profileUC := usecase.NewProfileUsecase(profileRepo, sorter)
	settingsUC := usecase.NewSettingsUsecase(profileRepo)
	adUC := usecase.NewAdUsecase(adRepo, profileRepo, emailService, cfg.MailConcurrency)
	contactUC := usecase.NewContactUsecase(contactRepo, profileRepo, emailService)
	catalogUC := usecase.NewCatalogUsecase(crmClient, sorter)
	photoUC := usecase.NewPhotoUsecase(profileRepo, imageStore, imaging.DefaultOptions())
	healthUC := usecase.NewHealthUsecase(health)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:   profileUC,
		SettingsUC:  settingsUC,
		AdUC:        adUC,
		ContactUC:   contactUC,
		CatalogUC:   catalogUC,
		PhotoUC:     photoUC,
		HealthUC:    healthUC,
		Sessions:    auth.NewSessions(cfg.SessionSecret),
		RateLimiter: limiter,
		Config:      cfg,
		ImageDir:    imageDir,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
