// Package main provides the main entry point for the CVM registration form service
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/amirphl/cvm-forms/app/handlers"
	"github.com/amirphl/cvm-forms/app/middleware"
	"github.com/amirphl/cvm-forms/app/router"
	"github.com/amirphl/cvm-forms/app/services"
	businessflow "github.com/amirphl/cvm-forms/business_flow"
	"github.com/amirphl/cvm-forms/config"
	"github.com/amirphl/cvm-forms/repository"
	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"gopkg.in/natefinch/lumberjack.v2"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Application represents the main application structure
type Application struct {
	router    router.Router
	config    *config.ProductionConfig
	server    *fiber.App
	stopFuncs []func()
}

func main() {
	cfg, err := config.LoadProductionConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	closeLog := initializeLogging(cfg.Logging)
	defer closeLog()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		// create-admin <username> provisions an admin; the password is read from ADMIN_PASSWORD
		case "create-admin":
			if err := createAdmin(cfg, os.Args[2:]); err != nil {
				log.Fatalf("Failed to create admin: %v", err)
			}
			return
		// issue-admin-token <admin-id> prints a bearer token for the export endpoint
		case "issue-admin-token":
			if err := issueAdminToken(cfg, os.Args[2:]); err != nil {
				log.Fatalf("Failed to issue admin token: %v", err)
			}
			return
		}
	}

	log.Println("Starting CVM forms application...")

	app, err := initializeApplication(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app.router.SetupRoutes()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := app.router.Start(address); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-sigChan
	log.Println("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := app.server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	for _, fn := range app.stopFuncs {
		fn()
	}

	log.Println("Server stopped")
}

// initializeLogging routes the standard logger to stdout, a rotating file, or both
func initializeLogging(cfg config.LoggingConfig) func() {
	log.SetFlags(0)

	if cfg.Output == "stdout" {
		log.SetOutput(os.Stdout)
		return func() {}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}

	var out io.Writer = rotator
	if cfg.Output == "both" {
		out = io.MultiWriter(os.Stdout, rotator)
	}
	log.SetOutput(out)

	return func() {
		_ = rotator.Close()
	}
}

// initializeDatabase initializes the database connection with connection pooling
func initializeDatabase(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	gormCfg := &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	}
	if cfg.SlowQueryLog {
		gormCfg.Logger = gormlogger.New(log.Default(), gormlogger.Config{
			SlowThreshold:             cfg.SlowQueryTime,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(postgres.Open(dsn), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("Database connection established with %d max open connections, %d max idle connections",
		cfg.MaxOpenConns, cfg.MaxIdleConns)

	return db, nil
}

// initializeCache initializes the Redis client and verifies connectivity
func initializeCache(cfg config.CacheConfig) (*redis.Client, error) {
	if !cfg.Enabled {
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	opt.DB = cfg.RedisDB

	rc := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rc.Ping(ctx).Err(); err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	log.Printf("Redis connection established (db=%d)", cfg.RedisDB)
	return rc, nil
}

// startCacheHealthMonitor periodically pings Redis until the returned func is called
func startCacheHealthMonitor(parent context.Context, client *redis.Client, interval time.Duration) func() {
	monitorCtx, cancel := context.WithCancel(parent)
	if interval <= 0 {
		interval = 30 * time.Second
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-monitorCtx.Done():
				return
			case <-ticker.C:
				ctx, c := context.WithTimeout(context.Background(), 3*time.Second)
				if err := client.Ping(ctx).Err(); err != nil {
					log.Printf(`{"level":"warn","event":"redis_healthcheck_failed","error":%q}`, err.Error())
				}
				c()
			}
		}
	}()
	return cancel
}

func newTokenService(cfg config.JWTConfig) (services.TokenService, error) {
	return services.NewTokenService(
		cfg.AccessTokenTTL,
		cfg.Issuer,
		cfg.Audience,
		cfg.UseRSAKeys,
		cfg.PrivateKey,
		cfg.PublicKey,
		cfg.SecretKey,
	)
}

func issueAdminToken(cfg *config.ProductionConfig, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: issue-admin-token <admin-id>")
	}
	adminID, err := strconv.ParseUint(args[0], 10, 32)
	if err != nil || adminID == 0 {
		return fmt.Errorf("admin id must be a positive integer")
	}

	tokenService, err := newTokenService(cfg.JWT)
	if err != nil {
		return err
	}
	token, err := tokenService.GenerateAdminToken(uint(adminID))
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}

func createAdmin(cfg *config.ProductionConfig, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: ADMIN_PASSWORD=... create-admin <username>")
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		return fmt.Errorf("ADMIN_PASSWORD is required")
	}

	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()

	tokenService, err := newTokenService(cfg.JWT)
	if err != nil {
		return err
	}

	flow := businessflow.NewAdminAuthFlow(repository.NewAdminRepository(db), tokenService, nil, cfg.JWT.AccessTokenTTL)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := flow.CreateAdmin(ctx, args[0], password)
	if err != nil {
		return err
	}

	log.Printf(`{"level":"info","event":"admin_created","admin_id":%d,"username":%q}`, admin.ID, admin.Username)
	return nil
}

// newChallengeStore shares captcha challenges through Redis when it is available
func newChallengeStore(rc *redis.Client, prefix string) services.ChallengeStore {
	if rc == nil {
		return services.NewMemoryChallengeStore()
	}
	return services.NewRedisChallengeStore(rc, prefix)
}

func initializeApplication(cfg *config.ProductionConfig) (*Application, error) {
	var stopFuncs []func()

	db, err := initializeDatabase(cfg.Database)
	if err != nil {
		return nil, err
	}

	rc, err := initializeCache(cfg.Cache)
	if err != nil {
		// Stats caching is optional; run uncached rather than refuse to start
		log.Printf(`{"level":"warn","event":"cache_disabled","error":%q}`, err.Error())
		rc = nil
	}
	if rc != nil {
		stopFuncs = append(stopFuncs, startCacheHealthMonitor(context.Background(), rc, 30*time.Second))
		stopFuncs = append(stopFuncs, func() { _ = rc.Close() })
	}

	// Repositories
	counterRepo := repository.NewSequenceCounterRepository(db)
	submissionRepo := repository.NewFormSubmissionRepository(db)
	transactor := repository.NewTransactor(db)

	// Business flows
	allocator := businessflow.NewSequenceAllocator(counterRepo)
	formFlow := businessflow.NewFormFlow(submissionRepo, allocator, transactor, rc, businessflow.FormFlowConfig{
		IDPrefix:      cfg.Form.IDPrefix,
		SequenceName:  cfg.Form.SequenceName,
		StatsCacheTTL: cfg.Form.StatsCacheTTL,
		CachePrefix:   cfg.Cache.RedisPrefix,
	})
	exportFlow := businessflow.NewFormExportFlow(submissionRepo)

	tokenService, err := newTokenService(cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}

	captchaSvc, err := services.NewCaptchaServiceRotate(
		newChallengeStore(rc, cfg.Cache.RedisPrefix),
		cfg.Security.CaptchaTTL,
		cfg.Security.CaptchaPadding,
		cfg.Security.CaptchaImageSize,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize captcha service: %w", err)
	}
	adminFlow := businessflow.NewAdminAuthFlow(repository.NewAdminRepository(db), tokenService, captchaSvc, cfg.JWT.AccessTokenTTL)

	formHandler := handlers.NewFormHandler(formFlow, exportFlow)
	adminHandler := handlers.NewAdminHandler(adminFlow)
	healthHandler := handlers.NewHealthHandler(db, rc, cfg.Deployment.Version)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	appRouter := router.NewFiberRouter(cfg, formHandler, adminHandler, healthHandler, authMiddleware)

	stopFuncs = append(stopFuncs, func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return &Application{
		router:    appRouter,
		config:    cfg,
		server:    appRouter.GetApp(),
		stopFuncs: stopFuncs,
	}, nil
}
