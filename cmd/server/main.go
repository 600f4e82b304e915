package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"glg-capital.backend/internal/config"
	"glg-capital.backend/internal/infrastructure/datasources"
	"glg-capital.backend/internal/infrastructure/jobs"
	"glg-capital.backend/internal/infrastructure/repositories"
	"glg-capital.backend/internal/interfaces/http/handlers"
	"glg-capital.backend/internal/interfaces/http/middleware"
	"glg-capital.backend/internal/usecases"
	"glg-capital.backend/pkg/jwt"
	"glg-capital.backend/pkg/logger"
	"glg-capital.backend/pkg/metrics"
	"glg-capital.backend/pkg/ratelimit"
	"glg-capital.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openerFor       = datasources.OpenerFor
	newSessionStore = redis.NewSessionStore
	runServer       = serve
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	opener, err := openerFor(cfg.Database)
	if err != nil {
		return err
	}
	provider := datasources.NewProvider(opener)
	defer provider.Close()

	db, err := provider.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := datasources.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info(ctx, "Database ready", zap.String("driver", cfg.Database.Driver))

	userRepo := repositories.NewUserRepository(db)
	clientRepo := repositories.NewClientRepository(db)
	kycRecordRepo := repositories.NewKYCRecordRepository(db)
	simpleKYCRepo := repositories.NewSimpleKYCRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)
	notificationRepo := repositories.NewNotificationRepository(db)
	uow := repositories.NewUnitOfWork(db)

	if err := datasources.Bootstrap(ctx, userRepo, cfg.Bootstrap); err != nil {
		return err
	}

	// Redis is optional: without it logins return tokens only, idempotency
	// keys are ignored and verification attempts are counted in memory.
	var (
		sessionStore usecases.SessionStore
		sessionCheck middleware.SessionLookup
		limiter      ratelimit.AttemptLimiter = ratelimit.NewMemory(cfg.KYC.MaxVerifyAttempts, cfg.KYC.AttemptWindow)
	)
	if cfg.Redis.Enabled {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.Password); err != nil {
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer redis.Close()

		store, err := newSessionStore(cfg.Security.SessionEncryptionKey)
		if err != nil {
			return fmt.Errorf("failed to initialize session store: %w", err)
		}
		sessionStore, sessionCheck = store, store
		limiter = ratelimit.NewRedisLimiter(redis.GetClient(), cfg.KYC.MaxVerifyAttempts, cfg.KYC.AttemptWindow, "kyc")
		logger.Info(ctx, "Redis initialized")
	}

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)

	notificationService := usecases.NewNotificationService(notificationRepo)
	authUsecase := usecases.NewAuthUsecase(userRepo, clientRepo, uow, jwtService, sessionStore, cfg.JWT.RefreshExpiry)
	clientUsecase := usecases.NewClientUsecase(clientRepo)
	kycUsecase := usecases.NewKYCUsecase(kycRecordRepo, simpleKYCRepo, notificationService, uow, limiter, nil, cfg.KYC.VerificationCodeTTL)
	investmentUsecase := usecases.NewInvestmentUsecase(investmentRepo, notificationService, uow)
	adminUsecase := usecases.NewAdminUsecase(userRepo, clientRepo, kycRecordRepo, simpleKYCRepo, investmentRepo, notificationService)

	expiryJob := jobs.NewVerificationCodeExpiryJob(simpleKYCRepo, cfg.KYC.CodeSweepInterval)
	go expiryJob.Start(ctx)
	defer expiryJob.Stop()

	registry := prometheus.NewRegistry()
	metrics.Register(registry)

	health := handlers.NewHealthHandler(healthChecks(provider, cfg.Redis.Enabled))
	r := newRouter(registry, health, routeDeps{
		authHandler:         handlers.NewAuthHandler(authUsecase),
		clientHandler:       handlers.NewClientHandler(clientUsecase),
		kycHandler:          handlers.NewKYCHandler(kycUsecase),
		investmentHandler:   handlers.NewInvestmentHandler(investmentUsecase),
		notificationHandler: handlers.NewNotificationHandler(notificationService),
		adminHandler:        handlers.NewAdminHandler(adminUsecase, clientUsecase),
		authMiddleware:      middleware.AuthMiddleware(jwtService, sessionCheck),
		adminMiddleware:     middleware.RequireAdmin(),
	})

	logger.Info(ctx, "GLG Capital backend starting", zap.String("port", cfg.Server.Port), zap.Int("routes", len(r.Routes())))
	if err := runServer(ctx, r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.Info(context.Background(), "Server stopped")
	return nil
}

func healthChecks(provider *datasources.Provider, redisEnabled bool) map[string]handlers.HealthCheck {
	checks := map[string]handlers.HealthCheck{
		"database": func(ctx context.Context) error {
			db, err := provider.Get(ctx)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if redisEnabled {
		checks["redis"] = func(ctx context.Context) error {
			client := redis.GetClient()
			if client == nil {
				return redis.ErrNotConfigured
			}
			return client.Ping(ctx).Err()
		}
	}
	return checks
}

// serve runs r until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, r *gin.Engine, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
