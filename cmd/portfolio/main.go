package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/rajeshk/portfolio/internal/pkg/config"
	"github.com/rajeshk/portfolio/internal/pkg/database"
	"github.com/rajeshk/portfolio/internal/pkg/health"
	"github.com/rajeshk/portfolio/internal/pkg/logger"
	"github.com/rajeshk/portfolio/internal/pkg/middleware"
	nsqpkg "github.com/rajeshk/portfolio/internal/pkg/nsq"
	"github.com/rajeshk/portfolio/internal/pkg/server"
	adminGateway "github.com/rajeshk/portfolio/services/admin/gateway"
	adminHandler "github.com/rajeshk/portfolio/services/admin/handler"
	adminHTTP "github.com/rajeshk/portfolio/services/admin/handler/http"
	adminNSQ "github.com/rajeshk/portfolio/services/admin/handler/nsq"
	adminRepository "github.com/rajeshk/portfolio/services/admin/repository"
	adminUsecase "github.com/rajeshk/portfolio/services/admin/usecase"
	portfolioGateway "github.com/rajeshk/portfolio/services/portfolio/gateway"
	portfolioHandler "github.com/rajeshk/portfolio/services/portfolio/handler"
	portfolioHTTP "github.com/rajeshk/portfolio/services/portfolio/handler/http"
	portfolioRepository "github.com/rajeshk/portfolio/services/portfolio/repository"
	portfolioUsecase "github.com/rajeshk/portfolio/services/portfolio/usecase"
)

func main() {
	appName := "portfolio-api"
	configPath := config.GetEnv("CONFIG_PATH", "config/portfolio.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		zap.String("app", appName),
		zap.String("version", configs.App.Version),
		zap.String("environment", configs.App.Environment),
	)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		zapLogger.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		zapLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		zapLogger.Fatal("Failed to connect to NSQ", zap.Error(err))
	}

	// Initialize repositories
	adminRepo := adminRepository.NewAdminRepo(configs, postgresClient.GetDB(), redisClient)
	portfolioRepo := portfolioRepository.NewPortfolioRepo(configs, postgresClient.GetDB())

	// Initialize gateways
	adminGW := adminGateway.NewAdminGW(producer, zapLogger)
	portfolioGW := portfolioGateway.NewPortfolioGW(producer, zapLogger)

	// Initialize usecases
	adminUC := adminUsecase.NewAdminUC(adminRepo, adminGW, configs)
	portfolioUC := portfolioUsecase.NewPortfolioUC(portfolioRepo, portfolioGW, configs)

	// Handlers for HTTP
	authHandler := adminHTTP.NewAuthHandler(adminUC)
	contentHandler := portfolioHTTP.NewPortfolioHandler(portfolioUC)

	// NSQ consumer for OTP notification events
	notifier, err := adminNSQ.NewNotifierHandler(configs.NSQ.Address, configs.NSQ.NotifierChannel)
	if err != nil {
		zapLogger.Fatal("Failed to initialize OTP notifier", zap.Error(err))
	}

	authRoutes := adminHandler.NewHandler(authHandler, configs)
	contentRoutes := portfolioHandler.NewHandler(contentHandler, configs)

	// Initialize Echo router
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.ZapEchoMiddleware(zapLogger))

	health.RegisterHealthEndpoints(e, appName)
	authRoutes.RegisterRoutes(e)
	contentRoutes.RegisterRoutes(e)

	shutdownMgr := server.NewShutdownManager(zapLogger)
	shutdownMgr.Register(func(ctx context.Context) error {
		notifier.Stop()
		return nil
	})
	shutdownMgr.Register(func(ctx context.Context) error {
		producer.Stop()
		return nil
	})
	shutdownMgr.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})
	shutdownMgr.Register(func(ctx context.Context) error {
		return postgresClient.Close()
	})

	zapLogger.Info("Starting server",
		zap.String("app", appName),
		zap.Int("port", configs.Server.Port),
	)

	srv := server.NewGracefulServer(e, zapLogger, configs.Server.Port, configs.Server.ShutdownTimeout)
	if err := srv.Start(); err != nil {
		zapLogger.Fatal("Failed to start server",
			zap.String("app", appName),
			zap.Error(err),
		)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := shutdownMgr.Shutdown(ctx); err != nil {
		zapLogger.Error("Shutdown finished with errors", zap.Error(err))
	}
}
