package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "github.com/d60-Lab/desi-delights/internal/api"
    "github.com/d60-Lab/desi-delights/internal/api/handler"
    "github.com/d60-Lab/desi-delights/internal/cache"
    "github.com/d60-Lab/desi-delights/internal/config"
    "github.com/d60-Lab/desi-delights/internal/database"
    "github.com/d60-Lab/desi-delights/internal/repository"
    "github.com/d60-Lab/desi-delights/internal/service"
    "github.com/d60-Lab/desi-delights/internal/telemetry"
    "github.com/d60-Lab/desi-delights/pkg/logger"
)

func main() {
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    cfg, err := config.Load()
    if err != nil {
        panic(err)
    }
    if err := logger.Init(cfg.Server.Mode == "debug"); err != nil {
        panic(err)
    }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        } else {
            defer sentry.Flush(2 * time.Second)
        }
    }

    shutdownTracing, err := telemetry.Setup(ctx, cfg.Otel.Endpoint)
    if err != nil {
        logger.Warn("tracing init failed", zap.Error(err))
        shutdownTracing = func(context.Context) error { return nil }
    }

    db, err := database.Open(cfg.Database.Driver, cfg.Database.DSN)
    if err != nil {
        logger.Error("database open failed", zap.Error(err))
        os.Exit(1)
    }
    if err := database.Migrate(db); err != nil {
        logger.Error("migrate failed", zap.Error(err))
        os.Exit(1)
    }
    logger.Info("database ready", zap.String("driver", cfg.Database.Driver))

    store := cache.New(ctx, cache.Options{
        RedisAddr:     cfg.Redis.Addr,
        RedisPassword: cfg.Redis.Password,
        RedisDB:       cfg.Redis.DB,
    })

    productRepo := repository.NewProductRepository(db)
    orderRepo := repository.NewOrderRepository(db)
    userRepo := repository.NewUserRepository(db)

    alerts := service.NewStockAlert(db, cfg.Alerts.LowStockThreshold, 1024)
    stopAlerts := alerts.Start(2)

    authSvc := service.NewAuthService(userRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
    productSvc := service.NewProductService(productRepo, store, cfg.Cache.ProductTTL)
    orderSvc := service.NewOrderService(db, orderRepo, store, alerts)
    catalogSvc := service.NewCatalogService(db)
    reviewSvc := service.NewReviewService(db)
    staffSvc := service.NewStaffService(db)
    cmsSvc := service.NewCMSService(db)
    inquirySvc := service.NewInquiryService(db)
    reportSvc := service.NewReportService(db, cfg.Alerts.LowStockThreshold)

    h := handler.New(authSvc, productSvc, orderSvc, catalogSvc, reviewSvc, staffSvc, cmsSvc, inquirySvc, reportSvc)

    mode := gin.ReleaseMode
    if cfg.Server.Mode == "debug" {
        mode = gin.DebugMode
    }
    router := api.NewRouter(h, authSvc, api.Options{
        Mode:          mode,
        SentryEnabled: cfg.Sentry.DSN != "",
    })

    srv := &http.Server{Addr: cfg.Server.Port, Handler: router}
    go func() {
        logger.Info("http server listening", zap.String("addr", cfg.Server.Port))
        if err := srv.ListenAndServe(); err != http.ErrServerClosed {
            logger.Error("http server error", zap.Error(err))
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
    <-quit
    logger.Info("shutting down")

    shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer shutdownCancel()
    _ = srv.Shutdown(shutdownCtx)
    _ = stopAlerts(shutdownCtx)
    _ = shutdownTracing(shutdownCtx)
    _ = database.Close(db)
    logger.Info("bye")
}
