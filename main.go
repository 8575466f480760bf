// File: homebook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"homebook/clock"
	"homebook/config"
	"homebook/cron"
	"homebook/handlers"
	"homebook/middleware"
	"homebook/routes"
	"homebook/services/booking"
	"homebook/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	clk := clock.NewReal()
	settings := config.AppConfig.Simulation()

	// Session snapshots live in memory unless Redis is configured.
	var store booking.SnapshotStore
	var redisClients []*redis.Client
	var sweepers []cron.Sweeper
	switch config.AppConfig.SessionStore {
	case "redis":
		client := utils.GetSessionCacheClient()
		redisClients = append(redisClients, client)
		store = booking.NewRedisSnapshotStore(client, settings.SessionTTL)
	default:
		memStore := booking.NewMemorySnapshotStore(clk, settings.SessionTTL)
		sweepers = append(sweepers, memStore)
		store = memStore
	}

	healthCtx, stopHealth := context.WithCancel(context.Background())
	defer stopHealth()
	utils.StartHealthMonitor(healthCtx, redisClients, 60*time.Second)

	// services.
	paymentHandler := booking.NewPaymentHandler(logger, clk)
	bookingService := booking.NewBookingSessionService(clk, settings, store, paymentHandler, logger)
	bookingService.OnEvent(func(e booking.Event) {
		logger.Debug("booking event",
			zap.String("sessionID", e.SessionID), zap.String("kind", e.Kind), zap.String("stage", string(e.Stage)))
	})

	// Idle attempts are expired before their snapshots age out of memory.
	stopSweeper := cron.StartSessionSweeper(clk, time.Minute, logger, append([]cron.Sweeper{bookingService}, sweepers...)...)
	defer stopSweeper()

	bookingHandler := handlers.NewBookingHandler(bookingService, logger)
	handlerBundle := handlers.NewHandlerBundle(bookingHandler, routes.HealthHandler)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(handlers.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin, logger))

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s (session store: %s)...", srv.Addr, config.AppConfig.SessionStore)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
