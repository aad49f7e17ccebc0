// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"vitalis-server/internal/api"
	"vitalis-server/internal/common/config"
	"vitalis-server/internal/common/database"
	"vitalis-server/internal/common/logger"
	"vitalis-server/internal/directory"
	"vitalis-server/internal/repository"
	"vitalis-server/internal/service/assistant"
	"vitalis-server/internal/service/mailer"
	"vitalis-server/internal/service/messages"
	"vitalis-server/internal/service/notifications"
)

// retryWithBackoff attempts to execute a function with exponential backoff.
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("starting vitalis server",
		zap.String("environment", cfg.App.Environment),
		zap.String("addr", cfg.Server.Addr()),
	)

	ctx := context.Background()

	// --- Message store backend: Redis when reachable, memory otherwise ---
	var msgRepo repository.MessageRepository
	if cfg.Storage.Redis.Address != "" {
		redisClient, _ := database.NewRedis(cfg.Storage.Redis)
		err = retryWithBackoff(func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			return redisClient.Ping(pingCtx)
		}, 3, time.Second, zapLog, "redis connection")
		if err != nil {
			zapLog.Warn("redis unavailable, message log will not survive restarts", zap.Error(err))
			redisClient.Close()
			msgRepo = repository.NewMemoryMessageRepository()
		} else {
			defer redisClient.Close()
			msgRepo = repository.NewRedisMessageRepository(redisClient, cfg.Storage.MessagesKey)
		}
	} else {
		zapLog.Warn("redis not configured, message log will not survive restarts")
		msgRepo = repository.NewMemoryMessageRepository()
	}

	// --- Integrations ---
	mailSvc, err := mailer.New(ctx, cfg.Integrations, log)
	if err != nil {
		zapLog.Fatal("mailer init failed", zap.Error(err))
	}
	if !mailSvc.Enabled() {
		zapLog.Warn("email integration disabled, sends will be logged only")
	}

	dirSvc := directory.New()
	msgSvc := messages.New(msgRepo, mailSvc, log)
	notifSvc := notifications.NewWithSeed()
	assistSvc := assistant.New(cfg.Integrations, dirSvc.Specialties(), log)

	router := api.NewRouter(api.Handlers{
		Email:         api.NewEmailHandler(mailSvc, cfg.Integrations, log),
		Messages:      api.NewMessagesHandler(msgSvc, log),
		Notifications: api.NewNotificationsHandler(notifSvc),
		Directory:     api.NewDirectoryHandler(dirSvc),
		Assistant:     api.NewAssistantHandler(assistSvc),
	}, log)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Engine,
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	zapLog.Info("server listening", zap.String("addr", cfg.Server.Addr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("server stopped")
}
