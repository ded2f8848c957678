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

	"github.com/DanRulev/wortschatz/internal/api"
	"github.com/DanRulev/wortschatz/internal/bot"
	"github.com/DanRulev/wortschatz/internal/client"
	"github.com/DanRulev/wortschatz/internal/config"
	"github.com/DanRulev/wortschatz/internal/repository"
	"github.com/DanRulev/wortschatz/internal/service"
	"github.com/DanRulev/wortschatz/internal/storage/cache"
	"github.com/DanRulev/wortschatz/internal/storage/db"
	"github.com/DanRulev/wortschatz/internal/storage/memory"
	"github.com/joho/godotenv"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

func setupRepository(cfg *config.Config, logger *zap.Logger) (service.RepositoryI, func(), error) {
	if cfg.Storage.Driver != config.DriverPostgres {
		logger.Info("using in-memory storage")
		return memory.NewStore(), func() {}, nil
	}

	conn, err := db.InitDB(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("using postgres storage", zap.String("host", cfg.DB.Conn.Host), zap.String("db", cfg.DB.Conn.Name))

	return repository.NewRepository(conn), func() {
		if err := conn.Close(); err != nil {
			logger.Warn("failed to close db", zap.Error(err))
		}
	}, nil
}

// expireSessions sweeps quiz sessions nobody finished or abandoned.
func expireSessions(ctx context.Context, quizzes *service.QuizS, ttl time.Duration) {
	ticker := time.NewTicker(max(ttl/4, time.Second))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			quizzes.ExpireSessions(ttl)
		}
	}
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("failed to load .env: %v", err)
	}

	cfg, err := config.Init()
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger := setupLogger(cfg.Env)
	defer func() { _ = logger.Sync() }()

	repo, closeRepo, err := setupRepository(cfg, logger)
	if err != nil {
		logger.Fatal("failed init storage", zap.Error(err))
	}
	defer closeRepo()

	translator := client.InitClients(cfg.Translator, logger)
	sessions := cache.NewCache()
	services := service.InitServices(translator, repo, sessions, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go expireSessions(ctx, services.QuizS, cfg.App.SessionTTL)

	if cfg.BotToken != "" {
		handler, err := bot.NewTelegramAPI(cfg.BotToken, cfg.Env, services, sessions, logger)
		if err != nil {
			logger.Fatal("failed init telegram bot", zap.Error(err))
		}
		go handler.Start(ctx)
	} else {
		logger.Info("bot token not set, telegram bot disabled")
	}

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      api.NewServer(services, logger, api.WithRequestTimeout(cfg.App.Timeout)),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.HTTP.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shut down http server", zap.Error(err))
	}
}
