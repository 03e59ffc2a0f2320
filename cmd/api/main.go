package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"

	"remind-chat-backend/internal/chat"
	"remind-chat-backend/internal/config"
	"remind-chat-backend/internal/db"
	"remind-chat-backend/internal/notify"
	"remind-chat-backend/internal/realtime"
	"remind-chat-backend/internal/scheduler"
	"remind-chat-backend/internal/tasks"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", zap.Error(err))
	}

	database, err := db.Connect(cfg.ConnString())
	if err != nil {
		logger.Fatal("failed to connect DB", zap.Error(err))
	}
	defer database.Close()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("failed to migrate DB", zap.Error(err))
	}

	logger.Info("connected to PostgreSQL")

	store := tasks.NewStore(database)
	sms := notify.NewSMSSender(cfg.Twilio, logger)
	email := notify.NewEmailSender(cfg.SMTP, logger)
	dispatcher := notify.NewDispatcher(sms, email, logger)
	bot := chat.NewBot(store, logger)
	hub := realtime.NewHub(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sweeper := scheduler.New(store, dispatcher,
		time.Duration(cfg.Sweep.Interval)*time.Second, logger)
	go func() {
		if err := sweeper.Run(ctx); err != nil {
			logger.Error("sweeper stopped", zap.Error(err))
		}
	}()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/chat", chat.ChatHandler(bot, logger))
	mux.HandleFunc("/api/health", chat.HealthHandler(sms.Enabled(), email.Enabled()))
	mux.Handle("/ws", hub.Handler())

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(mux)

	logger.Info("API server is running",
		zap.String("addr", cfg.Server.Addr),
		zap.Bool("sms_enabled", sms.Enabled()),
		zap.Bool("email_enabled", email.Enabled()))

	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
