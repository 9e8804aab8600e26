package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/go-pet-adoption-api/internal/application/notification"
	"github.com/go-pet-adoption-api/internal/config"
	"github.com/go-pet-adoption-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/go-pet-adoption-api/internal/infrastructure/jwt"
	natsinfra "github.com/go-pet-adoption-api/internal/infrastructure/nats"
	redisinfra "github.com/go-pet-adoption-api/internal/infrastructure/redis"
	s3infra "github.com/go-pet-adoption-api/internal/infrastructure/s3"
	"github.com/go-pet-adoption-api/internal/infrastructure/smtp"
	"github.com/go-pet-adoption-api/internal/infrastructure/sns"
	"github.com/go-pet-adoption-api/internal/pkg/password"
	transporthttp "github.com/go-pet-adoption-api/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	slog.SetDefault(newLogger(cfg.LogLevel))
	if envErr != nil {
		slog.Info("no .env file found, reading from environment")
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	loc, _ := cfg.MeetingLocation()

	ctx := context.Background()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(ctx, dynamoClient, cfg.DynamoTables)

	petRepo := dynamo.NewPetRepo(dynamoClient, cfg.DynamoTables.Pets)
	if cfg.SeedPets {
		if err := dynamo.SeedPets(ctx, petRepo, dynamo.DefaultPets); err != nil {
			slog.Warn("pet seeding failed", "err", err)
		}
	}

	tokens, err := jwtinfra.NewProvider(jwtinfra.Keys{
		AccessSecret:  []byte(cfg.JWTSecret),
		RefreshSecret: []byte(cfg.RefreshSecret),
		AccessTTL:     cfg.AccessTokenTTL,
		RefreshTTL:    cfg.RefreshTokenTTL,
	})
	if err != nil {
		slog.Error("token provider not available", "err", err)
		os.Exit(1)
	}

	// S3 image store.
	s3Store := s3infra.NewStore(s3infra.NewClient(cfg), cfg.S3BucketName)

	deps := &transporthttp.Deps{
		UserRepo:        dynamo.NewUserRepo(dynamoClient, cfg.DynamoTables.Users),
		MeetingRepo:     dynamo.NewMeetingRepo(dynamoClient, cfg.DynamoTables.Meetings),
		PetRepo:         petRepo,
		Images:          s3Store,
		Tokens:          tokens,
		Hasher:          password.NewHasher(10),
		MeetingLocation: loc,
	}

	// Redis pet cache.
	if cfg.RedisURL != "" {
		if cache, err := redisinfra.NewPetCache(ctx, cfg.RedisURL, cfg.PetsCacheTTL); err == nil {
			deps.PetCache = cache
			defer cache.Close()
		} else {
			slog.Warn("pet cache not available", "err", err)
		}
	}

	notifDeps := notification.ServiceDeps{}

	// SNS SMS sender.
	if cfg.SMSEnabled {
		if sender, err := sns.NewSender(cfg); err == nil {
			notifDeps.SMS = sender
		} else {
			slog.Warn("SNS sender not available", "err", err)
		}
	}
	if cfg.SMTPHost != "" {
		notifDeps.Mailer = smtp.NewMailer(cfg)
	}
	// NATS event publisher.
	if cfg.NATSURL != "" {
		if pub, err := natsinfra.Connect(cfg.NATSURL); err == nil {
			notifDeps.Events = pub
			defer pub.Close()
		} else {
			slog.Warn("NATS publisher not available", "err", err)
		}
	}
	notifier := notification.NewService(notifDeps)
	deps.Notifier = notifier

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.AppPort, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("forced shutdown", "err", err)
	}
	notifier.Wait()
	slog.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
}
