package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"listener-srv/config"
	configRedis "listener-srv/config/redis"
	"listener-srv/internal/alert"
	alertUC "listener-srv/internal/alert/usecase"
	"listener-srv/internal/httpserver"
	keywordRedis "listener-srv/internal/keyword/repository/redis"
	keywordUC "listener-srv/internal/keyword/usecase"
	listenerRedis "listener-srv/internal/listener/delivery/redis"
	listenerTelegram "listener-srv/internal/listener/delivery/telegram"
	listenerUC "listener-srv/internal/listener/usecase"
	notificationRedis "listener-srv/internal/notification/repository/redis"
	"listener-srv/pkg/discord"
	"listener-srv/pkg/log"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to listener-config.yaml")
	pflag.Parse()

	// .env is optional; real environment variables win
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Println("Failed to load config:", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Listener Service...")

	// Discord webhook (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Warnf(ctx, "Failed to initialize Discord webhook: %v", err)
			discordClient = nil
		} else {
			defer discordClient.Close()
			logger.Info(ctx, "Discord webhook initialized")
		}
	}

	// Redis - rule store, notification queues and inbound pub/sub
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Errorf(ctx, "Failed to connect to Redis: %v", err)
		return
	}
	defer redisClient.Close()
	logger.Infof(ctx, "Redis client initialized")

	// Telegram Bot API (optional)
	selfID := cfg.Listener.SelfID
	var bot *tgbotapi.BotAPI
	if cfg.Telegram.BotToken != "" {
		bot, err = tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize Telegram bot: %v", err)
			return
		}
		bot.Debug = cfg.Telegram.Debug
		if selfID == 0 {
			selfID = bot.Self.ID
		}
		logger.Infof(ctx, "Telegram bot authorized as @%s", bot.Self.UserName)
	}

	// Repositories
	ruleRepo := keywordRedis.New(logger, redisClient, cfg.Listener.KeywordsKey)
	queue := notificationRedis.New(logger, redisClient, notificationRedis.Options{
		KeyPrefix: cfg.Listener.PushKeyPrefix,
		TTL:       cfg.Listener.PushTTL,
	})

	// Usecases
	var alerts alert.UseCase
	if discordClient != nil {
		alerts = alertUC.New(logger, discordClient, alertUC.DefaultCooldown)
	}
	matcher := keywordUC.New()
	pipeline := listenerUC.New(logger, ruleRepo, matcher, queue, listenerUC.Options{
		SelfID:       selfID,
		StoreTimeout: cfg.Listener.StoreTimeout,
		Alerts:       alerts,
	})

	// Inbound: Redis Pub/Sub
	subscriber := listenerRedis.New(redisClient, pipeline, logger, listenerRedis.Options{
		Channel:     cfg.Listener.InboundChannel,
		MaxInFlight: int64(cfg.Listener.MaxInFlight),
	})
	if err := subscriber.Start(); err != nil {
		logger.Errorf(ctx, "Failed to start Redis subscriber: %v", err)
		return
	}
	logger.Infof(ctx, "Redis Pub/Sub subscriber started on %s", cfg.Listener.InboundChannel)

	// Inbound: Telegram long poll
	var consumer listenerTelegram.Consumer
	if bot != nil {
		consumer = listenerTelegram.New(bot, pipeline, logger, listenerTelegram.Options{
			SelfID:      selfID,
			PollTimeout: cfg.Telegram.PollTimeout,
			MaxInFlight: int64(cfg.Listener.MaxInFlight),
		})
		if err := consumer.Start(); err != nil {
			logger.Errorf(ctx, "Failed to start Telegram consumer: %v", err)
			return
		}
		logger.Info(ctx, "Telegram consumer started")
	}

	// Inbound: internal HTTP API
	srv, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.Server.Host,
		Port:        cfg.Server.Port,
		Mode:        cfg.Server.Mode,
		ListenerUC:  pipeline,
		Queue:       queue,
		InternalKey: cfg.Internal.InternalKey,
		Redis:       redisClient,
		Discord:     discordClient,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	go func() {
		if err := srv.Run(); err != nil {
			logger.Errorf(ctx, "Server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Stop intake first, then let in-flight messages finish
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "Error shutting down server: %v", err)
	}

	if consumer != nil {
		if err := consumer.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(ctx, "Error shutting down Telegram consumer: %v", err)
		}
	}

	if err := subscriber.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "Error shutting down Redis subscriber: %v", err)
	}

	logger.Info(ctx, "Listener service stopped gracefully")
}
