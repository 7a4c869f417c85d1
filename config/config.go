package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	Server ServerConfig
	Logger LoggerConfig

	// Redis Configuration
	Redis RedisConfig

	// Pipeline Configuration
	Listener ListenerConfig
	Telegram TelegramConfig

	// Internal API Configuration
	Internal InternalConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// ServerConfig is the configuration for the HTTP server
type ServerConfig struct {
	Host string
	Port int
	Mode string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	UseTLS   bool

	// Connection pool settings
	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}

// ListenerConfig is the configuration for the keyword pipeline.
type ListenerConfig struct {
	// SelfID is the account whose own messages are never matched. Zero
	// falls back to the Telegram bot identity when a bot token is set.
	SelfID         int64
	KeywordsKey    string
	PushKeyPrefix  string
	PushTTL        time.Duration
	StoreTimeout   time.Duration
	InboundChannel string
	MaxInFlight    int
}

// TelegramConfig is the configuration for the Telegram Bot API consumer.
// An empty BotToken disables the consumer.
type TelegramConfig struct {
	BotToken    string
	PollTimeout int
	Debug       bool
}

// InternalConfig is the configuration for the internal API
type InternalConfig struct {
	InternalKey string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper. When path is empty the usual
// search paths are tried for listener-config.yaml.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("listener-config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/listener/")
	}

	// Enable environment variable override
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// Read config file (optional - will use env vars if file not found)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment
	cfg.Environment.Name = v.GetString("environment.name")

	// Server
	cfg.Server.Host = v.GetString("server.host")
	cfg.Server.Port = v.GetInt("server.port")
	cfg.Server.Mode = v.GetString("server.mode")

	// Logger
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Redis
	cfg.Redis.Host = v.GetString("redis.host")
	cfg.Redis.Port = v.GetInt("redis.port")
	cfg.Redis.Password = v.GetString("redis.password")
	cfg.Redis.DB = v.GetInt("redis.db")
	cfg.Redis.UseTLS = v.GetBool("redis.use_tls")
	cfg.Redis.MaxRetries = v.GetInt("redis.max_retries")
	cfg.Redis.MinIdleConns = v.GetInt("redis.min_idle_conns")
	cfg.Redis.PoolSize = v.GetInt("redis.pool_size")
	cfg.Redis.PoolTimeout = v.GetDuration("redis.pool_timeout")
	cfg.Redis.ConnMaxIdleTime = v.GetDuration("redis.conn_max_idle_time")
	cfg.Redis.ConnMaxLifetime = v.GetDuration("redis.conn_max_lifetime")

	// Listener
	cfg.Listener.SelfID = v.GetInt64("listener.self_id")
	cfg.Listener.KeywordsKey = v.GetString("listener.keywords_key")
	cfg.Listener.PushKeyPrefix = v.GetString("listener.push_key_prefix")
	cfg.Listener.PushTTL = v.GetDuration("listener.push_ttl")
	cfg.Listener.StoreTimeout = v.GetDuration("listener.store_timeout")
	cfg.Listener.InboundChannel = v.GetString("listener.inbound_channel")
	cfg.Listener.MaxInFlight = v.GetInt("listener.max_in_flight")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.PollTimeout = v.GetInt("telegram.poll_timeout")
	cfg.Telegram.Debug = v.GetBool("telegram.debug")

	// Internal
	cfg.Internal.InternalKey = v.GetString("internal.internal_key")

	// Discord
	cfg.Discord.WebhookID = v.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = v.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Environment
	v.SetDefault("environment.name", "production")

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")

	// Logger
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "production")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("logger.color_enabled", false)

	// Redis
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.use_tls", false)
	v.SetDefault("redis.max_retries", 3)
	v.SetDefault("redis.min_idle_conns", 10)
	v.SetDefault("redis.pool_size", 100)
	v.SetDefault("redis.pool_timeout", 4*time.Second)
	v.SetDefault("redis.conn_max_idle_time", 5*time.Minute)
	v.SetDefault("redis.conn_max_lifetime", 30*time.Minute)

	// Listener
	v.SetDefault("listener.self_id", 0)
	v.SetDefault("listener.keywords_key", "listener:keywords")
	v.SetDefault("listener.push_key_prefix", "listener:push:messages:")
	v.SetDefault("listener.push_ttl", 24*time.Hour)
	v.SetDefault("listener.store_timeout", 3*time.Second)
	v.SetDefault("listener.inbound_channel", "listener:inbound")
	v.SetDefault("listener.max_in_flight", 64)

	// Telegram
	v.SetDefault("telegram.bot_token", "")
	v.SetDefault("telegram.poll_timeout", 60)
	v.SetDefault("telegram.debug", false)

	// Internal
	v.SetDefault("internal.internal_key", "")

	// Discord
	v.SetDefault("discord.webhook_id", "")
	v.SetDefault("discord.webhook_token", "")
}

func validate(cfg *Config) error {
	// Validate Redis
	if cfg.Redis.Host == "" {
		return fmt.Errorf("redis.host is required")
	}
	if cfg.Redis.Port == 0 {
		return fmt.Errorf("redis.port is required")
	}

	// Validate Listener
	if cfg.Listener.KeywordsKey == "" {
		return fmt.Errorf("listener.keywords_key is required")
	}
	if cfg.Listener.PushKeyPrefix == "" {
		return fmt.Errorf("listener.push_key_prefix is required")
	}
	if cfg.Listener.PushTTL <= 0 {
		return fmt.Errorf("listener.push_ttl must be positive")
	}
	if cfg.Listener.MaxInFlight <= 0 {
		return fmt.Errorf("listener.max_in_flight must be positive")
	}

	// Validate Internal
	if cfg.Internal.InternalKey != "" && len(cfg.Internal.InternalKey) < 16 {
		return fmt.Errorf("internal.internal_key must be at least 16 characters")
	}

	return nil
}
