package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage & auth
	Postgres PostgresConfig
	JWT      JWTConfig
	Google   GoogleConfig

	// Assistant integrations
	OpenAI     OpenAIConfig
	ElevenLabs ElevenLabsConfig

	// Request shaping
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	URL      string // full connection URL, overrides the discrete fields
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// DSN renders the lib/pq connection string.
func (c PostgresConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type GoogleConfig struct {
	ClientID        string
	CredentialsPath string
	CalendarID      string
	Timezone        string // IANA name for calendar events
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type ElevenLabsConfig struct {
	APIKey  string
	VoiceID string
}

type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/smartmeet/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/smartmeet/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.Database = viper.GetString("postgres.database")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	cfg.Postgres.URL = viper.GetString("postgres.url")
	if dbURL := viper.GetString("database_url"); dbURL != "" {
		cfg.Postgres.URL = dbURL
	}

	// JWT
	cfg.JWT.Secret = viper.GetString("jwt.secret")
	if jwtSecret := viper.GetString("jwt_secret_key"); jwtSecret != "" {
		cfg.JWT.Secret = jwtSecret
	}
	cfg.JWT.Expiry = viper.GetDuration("jwt.expiry")
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required")
	}

	// Google
	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.CredentialsPath = viper.GetString("google.credentials_path")
	cfg.Google.CalendarID = viper.GetString("google.calendar_id")
	cfg.Google.Timezone = viper.GetString("google.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.Google.CredentialsPath = googleCreds
	}

	// OpenAI
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	if openaiKey := viper.GetString("openai_api_key"); openaiKey != "" {
		cfg.OpenAI.APIKey = openaiKey
	}

	// ElevenLabs
	cfg.ElevenLabs.APIKey = viper.GetString("elevenlabs.api_key")
	cfg.ElevenLabs.VoiceID = viper.GetString("elevenlabs.voice_id")
	if elevenKey := viper.GetString("elevenlabs_api_key"); elevenKey != "" {
		cfg.ElevenLabs.APIKey = elevenKey
	}

	// Rate limiting
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "smartmeet")
	viper.SetDefault("postgres.database", "smartmeet")
	viper.SetDefault("postgres.ssl_mode", "disable")
	viper.SetDefault("jwt.expiry", "12h")
	viper.SetDefault("google.timezone", "UTC")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("rate_limit.burst", 10)
}
