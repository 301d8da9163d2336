package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"smartmeet/config"
	_ "smartmeet/docs" // Swagger docs
	"smartmeet/internal/assistant"
	"smartmeet/internal/auth"
	authVerifier "smartmeet/internal/auth/verifier"
	"smartmeet/internal/httpserver"
	"smartmeet/internal/meeting"
	"smartmeet/pkg/elevenlabs"
	"smartmeet/pkg/encrypter"
	"smartmeet/pkg/gcalendar"
	"smartmeet/pkg/llm"
	"smartmeet/pkg/log"
	"smartmeet/pkg/nldate"
	"smartmeet/pkg/scope"
)

// @title       SmartMeet API
// @description Voice-driven meeting scheduling with natural-language date extraction, OpenAI intent routing, ElevenLabs TTS, and Google Calendar sync.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting SmartMeet...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable yet: %v", err)
	}

	// 4. Shared infrastructure
	jwtManager := scope.NewManager(cfg.JWT.Secret, cfg.JWT.Expiry)
	enc := encrypter.New()
	dates := nldate.New()

	// 5. Optional integrations
	var verifier auth.TokenVerifier
	if cfg.Google.ClientID != "" {
		verifier = authVerifier.NewGoogle(cfg.Google.ClientID)
		logger.Info(ctx, "Google ID token verification enabled")
	} else {
		logger.Warn(ctx, "GOOGLE_CLIENT_ID missing, Google login disabled")
	}

	var intent assistant.Intent
	if cfg.OpenAI.APIKey != "" {
		intent = llm.New(llm.Config{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
		})
		logger.Info(ctx, "OpenAI intent routing enabled")
	} else {
		logger.Warn(ctx, "OPENAI_API_KEY missing, falling back to date-hint classification")
	}

	var speech assistant.Speech
	if cfg.ElevenLabs.APIKey != "" {
		var opts []elevenlabs.Option
		if cfg.ElevenLabs.VoiceID != "" {
			opts = append(opts, elevenlabs.WithVoiceID(cfg.ElevenLabs.VoiceID))
		}
		speech = elevenlabs.NewClient(cfg.ElevenLabs.APIKey, opts...)
		logger.Info(ctx, "ElevenLabs TTS enabled")
	} else {
		logger.Warn(ctx, "ELEVENLABS_API_KEY missing, replies will be text only")
	}

	var calendar meeting.Calendar
	if cfg.Google.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClientFromCredentialsFile(ctx, cfg.Google.CredentialsPath)
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		AppConfig:   cfg,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		JWTManager:  jwtManager,
		Encrypter:   enc,
		Dates:       dates,
		Verifier:    verifier,
		Intent:      intent,
		Speech:      speech,
		Calendar:    calendar,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
