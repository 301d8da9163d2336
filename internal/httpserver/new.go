package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"smartmeet/config"
	"smartmeet/internal/assistant"
	"smartmeet/internal/auth"
	"smartmeet/internal/meeting"
	"smartmeet/pkg/encrypter"
	"smartmeet/pkg/log"
	"smartmeet/pkg/nldate"
	"smartmeet/pkg/scope"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	cfg         *config.Config
	port        int
	mode        string
	environment string

	// Shared infrastructure
	postgresDB *sql.DB
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
	dates      *nldate.Parser

	// Optional integrations, nil when not configured
	verifier auth.TokenVerifier
	intent   assistant.Intent
	speech   assistant.Speech
	calendar meeting.Calendar
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	AppConfig   *config.Config
	Port        int
	Mode        string
	Environment string

	PostgresDB *sql.DB
	JWTManager scope.Manager
	Encrypter  encrypter.Encrypter
	Dates      *nldate.Parser

	// Optional integrations, nil when not configured
	Verifier auth.TokenVerifier
	Intent   assistant.Intent
	Speech   assistant.Speech
	Calendar meeting.Calendar
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		cfg:         cfg.AppConfig,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		postgresDB:  cfg.PostgresDB,
		jwtManager:  cfg.JWTManager,
		encrypter:   cfg.Encrypter,
		dates:       cfg.Dates,
		verifier:    cfg.Verifier,
		intent:      cfg.Intent,
		speech:      cfg.Speech,
		calendar:    cfg.Calendar,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwt manager is required")
	}
	if srv.encrypter == nil {
		return errors.New("encrypter is required")
	}
	if srv.dates == nil {
		return errors.New("date parser is required")
	}
	return nil
}
