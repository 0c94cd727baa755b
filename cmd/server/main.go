package main

import (
	"fmt"
	"log/slog"
	"os"

	log "github.com/charmbracelet/log"
	"github.com/fintrackhq/fintrack/infra"
	infrarepo "github.com/fintrackhq/fintrack/infra/repository"
	"github.com/fintrackhq/fintrack/pkg/config"
	accountsvc "github.com/fintrackhq/fintrack/pkg/service/account"
	authsvc "github.com/fintrackhq/fintrack/pkg/service/auth"
	"github.com/fintrackhq/fintrack/webapi"

	_ "github.com/fintrackhq/fintrack/cmd/server/swagger"
)

// @title FinTrack API
// @version 1.0.0
// @description Personal finance API: accounts, auth, ownership-scoped access
// @host localhost:8000
// @BasePath /
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	db, err := infra.NewDBConnection(cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.AutoMigrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	authSvc := authsvc.New(uow, *cfg.Auth.Jwt, logger)
	accountSvc := accountsvc.New(uow, logger)

	app := webapi.SetupApp(authSvc, accountSvc, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)
	return app.Listen(addr)
}

// newLogger builds the process logger from LOG_LEVEL / LOG_FORMAT. Any
// format other than "text" gets the JSON handler.
func newLogger(cfg *config.Log) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.Level)}
	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(os.Stderr, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}
