package main

import (
	"fmt"
	"log/slog"

	log "github.com/charmbracelet/log"

	"github.com/msaleh83/investo/infra"
	infrarepo "github.com/msaleh83/investo/infra/repository"
	"github.com/msaleh83/investo/pkg/config"
	"github.com/msaleh83/investo/pkg/provider"
	authsvc "github.com/msaleh83/investo/pkg/service/auth"
	investmentsvc "github.com/msaleh83/investo/pkg/service/investment"
	paymentsvc "github.com/msaleh83/investo/pkg/service/payment"
	usersvc "github.com/msaleh83/investo/pkg/service/user"
	"github.com/msaleh83/investo/webapi"
)

// @title Investo API
// @version 1.0.0
// @description Investment transaction API
// @host localhost:3000
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
	logger := slog.Default()
	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB.Url)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	uow := infrarepo.NewUoW(db)

	registry, err := provider.NewRegistry(
		cfg.Payment.DefaultProvider,
		provider.NewMoyasar(cfg.Payment.MoyasarAPIKey, logger),
		provider.NewStripe(),
		provider.NewPaypal(),
	)
	if err != nil {
		return fmt.Errorf("failed to build provider registry: %w", err)
	}
	payments := paymentsvc.New(registry, cfg.Payment, logger)

	app := webapi.NewApp(webapi.Deps{
		User:       usersvc.New(uow, logger),
		Auth:       authsvc.New(uow, cfg.Jwt, logger),
		Investment: investmentsvc.New(uow, payments, logger),
		Payment:    payments,
		Config:     cfg,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
