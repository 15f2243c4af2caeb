// Package app assembles the organization service: configuration, logging,
// database, services, and the HTTP server lifecycle.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/quorumhq/quorum/internal/org/http"
	"github.com/quorumhq/quorum/internal/org/mail"
	"github.com/quorumhq/quorum/internal/org/service"
	"github.com/quorumhq/quorum/internal/org/store"
	"github.com/quorumhq/quorum/internal/org/store/drivers/sqlite"
	"github.com/quorumhq/quorum/pkg/jwtx"
	"github.com/quorumhq/quorum/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the organization service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	codec  *jwtx.HS256
	mailer mail.Mailer

	inviteService       *service.InviteService
	requestService      *service.RequestService
	userService         *service.UserService
	organizationService *service.OrganizationService
	membershipService   *service.MembershipService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "org-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.codec = jwtx.NewHS256([]byte(cfg.TokenSecret), cfg.BaseURL)
	app.initMailer()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("org service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down org service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("org service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initMailer picks the SMTP relay when one is configured, otherwise a
// logging mailer so development setups need no mail infrastructure.
func (app *Application) initMailer() {
	if app.cfg.SMTPHost == "" {
		app.mailer = &mail.LogMailer{}
		app.logger.Info("no SMTP host configured, invitation emails will be logged")
		return
	}

	var auth smtp.Auth
	if app.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", app.cfg.SMTPUsername, app.cfg.SMTPPassword, app.cfg.SMTPHost)
	}
	app.mailer = &mail.SMTPMailer{
		Addr: fmt.Sprintf("%s:%d", app.cfg.SMTPHost, app.cfg.SMTPPort),
		From: app.cfg.SMTPFrom,
		Auth: auth,
	}
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.inviteService = &service.InviteService{
		Store:   app.db,
		Codec:   app.codec,
		Mailer:  app.mailer,
		BaseURL: app.cfg.BaseURL,
	}

	app.requestService = &service.RequestService{Store: app.db}
	app.userService = &service.UserService{Store: app.db}
	app.organizationService = &service.OrganizationService{Store: app.db}
	app.membershipService = &service.MembershipService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.codec,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.InviteService = app.inviteService
	router.RequestService = app.requestService
	router.UserService = app.userService
	router.OrganizationService = app.organizationService
	router.MembershipService = app.membershipService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
