package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"

	"github.com/abdul977/lodgebooker/internal/config"
	"github.com/abdul977/lodgebooker/internal/dispatcher"
	"github.com/abdul977/lodgebooker/internal/domain"
	"github.com/abdul977/lodgebooker/internal/handler"
	"github.com/abdul977/lodgebooker/internal/letter"
	"github.com/abdul977/lodgebooker/internal/middleware"
	"github.com/abdul977/lodgebooker/internal/notification"
	"github.com/abdul977/lodgebooker/internal/repository"
	"github.com/abdul977/lodgebooker/internal/router"
	"github.com/abdul977/lodgebooker/internal/service"
	"github.com/abdul977/lodgebooker/internal/storage"
)

const migrationsDir = "migrations"

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	httpServer *http.Server
	dispatcher *dispatcher.Dispatcher
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"LodgeBooker",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initServices() error {
	profileRepo := repository.NewProfileRepo(a.db)
	roomRepo := repository.NewRoomRepo(a.db)
	bookingRepo := repository.NewBookingRepo(a.db)
	receiptRepo := repository.NewReceiptRepo(a.db)
	verificationRepo := repository.NewVerificationRepo(a.db)
	outboxRepo := repository.NewOutboxRepo(a.db)

	store, err := storage.NewReceiptStore(context.Background(), a.cfg.Storage)
	if err != nil {
		return fmt.Errorf("init receipt store: %w", err)
	}

	notifier := notification.NewOutboxNotifier(outboxRepo, a.log)
	mailer := notification.NewSMTPMailer(a.cfg.SMTP, a.log)

	authService := service.NewAuthService(profileRepo, notifier, service.AuthConfig{
		JWTSecret:     a.cfg.Auth.JWTSecret,
		TokenTTL:      a.cfg.Auth.TokenTTL,
		ResetTokenTTL: a.cfg.Auth.ResetTokenTTL,
		ResetBaseURL:  a.cfg.Auth.ResetBaseURL,
	}, a.log)

	bookingService := service.NewBookingService(bookingRepo, roomRepo, a.log)
	paymentService := service.NewPaymentService(
		receiptRepo,
		verificationRepo,
		bookingRepo,
		profileRepo,
		store,
		notifier,
		domain.PaymentInstructions{
			BankName:      a.cfg.Bank.Name,
			AccountNumber: a.cfg.Bank.AccountNumber,
			AccountName:   a.cfg.Bank.AccountName,
		},
		a.log,
	)
	userService := service.NewUserService(profileRepo, bookingRepo, receiptRepo, notifier, a.log)
	letterService := service.NewLetterService(
		profileRepo,
		letter.NewRenderer(a.cfg.Letter.Organization, a.cfg.Letter.Chapter),
	)
	notificationService := service.NewNotificationService(
		outboxRepo,
		mailer,
		a.cfg.Dispatcher.BatchSize,
		a.log,
	)

	a.dispatcher = dispatcher.New(
		notificationService,
		a.cfg.Dispatcher.Interval,
		a.log,
	)

	guard := middleware.NewGuard(profileRepo, a.log)

	h := handler.NewHandler(authService, bookingService, paymentService, userService, letterService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Guards{
			Session: middleware.Session(authService),
			User:    guard.RequireUser(),
			Staff:   guard.RequireStaff(),
		},
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.dispatcher.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
