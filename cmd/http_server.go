package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/frahmantamala/donation-platform/internal"
	"github.com/frahmantamala/donation-platform/internal/allocation"
	allocationdb "github.com/frahmantamala/donation-platform/internal/allocation/postgres"
	"github.com/frahmantamala/donation-platform/internal/auth"
	authdb "github.com/frahmantamala/donation-platform/internal/auth/postgres"
	"github.com/frahmantamala/donation-platform/internal/campaign"
	campaigndb "github.com/frahmantamala/donation-platform/internal/campaign/postgres"
	"github.com/frahmantamala/donation-platform/internal/core/events"
	"github.com/frahmantamala/donation-platform/internal/donation"
	donationdb "github.com/frahmantamala/donation-platform/internal/donation/postgres"
	"github.com/frahmantamala/donation-platform/internal/expense"
	expensedb "github.com/frahmantamala/donation-platform/internal/expense/postgres"
	"github.com/frahmantamala/donation-platform/internal/ngo"
	ngodb "github.com/frahmantamala/donation-platform/internal/ngo/postgres"
	"github.com/frahmantamala/donation-platform/internal/notification"
	"github.com/frahmantamala/donation-platform/internal/stats"
	statsdb "github.com/frahmantamala/donation-platform/internal/stats/postgres"
	"github.com/frahmantamala/donation-platform/internal/transport/rest"
	"github.com/frahmantamala/donation-platform/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	log := deps.Logger
	cfg := deps.Config

	bus := events.NewEventBus(log)

	authRepo := authdb.NewAuthRepository(deps.GormDB)
	tokenGen := auth.NewJWTTokenGenerator(
		cfg.Security.AccessTokenSecret,
		cfg.Security.RefreshTokenSecret,
		cfg.Security.AccessTokenDuration,
		cfg.Security.RefreshTokenDuration,
	)
	authService := auth.NewService(authRepo, tokenGen, log, cfg.Security.BCryptCost)

	ngoService := ngo.NewService(ngodb.NewNGORepository(deps.GormDB), log)
	campaignService := campaign.NewService(campaigndb.NewCampaignRepository(deps.GormDB), bus, log)
	donationService := donation.NewService(donationdb.NewDonationRepository(deps.GormDB), bus, log)
	expenseService := expense.NewService(expensedb.NewExpenseRepository(deps.GormDB), log)
	allocationService := allocation.NewService(allocationdb.NewAllocationRepository(deps.GormDB), log)
	statsService := stats.NewService(statsdb.NewStatsRepository(deps.GormDB), log)

	mailer := notification.NewReceiptMailer(cfg.Mail, authRepo, log)
	mailer.Register(bus)

	handlers := rest.Handlers{
		Auth:       auth.NewHandler(authService),
		NGO:        ngo.NewHandler(ngoService),
		Campaign:   campaign.NewHandler(campaignService),
		Donation:   donation.NewHandler(donationService),
		Expense:    expense.NewHandler(expenseService),
		Allocation: allocation.NewHandler(allocationService),
		Stats:      stats.NewHandler(statsService),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, cfg.Server.AllowedOrigins, log)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Observability.Logging.Level, config.Observability.Logging.Format)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize gorm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.Default(),
		DB:     db,
		GormDB: gormDB,
		Router: chi.NewRouter(),
	}, nil
}

// initDB opens the pgx stdlib connection and applies the pool settings.
func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)
	dbConn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	dbConn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}
