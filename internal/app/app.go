package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/sundayezeilo/linkshort/internal/config"
	"github.com/sundayezeilo/linkshort/internal/db"
	"github.com/sundayezeilo/linkshort/internal/server"
	"github.com/sundayezeilo/linkshort/internal/shortener"
)

// App holds the application dependencies and configuration.
type App struct {
	Config  *config.Config
	Logger  *slog.Logger
	DBPool  *pgxpool.Pool
	Server  *server.Server
	Handler *shortener.Handler
}

// New initializes and returns a new App instance with all dependencies wired up.
// Pending migrations are applied before the server is built.
func New(ctx context.Context) (*App, error) {
	LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := SetupLogger(cfg.App.LogLevel).With(
		"service", cfg.App.ServiceName,
		"version", cfg.App.ServiceVersion,
	)

	logger.Info("starting application", "env", cfg.App.Environment)

	if err := db.Migrate(cfg.Database.URL(), logger); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	dbPool, err := ConnectDatabase(ctx, &cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	repo := shortener.NewRepository(db.NewStore(dbPool))
	svc := shortener.NewService(repo, &shortener.ServiceConfig{
		CodeRetries:  cfg.Links.CodeRetries,
		MaxListLimit: cfg.Links.ListMax,
	})

	assets := server.NewStaticAssets(cfg.Links.StaticDir, logger)
	handler := shortener.NewHandler(shortener.HandlerConfig{
		Service:     svc,
		Logger:      logger,
		BaseURL:     cfg.Server.BaseURL,
		ListDefault: cfg.Links.ListDefault,
		Assets:      assets,
	})

	srv := server.New(cfg, logger, handler, assets)

	logger.Info("application initialized",
		"addr", cfg.Server.Addr(),
		"base_url", cfg.Server.BaseURL,
		"static_dir", cfg.Links.StaticDir,
	)

	return &App{
		Config:  cfg,
		Logger:  logger,
		DBPool:  dbPool,
		Server:  srv,
		Handler: handler,
	}, nil
}

// Start starts the application server.
func (a *App) Start(ctx context.Context) error {
	if err := a.Server.Start(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// Shutdown releases the database pool.
func (a *App) Shutdown() {
	a.Logger.Info("shutting down application")

	if a.DBPool != nil {
		a.DBPool.Close()
		a.Logger.Info("database connection closed")
	}
}

// LoadEnv loads a .env file in development and test environments. A missing
// file is not an error.
func LoadEnv() {
	env := os.Getenv("APP_ENV")
	if env == "" || env == "development" || env == "test" {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file found.")
		}
	}
}

// SetupLogger creates a JSON logger at the given level.
func SetupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	return slog.New(handler)
}

// ConnectDatabase opens and pings a PostgreSQL pool.
func ConnectDatabase(ctx context.Context, cfg *config.DatabaseConfig, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	poolConfig.MaxConns = cfg.MaxConns
	poolConfig.MinConns = cfg.MinConns

	logger.Info("connecting to database",
		"host", cfg.Host,
		"port", cfg.Port,
		"database", cfg.Name,
	)

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")

	return pool, nil
}
