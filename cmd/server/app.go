package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/taskboard/taskboard-api/internal/api"
	"github.com/taskboard/taskboard-api/internal/api/middleware"
	"github.com/taskboard/taskboard-api/internal/config"
	"github.com/taskboard/taskboard-api/internal/platform/logger"
	"github.com/taskboard/taskboard-api/internal/platform/postgres"
	"github.com/taskboard/taskboard-api/internal/service/auth"
	"github.com/taskboard/taskboard-api/internal/service/tasks"
	"github.com/taskboard/taskboard-api/internal/store"
	"github.com/taskboard/taskboard-api/internal/store/memory"
)

// shutdownTimeout bounds how long in-flight requests may run after a
// termination signal arrives.
const shutdownTimeout = 10 * time.Second

// application holds the fully wired server and the resources it owns.
type application struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	db     *sql.DB // nil when running on in-memory stores
}

// storeSet groups the three repository implementations selected for a
// backend.
type storeSet struct {
	users    store.UserStore
	sessions store.SessionStore
	tasks    store.TaskStore
}

// initializeApp loads configuration, sets up logging, selects the storage
// backend and wires every component explicitly.
func initializeApp(ctx context.Context) (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("database_configured", cfg.Database.URL != ""),
		slog.String("password_hashing", cfg.Auth.PasswordHashing))

	stores, db, err := selectStores(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	scheme, err := selectPasswordScheme(cfg)
	if err != nil {
		return nil, err
	}

	taskService := tasks.NewService(stores.tasks, log)
	authService := auth.NewService(stores.users, stores.sessions, taskService, scheme, log)

	router := api.NewRouter(
		api.NewAuthHandler(authService),
		api.NewTaskHandler(taskService),
		middleware.NewAuthMiddleware(authService),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &application{cfg: cfg, logger: log, server: server, db: db}, nil
}

// selectStores picks the storage backend: a configured database URL means
// postgres with migrations applied at startup, otherwise everything lives
// in memory.
func selectStores(ctx context.Context, cfg *config.Config, log *slog.Logger) (storeSet, *sql.DB, error) {
	if cfg.Database.URL == "" {
		log.Info("no database configured, using in-memory stores")
		return storeSet{
			users:    memory.NewUserStore(),
			sessions: memory.NewSessionStore(),
			tasks:    memory.NewTaskStore(),
		}, nil, nil
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return storeSet{}, nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return storeSet{}, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		return storeSet{}, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("connected to postgres, migrations applied")
	return storeSet{
		users:    postgres.NewUserStore(db, log),
		sessions: postgres.NewSessionStore(db, log),
		tasks:    postgres.NewTaskStore(db, log),
	}, db, nil
}

// selectPasswordScheme maps the configured hashing mode to its
// implementation.
func selectPasswordScheme(cfg *config.Config) (auth.PasswordScheme, error) {
	switch cfg.Auth.PasswordHashing {
	case "plaintext":
		return auth.NewPlaintextScheme(), nil
	case "bcrypt":
		return auth.NewBcryptScheme(), nil
	default:
		return nil, fmt.Errorf("unknown password hashing mode %q", cfg.Auth.PasswordHashing)
	}
}

// Run starts the HTTP server and blocks until the context is cancelled or
// the server fails, then shuts down gracefully.
func (a *application) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", slog.String("addr", a.server.Addr))
		errCh <- a.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}
	return nil
}
