package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/RepliqStudio/repliq/config"
	"github.com/RepliqStudio/repliq/internal/database"
	"github.com/RepliqStudio/repliq/internal/domain"
	apihttp "github.com/RepliqStudio/repliq/internal/http"
	"github.com/RepliqStudio/repliq/internal/http/middleware"
	"github.com/RepliqStudio/repliq/internal/repository"
	"github.com/RepliqStudio/repliq/internal/service"
	"github.com/RepliqStudio/repliq/pkg/logger"
	"github.com/RepliqStudio/repliq/pkg/storage"
)

// App owns the lifecycle of every component: database, repositories,
// services, handlers and the HTTP server.
type App struct {
	config     *config.Config
	logger     logger.Logger
	db         *sql.DB
	mockDB     bool
	httpClient domain.HTTPClient
	mux        *http.ServeMux
	server     *http.Server

	// Repositories
	websiteRepo domain.WebsiteRepository
	videoRepo   domain.VideoRepository
	kvRepo      *repository.KVRepository

	// Services
	websiteService  domain.WebsiteService
	videoService    domain.VideoService
	composerService domain.ComposerService
	settingsStore   *storage.Store
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithMockDB configures the app to use a mock database
func WithMockDB(db *sql.DB) AppOption {
	return func(a *App) {
		a.db = db
		a.mockDB = true
	}
}

// WithHTTPClient sets the client used for outbound composition requests
func WithHTTPClient(client domain.HTTPClient) AppOption {
	return func(a *App) {
		a.httpClient = client
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) *App {
	a := &App{
		config: cfg,
		mux:    http.NewServeMux(),
	}

	for _, opt := range opts {
		opt(a)
	}

	if a.logger == nil {
		a.logger = logger.NewLoggerWithLevel(cfg.LogLevel)
	}
	if a.httpClient == nil {
		a.httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	return a
}

// InitDB connects to Postgres and runs the idempotent schema statements
func (a *App) InitDB() error {
	if a.mockDB {
		a.logger.Info("Using mock database")
		return database.InitializeDatabase(a.db)
	}

	db, err := database.Connect(&a.config.Database, a.config.Environment)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db

	if err := database.InitializeDatabase(a.db); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}

	a.logger.Info("Database initialized")
	return nil
}

// InitRepositories creates all repositories
func (a *App) InitRepositories() error {
	if a.db == nil {
		return fmt.Errorf("database not initialized")
	}

	a.websiteRepo = repository.NewWebsiteRepository(a.db)
	a.videoRepo = repository.NewVideoRepository(a.db)
	a.kvRepo = repository.NewKVRepository(a.db)
	return nil
}

// InitServices creates all services
func (a *App) InitServices() error {
	a.composerService = service.NewComposerService(a.httpClient, a.config.Composer.Endpoint, a.logger)
	a.websiteService = service.NewWebsiteService(a.websiteRepo, a.logger)
	a.videoService = service.NewVideoService(a.videoRepo, a.composerService, a.logger)
	a.settingsStore = storage.NewStore(a.kvRepo)
	return nil
}

// InitHandlers registers all HTTP routes on the mux
func (a *App) InitHandlers() error {
	apihttp.NewRootHandler().RegisterRoutes(a.mux)
	apihttp.NewWebsiteHandler(a.websiteService, a.logger).RegisterRoutes(a.mux)
	apihttp.NewVideoHandler(a.videoService, a.logger).RegisterRoutes(a.mux)
	return nil
}

// Initialize runs all initialization stages in order
func (a *App) Initialize() error {
	if err := a.InitDB(); err != nil {
		return err
	}
	if err := a.InitRepositories(); err != nil {
		return err
	}
	if err := a.InitServices(); err != nil {
		return err
	}
	return a.InitHandlers()
}

// Start runs the HTTP server. It blocks until the server stops.
func (a *App) Start() error {
	handler := middleware.CORSMiddleware(a.config.CORSOrigin)(a.mux)

	addr := fmt.Sprintf("%s:%d", a.config.Server.Host, a.config.Server.Port)
	a.logger.WithField("address", addr).Info(fmt.Sprintf("Server starting on %s", addr))

	a.server = &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	return a.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and closes the database
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Starting graceful shutdown...")

	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.WithField("error", err.Error()).Error("Server shutdown failed")
			return err
		}
	}

	if a.db != nil && !a.mockDB {
		if err := a.db.Close(); err != nil {
			a.logger.WithField("error", err.Error()).Error("Database close failed")
			return err
		}
	}

	a.logger.Info("Shutdown complete")
	return nil
}

// GetConfig returns the application config
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the application logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}

// GetMux returns the route mux, handy for tests
func (a *App) GetMux() *http.ServeMux {
	return a.mux
}

// GetDB returns the database handle
func (a *App) GetDB() *sql.DB {
	return a.db
}

// GetSettingsStore returns the key/value settings store
func (a *App) GetSettingsStore() *storage.Store {
	return a.settingsStore
}
