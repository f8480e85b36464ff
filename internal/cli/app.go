// Package cli wires scanclip's use cases and adapters for the Cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/scanclip/internal/application/usecase"
	"github.com/bnema/scanclip/internal/cli/styles"
	"github.com/bnema/scanclip/internal/domain/build"
	"github.com/bnema/scanclip/internal/domain/repository"
	"github.com/bnema/scanclip/internal/infrastructure/config"
	"github.com/bnema/scanclip/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/scanclip/internal/logging"
)

// AppOptions controls how the App is initialized.
type AppOptions struct {
	// ConfigFile overrides the XDG config file when set.
	ConfigFile string
	// LogToFile sends logs to the configured log file instead of stderr.
	// Set when a TUI owns the terminal.
	LogToFile bool
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Permission outcomes, opened on first use.
	db       *sqlite.LazyDB
	permRepo repository.PermissionRepository
	Gate     *usecase.PermissionGate

	SchemaUC *usecase.GetConfigSchemaUseCase

	// Context with logger
	ctx       context.Context
	logCloser io.Closer
}

// NewApp creates a new CLI application with all dependencies.
func NewApp(opts AppOptions) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if opts.ConfigFile != "" {
		mgr.SetConfigFile(opts.ConfigFile)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, closer, err := newLogger(cfg, opts.LogToFile)
	if err != nil {
		return nil, err
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	permRepo := sqlite.NewLazyPermissionRepository(db)

	logger.Debug().
		Str("config_file", mgr.GetConfigFile()).
		Str("db_path", cfg.Database.Path).
		Msg("app initialized")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		db:            db,
		permRepo:      permRepo,
		Gate:          usecase.NewPermissionGate(nil, permRepo),
		SchemaUC:      usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider()),
		ctx:           ctx,
		logCloser:     closer,
	}, nil
}

// newLogger builds the zerolog logger from the logging section.
func newLogger(cfg *config.Config, toFile bool) (zerolog.Logger, io.Closer, error) {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.Format = cfg.Logging.Format
	logCfg.TimeFormat = time.TimeOnly

	if !toFile {
		return logging.New(logCfg), nil, nil
	}

	w, err := logging.NewFileWriter(cfg.Logging.File, cfg.Logging.MaxSizeMB, cfg.Logging.MaxBackups)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
	}
	logCfg.Output = w
	return logging.New(logCfg), w, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var dbErr error
	if a.db != nil {
		dbErr = a.db.Close()
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
	return dbErr
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// DatabasePath returns the SQLite file used for permission outcomes.
func (a *App) DatabasePath() string {
	return a.db.Path()
}

// WatchConfig reloads the config file on change and applies what can change
// at runtime: the log level and the accepted notice delay.
func (a *App) WatchConfig(session *ScanSession) {
	log := logging.FromContext(logging.WithComponent(a.ctx, "config"))

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Logging.Level))
		if session != nil {
			session.Controller.SetAcceptNoticeDelay(time.Duration(cfg.Scan.AcceptNoticeDelayMs) * time.Millisecond)
		}
		log.Info().Msg("configuration reloaded")
	})

	if err := a.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}
}
