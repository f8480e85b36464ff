// Package config loads scanclip configuration with Viper: TOML file under
// the XDG config directory, SCANCLIP_* environment overrides and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "SCANCLIP"

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	explicit  bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// SCANCLIP_CAMERA_SOURCE, SCANCLIP_PERMISSION_MODE, ...
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "SCANCLIP_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SCANCLIP_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SCANCLIP_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SCANCLIP_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// SetConfigFile makes the manager read path instead of searching the XDG
// config directory. A missing explicit file is an error.
func (m *Manager) SetConfigFile(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.viper.SetConfigFile(path)
	m.explicit = true
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var configFileNotFoundError viper.ConfigFileNotFoundError
	if m.explicit || !errors.As(err, &configFileNotFoundError) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// decode unmarshals, completes and validates the current viper state.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := resolvePaths(config); err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func resolvePaths(config *Config) error {
	if config.Database.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.Database.Path = dbPath
	}
	if config.Camera.SpoolDir == "" {
		spoolDir, err := GetSpoolDir()
		if err != nil {
			return fmt.Errorf("failed to get spool directory: %w", err)
		}
		config.Camera.SpoolDir = spoolDir
	}
	if config.Logging.File == "" {
		logFile, err := GetLogFile()
		if err != nil {
			return fmt.Errorf("failed to get log file path: %w", err)
		}
		config.Logging.File = logFile
	}
	return nil
}

func normalizeConfig(config *Config) {
	config.Camera.Source = CameraSource(strings.ToLower(strings.TrimSpace(string(config.Camera.Source))))
	if config.Camera.Source == "" {
		config.Camera.Source = CameraSourceSpool
	}

	config.Permission.Mode = PermissionMode(strings.ToLower(strings.TrimSpace(string(config.Permission.Mode))))
	if config.Permission.Mode == "" {
		config.Permission.Mode = PermissionModePrompt
	}

	config.Clipboard.Tool = ClipboardTool(strings.ToLower(strings.TrimSpace(string(config.Clipboard.Tool))))
	if config.Clipboard.Tool == "" {
		config.Clipboard.Tool = ClipboardToolAuto
	}

	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)
	if config.Logging.Format == "text" {
		config.Logging.Format = defaultLogFormat
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the JSON schema to the config directory.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	if err := WriteConfigOrdered(DefaultConfig(), configFile); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)

	schemaFile := filepath.Join(filepath.Dir(configFile), schemaFileName)
	if err := WriteSchemaFile(schemaFile); err != nil {
		return err
	}

	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("scan.accept_notice_delay_ms", defaults.Scan.AcceptNoticeDelayMs)

	m.viper.SetDefault("camera.source", string(defaults.Camera.Source))
	m.viper.SetDefault("camera.spool_dir", defaults.Camera.SpoolDir)

	m.viper.SetDefault("permission.mode", string(defaults.Permission.Mode))

	m.viper.SetDefault("clipboard.tool", string(defaults.Clipboard.Tool))

	m.viper.SetDefault("database.path", defaults.Database.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
}
