package config

// Default configuration constants
const (
	defaultAcceptNoticeDelayMs = 500

	defaultLogLevel      = "info"
	defaultLogFormat     = "console"
	defaultLogMaxSizeMB  = 5
	defaultLogMaxBackups = 3
)

// DefaultConfig returns the default configuration. Paths left empty are
// resolved against the XDG directories on Load.
func DefaultConfig() *Config {
	return &Config{
		Scan: ScanConfig{
			AcceptNoticeDelayMs: defaultAcceptNoticeDelayMs,
		},
		Camera: CameraConfig{
			Source: CameraSourceSpool,
		},
		Permission: PermissionConfig{
			Mode: PermissionModePrompt,
		},
		Clipboard: ClipboardConfig{
			Tool: ClipboardToolAuto,
		},
		Logging: LoggingConfig{
			Level:      defaultLogLevel,
			Format:     defaultLogFormat,
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}
