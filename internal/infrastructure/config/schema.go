package config

// Config represents the complete configuration for scanclip.
type Config struct {
	// Scan controls the scan session.
	Scan ScanConfig `mapstructure:"scan" toml:"scan" json:"scan"`
	// Camera selects where decode events come from.
	Camera CameraConfig `mapstructure:"camera" toml:"camera" json:"camera"`
	// Permission controls how camera access is granted.
	Permission PermissionConfig `mapstructure:"permission" toml:"permission" json:"permission"`
	// Clipboard selects the clipboard backend.
	Clipboard ClipboardConfig `mapstructure:"clipboard" toml:"clipboard" json:"clipboard"`
	Database  DatabaseConfig  `mapstructure:"database" toml:"database" json:"database"`
	Logging   LoggingConfig   `mapstructure:"logging" toml:"logging" json:"logging"`
}

// ScanConfig holds scan session settings.
type ScanConfig struct {
	// AcceptNoticeDelayMs delays the "data extracted" notice so the scan
	// surface can finish closing. 0 shows it immediately.
	AcceptNoticeDelayMs int `mapstructure:"accept_notice_delay_ms" toml:"accept_notice_delay_ms" json:"accept_notice_delay_ms" jsonschema:"minimum=0,maximum=10000,default=500"`
}

// CameraSource selects the scan surface implementation.
type CameraSource string

const (
	// CameraSourceSpool watches a directory for decoder result files.
	CameraSourceSpool CameraSource = "spool"
	// CameraSourceStdin reads one payload per line from standard input.
	CameraSourceStdin CameraSource = "stdin"
)

// CameraConfig holds scan surface settings.
type CameraConfig struct {
	Source CameraSource `mapstructure:"source" toml:"source" json:"source" jsonschema:"enum=spool,enum=stdin,default=spool"`
	// SpoolDir is watched when Source is "spool". Empty means $XDG_STATE_HOME/scanclip/spool.
	SpoolDir string `mapstructure:"spool_dir" toml:"spool_dir" json:"spool_dir"`
}

// PermissionMode decides how camera access requests are answered.
type PermissionMode string

const (
	PermissionModePrompt PermissionMode = "prompt"
	PermissionModeGrant  PermissionMode = "grant"
	PermissionModeDeny   PermissionMode = "deny"
)

// PermissionConfig holds camera permission settings.
type PermissionConfig struct {
	Mode PermissionMode `mapstructure:"mode" toml:"mode" json:"mode" jsonschema:"enum=prompt,enum=grant,enum=deny,default=prompt"`
}

// ClipboardTool names a clipboard backend.
type ClipboardTool string

const (
	ClipboardToolAuto   ClipboardTool = "auto"
	ClipboardToolWlCopy ClipboardTool = "wl-copy"
	ClipboardToolXclip  ClipboardTool = "xclip"
	ClipboardToolXsel   ClipboardTool = "xsel"
	ClipboardToolNative ClipboardTool = "native"
)

// ClipboardConfig holds clipboard settings.
type ClipboardConfig struct {
	Tool ClipboardTool `mapstructure:"tool" toml:"tool" json:"tool" jsonschema:"enum=auto,enum=wl-copy,enum=xclip,enum=xsel,enum=native,default=auto"`
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	// Path to the SQLite file. Empty means $XDG_DATA_HOME/scanclip/scanclip.sqlite.
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=disabled,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`

	// File receives logs while the TUI owns the terminal. Empty means
	// $XDG_STATE_HOME/scanclip/logs/scanclip.log.
	File       string `mapstructure:"file" toml:"file" json:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
}
