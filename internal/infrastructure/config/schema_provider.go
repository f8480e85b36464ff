package config

import (
	"fmt"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/domain/entity"
)

// Section names for grouping config keys.
const (
	SectionScan       = "Scan"
	SectionCamera     = "Camera"
	SectionPermission = "Permission"
	SectionClipboard  = "Clipboard"
	SectionDatabase   = "Database"
	SectionLogging    = "Logging"
)

// SchemaProvider implements port.ConfigSchemaProvider.
type SchemaProvider struct{}

var _ port.ConfigSchemaProvider = (*SchemaProvider)(nil)

// NewSchemaProvider creates a new SchemaProvider.
func NewSchemaProvider() *SchemaProvider {
	return &SchemaProvider{}
}

// GetSchema returns all configuration keys with their metadata.
func (p *SchemaProvider) GetSchema() []entity.ConfigKeyInfo {
	defaults := DefaultConfig()

	keys := make([]entity.ConfigKeyInfo, 0, 16)
	keys = append(keys, p.getScanKeys(defaults)...)
	keys = append(keys, p.getCameraKeys(defaults)...)
	keys = append(keys, p.getPermissionKeys(defaults)...)
	keys = append(keys, p.getClipboardKeys(defaults)...)
	keys = append(keys, p.getDatabaseKeys()...)
	keys = append(keys, p.getLoggingKeys(defaults)...)
	return keys
}

func (*SchemaProvider) getScanKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "scan.accept_notice_delay_ms",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Scan.AcceptNoticeDelayMs),
			Description: "Delay before the \"data extracted\" notice, in milliseconds",
			Range:       fmt.Sprintf("0-%d", maxAcceptNoticeDelayMs),
			Section:     SectionScan,
		},
	}
}

func (*SchemaProvider) getCameraKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "camera.source",
			Type:        "string",
			Default:     string(defaults.Camera.Source),
			Description: "Where decode events come from",
			Values:      []string{string(CameraSourceSpool), string(CameraSourceStdin)},
			Section:     SectionCamera,
		},
		{
			Key:         "camera.spool_dir",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/scanclip/spool",
			Description: "Directory watched for decoder result files",
			Section:     SectionCamera,
		},
	}
}

func (*SchemaProvider) getPermissionKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "permission.mode",
			Type:        "string",
			Default:     string(defaults.Permission.Mode),
			Description: "How camera access requests are answered",
			Values: []string{
				string(PermissionModePrompt),
				string(PermissionModeGrant),
				string(PermissionModeDeny),
			},
			Section: SectionPermission,
		},
	}
}

func (*SchemaProvider) getClipboardKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "clipboard.tool",
			Type:        "string",
			Default:     string(defaults.Clipboard.Tool),
			Description: "Clipboard backend; auto picks wl-copy on Wayland, xclip or xsel on X11",
			Values: []string{
				string(ClipboardToolAuto),
				string(ClipboardToolWlCopy),
				string(ClipboardToolXclip),
				string(ClipboardToolXsel),
				string(ClipboardToolNative),
			},
			Section: SectionClipboard,
		},
	}
}

func (*SchemaProvider) getDatabaseKeys() []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "database.path",
			Type:        "string",
			Default:     "$XDG_DATA_HOME/scanclip/" + databaseName,
			Description: "SQLite file holding the recorded camera permission",
			Section:     SectionDatabase,
		},
	}
}

func (*SchemaProvider) getLoggingKeys(defaults *Config) []entity.ConfigKeyInfo {
	return []entity.ConfigKeyInfo{
		{
			Key:         "logging.level",
			Type:        "string",
			Default:     defaults.Logging.Level,
			Description: "Log verbosity level",
			Values:      []string{"trace", "debug", "info", "warn", "error", "disabled"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.format",
			Type:        "string",
			Default:     defaults.Logging.Format,
			Description: "Log output format",
			Values:      []string{"console", "json"},
			Section:     SectionLogging,
		},
		{
			Key:         "logging.file",
			Type:        "string",
			Default:     "$XDG_STATE_HOME/scanclip/logs/" + logFileName,
			Description: "Log file used while the interactive scanner is running",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_size_mb",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxSizeMB),
			Description: "Size at which the log file is rotated",
			Section:     SectionLogging,
		},
		{
			Key:         "logging.max_backups",
			Type:        "int",
			Default:     fmt.Sprintf("%d", defaults.Logging.MaxBackups),
			Description: "Rotated log files to keep",
			Section:     SectionLogging,
		},
	}
}
