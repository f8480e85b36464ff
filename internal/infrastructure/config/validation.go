package config

import (
	"fmt"
	"strings"
)

const maxAcceptNoticeDelayMs = 10000

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateScan(config)...)
	validationErrors = append(validationErrors, validateCamera(config)...)
	validationErrors = append(validationErrors, validatePermission(config)...)
	validationErrors = append(validationErrors, validateClipboard(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateScan(config *Config) []string {
	delay := config.Scan.AcceptNoticeDelayMs
	if delay < 0 || delay > maxAcceptNoticeDelayMs {
		return []string{fmt.Sprintf(
			"scan.accept_notice_delay_ms must be between 0 and %d (got: %d)",
			maxAcceptNoticeDelayMs, delay,
		)}
	}
	return nil
}

func validateCamera(config *Config) []string {
	switch config.Camera.Source {
	case CameraSourceSpool, CameraSourceStdin:
		return nil
	default:
		return []string{fmt.Sprintf(
			"camera.source must be one of: spool, stdin (got: %s)",
			config.Camera.Source,
		)}
	}
}

func validatePermission(config *Config) []string {
	switch config.Permission.Mode {
	case PermissionModePrompt, PermissionModeGrant, PermissionModeDeny:
		return nil
	default:
		return []string{fmt.Sprintf(
			"permission.mode must be one of: prompt, grant, deny (got: %s)",
			config.Permission.Mode,
		)}
	}
}

func validateClipboard(config *Config) []string {
	switch config.Clipboard.Tool {
	case ClipboardToolAuto, ClipboardToolWlCopy, ClipboardToolXclip, ClipboardToolXsel, ClipboardToolNative:
		return nil
	default:
		return []string{fmt.Sprintf(
			"clipboard.tool must be one of: auto, wl-copy, xclip, xsel, native (got: %s)",
			config.Clipboard.Tool,
		)}
	}
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error", "disabled", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.level must be one of: trace, debug, info, warn, error, disabled (got: %s)",
			config.Logging.Level,
		))
	}
	switch config.Logging.Format {
	case "console", "json", "":
	default:
		validationErrors = append(validationErrors, fmt.Sprintf(
			"logging.format must be one of: console, json (got: %s)",
			config.Logging.Format,
		))
	}
	if config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}
