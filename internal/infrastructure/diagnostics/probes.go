// Package diagnostics provides the environment probes run by the doctor
// command.
package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/scanclip/internal/application/port"
	"github.com/bnema/scanclip/internal/infrastructure/clipboard"
	"github.com/bnema/scanclip/internal/infrastructure/config"
	"github.com/bnema/scanclip/internal/infrastructure/persistence/sqlite"
)

// ConfigProbe checks that the config file exists.
type ConfigProbe struct {
	Path string
}

var _ port.DiagnosticProbe = ConfigProbe{}

// Name implements port.DiagnosticProbe.
func (ConfigProbe) Name() string { return "config" }

// Probe implements port.DiagnosticProbe.
func (p ConfigProbe) Probe(_ context.Context) (string, error) {
	if p.Path == "" {
		return "defaults", nil
	}
	info, err := os.Stat(p.Path)
	if errors.Is(err, os.ErrNotExist) {
		return p.Path, fmt.Errorf("config file missing, defaults in use")
	}
	if err != nil {
		return p.Path, err
	}
	if info.IsDir() {
		return p.Path, fmt.Errorf("config path is a directory")
	}
	return p.Path, nil
}

// CameraProbe checks the configured decode event source.
type CameraProbe struct {
	Config config.CameraConfig
}

var _ port.DiagnosticProbe = CameraProbe{}

// Name implements port.DiagnosticProbe.
func (CameraProbe) Name() string { return "camera" }

// Probe implements port.DiagnosticProbe. The spool directory must exist
// and accept new files.
func (p CameraProbe) Probe(_ context.Context) (string, error) {
	switch p.Config.Source {
	case config.CameraSourceStdin:
		return "stdin", nil
	case config.CameraSourceSpool, "":
	default:
		return string(p.Config.Source), fmt.Errorf("unknown camera source")
	}

	dir := p.Config.SpoolDir
	detail := "spool " + dir
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		// Created on first scan.
		return detail + " (not created yet)", nil
	}
	if err != nil {
		return detail, err
	}
	if !info.IsDir() {
		return detail, fmt.Errorf("spool path is not a directory")
	}

	f, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return detail, fmt.Errorf("spool directory is not writable: %w", err)
	}
	name := f.Name()
	_ = f.Close()
	_ = os.Remove(name)
	return detail, nil
}

// ClipboardProbe reports the clipboard backend in use.
type ClipboardProbe struct {
	Adapter *clipboard.Adapter
}

var _ port.DiagnosticProbe = ClipboardProbe{}

// Name implements port.DiagnosticProbe.
func (ClipboardProbe) Name() string { return "clipboard" }

// Probe implements port.DiagnosticProbe.
func (p ClipboardProbe) Probe(_ context.Context) (string, error) {
	return p.Adapter.Tool(), p.Adapter.Available()
}

// DatabaseProbe opens the permission database and reports its schema version.
type DatabaseProbe struct {
	DB *sqlite.LazyDB
}

var _ port.DiagnosticProbe = DatabaseProbe{}

// Name implements port.DiagnosticProbe.
func (DatabaseProbe) Name() string { return "database" }

// Probe implements port.DiagnosticProbe.
func (p DatabaseProbe) Probe(ctx context.Context) (string, error) {
	detail := filepath.Clean(p.DB.Path())

	db, err := p.DB.DB(ctx)
	if err != nil {
		return detail, err
	}
	version, err := sqlite.MigrationVersion(ctx, db)
	if err != nil {
		return detail, err
	}
	return fmt.Sprintf("%s (schema v%d)", detail, version), nil
}
