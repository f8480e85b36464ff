package diagnostics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/scanclip/internal/infrastructure/clipboard"
	"github.com/bnema/scanclip/internal/infrastructure/config"
	"github.com/bnema/scanclip/internal/infrastructure/diagnostics"
	"github.com/bnema/scanclip/internal/infrastructure/persistence/sqlite"
)

func TestConfigProbe(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	_, err := diagnostics.ConfigProbe{Path: path}.Probe(ctx)
	assert.Error(t, err, "missing file")

	require.NoError(t, os.WriteFile(path, nil, 0o600))
	detail, err := diagnostics.ConfigProbe{Path: path}.Probe(ctx)
	require.NoError(t, err)
	assert.Equal(t, path, detail)

	_, err = diagnostics.ConfigProbe{Path: dir}.Probe(ctx)
	assert.Error(t, err, "directory")

	detail, err = diagnostics.ConfigProbe{}.Probe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "defaults", detail)
}

func TestCameraProbe(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	detail, err := diagnostics.CameraProbe{Config: config.CameraConfig{Source: config.CameraSourceStdin}}.Probe(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stdin", detail)

	detail, err = diagnostics.CameraProbe{Config: config.CameraConfig{Source: config.CameraSourceSpool, SpoolDir: dir}}.Probe(ctx)
	require.NoError(t, err)
	assert.Contains(t, detail, dir)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "probe file is removed")

	detail, err = diagnostics.CameraProbe{Config: config.CameraConfig{SpoolDir: filepath.Join(dir, "later")}}.Probe(ctx)
	require.NoError(t, err)
	assert.Contains(t, detail, "not created yet")

	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	_, err = diagnostics.CameraProbe{Config: config.CameraConfig{SpoolDir: file}}.Probe(ctx)
	assert.Error(t, err)

	_, err = diagnostics.CameraProbe{Config: config.CameraConfig{Source: "webcam"}}.Probe(ctx)
	assert.Error(t, err)
}

func TestClipboardProbe_ReportsTool(t *testing.T) {
	adapter := clipboard.New(clipboard.ToolNative)

	detail, _ := diagnostics.ClipboardProbe{Adapter: adapter}.Probe(context.Background())
	assert.Equal(t, clipboard.ToolNative, detail)
}

func TestDatabaseProbe(t *testing.T) {
	ctx := context.Background()
	db := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "scanclip.sqlite"))
	t.Cleanup(func() { _ = db.Close() })

	probe := diagnostics.DatabaseProbe{DB: db}
	assert.Equal(t, "database", probe.Name())

	detail, err := probe.Probe(ctx)
	require.NoError(t, err)
	assert.Contains(t, detail, "schema v1")
}
