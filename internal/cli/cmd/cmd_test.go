package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/scanclip/internal/cli"
	"github.com/bnema/scanclip/internal/domain/build"
	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/infrastructure/permission"
)

func isolateXDG(t *testing.T) {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	scanOnce, scanCopy, scanTimeout = false, false, 0
	configFile, configKeysJSON, aboutShort = "", false, false
	genDocsOutputDir, genDocsFormat = "", "man"
	app = nil
	t.Cleanup(func() {
		if app != nil {
			_ = app.Close()
			app = nil
		}
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigPath(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, "")

	out, err := execute(t, "--config", path, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))
}

func TestConfigShow_ReflectsFile(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, "[scan]\naccept_notice_delay_ms = 250\n")

	out, err := execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "accept_notice_delay_ms = 250")
	assert.Contains(t, out, "[permission]")
}

func TestConfigKeys_FiltersSection(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "--config", writeConfig(t, ""), "config", "keys", "scan", "--json")
	require.NoError(t, err)

	var keys []entity.ConfigKeyInfo
	require.NoError(t, json.Unmarshal([]byte(out), &keys))
	require.NotEmpty(t, keys)
	for _, k := range keys {
		assert.True(t, strings.HasPrefix(k.Key, "scan."), k.Key)
	}
}

func TestConfigKeys_Styled(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "--config", writeConfig(t, ""), "config", "keys")
	require.NoError(t, err)
	assert.Contains(t, out, "camera.source")
	assert.Contains(t, out, "logging.max_backups")
}

func TestConfigSchema_IsJSON(t *testing.T) {
	isolateXDG(t)

	out, err := execute(t, "--config", writeConfig(t, ""), "config", "schema")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestPermissionStatusAndReset(t *testing.T) {
	isolateXDG(t)
	path := writeConfig(t, "[permission]\nmode = \"grant\"\n")

	out, err := execute(t, "--config", path, "permission", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "unknown")
	assert.Contains(t, out, "mode: grant")

	out, err = execute(t, "--config", path, "permission", "reset")
	require.NoError(t, err)
	assert.Contains(t, out, "cleared")
}

func TestScan_FlagsRequireOnce(t *testing.T) {
	isolateXDG(t)

	_, err := execute(t, "--config", writeConfig(t, ""), "scan", "--copy")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--once")
}

func TestAbout_Short(t *testing.T) {
	isolateXDG(t)
	SetBuildInfo(build.Info{Version: "v9.9.9", Commit: "abc1234"})
	t.Cleanup(func() { SetBuildInfo(build.Info{}) })

	out, err := execute(t, "--config", writeConfig(t, ""), "about", "--short")
	require.NoError(t, err)
	assert.Contains(t, out, "v9.9.9")
}

func TestGenDocs_Markdown(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "gen-docs", "--format", "markdown", "--output", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "scanclip.md")
	assert.FileExists(t, filepath.Join(dir, "scanclip_scan.md"))
}

func newStdinSession(t *testing.T, mode string, stdin io.Reader) (*cli.App, *cli.ScanSession) {
	t.Helper()
	isolateXDG(t)

	a, err := cli.NewApp(cli.AppOptions{
		ConfigFile: writeConfig(t, "[camera]\nsource = \"stdin\"\n[permission]\nmode = \""+mode+"\"\n"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	session, err := a.NewScanSession(cli.ScanSessionOptions{
		Notifier:         cli.NewConsoleNotifier(io.Discard, a.Theme),
		Stdin:            stdin,
		ImmediateNotices: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { session.Controller.Close(a.Ctx()) })
	return a, session
}

func neverAsked(t *testing.T) func(context.Context, *permission.Prompt) (bool, error) {
	return func(context.Context, *permission.Prompt) (bool, error) {
		t.Error("unexpected prompt")
		return false, nil
	}
}

func TestScanOne_FirstLineWins(t *testing.T) {
	a, session := newStdinSession(t, "grant", strings.NewReader("\nFIRST\nSECOND\n"))

	payload, err := scanOne(a.Ctx(), session, neverAsked(t))
	require.NoError(t, err)
	assert.Equal(t, entity.ScannedPayload("FIRST"), payload)
	assert.Equal(t, entity.PermissionGranted, a.Gate.Status(a.Ctx()))
}

func TestScanOne_DeniedDoesNotStart(t *testing.T) {
	a, session := newStdinSession(t, "deny", strings.NewReader("IGNORED\n"))

	_, err := scanOne(a.Ctx(), session, neverAsked(t))
	assert.ErrorIs(t, err, errScanNotStarted)
}

func TestScanOne_InputEndsFirst(t *testing.T) {
	a, session := newStdinSession(t, "grant", strings.NewReader(""))

	_, err := scanOne(a.Ctx(), session, neverAsked(t))
	assert.ErrorIs(t, err, errInputEnded)
}

func TestScanOne_PromptAnswered(t *testing.T) {
	a, session := newStdinSession(t, "prompt", strings.NewReader("PROMPTED\n"))
	require.NotNil(t, session.Prompts)

	asked := 0
	payload, err := scanOne(a.Ctx(), session, func(_ context.Context, p *permission.Prompt) (bool, error) {
		asked++
		assert.Equal(t, entity.PermissionTypeCamera, p.Type)
		return true, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, asked)
	assert.Equal(t, entity.ScannedPayload("PROMPTED"), payload)
}

func TestScanOne_Timeout(t *testing.T) {
	r, w := io.Pipe()
	t.Cleanup(func() { _ = w.Close() })
	a, session := newStdinSession(t, "grant", r)

	ctx, cancel := context.WithTimeout(a.Ctx(), 50*time.Millisecond)
	defer cancel()

	_, err := scanOne(ctx, session, neverAsked(t))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDoctor_ReportsProbes(t *testing.T) {
	isolateXDG(t)

	out, _ := execute(t, "--config", writeConfig(t, "[camera]\nsource = \"stdin\"\n[clipboard]\ntool = \"native\"\n"), "doctor")
	assert.Contains(t, out, "config")
	assert.Contains(t, out, "stdin")
	assert.Contains(t, out, "schema v1")
}
