package styles_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/scanclip/internal/application/usecase"
	"github.com/bnema/scanclip/internal/cli/styles"
	"github.com/bnema/scanclip/internal/domain/build"
	"github.com/bnema/scanclip/internal/domain/entity"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestConfirmModel_Keys(t *testing.T) {
	theme := styles.NewTheme()

	tests := []struct {
		name     string
		keys     []tea.KeyMsg
		done     bool
		expected bool
	}{
		{"y answers yes", []tea.KeyMsg{keyRunes("y")}, true, true},
		{"n answers no", []tea.KeyMsg{keyRunes("n")}, true, false},
		{"enter defaults to no", []tea.KeyMsg{{Type: tea.KeyEnter}}, true, false},
		{"right then enter", []tea.KeyMsg{{Type: tea.KeyRight}, {Type: tea.KeyEnter}}, true, true},
		{"esc cancels", []tea.KeyMsg{keyRunes("l"), {Type: tea.KeyEsc}}, true, false},
		{"selection alone is not done", []tea.KeyMsg{keyRunes("l")}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := styles.NewConfirm(theme, "Allow camera?")
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			assert.Equal(t, tt.done, m.Done())
			assert.Equal(t, tt.expected, m.Result())
		})
	}
}

func TestConfirmModel_ViewShowsMessage(t *testing.T) {
	m := styles.NewConfirm(styles.NewTheme(), "Allow camera?")
	m.Detail = "scanclip wants to scan a code"

	view := m.View()
	assert.Contains(t, view, "Allow camera?")
	assert.Contains(t, view, "scanclip wants to scan a code")
	assert.Contains(t, view, "Allow")
	assert.Contains(t, view, "Deny")
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "ABC", styles.Preview("ABC", 10))
	assert.Equal(t, "a⏎b⏎c", styles.Preview("a\nb\r\nc", 10))
	assert.Equal(t, "abcd…", styles.Preview("abcdefgh", 5))
	assert.Equal(t, "abcdefgh", styles.Preview("abcdefgh", 0))
}

func TestScannerRenderer_Result(t *testing.T) {
	r := styles.NewScannerRenderer(styles.NewTheme())

	assert.Contains(t, r.Result(""), "Nothing scanned yet")

	out := r.Result("https://example.com")
	assert.Contains(t, out, "https://example.com")
	assert.Contains(t, out, "19 bytes")
}

func TestScannerRenderer_Notice(t *testing.T) {
	r := styles.NewScannerRenderer(styles.NewTheme())
	n := entity.NewNotice(entity.NoticeScanAccepted)

	out := r.Notice(n, 0)
	assert.Contains(t, out, n.Title)
	assert.Contains(t, out, n.Message)
	assert.NotContains(t, out, "more")

	assert.Contains(t, r.Notice(n, 2), "+2 more")
}

func TestScannerRenderer_Header(t *testing.T) {
	r := styles.NewScannerRenderer(styles.NewTheme())

	assert.Contains(t, r.Header(entity.ScanStateScanning), "scanning")
	assert.Contains(t, r.Header(entity.ScanStateAwaitingPermission), "waiting for camera")
	assert.Contains(t, r.Surface("*", "spool"), "source: spool")
}

func TestConfigSchemaRenderer_SectionOrder(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	keys := []entity.ConfigKeyInfo{
		{Key: "logging.level", Type: "string", Default: "info", Section: "Logging", Values: []string{"debug", "info"}},
		{Key: "scan.accept_notice_delay_ms", Type: "int", Default: "500", Section: "Scan", Range: "0-10000"},
		{Key: "extra.key", Type: "bool", Default: "false", Section: "Extra"},
	}

	out := r.Render(keys)
	scan := strings.Index(out, "scan.accept_notice_delay_ms")
	logging := strings.Index(out, "logging.level")
	extra := strings.Index(out, "extra.key")

	require.NotEqual(t, -1, scan)
	require.NotEqual(t, -1, logging)
	require.NotEqual(t, -1, extra)
	assert.Less(t, scan, logging)
	assert.Less(t, logging, extra)
	assert.Contains(t, out, "Range: 0-10000")
	assert.Contains(t, out, "Values: debug, info")
}

func TestConfigSchemaRenderer_Empty(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	assert.Contains(t, r.Render(nil), "No configuration keys found")
}

func TestConfigSchemaRenderer_JSON(t *testing.T) {
	r := styles.NewConfigSchemaRenderer(styles.NewTheme())
	out, err := r.RenderJSON([]entity.ConfigKeyInfo{{Key: "camera.source", Section: "Camera"}})
	require.NoError(t, err)
	assert.Contains(t, out, `"key": "camera.source"`)
}

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme())
	info := build.Info{Version: "v0.3.0", Commit: "abc1234", BuildDate: "today", GoVersion: "go1.25.3"}

	out := r.Render(info)
	assert.Contains(t, out, "v0.3.0")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, build.RepoURL())
	assert.Contains(t, r.RenderShort(info), "v0.3.0")
}

func TestPermissionRenderer(t *testing.T) {
	r := styles.NewPermissionRenderer(styles.NewTheme())

	assert.Contains(t, r.RenderStatus(entity.PermissionGranted, "prompt"), "granted")
	assert.Contains(t, r.RenderStatus(entity.PermissionDenied, ""), "denied")
	assert.Contains(t, r.RenderStatus(entity.PermissionUnknown, "deny"), "mode: deny")
	assert.Contains(t, r.RenderReset(), "cleared")
}

func TestDoctorRenderer(t *testing.T) {
	r := styles.NewDoctorRenderer(styles.NewTheme())

	out := r.Render(&usecase.RunDiagnosticsOutput{
		OK: false,
		Results: []usecase.DiagnosticResult{
			{Name: "clipboard", Detail: "wl-copy", OK: true},
			{Name: "database", Detail: "/tmp/x.sqlite", Error: "locked"},
		},
	})

	assert.Contains(t, out, "Needs attention")
	assert.Contains(t, out, "wl-copy")
	assert.Contains(t, out, "locked")

	assert.Contains(t, r.Render(&usecase.RunDiagnosticsOutput{OK: true}), "OK")
}
