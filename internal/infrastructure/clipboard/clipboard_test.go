package clipboard_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/scanclip/internal/infrastructure/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_NativeBackend(t *testing.T) {
	a := clipboard.New(clipboard.ToolNative)
	assert.Equal(t, clipboard.ToolNative, a.Tool())

	var got string
	a.SetNativeWriter(func(s string) error {
		got = s
		return nil
	})

	require.NoError(t, a.WriteText(context.Background(), "XYZ"))
	assert.Equal(t, "XYZ", got)
}

func TestAdapter_NativeBackendError(t *testing.T) {
	a := clipboard.New(clipboard.ToolNative)
	a.SetNativeWriter(func(string) error { return errors.New("no selection owner") })

	assert.Error(t, a.WriteText(context.Background(), "XYZ"))
}

func TestAdapter_ExplicitToolPipesStdin(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")

	// A fake wl-copy that stores stdin.
	script := "#!/bin/sh\ncat > " + out + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "wl-copy"), []byte(script), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	a := clipboard.New(clipboard.ToolWlCopy)
	require.Equal(t, "wl-copy", a.Tool())

	require.NoError(t, a.WriteText(context.Background(), "ABC123"))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", string(data))
}

func TestAdapter_ToolFailure(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "xclip"), []byte("#!/bin/sh\nexit 1\n"), 0o755))
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))

	a := clipboard.New(clipboard.ToolXclip)
	assert.Error(t, a.WriteText(context.Background(), "ABC123"))
}
