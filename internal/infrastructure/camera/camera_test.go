package camera_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/scanclip/internal/domain/entity"
	"github.com/bnema/scanclip/internal/infrastructure/camera"
	"github.com/bnema/scanclip/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waitTimeout = 2 * time.Second

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func collect() (chan entity.DecodeEvent, func(entity.DecodeEvent)) {
	events := make(chan entity.DecodeEvent, 16)
	return events, func(ev entity.DecodeEvent) { events <- ev }
}

// dropFile writes the payload next to dir and renames it in.
func dropFile(t *testing.T, dir, name, payload string) {
	t.Helper()
	tmp := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(tmp, []byte(payload), 0o600))
	require.NoError(t, os.Rename(tmp, filepath.Join(dir, name)))
}

func TestSpoolCamera_DeliversDroppedFiles(t *testing.T) {
	ctx := testContext()
	dir := filepath.Join(t.TempDir(), "spool")
	cam := camera.NewSpoolCamera(dir)

	events, handler := collect()
	require.NoError(t, cam.Open(ctx, handler))
	t.Cleanup(func() { _ = cam.Close(ctx) })

	dropFile(t, dir, "result.qr", "  ABC123\n")

	select {
	case ev := <-events:
		assert.Equal(t, entity.ScannedPayload("ABC123"), ev.Payload)
		assert.Equal(t, "qr", ev.Format)
		assert.False(t, ev.ReceivedAt.IsZero())
	case <-time.After(waitTimeout):
		t.Fatal("no decode event delivered")
	}

	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "result.qr"))
		return os.IsNotExist(err)
	}, waitTimeout, 10*time.Millisecond, "consumed spool file is removed")
}

func TestSpoolCamera_NoEventsAfterClose(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	cam := camera.NewSpoolCamera(dir)

	events, handler := collect()
	require.NoError(t, cam.Open(ctx, handler))
	require.NoError(t, cam.Close(ctx))
	require.NoError(t, cam.Close(ctx), "closing twice is a no-op")

	dropFile(t, dir, "late.txt", "LATE")

	select {
	case ev := <-events:
		t.Fatalf("unexpected event after close: %q", ev.Payload)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestSpoolCamera_ReopenAfterClose(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	cam := camera.NewSpoolCamera(dir)

	_, first := collect()
	require.NoError(t, cam.Open(ctx, first))
	assert.ErrorIs(t, cam.Open(ctx, first), camera.ErrAlreadyOpen)
	require.NoError(t, cam.Close(ctx))

	events, second := collect()
	require.NoError(t, cam.Open(ctx, second))
	t.Cleanup(func() { _ = cam.Close(ctx) })

	dropFile(t, dir, "again", "XYZ")

	select {
	case ev := <-events:
		assert.Equal(t, entity.ScannedPayload("XYZ"), ev.Payload)
		assert.Empty(t, ev.Format)
	case <-time.After(waitTimeout):
		t.Fatal("no decode event delivered after reopen")
	}
}

func TestSpoolCamera_InPlaceWriteDeliversWholeFile(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	cam := camera.NewSpoolCamera(dir)

	events, handler := collect()
	require.NoError(t, cam.Open(ctx, handler))
	t.Cleanup(func() { _ = cam.Close(ctx) })

	f, err := os.Create(filepath.Join(dir, "result.qr"))
	require.NoError(t, err)
	_, err = f.WriteString("https://exa")
	require.NoError(t, err)
	time.Sleep(100 * time.Millisecond)
	_, err = f.WriteString("mple.com/full")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	select {
	case ev := <-events:
		assert.Equal(t, entity.ScannedPayload("https://example.com/full"), ev.Payload)
		assert.Equal(t, "qr", ev.Format)
	case <-time.After(waitTimeout):
		t.Fatal("no decode event delivered")
	}

	select {
	case ev := <-events:
		t.Fatalf("file delivered twice: %q", ev.Payload)
	case <-time.After(2 * camera.DefaultSettleDelay):
	}
}

func TestSpoolCamera_IgnoresUnpublishedNames(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	cam := camera.NewSpoolCamera(dir, camera.WithSettleDelay(20*time.Millisecond))

	events, handler := collect()
	require.NoError(t, cam.Open(ctx, handler))
	t.Cleanup(func() { _ = cam.Close(ctx) })

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hidden"), []byte("HIDDEN"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "result.tmp"), []byte("PARTIAL"), 0o600))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event for unpublished file: %q", ev.Payload)
	case <-time.After(200 * time.Millisecond):
	}

	require.NoError(t, os.Rename(filepath.Join(dir, "result.tmp"), filepath.Join(dir, "result.qr")))

	select {
	case ev := <-events:
		assert.Equal(t, entity.ScannedPayload("PARTIAL"), ev.Payload)
	case <-time.After(waitTimeout):
		t.Fatal("renamed file not delivered")
	}
	assert.FileExists(t, filepath.Join(dir, ".hidden"))
}

func TestSpoolCamera_CloseDropsUnsettledFile(t *testing.T) {
	ctx := testContext()
	dir := t.TempDir()
	cam := camera.NewSpoolCamera(dir, camera.WithSettleDelay(300*time.Millisecond))

	events, handler := collect()
	require.NoError(t, cam.Open(ctx, handler))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "result.qr"), []byte("ABC"), 0o600))
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, cam.Close(ctx))

	select {
	case ev := <-events:
		t.Fatalf("unexpected event after close: %q", ev.Payload)
	case <-time.After(500 * time.Millisecond):
	}
	assert.FileExists(t, filepath.Join(dir, "result.qr"))
}

func TestReaderCamera_DeliversLinesWhileOpen(t *testing.T) {
	ctx := testContext()
	pr, pw := io.Pipe()
	cam := camera.NewReaderCamera(pr)

	events, handler := collect()
	require.NoError(t, cam.Open(ctx, handler))

	_, err := io.WriteString(pw, "ABC123\n\n  XYZ  \n")
	require.NoError(t, err)

	for _, want := range []entity.ScannedPayload{"ABC123", "XYZ"} {
		select {
		case ev := <-events:
			assert.Equal(t, want, ev.Payload)
		case <-time.After(waitTimeout):
			t.Fatalf("missing event %q", want)
		}
	}

	require.NoError(t, pw.Close())
	select {
	case <-cam.Done():
	case <-time.After(waitTimeout):
		t.Fatal("reader did not finish at EOF")
	}
	assert.NoError(t, cam.Err())
}

func TestReaderCamera_DiscardsLinesWhileClosed(t *testing.T) {
	ctx := testContext()
	pr, pw := io.Pipe()
	cam := camera.NewReaderCamera(pr)

	events, handler := collect()
	require.NoError(t, cam.Open(ctx, handler))
	require.NoError(t, cam.Close(ctx))

	_, err := io.WriteString(pw, "DROPPED\n")
	require.NoError(t, err)
	// The scanner reads again only after handling the previous line, so this
	// blank line returning means DROPPED was seen while closed.
	_, err = io.WriteString(pw, "\n")
	require.NoError(t, err)

	require.NoError(t, cam.Open(ctx, handler))
	_, err = io.WriteString(pw, "KEPT\n")
	require.NoError(t, err)
	require.NoError(t, pw.Close())

	select {
	case ev := <-events:
		assert.Equal(t, entity.ScannedPayload("KEPT"), ev.Payload)
	case <-time.After(waitTimeout):
		t.Fatal("missing event after reopen")
	}
	assert.Empty(t, events)
}
