package logging_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/bnema/scanclip/internal/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, logging.ParseLevel(tt.input))
		})
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Format = "json"
	cfg.Output = &buf
	logger := logging.New(cfg)

	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "scan")
	logging.FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"scan"`)
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestFromContext_WithoutLoggerIsNoop(t *testing.T) {
	logger := logging.FromContext(context.Background())
	assert.NotNil(t, logger)
	logger.Info().Msg("dropped")
}
