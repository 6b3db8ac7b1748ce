package database

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func captureLogger(level logger.LogLevel) (*slogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return newLogger(log, level), &buf
}

func levels(t *testing.T, buf *bytes.Buffer) []string {
	t.Helper()
	var out []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry["level"].(string))
	}
	return out
}

func statement() (string, int64) { return "SELECT 1", 1 }

func TestLoggerReportsFailuresAsErrors(t *testing.T) {
	l, buf := captureLogger(logger.Warn)

	l.Trace(context.Background(), time.Now(), statement, errors.New("FOREIGN KEY constraint failed"))
	assert.Equal(t, []string{"ERROR"}, levels(t, buf))
	assert.Contains(t, buf.String(), "FOREIGN KEY constraint failed")
}

func TestLoggerLevels(t *testing.T) {
	l, buf := captureLogger(logger.Warn)
	ctx := context.Background()

	l.Trace(ctx, time.Now(), statement, gorm.ErrRecordNotFound)
	l.Trace(ctx, time.Now(), statement, nil)
	assert.Empty(t, levels(t, buf))

	l.Trace(ctx, time.Now().Add(-time.Second), statement, nil)
	l.Warn(ctx, "careful %d", 1)
	l.Info(ctx, "hidden")
	assert.Equal(t, []string{"WARN", "WARN"}, levels(t, buf))

	buf.Reset()
	traced := l.LogMode(logger.Info)
	traced.Trace(ctx, time.Now(), statement, nil)
	assert.Equal(t, []string{"INFO"}, levels(t, buf))

	buf.Reset()
	l.LogMode(logger.Silent).Trace(ctx, time.Now(), statement, errors.New("boom"))
	assert.Empty(t, levels(t, buf))
}
