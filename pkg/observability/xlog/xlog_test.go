package xlog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/otmyalme/wherefrom/pkg/observability/xrotate"
)

func newBufferLogger(t *testing.T, format string) (RootLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger, cleanup, err := New().SetOutput(&buf).SetFormat(format).SetLevel(LevelDebug).Build()
	require.NoError(t, err)
	t.Cleanup(func() { _ = cleanup() })
	return logger, &buf
}

// =============================================================================
// Builder
// =============================================================================

func TestBuilder_JSON(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")

	logger.Info(context.Background(), "read failed",
		Path("/a/b"), Kind(LevelWarn), Errno("EACCES"), Operation("getxattr"), Count(3))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "read failed", rec["msg"])
	assert.Equal(t, "/a/b", rec[KeyPath])
	assert.Equal(t, "WARN", rec[KeyKind])
	assert.Equal(t, "EACCES", rec[KeyErrno])
	assert.Equal(t, "getxattr", rec[KeyOperation])
	assert.InDelta(t, 3, rec[KeyCount], 0)
}

func TestBuilder_Text(t *testing.T) {
	logger, buf := newBufferLogger(t, "")
	logger.Debug(context.Background(), "hello", Root("/r"))
	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "root=/r")
}

func TestBuilder_Errors(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantErr string
	}{
		{"bad level", New().SetLevelString("loud"), `xlog: unknown level "loud"`},
		{"bad format", New().SetFormat("xml"), `xlog: unknown format "xml"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, cleanup, err := tt.builder.Build()
			assert.Nil(t, logger)
			assert.Nil(t, cleanup)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBuilder_Rotation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	logger, cleanup, err := New().SetRotation(path, xrotate.WithMaxSize(1)).Build()
	require.NoError(t, err)
	logger.Info(context.Background(), "to file")
	require.NoError(t, cleanup())
	// 清理函数可重复调用
	require.NoError(t, cleanup())

	assert.FileExists(t, path)
}

func TestBuilder_RotationError(t *testing.T) {
	_, _, err := New().SetRotation("").Build()
	assert.ErrorIs(t, err, xrotate.ErrEmptyFilename)
}

// =============================================================================
// 级别
// =============================================================================

func TestLevel_Dynamic(t *testing.T) {
	var buf bytes.Buffer
	logger, _, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	ctx := context.Background()

	child := logger.With(slog.String("k", "v"))
	child.Debug(ctx, "hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, logger.CurrentLevel())
	assert.True(t, logger.Enabled(ctx, LevelDebug))

	child.Debug(ctx, "shown")
	assert.Contains(t, buf.String(), "k=v")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{" INFO ", LevelInfo},
		{"warning", LevelWarn},
		{"Warn", LevelWarn},
		{"error", LevelError},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "INFO+2", Level(2).String())
	assert.Equal(t, []string{"debug", "info", "warn", "error"}, LevelNames())

	_, err := ParseLevel("trace")
	assert.ErrorContains(t, err, "want one of debug, info, warn, error")
}

// =============================================================================
// 派生与全局
// =============================================================================

func TestWith(t *testing.T) {
	logger, buf := newBufferLogger(t, "json")
	logger.With(Root("/data")).Info(context.Background(), "done", Count(2))
	assert.Contains(t, buf.String(), `"root":"/data"`)
	assert.Contains(t, buf.String(), `"count":2`)

	assert.Same(t, logger, logger.With())
}

func TestErr(t *testing.T) {
	assert.Equal(t, slog.Attr{}, Err(nil))
	assert.Equal(t, "boom", Err(errors.New("boom")).Value.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestLogger_DroppedRecords(t *testing.T) {
	logger, _, err := New().SetOutput(failingWriter{}).Build()
	require.NoError(t, err)
	ctx := context.Background()

	logger.Info(ctx, "lost")
	logger.With(Path("/tmp/a")).Warn(ctx, "lost too")
	logger.Debug(ctx, "filtered before writing")
	assert.Equal(t, uint64(2), logger.DroppedRecords())
}

func TestDefault(t *testing.T) {
	first := Default()
	assert.Same(t, first, Default())
	t.Cleanup(func() { SetDefault(first) })

	var buf bytes.Buffer
	custom, _, err := New().SetOutput(&buf).Build()
	require.NoError(t, err)
	SetDefault(custom)
	SetDefault(nil)

	Default().Info(context.Background(), "global")
	Default().Warn(context.Background(), "global warn")
	assert.Equal(t, 2, strings.Count(buf.String(), "global"))
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error(context.Background(), "nothing")
	assert.False(t, l.Enabled(context.Background(), LevelError))
}
