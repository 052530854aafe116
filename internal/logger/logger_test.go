package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capture redirects l into a buffer and returns a reader for the last entry.
func capture(t *testing.T, l *Logger) (*Logger, func() map[string]any) {
	t.Helper()

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)

	return l, func() map[string]any {
		t.Helper()
		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		buf.Reset()
		return entry
	}
}

func TestNewLogger_EntryLayout(t *testing.T) {
	l, last := capture(t, NewLogger("blog-server"))

	l.Info().Int64("blog_id", 7).Msg("blog created")

	entry := last()
	assert.Equal(t, "blog-server", entry["role"])
	assert.Equal(t, "blog created", entry["message"])
	assert.EqualValues(t, 7, entry["blog_id"])
	assert.Contains(t, entry, "time")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLoggerWithLevel_FiltersBelowLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	var buf bytes.Buffer
	l := NewLoggerWithLevel("blog-server", zerolog.WarnLevel)
	l.Logger = l.Output(&buf)

	l.Info().Msg("listing blogs")
	assert.Empty(t, buf.String())

	l.Warn().Msg("object storage unreachable")
	assert.Contains(t, buf.String(), "object storage unreachable")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_DoesNotLeakFields(t *testing.T) {
	parent, lastParent := capture(t, NewLogger("blog-server"))

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.Logger = child.With().Str("trace_id", "abc").Logger()

	child.Info().Msg("child")
	childEntry := lastParent()
	assert.Equal(t, "abc", childEntry["trace_id"])
	assert.Equal(t, "blog-server", childEntry["role"])

	parent.Info().Msg("parent")
	assert.NotContains(t, lastParent(), "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("attached logger", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := zerolog.New(&buf).With().Str("user_id", "3").Logger().WithContext(context.Background())

		FromContext(ctx).Info().Msg("delete blog")

		assert.Contains(t, buf.String(), `"user_id":"3"`)
	})

	t.Run("bare context", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})
}

func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	ctx := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger().WithContext(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/blogs", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("list")

	assert.Contains(t, buf.String(), `"trace_id":"req-1"`)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zerolog.Level
		wantErr bool
	}{
		{in: "", want: zerolog.DebugLevel},
		{in: "info", want: zerolog.InfoLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "loud", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
