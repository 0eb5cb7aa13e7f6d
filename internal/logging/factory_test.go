package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "text", want: "msg=hello"},
		{format: "", want: "msg=hello"},
		{format: "json", want: `"msg":"hello"`},
		{format: "zap", want: "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(&buf, tt.format, "debug")
			require.NoError(t, err)

			log.Info(context.Background(), "hello")
			if z, ok := log.(*ZapLogger); ok {
				_ = z.Sync()
			}
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, "text", "warn")
	require.NoError(t, err)

	log.Info(context.Background(), "quiet")
	log.Warn(context.Background(), "loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_Errors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	require.Error(t, err)

	_, err = New(&bytes.Buffer{}, "text", "verbose")
	require.Error(t, err)
}

func TestNop(t *testing.T) {
	l := Nop().With("k", "v")
	l.Debug(context.Background(), "x")
	l.Error(context.Background(), "x")
}

type syncRecorder struct {
	bytes.Buffer
	synced int
}

func (s *syncRecorder) Sync() error {
	s.synced++
	return nil
}

func TestFlush(t *testing.T) {
	var w syncRecorder
	log, err := New(&w, FormatZap, "info")
	require.NoError(t, err)

	log.Info(context.Background(), "bye")
	require.NoError(t, Flush(log))
	assert.Equal(t, 1, w.synced)
	assert.Contains(t, w.String(), "bye")

	text, err := New(&w, FormatText, "info")
	require.NoError(t, err)
	require.NoError(t, Flush(text))
	assert.Equal(t, 1, w.synced)
}
