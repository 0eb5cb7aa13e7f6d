package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestZapLogger_WritesFieldsAndRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZapConsole(&buf, zapcore.InfoLevel)
	ctx := context.Background()

	log.Debug(ctx, "hidden")
	log.With("service", "account").Info(ctx, "sent", "status", 200)
	log.Warn(ctx, "slow")
	_ = log.Sync()

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "sent")
	assert.Contains(t, out, `"service": "account"`)
	assert.Contains(t, out, `"status": 200`)
	assert.True(t, strings.Contains(out, "WARN"))
}
