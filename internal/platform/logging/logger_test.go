package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCtxAddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	prevLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		SetLogger(prev)
		zerolog.SetGlobalLevel(prevLevel)
	})

	Init(Config{Level: "debug", Output: &buf})

	ctx := ContextWithRequestID(context.Background(), "req-42")
	Ctx(ctx).Info().Str("op", "test").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "req-42", line["request_id"])
	assert.Equal(t, "test", line["op"])
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "info", line["level"])
}

func TestRequestIDFromEmptyContext(t *testing.T) {
	assert.Equal(t, "", RequestIDFromContext(context.Background()))
	assert.NotEmpty(t, GenerateRequestID())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
	assert.Equal(t, zerolog.Disabled, parseLevel("disabled"))
}
