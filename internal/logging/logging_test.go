package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelWarn, cfg.Level)
	assert.False(t, cfg.JSON)
}

func TestDebugConfig(t *testing.T) {
	cfg := DebugConfig()
	assert.Equal(t, slog.LevelDebug, cfg.Level)
	assert.True(t, cfg.JSON)
	assert.True(t, cfg.AddSource)
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })

	t.Run("text_config", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelInfo, Output: &buf})

		Info("slot loaded", KeySlot, "zenith:agenda")
		assert.Contains(t, buf.String(), "slot loaded")
		assert.Contains(t, buf.String(), "zenith:agenda")
		assert.False(t, Debug)
	})

	t.Run("json_config", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelDebug, JSON: true, Output: &buf})
		assert.True(t, Debug)

		DebugLog("hello", KeyCount, 3)
		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, float64(3), record[KeyCount])
	})

	t.Run("level_filters", func(t *testing.T) {
		var buf bytes.Buffer
		Init(Config{Level: slog.LevelWarn, Output: &buf})

		Info("quiet")
		assert.Empty(t, buf.String())
		Warn("loud")
		assert.Contains(t, buf.String(), "loud")
	})
}

func TestSecretsAreMasked(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Output: &buf})

	Info("configured", "api_key", "AIzaSyExampleKey123", "model", "gemini-2.5-flash")
	assert.NotContains(t, buf.String(), "AIzaSyExampleKey123")
	assert.Contains(t, buf.String(), "api_key=AIza***")
	assert.Contains(t, buf.String(), "model=gemini-2.5-flash")

	buf.Reset()
	Info("configured", "auth_token", 12345)
	assert.Contains(t, buf.String(), "auth_token=********")
}

func TestNewCallID(t *testing.T) {
	id := NewCallID()
	assert.Len(t, id, 8)
	assert.NotEqual(t, id, NewCallID())
}

func TestCallIDFromContext(t *testing.T) {
	assert.Equal(t, "", CallID(context.Background()))

	ctx := WithCallID(context.Background(), "abc")
	assert.Equal(t, "abc", CallID(ctx))
}

func TestEnsureCallID(t *testing.T) {
	ctx := EnsureCallID(context.Background())
	id := CallID(ctx)
	assert.NotEmpty(t, id)

	again := EnsureCallID(ctx)
	assert.Equal(t, id, CallID(again))
}

func TestFromContext(t *testing.T) {
	t.Cleanup(func() { Init(DefaultConfig()) })

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Output: &buf})

	FromContext(WithCallID(context.Background(), "c-1")).Info("with id")
	assert.Contains(t, buf.String(), "call_id=c-1")
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", MaskSecret(""))
	assert.Equal(t, "*****", MaskSecret("short"))
	assert.Equal(t, "abcd***", MaskSecret("abcdefghijkl"))
}

func TestIsSensitiveField(t *testing.T) {
	assert.True(t, IsSensitiveField("api_key"))
	assert.True(t, IsSensitiveField("GEMINI_API_KEY"))
	assert.True(t, IsSensitiveField("auth_token"))
	assert.False(t, IsSensitiveField("model"))
}
