package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, time.UTC, "debug")

	log.Info().Str("component", "test").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test", entry["component"])
	assert.Equal(t, "hello", entry["message"])
	assert.NotEmpty(t, entry["ts"])
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, nil, "warn")

	log.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("kept")
	assert.NotZero(t, buf.Len())
}

func TestNew_UnknownLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, time.UTC, "loud")

	log.Debug().Msg("dropped")
	assert.Zero(t, buf.Len())

	log.Info().Msg("kept")
	assert.NotZero(t, buf.Len())
}
