package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Level(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  zerolog.Level
	}{
		{name: "debug", level: "debug", want: zerolog.DebugLevel},
		{name: "upper case", level: "WARN", want: zerolog.WarnLevel},
		{name: "empty falls back to info", level: "", want: zerolog.InfoLevel},
		{name: "unknown falls back to info", level: "verbose", want: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := New(tt.level, &buf)
			assert.Equal(t, tt.want, log.GetLevel())
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.Info().Str("component", "video_repository").Msg("hello")
	log.Debug().Msg("dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "video_repository", entry["component"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "time")
}
