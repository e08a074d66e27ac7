package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"file": "gallery.yaml", "components": 3})
	log.Info("rendered gallery")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "rendered gallery", entries[0]["message"])
	require.Equal(t, "gallery.yaml", entries[0]["file"])
	require.EqualValues(t, 3, entries[0]["components"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestLoggerLevelIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "DEBUG", Writer: buf})
	require.NoError(t, err)

	log.Debug("visible")
	require.Len(t, decode(t, buf), 1)
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"fragment": "stats"}).Error(errors.New("boom"), "failed")
	log.Warn("careful")

	entries := decode(t, buf)
	require.Len(t, entries, 2)
	require.Equal(t, "failed", entries[0]["message"])
	require.Equal(t, "stats", entries[0]["fragment"])
	require.Equal(t, "boom", entries[0]["error"])
	require.Equal(t, "warn", entries[1]["level"])
	require.NotContains(t, entries[1], "fragment")
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Info("hello")
	require.Contains(t, buf.String(), "hello")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestZerologShareSink(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	zl := log.Zerolog()
	zl.Info().Str("via", "zerolog").Msg("direct")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "zerolog", entries[0]["via"])
}

func TestNilLogger(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Error(errors.New("x"), "ignored")
		_ = log.WithFields(map[string]any{"a": 1})
		zl := log.Zerolog()
		zl.Info().Msg("ignored")
	})
}
