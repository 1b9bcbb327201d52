package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturedLogger(level string) (Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	logger.SetOutput(buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logger.SetLevel(parsed)
	}
	return NewLogrusAdapterFromLogger(logger), buf
}

func TestNewLogrusAdapter(t *testing.T) {
	assert.NotNil(t, NewLogrusAdapter("debug", "json"))
	assert.NotNil(t, NewLogrusAdapter("info", "text"))
	// Invalid level falls back to info instead of failing.
	assert.NotNil(t, NewLogrusAdapter("bogus", "text"))
}

func TestLogLevels(t *testing.T) {
	log, buf := newCapturedLogger("debug")

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")
	log.Error("error message")

	out := buf.String()
	assert.Contains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestLevelFiltering(t *testing.T) {
	log, buf := newCapturedLogger("warn")

	log.Debug("hidden")
	log.Info("also hidden")
	log.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestStructuredFields(t *testing.T) {
	log, buf := newCapturedLogger("info")

	log.Info("converted",
		Field{Key: FieldConverter, Value: "MT103"},
		Field{Key: FieldCount, Value: 3},
	)

	out := buf.String()
	assert.Contains(t, out, `"converter":"MT103"`)
	assert.Contains(t, out, `"count":3`)
}

func TestWithField(t *testing.T) {
	log, buf := newCapturedLogger("info")

	scoped := log.WithField(FieldMessageType, "mt202")
	scoped.Info("first")
	scoped.Info("second")

	out := buf.String()
	require.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, out, `"message_type":"mt202"`)

	// The parent logger is unaffected.
	buf.Reset()
	log.Info("plain")
	assert.NotContains(t, buf.String(), "message_type")
}

func TestWithError(t *testing.T) {
	log, buf := newCapturedLogger("info")

	log.WithError(errors.New("boom")).Error("failed")

	assert.Contains(t, buf.String(), `"error":"boom"`)
}
