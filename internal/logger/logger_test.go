package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	log, err := New("development")
	require.NoError(t, err)
	require.NotNil(t, log)

	child := log.With("service", "test")
	assert.NotNil(t, child)
	assert.True(t, child.redact)
}

func TestSanitizeRedactsSecrets(t *testing.T) {
	log := &Logger{redact: true}

	out := log.sanitize([]interface{}{"jwt_token", "abc", "count", 3, "user_id", "42"})

	require.Len(t, out, 6)
	assert.Equal(t, "[REDACTED]", out[1])
	assert.Equal(t, 3, out[3])
	assert.Contains(t, out[5], "hash:")
	assert.NotEqual(t, "42", out[5])
}

func TestSanitizeOddKeyValues(t *testing.T) {
	log := &Logger{redact: true}

	out := log.sanitize([]interface{}{"count", 1, "dangling"})

	assert.Equal(t, []interface{}{"count", 1, "dangling"}, out)
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Info("hello", "k", "v")
		log.With("a", 1).Warn("warn")
		log.Sync()
	})
}
