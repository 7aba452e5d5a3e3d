package debug

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, on bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetNoColor(true)
	SetDebug(on)

	t.Cleanup(func() {
		SetDebug(false)
		SetOutput(nil)
	})

	return &buf
}

func TestSetDebug(t *testing.T) {
	SetDebug(false)
	assert.False(t, IsEnabled(), "debug should be disabled initially")

	SetDebug(true)
	assert.True(t, IsEnabled(), "debug should be enabled")

	SetDebug(false)
	assert.False(t, IsEnabled(), "debug should be disabled again")
}

func TestDebugOutput(t *testing.T) {
	buf := capture(t, true)

	Debug("test message %s", "arg")

	output := buf.String()
	assert.Contains(t, output, "DBG")
	assert.Contains(t, output, "test message arg")
}

func TestDebugDisabled(t *testing.T) {
	buf := capture(t, false)

	Debug("this should not appear")
	DebugSection("hidden")
	DebugValue("key", "value")

	assert.Empty(t, buf.String())
}

func TestDebugSection(t *testing.T) {
	buf := capture(t, true)

	DebugSection("Test Section")

	assert.Contains(t, buf.String(), "=== Test Section ===")
}

func TestDebugValue(t *testing.T) {
	buf := capture(t, true)

	DebugValue("key", "value")

	assert.Contains(t, buf.String(), "key=value")
}

func TestDebugDuration(t *testing.T) {
	buf := capture(t, true)

	DebugDuration("[store] List", time.Now())

	output := buf.String()
	assert.Contains(t, output, "operation=")
	assert.Contains(t, output, "duration=")
}
