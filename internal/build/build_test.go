package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersion_EmbeddedFallback(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = ""
	assert.Equal(t, "0.1.0", Version())
}

func TestVersion_LdflagsOverride(t *testing.T) {
	orig := version
	t.Cleanup(func() { version = orig })

	version = "1.2.3"
	assert.Equal(t, "1.2.3", Version())
}

func TestCommitAndDateDefaults(t *testing.T) {
	assert.NotEmpty(t, Commit())
	assert.NotEmpty(t, Date())
}
