package mcpserver

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvInt64Default(t *testing.T) {
	os.Unsetenv("OPENAPI_MERGE_TEST_INT64")
	assert.Equal(t, int64(42), envInt64("OPENAPI_MERGE_TEST_INT64", 42))
}

func TestEnvInt64Valid(t *testing.T) {
	t.Setenv("OPENAPI_MERGE_TEST_INT64", "100")
	assert.Equal(t, int64(100), envInt64("OPENAPI_MERGE_TEST_INT64", 42))
}

func TestEnvInt64InvalidFallsBackToDefault(t *testing.T) {
	t.Setenv("OPENAPI_MERGE_TEST_INT64", "not-a-number")
	assert.Equal(t, int64(42), envInt64("OPENAPI_MERGE_TEST_INT64", 42))
}

func TestEnvInt64NonPositiveFallsBackToDefault(t *testing.T) {
	t.Setenv("OPENAPI_MERGE_TEST_INT64", "-5")
	assert.Equal(t, int64(42), envInt64("OPENAPI_MERGE_TEST_INT64", 42))
}

func TestEnvIntDefault(t *testing.T) {
	os.Unsetenv("OPENAPI_MERGE_TEST_INT")
	assert.Equal(t, 7, envInt("OPENAPI_MERGE_TEST_INT", 7))
}

func TestEnvIntValid(t *testing.T) {
	t.Setenv("OPENAPI_MERGE_TEST_INT", "9")
	assert.Equal(t, 9, envInt("OPENAPI_MERGE_TEST_INT", 7))
}

func TestLoadConfigDefaults(t *testing.T) {
	os.Unsetenv("OPENAPI_MERGE_MAX_INLINE_SIZE")
	os.Unsetenv("OPENAPI_MERGE_MAX_SPECS")

	loaded := loadConfig()
	assert.Equal(t, int64(2<<20), loaded.MaxInlineSize)
	assert.Equal(t, 32, loaded.MaxSpecs)
}
