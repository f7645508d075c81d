package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
)

// serverConfig holds configurable MCP server defaults, loaded once at
// startup from environment variables.
type serverConfig struct {
	// MaxInlineSize bounds a specInput.Content payload, in bytes.
	MaxInlineSize int64
	// MaxSpecs bounds how many documents a single merge call may accept.
	MaxSpecs int
}

var cfg = loadConfig()

// loadConfig reads OPENAPI_MERGE_* environment variables. Invalid values
// log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInlineSize: envInt64("OPENAPI_MERGE_MAX_INLINE_SIZE", 2<<20),
		MaxSpecs:      envInt("OPENAPI_MERGE_MAX_SPECS", 32),
	}
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
