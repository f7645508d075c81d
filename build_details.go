package openapimerge

import "fmt"

// version is set via -ldflags during release builds. Development builds
// report "dev".
var version = "dev"

// Version returns the compiled version, or "dev" when run from source.
func Version() string {
	return version
}

// UserAgent returns the User-Agent string the loader's HTTP client sends.
func UserAgent() string {
	return fmt.Sprintf("openapi-merge/%s", version)
}
