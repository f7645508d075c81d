// Package writer serializes a merged document to disk. It is the "output
// writer" external collaborator the merge engine's contract assumes but
// never implements itself (§6): YAML if the target extension is .yml/.yaml,
// otherwise pretty-printed JSON.
package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/segmentio/encoding/json"
	"go.yaml.in/yaml/v4"

	"github.com/apimerge/openapi-merge/document"
)

// outputFileMode matches the teacher's own convention of writing
// specification output with restrictive permissions, since a merged API
// surface can embed internal-only paths or descriptions.
const outputFileMode = 0o600

// Write renders doc and writes it to path, selecting YAML or JSON by path's
// extension.
func Write(doc *document.Document, path string) error {
	var data []byte
	var err error
	if isYAMLPath(path) {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("writer: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("writer: write %s: %w", path, err)
	}
	return nil
}

// MarshalJSON renders doc as pretty-printed JSON without touching disk, for
// callers that return the document inline rather than writing it to a path.
func MarshalJSON(doc *document.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("writer: encode: %w", err)
	}
	return data, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
