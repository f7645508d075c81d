// Package mergeconfig loads and validates the merge engine's run
// configuration: the ordered input list plus the output target, read from a
// JSON or YAML file (§6). It is an external collaborator to the merge
// engine proper — the engine never reads files itself.
package mergeconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v4"

	"github.com/apimerge/openapi-merge/merge"
)

// Configuration is the top-level shape of an openapi-merge config file.
type Configuration struct {
	Inputs         []ConfigurationInput `yaml:"inputs" json:"inputs"`
	Output         string                `yaml:"output" json:"output"`
	OpenAPIVersion string                `yaml:"openapiVersion,omitempty" json:"openapiVersion,omitempty"`
}

// ConfigurationInput describes one entry in Configuration.Inputs. Exactly
// one of InputFile or InputURL must be set.
type ConfigurationInput struct {
	InputFile string `yaml:"inputFile,omitempty" json:"inputFile,omitempty"`
	InputURL  string `yaml:"inputURL,omitempty" json:"inputURL,omitempty"`

	PathModification   *PathModification   `yaml:"pathModification,omitempty" json:"pathModification,omitempty"`
	OperationSelection *OperationSelection `yaml:"operationSelection,omitempty" json:"operationSelection,omitempty"`
	Description        *Description        `yaml:"description,omitempty" json:"description,omitempty"`
	Dispute            *Dispute            `yaml:"dispute,omitempty" json:"dispute,omitempty"`

	// DisputePrefix is the legacy field lowered to Dispute before the engine
	// sees it (§3.2).
	DisputePrefix string `yaml:"disputePrefix,omitempty" json:"disputePrefix,omitempty"`
}

// PathModification mirrors merge.PathModification in config-file shape.
type PathModification struct {
	StripStart string `yaml:"stripStart,omitempty" json:"stripStart,omitempty"`
	Prepend    string `yaml:"prepend,omitempty" json:"prepend,omitempty"`
}

// OperationSelection mirrors merge.OperationSelection in config-file shape.
type OperationSelection struct {
	IncludeTags []string `yaml:"includeTags,omitempty" json:"includeTags,omitempty"`
	ExcludeTags []string `yaml:"excludeTags,omitempty" json:"excludeTags,omitempty"`
}

// DescriptionTitle mirrors merge.DescriptionTitle in config-file shape.
type DescriptionTitle struct {
	Value        string `yaml:"value" json:"value"`
	HeadingLevel int    `yaml:"headingLevel,omitempty" json:"headingLevel,omitempty"`
}

// Description mirrors merge.Description in config-file shape.
type Description struct {
	Append bool              `yaml:"append,omitempty" json:"append,omitempty"`
	Title  *DescriptionTitle `yaml:"title,omitempty" json:"title,omitempty"`
}

// Dispute is the tagged union described in §3.2: exactly one of Prefix or
// Suffix is set.
type Dispute struct {
	Prefix      string `yaml:"prefix,omitempty" json:"prefix,omitempty"`
	Suffix      string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
	AlwaysApply bool   `yaml:"alwaysApply,omitempty" json:"alwaysApply,omitempty"`
}

// ToEngine converts a config-file Dispute into the engine's representation.
func (d *Dispute) ToEngine() *merge.Dispute {
	if d == nil {
		return nil
	}
	switch {
	case d.Prefix != "":
		return &merge.Dispute{Kind: merge.DisputeKindPrefix, Value: d.Prefix, AlwaysApply: d.AlwaysApply}
	case d.Suffix != "":
		return &merge.Dispute{Kind: merge.DisputeKindSuffix, Value: d.Suffix, AlwaysApply: d.AlwaysApply}
	default:
		return nil
	}
}

// Load reads the configuration file at path and parses it with a single
// YAML decode whatever its extension; YAML is a superset of JSON, so JSON
// config files parse through the same call. Unknown fields are ignored for
// forward compatibility, which go.yaml.in/yaml/v4 does by default when
// decoding into a named struct.
func Load(path string) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mergeconfig: read %s: %w", path, err)
	}

	var cfg Configuration
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("mergeconfig: parse %s: %w", path, err)
	}
	if len(cfg.Inputs) == 0 {
		return nil, fmt.Errorf("mergeconfig: %s declares no inputs", path)
	}
	for i, in := range cfg.Inputs {
		hasFile := in.InputFile != ""
		hasURL := in.InputURL != ""
		if hasFile == hasURL {
			return nil, fmt.Errorf("mergeconfig: input %d must set exactly one of inputFile or inputURL", i)
		}
	}
	if cfg.Output == "" {
		return nil, fmt.Errorf("mergeconfig: %s declares no output path", path)
	}
	return &cfg, nil
}

// IsYAMLPath reports whether path's extension selects YAML output, matching
// the output writer's own rule (§6): ".yml" or ".yaml", otherwise JSON.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
