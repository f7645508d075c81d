package merge

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/apimerge/openapi-merge/document"
)

// DescriptionTitle optionally prepends a Markdown heading to an appended
// description (§3.2).
type DescriptionTitle struct {
	Value        string
	HeadingLevel int
}

// Description controls whether an input's info.description is folded into
// the output's combined description (§4.9).
type Description struct {
	Append bool
	Title  *DescriptionTitle
}

func trimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}

// mergeInfo builds the output info object: the first input's info verbatim,
// except for description, which accumulates every input whose own
// Description.Append is true (§4.9).
func mergeInfo(inputs []*Input) *document.Info {
	first := inputs[0].Document.Info
	var info document.Info
	if first != nil {
		info = *first
	}

	var parts []string
	for _, in := range inputs {
		if in.Description == nil || !in.Description.Append || in.Document.Info == nil {
			continue
		}
		part := trimTrailingSpace(in.Document.Info.Description)
		if in.Description.Title != nil {
			level := in.Description.Title.HeadingLevel
			if level < 1 {
				level = 1
			}
			heading := strings.Repeat("#", level) + " " + in.Description.Title.Value + "\n\n"
			part = heading + part
		}
		parts = append(parts, part)
	}
	if len(parts) > 0 {
		info.Description = strings.Join(parts, "\n\n")
	}
	return &info
}

// mergeTags concatenates every input's tags in input order, excluding a tag
// whose name appears in that same input's own excludeTags, and de-duplicates
// by name with first occurrence winning (§4.9).
func mergeTags(inputs []*Input) []*document.Tag {
	var result []*document.Tag
	seen := make(map[string]struct{})
	for _, in := range inputs {
		if in.Document == nil {
			continue
		}
		var exclude map[string]struct{}
		if in.OperationSelection != nil && len(in.OperationSelection.ExcludeTags) > 0 {
			exclude = make(map[string]struct{}, len(in.OperationSelection.ExcludeTags))
			for _, t := range in.OperationSelection.ExcludeTags {
				exclude[t] = struct{}{}
			}
		}
		for _, tag := range in.Document.Tags {
			if tag == nil {
				continue
			}
			if _, excluded := exclude[tag.Name]; excluded {
				continue
			}
			if _, dup := seen[tag.Name]; dup {
				continue
			}
			seen[tag.Name] = struct{}{}
			result = append(result, tag)
		}
	}
	return result
}

// mergeServers returns the servers list of the first input that has a
// non-empty one (§4.9).
func mergeServers(inputs []*Input) []*document.Server {
	for _, in := range inputs {
		if in.Document != nil && len(in.Document.Servers) > 0 {
			return in.Document.Servers
		}
	}
	return nil
}

// mergeSecurity returns the security list of the first input that has a
// defined (non-nil) list, even if that list is empty (§4.9).
func mergeSecurity(inputs []*Input) []document.SecurityRequirement {
	for _, in := range inputs {
		if in.Document != nil && in.Document.Security != nil {
			return in.Document.Security
		}
	}
	return nil
}

// mergeExternalDocs returns externalDocs from the first input that has it.
func mergeExternalDocs(inputs []*Input) *document.ExternalDocs {
	for _, in := range inputs {
		if in.Document != nil && in.Document.ExternalDocs != nil {
			return in.Document.ExternalDocs
		}
	}
	return nil
}

// mergeExtensions unions every input's top-level "x-*" fields; on collision
// the first input wins (C9, §4.9).
func mergeExtensions(inputs []*Input) map[string]any {
	result := make(map[string]any)
	for _, in := range inputs {
		if in.Document == nil {
			continue
		}
		for k, v := range in.Document.Extra {
			if _, ok := result[k]; ok {
				continue
			}
			result[k] = v
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// openAPIVersion chooses the output's declared version: the explicit
// override if provided, else the first input's version.
func openAPIVersion(inputs []*Input, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if inputs[0].Document == nil || inputs[0].Document.OpenAPI == "" {
		return "", fmt.Errorf("merge: first input has no openapi version and no override was provided")
	}
	return inputs[0].Document.OpenAPI, nil
}
