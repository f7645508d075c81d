package mcpserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/apimerge/openapi-merge/merge"
	"github.com/apimerge/openapi-merge/writer"
)

type pathModificationInput struct {
	StripStart string `json:"strip_start,omitempty" jsonschema:"Prefix to strip from every path in this input before prepend is applied"`
	Prepend    string `json:"prepend,omitempty"     jsonschema:"Prefix to add to every path in this input"`
}

type operationSelectionInput struct {
	IncludeTags []string `json:"include_tags,omitempty" jsonschema:"Only operations intersecting this tag set are kept"`
	ExcludeTags []string `json:"exclude_tags,omitempty" jsonschema:"Operations intersecting this tag set are dropped, even if also included"`
}

type descriptionTitleInput struct {
	Value        string `json:"value" jsonschema:"Heading text to prepend to this input's description"`
	HeadingLevel int    `json:"heading_level,omitempty" jsonschema:"Markdown heading level, 1-6, default 1"`
}

type descriptionInput struct {
	Append bool                   `json:"append,omitempty" jsonschema:"Append this input's info.description to the merged description instead of discarding it"`
	Title  *descriptionTitleInput `json:"title,omitempty"`
}

type disputeInput struct {
	Prefix      string `json:"prefix,omitempty" jsonschema:"Prefix applied to this input's component names on collision"`
	Suffix      string `json:"suffix,omitempty" jsonschema:"Suffix applied to this input's component names on collision"`
	AlwaysApply bool   `json:"always_apply,omitempty" jsonschema:"Apply the rename even when this input's component is not in collision"`
}

func (d *disputeInput) toEngine() *merge.Dispute {
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

type mergeInput struct {
	Specs                  []specInput `json:"specs" jsonschema:"OpenAPI documents to merge, in priority order (minimum 2)"`
	OpenAPIVersionOverride string      `json:"openapi_version_override,omitempty" jsonschema:"Force the merged document's openapi version instead of using the first input's"`
	Output                 string      `json:"output,omitempty" jsonschema:"File path to write the merged document to. If omitted the result is returned inline."`
}

type mergeOutput struct {
	SpecCount   int    `json:"spec_count"`
	Version     string `json:"version"`
	PathCount   int    `json:"path_count"`
	SchemaCount int    `json:"schema_count"`
	WrittenTo   string `json:"written_to,omitempty"`
	Document    string `json:"document,omitempty"`
	Summary     string `json:"summary"`
}

func handleMerge(ctx context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Specs) < 2 {
		return errResult(fmt.Errorf("at least 2 specs are required for merging, got %d", len(input.Specs))), mergeOutput{}, nil
	}
	if len(input.Specs) > cfg.MaxSpecs {
		return errResult(fmt.Errorf("too many specs: got %d, maximum is %d; set OPENAPI_MERGE_MAX_SPECS to increase",
			len(input.Specs), cfg.MaxSpecs)), mergeOutput{}, nil
	}

	engineInputs := make([]*merge.Input, 0, len(input.Specs))
	for i, spec := range input.Specs {
		doc, err := spec.resolve(ctx)
		if err != nil {
			return errResult(fmt.Errorf("spec[%d]: %w", i, err)), mergeOutput{}, nil
		}

		engineInput := &merge.Input{Document: doc, Dispute: spec.Dispute.toEngine()}
		if spec.PathModification != nil {
			engineInput.PathModification = &merge.PathModification{
				StripStart: spec.PathModification.StripStart,
				Prepend:    spec.PathModification.Prepend,
			}
		}
		if spec.OperationSelection != nil {
			engineInput.OperationSelection = &merge.OperationSelection{
				IncludeTags: spec.OperationSelection.IncludeTags,
				ExcludeTags: spec.OperationSelection.ExcludeTags,
			}
		}
		if spec.Description != nil {
			desc := &merge.Description{Append: spec.Description.Append}
			if spec.Description.Title != nil {
				desc.Title = &merge.DescriptionTitle{
					Value:        spec.Description.Title.Value,
					HeadingLevel: spec.Description.Title.HeadingLevel,
				}
			}
			engineInput.Description = desc
		}
		engineInputs = append(engineInputs, engineInput)
	}

	result, err := merge.Merge(engineInputs, merge.Options{OpenAPIVersionOverride: input.OpenAPIVersionOverride})
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		SpecCount:   len(input.Specs),
		Version:     result.OpenAPI,
		PathCount:   result.Paths.Len(),
		SchemaCount: result.Components.Schemas.Len(),
	}
	output.Summary = buildMergeSummary(output)

	if input.Output != "" {
		if err := writer.Write(result, input.Output); err != nil {
			return errResult(err), mergeOutput{}, nil
		}
		output.WrittenTo = input.Output
		return nil, output, nil
	}

	inline, err := writer.MarshalJSON(result)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}
	output.Document = string(inline)
	return nil, output, nil
}

func buildMergeSummary(output mergeOutput) string {
	summary := "Merged " + strconv.Itoa(output.SpecCount) + " specs into " + output.Version + " document"
	summary += " with " + formatCount(output.PathCount, "path")
	summary += " and " + formatCount(output.SchemaCount, "schema") + "."
	return summary
}

func formatCount(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return strconv.Itoa(n) + " " + noun + "s"
}
