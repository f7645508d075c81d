package mcpserver

import (
	"context"
	"fmt"

	"github.com/apimerge/openapi-merge/document"
	"github.com/apimerge/openapi-merge/loader"
)

// specInput represents the three ways one OAS document can be supplied to
// the merge tool. Exactly one of File, URL, or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	URL     string `json:"url,omitempty"     jsonschema:"URL to fetch an OpenAPI document from"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`

	PathModification   *pathModificationInput   `json:"path_modification,omitempty"`
	OperationSelection *operationSelectionInput `json:"operation_selection,omitempty"`
	Description        *descriptionInput        `json:"description,omitempty"`
	Dispute            *disputeInput            `json:"dispute,omitempty" jsonschema:"Collision renaming rule for this input's components"`
}

// resolve loads the document named by s, using whichever of File, URL, or
// Content was set.
func (s specInput) resolve(ctx context.Context) (*document.Document, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.URL != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, fmt.Errorf("exactly one of file, url, or content must be provided (got %d)", count)
	}

	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file or url instead",
				len(s.Content), cfg.MaxInlineSize)
		}
		return loader.DecodeBytes([]byte(s.Content), "<inline>")
	}

	return loader.Load(ctx, loader.Source{File: s.File, URL: s.URL})
}
