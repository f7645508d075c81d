// Package merge implements the merge engine (C1-C10): the pure function
// that composes the path set, the components, and every inter-component
// reference across N input OpenAPI 3.0 documents into one coherent output.
//
// The engine is strictly single-threaded and synchronous; it accepts
// already-parsed documents (package document) and returns a new document or
// a structured error (package mergeerrors). Fetching documents, parsing
// configuration, and writing the result are handled by sibling packages
// (loader, mergeconfig, writer) and are not this package's concern.
package merge

import (
	"github.com/apimerge/openapi-merge/document"
	"github.com/apimerge/openapi-merge/mergeerrors"
)

// Input is one annotated input document (§3.2). Inputs are ordered; the
// first is privileged for several tie-breaks (info, servers, security,
// externalDocs, and the output's declared OpenAPI version).
type Input struct {
	Document            *document.Document
	PathModification    *PathModification
	OperationSelection  *OperationSelection
	Description         *Description
	Dispute             *Dispute
	DisputePrefix       string // legacy; lowered to Dispute before use if Dispute is nil
}

// normalizedDispute returns in.Dispute, lowering the legacy DisputePrefix
// field if no explicit Dispute was set (§3.2).
func (in *Input) normalizedDispute() *Dispute {
	if in.Dispute != nil {
		return in.Dispute
	}
	return LowerDisputePrefix(in.DisputePrefix)
}

// Options carries the merge call's global parameters.
type Options struct {
	// OpenAPIVersionOverride, if set, becomes the output's openapi version
	// instead of the first input's.
	OpenAPIVersionOverride string
}

// Merge runs the engine over inputs and returns the merged document, or an
// error. The taxonomy failures (no inputs, duplicate paths, component and
// operationId conflicts, ambiguous rewrites) are package mergeerrors types;
// a missing openapi version or a failed scratch clone is reported as a
// plain error. It is the engine's single exposed operation (§6).
func Merge(inputs []*Input, opts Options) (*document.Document, error) {
	if len(inputs) == 0 {
		return nil, &mergeerrors.NoInputsError{}
	}

	version, err := openAPIVersion(inputs, opts.OpenAPIVersionOverride)
	if err != nil {
		return nil, err
	}

	acc := document.New()
	acc.OpenAPI = version
	seen := make(seenOperationIDs)

	for idx, in := range inputs {
		dispute := in.normalizedDispute()

		scratch, err := in.Document.Clone()
		if err != nil {
			return nil, err
		}

		RunSelection(scratch, in.OperationSelection)
		DropEmptyPathItems(scratch)

		rewriteTable := NewRewriteTable()

		if err := mergeComponents(acc.Components, scratch.Components, dispute, rewriteTable, idx); err != nil {
			return nil, err
		}

		// uniquifyAndInsertPath inserts pathItem by reference into acc, and
		// the orchestrator later walks scratch (not acc) to apply
		// rewriteTable, relying on acc and
		// scratch sharing the same PathItem and component-value pointers for
		// this iteration (see the doc comment on uniquifyAndInsertPath).
		for originalPath, pathItem := range scratch.Paths.All() {
			newPath := ModifyPath(originalPath, in.PathModification)
			if newPath != originalPath {
				rewriteTable.Set("#/paths/"+originalPath, "#/paths/"+newPath)
			}
			if err := uniquifyAndInsertPath(acc.Paths, idx, originalPath, newPath, pathItem, dispute, seen); err != nil {
				return nil, err
			}
		}

		modify := func(ref string) (string, error) { return Lookup(rewriteTable, ref) }
		if err := WalkDocument(scratch, modify); err != nil {
			return nil, err
		}
	}

	acc.Info = mergeInfo(inputs)
	acc.Tags = mergeTags(inputs)
	acc.Servers = mergeServers(inputs)
	acc.Security = mergeSecurity(inputs)
	acc.ExternalDocs = mergeExternalDocs(inputs)
	acc.Extra = mergeExtensions(inputs)

	return acc, nil
}
