// Package openapimerge composes multiple independently authored OpenAPI 3.0
// documents into a single coherent document.
//
// # Overview
//
// The library is organized into a handful of focused packages:
//
//   - document: the OpenAPI 3.0 object model, with insertion-order-preserving
//     component maps and $ref-aware types
//   - merge: the merge engine itself — path and component composition,
//     collision renaming, and reference rewriting
//   - mergeerrors: the structured error types the engine returns
//   - mergeconfig: loads and validates a merge run's configuration file
//   - loader: fetches documents from a local path or an HTTP(S) URL
//   - writer: serializes the merged document back to YAML or JSON
//   - orderedmap: the generic insertion-ordered map underlying document
//
// # Quick Start
//
//	docA, _ := loader.Load(ctx, loader.Source{File: "base.yaml"})
//	docB, _ := loader.Load(ctx, loader.Source{File: "extension.yaml"})
//
//	merged, err := merge.Merge([]*merge.Input{
//		{Document: docA},
//		{Document: docB, Dispute: &merge.Dispute{Kind: merge.DisputeKindSuffix, Value: "Ext"}},
//	}, merge.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = writer.Write(merged, "merged.yaml")
//
// # Command-Line Interface and MCP Server
//
// The module also ships a CLI and an MCP (Model Context Protocol) server:
//
//	go install github.com/apimerge/openapi-merge/cmd/openapi-merge@latest
//
//	openapi-merge --config openapi-merge.json
//	openapi-merge mcp
package openapimerge
