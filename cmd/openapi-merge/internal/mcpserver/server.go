// Package mcpserver implements an MCP (Model Context Protocol) server that
// exposes the merge engine as a single MCP tool over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverName = "openapi-merge"

const serverInstructions = `openapi-merge MCP server — merges multiple OpenAPI 3.0 documents into one.

Configuration: defaults are configurable via OPENAPI_MERGE_* environment variables set in your MCP client config.

Key settings:
- OPENAPI_MERGE_MAX_INLINE_SIZE (default: 2097152) — maximum bytes for an inline spec's content field
- OPENAPI_MERGE_MAX_SPECS (default: 32) — maximum number of specs a single merge call may accept`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or ctx is cancelled.
func Run(ctx context.Context, version string) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: serverName, Version: version},
		&mcp.ServerOptions{Instructions: serverInstructions},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name: "merge",
		Description: "Merge multiple OpenAPI 3.0 documents into a single document. Requires at least 2 specs via the specs array, given in priority order: the first input's info, servers, security, and externalDocs win ties. Per-input path_modification (strip_start/prepend), operation_selection (include_tags/exclude_tags, exclude wins), description (append with an optional title), and dispute (prefix/suffix rename on component-name collision) are all optional. Use output to write the merged document to a file instead of returning it inline.",
	}, handleMerge)
}

// errResult creates an MCP error result from err.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
