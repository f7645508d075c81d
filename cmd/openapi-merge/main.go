// Command openapi-merge is the CLI front-end for the merge engine. Per the
// engine's own scope (§1), everything in this file — flag parsing, logging,
// exit codes — is a collaborator, not part of the engine itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	openapimerge "github.com/apimerge/openapi-merge"
	"github.com/apimerge/openapi-merge/cmd/openapi-merge/internal/mcpserver"
	"github.com/apimerge/openapi-merge/loader"
	"github.com/apimerge/openapi-merge/merge"
	"github.com/apimerge/openapi-merge/mergeconfig"
	"github.com/apimerge/openapi-merge/writer"
)

// Exit codes (§6): 0 success, 1 configuration load failure, 2 input load
// failure, 3 merge failure.
const (
	exitSuccess          = 0
	exitConfigFailure    = 1
	exitInputLoadFailure = 2
	exitMergeFailure     = 3
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "mcp":
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := mcpserver.Run(ctx, openapimerge.Version()); err != nil {
				fmt.Fprintf(os.Stderr, "openapi-merge: %v\n", err)
				os.Exit(exitMergeFailure)
			}
			return
		case "version", "-v", "--version":
			fmt.Printf("openapi-merge v%s\n", openapimerge.Version())
			return
		}
	}
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("openapi-merge", flag.ContinueOnError)
	configPath := fs.String("config", "openapi-merge.json", "path to the merge configuration file")
	if err := fs.Parse(args); err != nil {
		return exitConfigFailure
	}

	cfg, err := mergeconfig.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapi-merge: %v\n", err)
		return exitConfigFailure
	}

	ctx := context.Background()
	sources := make([]loader.Source, len(cfg.Inputs))
	for i, in := range cfg.Inputs {
		sources[i] = loader.Source{File: in.InputFile, URL: in.InputURL}
	}
	docs, err := loader.LoadAll(ctx, sources)
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapi-merge: %v\n", err)
		return exitInputLoadFailure
	}

	inputs := make([]*merge.Input, len(docs))
	for i, doc := range docs {
		cfgIn := cfg.Inputs[i]
		inputs[i] = &merge.Input{
			Document:           doc,
			PathModification:   convertPathModification(cfgIn.PathModification),
			OperationSelection: convertOperationSelection(cfgIn.OperationSelection),
			Description:        convertDescription(cfgIn.Description),
			Dispute:            cfgIn.Dispute.ToEngine(),
			DisputePrefix:      cfgIn.DisputePrefix,
		}
	}

	result, err := merge.Merge(inputs, merge.Options{OpenAPIVersionOverride: cfg.OpenAPIVersion})
	if err != nil {
		fmt.Fprintf(os.Stderr, "openapi-merge: merge failed: %v\n", err)
		return exitMergeFailure
	}

	if err := writer.Write(result, cfg.Output); err != nil {
		fmt.Fprintf(os.Stderr, "openapi-merge: %v\n", err)
		return exitMergeFailure
	}

	fmt.Printf("openapi-merge: wrote %s\n", cfg.Output)
	return exitSuccess
}

func convertPathModification(m *mergeconfig.PathModification) *merge.PathModification {
	if m == nil {
		return nil
	}
	return &merge.PathModification{StripStart: m.StripStart, Prepend: m.Prepend}
}

func convertOperationSelection(s *mergeconfig.OperationSelection) *merge.OperationSelection {
	if s == nil {
		return nil
	}
	return &merge.OperationSelection{IncludeTags: s.IncludeTags, ExcludeTags: s.ExcludeTags}
}

func convertDescription(d *mergeconfig.Description) *merge.Description {
	if d == nil {
		return nil
	}
	out := &merge.Description{Append: d.Append}
	if d.Title != nil {
		out.Title = &merge.DescriptionTitle{Value: d.Title.Value, HeadingLevel: d.Title.HeadingLevel}
	}
	return out
}
