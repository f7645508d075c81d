// Package loader fetches OpenAPI documents from a file path or an HTTP(S)
// URL and decodes them into package document's tree. It is the "document
// loader" external collaborator the merge engine's contract assumes but
// never implements itself (§6).
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"go.yaml.in/yaml/v4"
	"golang.org/x/sync/errgroup"

	openapimerge "github.com/apimerge/openapi-merge"
	"github.com/apimerge/openapi-merge/document"
)

// DefaultHTTPTimeout bounds a single URL fetch. The engine itself has no
// timeout concept (§5); this one belongs entirely to the loader.
const DefaultHTTPTimeout = 30 * time.Second

// Source identifies where to load one document from: exactly one of File or
// URL should be set.
type Source struct {
	File string
	URL  string
}

// Load fetches and decodes the document named by src. The source format is
// irrelevant to the engine, so Load tries JSON first (the stricter format,
// so a JSON document is never mistakenly accepted as degenerate YAML) and
// falls back to YAML, combining both errors if neither parses — the same
// try-JSON-then-YAML fallback the original tool this engine's contract was
// distilled from uses.
func Load(ctx context.Context, src Source) (*document.Document, error) {
	data, err := fetch(ctx, src)
	if err != nil {
		return nil, err
	}
	return decode(data, name(src))
}

// DecodeBytes parses raw document bytes that did not come from a Source,
// such as inline content supplied directly by a caller. name is used only
// for error messages.
func DecodeBytes(data []byte, name string) (*document.Document, error) {
	return decode(data, name)
}

// LoadAll fetches every source concurrently via an errgroup, returning
// results in srcs' order regardless of completion order — merge invariant 4
// requires component and path ordering to be a stable function of input
// order, so the fetch stage must not let network timing reorder inputs.
func LoadAll(ctx context.Context, srcs []Source) ([]*document.Document, error) {
	docs := make([]*document.Document, len(srcs))
	g, gctx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		g.Go(func() error {
			doc, err := Load(gctx, src)
			if err != nil {
				return err
			}
			docs[i] = doc
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}

func fetch(ctx context.Context, src Source) ([]byte, error) {
	switch {
	case src.File != "":
		data, err := os.ReadFile(src.File)
		if err != nil {
			return nil, fmt.Errorf("loader: read %s: %w", src.File, err)
		}
		return data, nil
	case src.URL != "":
		client := &http.Client{Timeout: DefaultHTTPTimeout}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
		if err != nil {
			return nil, fmt.Errorf("loader: build request for %s: %w", src.URL, err)
		}
		req.Header.Set("User-Agent", openapimerge.UserAgent())
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("loader: fetch %s: %w", src.URL, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("loader: fetch %s: unexpected status %s", src.URL, resp.Status)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("loader: read body of %s: %w", src.URL, err)
		}
		return data, nil
	default:
		return nil, errors.New("loader: source has neither File nor URL set")
	}
}

func decode(data []byte, srcName string) (*document.Document, error) {
	doc := document.New()
	jsonErr := json.Unmarshal(data, doc)
	if jsonErr == nil {
		return doc, nil
	}

	doc = document.New()
	yamlErr := yaml.Unmarshal(data, doc)
	if yamlErr == nil {
		return doc, nil
	}

	return nil, fmt.Errorf("loader: could not parse %s as JSON (%v) or YAML (%w)", srcName, jsonErr, yamlErr)
}

func name(src Source) string {
	if src.File != "" {
		return src.File
	}
	return src.URL
}
