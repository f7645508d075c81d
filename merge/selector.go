package merge

import (
	"strings"

	"github.com/apimerge/openapi-merge/document"
)

// OperationSelection filters operations inside a document by tag inclusion
// and exclusion (C3).
type OperationSelection struct {
	IncludeTags []string
	ExcludeTags []string
}

// PathModification rewrites path strings by stripping a known start segment
// and prepending a new one (C4).
type PathModification struct {
	StripStart string
	Prepend    string
}

func tagSetIntersects(tags []string, set []string) bool {
	if len(set) == 0 {
		return false
	}
	want := make(map[string]struct{}, len(set))
	for _, t := range set {
		want[t] = struct{}{}
	}
	for _, t := range tags {
		if _, ok := want[t]; ok {
			return true
		}
	}
	return false
}

// RunSelection filters every PathItem's operations in place against sel.
// Include runs first, exclude second: an operation with both an include tag
// and an exclude tag is removed (exclude wins, §4.3). A PathItem itself
// defined by $ref is left untouched.
func RunSelection(doc *document.Document, sel *OperationSelection) {
	if doc == nil || doc.Paths == nil || sel == nil {
		return
	}
	for pathItem := range doc.Paths.Values() {
		if pathItem == nil || pathItem.Ref != "" {
			continue
		}
		for _, slot := range pathItem.OperationSlots() {
			op := *slot
			if op == nil {
				continue
			}
			if len(sel.IncludeTags) > 0 && !tagSetIntersects(op.Tags, sel.IncludeTags) {
				*slot = nil
				continue
			}
			if len(sel.ExcludeTags) > 0 && tagSetIntersects(op.Tags, sel.ExcludeTags) {
				*slot = nil
			}
		}
	}
}

// DropEmptyPathItems removes PathItems left with zero populated operation
// slots after selection, per the orchestrator's post-selection step (§4.3).
func DropEmptyPathItems(doc *document.Document) {
	if doc == nil || doc.Paths == nil {
		return
	}
	var empty []string
	for path, pathItem := range doc.Paths.All() {
		if pathItem.Ref == "" && pathItem.IsEmpty() {
			empty = append(empty, path)
		}
	}
	for _, path := range empty {
		doc.Paths.Delete(path)
	}
}

// ModifyPath applies stripStart then prepend (C4). Each step is a no-op if
// its field is empty.
func ModifyPath(path string, mod *PathModification) string {
	if mod == nil {
		return path
	}
	result := path
	if mod.StripStart != "" && strings.HasPrefix(result, mod.StripStart) {
		result = strings.TrimPrefix(result, mod.StripStart)
	}
	if mod.Prepend != "" {
		result = mod.Prepend + result
	}
	return result
}
