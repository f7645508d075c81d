package merge

import (
	"fmt"

	"github.com/apimerge/openapi-merge/document"
	"github.com/apimerge/openapi-merge/mergeerrors"
)

// seenOperationIDs is the accumulator-scoped set of operationIds already
// placed into the output (§3.3).
type seenOperationIDs map[string]struct{}

func (s seenOperationIDs) has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s seenOperationIDs) add(id string) {
	s[id] = struct{}{}
}

// uniquifyOperationID resolves one operationId against seen, trying (in
// order) the id unchanged, the disputed form, then a "1".."999" numeric
// suffix (§4.7).
func uniquifyOperationID(id string, seen seenOperationIDs, dispute *Dispute) (string, error) {
	if !seen.has(id) {
		return id, nil
	}
	if dispute != nil {
		disputed := ApplyDispute(dispute, id, Disputed)
		if !seen.has(disputed) {
			return disputed, nil
		}
	}
	for i := 1; i <= 999; i++ {
		candidate := fmt.Sprintf("%s%d", id, i)
		if !seen.has(candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("operationId %q exhausted", id)
}

// uniquifyAndInsertPath implements C6 (§4.7): reject a path already present
// in acc, make every populated operation's operationId globally unique, and
// insert the PathItem under newPath.
//
// pathItem is inserted by reference rather than by value: it already lives
// in this input's throwaway scratch document, so the orchestrator can walk
// that scratch document's references afterward and have the rewrite land in
// the exact object now reachable from acc (see Merge in engine.go).
func uniquifyAndInsertPath(
	acc *document.Paths,
	inputIndex int,
	originalPath, newPath string,
	pathItem *document.PathItem,
	dispute *Dispute,
	seen seenOperationIDs,
) error {
	if acc.Has(newPath) {
		return &mergeerrors.DuplicatePathsError{
			InputIndex:   inputIndex,
			OriginalPath: originalPath,
			MappedPath:   newPath,
		}
	}

	for _, slot := range pathItem.OperationSlots() {
		op := *slot
		if op == nil || op.OperationID == "" {
			continue
		}
		unique, err := uniquifyOperationID(op.OperationID, seen, dispute)
		if err != nil {
			return &mergeerrors.OperationIDConflictError{
				InputIndex:  inputIndex,
				Path:        newPath,
				OperationID: op.OperationID,
			}
		}
		seen.add(unique)
		op.OperationID = unique
	}

	acc.Set(newPath, pathItem)
	return nil
}
