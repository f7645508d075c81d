package merge

import (
	"strings"

	"github.com/apimerge/openapi-merge/mergeerrors"
	"github.com/apimerge/openapi-merge/orderedmap"
)

// RewriteTable maps an old reference string to its new form, for one input
// iteration (§3.3). It is thrown away once that input's scratch copy has
// been walked.
type RewriteTable = orderedmap.Map[string, string]

// NewRewriteTable returns an empty rewrite table.
func NewRewriteTable() *RewriteTable {
	return orderedmap.New[string, string]()
}

// Lookup resolves ref against table, implementing the one subtlety the
// orchestrator calls out (§4.8): an exact match wins; failing that, if
// exactly one table key starts with ref+"/", that key's mapped value is
// used; if more than one such key exists the table itself is inconsistent
// and that is a programmer error, not a data problem; if none exists ref is
// returned unchanged.
func Lookup(table *RewriteTable, ref string) (string, error) {
	if v, ok := table.Get(ref); ok {
		return v, nil
	}
	prefix := ref + "/"
	var candidates []string
	for key := range table.Keys() {
		if strings.HasPrefix(key, prefix) {
			candidates = append(candidates, key)
		}
	}
	switch len(candidates) {
	case 0:
		return ref, nil
	case 1:
		return table.GetOrZero(candidates[0]), nil
	default:
		return "", &mergeerrors.AmbiguousRewriteError{Ref: ref, Candidates: candidates}
	}
}
