package merge

import (
	"fmt"

	"github.com/apimerge/openapi-merge/document"
	"github.com/apimerge/openapi-merge/mergeerrors"
	"github.com/apimerge/openapi-merge/orderedmap"
)

// componentRef builds the "#/components/<kind>/<name>" reference string for
// a component entry.
func componentRef(kind document.ComponentKind, name string) string {
	return "#/components/" + string(kind) + "/" + name
}

// mergeComponentKind folds one component namespace from src into acc,
// following C5 (§4.6). It is generic over the component value type so the
// same algorithm serves all eight shared-algorithm kinds without repeating
// the collision-resolution logic per type.
func mergeComponentKind[V any](
	acc *orderedmap.Map[string, V],
	src *orderedmap.Map[string, V],
	dispute *Dispute,
	rewriteTable *RewriteTable,
	kind document.ComponentKind,
	inputIndex int,
) error {
	for name, value := range src.All() {
		modifiedName := ApplyDispute(dispute, name, Undisputed)
		if modifiedName != name {
			rewriteTable.Set(componentRef(kind, name), componentRef(kind, modifiedName))
		}

		if existing, ok := acc.Get(modifiedName); !ok || document.Equal(existing, value) {
			acc.Set(modifiedName, value)
			continue
		}

		// Conflict path: the accumulator has a different value at
		// modifiedName already.
		if dispute != nil && dispute.Kind != DisputeKindNone {
			preferredName := ApplyDispute(dispute, name, Disputed)
			if existing, ok := acc.Get(preferredName); !ok || document.Equal(existing, value) {
				acc.Set(preferredName, value)
				rewriteTable.Set(componentRef(kind, name), componentRef(kind, preferredName))
				continue
			}
		}

		resolved := false
		for i := 1; i <= 999; i++ {
			candidate := fmt.Sprintf("%s%d", name, i)
			if acc.Has(candidate) {
				continue
			}
			acc.Set(candidate, value)
			rewriteTable.Set(componentRef(kind, name), componentRef(kind, candidate))
			resolved = true
			break
		}
		if !resolved {
			return &mergeerrors.ComponentDefinitionConflictError{
				InputIndex: inputIndex,
				Kind:       string(kind),
				Name:       name,
			}
		}
	}
	return nil
}

// mergeComponents folds scratch.Components into acc in the fixed kind order
// (§4.8), then applies the securitySchemes first-wins rule (§4.6).
func mergeComponents(acc, scratch *document.Components, dispute *Dispute, rewriteTable *RewriteTable, inputIndex int) error {
	if err := mergeComponentKind(acc.Schemas, scratch.Schemas, dispute, rewriteTable, document.KindSchemas, inputIndex); err != nil {
		return err
	}
	if err := mergeComponentKind(acc.Responses, scratch.Responses, dispute, rewriteTable, document.KindResponses, inputIndex); err != nil {
		return err
	}
	if err := mergeComponentKind(acc.Parameters, scratch.Parameters, dispute, rewriteTable, document.KindParameters, inputIndex); err != nil {
		return err
	}
	if err := mergeComponentKind(acc.Examples, scratch.Examples, dispute, rewriteTable, document.KindExamples, inputIndex); err != nil {
		return err
	}
	if err := mergeComponentKind(acc.RequestBodies, scratch.RequestBodies, dispute, rewriteTable, document.KindRequestBodies, inputIndex); err != nil {
		return err
	}
	if err := mergeComponentKind(acc.Headers, scratch.Headers, dispute, rewriteTable, document.KindHeaders, inputIndex); err != nil {
		return err
	}
	if err := mergeComponentKind(acc.Links, scratch.Links, dispute, rewriteTable, document.KindLinks, inputIndex); err != nil {
		return err
	}
	if err := mergeComponentKind(acc.Callbacks, scratch.Callbacks, dispute, rewriteTable, document.KindCallbacks, inputIndex); err != nil {
		return err
	}

	// securitySchemes: first input with a non-empty map wins outright; later
	// inputs' security schemes are ignored entirely, including any rename.
	// This is a documented latent sharp edge (§9): dangling $refs from later
	// inputs are not detected.
	if acc.SecuritySchemes.Len() == 0 && scratch.SecuritySchemes.Len() > 0 {
		for name, scheme := range scratch.SecuritySchemes.All() {
			acc.SecuritySchemes.Set(name, scheme)
		}
	}
	return nil
}
