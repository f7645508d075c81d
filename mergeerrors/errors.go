// Package mergeerrors defines the structured error taxonomy the merge
// engine raises. Each error kind is both a sentinel, usable with errors.Is,
// and a concrete struct carrying the context needed to locate the offending
// entity, following the pattern the teacher's oaserrors package uses for
// its own parse/reference/validation error families.
package mergeerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors, one per taxonomy kind (§7). Callers that only care
// "was this a DuplicatePaths problem" use errors.Is(err, ErrDuplicatePaths)
// without needing to know about the concrete *DuplicatePathsError type.
var (
	ErrNoInputs                     = errors.New("merge: no inputs")
	ErrDuplicatePaths                = errors.New("merge: duplicate paths")
	ErrComponentDefinitionConflict  = errors.New("merge: component definition conflict")
	ErrOperationIDConflict          = errors.New("merge: operationId conflict")
)

// NoInputsError is raised when the inputs list passed to merge is empty.
type NoInputsError struct{}

func (e *NoInputsError) Error() string { return "merge: inputs list is empty" }
func (e *NoInputsError) Is(target error) bool { return target == ErrNoInputs }

// DuplicatePathsError is raised when, after path modification, two inputs
// emit the same path string.
type DuplicatePathsError struct {
	InputIndex   int
	OriginalPath string
	MappedPath   string
}

func (e *DuplicatePathsError) Error() string {
	return fmt.Sprintf("merge: input %d: path %q (mapped from %q) already present in output",
		e.InputIndex, e.MappedPath, e.OriginalPath)
}

func (e *DuplicatePathsError) Is(target error) bool { return target == ErrDuplicatePaths }

// ComponentDefinitionConflictError is raised when a component name collides
// and neither dispute renaming nor the 999 numeric-suffix fallback finds a
// free slot.
type ComponentDefinitionConflictError struct {
	InputIndex int
	Kind       string
	Name       string
}

func (e *ComponentDefinitionConflictError) Error() string {
	return fmt.Sprintf("merge: input %d: component %s/%s could not be reconciled: "+
		"neither dispute renaming nor any of the 999 numeric-suffix candidates yields a free name",
		e.InputIndex, e.Kind, e.Name)
}

func (e *ComponentDefinitionConflictError) Is(target error) bool {
	return target == ErrComponentDefinitionConflict
}

// OperationIDConflictError is raised when an operationId collides and
// neither dispute renaming nor the 999 numeric-suffix fallback finds a free
// id.
type OperationIDConflictError struct {
	InputIndex  int
	Path        string
	OperationID string
}

func (e *OperationIDConflictError) Error() string {
	return fmt.Sprintf("merge: input %d: operationId %q on path %q could not be made unique: "+
		"neither dispute renaming nor any of the 999 numeric-suffix candidates yields a free id",
		e.InputIndex, e.OperationID, e.Path)
}

func (e *OperationIDConflictError) Is(target error) bool {
	return target == ErrOperationIDConflict
}

// AmbiguousRewriteError signals the "programmer error" case the spec calls
// out in §4.8: the rewrite-table prefix-match fallback found more than one
// candidate key for a reference. This should never happen for a rewrite
// table the engine itself built; it indicates an invariant violation rather
// than a user-facing input problem.
type AmbiguousRewriteError struct {
	Ref       string
	Candidates []string
}

func (e *AmbiguousRewriteError) Error() string {
	return fmt.Sprintf("merge: internal error: reference %q matches %d rewrite-table prefixes %v, expected at most one",
		e.Ref, len(e.Candidates), e.Candidates)
}
