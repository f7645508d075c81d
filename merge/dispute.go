package merge

// DisputeKind selects which rename rule a Dispute applies.
type DisputeKind string

const (
	DisputeKindNone   DisputeKind = ""
	DisputeKindPrefix DisputeKind = "prefix"
	DisputeKindSuffix DisputeKind = "suffix"
)

// Dispute is a prefix/suffix rename rule applied to names to prevent
// collisions across inputs (C2).
type Dispute struct {
	Kind        DisputeKind
	Value       string
	AlwaysApply bool
}

// LowerDisputePrefix converts the legacy disputePrefix string field into a
// Dispute with AlwaysApply=false, the lowering the spec requires happen
// "before the engine sees it" (§3.2). Returns nil if prefix is empty.
func LowerDisputePrefix(prefix string) *Dispute {
	if prefix == "" {
		return nil
	}
	return &Dispute{Kind: DisputeKindPrefix, Value: prefix, AlwaysApply: false}
}

// DisputeStatus is the two-state input to ApplyDispute: a genuine collision
// (Disputed) or a candidate for unconditional application (Undisputed).
type DisputeStatus int

const (
	Undisputed DisputeStatus = iota
	Disputed
)

// ApplyDispute implements C2's truth table (§4.2).
func ApplyDispute(d *Dispute, name string, status DisputeStatus) string {
	if d == nil || d.Kind == DisputeKindNone {
		return name
	}
	if status == Undisputed && !d.AlwaysApply {
		return name
	}
	switch d.Kind {
	case DisputeKindPrefix:
		return d.Value + name
	case DisputeKindSuffix:
		return name + d.Value
	default:
		return name
	}
}
