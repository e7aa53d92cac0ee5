package domain

import (
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// Skip and keep reasons surfaced in reports.
const (
	ReasonAnnotated    = "already annotated"
	ReasonVoid         = "void function"
	ReasonAmbiguous    = "ambiguous"
	ReasonUnrecognized = "unrecognized expression shape"
	ReasonBadReturn    = "malformed return"
)

// Reconcile combines the per-return classifications of one function into a
// single decision. types holds the classification of every non-void return,
// in source order. The reconciler never guesses: divergent return sites, or
// any unclassified one, produce a Skip rather than a best-effort annotation.
func Reconcile(fn m.Function, types []m.InferredType) m.Decision {
	if fn.HasAnnotation() {
		return m.Decision{Function: fn, Kind: m.DecisionKeep, Reason: ReasonAnnotated}
	}

	if len(types) == 0 {
		return m.Decision{Function: fn, Kind: m.DecisionKeep, Reason: ReasonVoid}
	}

	first := types[0]
	unclassified := 0

	for _, t := range types {
		if t == m.TypeUnclassified {
			unclassified++
			continue
		}

		if t != first {
			return m.Decision{Function: fn, Kind: m.DecisionSkip, Reason: ReasonAmbiguous}
		}
	}

	switch unclassified {
	case 0:
		return m.Decision{Function: fn, Kind: m.DecisionInsert, Type: first}
	case len(types):
		return m.Decision{Function: fn, Kind: m.DecisionSkip, Reason: ReasonUnrecognized}
	default:
		return m.Decision{Function: fn, Kind: m.DecisionSkip, Reason: ReasonAmbiguous}
	}
}
