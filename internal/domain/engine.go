package domain

import (
	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
	"github.com/bird-chinese-community/bird2-autotype/internal/domain/typerules"
)

// Engine ties the scan pipeline together for one immutable file buffer:
// locate declarations, extract returns, classify, reconcile, plan edits.
// It performs no IO and keeps no state between calls, so one Engine may be
// shared across concurrently processed files.
type Engine interface {
	// ScanFile produces one decision per function declaration, in source
	// order, plus every problem encountered. Problems are local to one
	// function or file position; a malformed declaration never hides the
	// rest of the file.
	ScanFile(buf []byte) ([]m.Decision, []m.Problem)

	// PlanEdits turns Insert decisions into insertions ordered by
	// descending offset.
	PlanEdits(decisions []m.Decision) []m.Edit

	// ApplyEdits returns the rewritten content, leaving buf untouched.
	ApplyEdits(buf []byte, edits []m.Edit) []byte
}

type engine struct{}

// NewEngine creates the inference engine.
func NewEngine() Engine {
	return &engine{}
}

func (e *engine) ScanFile(buf []byte) ([]m.Decision, []m.Problem) {
	funcs, problems := LocateFunctions(buf)

	decisions := make([]m.Decision, 0, len(funcs))

	for _, fn := range funcs {
		returns, retProblems := ExtractReturns(buf, fn.Body)
		if len(retProblems) > 0 {
			for i := range retProblems {
				retProblems[i].Function = fn.Name
			}

			problems = append(problems, retProblems...)
			decisions = append(decisions, m.Decision{
				Function: fn,
				Kind:     m.DecisionSkip,
				Reason:   ReasonBadReturn,
			})

			continue
		}

		decisions = append(decisions, Reconcile(fn, classifyReturns(buf, returns)))
	}

	return decisions, problems
}

func (e *engine) PlanEdits(decisions []m.Decision) []m.Edit {
	return PlanEdits(decisions)
}

func (e *engine) ApplyEdits(buf []byte, edits []m.Edit) []byte {
	return ApplyEdits(buf, edits)
}

// classifyReturns classifies every non-void return expression. Void returns
// carry no type information and are dropped here; a function with nothing
// left is reconciled as void. Expressions are classified with comment
// regions stripped, so `return /* v4 */ 1;` still reads as an int.
func classifyReturns(buf []byte, returns []m.Return) []m.InferredType {
	var types []m.InferredType

	for _, r := range returns {
		if r.Void {
			continue
		}

		types = append(types, typerules.Classify(exprText(buf, r.Expr)))
	}

	return types
}
