package model

import "time"

// ProblemKind categorizes scan failures.
type ProblemKind string

// Problem kinds. Each is local to one function or one file position; none
// aborts a batch run.
const (
	ProblemUnbalancedDelimiter  ProblemKind = "unbalanced delimiter"
	ProblemMalformedDeclaration ProblemKind = "malformed declaration"
	ProblemMalformedReturn      ProblemKind = "malformed return"
	ProblemIO                   ProblemKind = "io"
)

// Problem records a scan or IO failure.
type Problem struct {
	Kind   ProblemKind
	Offset int
	// Function names the enclosing function, empty when the problem sits
	// outside any declaration.
	Function string
	Detail   string
}

// Fatal reports whether the problem should fail the run's exit status.
// Reconciler skips are informational; broken syntax and IO errors are not.
func (p Problem) Fatal() bool {
	switch p.Kind {
	case ProblemUnbalancedDelimiter, ProblemMalformedDeclaration, ProblemIO:
		return true
	default:
		return false
	}
}

// FileResult holds the outcome of processing one config file.
type FileResult struct {
	Source    Source
	Decisions []Decision
	Problems  []Problem
	// Input is the original buffer the decisions' spans index into.
	Input []byte
	// Output is the file's final content, equal to Input when no edits
	// were planned.
	Output []byte
}

// Inserted counts functions that received an annotation.
func (r FileResult) Inserted() int { return r.countKind(DecisionInsert) }

// Skipped counts functions left unchanged with a reported reason.
func (r FileResult) Skipped() int { return r.countKind(DecisionSkip) }

// Kept counts void or already annotated functions.
func (r FileResult) Kept() int { return r.countKind(DecisionKeep) }

func (r FileResult) countKind(kind DecisionKind) int {
	n := 0

	for _, d := range r.Decisions {
		if d.Kind == kind {
			n++
		}
	}

	return n
}

// HasFatalProblems reports whether any problem should fail the run.
func (r FileResult) HasFatalProblems() bool {
	for _, p := range r.Problems {
		if p.Fatal() {
			return true
		}
	}

	return false
}

// RunReport is the JSON document persisted after a batch run.
type RunReport struct {
	GeneratedAt time.Time    `json:"generated_at"`
	Files       []FileReport `json:"files"`
}

// FileReport summarizes one file inside a RunReport.
type FileReport struct {
	Path      string           `json:"path"`
	Hash      string           `json:"hash,omitempty"`
	Inserted  int              `json:"inserted"`
	Skipped   int              `json:"skipped"`
	Kept      int              `json:"kept"`
	Functions []FunctionReport `json:"functions,omitempty"`
	Problems  []string         `json:"problems,omitempty"`
}

// FunctionReport records one per-function decision inside a FileReport.
type FunctionReport struct {
	Name     string `json:"name"`
	Decision string `json:"decision"`
	Type     string `json:"type,omitempty"`
	Reason   string `json:"reason,omitempty"`
}
