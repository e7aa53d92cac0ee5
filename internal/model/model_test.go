package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpan(t *testing.T) {
	buf := []byte("function f() { return 1; }")
	s := Span{Start: 9, End: 10}

	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "f", s.Text(buf))
}

func TestFunctionHasAnnotation(t *testing.T) {
	assert.False(t, Function{Name: "f"}.HasAnnotation())
	assert.True(t, Function{Name: "f", Annotation: &Span{Start: 13, End: 19}}.HasAnnotation())
}

func TestInferredTypeRender(t *testing.T) {
	assert.Equal(t, "int", TypeInt.Render())
	assert.Equal(t, "pair (int, int)", TypePair.Render())
	assert.Equal(t, "pair", TypePair.String())
	assert.Equal(t, "ip", TypeIP.Render())
	assert.Equal(t, "unclassified", TypeUnclassified.String())
}

func TestProblemFatal(t *testing.T) {
	assert.True(t, Problem{Kind: ProblemUnbalancedDelimiter}.Fatal())
	assert.True(t, Problem{Kind: ProblemMalformedDeclaration}.Fatal())
	assert.True(t, Problem{Kind: ProblemIO}.Fatal())
	assert.False(t, Problem{Kind: ProblemMalformedReturn}.Fatal())
}

func TestFileResultCounts(t *testing.T) {
	res := FileResult{
		Decisions: []Decision{
			{Kind: DecisionInsert},
			{Kind: DecisionInsert},
			{Kind: DecisionSkip},
			{Kind: DecisionKeep},
		},
	}

	assert.Equal(t, 2, res.Inserted())
	assert.Equal(t, 1, res.Skipped())
	assert.Equal(t, 1, res.Kept())
	assert.False(t, res.HasFatalProblems())

	res.Problems = append(res.Problems, Problem{Kind: ProblemIO})
	assert.True(t, res.HasFatalProblems())
}
