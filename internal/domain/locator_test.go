package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

func TestLocateFunctions_Single(t *testing.T) {
	buf := []byte(`function f() { return 1; }`)

	funcs, problems := LocateFunctions(buf)
	require.Empty(t, problems)
	require.Len(t, funcs, 1)

	fn := funcs[0]
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, "()", fn.Params.Text(buf))
	assert.False(t, fn.HasAnnotation())
	assert.Equal(t, "{ return 1; }", fn.Body.Text(buf))
	assert.Equal(t, strings.Index(string(buf), ")")+1, fn.InsertionPoint)
}

func TestLocateFunctions_WithParams(t *testing.T) {
	buf := []byte(`function check(int asn; prefix p) { return true; }`)

	funcs, problems := LocateFunctions(buf)
	require.Empty(t, problems)
	require.Len(t, funcs, 1)
	assert.Equal(t, "check", funcs[0].Name)
	assert.Equal(t, "(int asn; prefix p)", funcs[0].Params.Text(buf))
}

func TestLocateFunctions_ExistingAnnotation(t *testing.T) {
	buf := []byte(`function f() -> int { return 1; }`)

	funcs, problems := LocateFunctions(buf)
	require.Empty(t, problems)
	require.Len(t, funcs, 1)

	fn := funcs[0]
	require.True(t, fn.HasAnnotation())
	assert.Equal(t, "-> int", fn.Annotation.Text(buf))
	// Insertion point sits before the arrow clause, keeping re-scans
	// aligned with first scans.
	assert.Equal(t, fn.Params.End, fn.InsertionPoint)
}

func TestLocateFunctions_PairAnnotation(t *testing.T) {
	buf := []byte(`function g() -> pair (int, int) { return (1, 2); }`)

	funcs, problems := LocateFunctions(buf)
	require.Empty(t, problems)
	require.Len(t, funcs, 1)
	require.True(t, funcs[0].HasAnnotation())
	assert.Equal(t, "-> pair (int, int)", funcs[0].Annotation.Text(buf))
	assert.Equal(t, "{ return (1, 2); }", funcs[0].Body.Text(buf))
}

func TestLocateFunctions_MultipleInSourceOrder(t *testing.T) {
	buf := []byte(`
function a() { return 1; }

protocol static {
	route 0.0.0.0/0 blackhole;
}

function b() { return 2; }
`)

	funcs, problems := LocateFunctions(buf)
	require.Empty(t, problems)
	require.Len(t, funcs, 2)
	assert.Equal(t, "a", funcs[0].Name)
	assert.Equal(t, "b", funcs[1].Name)
}

func TestLocateFunctions_IgnoresNestedAndCommentedKeywords(t *testing.T) {
	buf := []byte(`
# function fake() { }
function real() {
	print "function in a string";
	return 1;
}
`)

	funcs, problems := LocateFunctions(buf)
	require.Empty(t, problems)
	require.Len(t, funcs, 1)
	assert.Equal(t, "real", funcs[0].Name)
}

func TestLocateFunctions_MalformedRecovery(t *testing.T) {
	buf := []byte(`
function broken(
function ok() { return 1; }
`)

	funcs, problems := LocateFunctions(buf)
	require.Len(t, funcs, 1)
	assert.Equal(t, "ok", funcs[0].Name)

	require.NotEmpty(t, problems)
	assert.Equal(t, m.ProblemUnbalancedDelimiter, problems[0].Kind)
	assert.Equal(t, "broken", problems[0].Function)
}

func TestLocateFunctions_UnclosedTopLevelBlock(t *testing.T) {
	buf := []byte(`
protocol bgp neighbor1 {
function f() { return 1; }
`)

	funcs, problems := LocateFunctions(buf)
	assert.Empty(t, funcs)

	require.Len(t, problems, 1)
	assert.Equal(t, m.ProblemUnbalancedDelimiter, problems[0].Kind)
	assert.Contains(t, problems[0].Detail, "never closes")
}

func TestLocateFunctions_MissingBody(t *testing.T) {
	buf := []byte(`function nobody();`)

	funcs, problems := LocateFunctions(buf)
	assert.Empty(t, funcs)
	require.Len(t, problems, 1)
	assert.Equal(t, m.ProblemMalformedDeclaration, problems[0].Kind)
}

func TestLocateFunctions_UnterminatedBlockComment(t *testing.T) {
	buf := []byte(`function f() { return 1; } /* open`)

	funcs, problems := LocateFunctions(buf)
	require.Len(t, funcs, 1)
	require.Len(t, problems, 1)
	assert.Equal(t, m.ProblemUnbalancedDelimiter, problems[0].Kind)
}
