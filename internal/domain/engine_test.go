package domain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

func TestEngine_Rewrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "int return",
			input: "function f() { return 1; }",
			want:  "function f() -> int { return 1; }",
		},
		{
			name:  "pair return",
			input: "function g() { return (65535, 666); }",
			want:  "function g() -> pair (int, int) { return (65535, 666); }",
		},
		{
			name:  "prefix return",
			input: "function h() { return 10.0.0.0/8; }",
			want:  "function h() -> prefix { return 10.0.0.0/8; }",
		},
		{
			name:  "bool return",
			input: "function k() { return net ~ BOGONS; }",
			want:  "function k() -> bool { return net ~ BOGONS; }",
		},
		{
			name:  "annotated function untouched",
			input: "function m() -> int { return 2; }",
			want:  "function m() -> int { return 2; }",
		},
		{
			name:  "void function untouched",
			input: "function n() { accept; }",
			want:  "function n() { accept; }",
		},
		{
			name:  "comment inside return expression",
			input: "function v() { return /* v4 */ 1; }",
			want:  "function v() -> int { return /* v4 */ 1; }",
		},
		{
			name:  "params preserved",
			input: "function pref(int asn; string name) { return asn > 0; }",
			want:  "function pref(int asn; string name) -> bool { return asn > 0; }",
		},
	}

	eng := NewEngine()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := []byte(tt.input)

			decisions, problems := eng.ScanFile(buf)
			assert.Empty(t, problems)

			out := eng.ApplyEdits(buf, eng.PlanEdits(decisions))
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestEngine_ScanBasicExample(t *testing.T) {
	buf := readExample(t, "basic")

	decisions, problems := NewEngine().ScanFile(buf)
	require.Empty(t, problems)
	require.Len(t, decisions, 7)

	wantKinds := map[string]m.DecisionKind{
		"is_bogon_asn":        m.DecisionInsert,
		"peer_pref":           m.DecisionInsert,
		"default_route4":      m.DecisionInsert,
		"blackhole_community": m.DecisionInsert,
		"peer_name":           m.DecisionInsert,
		"collector_asns":      m.DecisionInsert,
		"apply_export":        m.DecisionKeep,
	}
	wantTypes := map[string]m.InferredType{
		"is_bogon_asn":        m.TypeBool,
		"peer_pref":           m.TypeInt,
		"default_route4":      m.TypePrefix,
		"blackhole_community": m.TypePair,
		"peer_name":           m.TypeString,
		"collector_asns":      m.TypeSet,
	}

	for _, d := range decisions {
		assert.Equal(t, wantKinds[d.Function.Name], d.Kind, d.Function.Name)

		if typ, ok := wantTypes[d.Function.Name]; ok {
			assert.Equal(t, typ, d.Type, d.Function.Name)
		}
	}
}

func TestEngine_ScanTrickyExample(t *testing.T) {
	buf := readExample(t, "tricky")

	decisions, problems := NewEngine().ScanFile(buf)
	require.Empty(t, problems)
	require.Len(t, decisions, 7)

	byName := map[string]m.Decision{}
	for _, d := range decisions {
		byName[d.Function.Name] = d
	}

	assert.Equal(t, m.DecisionInsert, byName["braces_in_string"].Kind)
	assert.Equal(t, m.TypeString, byName["braces_in_string"].Type)

	assert.Equal(t, m.DecisionSkip, byName["conflicted"].Kind)
	assert.Equal(t, ReasonAmbiguous, byName["conflicted"].Reason)

	assert.Equal(t, m.DecisionInsert, byName["commented_out"].Kind)
	assert.Equal(t, m.TypeInt, byName["commented_out"].Type)

	assert.Equal(t, m.DecisionInsert, byName["nested_returns"].Kind)
	assert.Equal(t, m.TypeInt, byName["nested_returns"].Type)

	assert.Equal(t, m.DecisionInsert, byName["masked_ip"].Kind)
	assert.Equal(t, m.TypeIP, byName["masked_ip"].Type)

	assert.Equal(t, m.DecisionInsert, byName["own_prefix"].Kind)
	assert.Equal(t, m.TypePrefix, byName["own_prefix"].Type)

	assert.Equal(t, m.DecisionSkip, byName["opaque"].Kind)
	assert.Equal(t, ReasonUnrecognized, byName["opaque"].Reason)
}

func TestEngine_AnnotatedExampleIsNoOp(t *testing.T) {
	buf := readExample(t, "annotated")

	eng := NewEngine()

	decisions, problems := eng.ScanFile(buf)
	require.Empty(t, problems)

	for _, d := range decisions {
		assert.Equal(t, m.DecisionKeep, d.Kind, d.Function.Name)
		assert.Equal(t, ReasonAnnotated, d.Reason, d.Function.Name)
	}

	assert.Empty(t, eng.PlanEdits(decisions))
}

// A second pass over rewritten output must plan nothing.
func TestEngine_RewriteIsIdempotent(t *testing.T) {
	buf := readExample(t, "basic")
	eng := NewEngine()

	decisions, _ := eng.ScanFile(buf)
	first := eng.ApplyEdits(buf, eng.PlanEdits(decisions))

	decisions, problems := eng.ScanFile(first)
	require.Empty(t, problems)

	assert.Empty(t, eng.PlanEdits(decisions))

	second := eng.ApplyEdits(first, nil)
	assert.Equal(t, string(first), string(second))
}

// A block opened at top level and never closed hides every declaration
// inside it; the scan must fail loudly instead of returning an empty,
// problem-free result.
func TestEngine_UnclosedTopLevelBlockIsReported(t *testing.T) {
	buf := []byte("filter import_peer {\nfunction helper() { return 1; }\n")

	decisions, problems := NewEngine().ScanFile(buf)
	assert.Empty(t, decisions)

	require.NotEmpty(t, problems)
	assert.Equal(t, m.ProblemUnbalancedDelimiter, problems[0].Kind)
	assert.True(t, problems[0].Fatal())
}

func TestEngine_MalformedReturnSkipsFunction(t *testing.T) {
	buf := []byte("function bad() { return 1 }\nfunction good() { return 2; }\n")

	decisions, problems := NewEngine().ScanFile(buf)
	require.Len(t, decisions, 2)
	require.Len(t, problems, 1)

	assert.Equal(t, m.ProblemMalformedReturn, problems[0].Kind)
	assert.Equal(t, "bad", problems[0].Function)

	assert.Equal(t, m.DecisionSkip, decisions[0].Kind)
	assert.Equal(t, ReasonBadReturn, decisions[0].Reason)

	assert.Equal(t, m.DecisionInsert, decisions[1].Kind)
	assert.Equal(t, m.TypeInt, decisions[1].Type)
}

func readExample(t *testing.T, name string) []byte {
	t.Helper()

	buf, err := os.ReadFile(filepath.Join("..", "..", "examples", name, "bird.conf"))
	require.NoError(t, err)

	return buf
}
