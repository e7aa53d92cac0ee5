// Package typerules classifies BIRD return expressions against the supported
// type lattice. Classification is purely syntactic: no symbol resolution, no
// evaluation.
package typerules

import (
	"strings"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// rule pairs a type with its shape predicate.
type rule struct {
	typ   m.InferredType
	match func(string) bool
}

// rules are tried in priority order; the first match wins. Each rule inspects
// the expression's outermost shape, which keeps them mutually exclusive: a
// set literal holding one integer is a set, never an int.
var rules = []rule{
	{m.TypeInt, isInt},
	{m.TypePair, isPair},
	{m.TypeIP, isIP},
	{m.TypePrefix, isPrefix},
	{m.TypeString, isString},
	{m.TypeSet, isSet},
	{m.TypeBool, isBool},
}

// Classify maps a return expression to an inferred type based on its surface
// shape. Expressions matching no rule come back Unclassified; guessing is the
// reconciler's job to refuse, not ours to attempt.
func Classify(expr string) m.InferredType {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return m.TypeUnclassified
	}

	for _, r := range rules {
		if r.match(expr) {
			return r.typ
		}
	}

	return m.TypeUnclassified
}
