package typerules

import "strings"

// isPair reports whether expr is a parenthesized two-element tuple: outer
// parens spanning the whole expression with exactly one top-level comma
// inside. The element types are not inspected; the shape alone suffices.
func isPair(expr string) bool {
	if expr[0] != '(' || !outerGroupSpansAll(expr) {
		return false
	}

	inner := expr[1 : len(expr)-1]

	commas := topLevelIndices(inner, ',')
	if len(commas) != 1 {
		return false
	}

	left := strings.TrimSpace(inner[:commas[0]])
	right := strings.TrimSpace(inner[commas[0]+1:])

	return left != "" && right != ""
}
