package typerules

import "strings"

// boolOperators are the comparison, logical, and matching operators whose
// top-level presence marks a boolean-producing expression. Two-byte
// operators come first so "!=" is seen before "!".
var boolOperators = []string{"!~", "!=", "<=", ">=", "&&", "||", "=", "<", ">", "~", "!"}

// isBool reports whether expr is a true/false literal or contains a
// comparison, logical, or matching operator at the top level. A redundant
// outer paren group is unwrapped first, the same way the int rule treats
// parenthesized arithmetic. This is the lattice's final fallback; anything
// past it is unclassified.
func isBool(expr string) bool {
	for len(expr) > 1 && expr[0] == '(' && outerGroupSpansAll(expr) {
		expr = strings.TrimSpace(expr[1 : len(expr)-1])
	}

	if expr == "true" || expr == "false" {
		return true
	}

	found := false

	walkTopLevel(expr, func(i int) int {
		if found {
			return 0
		}

		for _, op := range boolOperators {
			if strings.HasPrefix(expr[i:], op) {
				found = true
				return len(op) - 1
			}
		}

		return 0
	})

	return found
}
