package typerules

// isSet reports whether expr is a brace-delimited literal spanning the whole
// expression. Element contents are irrelevant: {1} is a set, not an int.
func isSet(expr string) bool {
	return expr[0] == '{' && outerGroupSpansAll(expr)
}
