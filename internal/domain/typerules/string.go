package typerules

// isString reports whether expr is exactly one double-quoted string literal,
// with backslash escapes honored so an escaped quote does not end it early.
func isString(expr string) bool {
	if len(expr) < 2 || expr[0] != '"' {
		return false
	}

	i := 1
	for i < len(expr) {
		switch expr[i] {
		case '\\':
			i += 2
		case '"':
			return i == len(expr)-1
		default:
			i++
		}
	}

	return false
}
