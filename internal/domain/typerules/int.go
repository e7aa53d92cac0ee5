package typerules

import "strings"

// isInt reports whether expr is a decimal integer literal (optionally
// negated) or integer arithmetic whose operands are themselves recognizably
// integer.
func isInt(expr string) bool {
	return isIntExpr(expr)
}

func isIntExpr(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	if isDecimal(strings.TrimSpace(strings.TrimPrefix(s, "-"))) {
		return true
	}

	if s[0] == '(' && outerGroupSpansAll(s) {
		return isIntExpr(s[1 : len(s)-1])
	}

	ops := binaryArithOps(s)
	if len(ops) == 0 {
		return false
	}

	prev := 0
	for _, i := range ops {
		if !isIntExpr(s[prev:i]) {
			return false
		}

		prev = i + 1
	}

	return isIntExpr(s[prev:])
}

// binaryArithOps returns the top-level offsets of binary arithmetic
// operators in s. A '-' only counts as binary when something that can end an
// operand precedes it, so unary minus stays attached to its literal.
func binaryArithOps(s string) []int {
	var ops []int

	walkTopLevel(s, func(i int) int {
		switch s[i] {
		case '+', '*', '/', '%':
			ops = append(ops, i)
		case '-':
			if endsOperand(s[:i]) {
				ops = append(ops, i)
			}
		}

		return 0
	})

	return ops
}

// endsOperand reports whether the text before an operator position ends with
// something a value can end with.
func endsOperand(prefix string) bool {
	prefix = strings.TrimRight(prefix, " \t\r\n")
	if prefix == "" {
		return false
	}

	last := prefix[len(prefix)-1]

	return last == ')' || (last >= '0' && last <= '9') ||
		(last >= 'a' && last <= 'z') || (last >= 'A' && last <= 'Z') || last == '_'
}
