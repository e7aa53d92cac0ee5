package typerules

import "strings"

// walkTopLevel invokes fn at each byte offset of s that sits outside quoted
// strings and at zero delimiter depth relative to the expression itself.
// fn returns how many extra bytes it consumed beyond the one at i.
func walkTopLevel(s string, fn func(i int) int) {
	depth := 0

	var quote byte

	for i := 0; i < len(s); i++ {
		b := s[i]

		if quote != 0 {
			switch b {
			case '\\':
				i++
			case quote:
				quote = 0
			}

			continue
		}

		switch b {
		case '"', '\'':
			quote = b
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--
		default:
			if depth == 0 {
				i += fn(i)
			}
		}
	}
}

// topLevelIndices returns the offsets of byte b occurring at the top level
// of s.
func topLevelIndices(s string, b byte) []int {
	var indices []int

	walkTopLevel(s, func(i int) int {
		if s[i] == b {
			indices = append(indices, i)
		}

		return 0
	})

	return indices
}

// outerGroupSpansAll reports whether s opens with a delimiter whose matching
// close is the final byte, i.e. the whole expression is one bracketed group.
func outerGroupSpansAll(s string) bool {
	if len(s) < 2 {
		return false
	}

	depth := 0

	var quote byte

	for i := 0; i < len(s); i++ {
		b := s[i]

		if quote != 0 {
			switch b {
			case '\\':
				i++
			case quote:
				quote = 0
			}

			continue
		}

		switch b {
		case '"', '\'':
			quote = b
		case '(', '{', '[':
			depth++
		case ')', '}', ']':
			depth--

			if depth == 0 {
				return i == len(s)-1
			}
		default:
			if depth == 0 {
				return false
			}
		}
	}

	return false
}

// splitMask splits an "X.mask(N)" expression into its receiver and reports
// whether the shape matched, N being a decimal literal.
func splitMask(s string) (string, bool) {
	if !strings.HasSuffix(s, ")") {
		return "", false
	}

	idx := strings.LastIndex(s, ".mask(")
	if idx < 0 {
		return "", false
	}

	arg := strings.TrimSpace(s[idx+len(".mask(") : len(s)-1])
	if !isDecimal(arg) {
		return "", false
	}

	return s[:idx], true
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
