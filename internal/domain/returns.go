package domain

import (
	"strings"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

const keywordReturn = "return"

// ExtractReturns yields every return statement inside body in source order.
// The daemon treats every reachable return as relevant to the function's
// result type, so returns are collected at any nesting depth, not only at the
// body's own level. The terminating ';' is matched at each return's own
// depth, so a ';' inside a nested sub-block never terminates the wrong
// statement.
func ExtractReturns(buf []byte, body m.Span) ([]m.Return, []m.Problem) {
	sc := NewScanner(buf)

	// Interior of the braced body.
	interior := m.Span{Start: body.Start + 1, End: body.End - 1}

	var (
		returns  []m.Return
		problems []m.Problem
	)

	from := interior.Start
	for {
		kw, ok := sc.FindNextToken(from, keywordReturn, interior)
		if !ok {
			break
		}

		exprStart := kw + len(keywordReturn)

		term, ok := sc.FindNextTopLevelToken(exprStart, ";", interior)
		if !ok {
			problems = append(problems, m.Problem{
				Kind:   m.ProblemMalformedReturn,
				Offset: kw,
				Detail: "return statement has no terminating ';' before end of body",
			})

			break
		}

		expr := trimSpan(buf, m.Span{Start: exprStart, End: term})
		// A return carrying only comments is still a bare return.
		returns = append(returns, m.Return{Expr: expr, Void: exprText(buf, expr) == ""})
		from = term + 1
	}

	return returns, problems
}

// exprText renders the expression bytes of span with comment regions
// replaced by a single space, so an interior comment never obscures the
// expression's shape.
func exprText(buf []byte, span m.Span) string {
	sc := NewScanner(buf)

	var (
		st scanState
		b  strings.Builder
	)

	i := span.Start
	for i < span.End {
		at := i
		inComment := st.comment != commentNone
		i = sc.step(&st, i)

		switch {
		case !inComment && st.comment == commentNone:
			b.Write(buf[at:i])
		case !inComment:
			b.WriteByte(' ')
		}
	}

	return strings.TrimSpace(b.String())
}

// trimSpan narrows a span to exclude surrounding whitespace.
func trimSpan(buf []byte, span m.Span) m.Span {
	for span.Start < span.End && isSpace(buf[span.Start]) {
		span.Start++
	}

	for span.End > span.Start && isSpace(buf[span.End-1]) {
		span.End--
	}

	return span
}
