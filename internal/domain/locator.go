package domain

import (
	"errors"
	"fmt"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

const keywordFunction = "function"

// LocateFunctions finds every top-level function declaration in buf, in
// source order. Malformed declarations are reported and skipped so one bad
// declaration does not hide the rest of the file.
func LocateFunctions(buf []byte) ([]m.Function, []m.Problem) {
	sc := NewScanner(buf)

	var (
		funcs    []m.Function
		problems []m.Problem
	)

	whole := m.Span{Start: 0, End: len(buf)}

	from := 0
	recovering := false

	for {
		var (
			kw int
			ok bool
		)

		if recovering {
			// After a malformed declaration the nesting state is no
			// longer trustworthy, so recovery looks for the bare
			// keyword at any depth.
			kw, ok = sc.FindNextToken(from, keywordFunction, whole)
		} else {
			kw, ok = nextDeclarationKeyword(sc, from)
		}

		if !ok {
			break
		}

		fn, next, err := parseDeclaration(sc, buf, kw)
		if err != nil {
			problems = append(problems, declarationProblem(kw, fn.Name, err))
			from = next
			recovering = true

			continue
		}

		funcs = append(funcs, fn)
		from = next
		recovering = false
	}

	if err := sc.ValidateTail(from); err != nil {
		problems = append(problems, m.Problem{
			Kind:   m.ProblemUnbalancedDelimiter,
			Offset: from,
			Detail: err.Error(),
		})
	}

	return funcs, problems
}

// nextDeclarationKeyword finds the next `function` keyword at file top level.
// Stray close braces are clamped back to depth zero so scanning recovers at
// the next plausible top-level position after a malformed region.
func nextDeclarationKeyword(sc *Scanner, from int) (int, bool) {
	var st scanState

	i := from
	for i < len(sc.buf) {
		if st.depth < 0 {
			st.depth = 0
		}

		if st.depth == 0 && st.inCode() && sc.hasTokenAt(i, keywordFunction, len(sc.buf)) {
			return i, true
		}

		i = sc.step(&st, i)
	}

	return 0, false
}

// parseDeclaration parses one declaration starting at the `function` keyword.
// It returns the parsed function and the offset scanning should continue
// from. On error the returned function carries at most a name, and the resume
// offset points just past the keyword.
func parseDeclaration(sc *Scanner, buf []byte, kw int) (m.Function, int, error) {
	resume := kw + len(keywordFunction)

	nameStart := sc.SkipSpaceAndComments(resume)
	nameEnd := nameStart

	for nameEnd < len(buf) && isWordChar(buf[nameEnd]) {
		nameEnd++
	}

	if nameEnd == nameStart {
		return m.Function{}, resume, fmt.Errorf("%w: keyword not followed by a name", ErrMalformedDeclaration)
	}

	fn := m.Function{Name: string(buf[nameStart:nameEnd])}

	parenOpen := sc.SkipSpaceAndComments(nameEnd)
	if parenOpen >= len(buf) || buf[parenOpen] != '(' {
		return fn, resume, fmt.Errorf("%w: function %s has no parameter list", ErrMalformedDeclaration, fn.Name)
	}

	parenClose, err := sc.SkipToMatchingClose(parenOpen)
	if err != nil {
		return fn, resume, fmt.Errorf("function %s parameter list: %w", fn.Name, err)
	}

	fn.Params = m.Span{Start: parenOpen, End: parenClose}
	fn.InsertionPoint = parenClose

	next, annotation, err := parseAnnotation(sc, buf, parenClose)
	if err != nil {
		return fn, resume, fmt.Errorf("function %s: %w", fn.Name, err)
	}

	fn.Annotation = annotation

	bodyOpen := sc.SkipSpaceAndComments(next)
	if bodyOpen >= len(buf) || buf[bodyOpen] != '{' {
		return fn, resume, fmt.Errorf("%w: function %s has no body", ErrMalformedDeclaration, fn.Name)
	}

	bodyClose, err := sc.SkipToMatchingClose(bodyOpen)
	if err != nil {
		return fn, resume, fmt.Errorf("function %s body: %w", fn.Name, err)
	}

	fn.Body = m.Span{Start: bodyOpen, End: bodyClose}

	return fn, bodyClose, nil
}

// parseAnnotation consumes an optional "-> <type>" clause after the parameter
// list, including a parenthesized element list as in "-> pair (int, int)".
// It returns the offset scanning continues from and the clause span, if any.
func parseAnnotation(sc *Scanner, buf []byte, from int) (int, *m.Span, error) {
	arrow := sc.SkipSpaceAndComments(from)
	if arrow+1 >= len(buf) || buf[arrow] != '-' || buf[arrow+1] != '>' {
		return from, nil, nil
	}

	nameStart := sc.SkipSpaceAndComments(arrow + 2)
	nameEnd := nameStart

	for nameEnd < len(buf) && isWordChar(buf[nameEnd]) {
		nameEnd++
	}

	if nameEnd == nameStart {
		return from, nil, fmt.Errorf("%w: arrow clause carries no type name", ErrMalformedDeclaration)
	}

	end := nameEnd

	elems := sc.SkipSpaceAndComments(nameEnd)
	if elems < len(buf) && buf[elems] == '(' {
		elemsEnd, err := sc.SkipToMatchingClose(elems)
		if err != nil {
			return from, nil, fmt.Errorf("annotation element list: %w", err)
		}

		end = elemsEnd
	}

	return end, &m.Span{Start: arrow, End: end}, nil
}

func declarationProblem(offset int, name string, err error) m.Problem {
	kind := m.ProblemMalformedDeclaration
	if errors.Is(err, ErrUnbalancedDelimiter) {
		kind = m.ProblemUnbalancedDelimiter
	}

	return m.Problem{
		Kind:     kind,
		Offset:   offset,
		Function: name,
		Detail:   err.Error(),
	}
}
