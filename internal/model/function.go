package model

// Function describes one function declaration found in a config buffer.
type Function struct {
	Name string
	// Params covers the parenthesized parameter list, parens included.
	Params Span
	// Annotation covers an existing "-> <type>" clause, nil when the
	// declaration carries none.
	Annotation *Span
	// Body covers the function body, braces included.
	Body Span
	// InsertionPoint is the offset just past the parameter list's closing
	// paren, where a planned annotation is spliced in.
	InsertionPoint int
}

// HasAnnotation reports whether the declaration already carries a return type.
func (f Function) HasAnnotation() bool { return f.Annotation != nil }

// Return is a single return statement found inside a function body.
type Return struct {
	// Expr covers the expression between "return" and ";", trimmed of
	// surrounding whitespace. Empty for a bare "return;".
	Expr Span
	// Void marks a bare "return;" carrying no expression.
	Void bool
}
