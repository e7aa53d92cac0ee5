// Package model defines the data structures for return-type inference.
package model

// Path represents a file system path.
type Path string

// Span is a half-open byte range [Start, End) into an immutable source buffer.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Text returns the portion of buf the span covers.
func (s Span) Text(buf []byte) string { return string(buf[s.Start:s.End]) }

// Source represents a BIRD config file selected for processing.
type Source struct {
	Origin Path
	Hash   string
}
