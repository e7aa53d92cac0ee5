package model

// InferredType enumerates the result types the engine can infer, ordered by
// inference priority (highest first, Unclassified excepted).
type InferredType int

// Supported types. The classifier tries them in this order and the first
// matching shape wins.
const (
	TypeInt InferredType = iota
	TypePair
	TypeIP
	TypePrefix
	TypeString
	TypeSet
	TypeBool
	TypeUnclassified
)

func (t InferredType) String() string {
	switch t {
	case TypeInt:
		return "int"
	case TypePair:
		return "pair"
	case TypeIP:
		return "ip"
	case TypePrefix:
		return "prefix"
	case TypeString:
		return "string"
	case TypeSet:
		return "set"
	case TypeBool:
		return "bool"
	default:
		return "unclassified"
	}
}

// Render returns the annotation spelling for the type. Pair element types are
// not inferred and always render as (int, int), matching BIRD's supported
// type table.
func (t InferredType) Render() string {
	if t == TypePair {
		return "pair (int, int)"
	}

	return t.String()
}

// DecisionKind is the outcome category for one function.
type DecisionKind int

// Decision outcomes.
const (
	// DecisionKeep leaves the function untouched: it is void or already
	// annotated.
	DecisionKeep DecisionKind = iota
	// DecisionInsert plans a return-type insertion.
	DecisionInsert
	// DecisionSkip leaves the function untouched and reports why.
	DecisionSkip
)

func (k DecisionKind) String() string {
	switch k {
	case DecisionKeep:
		return "keep"
	case DecisionInsert:
		return "insert"
	default:
		return "skip"
	}
}

// Decision is the per-function outcome of a scan pass.
type Decision struct {
	Function Function
	Kind     DecisionKind
	// Type holds the inferred type when Kind is DecisionInsert.
	Type InferredType
	// Reason explains Keep and Skip outcomes.
	Reason string
}

// Edit is a single planned insertion into the original buffer. Applying all
// edits of a file in descending offset order yields the rewritten content;
// no other byte changes.
type Edit struct {
	Offset int
	Text   string
}
