package domain

import (
	"sort"

	m "github.com/bird-chinese-community/bird2-autotype/internal/model"
)

// PlanEdits turns Insert decisions into concrete text insertions, sorted by
// descending offset so applying them in order never invalidates a later one.
// Keep and Skip decisions plan nothing, and a function that already carries
// an annotation was decided Keep upstream, which is what makes a second run
// over rewritten output a no-op.
func PlanEdits(decisions []m.Decision) []m.Edit {
	var edits []m.Edit

	for _, d := range decisions {
		if d.Kind != m.DecisionInsert {
			continue
		}

		edits = append(edits, m.Edit{
			Offset: d.Function.InsertionPoint,
			Text:   " -> " + d.Type.Render(),
		})
	}

	sort.Slice(edits, func(i, j int) bool { return edits[i].Offset > edits[j].Offset })

	return edits
}

// ApplyEdits splices edits into buf and returns the rewritten content. buf is
// left untouched. Edits must be sorted by descending offset, as PlanEdits
// returns them.
func ApplyEdits(buf []byte, edits []m.Edit) []byte {
	out := make([]byte, len(buf), len(buf)+insertedLen(edits))
	copy(out, buf)

	for _, e := range edits {
		if e.Offset < 0 || e.Offset > len(out) {
			continue
		}

		tail := string(out[e.Offset:])
		out = append(out[:e.Offset], e.Text...)
		out = append(out, tail...)
	}

	return out
}

func insertedLen(edits []m.Edit) int {
	n := 0
	for _, e := range edits {
		n += len(e.Text)
	}

	return n
}
