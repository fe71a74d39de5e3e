package section

// Op names the kind of structural edit a Change describes.
type Op string

const (
	// OpInsert lists the final positions of inserted items.
	OpInsert Op = "insert"
	// OpRemove lists the positions removed items held before the edit.
	OpRemove Op = "remove"
	// OpReplace lists positions whose item was overwritten in place.
	OpReplace Op = "replace"
	// OpExchange lists the two positions that swapped items.
	OpExchange Op = "exchange"
	// OpReload means the whole sequence changed (sort, wholesale replace).
	OpReload Op = "reload"
)

// Change describes one completed mutation. A single call may produce more
// than one Change; replacing a range with a different number of items is
// reported as a remove followed by an insert.
type Change struct {
	Op      Op
	Indexes []int
}

func (s *Section) notify(op Op, indexes []int) {
	if s.onChange == nil {
		return
	}
	s.onChange(Change{Op: op, Indexes: indexes})
}

func span(location, length int) []int {
	out := make([]int, length)
	for i := range out {
		out[i] = location + i
	}
	return out
}
