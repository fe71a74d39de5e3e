package section

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Range is a contiguous span of positions starting at Location.
type Range struct {
	Location int
	Length   int
}

// MakeRange returns the range {location, length}.
func MakeRange(location, length int) Range {
	return Range{Location: location, Length: length}
}

// End returns the first position after the range.
func (r Range) End() int {
	return r.Location + r.Length
}

// Contains reports whether i lies inside the range.
func (r Range) Contains(i int) bool {
	return i >= r.Location && i-r.Location < r.Length
}

func (r Range) String() string {
	return fmt.Sprintf("{%d, %d}", r.Location, r.Length)
}

// within reports whether the range fits a sequence of count elements.
func (r Range) within(count int) bool {
	return r.Location >= 0 && r.Length >= 0 && r.Location <= count-r.Length
}

// MaxIndex is the highest position an IndexSet can hold.
const MaxIndex = math.MaxInt32

// IndexSet is an unordered set of non-negative positions used to address
// batch operations. A nil *IndexSet is an empty set.
//
// Adding a position outside [0, MaxIndex] does not panic; it marks the set
// invalid, and every Section operation handed an invalid set fails with an
// out-of-bounds error.
type IndexSet struct {
	bits    *bitset.BitSet
	invalid bool
}

// NewIndexSet returns a set holding the given positions.
func NewIndexSet(indexes ...int) *IndexSet {
	s := &IndexSet{bits: bitset.New(0)}
	for _, i := range indexes {
		s.Add(i)
	}
	return s
}

// IndexSetInRange returns a set holding every position of r.
func IndexSetInRange(r Range) *IndexSet {
	return NewIndexSet().AddRange(r)
}

// Add inserts i into the set.
func (s *IndexSet) Add(i int) *IndexSet {
	if i < 0 || i > MaxIndex {
		s.invalid = true
		return s
	}
	s.ensure()
	s.bits.Set(uint(i))
	return s
}

// AddRange inserts every position of r into the set.
func (s *IndexSet) AddRange(r Range) *IndexSet {
	if r.Length < 0 || r.Location < 0 || (r.Length > 0 && r.Location > MaxIndex-(r.Length-1)) {
		s.invalid = true
		return s
	}
	for i := range r.Length {
		s.Add(r.Location + i)
	}
	return s
}

// Remove deletes i from the set.
func (s *IndexSet) Remove(i int) *IndexSet {
	if i >= 0 && s.bits != nil {
		s.bits.Clear(uint(i))
	}
	return s
}

// Contains reports whether i is in the set.
func (s *IndexSet) Contains(i int) bool {
	if s == nil || s.bits == nil || i < 0 {
		return false
	}
	return s.bits.Test(uint(i))
}

// Count returns the number of positions in the set.
func (s *IndexSet) Count() int {
	if s == nil || s.bits == nil {
		return 0
	}
	return int(s.bits.Count())
}

// Valid reports whether every position ever added lay in [0, MaxIndex].
func (s *IndexSet) Valid() bool {
	return s == nil || !s.invalid
}

// Indexes returns the positions in ascending order.
func (s *IndexSet) Indexes() []int {
	if s == nil || s.bits == nil {
		return nil
	}
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// First returns the lowest position, or false when the set is empty.
func (s *IndexSet) First() (int, bool) {
	if s == nil || s.bits == nil {
		return 0, false
	}
	i, ok := s.bits.NextSet(0)
	return int(i), ok
}

// Last returns the highest position, or false when the set is empty.
func (s *IndexSet) Last() (int, bool) {
	if s == nil || s.bits == nil {
		return 0, false
	}
	words := s.bits.Bytes()
	for w := len(words) - 1; w >= 0; w-- {
		if words[w] != 0 {
			return w*64 + bits.Len64(words[w]) - 1, true
		}
	}
	return 0, false
}

// Clone returns an independent copy of the set.
func (s *IndexSet) Clone() *IndexSet {
	if s == nil {
		return NewIndexSet()
	}
	c := &IndexSet{invalid: s.invalid}
	if s.bits != nil {
		c.bits = s.bits.Clone()
	} else {
		c.bits = bitset.New(0)
	}
	return c
}

// Equal reports whether both sets hold the same positions.
func (s *IndexSet) Equal(other *IndexSet) bool {
	return s.Valid() == other.Valid() && slices.Equal(s.Indexes(), other.Indexes())
}

func (s *IndexSet) String() string {
	idx := s.Indexes()
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = strconv.Itoa(v)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *IndexSet) ensure() {
	if s.bits == nil {
		s.bits = bitset.New(0)
	}
}
