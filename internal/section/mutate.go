package section

import (
	"iter"
	"slices"

	"github.com/Iron-Ham/rowkit/internal/errors"
)

// Operation names used in errors and logs.
const (
	opItemAt                 = "item at"
	opAdd                    = "add"
	opAddItems               = "add items"
	opInsert                 = "insert"
	opInsertItems            = "insert at indexes"
	opRemoveIdenticalInRange = "remove identical in range"
	opRemoveInRange          = "remove in range"
	opRemoveRange            = "remove range"
	opRemoveAtIndex          = "remove at index"
	opRemoveAtIndexes        = "remove at indexes"
	opReplaceAtIndex         = "replace at index"
	opReplaceAll             = "replace all"
	opReplaceAtIndexes       = "replace at indexes"
	opReplaceRange           = "replace range"
	opReplaceRangeWithRange  = "replace range with range"
	opExchange               = "exchange"
	opMove                   = "move"
	opSort                   = "sort"
)

func boundsErr(op string, index, count int) error {
	return errors.NewBoundsError(op, index, count)
}

func rangeErr(op string, r Range, count int) error {
	return errors.NewRangeBoundsError(op, r.Location, r.Length, count)
}

// fail logs a contract violation when a logger is configured and returns err.
func (s *Section) fail(op string, err error) error {
	if s.logger != nil {
		s.logger.WithSection(s.ID()).WithOperation(op).Warn("section contract violation", "error", err.Error())
	}
	return err
}

// checkItems rejects nil entries of a batch.
func (s *Section) checkItems(op string, items []Item) error {
	for i, item := range items {
		if isNil(item) {
			return s.fail(op, errors.NewArgumentError(op, "item").WithPosition(i))
		}
	}
	return nil
}

// checkSet rejects invalid index sets and positions at or beyond limit.
func (s *Section) checkSet(op string, set *IndexSet, limit int) error {
	if !set.Valid() {
		return s.fail(op, boundsErr(op, -1, len(s.items)))
	}
	if last, ok := set.Last(); ok && last >= limit {
		return s.fail(op, boundsErr(op, last, len(s.items)))
	}
	return nil
}

func (s *Section) checkRange(op string, r Range) error {
	if !r.within(len(s.items)) {
		return s.fail(op, rangeErr(op, r, len(s.items)))
	}
	return nil
}

// -----------------------------------------------------------------------------
// Adding
// -----------------------------------------------------------------------------

// AddItem appends item.
func (s *Section) AddItem(item Item) error {
	if isNil(item) {
		return s.fail(opAdd, errors.NewArgumentError(opAdd, "item"))
	}
	s.items = append(s.items, item)
	s.notify(OpInsert, []int{len(s.items) - 1})
	return nil
}

// AddItems appends items in order. A nil entry rejects the whole batch.
func (s *Section) AddItems(items ...Item) error {
	if err := s.checkItems(opAddItems, items); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	start := len(s.items)
	s.items = append(s.items, items...)
	s.notify(OpInsert, span(start, len(items)))
	return nil
}

// AddItemsFromSeq appends every item yielded by seq, preserving its order.
func (s *Section) AddItemsFromSeq(seq iter.Seq[Item]) error {
	if seq == nil {
		return nil
	}
	return s.AddItems(slices.Collect(seq)...)
}

// InsertItem inserts item at index, shifting later items right. index may
// equal Count().
func (s *Section) InsertItem(item Item, index int) error {
	if isNil(item) {
		return s.fail(opInsert, errors.NewArgumentError(opInsert, "item"))
	}
	if index < 0 || index > len(s.items) {
		return s.fail(opInsert, boundsErr(opInsert, index, len(s.items)))
	}
	s.items = slices.Insert(s.items, index, item)
	s.notify(OpInsert, []int{index})
	return nil
}

// InsertItems inserts items so that, afterwards, the nth item sits at the nth
// lowest position of indexes. Positions therefore refer to the grown
// sequence and must all be below Count()+len(items).
func (s *Section) InsertItems(items []Item, indexes *IndexSet) error {
	if err := s.checkItems(opInsertItems, items); err != nil {
		return err
	}
	if indexes.Count() != len(items) {
		return s.fail(opInsertItems, errors.NewCountMismatchError(opInsertItems, indexes.Count(), len(items)))
	}
	final := len(s.items) + len(items)
	if err := s.checkSet(opInsertItems, indexes, final); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}

	positions := indexes.Indexes()
	next := make([]Item, 0, final)
	src, ins := 0, 0
	for pos := 0; pos < final; pos++ {
		if ins < len(positions) && positions[ins] == pos {
			next = append(next, items[ins])
			ins++
			continue
		}
		next = append(next, s.items[src])
		src++
	}
	s.items = next
	s.notify(OpInsert, positions)
	return nil
}

// -----------------------------------------------------------------------------
// Removing
// -----------------------------------------------------------------------------

// RemoveItem removes the first item equal to item. Absent items are ignored.
func (s *Section) RemoveItem(item Item) {
	if i := s.IndexOfItem(item); i >= 0 {
		s.removeAt(i)
	}
}

// RemoveItemIdenticalTo removes the first item identical to item. Absent
// items are ignored.
func (s *Section) RemoveItemIdenticalTo(item Item) {
	if i := s.IndexOfItemIdenticalTo(item); i >= 0 {
		s.removeAt(i)
	}
}

// RemoveItemIdenticalToInRange removes the first item inside r that is
// identical to item.
func (s *Section) RemoveItemIdenticalToInRange(item Item, r Range) error {
	if err := s.checkRange(opRemoveIdenticalInRange, r); err != nil {
		return err
	}
	if i := s.indexIn(item, r.Location, r.End(), identical); i >= 0 {
		s.removeAt(i)
	}
	return nil
}

// RemoveItemInRange removes the first item inside r that is equal to item.
func (s *Section) RemoveItemInRange(item Item, r Range) error {
	if err := s.checkRange(opRemoveInRange, r); err != nil {
		return err
	}
	if i := s.indexIn(item, r.Location, r.End(), equal); i >= 0 {
		s.removeAt(i)
	}
	return nil
}

// RemoveAllItems empties the section.
func (s *Section) RemoveAllItems() {
	n := len(s.items)
	if n == 0 {
		return
	}
	s.items = nil
	s.notify(OpRemove, span(0, n))
}

// RemoveItemsInSlice removes every item equal to any element of other.
func (s *Section) RemoveItemsInSlice(other []Item) {
	if len(other) == 0 || len(s.items) == 0 {
		return
	}
	var removed []int
	kept := make([]Item, 0, len(s.items))
	for i, item := range s.items {
		match := slices.ContainsFunc(other, func(o Item) bool { return equal(item, o) })
		if match {
			removed = append(removed, i)
			continue
		}
		kept = append(kept, item)
	}
	if len(removed) == 0 {
		return
	}
	s.items = kept
	s.notify(OpRemove, removed)
}

// RemoveItemsInRange removes the items covered by r.
func (s *Section) RemoveItemsInRange(r Range) error {
	if err := s.checkRange(opRemoveRange, r); err != nil {
		return err
	}
	if r.Length == 0 {
		return nil
	}
	s.items = slices.Delete(s.items, r.Location, r.End())
	s.notify(OpRemove, span(r.Location, r.Length))
	return nil
}

// RemoveLastItem removes the final item. Empty sections are left alone.
func (s *Section) RemoveLastItem() {
	if len(s.items) > 0 {
		s.removeAt(len(s.items) - 1)
	}
}

// RemoveItemAtIndex removes the item at index.
func (s *Section) RemoveItemAtIndex(index int) error {
	if index < 0 || index >= len(s.items) {
		return s.fail(opRemoveAtIndex, boundsErr(opRemoveAtIndex, index, len(s.items)))
	}
	s.removeAt(index)
	return nil
}

// RemoveItemsAtIndexes removes every item addressed by indexes. Positions
// refer to the sequence before any removal.
func (s *Section) RemoveItemsAtIndexes(indexes *IndexSet) error {
	if err := s.checkSet(opRemoveAtIndexes, indexes, len(s.items)); err != nil {
		return err
	}
	if indexes.Count() == 0 {
		return nil
	}
	kept := make([]Item, 0, len(s.items)-indexes.Count())
	for i, item := range s.items {
		if !indexes.Contains(i) {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.notify(OpRemove, indexes.Indexes())
	return nil
}

func (s *Section) removeAt(i int) {
	s.items = slices.Delete(s.items, i, i+1)
	s.notify(OpRemove, []int{i})
}

// -----------------------------------------------------------------------------
// Replacing
// -----------------------------------------------------------------------------

// ReplaceItemAtIndex overwrites the item at index.
func (s *Section) ReplaceItemAtIndex(index int, item Item) error {
	if isNil(item) {
		return s.fail(opReplaceAtIndex, errors.NewArgumentError(opReplaceAtIndex, "item"))
	}
	if index < 0 || index >= len(s.items) {
		return s.fail(opReplaceAtIndex, boundsErr(opReplaceAtIndex, index, len(s.items)))
	}
	s.items[index] = item
	s.notify(OpReplace, []int{index})
	return nil
}

// ReplaceItemsWithItemsFromSlice replaces the whole sequence with a copy of
// other.
func (s *Section) ReplaceItemsWithItemsFromSlice(other []Item) error {
	if err := s.checkItems(opReplaceAll, other); err != nil {
		return err
	}
	s.items = slices.Clone(other)
	s.notify(OpReload, nil)
	return nil
}

// ReplaceItemsAtIndexes writes the nth item of items at the nth lowest
// position of indexes. Both must have the same size.
func (s *Section) ReplaceItemsAtIndexes(indexes *IndexSet, items []Item) error {
	if err := s.checkItems(opReplaceAtIndexes, items); err != nil {
		return err
	}
	if indexes.Count() != len(items) {
		return s.fail(opReplaceAtIndexes, errors.NewCountMismatchError(opReplaceAtIndexes, indexes.Count(), len(items)))
	}
	if err := s.checkSet(opReplaceAtIndexes, indexes, len(s.items)); err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	positions := indexes.Indexes()
	for n, pos := range positions {
		s.items[pos] = items[n]
	}
	s.notify(OpReplace, positions)
	return nil
}

// ReplaceItemsInRangeWithRange replaces the items covered by r with the
// items of other covered by otherRange.
func (s *Section) ReplaceItemsInRangeWithRange(r Range, other []Item, otherRange Range) error {
	if err := s.checkRange(opReplaceRangeWithRange, r); err != nil {
		return err
	}
	if !otherRange.within(len(other)) {
		return s.fail(opReplaceRangeWithRange, rangeErr(opReplaceRangeWithRange, otherRange, len(other)))
	}
	return s.replaceRange(opReplaceRangeWithRange, r, other[otherRange.Location:otherRange.End()])
}

// ReplaceItemsInRange replaces the items covered by r with all of other.
func (s *Section) ReplaceItemsInRange(r Range, other []Item) error {
	if err := s.checkRange(opReplaceRange, r); err != nil {
		return err
	}
	return s.replaceRange(opReplaceRange, r, other)
}

func (s *Section) replaceRange(op string, r Range, repl []Item) error {
	if err := s.checkItems(op, repl); err != nil {
		return err
	}
	if r.Length == 0 && len(repl) == 0 {
		return nil
	}

	next := make([]Item, 0, len(s.items)-r.Length+len(repl))
	next = append(next, s.items[:r.Location]...)
	next = append(next, repl...)
	next = append(next, s.items[r.End():]...)
	s.items = next

	if r.Length == len(repl) {
		s.notify(OpReplace, span(r.Location, r.Length))
		return nil
	}
	if r.Length > 0 {
		s.notify(OpRemove, span(r.Location, r.Length))
	}
	if len(repl) > 0 {
		s.notify(OpInsert, span(r.Location, len(repl)))
	}
	return nil
}

// -----------------------------------------------------------------------------
// Rearranging
// -----------------------------------------------------------------------------

// ExchangeItemsAt swaps the items at i and j. Swapping a position with
// itself changes nothing.
func (s *Section) ExchangeItemsAt(i, j int) error {
	for _, idx := range []int{i, j} {
		if idx < 0 || idx >= len(s.items) {
			return s.fail(opExchange, boundsErr(opExchange, idx, len(s.items)))
		}
	}
	if i == j {
		return nil
	}
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.notify(OpExchange, []int{min(i, j), max(i, j)})
	return nil
}

// MoveItem moves the item at from so that it ends up at to.
func (s *Section) MoveItem(from, to int) error {
	for _, idx := range []int{from, to} {
		if idx < 0 || idx >= len(s.items) {
			return s.fail(opMove, boundsErr(opMove, idx, len(s.items)))
		}
	}
	if from == to {
		return nil
	}
	item := s.items[from]
	s.items = slices.Insert(slices.Delete(s.items, from, from+1), to, item)
	s.notify(OpRemove, []int{from})
	s.notify(OpInsert, []int{to})
	return nil
}
