package section

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/rowkit/internal/errors"
)

// CompareFunc orders two items. A non-nil error aborts the sort.
type CompareFunc func(a, b Item) (int, error)

// SortItemsFunc stably sorts the items with cmp. The sort is transactional:
// if cmp returns an error or panics, the items keep their previous order and
// the returned error matches errors.ErrComparatorFailure.
func (s *Section) SortItemsFunc(cmp CompareFunc) error {
	if cmp == nil {
		return s.fail(opSort, errors.NewArgumentError(opSort, "comparator"))
	}
	return s.sortWith(opSort, cmp)
}

// SortItems stably sorts the items by their Compare method. Every item must
// implement Comparer; otherwise the items keep their order and an error
// matching errors.ErrComparatorFailure is returned.
func (s *Section) SortItems() error {
	return s.sortWith(opSort, func(a, b Item) (int, error) {
		c, ok := a.(Comparer)
		if !ok {
			return 0, fmt.Errorf("item kind %q does not implement Comparer", a.Kind())
		}
		if _, ok := b.(Comparer); !ok {
			return 0, fmt.Errorf("item kind %q does not implement Comparer", b.Kind())
		}
		return c.Compare(b), nil
	})
}

func (s *Section) sortWith(op string, cmp CompareFunc) error {
	if len(s.items) < 2 {
		return nil
	}
	sorted := slices.Clone(s.items)
	if err := stableSort(op, sorted, cmp); err != nil {
		return s.fail(op, err)
	}
	s.items = sorted
	s.notify(OpReload, nil)
	return nil
}

// stableSort sorts items in place and converts comparator failures into a
// ComparatorError. On failure the contents of items are unspecified.
func stableSort(op string, items []Item, cmp CompareFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewComparatorPanicError(op, r)
		}
	}()

	var cmpErr error
	slices.SortStableFunc(items, func(a, b Item) int {
		if cmpErr != nil {
			return 0
		}
		c, e := cmp(a, b)
		if e != nil {
			cmpErr = e
			return 0
		}
		return c
	})
	if cmpErr != nil {
		return errors.NewComparatorError(op, cmpErr)
	}
	return nil
}
