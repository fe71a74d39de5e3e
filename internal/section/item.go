package section

import "reflect"

// Item is one row of a section. Kind names the row variant so a renderer can
// pick a cell for it; everything else about an item is opaque to Section.
type Item interface {
	Kind() string
}

// Equaler is implemented by items that define value equality. Operations in
// the "equal" family (RemoveItem, IndexOfItem, RemoveItemsInSlice) use it;
// items without it compare by identity.
type Equaler interface {
	Equal(other Item) bool
}

// Comparer is implemented by items that can order themselves. SortItems
// requires every item in the section to implement it.
type Comparer interface {
	Compare(other Item) int
}

// View is an opaque header or footer handle. Section stores it and never
// calls it; renderers do.
type View interface {
	View() string
}

// isNil reports whether item is a nil interface or a typed nil.
func isNil(item Item) bool {
	if item == nil {
		return true
	}
	v := reflect.ValueOf(item)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// identical reports whether a and b are the same item: the same pointer for
// reference types, the same value for comparable value types.
func identical(a, b Item) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return a == b
	}
	switch va.Kind() {
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	case reflect.Map:
		return va.Pointer() == vb.Pointer()
	}
	return false
}

// equal applies a's Equaler when present and falls back to identity.
func equal(a, b Item) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}
	return identical(a, b)
}
