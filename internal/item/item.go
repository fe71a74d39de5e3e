// Package item provides the row kinds rowkit ships with. Each kind is a
// section.Item with value equality and a title-based ordering, so sections
// built from them support RemoveItem, IndexOfItem and SortItems.
package item

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/Iron-Ham/rowkit/internal/section"
)

// Kind names.
const (
	KindText   = "text"
	KindToggle = "toggle"
	KindValue  = "value"
)

// Titled is implemented by every row kind in this package.
type Titled interface {
	section.Item
	TitleText() string
}

// compareTitled orders rows by title (case-insensitive), then by kind so the
// ordering is total across kinds.
func compareTitled(a Titled, other section.Item) int {
	b, ok := other.(Titled)
	if !ok {
		return cmp.Compare(a.Kind(), other.Kind())
	}
	if c := strings.Compare(strings.ToLower(a.TitleText()), strings.ToLower(b.TitleText())); c != 0 {
		return c
	}
	return cmp.Compare(a.Kind(), b.Kind())
}

// Text is a plain row with an optional detail line and trailing accessory.
type Text struct {
	Title     string
	Detail    string
	Accessory string
}

// NewText returns a text row.
func NewText(title string) *Text {
	return &Text{Title: title}
}

func (t *Text) Kind() string      { return KindText }
func (t *Text) TitleText() string { return t.Title }

// Equal reports whether other is a text row with the same fields.
func (t *Text) Equal(other section.Item) bool {
	o, ok := other.(*Text)
	return ok && o != nil && *o == *t
}

func (t *Text) Compare(other section.Item) int { return compareTitled(t, other) }

// Toggle is a row with an on/off switch.
type Toggle struct {
	Title string
	On    bool
}

// NewToggle returns a toggle row.
func NewToggle(title string, on bool) *Toggle {
	return &Toggle{Title: title, On: on}
}

func (t *Toggle) Kind() string      { return KindToggle }
func (t *Toggle) TitleText() string { return t.Title }

// Flip inverts the switch and returns the new state.
func (t *Toggle) Flip() bool {
	t.On = !t.On
	return t.On
}

// State returns "on" or "off".
func (t *Toggle) State() string {
	if t.On {
		return "on"
	}
	return "off"
}

// Equal reports whether other is a toggle with the same title and state.
func (t *Toggle) Equal(other section.Item) bool {
	o, ok := other.(*Toggle)
	return ok && o != nil && *o == *t
}

func (t *Toggle) Compare(other section.Item) int { return compareTitled(t, other) }

// Value is a row showing a title and a right-aligned value.
type Value struct {
	Title string
	Value string
}

// NewValue returns a value row.
func NewValue(title, value string) *Value {
	return &Value{Title: title, Value: value}
}

// NewNumber returns a value row for an integer.
func NewNumber(title string, n int) *Value {
	return NewValue(title, strconv.Itoa(n))
}

func (v *Value) Kind() string      { return KindValue }
func (v *Value) TitleText() string { return v.Title }

// Equal reports whether other is a value row with the same fields.
func (v *Value) Equal(other section.Item) bool {
	o, ok := other.(*Value)
	return ok && o != nil && *o == *v
}

func (v *Value) Compare(other section.Item) int { return compareTitled(v, other) }

// Title returns the title of any row kind in this package, or the kind name
// for foreign items.
func Title(i section.Item) string {
	if t, ok := i.(Titled); ok {
		return t.TitleText()
	}
	return i.Kind()
}
