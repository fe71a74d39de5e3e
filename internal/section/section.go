package section

import (
	"iter"
	"slices"

	"github.com/Iron-Ham/rowkit/internal/logging"
	"github.com/google/uuid"
)

// NotAttached is returned by Index when the section has no owner, or when the
// owner no longer lists it.
const NotAttached = -1

// Owner is the narrow view a section has of the manager that lists it. The
// manager sets itself with Attach and clears itself with Detach; a section
// never assigns its own owner.
type Owner interface {
	// IndexOfSection returns the position of s among the owner's sections,
	// or a negative value when s is not one of them.
	IndexOfSection(s *Section) int
}

// Section is an ordered, mutable collection of items with optional header
// and footer presentation. The zero value is an empty, unattached section.
type Section struct {
	id    string
	items []Item

	headerTitle string
	footerTitle string
	headerView  View
	footerView  View

	owner    Owner
	onChange func(Change)
	logger   *logging.Logger
}

// Option configures a Section during New or Init.
type Option func(*Section)

// WithHeaderTitle sets the header title.
func WithHeaderTitle(title string) Option {
	return func(s *Section) { s.headerTitle = title }
}

// WithFooterTitle sets the footer title.
func WithFooterTitle(title string) Option {
	return func(s *Section) { s.footerTitle = title }
}

// WithHeaderView sets the header view.
func WithHeaderView(v View) Option {
	return func(s *Section) { s.headerView = v }
}

// WithFooterView sets the footer view.
func WithFooterView(v View) Option {
	return func(s *Section) { s.footerView = v }
}

// WithItems pre-populates the section. Nil items are dropped.
func WithItems(items ...Item) Option {
	return func(s *Section) {
		for _, item := range items {
			if !isNil(item) {
				s.items = append(s.items, item)
			}
		}
	}
}

// WithLogger makes the section log contract violations at WARN.
func WithLogger(l *logging.Logger) Option {
	return func(s *Section) { s.logger = l }
}

// New creates an empty, unattached section.
func New(opts ...Option) *Section {
	return new(Section).Init(opts...)
}

// NewWithHeaderTitle creates a section with a header title.
func NewWithHeaderTitle(headerTitle string) *Section {
	return New(WithHeaderTitle(headerTitle))
}

// NewWithTitles creates a section with header and footer titles.
func NewWithTitles(headerTitle, footerTitle string) *Section {
	return New(WithHeaderTitle(headerTitle), WithFooterTitle(footerTitle))
}

// NewWithHeaderView creates a section with a header view.
func NewWithHeaderView(headerView View) *Section {
	return New(WithHeaderView(headerView))
}

// NewWithViews creates a section with header and footer views.
func NewWithViews(headerView, footerView View) *Section {
	return New(WithHeaderView(headerView), WithFooterView(footerView))
}

// Init resets the items, titles and views of an allocated section and
// applies opts. The ID, owner, change hook and logger are kept.
func (s *Section) Init(opts ...Option) *Section {
	s.items = nil
	s.headerTitle, s.footerTitle = "", ""
	s.headerView, s.footerView = nil, nil
	for _, opt := range opts {
		opt(s)
	}
	s.ID()
	return s
}

// InitWithHeaderTitle is Init with a header title.
func (s *Section) InitWithHeaderTitle(headerTitle string) *Section {
	return s.Init(WithHeaderTitle(headerTitle))
}

// InitWithTitles is Init with header and footer titles.
func (s *Section) InitWithTitles(headerTitle, footerTitle string) *Section {
	return s.Init(WithHeaderTitle(headerTitle), WithFooterTitle(footerTitle))
}

// InitWithHeaderView is Init with a header view.
func (s *Section) InitWithHeaderView(headerView View) *Section {
	return s.Init(WithHeaderView(headerView))
}

// InitWithViews is Init with header and footer views.
func (s *Section) InitWithViews(headerView, footerView View) *Section {
	return s.Init(WithHeaderView(headerView), WithFooterView(footerView))
}

// ID returns the section's stable identifier, assigning one on first use.
func (s *Section) ID() string {
	if s.id == "" {
		s.id = uuid.NewString()
	}
	return s.id
}

// -----------------------------------------------------------------------------
// Header and footer
// -----------------------------------------------------------------------------

// HeaderTitle returns the header title.
func (s *Section) HeaderTitle() string { return s.headerTitle }

// SetHeaderTitle replaces the header title. The header view is left alone.
func (s *Section) SetHeaderTitle(title string) { s.headerTitle = title }

// FooterTitle returns the footer title.
func (s *Section) FooterTitle() string { return s.footerTitle }

// SetFooterTitle replaces the footer title. The footer view is left alone.
func (s *Section) SetFooterTitle(title string) { s.footerTitle = title }

// HeaderView returns the header view, or nil.
func (s *Section) HeaderView() View { return s.headerView }

// SetHeaderView replaces the header view. The header title is left alone;
// which of the two is shown is the renderer's decision.
func (s *Section) SetHeaderView(v View) { s.headerView = v }

// FooterView returns the footer view, or nil.
func (s *Section) FooterView() View { return s.footerView }

// SetFooterView replaces the footer view.
func (s *Section) SetFooterView(v View) { s.footerView = v }

// HasHeader reports whether a header title or view is set.
func (s *Section) HasHeader() bool { return s.headerTitle != "" || s.headerView != nil }

// HasFooter reports whether a footer title or view is set.
func (s *Section) HasFooter() bool { return s.footerTitle != "" || s.footerView != nil }

// -----------------------------------------------------------------------------
// Owner
// -----------------------------------------------------------------------------

// Index returns the section's position in its owner, resolved on every call.
func (s *Section) Index() int {
	if s.owner == nil {
		return NotAttached
	}
	if idx := s.owner.IndexOfSection(s); idx >= 0 {
		return idx
	}
	return NotAttached
}

// Owner returns the current owner, or nil.
func (s *Section) Owner() Owner { return s.owner }

// IsAttached reports whether an owner is set.
func (s *Section) IsAttached() bool { return s.owner != nil }

// Attach records owner as the section's manager. Called by the manager.
func (s *Section) Attach(owner Owner) { s.owner = owner }

// Detach clears the owner and the change hook. Called by the manager.
func (s *Section) Detach() {
	s.owner = nil
	s.onChange = nil
}

// OnChange installs fn to receive every successful mutation. Passing nil
// removes the hook.
func (s *Section) OnChange(fn func(Change)) { s.onChange = fn }

// -----------------------------------------------------------------------------
// Reading
// -----------------------------------------------------------------------------

// Count returns the number of items.
func (s *Section) Count() int { return len(s.items) }

// Items returns a copy of the items in display order.
func (s *Section) Items() []Item { return slices.Clone(s.items) }

// ItemAt returns the item at index.
func (s *Section) ItemAt(index int) (Item, error) {
	if index < 0 || index >= len(s.items) {
		return nil, s.fail(opItemAt, boundsErr(opItemAt, index, len(s.items)))
	}
	return s.items[index], nil
}

// FirstItem returns the first item, or false when the section is empty.
func (s *Section) FirstItem() (Item, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[0], true
}

// LastItem returns the last item, or false when the section is empty.
func (s *Section) LastItem() (Item, bool) {
	if len(s.items) == 0 {
		return nil, false
	}
	return s.items[len(s.items)-1], true
}

// All iterates over index/item pairs. Mutating the section during iteration
// does not affect the pairs already scheduled.
func (s *Section) All() iter.Seq2[int, Item] {
	items := slices.Clone(s.items)
	return func(yield func(int, Item) bool) {
		for i, item := range items {
			if !yield(i, item) {
				return
			}
		}
	}
}

// IndexOfItem returns the position of the first item equal to item, or -1.
func (s *Section) IndexOfItem(item Item) int {
	return s.indexIn(item, 0, len(s.items), equal)
}

// IndexOfItemIdenticalTo returns the position of the first item identical
// to item, or -1.
func (s *Section) IndexOfItemIdenticalTo(item Item) int {
	return s.indexIn(item, 0, len(s.items), identical)
}

// ContainsItem reports whether an item equal to item is present.
func (s *Section) ContainsItem(item Item) bool {
	return s.IndexOfItem(item) >= 0
}

func (s *Section) indexIn(item Item, from, to int, match func(a, b Item) bool) int {
	if isNil(item) {
		return -1
	}
	for i := from; i < to; i++ {
		if match(s.items[i], item) {
			return i
		}
	}
	return -1
}
