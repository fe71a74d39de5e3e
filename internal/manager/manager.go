// Package manager holds an ordered list of sections and is the owner each
// attached section resolves its index against.
//
// A Manager attaches a section when it is added and detaches it when it is
// removed. While attached, every mutation of the section is republished on
// the manager's event bus as an [event.ItemsChangedEvent]. Like Section, a
// Manager is single-owner and not synchronized.
package manager

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/rowkit/internal/errors"
	"github.com/Iron-Ham/rowkit/internal/event"
	"github.com/Iron-Ham/rowkit/internal/logging"
	"github.com/Iron-Ham/rowkit/internal/section"
)

// IndexPath addresses one item: the section position and the item position
// inside it.
type IndexPath struct {
	Section int
	Item    int
}

func (p IndexPath) String() string {
	return fmt.Sprintf("[%d, %d]", p.Section, p.Item)
}

// Manager is an ordered collection of sections.
type Manager struct {
	sections []*section.Section
	bus      *event.Bus
	logger   *logging.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithBus publishes section and item events on bus.
func WithBus(bus *event.Bus) Option {
	return func(m *Manager) { m.bus = bus }
}

// WithLogger sets the logger for attach and detach diagnostics.
func WithLogger(l *logging.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// New creates an empty manager. Without WithBus a private bus is created so
// Bus never returns nil.
func New(opts ...Option) *Manager {
	m := &Manager{}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = logging.NopLogger()
	}
	if m.bus == nil {
		m.bus = event.NewBus(m.logger)
	}
	return m
}

// Bus returns the bus events are published on.
func (m *Manager) Bus() *event.Bus { return m.bus }

// Count returns the number of sections.
func (m *Manager) Count() int { return len(m.sections) }

// Sections returns a copy of the section list.
func (m *Manager) Sections() []*section.Section { return slices.Clone(m.sections) }

// SectionAt returns the section at index.
func (m *Manager) SectionAt(index int) (*section.Section, error) {
	if index < 0 || index >= len(m.sections) {
		return nil, errors.NewBoundsError("section at", index, len(m.sections))
	}
	return m.sections[index], nil
}

// IndexOfSection returns the position of s by identity, or -1.
func (m *Manager) IndexOfSection(s *section.Section) int {
	return slices.Index(m.sections, s)
}

// AddSection appends s.
func (m *Manager) AddSection(s *section.Section) error {
	return m.InsertSection(s, len(m.sections))
}

// InsertSection inserts s at index, which may equal Count(). A section that
// already has an owner, this manager included, is rejected.
func (m *Manager) InsertSection(s *section.Section, index int) error {
	if s == nil {
		return errors.NewArgumentError("insert section", "section")
	}
	if s.IsAttached() {
		return errors.NewSectionError("cannot insert section", errors.ErrAlreadyAttached).
			WithSectionID(s.ID())
	}
	if index < 0 || index > len(m.sections) {
		return errors.NewBoundsError("insert section", index, len(m.sections))
	}

	m.sections = slices.Insert(m.sections, index, s)
	m.attach(s)
	m.logger.WithSection(s.ID()).Debug("section attached", "index", index)
	m.bus.Publish(event.NewSectionInsertedEvent(s.ID(), index))
	return nil
}

// RemoveSection detaches and removes s. A section without an owner fails
// with ErrNotAttached, one owned by another manager with ErrSectionNotFound.
func (m *Manager) RemoveSection(s *section.Section) error {
	if s == nil || !s.IsAttached() {
		id := ""
		if s != nil {
			id = s.ID()
		}
		return errors.NewSectionError("cannot remove section", errors.ErrNotAttached).WithSectionID(id)
	}
	index := m.IndexOfSection(s)
	if index < 0 {
		return errors.NewSectionError("cannot remove section", errors.ErrSectionNotFound).WithSectionID(s.ID())
	}
	_, err := m.RemoveSectionAt(index)
	return err
}

// RemoveSectionAt detaches and removes the section at index and returns it.
func (m *Manager) RemoveSectionAt(index int) (*section.Section, error) {
	if index < 0 || index >= len(m.sections) {
		return nil, errors.NewBoundsError("remove section", index, len(m.sections))
	}
	s := m.sections[index]
	m.sections = slices.Delete(m.sections, index, index+1)
	s.Detach()
	m.logger.WithSection(s.ID()).Debug("section detached", "index", index)
	m.bus.Publish(event.NewSectionRemovedEvent(s.ID(), index))
	return s, nil
}

// RemoveAllSections detaches every section.
func (m *Manager) RemoveAllSections() {
	for m.Count() > 0 {
		_, _ = m.RemoveSectionAt(m.Count() - 1)
	}
}

// MoveSection moves the section at from so that it ends up at to. Attached
// sections observe their new indexes immediately.
func (m *Manager) MoveSection(from, to int) error {
	for _, idx := range []int{from, to} {
		if idx < 0 || idx >= len(m.sections) {
			return errors.NewBoundsError("move section", idx, len(m.sections))
		}
	}
	if from == to {
		return nil
	}
	s := m.sections[from]
	m.sections = slices.Insert(slices.Delete(m.sections, from, from+1), to, s)
	m.bus.Publish(event.NewSectionMovedEvent(s.ID(), from, to))
	return nil
}

// ItemAt returns the item addressed by p.
func (m *Manager) ItemAt(p IndexPath) (section.Item, error) {
	s, err := m.SectionAt(p.Section)
	if err != nil {
		return nil, err
	}
	return s.ItemAt(p.Item)
}

// IndexPathOfItem returns the path of the first item equal to item, scanning
// sections in order.
func (m *Manager) IndexPathOfItem(item section.Item) (IndexPath, bool) {
	for si, s := range m.sections {
		if ii := s.IndexOfItem(item); ii >= 0 {
			return IndexPath{Section: si, Item: ii}, true
		}
	}
	return IndexPath{}, false
}

// TotalItems returns the number of items across all sections.
func (m *Manager) TotalItems() int {
	n := 0
	for _, s := range m.sections {
		n += s.Count()
	}
	return n
}

// attach makes m the owner of s and forwards its changes to the bus.
func (m *Manager) attach(s *section.Section) {
	s.Attach(m)
	s.OnChange(func(c section.Change) {
		index := s.Index()
		m.logger.WithSection(s.ID()).Debug("items changed",
			"section_index", index,
			"change", string(c.Op),
			"indexes", c.Indexes,
		)
		m.bus.Publish(event.NewItemsChangedEvent(s.ID(), index, string(c.Op), c.Indexes))
	})
}
