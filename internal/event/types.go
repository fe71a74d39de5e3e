package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "section.inserted").
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event type identifiers.
const (
	TypeSectionInserted = "section.inserted"
	TypeSectionRemoved  = "section.removed"
	TypeSectionMoved    = "section.moved"
	TypeItemsChanged    = "items.changed"
	TypeTableReloaded   = "table.reloaded"
)

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Section Events
// -----------------------------------------------------------------------------

// SectionInsertedEvent is emitted when a manager adopts a section.
type SectionInsertedEvent struct {
	baseEvent
	SectionID string
	Index     int // Position the section now occupies
}

// NewSectionInsertedEvent creates a SectionInsertedEvent.
func NewSectionInsertedEvent(sectionID string, index int) SectionInsertedEvent {
	return SectionInsertedEvent{
		baseEvent: newBaseEvent(TypeSectionInserted),
		SectionID: sectionID,
		Index:     index,
	}
}

// SectionRemovedEvent is emitted when a manager releases a section.
type SectionRemovedEvent struct {
	baseEvent
	SectionID string
	Index     int // Position the section held before removal
}

// NewSectionRemovedEvent creates a SectionRemovedEvent.
func NewSectionRemovedEvent(sectionID string, index int) SectionRemovedEvent {
	return SectionRemovedEvent{
		baseEvent: newBaseEvent(TypeSectionRemoved),
		SectionID: sectionID,
		Index:     index,
	}
}

// SectionMovedEvent is emitted when a section changes position.
type SectionMovedEvent struct {
	baseEvent
	SectionID string
	From      int
	To        int
}

// NewSectionMovedEvent creates a SectionMovedEvent.
func NewSectionMovedEvent(sectionID string, from, to int) SectionMovedEvent {
	return SectionMovedEvent{
		baseEvent: newBaseEvent(TypeSectionMoved),
		SectionID: sectionID,
		From:      from,
		To:        to,
	}
}

// -----------------------------------------------------------------------------
// Item Events
// -----------------------------------------------------------------------------

// ItemsChangedEvent is emitted after a section's items are mutated.
type ItemsChangedEvent struct {
	baseEvent
	SectionID    string
	SectionIndex int
	Op           string // insert, remove, replace, exchange or reload
	Indexes      []int  // Item positions affected; empty for reload
}

// NewItemsChangedEvent creates an ItemsChangedEvent.
func NewItemsChangedEvent(sectionID string, sectionIndex int, op string, indexes []int) ItemsChangedEvent {
	return ItemsChangedEvent{
		baseEvent:    newBaseEvent(TypeItemsChanged),
		SectionID:    sectionID,
		SectionIndex: sectionIndex,
		Op:           op,
		Indexes:      indexes,
	}
}

// -----------------------------------------------------------------------------
// Table Events
// -----------------------------------------------------------------------------

// TableReloadedEvent is emitted when a table is rebuilt from its source.
type TableReloadedEvent struct {
	baseEvent
	Source       string // File the table was loaded from, if any
	SectionCount int
	ItemCount    int
}

// NewTableReloadedEvent creates a TableReloadedEvent.
func NewTableReloadedEvent(source string, sectionCount, itemCount int) TableReloadedEvent {
	return TableReloadedEvent{
		baseEvent:    newBaseEvent(TypeTableReloaded),
		Source:       source,
		SectionCount: sectionCount,
		ItemCount:    itemCount,
	}
}
