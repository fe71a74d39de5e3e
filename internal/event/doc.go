// Package event provides a pub-sub event bus that decouples the section
// manager from the components that present it.
//
// The manager publishes an event for every structural change to its
// sections; the viewer and the logging layer subscribe without either side
// holding a reference to the other.
//
// # Main Types
//
//   - [Event]: Interface that all events implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub dispatcher, safe for concurrent use
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Events
//
//   - [SectionInsertedEvent]: a section was added to a manager
//   - [SectionRemovedEvent]: a section was released by a manager
//   - [SectionMovedEvent]: a section changed position
//   - [ItemsChangedEvent]: a section's items were mutated
//   - [TableReloadedEvent]: a table was rebuilt from its definition file
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//
//	bus.Subscribe(event.TypeItemsChanged, func(e event.Event) {
//	    changed := e.(event.ItemsChangedEvent)
//	    log.Printf("section %d: %s %v", changed.SectionIndex, changed.Op, changed.Indexes)
//	})
//
//	bus.SubscribeAll(func(e event.Event) {
//	    log.Printf("event: %s at %v", e.EventType(), e.Timestamp())
//	})
//
// Handlers run synchronously on the publishing goroutine. A panicking
// handler is logged and does not stop delivery to the others.
package event
