// Package section holds the ordered rows of one visual table section.
//
// A [Section] owns a slice of [Item] values in display order, an optional
// header and footer (each a title, a [View], or both), and a non-owning
// back-reference to the [Owner] that lists it among its siblings. The
// mutation surface mirrors the primitives a diffing renderer needs: insert,
// remove, replace and move, at single or batch granularity.
//
// # Contracts
//
// Read and replace indexes must lie in [0, Count()), insert indexes in
// [0, Count()]. Violations return a *errors.BoundsError and leave the items
// untouched. Batch operations validate everything before editing, so a
// failed call never leaves a partially applied batch behind.
//
// Nil items are rejected with *errors.ArgumentError. Items are otherwise
// opaque: the section never inspects them beyond the optional [Equaler] and
// [Comparer] capabilities.
//
// # Index
//
// [Section.Index] asks the owner for the section's position on every call.
// It returns [NotAttached] when there is no owner or the owner no longer
// lists the section.
//
// # Concurrency
//
// A Section is not safe for concurrent use. One owner (typically the UI
// goroutine) reads and mutates it at a time.
package section
