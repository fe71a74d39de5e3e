// Package errors provides centralized error definitions and error handling utilities
// for rowkit. It defines contract-violation errors raised by the section model,
// semantic error types, error constructors with context wrapping, and
// classification helpers.
//
// # Error Types
//
// Contract errors are raised by section mutations when a caller breaks the
// documented preconditions of an operation:
//   - ArgumentError: a nil item was passed where an item is required
//   - BoundsError: an index or range lies outside the valid span
//   - CountMismatchError: an index set and an item slice disagree in size
//   - ComparatorError: a sort comparator failed or panicked
//
// Domain errors describe failures of the components built around sections:
//   - SectionError: errors related to attaching and addressing sections
//
// Semantic errors represent common error conditions:
//   - NotFoundError: resource not found
//   - ValidationError: invalid input or state
//
// # Usage
//
//	err := errors.NewBoundsError("insert", 7, 3)
//	if errors.Is(err, errors.ErrOutOfBounds) { ... }
//
//	var bounds *errors.BoundsError
//	if errors.As(err, &bounds) { ... }
//
// Contract errors are programmer errors. None of them is retryable; the caller
// is expected to fix the call site.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors that might indicate a problem but aren't critical.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Contract sentinel errors
var (
	// ErrInvalidArgument indicates that a nil item was passed where an item is required.
	ErrInvalidArgument = New("invalid argument")
	// ErrOutOfBounds indicates that an index or range is outside the valid span.
	ErrOutOfBounds = New("index out of bounds")
	// ErrCountMismatch indicates that parallel index and item collections differ in size.
	ErrCountMismatch = New("count mismatch")
	// ErrComparatorFailure indicates that a sort comparator failed.
	ErrComparatorFailure = New("comparator failure")
)

// Section sentinel errors
var (
	// ErrNotAttached indicates that a section has no owning manager.
	ErrNotAttached = New("section not attached")
	// ErrAlreadyAttached indicates that a section already belongs to a manager.
	ErrAlreadyAttached = New("section already attached")
	// ErrSectionNotFound indicates that a section is not part of a manager.
	ErrSectionNotFound = New("section not found")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
	// ErrInvalidDefinition indicates that a table definition is malformed.
	ErrInvalidDefinition = New("invalid table definition")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// RowkitError is the base interface for all rowkit errors.
// It extends the standard error interface with additional methods for
// error handling and classification.
type RowkitError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsRetryable returns true if the operation may succeed on retry.
	IsRetryable() bool

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	retryable  bool
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsRetryable returns whether the error is retryable.
func (e *baseError) IsRetryable() bool {
	return e.retryable
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// contractError returns the baseError shared by all contract violations.
func contractError(message string) baseError {
	return baseError{
		message:    message,
		severity:   SeverityError,
		retryable:  false,
		userFacing: false,
	}
}

// prefixed formats "kind [k=v, ...]: message[: cause]".
func prefixed(kind string, parts []string, message string, cause error) string {
	prefix := kind
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", kind, strings.Join(parts, ", "))
	}
	if cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, message, cause)
	}
	return fmt.Sprintf("%s: %s", prefix, message)
}

// -----------------------------------------------------------------------------
// Contract Errors
// -----------------------------------------------------------------------------

// ArgumentError reports a nil item passed to an operation that requires one.
//
// Example:
//
//	err := errors.NewArgumentError("add", "item")
//	fmt.Println(err) // "argument error [op=add, arg=item]: item must not be nil"
type ArgumentError struct {
	baseError
	Operation string
	Argument  string
}

// NewArgumentError creates a new ArgumentError.
func NewArgumentError(operation, argument string) *ArgumentError {
	return &ArgumentError{
		baseError: contractError(fmt.Sprintf("%s must not be nil", argument)),
		Operation: operation,
		Argument:  argument,
	}
}

// WithPosition records the position of the offending element inside a batch.
func (e *ArgumentError) WithPosition(pos int) *ArgumentError {
	e.message = fmt.Sprintf("%s at position %d must not be nil", e.Argument, pos)
	return e
}

// Error returns the formatted error message.
func (e *ArgumentError) Error() string {
	var parts []string
	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Operation))
	}
	if e.Argument != "" {
		parts = append(parts, fmt.Sprintf("arg=%s", e.Argument))
	}
	return prefixed("argument error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *ArgumentError) Is(target error) bool {
	if _, ok := target.(*ArgumentError); ok {
		return true
	}
	if target == ErrInvalidArgument {
		return true
	}
	return e.baseError.Is(target)
}

// BoundsError reports an index or range outside the valid span of a sequence.
//
// Example:
//
//	err := errors.NewBoundsError("remove", 5, 3)
//	fmt.Println(err) // "bounds error [op=remove, index=5, count=3]: index out of bounds"
type BoundsError struct {
	baseError
	Operation string
	Index     int
	// Length is set for range arguments; -1 means the argument was a single index.
	Length int
	Count  int
}

// NewBoundsError creates a BoundsError for a single index.
func NewBoundsError(operation string, index, count int) *BoundsError {
	return &BoundsError{
		baseError: contractError(ErrOutOfBounds.Error()),
		Operation: operation,
		Index:     index,
		Length:    -1,
		Count:     count,
	}
}

// NewRangeBoundsError creates a BoundsError for a range argument.
func NewRangeBoundsError(operation string, location, length, count int) *BoundsError {
	return &BoundsError{
		baseError: contractError("range out of bounds"),
		Operation: operation,
		Index:     location,
		Length:    length,
		Count:     count,
	}
}

// Error returns the formatted error message.
func (e *BoundsError) Error() string {
	var parts []string
	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Operation))
	}
	if e.Length >= 0 {
		parts = append(parts, fmt.Sprintf("range={%d, %d}", e.Index, e.Length))
	} else {
		parts = append(parts, fmt.Sprintf("index=%d", e.Index))
	}
	parts = append(parts, fmt.Sprintf("count=%d", e.Count))
	return prefixed("bounds error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *BoundsError) Is(target error) bool {
	if _, ok := target.(*BoundsError); ok {
		return true
	}
	if target == ErrOutOfBounds {
		return true
	}
	return e.baseError.Is(target)
}

// CountMismatchError reports parallel collections of different sizes.
type CountMismatchError struct {
	baseError
	Operation  string
	IndexCount int
	ItemCount  int
}

// NewCountMismatchError creates a new CountMismatchError.
func NewCountMismatchError(operation string, indexCount, itemCount int) *CountMismatchError {
	return &CountMismatchError{
		baseError:  contractError(fmt.Sprintf("%d indexes for %d items", indexCount, itemCount)),
		Operation:  operation,
		IndexCount: indexCount,
		ItemCount:  itemCount,
	}
}

// Error returns the formatted error message.
func (e *CountMismatchError) Error() string {
	var parts []string
	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Operation))
	}
	return prefixed("count mismatch", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *CountMismatchError) Is(target error) bool {
	if _, ok := target.(*CountMismatchError); ok {
		return true
	}
	if target == ErrCountMismatch {
		return true
	}
	return e.baseError.Is(target)
}

// ComparatorError reports a failed sort. Either Cause holds the error the
// comparator returned, or Recovered holds the value it panicked with.
type ComparatorError struct {
	baseError
	Operation string
	Recovered any
}

// NewComparatorError creates a ComparatorError wrapping the comparator's error.
func NewComparatorError(operation string, cause error) *ComparatorError {
	e := &ComparatorError{
		baseError: contractError("comparator failed"),
		Operation: operation,
	}
	e.cause = cause
	return e
}

// NewComparatorPanicError creates a ComparatorError from a recovered panic.
func NewComparatorPanicError(operation string, recovered any) *ComparatorError {
	e := &ComparatorError{
		baseError: contractError(fmt.Sprintf("comparator panicked: %v", recovered)),
		Operation: operation,
		Recovered: recovered,
	}
	if err, ok := recovered.(error); ok {
		e.cause = err
	}
	return e
}

// Error returns the formatted error message.
func (e *ComparatorError) Error() string {
	var parts []string
	if e.Operation != "" {
		parts = append(parts, fmt.Sprintf("op=%s", e.Operation))
	}
	return prefixed("comparator error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *ComparatorError) Is(target error) bool {
	if _, ok := target.(*ComparatorError); ok {
		return true
	}
	if target == ErrComparatorFailure {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// SectionError represents errors related to attaching and addressing sections.
//
// Example:
//
//	err := errors.NewSectionError("cannot insert section", errors.ErrAlreadyAttached)
//	err = err.WithSectionID("0b6d...").WithIndex(2)
type SectionError struct {
	baseError
	SectionID string
	Index     int
}

// NewSectionError creates a new SectionError.
func NewSectionError(message string, cause error) *SectionError {
	return &SectionError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			retryable:  false,
			userFacing: true,
		},
		Index: -1, // -1 indicates not set
	}
}

// WithSectionID adds a section ID to the error context.
func (e *SectionError) WithSectionID(id string) *SectionError {
	e.SectionID = id
	return e
}

// WithIndex adds a section index to the error context.
func (e *SectionError) WithIndex(idx int) *SectionError {
	e.Index = idx
	return e
}

// WithSeverity sets the error severity.
func (e *SectionError) WithSeverity(s Severity) *SectionError {
	e.severity = s
	return e
}

// Error returns the formatted error message.
func (e *SectionError) Error() string {
	var parts []string
	if e.SectionID != "" {
		parts = append(parts, fmt.Sprintf("section=%s", e.SectionID))
	}
	if e.Index >= 0 {
		parts = append(parts, fmt.Sprintf("index=%d", e.Index))
	}
	return prefixed("section error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *SectionError) Is(target error) bool {
	if _, ok := target.(*SectionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("definition", "table.yaml")
//	fmt.Println(err) // "definition 'table.yaml' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents invalid input or state.
//
// Example:
//
//	err := errors.NewValidationError("unknown item kind")
//	err = err.WithField("sections[0].items[2].kind").WithValue("slider")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			retryable:  false,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return prefixed("validation error", parts, e.message, e.cause)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if target == ErrInvalidInput {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition
// that may succeed on retry. No error raised by the section model is
// retryable.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}

	var rowkitErr RowkitError
	if As(err, &rowkitErr) {
		return rowkitErr.IsRetryable()
	}
	return false
}

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var rowkitErr RowkitError
	if As(err, &rowkitErr) {
		return rowkitErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement RowkitError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var rowkitErr RowkitError
	if As(err, &rowkitErr) {
		return rowkitErr.Severity()
	}
	return SeverityError
}

// IsContractViolation returns true if the error was raised because a caller
// broke the preconditions of a section operation.
func IsContractViolation(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrInvalidArgument) || Is(err, ErrOutOfBounds) ||
		Is(err, ErrCountMismatch) || Is(err, ErrComparatorFailure)
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to build table")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
