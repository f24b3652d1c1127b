// Package errors provides custom error types for the quotevault system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Common sentinel errors for the quotevault system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrIndexOutOfRange indicates a stale or invalid conflict index
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSyncInProgress indicates a sync cycle is already running
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrRemoteUnavailable indicates that the remote source is temporarily unavailable
	ErrRemoteUnavailable = errors.New("remote unavailable")
)

// NotFoundError represents an error when a record is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure at a store or input boundary
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value interface{}, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// TransportError represents a failed request to the remote source:
// a network error or a non-success HTTP status.
type TransportError struct {
	Operation  string // "fetch" or "submit"
	URL        string
	StatusCode int
	Message    string
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error during %s of %s (status %d): %s", e.Operation, e.URL, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport error during %s of %s: %s", e.Operation, e.URL, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *TransportError) Is(target error) bool {
	if e.StatusCode >= 500 {
		return target == ErrRemoteUnavailable
	}
	return false
}

// NewTransportError creates a new TransportError
func NewTransportError(operation, url string, statusCode int, message string) *TransportError {
	return &TransportError{
		Operation:  operation,
		URL:        url,
		StatusCode: statusCode,
		Message:    message,
	}
}

// ParseError represents a remote payload that could not be decoded
// into the expected shape.
type ParseError struct {
	Format  string // "json", "yaml"
	Source  string // URL or file path
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("parse error in %s from %s: %s", e.Format, e.Source, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, source, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		Source:  source,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during store persistence operations
type IOError struct {
	Operation string // "read", "write", "create", "delete"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// IndexError represents a stale conflict-resolution reference.
// This is a programming-contract error: callers must not present
// indices that no longer reference a pending entry.
type IndexError struct {
	Index  int
	Length int
}

// Error implements the error interface
func (e *IndexError) Error() string {
	return fmt.Sprintf("conflict index %d out of range (%d pending)", e.Index, e.Length)
}

// Is implements errors.Is support
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// NewIndexError creates a new IndexError
func NewIndexError(index, length int) *IndexError {
	return &IndexError{Index: index, Length: length}
}

// SyncError represents an error during a sync cycle
type SyncError struct {
	Phase string // "fetch", "merge", "replicate"
	Err   error
}

// Error implements the error interface
func (e *SyncError) Error() string {
	return fmt.Sprintf("sync error during %s: %v", e.Phase, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *SyncError) Unwrap() error {
	return e.Err
}

// NewSyncError creates a new SyncError
func NewSyncError(phase string, err error) *SyncError {
	return &SyncError{Phase: phase, Err: err}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsIndexOutOfRange checks if an error is a stale index error
func IsIndexOutOfRange(err error) bool {
	return errors.Is(err, ErrIndexOutOfRange)
}

// IsRemoteUnavailable checks if an error indicates remote unavailability
func IsRemoteUnavailable(err error) bool {
	return errors.Is(err, ErrRemoteUnavailable)
}

// IsSyncInProgress checks if an error indicates an in-flight sync cycle
func IsSyncInProgress(err error) bool {
	return errors.Is(err, ErrSyncInProgress)
}

// Helper wrapping functions for common patterns

// WrapValidation wraps an error as a ValidationError
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Field: field, Message: err.Error()}
}

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, source string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, source, err.Error(), err)
}

// WrapTransport wraps an error as a TransportError
func WrapTransport(operation, url string, err error) error {
	if err == nil {
		return nil
	}
	return &TransportError{
		Operation: operation,
		URL:       url,
		Message:   err.Error(),
		Err:       err,
	}
}

// WrapSync wraps an error as a SyncError
func WrapSync(phase string, err error) error {
	if err == nil {
		return nil
	}
	return NewSyncError(phase, err)
}
