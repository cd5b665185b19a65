package validations

// Error is an individual validation error: a human-readable message plus an
// optional detail value of the caller's choice carrying additional context
// (for example, an error-kind enum or the offending input).
//
// Error is an immutable value type. The message is accepted as-is; whether an
// empty message is meaningful is the caller's responsibility.
type Error[T any] struct {
	message string
	detail  *T
}

// NewError constructs a validation error with the given message.
func NewError[T any](message string) Error[T] {
	return Error[T]{message: message}
}

// NewErrorWithDetail constructs a validation error with the given message and
// additional detail.
func NewErrorWithDetail[T any](message string, detail T) Error[T] {
	return Error[T]{message: message, detail: &detail}
}

// Message returns the human-readable message explaining the error.
func (e Error[T]) Message() string {
	return e.message
}

// Detail returns the additional contextual information about the error.
// The second return value reports whether a detail was supplied.
func (e Error[T]) Detail() (T, bool) {
	if e.detail == nil {
		var zero T
		return zero, false
	}
	return *e.detail, true
}

// Error implements the error interface, returning the message.
func (e Error[T]) Error() string {
	return e.message
}

// SimpleError is an Error with no custom detail, to avoid the generic
// parameter when it is not needed.
type SimpleError = Error[struct{}]

// NewSimpleError constructs a validation error with no custom detail.
func NewSimpleError(message string) SimpleError {
	return NewError[struct{}](message)
}
