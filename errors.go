package validations

import (
	"errors"
	"slices"
	"strings"
)

// Errors is a collection of validation errors for an invalid value.
//
// It separates base errors (about the value as a whole, not attributable to
// any single field) from field errors, which are keyed by field name and are
// themselves full *Errors values. The nesting is recursive, so a field whose
// value is a validated sub-object keeps its own field-level errors reachable
// by chained Field calls.
//
// The container has a build-then-read lifecycle: validation logic adds errors
// while checking a value, then hands the finished container to the caller,
// which only queries it. There are no removal operations. A container is not
// safe for concurrent mutation; each validation run uses its own instance.
type Errors[T any] struct {
	base   []Error[T]
	fields map[string]*Errors[T]
}

// SimpleErrors is Errors with no custom detail, to avoid the generic
// parameter when it is not needed.
type SimpleErrors = Errors[struct{}]

// New constructs an empty Errors value, the starting state for a validation
// run. The zero value is equally usable.
func New[T any]() *Errors[T] {
	return &Errors[T]{}
}

// Add appends a validation error that is not specific to any field. Base
// errors are kept in the order they were added.
func (e *Errors[T]) Add(err Error[T]) {
	e.base = append(e.base, err)
}

// AddFieldError appends a single validation error for the given field,
// creating the field's container if needed.
func (e *Errors[T]) AddFieldError(field string, err Error[T]) {
	if e.fields == nil {
		e.fields = make(map[string]*Errors[T])
	}
	child, ok := e.fields[field]
	if !ok {
		child = &Errors[T]{}
		e.fields[field] = child
	}
	child.Add(err)
}

// AddField merges the given container into the named field's entry, taking
// ownership of errs.
//
// If errs is nil or empty this is a no-op: empty entries are never created,
// so a Field hit always carries at least one error somewhere in its subtree.
// If the field already has an entry, the incoming base errors are appended
// after the existing ones and the incoming field entries are merged
// recursively under the same rule. Merging rather than overwriting lets a
// delegated Validate result and ad-hoc errors for the same field compose.
func (e *Errors[T]) AddField(field string, errs *Errors[T]) {
	if errs.IsEmpty() {
		return
	}
	if e.fields == nil {
		e.fields = make(map[string]*Errors[T])
	}
	existing, ok := e.fields[field]
	if !ok {
		e.fields[field] = errs
		return
	}
	existing.base = append(existing.base, errs.base...)
	for name, child := range errs.fields {
		existing.AddField(name, child)
	}
}

// Base returns the errors that are not specific to any field, in the order
// they were added, or nil if there are none.
func (e *Errors[T]) Base() []Error[T] {
	if e == nil || len(e.base) == 0 {
		return nil
	}
	return e.base
}

// Field returns the nested container for the given field, or nil if the
// field has no errors.
func (e *Errors[T]) Field(field string) *Errors[T] {
	if e == nil {
		return nil
	}
	return e.fields[field]
}

// Fields returns the names of fields with errors, sorted, or nil if there
// are none. Only direct entries are listed; nested field names are reachable
// through Field.
func (e *Errors[T]) Fields() []string {
	if e == nil || len(e.fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(e.fields))
	for name := range e.fields {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsEmpty returns true if there are no errors. A nil container is empty.
// Field entries are non-empty by construction, so no recursion is needed.
func (e *Errors[T]) IsEmpty() bool {
	return e == nil || (len(e.base) == 0 && len(e.fields) == 0)
}

// Len returns the total number of error records in the tree.
func (e *Errors[T]) Len() int {
	if e == nil {
		return 0
	}
	n := len(e.base)
	for _, child := range e.fields {
		n += child.Len()
	}
	return n
}

// Error implements the error interface, summarizing every message in the
// tree. Base errors come first in insertion order, then field errors sorted
// by name and prefixed with their dotted path.
func (e *Errors[T]) Error() string {
	if e.IsEmpty() {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(e.messages(""), "; ")
}

func (e *Errors[T]) messages(path string) []string {
	parts := make([]string, 0, len(e.base))
	for _, err := range e.base {
		if path == "" {
			parts = append(parts, err.Message())
		} else {
			parts = append(parts, path+": "+err.Message())
		}
	}
	for _, name := range e.Fields() {
		childPath := name
		if path != "" {
			childPath = path + "." + name
		}
		parts = append(parts, e.fields[name].messages(childPath)...)
	}
	return parts
}

// AsErrors extracts a *Errors from an error, unwrapping as needed. It returns
// false if err does not carry a container with a matching detail type.
func AsErrors[T any](err error) (*Errors[T], bool) {
	if err == nil {
		return nil, false
	}
	var errs *Errors[T]
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
