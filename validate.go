package validations

// Validator is a validatable type. T is the detail type carried by the
// resulting errors; use struct{} when no detail is needed.
type Validator[T any] interface {
	// Validate checks the value against its domain rules.
	//
	// A nil result means the value is valid. A non-nil result must contain
	// at least one error (returning a non-nil empty container is a contract
	// violation). Implementations are expected to check every field and
	// aggregate all failures rather than stopping at the first one: add
	// whole-value errors with Add, field errors with AddFieldError, and
	// attach a nested value's own Validate result with AddField.
	Validate() *Errors[T]
}
