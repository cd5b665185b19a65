// Package validations provides a minimal, type-safe way to check the validity of arbitrary values.
//
// The Validator interface declares a single Validate method that runs arbitrary validation
// logic and reports the outcome. A nil result indicates a valid value. A non-nil *Errors
// describes why the value failed validation, distinguishing errors about the value as a
// whole ("base" errors) from errors attached to specific named fields.
//
// An individual failure is represented by Error, which carries a human-readable message
// and an optional value of the caller's choice with additional machine-usable context.
// Errors is recursive: a field entry is itself a full *Errors, so a field whose value is
// a validated sub-object keeps its own field-level errors reachable by path.
//
// Key Features:
//
//   - Type-safe error details using generics
//   - Recursive field nesting with merge-on-repeat semantics
//   - Insertion-order preservation for base errors
//   - Zero runtime dependencies
//
// Basic Usage:
//
//	func (e AddressBookEntry) Validate() *validations.Errors[Detail] {
//		errs := validations.New[Detail]()
//
//		if e.CellNumber == nil && e.HomeNumber == nil {
//			errs.Add(validations.NewError[Detail]("at least one phone number is required"))
//		}
//		if e.Name == "" {
//			errs.AddFieldError("name", validations.NewError[Detail]("can't be blank"))
//		}
//		if e.Email != nil {
//			errs.AddField("email", e.Email.Validate())
//		}
//
//		if errs.IsEmpty() {
//			return nil
//		}
//		return errs
//	}
//
// Querying the result:
//
//	if errs := entry.Validate(); errs != nil {
//		for _, err := range errs.Base() {
//			fmt.Println(err.Message())
//		}
//		if nested := errs.Field("address"); nested != nil {
//			if zip := nested.Field("zip"); zip != nil {
//				// two chained Field calls reach the nested container
//			}
//		}
//	}
//
// Validation logic is expected to aggregate, not short-circuit: a Validate
// implementation checks every field and returns the complete picture in one pass.
//
// Implementing Validator keeps domain-level validation decoupled from construction and
// deserialization. A value decoded from JSON or another external format can be checked
// after the fact, which is not possible when validation lives only inside constructor
// functions.
package validations
