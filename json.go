package validations

import "encoding/json"

// MarshalJSON encodes the error as {"message": ..., "detail": ...}, omitting
// detail when none was supplied.
func (e Error[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Message string `json:"message"`
		Detail  *T     `json:"detail,omitempty"`
	}{
		Message: e.message,
		Detail:  e.detail,
	})
}

// MarshalJSON encodes the container as {"base": [...], "fields": {...}},
// omitting empty members. Field entries encode recursively, mirroring the
// container's structure. The container is marshal-only: it is produced by
// validation logic, never parsed.
func (e *Errors[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Base   []Error[T]            `json:"base,omitempty"`
		Fields map[string]*Errors[T] `json:"fields,omitempty"`
	}{
		Base:   e.base,
		Fields: e.fields,
	})
}
