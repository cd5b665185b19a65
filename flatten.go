package validations

// Flatten returns every message in the tree keyed by dotted field path, e.g.
// "address.zip". Base errors of the root container appear under the empty
// key. Messages for a given path keep their insertion order. Returns nil if
// the container is empty.
//
// The flat view is convenient for form re-display and for templating layers
// that expect a field→messages map rather than a tree.
func (e *Errors[T]) Flatten() map[string][]string {
	if e.IsEmpty() {
		return nil
	}
	out := make(map[string][]string)
	e.flattenInto("", out)
	return out
}

func (e *Errors[T]) flattenInto(path string, out map[string][]string) {
	for _, err := range e.base {
		out[path] = append(out[path], err.Message())
	}
	for name, child := range e.fields {
		childPath := name
		if path != "" {
			childPath = path + "." + name
		}
		child.flattenInto(childPath, out)
	}
}
