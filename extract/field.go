package extract

// Field is an extracted value that may be absent from the source markup.
// Renderers resolve it with OrElse and the documented default for the field.
type Field[T any] struct {
	value T
	ok    bool
}

// Present wraps a value found in the markup.
func Present[T any](v T) Field[T] {
	return Field[T]{value: v, ok: true}
}

// Absent returns a field with no value.
func Absent[T any]() Field[T] {
	return Field[T]{}
}

// Get returns the value and whether it was present.
func (f Field[T]) Get() (T, bool) {
	return f.value, f.ok
}

// OK reports whether the value was present.
func (f Field[T]) OK() bool { return f.ok }

// OrElse returns the value, or def when absent.
func (f Field[T]) OrElse(def T) T {
	if f.ok {
		return f.value
	}
	return def
}

// text returns Present(s) for non-empty s and Absent otherwise.
func text(s string) Field[string] {
	if s == "" {
		return Absent[string]()
	}
	return Present(s)
}
