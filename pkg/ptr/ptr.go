package ptr

// New returns a pointer to the provided value of any type T.
func New[T any](v T) *T { return &v }
