// Package try shortens (value, error) handling in tests and setup code.
package try

// something have method `Fatal`.
//
// For example in standard libraries: *testing.T, log.Logger
type Fataler interface {
	Fatal(...any)
}

// Result is a pair of (T, error).
//
// When error is nil, the Result is "ok", and T value is valid.
type Result[T any] struct {
	value T
	err   error
}

func To[T any](value T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: value}
}

// Get returns (value, nil) if ok, otherwise (zero value, error).
func (r Result[T]) Get() (T, error) {
	return r.value, r.err
}

func (r Result[T]) OrDefault(d T) T {
	if r.err != nil {
		return d
	}
	return r.value
}

// OrFatal returns the value if ok. Otherwise, it calls ftl.Fatal(err).
//
// If ftl has "Helper()" method (like *testing.T), also that is called before `Fatal`.
func (r Result[T]) OrFatal(ftl Fataler) T {
	if r.err == nil {
		return r.value
	}
	if hlp, ok := ftl.(interface{ Helper() }); ok {
		hlp.Helper()
	}
	ftl.Fatal(r.err)
	return *new(T)
}
