// Package assert provides a minimal set of test assertions.
package assert

import (
	"reflect"
	"testing"
)

// Tester is the minimal subset of testing.TB needed by the assertions.
type Tester interface {
	Helper()
	Fatalf(string, ...interface{})
}

// Nil fails the test if given value is not nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v instead of %#v because if the value is an error the
		// formatted output is more helpful.
		t.Fatalf("want a nil value, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	if err, ok := value.(error); ok && err == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	}
	return false
}

// Equal fails the test if two values are not equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("values not equal \nwant %T %+v\n got %T %+v", want, want, got, got)
	}
}

// Panics will run provided function and recover any panic. It fails the
// test if no panic was called.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if recover() == nil {
			t.Fatalf("panic expected")
		}
	}()
	fn()
}

// IsErr fails the test if given error is not matching wanted error. This
// function uses the errors package Is semantics when available.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	type iser interface {
		Is(error) bool
	}
	if e, ok := want.(iser); ok && e.Is(got) {
		return
	}
	t.Fatalf("want %q error, got %q", want, got)
}

var _ Tester = (testing.TB)(nil)
