// Package equal provides the structural value equality used when diffing
// trial targets against the baseline and when comparing expected against
// actual field values.
//
// Rules:
//   - two null values (nil pointers included) are equal
//   - null against anything non-null is a change
//   - nil and empty slices/maps are equal (mappers commonly return nil
//     for empty inputs)
//   - types with an Equal method (time.Time and friends) compare via it
//   - everything else compares structurally, unexported fields included
package equal

import (
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var opts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateEmpty(),
}

// Values reports whether a and b hold structurally equal values.
func Values(a, b any) bool {
	if isNull(a) || isNull(b) {
		return isNull(a) && isNull(b)
	}

	return cmp.Equal(a, b, opts...)
}

// isNull matches the null senses that short-circuit comparison: untyped
// nil and typed nil pointers. Nil slices and maps fall through to the
// structural comparison, which equates them with their empty forms.
func isNull(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Diff renders a human-readable diff between want and got. Empty when equal.
func Diff(want, got any) string {
	if Values(want, got) {
		return ""
	}

	return cmp.Diff(want, got, opts...)
}
