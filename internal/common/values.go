package common

import "reflect"

// IsNilValue reports whether v is nil in the null-value sense: the untyped
// nil interface or a typed nil pointer, slice, map, chan, func or interface.
func IsNilValue(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
