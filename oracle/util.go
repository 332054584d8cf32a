package oracle

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"mapping-verifier/internal/common"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	errType  = reflect.TypeOf((*error)(nil)).Elem()
)

// typeStr renders t with the full package path on named types, so that
// messages stay unambiguous when two packages share a type name.
func typeStr(t reflect.Type) string {
	if t == nil {
		return common.UnknownStr
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeStr(t.Elem())
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	default:
		if t.PkgPath() == "" {
			return t.String()
		}
		return t.PkgPath() + "." + t.Name()
	}
}

func isError(t reflect.Type) bool {
	return t != nil && t.Implements(errType)
}

// isBoxable limits box/unbox pairs to basic kinds plus time.Time, the
// types whose pointer form models an optional value.
func isBoxable(t reflect.Type) bool {
	if t == timeType {
		return true
	}

	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func isNilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}

func deref(t reflect.Type) (reflect.Type, bool) {
	if t.Kind() == reflect.Ptr {
		return t.Elem(), true
	}

	return t, false
}

func derefValue(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && !rv.IsNil() {
		return rv.Elem().Interface()
	}

	return v
}

// toValue readies v for placement into a slot of type t: nil becomes the
// zero value and same-kind named conversions are applied.
func toValue(v any, t reflect.Type) (reflect.Value, error) {
	if common.IsNilValue(v) {
		if !isNilable(t) {
			return reflect.Value{}, fmt.Errorf("cannot place null into non-nullable %s", typeStr(t))
		}

		return reflect.Zero(t), nil
	}

	val := reflect.ValueOf(v)

	switch {
	case val.Type().AssignableTo(t):
		return val, nil
	case val.Type().Kind() == t.Kind() && val.Type().ConvertibleTo(t):
		return val.Convert(t), nil
	default:
		return reflect.Value{}, fmt.Errorf("cannot place %s into %s", typeStr(val.Type()), typeStr(t))
	}
}

// box wraps v into a freshly allocated value of pointer type ptr. A null v
// becomes a typed nil pointer.
func box(v any, ptr reflect.Type) (any, error) {
	if common.IsNilValue(v) {
		return reflect.Zero(ptr).Interface(), nil
	}

	val, err := toValue(v, ptr.Elem())
	if err != nil {
		return nil, err
	}

	out := reflect.New(ptr.Elem())
	out.Elem().Set(val)

	return out.Interface(), nil
}

func nullResult(t reflect.Type) (any, error) {
	if !isNilable(t) {
		return nil, fmt.Errorf("cannot map null into non-nullable %s", typeStr(t))
	}

	return reflect.Zero(t).Interface(), nil
}
