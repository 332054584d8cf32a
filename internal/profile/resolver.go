package profile

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"mapping-verifier/internal/common"
	"mapping-verifier/internal/match"
)

// Resolver maps profile type names to reflect types. Basic Go types and
// two temporal types are built in; domain types become resolvable through
// registration.
type Resolver struct {
	named map[string]reflect.Type
}

// NewResolver returns a resolver preloaded with the built-in type table.
func NewResolver() *Resolver {
	r := &Resolver{named: make(map[string]reflect.Type)}

	for _, v := range []any{
		"", false,
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0),
		float32(0), float64(0),
		time.Time{}, time.Duration(0),
	} {
		t := reflect.TypeOf(v)
		r.named[t.String()] = t
	}

	return r
}

// RegisterType makes t resolvable under the given name.
func (r *Resolver) RegisterType(name string, t reflect.Type) error {
	if name == "" {
		return fmt.Errorf("type name for %s is empty", t)
	}

	if t == nil {
		return fmt.Errorf("type registered as %q is nil", name)
	}

	r.named[name] = t

	return nil
}

// RegisterTypeOf registers the sample's dynamic type under its natural
// name, the package alias joined with the type name.
func (r *Resolver) RegisterTypeOf(sample any) error {
	t := reflect.TypeOf(sample)
	if t == nil {
		return fmt.Errorf("cannot register the type of a nil sample")
	}

	name := t.String()
	if alias := common.PkgAlias(t.PkgPath()); alias != "" && t.Name() != "" {
		name = alias + "." + t.Name()
	}

	return r.RegisterType(name, t)
}

// Names returns every resolvable type name, unordered.
func (r *Resolver) Names() []string {
	out := make([]string, 0, len(r.named))
	for name := range r.named {
		out = append(out, name)
	}

	return out
}

// Resolve turns a profile type name into a reflect type. Pointer and slice
// forms compose: "*int64", "[]string", "[]*store.Order".
func (r *Resolver) Resolve(name string) (reflect.Type, error) {
	name = strings.TrimSpace(name)

	switch {
	case name == "":
		return nil, fmt.Errorf("type name is empty")

	case strings.HasPrefix(name, "*"):
		elem, err := r.Resolve(name[1:])
		if err != nil {
			return nil, err
		}

		return reflect.PointerTo(elem), nil

	case strings.HasPrefix(name, "[]"):
		elem, err := r.Resolve(name[2:])
		if err != nil {
			return nil, err
		}

		return reflect.SliceOf(elem), nil
	}

	if t, ok := r.named[name]; ok {
		return t, nil
	}

	return nil, fmt.Errorf("unknown type %q, register it before loading the profile", name)
}

// Suggestion returns close matches for an unresolvable type name.
func (r *Resolver) Suggestion(name string) []string {
	if closest, ok := match.Closest(name, r.Names(), 3); ok {
		return []string{closest}
	}

	return nil
}

// Conform coerces a decoded YAML scalar to an exact value of t. Integer
// coercions are range-checked; temporal types accept their textual forms.
func (r *Resolver) Conform(v any, t reflect.Type) (any, error) {
	if v == nil {
		if !nilable(t) {
			return nil, fmt.Errorf("null is not a valid %s value", t)
		}

		return nil, nil
	}

	if t.Kind() == reflect.Ptr {
		elem, err := r.Conform(v, t.Elem())
		if err != nil {
			return nil, err
		}

		out := reflect.New(t.Elem())
		out.Elem().Set(reflect.ValueOf(elem))

		return out.Interface(), nil
	}

	if t.Kind() == reflect.Slice {
		list, ok := v.([]any)
		if !ok {
			return nil, fmt.Errorf("value %v is not a list, want %s", v, t)
		}

		out := reflect.MakeSlice(t, 0, len(list))

		for _, item := range list {
			elem, err := r.Conform(item, t.Elem())
			if err != nil {
				return nil, err
			}

			if elem == nil {
				out = reflect.Append(out, reflect.Zero(t.Elem()))
				continue
			}

			out = reflect.Append(out, reflect.ValueOf(elem))
		}

		return out.Interface(), nil
	}

	switch t {
	case reflect.TypeOf(time.Time{}):
		return conformTime(v)
	case reflect.TypeOf(time.Duration(0)):
		return conformDuration(v)
	}

	if vt := reflect.TypeOf(v); vt == t || vt.AssignableTo(t) {
		return v, nil
	}

	switch kind := t.Kind(); {
	case kind >= reflect.Int && kind <= reflect.Int64:
		return conformInt(v, t)
	case kind >= reflect.Uint && kind <= reflect.Uint64:
		return conformUint(v, t)
	case kind == reflect.Float32 || kind == reflect.Float64:
		return conformFloat(v, t)
	case kind == reflect.String:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("value %v is not a string, want %s", v, t)
		}

		return reflect.ValueOf(s).Convert(t).Interface(), nil
	case kind == reflect.Bool:
		b, ok := v.(bool)
		if !ok {
			return nil, fmt.Errorf("value %v is not a boolean, want %s", v, t)
		}

		return reflect.ValueOf(b).Convert(t).Interface(), nil
	default:
		return nil, fmt.Errorf("value %v of type %T cannot be coerced to %s", v, v, t)
	}
}

func conformInt(v any, t reflect.Type) (any, error) {
	i, err := asInt64(v)
	if err != nil {
		return nil, fmt.Errorf("%w, want %s", err, t)
	}

	lo, hi := intBounds(t.Kind())
	if !common.InRange(lo, i, hi) {
		return nil, fmt.Errorf("value %d is out of range for %s", i, t)
	}

	return reflect.ValueOf(i).Convert(t).Interface(), nil
}

func conformUint(v any, t reflect.Type) (any, error) {
	i, err := asInt64(v)
	if err != nil {
		return nil, fmt.Errorf("%w, want %s", err, t)
	}

	if i < 0 {
		return nil, fmt.Errorf("value %d is negative, want %s", i, t)
	}

	hi := uintBound(t.Kind())
	if !common.InRange(0, uint64(i), hi) {
		return nil, fmt.Errorf("value %d is out of range for %s", i, t)
	}

	return reflect.ValueOf(uint64(i)).Convert(t).Interface(), nil
}

func conformFloat(v any, t reflect.Type) (any, error) {
	var f float64

	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	default:
		return nil, fmt.Errorf("value %v is not a number, want %s", v, t)
	}

	if t.Kind() == reflect.Float32 && !common.InRange(-math.MaxFloat32, f, math.MaxFloat32) {
		return nil, fmt.Errorf("value %v is out of range for %s", f, t)
	}

	return reflect.ValueOf(f).Convert(t).Interface(), nil
}

func conformTime(v any) (any, error) {
	switch tv := v.(type) {
	case time.Time:
		return tv, nil
	case string:
		ts, err := time.Parse(time.RFC3339, tv)
		if err != nil {
			return nil, fmt.Errorf("value %q is not an RFC 3339 timestamp: %w", tv, err)
		}

		return ts, nil
	default:
		return nil, fmt.Errorf("value %v of type %T is not a timestamp", v, v)
	}
}

func conformDuration(v any) (any, error) {
	switch dv := v.(type) {
	case string:
		d, err := time.ParseDuration(dv)
		if err != nil {
			return nil, fmt.Errorf("value %q is not a duration: %w", dv, err)
		}

		return d, nil
	case int:
		return time.Duration(dv), nil
	case int64:
		return time.Duration(dv), nil
	default:
		return nil, fmt.Errorf("value %v of type %T is not a duration", v, v)
	}
}

func asInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("value %d is too large", n)
		}

		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("value %v is not an integer", n)
		}

		return int64(n), nil
	default:
		return 0, fmt.Errorf("value %v of type %T is not an integer", v, v)
	}
}

func intBounds(k reflect.Kind) (int64, int64) {
	switch k {
	case reflect.Int8:
		return math.MinInt8, math.MaxInt8
	case reflect.Int16:
		return math.MinInt16, math.MaxInt16
	case reflect.Int32:
		return math.MinInt32, math.MaxInt32
	case reflect.Int:
		return math.MinInt, math.MaxInt
	default:
		return math.MinInt64, math.MaxInt64
	}
}

func uintBound(k reflect.Kind) uint64 {
	switch k {
	case reflect.Uint8:
		return math.MaxUint8
	case reflect.Uint16:
		return math.MaxUint16
	case reflect.Uint32:
		return math.MaxUint32
	case reflect.Uint:
		return math.MaxUint
	default:
		return math.MaxUint64
	}
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface, reflect.Chan, reflect.Func:
		return true
	default:
		return false
	}
}
