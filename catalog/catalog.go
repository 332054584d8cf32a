package catalog

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"mapping-verifier/internal/common"
	"mapping-verifier/oracle"
)

// testDate is the default temporal training value, fixed so that runs are
// reproducible and unlikely to collide with mapper-produced defaults.
var testDate = time.Date(1977, time.April, 1, 12, 30, 45, 0, time.UTC)

type entry struct {
	training any
	values   []any
}

// Catalog holds per-field and per-type test values, non-null field marks
// and collection element-type hints for one verification session.
type Catalog struct {
	fields    map[string]entry
	types     map[reflect.Type]entry
	typeOrder []reflect.Type
	generated map[reflect.Type]entry
	nonNull   map[string]struct{}
	elemHints map[string]reflect.Type
}

// New returns a catalog preloaded with the built-in defaults. Training
// values are deliberately non-zero and non-empty so perturbations are
// visible against freshly constructed instances.
func New() *Catalog {
	c := &Catalog{
		fields:    make(map[string]entry),
		types:     make(map[reflect.Type]entry),
		generated: make(map[reflect.Type]entry),
		nonNull:   make(map[string]struct{}),
		elemHints: make(map[string]reflect.Type),
	}

	c.register("A test string.", "A test string.", "")
	c.register(true, true, false)

	c.register(1, math.MinInt, math.MaxInt, 1, -1, 0)
	c.register(int8(1), int8(math.MinInt8), int8(math.MaxInt8), int8(1), int8(-1), int8(0))
	c.register(int16(1), int16(math.MinInt16), int16(math.MaxInt16), int16(1), int16(-1), int16(0))
	c.register(int32(1), int32(math.MinInt32), int32(math.MaxInt32), int32(1), int32(-1), int32(0))
	c.register(int64(1), int64(math.MinInt64), int64(math.MaxInt64), int64(1), int64(-1), int64(0))

	c.register(uint(1), uint(0), uint(1), uint(math.MaxUint))
	c.register(uint8(1), uint8(0), uint8(1), uint8(math.MaxUint8))
	c.register(uint16(1), uint16(0), uint16(1), uint16(math.MaxUint16))
	c.register(uint32(1), uint32(0), uint32(1), uint32(math.MaxUint32))
	c.register(uint64(1), uint64(0), uint64(1), uint64(math.MaxUint64))

	c.register(float32(1), float32(-math.MaxFloat32), float32(math.MaxFloat32), float32(1), float32(-1), float32(0))
	c.register(float64(1), -math.MaxFloat64, math.MaxFloat64, float64(1), float64(-1), float64(0))

	c.register(testDate, testDate, time.Unix(0, 0).UTC())
	c.register(time.Second, time.Duration(math.MinInt64), time.Duration(math.MaxInt64),
		time.Second, -time.Second, time.Duration(0))

	return c
}

// register installs a default entry, taking the type from the training value.
func (c *Catalog) register(training any, values ...any) {
	t := reflect.TypeOf(training)

	c.types[t] = entry{training: training, values: values}
	c.typeOrder = append(c.typeOrder, t)
}

// SetForType registers test values for every field of type t. Values must
// be of t or share its kind; a registration replaces any previous one.
// With no values the training value doubles as the only test value.
func (c *Catalog) SetForType(t reflect.Type, training any, values ...any) error {
	if t == nil {
		return errors.New("test value type is nil")
	}

	e, err := newEntry(t, training, values)
	if err != nil {
		return err
	}

	if _, seen := c.types[t]; !seen {
		c.typeOrder = append(c.typeOrder, t)
	}

	c.types[t] = e
	clear(c.generated)

	return nil
}

// SetForField registers test values for one field name, taking precedence
// over any type-level entry. With no values the training value doubles as
// the only test value.
func (c *Catalog) SetForField(name string, training any, values ...any) error {
	if name == "" {
		return errors.New("field name is empty")
	}

	if len(values) == 0 {
		values = []any{training}
	}

	c.fields[name] = entry{training: training, values: append([]any(nil), values...)}

	return nil
}

// MarkNonNull excludes nil from the value ranges of the named fields.
func (c *Catalog) MarkNonNull(names ...string) {
	for _, n := range names {
		c.nonNull[n] = struct{}{}
	}
}

// IsNonNull reports whether the field was marked non-null.
func (c *Catalog) IsNonNull(name string) bool {
	_, ok := c.nonNull[name]
	return ok
}

// SetElemHint declares the element type of a collection field whose static
// element type is an interface.
func (c *Catalog) SetElemHint(field string, elem reflect.Type) error {
	if field == "" {
		return errors.New("field name is empty")
	}

	if elem == nil {
		return fmt.Errorf("element type hint for field %s is nil", field)
	}

	c.elemHints[field] = elem

	return nil
}

// ElemHint returns the declared element type of a collection field.
func (c *Catalog) ElemHint(field string) (reflect.Type, bool) {
	t, ok := c.elemHints[field]
	return t, ok
}

// AutoPopulateEnums registers an entry for every enum type the catalog has
// no values for yet: all members minus the ignored names, trained on the
// first member.
func (c *Catalog) AutoPopulateEnums(enums *oracle.EnumSet) error {
	for _, t := range enums.Types() {
		if _, seen := c.types[t]; seen {
			continue
		}

		members := enums.Members(t)

		training, ok := common.First(members)
		if !ok {
			return fmt.Errorf("enum %s has no usable members, all are ignored", t)
		}

		if err := c.SetForType(t, training, members...); err != nil {
			return err
		}
	}

	return nil
}

func newEntry(t reflect.Type, training any, values []any) (entry, error) {
	e := entry{}

	tv, err := conform(training, t)
	if err != nil {
		return entry{}, fmt.Errorf("training value: %w", err)
	}

	e.training = tv

	if len(values) == 0 {
		e.values = []any{tv}
		return e, nil
	}

	e.values = make([]any, 0, len(values))

	for _, v := range values {
		cv, err := conform(v, t)
		if err != nil {
			return entry{}, err
		}

		e.values = append(e.values, cv)
	}

	return e, nil
}

// conform coerces v to an exact value of t, allowing same-kind named
// conversions. Nil stays nil for nilable types.
func conform(v any, t reflect.Type) (any, error) {
	if common.IsNilValue(v) {
		if !nilable(t) {
			return nil, fmt.Errorf("null is not a valid test value for %s", t)
		}

		return nil, nil
	}

	vt := reflect.TypeOf(v)

	switch {
	case vt == t:
		return v, nil
	case vt.AssignableTo(t):
		return v, nil
	case vt.Kind() == t.Kind() && vt.ConvertibleTo(t):
		return reflect.ValueOf(v).Convert(t).Interface(), nil
	default:
		return nil, fmt.Errorf("test value %v has type %s, want %s", v, vt, t)
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
