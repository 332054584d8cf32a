package catalog

import (
	"fmt"
	"reflect"

	"mapping-verifier/field"
	"mapping-verifier/internal/common"
)

// ValuesFor resolves the ordered test values for f. The sample is the
// field's value in a freshly constructed source instance; it is only
// consulted to infer the element type of an interface-typed collection.
func (c *Catalog) ValuesFor(f field.Ref, sample any) ([]any, error) {
	e, err := c.resolve(f, sample)
	if err != nil {
		return nil, err
	}

	return append([]any(nil), e.values...), nil
}

// TrainingFor resolves the single training value for f.
func (c *Catalog) TrainingFor(f field.Ref, sample any) (any, error) {
	e, err := c.resolve(f, sample)
	if err != nil {
		return nil, err
	}

	return e.training, nil
}

func (c *Catalog) resolve(f field.Ref, sample any) (entry, error) {
	if e, ok := c.fields[f.Name]; ok {
		return conformedEntry(e, f)
	}

	return c.resolveType(f.Type, f, sample)
}

// conformedEntry coerces a field-level entry to the field's declared type.
// Field entries are registered before the field's type is known, so the
// coercion has to happen at lookup time.
func conformedEntry(e entry, f field.Ref) (entry, error) {
	training, err := conform(e.training, f.Type)
	if err != nil {
		return entry{}, &NoTestDataError{Field: f.Name, Type: f.Type, Cause: err}
	}

	out := entry{training: training, values: make([]any, 0, len(e.values))}

	for _, v := range e.values {
		cv, err := conform(v, f.Type)
		if err != nil {
			return entry{}, &NoTestDataError{Field: f.Name, Type: f.Type, Cause: err}
		}

		out.values = append(out.values, cv)
	}

	return out, nil
}

// resolveType walks the fallback tiers: direct entry, generated entry,
// pointer synthesis, slice synthesis.
func (c *Catalog) resolveType(t reflect.Type, f field.Ref, sample any) (entry, error) {
	if e, ok := c.types[t]; ok {
		return e, nil
	}

	if e, ok := c.generated[t]; ok {
		return e, nil
	}

	if e, ok := c.generate(t); ok {
		c.generated[t] = e
		return e, nil
	}

	switch t.Kind() {
	case reflect.Ptr:
		return c.pointerEntry(t, f, sample)
	case reflect.Slice:
		return c.sliceEntry(t, f, sample)
	default:
		return entry{}, &NoTestDataError{Field: f.Name, Type: t}
	}
}

// generate derives an entry for t from the first registered type sharing
// t's kind whose every value converts cleanly.
func (c *Catalog) generate(t reflect.Type) (entry, bool) {
	for _, g := range c.typeOrder {
		if g == t || g.Kind() != t.Kind() || !g.ConvertibleTo(t) {
			continue
		}

		src := c.types[g]

		e := entry{values: make([]any, 0, len(src.values))}

		training, err := conform(src.training, t)
		if err != nil {
			continue
		}

		e.training = training

		ok := true

		for _, v := range src.values {
			cv, err := conform(v, t)
			if err != nil {
				ok = false
				break
			}

			e.values = append(e.values, cv)
		}

		if ok {
			return e, true
		}
	}

	return entry{}, false
}

// pointerEntry boxes the element type's values and appends an explicit
// nil, unless the field was marked non-null.
func (c *Catalog) pointerEntry(t reflect.Type, f field.Ref, sample any) (entry, error) {
	elem, err := c.resolveType(t.Elem(), f, sample)
	if err != nil {
		return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
	}

	e := entry{values: make([]any, 0, len(elem.values)+1)}

	training, err := boxValue(elem.training, t)
	if err != nil {
		return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
	}

	e.training = training

	for _, v := range elem.values {
		bv, err := boxValue(v, t)
		if err != nil {
			return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
		}

		e.values = append(e.values, bv)
	}

	if !c.IsNonNull(f.Name) {
		e.values = append(e.values, nil)
	}

	return e, nil
}

// sliceEntry synthesizes one singleton collection per element value, one
// empty collection and one collection holding every element value. The
// training value is a singleton of the element training value.
func (c *Catalog) sliceEntry(t reflect.Type, f field.Ref, sample any) (entry, error) {
	elemType, err := c.elementType(t, f, sample)
	if err != nil {
		return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
	}

	elem, err := c.resolveType(elemType, f, nil)
	if err != nil {
		return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
	}

	training, err := makeSlice(t, elem.training)
	if err != nil {
		return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
	}

	e := entry{
		training: training,
		values:   make([]any, 0, len(elem.values)+2),
	}

	for _, v := range elem.values {
		sv, err := makeSlice(t, v)
		if err != nil {
			return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
		}

		e.values = append(e.values, sv)
	}

	e.values = append(e.values, reflect.MakeSlice(t, 0, 0).Interface())

	all, err := makeSlice(t, elem.values...)
	if err != nil {
		return entry{}, &NoTestDataError{Field: f.Name, Type: t, Cause: err}
	}

	e.values = append(e.values, all)

	return e, nil
}

// elementType picks the element type of a collection field: the explicit
// hint first, then the static element type, then the type of a sampled
// element.
func (c *Catalog) elementType(t reflect.Type, f field.Ref, sample any) (reflect.Type, error) {
	if hint, ok := c.elemHints[f.Name]; ok {
		return hint, nil
	}

	if t.Elem().Kind() != reflect.Interface {
		return t.Elem(), nil
	}

	if !common.IsNilValue(sample) {
		sv := reflect.ValueOf(sample)
		if sv.Kind() == reflect.Slice && sv.Len() > 0 {
			if ev := sv.Index(0); !ev.IsNil() {
				return reflect.TypeOf(ev.Interface()), nil
			}
		}
	}

	return nil, fmt.Errorf("can't infer the element type of field %s: the collection is empty and no element type hint is set", f.Name)
}

func makeSlice(t reflect.Type, values ...any) (any, error) {
	out := reflect.MakeSlice(t, 0, len(values))

	for _, v := range values {
		cv, err := conform(v, t.Elem())
		if err != nil {
			return nil, err
		}

		if cv == nil {
			out = reflect.Append(out, reflect.Zero(t.Elem()))
			continue
		}

		out = reflect.Append(out, reflect.ValueOf(cv))
	}

	return out.Interface(), nil
}

func boxValue(v any, ptr reflect.Type) (any, error) {
	if common.IsNilValue(v) {
		return reflect.Zero(ptr).Interface(), nil
	}

	cv, err := conform(v, ptr.Elem())
	if err != nil {
		return nil, err
	}

	out := reflect.New(ptr.Elem())
	out.Elem().Set(reflect.ValueOf(cv))

	return out.Interface(), nil
}
