package profile

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
)

// Sink receives a profile's directives. The verifier's configuration core
// implements it; the indirection keeps this package free of the verifier's
// generic types.
type Sink interface {
	IgnoreTargetFields(names ...string)
	NonNullFields(names ...string)
	ElementType(field string, elem reflect.Type)
	IgnoreEnumNames(names ...string)
	TestValuesForField(name string, training any, values ...any)
	TestValuesForType(t reflect.Type, training any, values ...any)
	Override(source, target string, expected any)
	OverrideForValue(source, target string, when, expected any)
}

// Apply validates p and feeds its directives into the sink. Validation
// errors abort before the sink sees anything.
func Apply(p *Profile, sink Sink, res *Resolver) error {
	if p == nil {
		return errors.New("profile is nil")
	}

	if sink == nil {
		return errors.New("profile sink is nil")
	}

	if res == nil {
		res = NewResolver()
	}

	if diags := Validate(p, res); diags.HasErrors() {
		return diags.Error()
	}

	if len(p.Ignore) > 0 {
		sink.IgnoreTargetFields(p.Ignore...)
	}

	if len(p.NonNull) > 0 {
		sink.NonNullFields(p.NonNull...)
	}

	if len(p.EnumIgnore) > 0 {
		sink.IgnoreEnumNames(p.EnumIgnore...)
	}

	for _, field := range sortedKeys(p.ElementTypes) {
		elem, err := res.Resolve(p.ElementTypes[field])
		if err != nil {
			return fmt.Errorf("element type of field %s: %w", field, err)
		}

		sink.ElementType(field, elem)
	}

	for _, tv := range p.Values.Types {
		t, training, values, err := res.conformTypeValues(tv)
		if err != nil {
			return err
		}

		sink.TestValuesForType(t, training, values...)
	}

	for _, fv := range p.Values.Fields {
		training, values, err := res.conformFieldValues(fv)
		if err != nil {
			return err
		}

		sink.TestValuesForField(fv.Field, training, values...)
	}

	for _, o := range p.Overrides {
		if o.When != nil {
			sink.OverrideForValue(o.Source, o.Target, *o.When, o.Expected)
			continue
		}

		sink.Override(o.Source, o.Target, o.Expected)
	}

	return nil
}

func (r *Resolver) conformTypeValues(tv TypeValuesDef) (reflect.Type, any, []any, error) {
	t, err := r.Resolve(tv.Type)
	if err != nil {
		return nil, nil, nil, err
	}

	training, err := r.Conform(tv.Training, t)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("training value for type %s: %w", tv.Type, err)
	}

	values := make([]any, 0, len(tv.Values))

	for _, v := range tv.Values {
		cv, err := r.Conform(v, t)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("test value for type %s: %w", tv.Type, err)
		}

		values = append(values, cv)
	}

	return t, training, values, nil
}

func (r *Resolver) conformFieldValues(fv FieldValuesDef) (any, []any, error) {
	if fv.Type == "" {
		return fv.Training, append([]any(nil), fv.Values...), nil
	}

	t, err := r.Resolve(fv.Type)
	if err != nil {
		return nil, nil, err
	}

	training, err := r.Conform(fv.Training, t)
	if err != nil {
		return nil, nil, fmt.Errorf("training value for field %s: %w", fv.Field, err)
	}

	values := make([]any, 0, len(fv.Values))

	for _, v := range fv.Values {
		cv, err := r.Conform(v, t)
		if err != nil {
			return nil, nil, fmt.Errorf("test value for field %s: %w", fv.Field, err)
		}

		values = append(values, cv)
	}

	return training, values, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}
