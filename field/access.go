package field

import (
	"fmt"
	"reflect"
)

// Get reads the value of f from instance. instance may be the struct value
// itself or any pointer chain ending in it.
func Get(instance any, f Ref) (any, error) {
	v, err := structValue(instance)
	if err != nil {
		return nil, fmt.Errorf("field: reading %s: %w", f.Name, err)
	}

	return v.FieldByIndex(f.Index).Interface(), nil
}

// Set writes v into f on instance, which must be a non-nil pointer ending
// in the struct. A nil v writes the field's zero value. Values of a
// different type are accepted when a same-kind conversion exists.
func Set(instance any, f Ref, v any) error {
	rv := reflect.ValueOf(instance)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("field: setting %s requires a non-nil pointer, got %T", f.Name, instance)
	}

	sv, err := structValue(instance)
	if err != nil {
		return fmt.Errorf("field: setting %s: %w", f.Name, err)
	}

	fv := sv.FieldByIndex(f.Index)
	if !fv.CanSet() {
		return fmt.Errorf("field: %s is not settable", f.Name)
	}

	if v == nil {
		fv.Set(reflect.Zero(fv.Type()))

		return nil
	}

	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(fv.Type()) {
		if val.Type().ConvertibleTo(fv.Type()) && val.Type().Kind() == fv.Type().Kind() {
			val = val.Convert(fv.Type())
		} else {
			return fmt.Errorf("field: cannot assign %s to %s of type %s", val.Type(), f.Name, fv.Type())
		}
	}

	fv.Set(val)

	return nil
}

// structValue unwraps instance down to its struct value.
func structValue(instance any) (reflect.Value, error) {
	if instance == nil {
		return reflect.Value{}, fmt.Errorf("nil instance")
	}

	v := reflect.ValueOf(instance)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return reflect.Value{}, fmt.Errorf("nil %s", v.Type())
		}

		v = v.Elem()
	}

	if v.Kind() != reflect.Struct {
		return reflect.Value{}, fmt.Errorf("%s is not a struct", v.Type())
	}

	return v, nil
}
