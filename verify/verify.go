package verify

import (
	"errors"
	"reflect"

	"mapping-verifier/internal/profile"
	"mapping-verifier/oracle"
)

// Verifier wires one mapper function to a configuration and runs the
// verification protocol on demand. Configuration calls chain and never
// fail in place; their errors surface when Verify runs.
type Verifier[S, T any] struct {
	cfg    *config
	mapper func(S) T
	report Report
}

// For starts a verifier for the given mapper function.
func For[S, T any](mapper func(S) T) *Verifier[S, T] {
	return &Verifier[S, T]{cfg: newConfig(), mapper: mapper}
}

// IgnoreTargetFields excludes target fields from the coverage check.
func (v *Verifier[S, T]) IgnoreTargetFields(names ...string) *Verifier[S, T] {
	v.cfg.IgnoreTargetFields(names...)
	return v
}

// NonNullFields declares that the named source fields never receive nil;
// nil is dropped from their value ranges.
func (v *Verifier[S, T]) NonNullFields(names ...string) *Verifier[S, T] {
	v.cfg.NonNullFields(names...)
	return v
}

// ElementType declares the element type of a collection field whose static
// element type is an interface.
func (v *Verifier[S, T]) ElementType(field string, elem reflect.Type) *Verifier[S, T] {
	v.cfg.ElementType(field, elem)
	return v
}

// TestValuesForType registers test values for every field whose type
// matches the training value's type.
func (v *Verifier[S, T]) TestValuesForType(training any, values ...any) *Verifier[S, T] {
	t := reflect.TypeOf(training)
	if t == nil {
		v.cfg.fail(errors.New("training value is nil, register values through TestValuesForField instead"))
		return v
	}

	v.cfg.TestValuesForType(t, training, values...)

	return v
}

// TestValuesForField registers test values for one field name, taking
// precedence over type-level values.
func (v *Verifier[S, T]) TestValuesForField(name string, training any, values ...any) *Verifier[S, T] {
	v.cfg.TestValuesForField(name, training, values...)
	return v
}

// Converter registers a conversion function for its (source, target) type
// pair; the oracle prefers it over every other strategy.
func (v *Verifier[S, T]) Converter(fn any) *Verifier[S, T] {
	v.cfg.Converter(fn)
	return v
}

// ConverterTable registers a positional value-to-value conversion for the
// (src, dst) type pair.
func (v *Verifier[S, T]) ConverterTable(src, dst reflect.Type, srcVals, dstVals []any) *Verifier[S, T] {
	v.cfg.ConverterTable(src, dst, srcVals, dstVals)
	return v
}

// Enum declares an enumeration through its members; the type is taken
// from the first member.
func (v *Verifier[S, T]) Enum(members ...any) *Verifier[S, T] {
	v.cfg.Enum(members...)
	return v
}

// IgnoreEnumNames drops the named members from every registered enum.
func (v *Verifier[S, T]) IgnoreEnumNames(names ...string) *Verifier[S, T] {
	v.cfg.IgnoreEnumNames(names...)
	return v
}

// EnumNamesAsValuesForField uses the member names of a registered enum as
// the test values of a string-typed source field.
func (v *Verifier[S, T]) EnumNamesAsValuesForField(name string, enum reflect.Type) *Verifier[S, T] {
	v.cfg.EnumNamesAsValuesForField(name, enum)
	return v
}

// Override declares the expected target value for a learned field pair,
// bypassing the oracle.
func (v *Verifier[S, T]) Override(source, target string, expected any) *Verifier[S, T] {
	v.cfg.Override(source, target, expected)
	return v
}

// OverrideForValue declares the expected target value for one specific
// source value of a learned field pair.
func (v *Verifier[S, T]) OverrideForValue(source, target string, when, expected any) *Verifier[S, T] {
	v.cfg.OverrideForValue(source, target, when, expected)
	return v
}

// OverrideFunc computes the expected target value for a learned field pair
// with a conversion function instead of the oracle.
func (v *Verifier[S, T]) OverrideFunc(source, target string, fn any) *Verifier[S, T] {
	v.cfg.OverrideFunc(source, target, fn)
	return v
}

// Strategies restricts the oracle to the strategies enabled in mask.
func (v *Verifier[S, T]) Strategies(mask oracle.StrategyMask) *Verifier[S, T] {
	v.cfg.Strategies(mask)
	return v
}

// RegisterTypes makes the dynamic types of the samples resolvable by name
// in verification profiles.
func (v *Verifier[S, T]) RegisterTypes(samples ...any) *Verifier[S, T] {
	for _, sample := range samples {
		v.cfg.fail(v.cfg.resolver.RegisterTypeOf(sample))
	}

	return v
}

// LoadProfile reads a YAML verification profile and applies it.
func (v *Verifier[S, T]) LoadProfile(path string) *Verifier[S, T] {
	p, err := profile.LoadFile(path)
	if err != nil {
		v.cfg.fail(err)
		return v
	}

	return v.ApplyProfile(p)
}

// ApplyProfile applies an already loaded verification profile.
func (v *Verifier[S, T]) ApplyProfile(p *profile.Profile) *Verifier[S, T] {
	v.cfg.fail(profile.Apply(p, v.cfg, v.cfg.resolver))
	return v
}

// Verify runs the full protocol against sources built by the factory. The
// factory must return a fresh instance on every call; the protocol invokes
// it once per perturbation.
func (v *Verifier[S, T]) Verify(factory func() S) error {
	if v.mapper == nil {
		return &ConfigError{Cause: errors.New("mapper function is nil")}
	}

	if factory == nil {
		return &ConfigError{Cause: errors.New("source factory is nil")}
	}

	if err := v.cfg.err(); err != nil {
		return err
	}

	s, err := newSession(v.cfg, v.mapper, factory)
	if err != nil {
		return err
	}

	rep, err := s.run()
	if err != nil {
		return err
	}

	v.report = rep

	return nil
}

// VerifyZero runs Verify with zero-value sources: the zero struct for
// value types, a pointer to a zero struct for pointer types.
func (v *Verifier[S, T]) VerifyZero() error {
	return v.Verify(func() S {
		var zero S

		t := reflect.TypeOf(&zero).Elem()
		if t.Kind() == reflect.Ptr {
			return reflect.New(t.Elem()).Interface().(S)
		}

		return zero
	})
}

// Report returns the summary of the last successful Verify run.
func (v *Verifier[S, T]) Report() Report {
	return v.report
}
