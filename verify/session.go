package verify

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"mapping-verifier/field"
	"mapping-verifier/internal/common"
	"mapping-verifier/internal/equal"
	"mapping-verifier/oracle"
)

// session owns one verification run: the frozen baseline pair, the field
// sets of both sides and the oracle assembled from the configuration.
type session[S, T any] struct {
	cfg     *config
	mapper  func(S) T
	factory func() S

	source S
	target T

	sourceFields []field.Ref
	targetFields []field.Ref

	oracle  *oracle.Oracle
	checked int
}

func newSession[S, T any](cfg *config, mapper func(S) T, factory func() S) (*session[S, T], error) {
	srcType := reflect.TypeOf((*S)(nil)).Elem()
	dstType := reflect.TypeOf((*T)(nil)).Elem()

	sourceFields, err := field.Of(srcType)
	if err != nil {
		return nil, &ConfigError{Cause: fmt.Errorf("source type %s: %w", srcType, err)}
	}

	targetFields, err := field.Of(dstType)
	if err != nil {
		return nil, &ConfigError{Cause: fmt.Errorf("target type %s: %w", dstType, err)}
	}

	o := oracle.New(cfg.converters, cfg.enums)
	o.Allowed = cfg.allowed

	return &session[S, T]{
		cfg:          cfg,
		mapper:       mapper,
		factory:      factory,
		sourceFields: sourceFields,
		targetFields: targetFields,
		oracle:       o,
	}, nil
}

// run executes the full protocol: enum defaults, baseline, learning,
// coverage, value checks. The first failure aborts the run.
func (s *session[S, T]) run() (Report, error) {
	if err := s.cfg.catalog.AutoPopulateEnums(s.cfg.enums); err != nil {
		return Report{}, &ConfigError{Cause: err}
	}

	if err := s.baseline(); err != nil {
		return Report{}, err
	}

	m, err := s.learn()
	if err != nil {
		return Report{}, err
	}

	if err := s.coverage(m); err != nil {
		return Report{}, err
	}

	if err := s.checkValues(m); err != nil {
		return Report{}, err
	}

	return s.reportFor(m), nil
}

func (s *session[S, T]) baseline() error {
	src, err := s.newSource()
	if err != nil {
		return err
	}

	s.source = src

	target, err := s.mapOnce(src)
	if err != nil {
		return &ReferenceError{Cause: err}
	}

	if common.IsNilValue(target) {
		return &ReferenceError{Cause: errors.New("mapper returned a nil target")}
	}

	s.target = target

	return nil
}

func (s *session[S, T]) newSource() (S, error) {
	var zero S

	src, err := safeFactory(s.factory)
	if err != nil {
		return zero, &ConstructionError{Cause: err}
	}

	if common.IsNilValue(src) {
		return zero, &ConstructionError{Cause: errors.New("source factory returned nil")}
	}

	return src, nil
}

func safeFactory[S any](factory func() S) (out S, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()

	return factory(), nil
}

func (s *session[S, T]) mapOnce(src S) (out T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoveredError(r)
		}
	}()

	return s.mapper(src), nil
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return fmt.Errorf("panic: %v", r)
}

// applyAndMap builds a fresh source, sets f to v and runs the mapper. Any
// failure on the way is a training failure naming the field and value.
func (s *session[S, T]) applyAndMap(f field.Ref, v any) (T, error) {
	var zero T

	src, err := s.newSource()
	if err != nil {
		return zero, err
	}

	holder := reflect.New(reflect.TypeOf((*S)(nil)).Elem())
	holder.Elem().Set(reflect.ValueOf(src))

	if err := field.Set(holder.Interface(), f, v); err != nil {
		return zero, &TrainingError{Field: f.Name, Value: v, Cause: err}
	}

	trial, err := s.mapOnce(holder.Elem().Interface().(S))
	if err != nil {
		return zero, &TrainingError{Field: f.Name, Value: v, Cause: err}
	}

	if common.IsNilValue(trial) {
		return zero, &TrainingError{Field: f.Name, Value: v, Cause: errors.New("mapper returned a nil target")}
	}

	return trial, nil
}

// sampleOf reads the field's value from the baseline source, used only to
// infer element types of interface-typed collections.
func (s *session[S, T]) sampleOf(f field.Ref) any {
	v, err := field.Get(s.source, f)
	if err != nil {
		return nil
	}

	return v
}

func (s *session[S, T]) coverage(m mapping) error {
	mapped := make(map[string]struct{}, len(m))
	for _, p := range m {
		mapped[p.target.Name] = struct{}{}
	}

	var missing []string

	for _, tf := range s.targetFields {
		if _, ok := mapped[tf.Name]; ok {
			continue
		}

		if _, ignored := s.cfg.ignored[tf.Name]; ignored {
			continue
		}

		missing = append(missing, tf.Name)
	}

	if len(missing) > 0 {
		return &UncoveredTargetsError{Fields: missing}
	}

	return nil
}

func (s *session[S, T]) checkValues(m mapping) error {
	for _, p := range m {
		values, err := s.cfg.catalog.ValuesFor(p.source, s.sampleOf(p.source))
		if err != nil {
			return err
		}

		for _, v := range values {
			if s.cfg.catalog.IsNonNull(p.source.Name) && common.IsNilValue(v) {
				continue
			}

			if err := s.checkValue(p, v); err != nil {
				return err
			}
		}
	}

	return nil
}

func (s *session[S, T]) checkValue(p pair, v any) error {
	trial, err := s.applyAndMap(p.source, v)
	if err != nil {
		return err
	}

	actual, err := field.Get(trial, p.target)
	if err != nil {
		return &ReferenceError{Cause: err}
	}

	expected, overridden, err := s.cfg.overrides.expectedFor(p.source.Name, p.target.Name, v, p.source.Type, p.target.Type)
	if err != nil {
		return &MismatchError{Source: p.source.Name, Target: p.target.Name, Value: v, Cause: err}
	}

	if !overridden {
		expected, err = s.expectedOf(p, v)
		if err != nil {
			return &MismatchError{Source: p.source.Name, Target: p.target.Name, Value: v, Cause: err}
		}
	}

	if !equal.Values(expected, actual) {
		return &MismatchError{
			Source:   p.source.Name,
			Target:   p.target.Name,
			Value:    v,
			Expected: expected,
			Actual:   actual,
			Diff:     equal.Diff(expected, actual),
		}
	}

	s.checked++

	return nil
}

func (s *session[S, T]) expectedOf(p pair, v any) (any, error) {
	req := oracle.Request{
		Value:      v,
		SourceType: p.source.Type,
		TargetType: p.target.Type,
		NonNull:    s.cfg.catalog.IsNonNull(p.source.Name),
	}

	if hint, ok := s.cfg.catalog.ElemHint(p.source.Name); ok {
		req.SourceElem = hint
	}

	if hint, ok := s.cfg.catalog.ElemHint(p.target.Name); ok {
		req.TargetElem = hint
	}

	expected, _, err := s.oracle.Expect(req)

	return expected, err
}

func (s *session[S, T]) reportFor(m mapping) Report {
	rep := Report{Checked: s.checked}

	mapped := make(map[string]struct{}, len(m))

	for _, p := range m {
		mapped[p.source.Name] = struct{}{}
		rep.Mappings = append(rep.Mappings, MappedPair{Source: p.source.Name, Target: p.target.Name})
	}

	for _, f := range s.sourceFields {
		if _, ok := mapped[f.Name]; !ok {
			rep.Unmapped = append(rep.Unmapped, f.Name)
		}
	}

	for name := range s.cfg.ignored {
		rep.Ignored = append(rep.Ignored, name)
	}

	slices.Sort(rep.Ignored)

	return rep
}

// conformTo coerces v to t when a safe conversion exists: same-kind named
// conversions always, numeric conversions only when the value fits.
// Anything else returns v unchanged. Override literals written as untyped
// constants or decoded from a profile arrive as int, float64, string or
// bool and need this coercion before comparison.
func conformTo(v any, t reflect.Type) any {
	if t == nil || common.IsNilValue(v) {
		return v
	}

	rv := reflect.ValueOf(v)

	switch {
	case rv.Type().AssignableTo(t):
		return v
	case rv.Type().Kind() == t.Kind() && rv.Type().ConvertibleTo(t):
		return rv.Convert(t).Interface()
	}

	out := reflect.New(t).Elem()

	switch k, tk := rv.Kind(), t.Kind(); {
	case isIntKind(k) && isIntKind(tk) && !out.OverflowInt(rv.Int()):
		out.SetInt(rv.Int())
	case isIntKind(k) && isUintKind(tk) && rv.Int() >= 0 && !out.OverflowUint(uint64(rv.Int())):
		out.SetUint(uint64(rv.Int()))
	case isUintKind(k) && isUintKind(tk) && !out.OverflowUint(rv.Uint()):
		out.SetUint(rv.Uint())
	case isFloatKind(k) && isFloatKind(tk) && !out.OverflowFloat(rv.Float()):
		out.SetFloat(rv.Float())
	default:
		return v
	}

	return out.Interface()
}

func isIntKind(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Int64
}

func isUintKind(k reflect.Kind) bool {
	return k >= reflect.Uint && k <= reflect.Uint64
}

func isFloatKind(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
