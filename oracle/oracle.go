package oracle

import (
	"fmt"
	"reflect"

	"mapping-verifier/internal/common"
	"mapping-verifier/internal/match"
)

// Request carries one expected-value computation: the source value exactly
// as the mapper received it, the declared type pair, and optional element
// types for collection fields whose static element type is an interface.
type Request struct {
	Value      any
	SourceType reflect.Type
	TargetType reflect.Type
	SourceElem reflect.Type
	TargetElem reflect.Type

	// NonNull marks fields declared never to receive null values.
	NonNull bool
}

func (r Request) pair() TypePair {
	return TypePair{Src: r.SourceType, Dst: r.TargetType}
}

// Oracle predicts the value a correct mapper should produce for a source
// value and a declared type pair. It consults nothing beyond its
// registered converters and enums, and mutates nothing.
//
// The zero Oracle allows no strategies; use New.
type Oracle struct {
	Converters *ConverterSet
	Enums      *EnumSet
	Allowed    StrategyMask
}

// New returns an oracle with every strategy enabled.
func New(converters *ConverterSet, enums *EnumSet) *Oracle {
	return &Oracle{Converters: converters, Enums: enums, Allowed: MaskAll}
}

// Failure reports a request no strategy recognized, or one whose
// applicable strategy rejected the value.
type Failure struct {
	Pair     TypePair
	Value    any
	Strategy Strategy
	Reason   error
}

func (f *Failure) Error() string {
	if f.Reason != nil {
		return fmt.Sprintf("%s failed for %s: %v", f.Strategy, f.Pair, f.Reason)
	}

	return fmt.Sprintf("no applicable mapping strategy for %s", f.Pair)
}

func (f *Failure) Unwrap() error {
	return f.Reason
}

type step struct {
	strategy Strategy
	apply    func(*Oracle, Request) (any, bool, error)
}

// chain is the fixed strategy precedence. It is populated in init to
// break the initialization cycle chain -> fromCollection -> Expect ->
// chain that a package-level initializer would create.
var chain []step

func init() {
	chain = []step{
		{StrategyConverter, (*Oracle).fromConverter},
		{StrategyCollection, (*Oracle).fromCollection},
		{StrategyIdentity, (*Oracle).fromIdentity},
		{StrategyEnumToEnum, (*Oracle).fromEnumToEnum},
		{StrategyStringToEnum, (*Oracle).fromStringToEnum},
		{StrategyEnumToString, (*Oracle).fromEnumToString},
		{StrategyConstruct, (*Oracle).fromConstruct},
		{StrategyGetter, (*Oracle).fromGetter},
		{StrategyUnbox, (*Oracle).fromUnbox},
	}
}

// Expect walks the chain in precedence order. Each strategy reports
// applicability separately from success: an inapplicable strategy passes
// to the next one, while an applicable strategy that rejects the value
// stops the walk with a Failure.
func (o *Oracle) Expect(req Request) (any, Strategy, error) {
	if req.SourceType == nil || req.TargetType == nil {
		return nil, StrategyNone, fmt.Errorf("expected-value request needs both types, got %s", req.pair())
	}

	for _, s := range chain {
		if !o.Allowed.Has(s.strategy) {
			continue
		}

		v, ok, err := s.apply(o, req)
		if err != nil {
			return nil, s.strategy, &Failure{Pair: req.pair(), Value: req.Value, Strategy: s.strategy, Reason: err}
		}

		if ok {
			return v, s.strategy, nil
		}
	}

	return nil, StrategyNone, &Failure{Pair: req.pair(), Value: req.Value, Strategy: StrategyNone}
}

func (o *Oracle) fromConverter(req Request) (any, bool, error) {
	if o.Converters == nil {
		return nil, false, nil
	}

	c, ok := o.Converters.Lookup(req.SourceType, req.TargetType)
	if !ok {
		return nil, false, nil
	}

	v, err := c.Convert(req.Value)

	return v, true, err
}

func (o *Oracle) fromCollection(req Request) (any, bool, error) {
	srcKind, dstKind := req.SourceType.Kind(), req.TargetType.Kind()

	switch {
	case srcKind == reflect.Slice && dstKind == reflect.Slice:
		return o.mapSlice(req)
	case srcKind == reflect.Map && dstKind == reflect.Map:
		return o.mapMap(req)
	default:
		return nil, false, nil
	}
}

// mapSlice applies the oracle element-wise and collects the results into
// the target's concrete slice type. A failing element fails the request.
func (o *Oracle) mapSlice(req Request) (any, bool, error) {
	if common.IsNilValue(req.Value) {
		return reflect.Zero(req.TargetType).Interface(), true, nil
	}

	src := reflect.ValueOf(req.Value)
	if src.Kind() != reflect.Slice {
		return nil, true, fmt.Errorf("value %v is not a slice", req.Value)
	}

	srcElem := req.SourceType.Elem()
	if srcElem.Kind() == reflect.Interface && req.SourceElem != nil {
		srcElem = req.SourceElem
	}

	dstElem := req.TargetType.Elem()
	if dstElem.Kind() == reflect.Interface && req.TargetElem != nil {
		dstElem = req.TargetElem
	}

	out := reflect.MakeSlice(req.TargetType, 0, src.Len())

	for i := 0; i < src.Len(); i++ {
		ev := src.Index(i).Interface()

		elemType := srcElem
		if elemType.Kind() == reflect.Interface && ev != nil {
			elemType = reflect.TypeOf(ev)
		}

		got, _, err := o.Expect(Request{Value: ev, SourceType: elemType, TargetType: dstElem, NonNull: req.NonNull})
		if err != nil {
			return nil, true, fmt.Errorf("element %d: %w", i, err)
		}

		gv, err := toValue(got, req.TargetType.Elem())
		if err != nil {
			return nil, true, fmt.Errorf("element %d: %w", i, err)
		}

		out = reflect.Append(out, gv)
	}

	return out.Interface(), true, nil
}

// mapMap preserves keys and applies the oracle to the values.
func (o *Oracle) mapMap(req Request) (any, bool, error) {
	if common.IsNilValue(req.Value) {
		return reflect.Zero(req.TargetType).Interface(), true, nil
	}

	src := reflect.ValueOf(req.Value)
	if src.Kind() != reflect.Map {
		return nil, true, fmt.Errorf("value %v is not a map", req.Value)
	}

	dstKey, dstElem := req.TargetType.Key(), req.TargetType.Elem()
	out := reflect.MakeMapWithSize(req.TargetType, src.Len())

	iter := src.MapRange()
	for iter.Next() {
		key, err := toValue(iter.Key().Interface(), dstKey)
		if err != nil {
			return nil, true, fmt.Errorf("key %v: %w", iter.Key(), err)
		}

		got, _, err := o.Expect(Request{
			Value:      iter.Value().Interface(),
			SourceType: req.SourceType.Elem(),
			TargetType: dstElem,
			NonNull:    req.NonNull,
		})
		if err != nil {
			return nil, true, fmt.Errorf("key %v: %w", iter.Key(), err)
		}

		val, err := toValue(got, dstElem)
		if err != nil {
			return nil, true, fmt.Errorf("key %v: %w", iter.Key(), err)
		}

		out.SetMapIndex(key, val)
	}

	return out.Interface(), true, nil
}

func (o *Oracle) fromIdentity(req Request) (any, bool, error) {
	if req.SourceType == req.TargetType || req.SourceType.AssignableTo(req.TargetType) {
		return req.Value, true, nil
	}

	return nil, false, nil
}

func (o *Oracle) fromEnumToEnum(req Request) (any, bool, error) {
	srcEnum, _ := deref(req.SourceType)
	dstEnum, dstBoxed := deref(req.TargetType)

	if !o.Enums.IsEnum(srcEnum) || !o.Enums.IsEnum(dstEnum) {
		return nil, false, nil
	}

	if common.IsNilValue(req.Value) {
		out, err := nullResult(req.TargetType)
		return out, true, err
	}

	member, found := o.Enums.ByName(dstEnum, Name(derefValue(req.Value)))
	if !found {
		return nil, true, o.noMember(Name(derefValue(req.Value)), dstEnum)
	}

	if dstBoxed {
		out, err := box(member, req.TargetType)
		return out, true, err
	}

	return member, true, nil
}

func (o *Oracle) fromStringToEnum(req Request) (any, bool, error) {
	srcStr, _ := deref(req.SourceType)
	dstEnum, dstBoxed := deref(req.TargetType)

	if srcStr.Kind() != reflect.String || o.Enums.IsEnum(srcStr) || !o.Enums.IsEnum(dstEnum) {
		return nil, false, nil
	}

	if common.IsNilValue(req.Value) {
		out, err := nullResult(req.TargetType)
		return out, true, err
	}

	name := reflect.ValueOf(derefValue(req.Value)).String()

	member, found := o.Enums.ByName(dstEnum, name)
	if !found {
		return nil, true, o.noMember(name, dstEnum)
	}

	if dstBoxed {
		out, err := box(member, req.TargetType)
		return out, true, err
	}

	return member, true, nil
}

func (o *Oracle) fromEnumToString(req Request) (any, bool, error) {
	srcEnum, _ := deref(req.SourceType)
	dstStr, dstBoxed := deref(req.TargetType)

	if !o.Enums.IsEnum(srcEnum) || dstStr.Kind() != reflect.String || o.Enums.IsEnum(dstStr) {
		return nil, false, nil
	}

	if common.IsNilValue(req.Value) {
		out, err := nullResult(req.TargetType)
		return out, true, err
	}

	name, err := toValue(Name(derefValue(req.Value)), dstStr)
	if err != nil {
		return nil, true, err
	}

	if dstBoxed {
		out, err := box(name.Interface(), req.TargetType)
		return out, true, err
	}

	return name.Interface(), true, nil
}

// fromConstruct covers named-type construction: a conversion between types
// sharing an underlying kind, like string to a named string type.
// Cross-kind numeric widening is not construction; it needs a converter.
func (o *Oracle) fromConstruct(req Request) (any, bool, error) {
	src, dst := req.SourceType, req.TargetType
	if src.Kind() != dst.Kind() || !src.ConvertibleTo(dst) {
		return nil, false, nil
	}

	if common.IsNilValue(req.Value) {
		out, err := nullResult(dst)
		return out, true, err
	}

	v, err := toValue(req.Value, dst)
	if err != nil {
		return nil, true, err
	}

	return v.Interface(), true, nil
}

// fromGetter scans the source type's zero-argument single-result methods
// for one whose result fits the target, preferring accessor-looking names
// and falling back to a sole candidate. Pointer targets over boxable
// element types retry the scan against the element type and box the call
// result.
func (o *Oracle) fromGetter(req Request) (any, bool, error) {
	m, boxed, ok := accessorFor(req.SourceType, req.TargetType)
	if !ok {
		return nil, false, nil
	}

	if common.IsNilValue(req.Value) {
		out, err := nullResult(req.TargetType)
		return out, true, err
	}

	out, err := safeCall(req.Value, m)
	if err != nil {
		return nil, true, err
	}

	if boxed {
		b, err := box(out, req.TargetType)
		return b, true, err
	}

	return out, true, nil
}

func accessorFor(src, dst reflect.Type) (reflect.Method, bool, bool) {
	if m, ok := accessor(src, dst); ok {
		return m, false, true
	}

	if dst.Kind() == reflect.Ptr && isBoxable(dst.Elem()) {
		if m, ok := accessor(src, dst.Elem()); ok {
			return m, true, true
		}
	}

	return reflect.Method{}, false, false
}

// accessor picks the first method with an accessor name, or the only
// candidate when exactly one method qualifies.
func accessor(src, dst reflect.Type) (reflect.Method, bool) {
	var candidates []reflect.Method

	for i := 0; i < src.NumMethod(); i++ {
		m := src.Method(i)
		if !m.IsExported() {
			continue
		}

		// method type includes the receiver as the first argument
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}

		if !m.Type.Out(0).AssignableTo(dst) {
			continue
		}

		if match.IsAccessorName(m.Name) {
			return m, true
		}

		candidates = append(candidates, m)
	}

	if common.IsSingle(candidates) {
		return candidates[0], true
	}

	return reflect.Method{}, false
}

func safeCall(v any, m reflect.Method) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("method %s panicked on value %v: %v", m.Name, v, r)
		}
	}()

	res := m.Func.Call([]reflect.Value{reflect.ValueOf(v)})

	return res[0].Interface(), nil
}

// fromUnbox recognizes (T, *T) pairs over boxable types. Boxing wraps a
// copy of the value; unboxing dereferences. Unboxing null is unanswerable
// and fails the request.
func (o *Oracle) fromUnbox(req Request) (any, bool, error) {
	src, dst := req.SourceType, req.TargetType

	switch {
	case src.Kind() == reflect.Ptr && src.Elem() == dst && isBoxable(dst):
		if common.IsNilValue(req.Value) {
			return nil, true, fmt.Errorf("cannot unbox null %s into %s", typeStr(src), typeStr(dst))
		}

		return reflect.ValueOf(req.Value).Elem().Interface(), true, nil

	case dst.Kind() == reflect.Ptr && dst.Elem() == src && isBoxable(src):
		out, err := box(req.Value, dst)
		return out, true, err

	default:
		return nil, false, nil
	}
}

func (o *Oracle) noMember(name string, enum reflect.Type) error {
	err := fmt.Errorf("no member named %q in enum %s", name, typeStr(enum))

	if closest, ok := match.Closest(name, o.Enums.Names(enum), 2); ok {
		return fmt.Errorf("%w, did you mean %q", err, closest)
	}

	return err
}
