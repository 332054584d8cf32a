package oracle

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"runtime"
	"strings"

	"mapping-verifier/internal/common"
	"mapping-verifier/internal/equal"
)

var (
	ErrIsNotAConverter        = errors.New("provided function is not a recognizable converter")
	ErrConverterIsNotFunction = errors.New("provided converter is not a function")
	ErrDoublePointer          = errors.New("converter function does not support double pointers")
)

// Converter adapts a user-supplied conversion function, or a paired value
// table, into the oracle's highest-precedence strategy for one type pair.
type Converter struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn    reflect.Value
	table []tableEntry
}

type tableEntry struct {
	src, dst any
}

// ParseConverter accepts a unary function and classifies its result
// shape. Besides the plain single-result form, the results may append a
// bool, an error, or both in that order:
//
//	func(Src) Dst
//	func(Src) (Dst, bool)
//	func(Src) (Dst, error)
//	func(Src) (Dst, bool, error)
func ParseConverter(fn any) (Converter, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func {
		return Converter{}, ErrConverterIsNotFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.NumOut() == 0 {
		return Converter{}, ErrIsNotAConverter
	}

	src, dst := fnType.In(0), fnType.Out(0)
	if isDoublePtr(src) || isDoublePtr(dst) {
		return Converter{}, ErrDoublePointer
	}

	pc := runtime.FuncForPC(fnVal.Pointer())
	alias, name := common.Unpack2(strings.SplitN(pc.Name(), ".", 2))

	conv := Converter{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: common.Second(path.Split(alias)),
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Converter{}, ErrIsNotAConverter

	case 1:
		return conv, nil

	case 2:
		tail := fnType.Out(1)

		switch {
		default:
			return Converter{}, ErrIsNotAConverter
		case tail.Kind() == reflect.Bool:
			conv.HasBool = true
		case isError(tail):
			conv.HasErr = true
		}
		return conv, nil

	case 3:
		okT, errT := fnType.Out(1), fnType.Out(2)
		if okT.Kind() != reflect.Bool || !isError(errT) {
			return Converter{}, ErrIsNotAConverter
		}

		conv.HasBool = true
		conv.HasErr = true
		return conv, nil
	}
}

func isDoublePtr(t reflect.Type) bool {
	return t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Ptr
}

// NewValueTable builds a Converter that maps each source value to the
// target value at the same position. Lookup uses structural equality.
func NewValueTable(src, dst reflect.Type, srcVals, dstVals []any) (Converter, error) {
	if src == nil || dst == nil {
		return Converter{}, errors.New("value table requires both a source and a target type")
	}

	if len(srcVals) == 0 || len(srcVals) != len(dstVals) {
		return Converter{}, fmt.Errorf("value table requires matching non-empty value lists, got %d and %d",
			len(srcVals), len(dstVals))
	}

	table := make([]tableEntry, len(srcVals))
	for i := range srcVals {
		table[i] = tableEntry{src: srcVals[i], dst: dstVals[i]}
	}

	return Converter{
		Src:   src,
		Dst:   dst,
		Name:  fmt.Sprintf("table[%s]", TypePair{Src: src, Dst: dst}),
		table: table,
	}, nil
}

// Convert applies the converter to v. Declined values, conversion errors
// and panics inside the underlying function all surface as errors.
func (c Converter) Convert(v any) (out any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("converter %s panicked on value %v: %v", c.Name, v, r)
		}
	}()

	if c.table != nil {
		return c.convertByTable(v)
	}

	in, err := toValue(v, c.Src)
	if err != nil {
		return nil, fmt.Errorf("converter %s: %w", c.Name, err)
	}

	outs := c.fn.Call([]reflect.Value{in})
	res := outs[0].Interface()

	next := 1
	if c.HasBool {
		if !outs[next].Bool() {
			return nil, fmt.Errorf("converter %s declined value %v", c.Name, v)
		}

		next++
	}

	if c.HasErr {
		if fnErr, _ := outs[next].Interface().(error); fnErr != nil {
			return nil, fmt.Errorf("converter %s: %w", c.Name, fnErr)
		}
	}

	return res, nil
}

func (c Converter) convertByTable(v any) (any, error) {
	for _, e := range c.table {
		if equal.Values(e.src, v) {
			return e.dst, nil
		}
	}

	return nil, fmt.Errorf("converter %s has no entry for value %v", c.Name, v)
}

// ConverterSet indexes converters by their exact type pair. The zero value
// is ready to use.
type ConverterSet struct {
	byPair map[TypePair]Converter
}

// Add registers c, replacing any previous converter for the same pair.
func (s *ConverterSet) Add(c Converter) {
	if s.byPair == nil {
		s.byPair = make(map[TypePair]Converter)
	}

	s.byPair[TypePair{Src: c.Src, Dst: c.Dst}] = c
}

// Lookup returns the converter registered for the (src, dst) pair.
func (s *ConverterSet) Lookup(src, dst reflect.Type) (Converter, bool) {
	c, ok := s.byPair[TypePair{Src: src, Dst: dst}]
	return c, ok
}

// Len reports the number of registered converters.
func (s *ConverterSet) Len() int {
	if s == nil {
		return 0
	}

	return len(s.byPair)
}
