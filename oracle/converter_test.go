package oracle_test

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-verifier/oracle"
)

type labeledError interface {
	error
	Label() string
}

func noArgs() { panic("unused") }

func tailSwapped(int) (string, error, bool) { panic("unused") }

func fullTail(int) (string, bool, error) { panic("unused") }

func labeledErr(int) (string, labeledError) { panic("unused") }

func ExampleParseConverter() {
	show := func(c oracle.Converter, err error) {
		if err != nil {
			fmt.Println("rejected:", err)
			return
		}

		fmt.Printf("%s.%s: %v -> %v bool=%v err=%v\n",
			c.PackageAlias, c.Name, c.Src.Kind(), c.Dst.Kind(), c.HasBool, c.HasErr)
	}

	show(oracle.ParseConverter(fullTail))
	show(oracle.ParseConverter(strconv.Itoa))
	show(oracle.ParseConverter(strconv.Atoi))
	show(oracle.ParseConverter(labeledErr))
	show(oracle.ParseConverter(noArgs))
	show(oracle.ParseConverter(tailSwapped))

	// Output:
	// oracle_test.fullTail: int -> string bool=true err=true
	// strconv.Itoa: int -> string bool=false err=false
	// strconv.Atoi: string -> int bool=false err=true
	// oracle_test.labeledErr: int -> string bool=false err=true
	// rejected: provided function is not a recognizable converter
	// rejected: provided function is not a recognizable converter
}

func TestParseConverterRejects(t *testing.T) {
	t.Parallel()

	_, err := oracle.ParseConverter(42)
	assert.ErrorIs(t, err, oracle.ErrConverterIsNotFunction)

	_, err = oracle.ParseConverter(nil)
	assert.ErrorIs(t, err, oracle.ErrConverterIsNotFunction)

	_, err = oracle.ParseConverter(func(**int) string { return "" })
	assert.ErrorIs(t, err, oracle.ErrDoublePointer)

	_, err = oracle.ParseConverter(func(int) **string { return nil })
	assert.ErrorIs(t, err, oracle.ErrDoublePointer)
}

func TestConvert(t *testing.T) {
	t.Parallel()

	c, err := oracle.ParseConverter(strconv.Itoa)
	require.NoError(t, err)

	out, err := c.Convert(42)
	require.NoError(t, err)
	assert.Equal(t, "42", out)
}

func TestConvertNamedSourceValue(t *testing.T) {
	t.Parallel()

	type label string

	c, err := oracle.ParseConverter(func(s string) int { return len(s) })
	require.NoError(t, err)

	// Same-kind named values convert into the function's input type.
	out, err := c.Convert(label("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, out)
}

func TestConvertDeclines(t *testing.T) {
	t.Parallel()

	c, err := oracle.ParseConverter(func(v int) (int, bool) { return v, v >= 0 })
	require.NoError(t, err)

	out, err := c.Convert(7)
	require.NoError(t, err)
	assert.Equal(t, 7, out)

	_, err = c.Convert(-7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "declined value -7")
}

func TestConvertError(t *testing.T) {
	t.Parallel()

	errBroken := errors.New("broken")

	c, err := oracle.ParseConverter(func(v int) (int, error) {
		if v == 0 {
			return 0, errBroken
		}

		return v, nil
	})
	require.NoError(t, err)

	out, err := c.Convert(5)
	require.NoError(t, err)
	assert.Equal(t, 5, out)

	_, err = c.Convert(0)
	assert.ErrorIs(t, err, errBroken)
}

func TestConvertPanic(t *testing.T) {
	t.Parallel()

	c, err := oracle.ParseConverter(func(v *int64) int64 { return *v })
	require.NoError(t, err)

	_, err = c.Convert((*int64)(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestNewValueTable(t *testing.T) {
	t.Parallel()

	c, err := oracle.NewValueTable(
		reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(),
		[]any{1, 2, 3}, []any{"bronze", "silver", "gold"},
	)
	require.NoError(t, err)

	out, err := c.Convert(2)
	require.NoError(t, err)
	assert.Equal(t, "silver", out)

	_, err = c.Convert(4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no entry for value 4")
}

func TestNewValueTableRejects(t *testing.T) {
	t.Parallel()

	_, err := oracle.NewValueTable(nil, reflect.TypeOf((*string)(nil)).Elem(), []any{1}, []any{"a"})
	require.Error(t, err)

	_, err = oracle.NewValueTable(reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matching non-empty value lists")

	_, err = oracle.NewValueTable(reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem(), []any{1, 2}, []any{"a"})
	require.Error(t, err)
}

func TestConverterSet(t *testing.T) {
	t.Parallel()

	var s oracle.ConverterSet
	assert.Equal(t, 0, s.Len())

	first, err := oracle.ParseConverter(strconv.Itoa)
	require.NoError(t, err)
	s.Add(first)

	got, ok := s.Lookup(reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, "Itoa", got.Name)

	_, ok = s.Lookup(reflect.TypeOf((*string)(nil)).Elem(), reflect.TypeOf((*int)(nil)).Elem())
	assert.False(t, ok)

	// Same pair replaces
	second, err := oracle.ParseConverter(func(int) string { return "x" })
	require.NoError(t, err)
	s.Add(second)

	assert.Equal(t, 1, s.Len())

	got, _ = s.Lookup(reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem())
	assert.NotEqual(t, "Itoa", got.Name)
}
