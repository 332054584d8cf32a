package verify

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-verifier/oracle"
)

type distance float64

func TestConformTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		v    any
		typ  reflect.Type
		want any
	}{
		{"assignable untouched", int64(9), reflect.TypeOf((*int64)(nil)).Elem(), int64(9)},
		{"same kind named", 2.5, reflect.TypeOf((*distance)(nil)).Elem(), distance(2.5)},
		{"int widens", 5, reflect.TypeOf((*int64)(nil)).Elem(), int64(5)},
		{"int to uint", 5, reflect.TypeOf((*uint8)(nil)).Elem(), uint8(5)},
		{"uint widens", uint8(7), reflect.TypeOf((*uint64)(nil)).Elem(), uint64(7)},
		{"float narrows when it fits", 1.5, reflect.TypeOf((*float32)(nil)).Elem(), float32(1.5)},
		{"int overflow unchanged", 300, reflect.TypeOf((*int8)(nil)).Elem(), 300},
		{"negative to uint unchanged", -1, reflect.TypeOf((*uint64)(nil)).Elem(), -1},
		{"cross family unchanged", "9", reflect.TypeOf((*int64)(nil)).Elem(), "9"},
		{"nil unchanged", nil, reflect.TypeOf((*int64)(nil)).Elem(), nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, conformTo(tt.v, tt.typ))
		})
	}
}

func TestOverrideSetLookup(t *testing.T) {
	t.Parallel()

	var s overrideSet

	s.add(override{source: "Plan", target: "Fee", expected: 1})
	s.add(override{source: "Plan", target: "Fee", guarded: true, when: "pro", expected: 2})
	s.add(override{source: "Plan", target: "Fee", expected: 3})
	s.add(override{source: "Other", target: "Fee", expected: 4})

	strType := reflect.TypeOf((*string)(nil)).Elem()

	o, ok := s.lookup("Plan", "Fee", "pro", strType)
	require.True(t, ok)
	assert.Equal(t, 2, o.expected, "a guarded match beats every unguarded entry")

	o, ok = s.lookup("Plan", "Fee", "basic", strType)
	require.True(t, ok)
	assert.Equal(t, 3, o.expected, "among unguarded entries the last declared wins")

	_, ok = s.lookup("Plan", "Price", "pro", strType)
	assert.False(t, ok)
}

func TestOverrideSetGuardConformance(t *testing.T) {
	t.Parallel()

	var s overrideSet

	s.add(override{source: "Level", target: "Price", guarded: true, when: 3, expected: 300})

	o, ok := s.lookup("Level", "Price", int64(3), reflect.TypeOf((*int64)(nil)).Elem())
	require.True(t, ok)
	assert.Equal(t, 300, o.expected)
}

func TestOverrideSetExpectedFor(t *testing.T) {
	t.Parallel()

	conv, err := oracle.ParseConverter(strconv.Itoa)
	require.NoError(t, err)

	var s overrideSet

	s.add(override{source: "Qty", target: "Label", conv: &conv})
	s.add(override{source: "Qty", target: "Count", expected: 9})

	got, ok, err := s.expectedFor("Qty", "Label", 41, reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*string)(nil)).Elem())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "41", got)

	got, ok, err = s.expectedFor("Qty", "Count", 1, reflect.TypeOf((*int)(nil)).Elem(), reflect.TypeOf((*int64)(nil)).Elem())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(9), got)

	_, ok, err = s.expectedFor("Qty", "Total", 1, nil, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
