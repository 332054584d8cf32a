package catalog_test

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-verifier/catalog"
)

func TestGeneratedEntryForNamedType(t *testing.T) {
	t.Parallel()

	type label string

	c := catalog.New()

	// No registration needed: the string defaults convert over.
	assert.Equal(t, label("A test string."), training[label](t, c, "Tag"))
	assert.Equal(t, []any{label("A test string."), label("")}, values[label](t, c, "Tag"))
}

func TestPointerSynthesis(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	got := values[*bool](t, c, "Flag")
	require.Len(t, got, 3)

	assert.Equal(t, true, *got[0].(*bool))
	assert.Equal(t, false, *got[1].(*bool))
	assert.Nil(t, got[2])

	tr := training[*bool](t, c, "Flag")
	require.IsType(t, (*bool)(nil), tr)
	assert.Equal(t, true, *tr.(*bool))
}

func TestPointerSynthesisNonNull(t *testing.T) {
	t.Parallel()

	c := catalog.New()
	c.MarkNonNull("Flag")

	assert.True(t, c.IsNonNull("Flag"))
	assert.False(t, c.IsNonNull("Other"))

	got := values[*bool](t, c, "Flag")
	require.Len(t, got, 2)
	assert.NotContains(t, got, nil)

	// Other pointer fields still range over nil.
	assert.Contains(t, values[*bool](t, c, "Other"), nil)
}

func TestSliceSynthesis(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	assert.Equal(t, []string{"A test string."}, training[[]string](t, c, "Tags"))

	got := values[[]string](t, c, "Tags")
	require.Len(t, got, 4)
	spew.Dump(got)

	assert.Equal(t, []string{"A test string."}, got[0])
	assert.Equal(t, []string{""}, got[1])
	assert.Equal(t, []string{}, got[2])
	assert.Equal(t, []string{"A test string.", ""}, got[3])
}

func TestSliceSynthesisNamedElements(t *testing.T) {
	t.Parallel()

	type label string

	c := catalog.New()

	got := values[[]label](t, c, "Tags")
	require.Len(t, got, 4)
	assert.Equal(t, []label{label("A test string."), label("")}, got[3])
}

func TestInterfaceElementsNeedHintOrSample(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	_, err := c.ValuesFor(ref[[]any]("Items"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNoTestData)
	assert.Contains(t, err.Error(), "can't infer the element type of field Items")

	// An empty sampled collection does not help.
	_, err = c.ValuesFor(ref[[]any]("Items"), []any{})
	require.Error(t, err)
}

func TestInterfaceElementsFromSample(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	got, err := c.ValuesFor(ref[[]any]("Items"), []any{"seed"})
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []any{"A test string."}, got[0])
}

func TestInterfaceElementsFromHint(t *testing.T) {
	t.Parallel()

	c := catalog.New()
	require.NoError(t, c.SetElemHint("Items", reflect.TypeOf((*bool)(nil)).Elem()))

	elem, ok := c.ElemHint("Items")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf((*bool)(nil)).Elem(), elem)

	got, err := c.ValuesFor(ref[[]any]("Items"), nil)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, []any{true}, got[0])
	assert.Equal(t, []any{false}, got[1])
	assert.Equal(t, []any{}, got[2])
	assert.Equal(t, []any{true, false}, got[3])
}

func TestSetElemHintRejects(t *testing.T) {
	t.Parallel()

	c := catalog.New()

	require.Error(t, c.SetElemHint("", reflect.TypeOf((*bool)(nil)).Elem()))
	require.Error(t, c.SetElemHint("Items", nil))
}

func TestNoTestDataForStructField(t *testing.T) {
	t.Parallel()

	type opaque struct{ n int }

	c := catalog.New()

	_, err := c.ValuesFor(ref[opaque]("Payload"), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrNoTestData)
	assert.Contains(t, err.Error(), "needed by field Payload")
}
