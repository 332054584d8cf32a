package field_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mapping-verifier/field"
)

type Audit struct {
	CreatedBy string
	Revision  int
}

type Row struct {
	Audit
	ID       int64
	Name     string
	Secret   string `verify:"-"`
	XXX_Wire []byte
	hidden   bool
}

func refByName(t *testing.T, refs []field.Ref, name string) field.Ref {
	t.Helper()

	for _, r := range refs {
		if r.Name == name {
			return r
		}
	}

	t.Fatalf("no field named %s", name)

	return field.Ref{}
}

func TestOfFlattensEmbedded(t *testing.T) {
	t.Parallel()

	refs, err := field.Of(reflect.TypeOf(Row{}))
	require.NoError(t, err)

	names := make([]string, 0, len(refs))
	for _, r := range refs {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{"CreatedBy", "Revision", "ID", "Name"}, names)

	rev := refByName(t, refs, "Revision")
	assert.Equal(t, reflect.TypeOf(0), rev.Type)
	assert.Equal(t, reflect.TypeOf(Audit{}), rev.Declaring)
	assert.Equal(t, []int{0, 1}, rev.Index)
}

func TestOfAcceptsPointerChains(t *testing.T) {
	t.Parallel()

	direct, err := field.Of(reflect.TypeOf(Row{}))
	require.NoError(t, err)

	viaPtr, err := field.Of(reflect.TypeOf(&Row{}))
	require.NoError(t, err)

	assert.Equal(t, direct, viaPtr)
}

func TestOfRejectsNonStructs(t *testing.T) {
	t.Parallel()

	_, err := field.Of(reflect.TypeOf(42))
	assert.Error(t, err)

	_, err = field.Of(nil)
	assert.Error(t, err)
}

func TestOfShadowing(t *testing.T) {
	t.Parallel()

	type Meta struct{ ID string }

	type Doc struct {
		Meta
		ID int64
	}

	refs, err := field.Of(reflect.TypeOf(Doc{}))
	require.NoError(t, err)
	require.Len(t, refs, 1)

	assert.Equal(t, "ID", refs[0].Name)
	assert.Equal(t, reflect.TypeOf(int64(0)), refs[0].Type)
}

func TestOfDropsAmbiguousNames(t *testing.T) {
	t.Parallel()

	type A struct{ Flag bool }

	type B struct{ Flag bool }

	type Both struct {
		A
		B
		Name string
	}

	refs, err := field.Of(reflect.TypeOf(Both{}))
	require.NoError(t, err)
	require.Len(t, refs, 1)

	assert.Equal(t, "Name", refs[0].Name)
}

func TestOfKeepsEmbeddedPointerAsField(t *testing.T) {
	t.Parallel()

	type Extra struct{ Note string }

	type Wrap struct {
		*Extra
		ID int
	}

	refs, err := field.Of(reflect.TypeOf(Wrap{}))
	require.NoError(t, err)
	require.Len(t, refs, 2)

	assert.Equal(t, "Extra", refs[0].Name)
	assert.Equal(t, reflect.TypeOf(&Extra{}), refs[0].Type)
	assert.Equal(t, "ID", refs[1].Name)
}

func TestGet(t *testing.T) {
	t.Parallel()

	refs, err := field.Of(reflect.TypeOf(Row{}))
	require.NoError(t, err)

	row := Row{Audit: Audit{CreatedBy: "ada", Revision: 3}, ID: 7, Name: "first"}

	v, err := field.Get(row, refByName(t, refs, "Revision"))
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = field.Get(&row, refByName(t, refs, "Name"))
	require.NoError(t, err)
	assert.Equal(t, "first", v)
}

func TestSet(t *testing.T) {
	t.Parallel()

	refs, err := field.Of(reflect.TypeOf(Row{}))
	require.NoError(t, err)

	row := Row{Audit: Audit{Revision: 3}, Name: "first"}

	require.NoError(t, field.Set(&row, refByName(t, refs, "Revision"), 9))
	assert.Equal(t, 9, row.Revision)

	require.NoError(t, field.Set(&row, refByName(t, refs, "Name"), nil))
	assert.Equal(t, "", row.Name)
}

func TestSetConvertsSameKind(t *testing.T) {
	t.Parallel()

	type UserID int64

	refs, err := field.Of(reflect.TypeOf(Row{}))
	require.NoError(t, err)

	var row Row

	require.NoError(t, field.Set(&row, refByName(t, refs, "ID"), UserID(5)))
	assert.Equal(t, int64(5), row.ID)

	err = field.Set(&row, refByName(t, refs, "ID"), "not a number")
	assert.Error(t, err)
}

func TestSetRequiresPointer(t *testing.T) {
	t.Parallel()

	refs, err := field.Of(reflect.TypeOf(Row{}))
	require.NoError(t, err)

	err = field.Set(Row{}, refByName(t, refs, "Name"), "x")
	assert.Error(t, err)
}

func ExampleOf() {
	refs, _ := field.Of(reflect.TypeOf(Row{}))

	for _, r := range refs {
		fmt.Println(r.Name, r.Type)
	}

	// Output:
	// CreatedBy string
	// Revision int
	// ID int64
	// Name string
}
