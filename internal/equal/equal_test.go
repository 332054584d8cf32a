package equal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mapping-verifier/internal/equal"
)

type wrapped struct {
	n     int
	label string
}

func TestValuesNullRules(t *testing.T) {
	t.Parallel()

	x := 5

	assert.True(t, equal.Values(nil, nil))
	assert.True(t, equal.Values((*int)(nil), (*int)(nil)))
	assert.True(t, equal.Values(nil, (*int)(nil)))

	assert.False(t, equal.Values(nil, &x))
	assert.False(t, equal.Values(&x, nil))
	assert.False(t, equal.Values((*int)(nil), &x))
}

func TestValuesEquatesNilAndEmptyCollections(t *testing.T) {
	t.Parallel()

	assert.True(t, equal.Values([]int(nil), []int{}))
	assert.True(t, equal.Values(map[string]int(nil), map[string]int{}))
	assert.False(t, equal.Values([]int(nil), []int{1}))
}

func TestValuesComparesPointees(t *testing.T) {
	t.Parallel()

	a, b, c := 5, 5, 6

	assert.True(t, equal.Values(&a, &b))
	assert.False(t, equal.Values(&a, &c))
}

func TestValuesUnexportedFields(t *testing.T) {
	t.Parallel()

	assert.True(t, equal.Values(wrapped{n: 1, label: "a"}, wrapped{n: 1, label: "a"}))
	assert.False(t, equal.Values(wrapped{n: 1, label: "a"}, wrapped{n: 2, label: "a"}))
}

func TestValuesTime(t *testing.T) {
	t.Parallel()

	utc := time.Date(2024, time.March, 10, 9, 0, 0, 0, time.UTC)

	assert.True(t, equal.Values(utc, utc))
	assert.False(t, equal.Values(utc, utc.Add(time.Nanosecond)))
}

func TestValuesDistinctTypes(t *testing.T) {
	t.Parallel()

	assert.False(t, equal.Values(int32(1), int64(1)))
	assert.False(t, equal.Values("1", 1))
}

func TestDiff(t *testing.T) {
	t.Parallel()

	assert.Empty(t, equal.Diff(1, 1))
	assert.NotEmpty(t, equal.Diff(wrapped{n: 1}, wrapped{n: 2}))
}
