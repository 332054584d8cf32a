// Package field enumerates and accesses the testable fields of struct
// values. It is the reflective capability the learner and verifier build
// on: stable ordered field sets, embedded struct flattening, and get/set
// by field reference.
package field

import (
	"fmt"
	"reflect"
	"strings"
)

const (
	// TagName is the struct tag consulted for field exclusion.
	// Fields tagged `verify:"-"` are never enumerated.
	TagName = "verify"

	// noisePrefix marks generated artifacts that are data plumbing, not data.
	noisePrefix = "XXX_"
)

// Ref identifies a single testable field of a struct type.
type Ref struct {
	// Name is the field name, unique within one flattened field set.
	Name string
	// Type is the declared field type.
	Type reflect.Type
	// Declaring is the struct type that declares the field. For promoted
	// fields this is the embedded type, not the outer one.
	Declaring reflect.Type
	// Index is the promotion-aware index chain for reflect access.
	Index []int
}

func (r Ref) String() string {
	return r.Name
}

// Of returns the testable fields of t in declaration order, embedded
// structs flattened in place. t must be a struct type or a pointer to one.
//
// Excluded: unexported fields, fields tagged `verify:"-"`, and fields
// whose name carries the XXX_ prefix. Embedded struct values are
// traversed with Go promotion shadowing; embedded pointers are treated as
// ordinary fields, not traversed. Results are stable across calls.
func Of(t reflect.Type) ([]Ref, error) {
	if t == nil {
		return nil, fmt.Errorf("field: nil type")
	}

	b := base(t)
	if b.Kind() != reflect.Struct {
		return nil, fmt.Errorf("field: %s is not a struct type", t)
	}

	return dedupe(collect(b, nil)), nil
}

func collect(t reflect.Type, prefix []int) []Ref {
	var out []Ref

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || skipped(f) {
			continue
		}

		idx := make([]int, len(prefix)+1)
		copy(idx, prefix)
		idx[len(prefix)] = i

		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			out = append(out, collect(f.Type, idx)...)

			continue
		}

		out = append(out, Ref{Name: f.Name, Type: f.Type, Declaring: t, Index: idx})
	}

	return out
}

func skipped(f reflect.StructField) bool {
	if strings.HasPrefix(f.Name, noisePrefix) {
		return true
	}

	return f.Tag.Get(TagName) == "-"
}

// dedupe applies promotion shadowing: for a repeated name the shallowest
// field wins, and names colliding at the same depth are dropped the way Go
// makes ambiguous selectors inaccessible.
func dedupe(refs []Ref) []Ref {
	depth := make(map[string]int, len(refs))
	count := make(map[string]int, len(refs))

	for _, r := range refs {
		d, seen := depth[r.Name]

		switch {
		case !seen || len(r.Index) < d:
			depth[r.Name] = len(r.Index)
			count[r.Name] = 1
		case len(r.Index) == d:
			count[r.Name]++
		}
	}

	out := make([]Ref, 0, len(refs))

	for _, r := range refs {
		if len(r.Index) == depth[r.Name] && count[r.Name] == 1 {
			out = append(out, r)
		}
	}

	return out
}

func base(t reflect.Type) reflect.Type {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	return t
}
