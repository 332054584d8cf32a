package verify

import (
	"reflect"

	"mapping-verifier/internal/equal"
	"mapping-verifier/oracle"
)

// override declares the expected target value for one learned field pair,
// either as a literal or as a conversion function, optionally guarded by a
// specific source value.
type override struct {
	source, target string
	guarded        bool
	when           any
	expected       any
	conv           *oracle.Converter
}

type overrideSet struct {
	entries []override
}

func (s *overrideSet) add(o override) {
	s.entries = append(s.entries, o)
}

// lookup picks the override for the (source, target, value) triple. A
// value-guarded entry beats an unguarded one; among equally specific
// entries the last declared wins. Guards are coerced to the source field's
// type before comparison.
func (s *overrideSet) lookup(source, target string, value any, srcType reflect.Type) (override, bool) {
	var best override

	found, guarded := false, false

	for _, o := range s.entries {
		if o.source != source || o.target != target {
			continue
		}

		switch {
		case o.guarded && equal.Values(conformTo(o.when, srcType), value):
			best, found, guarded = o, true, true
		case !o.guarded && !guarded:
			best, found = o, true
		}
	}

	return best, found
}

// expectedFor resolves the declared expectation, applying the conversion
// function when one was registered and coercing literals to the target
// field's type.
func (s *overrideSet) expectedFor(source, target string, value any, srcType, dstType reflect.Type) (any, bool, error) {
	o, ok := s.lookup(source, target, value, srcType)
	if !ok {
		return nil, false, nil
	}

	if o.conv != nil {
		out, err := o.conv.Convert(value)
		return out, true, err
	}

	return conformTo(o.expected, dstType), true, nil
}
