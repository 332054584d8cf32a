package verify

import (
	"mapping-verifier/field"
	"mapping-verifier/internal/common"
	"mapping-verifier/internal/equal"
)

// pair is one learned source-to-target field association.
type pair struct {
	source, target field.Ref
}

// mapping is the learned correspondence, ordered by source field order. It
// is a function: each source field maps to at most one target field.
type mapping []pair

// learn discovers the correspondence by one-factor-at-a-time perturbation:
// each source field in turn is set to its training value on a fresh
// instance, the mapper runs, and the trial target is diffed field by field
// against the frozen reference. More than one changed target field is a
// hard failure; exactly one records the association; none leaves the
// source field unmapped.
func (s *session[S, T]) learn() (mapping, error) {
	var m mapping

	for _, f := range s.sourceFields {
		training, err := s.cfg.catalog.TrainingFor(f, s.sampleOf(f))
		if err != nil {
			return nil, err
		}

		trial, err := s.applyAndMap(f, training)
		if err != nil {
			return nil, err
		}

		changed, err := s.changedTargets(trial)
		if err != nil {
			return nil, err
		}

		switch {
		case common.IsMultiple(changed):
			return nil, &AmbiguousMappingError{Field: f.Name, Targets: refNames(changed)}
		case common.IsSingle(changed):
			m = append(m, pair{source: f, target: changed[0]})
		}
	}

	return m, nil
}

func (s *session[S, T]) changedTargets(trial T) ([]field.Ref, error) {
	var changed []field.Ref

	for _, tf := range s.targetFields {
		base, err := field.Get(s.target, tf)
		if err != nil {
			return nil, &ReferenceError{Cause: err}
		}

		got, err := field.Get(trial, tf)
		if err != nil {
			return nil, &ReferenceError{Cause: err}
		}

		if !equal.Values(base, got) {
			changed = append(changed, tf)
		}
	}

	return changed, nil
}

func refNames(refs []field.Ref) []string {
	return common.Map(refs, func(f field.Ref) string { return f.Name })
}
