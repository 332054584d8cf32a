package verify

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel values for errors.Is checks. Every failure raised by Verify
// matches exactly one of them.
var (
	ErrConstruction  = errors.New("construction failure")
	ErrReference     = errors.New("target reference failure")
	ErrTraining      = errors.New("training failure")
	ErrAmbiguous     = errors.New("ambiguous mapping")
	ErrUncovered     = errors.New("uncovered target fields")
	ErrValueMismatch = errors.New("value mismatch")
	ErrConfig        = errors.New("invalid configuration")
)

// ConstructionError reports that the source factory failed to produce a
// usable instance.
type ConstructionError struct {
	Cause error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("cannot construct source instance: %v", e.Cause)
}

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

func (e *ConstructionError) Unwrap() error { return e.Cause }

// ReferenceError reports that the mapper failed to produce the frozen
// baseline target.
type ReferenceError struct {
	Cause error
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("cannot create target reference: %v", e.Cause)
}

func (e *ReferenceError) Is(target error) bool { return target == ErrReference }

func (e *ReferenceError) Unwrap() error { return e.Cause }

// TrainingError reports that the mapper failed while a source field held a
// catalog value, during either the learning or the value phase. The cause
// preserves the mapper's own failure, typically a recovered panic.
type TrainingError struct {
	Field string
	Value any
	Cause error
}

func (e *TrainingError) Error() string {
	return fmt.Sprintf("failure while training the mapping using field %s with value %v: %v",
		e.Field, e.Value, e.Cause)
}

func (e *TrainingError) Is(target error) bool { return target == ErrTraining }

func (e *TrainingError) Unwrap() error { return e.Cause }

// AmbiguousMappingError reports a source field whose perturbation changed
// more than one target field.
type AmbiguousMappingError struct {
	Field   string
	Targets []string
}

func (e *AmbiguousMappingError) Error() string {
	return fmt.Sprintf("source field maps to more than one target field: %s --> [%s]",
		e.Field, strings.Join(e.Targets, ", "))
}

func (e *AmbiguousMappingError) Is(target error) bool { return target == ErrAmbiguous }

// UncoveredTargetsError aggregates every target field that never changed
// and was not ignored.
type UncoveredTargetsError struct {
	Fields []string
}

func (e *UncoveredTargetsError) Error() string {
	return fmt.Sprintf("unchanged target fields: %s", strings.Join(e.Fields, ", "))
}

func (e *UncoveredTargetsError) Is(target error) bool { return target == ErrUncovered }

// MismatchError reports a value-level divergence for one learned field
// pair and one test value. When the expected value itself could not be
// computed the cause carries the oracle failure.
type MismatchError struct {
	Source   string
	Target   string
	Value    any
	Expected any
	Actual   any
	Diff     string
	Cause    error
}

func (e *MismatchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error in mapping %s --> %s: no expected value for %v: %v",
			e.Source, e.Target, e.Value, e.Cause)
	}

	msg := fmt.Sprintf("error in mapping %s --> %s: source value %v expected %v, got %v",
		e.Source, e.Target, e.Value, e.Expected, e.Actual)

	if e.Diff != "" {
		msg += "\n" + e.Diff
	}

	return msg
}

func (e *MismatchError) Is(target error) bool { return target == ErrValueMismatch }

func (e *MismatchError) Unwrap() error { return e.Cause }

// ConfigError aggregates the errors collected by fluent configuration
// calls; it is returned by Verify before any mapping work starts.
type ConfigError struct {
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid verifier configuration: %v", e.Cause)
}

func (e *ConfigError) Is(target error) bool { return target == ErrConfig }

func (e *ConfigError) Unwrap() error { return e.Cause }
