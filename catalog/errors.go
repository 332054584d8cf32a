package catalog

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNoTestData marks every failure to resolve test values. It signals a
// configuration gap, not a mapping defect.
var ErrNoTestData = errors.New("no test data")

// NoTestDataError reports the field and type the catalog could not serve.
type NoTestDataError struct {
	Field string
	Type  reflect.Type
	Cause error
}

func (e *NoTestDataError) Error() string {
	msg := fmt.Sprintf("no test data for type %s needed by field %s", e.Type, e.Field)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}

	return msg
}

func (e *NoTestDataError) Is(target error) bool {
	return target == ErrNoTestData
}

func (e *NoTestDataError) Unwrap() error {
	return e.Cause
}
