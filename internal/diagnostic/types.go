package diagnostic

import (
	"errors"
	"strings"

	"mapping-verifier/internal/common"
)

// Diagnostics collects the findings of a profile validation or a
// verification run, bucketed by severity.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic is a single finding.
type Diagnostic struct {
	Severity Severity

	// Code identifies the kind of finding.
	Code string

	// Message is the human-readable detail.
	Message string

	// Mapping names the field pair the finding concerns, rendered as
	// "source --> target". Empty when the finding is not pair-scoped.
	Mapping string

	// Field names the profile or struct field the finding concerns.
	Field string

	// Suggestions lists likely intended names, if any.
	Suggestions []string
}

// Severity ranks a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

var severityNames = [...]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	if s < 0 || int(s) >= len(severityNames) {
		return common.UnknownStr
	}

	return severityNames[s]
}

// add routes a finding into the bucket matching its severity.
func (d *Diagnostics) add(diag Diagnostic) {
	switch diag.Severity {
	case SeverityError:
		d.Errors = append(d.Errors, diag)
	case SeverityWarning:
		d.Warnings = append(d.Warnings, diag)
	default:
		d.Infos = append(d.Infos, diag)
	}
}

// AddError records an error finding.
func (d *Diagnostics) AddError(code, message, mapping, field string) {
	d.add(Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		Mapping:  mapping,
		Field:    field,
	})
}

// AddErrorSuggest records an error finding carrying fix suggestions.
func (d *Diagnostics) AddErrorSuggest(code, message, mapping, field string, suggestions ...string) {
	d.add(Diagnostic{
		Severity:    SeverityError,
		Code:        code,
		Message:     message,
		Mapping:     mapping,
		Field:       field,
		Suggestions: suggestions,
	})
}

// AddWarning records a warning finding.
func (d *Diagnostics) AddWarning(code, message, mapping, field string) {
	d.add(Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		Mapping:  mapping,
		Field:    field,
	})
}

// AddInfo records an informational finding.
func (d *Diagnostics) AddInfo(code, message, mapping, field string) {
	d.add(Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		Mapping:  mapping,
		Field:    field,
	})
}

// HasErrors reports whether any error findings were recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// Merge appends every finding from other.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Reset drops all collected findings so the instance can be reused.
func (d *Diagnostics) Reset() {
	d.Errors = nil
	d.Warnings = nil
	d.Infos = nil
}

// IsValid reports whether the run produced no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error folds all error findings into a single error, or nil when there
// are none.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	parts := common.Map(d.Errors, Diagnostic.String)

	return errors.New(strings.Join(parts, "; "))
}

// String renders the finding as "[mapping] field: [code] message", with
// the mapping, field and code parts present only when set.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.Mapping != "" {
		b.WriteString("[" + d.Mapping + "]")
	}

	if d.Field != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(d.Field)
	}

	if b.Len() > 0 {
		b.WriteString(": ")
	}

	if d.Code != "" {
		b.WriteString("[" + d.Code + "] ")
	}

	b.WriteString(d.Message)

	if len(d.Suggestions) > 0 {
		b.WriteString(" (suggestions: " + strings.Join(d.Suggestions, ", ") + ")")
	}

	return b.String()
}
