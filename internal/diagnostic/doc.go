// Package diagnostic provides structured errors, warnings, and infos for
// profile validation and the vet command.
//
// Key capabilities:
//   - Per-section validation findings with stable codes
//   - "Did you mean" suggestions for unknown names
//   - Severity demotion for findings a tool treats as advisory
package diagnostic
