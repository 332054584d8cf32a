// Package profile loads YAML verification profiles: declarative files
// carrying the parts of a verifier configuration that do not need code,
// like ignored fields, non-null marks, test value lists and expected-value
// overrides.
//
// A profile never replaces code-level configuration; it is applied on top
// of it through the Sink interface. Type names in a profile resolve
// through a Resolver that knows the basic Go types and any domain types
// registered for the session.
package profile
