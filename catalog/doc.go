// Package catalog stores the test values and training values that drive
// mapping verification.
//
// Values are registered per field name or per type, with built-in defaults
// for strings, booleans, the integer and float families and two temporal
// types. Types without a direct entry fall back through three synthesis
// tiers, in order: values generated from a registered same-underlying type
// via named conversion, pointer values boxed from the element type plus an
// explicit nil, and slice values synthesized from element test values as
// singleton, empty and all-values collections.
//
// A catalog belongs to one verification session: configuration happens
// before the run and lookups stay read-only afterwards, except for the
// internal cache of generated entries.
package catalog
