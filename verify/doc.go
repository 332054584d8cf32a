// Package verify checks that a hand-written struct mapper moves every
// source field to the right target field, carrying the right value.
//
// A mapper is any function from one struct type to another. The verifier
// treats it as a black box: it never inspects the mapper's code, only its
// behavior on crafted inputs.
//
// # Usage
//
//	v := verify.For(store.ToWarehouseOrder).
//		IgnoreTargetFields("SyncedAt").
//		Enum(store.StatusDraft, store.StatusPaid, store.StatusShipped, store.StatusCancelled)
//	err := v.Verify(func() store.Order {
//		return store.Order{ID: 42, CustomerID: 7, Status: store.StatusPaid}
//	})
//
// A nil error means every source field was either matched to exactly one
// target field and value-checked, or proven unused. The details are
// available through Report.
//
// # How verification works
//
//  1. The factory builds a baseline source, which is mapped once. The
//     resulting target is frozen as the reference point.
//  2. For each source field a fresh source is built, that single field is
//     set to its training value, and the mapper runs again. The output is
//     diffed against the baseline field by field. Exactly one changed
//     target field records a mapping, no change marks the source field
//     unused, and two or more changes fail with AmbiguousMappingError.
//  3. Each learned pair is exercised once per registered test value. The
//     produced target value must match the expectation computed by the
//     value oracle, or an override registered for the pair.
//
// Target fields that never change and are not ignored fail verification
// with UncoveredTargetsError.
//
// # Test values
//
// Built-in values cover strings, booleans, the numeric kinds, time.Time
// and time.Duration. Everything else is derived where possible: named
// types borrow values from a registered convertible type, pointers box
// the element's values plus nil, slices wrap the element's values.
// TestValuesForType and TestValuesForField extend or replace the
// defaults, and Enum declares the legal members of an enum-like type.
//
// # Expected values
//
// The oracle decides what a target value should look like for a given
// source value using a fixed strategy order: registered converters,
// element-wise collection mapping, identity, enum conversions,
// same-kind type conversion, single-accessor calls, and pointer
// boxing or unboxing. When no strategy applies, or the produced value
// disagrees, the mapping needs either a Converter or an Override.
//
// Configuration can also be loaded from a YAML profile, see LoadProfile.
package verify
