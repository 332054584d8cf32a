// Package oracle implements the type-directed value oracle: given a source
// value and a declared (source type, target type) pair, it predicts the
// value a correct mapper should have produced.
//
// Prediction walks a fixed precedence chain of strategies:
//
//  1. registered converter for the exact type pair
//  2. collection-to-collection, element-wise and recursive
//  3. identity when the target type accepts the source type directly
//  4. enum-to-enum by symbolic member name
//  5. string-to-enum by member name
//  6. enum-to-string yielding the member name
//  7. construction via same-underlying named-type conversion
//  8. getter: a zero-argument accessor method with an assignable result
//  9. box/unbox between a basic type and its pointer form
//
// The first applicable strategy decides: when it succeeds its value is the
// prediction, and when it rejects the value the whole request fails. Null
// handling is uniform: enum and string conversions map null to null, and
// unboxing null fails.
//
// Converters and enum member sets are registered per verification session;
// the oracle holds no global state.
package oracle
