// Package match holds the string heuristics used while learning mappings
// and wording diagnostics. Identifier tokenization backs accessor-name
// detection, and rune edit distance backs "did you mean" suggestions.
package match
