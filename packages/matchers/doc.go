// Package matchers provides the per-type expectation constructors used with
// the evaluator.
//
// Supported checks include:
//   - equality (loose, deep via go-cmp)
//   - numeric ordering and ranges
//   - length and emptiness
//   - substring, prefix, suffix and regular expression matching
//   - collection membership
//   - JSON path queries, JSON Schema validation and YAML comparison
//
// Matchers are thin glue over the expect package: each one pairs a
// predicate with a positive description and, where it makes sense, a
// diffable expected/actual representation pair.
package matchers
