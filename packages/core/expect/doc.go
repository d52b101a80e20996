// Package expect defines the expectation model and its evaluator.
//
// An Expectation is either an Atomic check backed by an opaque predicate,
// or one of the closed combinator shapes Not, All and Any. Evaluating an
// expectation against a subject yields an Outcome, which carries a Mismatch
// exactly when the check failed. The evaluator knows nothing about
// predicate semantics; it only routes variants and aggregates combinator
// messages.
package expect
