// Package softassert defers assertion failures to the end of a unit of
// work.
//
// A Scope collects mismatches from repeated evaluations and, when closed,
// either vanishes silently (no mismatches) or returns one aggregated error
// listing every recorded mismatch in insertion order. Misusing a closed
// scope panics; programming errors are never folded into the soft report.
package softassert
