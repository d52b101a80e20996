// Package diff computes minimal edit scripts between two token sequences
// using Myers' O(N·D) shortest-edit-script algorithm.
//
// Tokens are either individual characters (for scalar and string
// comparisons) or individual elements (for sequence comparisons); the
// granularity is chosen by the caller. The resulting spans are consumed by
// the highlight renderer to mark unexpected and missing parts of a failed
// comparison.
package diff
