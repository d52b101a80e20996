// Package output assembles failure reports from evaluated outcomes.
//
// Format produces the text block for one failure: description, highlighted
// expected/actual diff (inline for single-line values, unified for
// multi-line ones) and call-site location. Reporter writes such blocks to a
// console and is the boundary where hard-mode callers surface failures.
package output
