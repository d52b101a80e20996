// Package config resolves the process-wide highlight mode for failure
// diffs.
//
// Resolution order: the NO_COLOR override, terminal color capability, the
// VERITAS_HIGHLIGHT mode selector, then the compiled-in default. The result
// is resolved lazily, cached for the remainder of the process, and
// resettable through a synchronized test hook.
package config
