// Package highlight turns computed diffs into styled terminal output.
//
// Supported modes:
//   - red-green: unexpected parts red, missing parts green (default)
//   - red-blue: CVD-friendly variant with blue for missing parts
//   - red-yellow: yellow for missing parts
//   - bold: unexpected parts bold, missing parts unstyled
//   - off: no styling at all
//
// The active mode is resolved by the config package; this package only
// renders under a mode it is handed.
package highlight
