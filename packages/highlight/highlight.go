package highlight

import (
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/veritas/packages/diff"
)

// Mode is the display policy controlling how diffs are styled in failure
// text.
type Mode int

const (
	// ModeRedGreen colors unexpected parts red and missing parts green.
	ModeRedGreen Mode = iota
	// ModeRedBlue colors unexpected parts red and missing parts blue
	// (CVD-friendly).
	ModeRedBlue
	// ModeRedYellow colors unexpected parts red and missing parts yellow.
	ModeRedYellow
	// ModeBold renders unexpected parts in bold and leaves missing parts
	// unstyled.
	ModeBold
	// ModeOff disables highlighting entirely.
	ModeOff
)

const (
	modeNameRedGreen  = "red-green"
	modeNameRedBlue   = "red-blue"
	modeNameRedYellow = "red-yellow"
	modeNameBold      = "bold"
	modeNameOff       = "off"
)

func (m Mode) String() string {
	switch m {
	case ModeRedGreen:
		return modeNameRedGreen
	case ModeRedBlue:
		return modeNameRedBlue
	case ModeRedYellow:
		return modeNameRedYellow
	case ModeBold:
		return modeNameBold
	case ModeOff:
		return modeNameOff
	default:
		return "unknown"
	}
}

// ParseMode matches a mode name case-insensitively. The second return value
// reports whether the name was recognized.
func ParseMode(name string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case modeNameRedGreen:
		return ModeRedGreen, true
	case modeNameRedBlue:
		return ModeRedBlue, true
	case modeNameRedYellow:
		return ModeRedYellow, true
	case modeNameBold:
		return ModeBold, true
	case modeNameOff:
		return ModeOff, true
	default:
		return ModeOff, false
	}
}

// forceStyle builds a color that emits escape sequences regardless of
// whether the process is attached to a terminal. Whether color is usable at
// all is decided by the configuration resolver, not here.
func forceStyle(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

var (
	styleBold   = forceStyle(color.Bold)
	styleRed    = forceStyle(color.FgRed)
	styleGreen  = forceStyle(color.FgGreen)
	styleBlue   = forceStyle(color.FgBlue)
	styleYellow = forceStyle(color.FgYellow)
)

// Scheme is the pair of styles a mode applies: one for unexpected parts of
// the actual value, one for parts missing from it. A nil style renders
// plain text.
type Scheme struct {
	Unexpected *color.Color
	Missing    *color.Color
}

// Scheme returns the style pair for this mode. ModeOff yields an empty
// scheme that leaves all text unstyled.
func (m Mode) Scheme() Scheme {
	switch m {
	case ModeRedGreen:
		return Scheme{Unexpected: styleRed, Missing: styleGreen}
	case ModeRedBlue:
		return Scheme{Unexpected: styleRed, Missing: styleBlue}
	case ModeRedYellow:
		return Scheme{Unexpected: styleRed, Missing: styleYellow}
	case ModeBold:
		return Scheme{Unexpected: styleBold}
	default:
		return Scheme{}
	}
}

// MarkUnexpected styles a part of the actual value that was not expected.
func (s Scheme) MarkUnexpected(text string) string {
	if s.Unexpected == nil || text == "" {
		return text
	}
	return s.Unexpected.Sprint(text)
}

// MarkMissing styles a part of the expected value that is missing from the
// actual value.
func (s Scheme) MarkMissing(text string) string {
	if s.Missing == nil || text == "" {
		return text
	}
	return s.Missing.Sprint(text)
}

// MarkDiff computes a character-level diff between the actual and expected
// representations and returns both with the differing runs styled according
// to the mode. With ModeOff both strings are returned unchanged.
func MarkDiff(actual, expected string, mode Mode) (string, string) {
	if mode == ModeOff {
		return actual, expected
	}
	scheme := mode.Scheme()
	ar, er, spans := diff.Runes(actual, expected)

	var markedActual, markedExpected strings.Builder
	for _, span := range spans {
		switch span.Kind {
		case diff.Equal:
			markedActual.WriteString(string(ar[span.AIndex : span.AIndex+span.Length]))
			markedExpected.WriteString(string(er[span.BIndex : span.BIndex+span.Length]))
		case diff.Delete:
			markedActual.WriteString(scheme.MarkUnexpected(string(ar[span.AIndex : span.AIndex+span.Length])))
		case diff.Insert:
			markedExpected.WriteString(scheme.MarkMissing(string(er[span.BIndex : span.BIndex+span.Length])))
		}
	}
	return markedActual.String(), markedExpected.String()
}

// MarkElements diffs two token sequences element-wise and returns both sides
// with unexpected and missing elements styled. Elements are joined with
// ", " on each side.
func MarkElements(actual, expected []string, mode Mode) (string, string) {
	scheme := mode.Scheme()
	spans := diff.Diff(actual, expected)

	var markedActual, markedExpected []string
	for _, span := range spans {
		switch span.Kind {
		case diff.Equal:
			markedActual = append(markedActual, actual[span.AIndex:span.AIndex+span.Length]...)
			markedExpected = append(markedExpected, expected[span.BIndex:span.BIndex+span.Length]...)
		case diff.Delete:
			for _, el := range actual[span.AIndex : span.AIndex+span.Length] {
				markedActual = append(markedActual, scheme.MarkUnexpected(el))
			}
		case diff.Insert:
			for _, el := range expected[span.BIndex : span.BIndex+span.Length] {
				markedExpected = append(markedExpected, scheme.MarkMissing(el))
			}
		}
	}
	return strings.Join(markedActual, ", "), strings.Join(markedExpected, ", ")
}
