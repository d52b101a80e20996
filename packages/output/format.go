package output

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/abdul-hamid-achik/veritas/packages/core/expect"
	"github.com/abdul-hamid-achik/veritas/packages/highlight"
)

// Format assembles the failure text for an outcome. A passing outcome
// formats to the empty string: nothing is ever printed for successes.
//
// For a failed outcome the text is the mismatch description, followed by a
// highlighted expected/actual diff when the mismatch carries a
// representation pair, prefixed by the optional caller-supplied description
// and suffixed by the call-site location. No generic "assertion failed"
// boilerplate is added.
func Format(out expect.Outcome, mode highlight.Mode, description string, loc *expect.Location) string {
	if out.Passed {
		return ""
	}
	m := out.Mismatch

	var b strings.Builder
	if description != "" {
		b.WriteString(description)
		b.WriteString("\n")
	}
	b.WriteString(m.Description)
	if m.Reprs != nil {
		if multiline(m.Reprs) {
			b.WriteString("\n")
			b.WriteString(unifiedDiff(m.Reprs))
		} else {
			markedActual, markedExpected := highlight.MarkDiff(m.Reprs.Actual, m.Reprs.Expected, mode)
			fmt.Fprintf(&b, "\n   but was: %s\n  expected: %s", markedActual, markedExpected)
		}
	}
	if loc != nil {
		fmt.Fprintf(&b, "\n  at %s", loc)
	}
	b.WriteString("\n")
	return b.String()
}

func multiline(r *expect.Reprs) bool {
	return strings.Contains(r.Actual, "\n") || strings.Contains(r.Expected, "\n")
}

// unifiedDiff renders multi-line representations as a unified diff, which
// scans better than inline marking once values span several lines.
func unifiedDiff(r *expect.Reprs) string {
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(r.Actual),
		B:        difflib.SplitLines(r.Expected),
		FromFile: "actual",
		ToFile:   "expected",
		Context:  2,
	})
	if err != nil {
		return fmt.Sprintf("   but was: %s\n  expected: %s", r.Actual, r.Expected)
	}
	return strings.TrimSuffix(text, "\n")
}
