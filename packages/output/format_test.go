package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/veritas/packages/core/expect"
	"github.com/abdul-hamid-achik/veritas/packages/highlight"
)

func TestFormat_PassFormatsToNothing(t *testing.T) {
	text := Format(expect.Outcome{Passed: true}, highlight.ModeRedGreen, "description", &expect.Location{File: "x_test.go", Line: 1})

	assert.Empty(t, text)
}

func TestFormat_PlainDescriptionOnly(t *testing.T) {
	out := expect.Outcome{Mismatch: &expect.Mismatch{Description: "expected subject to be positive"}}

	text := Format(out, highlight.ModeOff, "", nil)

	assert.Equal(t, "expected subject to be positive\n", text)
}

func TestFormat_WithReprsAndOffMode(t *testing.T) {
	out := expect.Outcome{Mismatch: &expect.Mismatch{
		Description: `expected subject to be equal to "abd"`,
		Reprs:       &expect.Reprs{Expected: `"abd"`, Actual: `"abc"`},
	}}

	text := Format(out, highlight.ModeOff, "", nil)

	assert.Equal(t, "expected subject to be equal to \"abd\"\n   but was: \"abc\"\n  expected: \"abd\"\n", text)
	assert.NotContains(t, text, "\x1b[")
}

func TestFormat_WithReprsAndColor(t *testing.T) {
	out := expect.Outcome{Mismatch: &expect.Mismatch{
		Description: `expected subject to be equal to "abd"`,
		Reprs:       &expect.Reprs{Expected: `"abd"`, Actual: `"abc"`},
	}}

	off := Format(out, highlight.ModeOff, "", nil)
	colored := Format(out, highlight.ModeRedGreen, "", nil)

	assert.NotEqual(t, off, colored)
	assert.Contains(t, colored, "\x1b[31m")
	assert.Contains(t, colored, "\x1b[32m")
}

func TestFormat_DescriptionAndLocation(t *testing.T) {
	out := expect.Outcome{Mismatch: &expect.Mismatch{Description: "expected subject to be even"}}
	loc := &expect.Location{File: "calc_test.go", Line: 87}

	text := Format(out, highlight.ModeOff, "parity of the result", loc)

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "parity of the result", lines[0])
	assert.Equal(t, "expected subject to be even", lines[1])
	assert.Equal(t, "  at calc_test.go:87", lines[2])
}

func TestFormat_MultilineReprsUseUnifiedDiff(t *testing.T) {
	out := expect.Outcome{Mismatch: &expect.Mismatch{
		Description: "expected subject to match the expected YAML document",
		Reprs: &expect.Reprs{
			Actual:   "name: alpha\ncount: 1",
			Expected: "name: alpha\ncount: 2",
		},
	}}

	text := Format(out, highlight.ModeRedGreen, "", nil)

	assert.Contains(t, text, "--- actual")
	assert.Contains(t, text, "+++ expected")
	assert.Contains(t, text, "-count: 1")
	assert.Contains(t, text, "+count: 2")
}

func TestReporter_WritesFailureBlocks(t *testing.T) {
	var buf bytes.Buffer
	reporter := NewReporter(WithWriter(&buf), WithMode(highlight.ModeOff))

	reporter.Report(expect.Outcome{Passed: true}, "", nil)
	assert.Empty(t, buf.String(), "passing outcomes produce no output")

	reporter.Report(expect.Outcome{Mismatch: &expect.Mismatch{Description: "expected subject to exist"}}, "", nil)
	assert.Equal(t, "expected subject to exist\n", buf.String())
}

func TestReporter_PinnedMode(t *testing.T) {
	reporter := NewReporter(WithMode(highlight.ModeRedBlue))

	assert.Equal(t, highlight.ModeRedBlue, reporter.Mode())
}
