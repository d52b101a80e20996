package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/veritas/packages/core/config"
	"github.com/abdul-hamid-achik/veritas/packages/core/expect"
	"github.com/abdul-hamid-achik/veritas/packages/highlight"
)

// Reporter writes formatted failure blocks to a console. It is the
// hard-mode boundary: callers hand it failing outcomes and it emits one
// block per failure.
type Reporter struct {
	writer io.Writer
	mode   *highlight.Mode
}

// ReporterOption configures a Reporter.
type ReporterOption func(*Reporter)

// WithWriter directs report output to w instead of stdout.
func WithWriter(w io.Writer) ReporterOption {
	return func(r *Reporter) {
		r.writer = w
	}
}

// WithMode pins the highlight mode instead of resolving the configured one.
func WithMode(mode highlight.Mode) ReporterOption {
	return func(r *Reporter) {
		r.mode = &mode
	}
}

func NewReporter(opts ...ReporterOption) *Reporter {
	r := &Reporter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Mode returns the highlight mode this reporter renders with.
func (r *Reporter) Mode() highlight.Mode {
	if r.mode != nil {
		return *r.mode
	}
	return config.Mode()
}

// Report writes one formatted failure block for a failing outcome. Passing
// outcomes produce no output.
func (r *Reporter) Report(out expect.Outcome, description string, loc *expect.Location) {
	text := Format(out, r.Mode(), description, loc)
	if text == "" {
		return
	}
	fmt.Fprint(r.writer, text)
}

// ReportError writes a non-assertion error, styled the way failure headings
// are.
func (r *Reporter) ReportError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(r.writer, "%s %v\n", red("Error:"), err)
}
