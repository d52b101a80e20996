package softassert

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abdul-hamid-achik/veritas/packages/core/config"
	"github.com/abdul-hamid-achik/veritas/packages/core/expect"
	"github.com/abdul-hamid-achik/veritas/packages/highlight"
	"github.com/abdul-hamid-achik/veritas/packages/output"
)

// Scope collects mismatches from repeated evaluations within one unit of
// work and reports them all at once when closed. A scope is exclusively
// owned by the logical flow that created it and must not be shared across
// goroutines.
type Scope struct {
	id      uuid.UUID
	mode    *highlight.Mode
	entries []entry
	closed  bool
}

type entry struct {
	mismatch    *expect.Mismatch
	description string
	location    *expect.Location
}

// Option configures a Scope.
type Option func(*Scope)

// WithMode pins the highlight mode used when the aggregated report is
// built, instead of the configured one.
func WithMode(mode highlight.Mode) Option {
	return func(s *Scope) {
		s.mode = &mode
	}
}

// Open creates a new, empty scope.
func Open(opts ...Option) *Scope {
	s := &Scope{id: uuid.New()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the scope identity used in reports and misuse messages.
func (s *Scope) ID() uuid.UUID {
	return s.id
}

// Len returns the number of mismatches recorded so far.
func (s *Scope) Len() int {
	return len(s.entries)
}

// Record appends the outcome's mismatch, if any, in call order. It never
// raises. Recording into a closed scope is a programming error and panics.
func (s *Scope) Record(out expect.Outcome) {
	s.RecordWith(out, "", nil)
}

// RecordWith is Record with an optional caller description and call-site
// location carried alongside the mismatch into the aggregated report.
func (s *Scope) RecordWith(out expect.Outcome, description string, loc *expect.Location) {
	if s.closed {
		panic(fmt.Sprintf("veritas: record into closed soft assertion scope %s", s.id))
	}
	if out.Passed {
		return
	}
	s.entries = append(s.entries, entry{
		mismatch:    out.Mismatch,
		description: description,
		location:    loc,
	})
}

// Close ends the scope. A clean scope closes with no effect and returns
// nil. A scope with recorded mismatches returns one *AggregateError listing
// every mismatch with a 1-based ordinal, in insertion order. Closing an
// already-closed scope is a programming error and panics.
func (s *Scope) Close() error {
	if s.closed {
		panic(fmt.Sprintf("veritas: close of already closed soft assertion scope %s", s.id))
	}
	s.closed = true
	if len(s.entries) == 0 {
		return nil
	}

	mode := config.Mode()
	if s.mode != nil {
		mode = *s.mode
	}
	blocks := make([]string, len(s.entries))
	for i, e := range s.entries {
		text := output.Format(expect.Outcome{Mismatch: e.mismatch}, mode, e.description, e.location)
		blocks[i] = fmt.Sprintf("%d. %s", i+1, strings.TrimSuffix(text, "\n"))
	}
	return &AggregateError{ScopeID: s.id, Blocks: blocks}
}

// AggregateError is the single failure raised for a soft assertion scope
// that recorded at least one mismatch.
type AggregateError struct {
	ScopeID uuid.UUID
	Blocks  []string
}

func (e *AggregateError) Error() string {
	return fmt.Sprintf("soft assertion scope %s: %d assertion(s) failed:\n%s",
		e.ScopeID, len(e.Blocks), strings.Join(e.Blocks, "\n"))
}
