// Package veritas is a fluent assertion toolkit for Go test code.
//
// A subject is wrapped into a Spec and checked against composable
// expectations. Failing checks produce rich, human-readable reports with
// colored character-level diffs:
//
//	veritas.That(7*6, veritas.WithT(t)).Should(matchers.IsEqualTo(42))
//
// That starts a hard assertion: the first failing expectation terminates
// the test (or panics when no handler is attached). Verify starts a soft
// assertion: failures are collected and queryable, or recorded into a
// softassert.Scope that reports them all at once when closed.
package veritas

import (
	"github.com/abdul-hamid-achik/veritas/packages/core/config"
	"github.com/abdul-hamid-achik/veritas/packages/core/expect"
	"github.com/abdul-hamid-achik/veritas/packages/highlight"
	"github.com/abdul-hamid-achik/veritas/packages/output"
	"github.com/abdul-hamid-achik/veritas/packages/softassert"
)

// FailureHandler receives the formatted text of a failing hard assertion
// and terminates the current unit of work. *testing.T satisfies it.
type FailureHandler interface {
	Fatalf(format string, args ...any)
}

// Failure is one failed assertion recorded by a soft Spec.
type Failure struct {
	Description string
	Message     string
	Location    *expect.Location
}

// Spec is one assertion attempt: a subject plus optional naming, a
// description, a call-site location and the failing strategy.
type Spec struct {
	subject     any
	name        string
	description string
	location    *expect.Location
	soft        bool
	handler     FailureHandler
	mode        *highlight.Mode
	scope       *softassert.Scope
	failures    []Failure
}

// SpecOption configures a Spec.
type SpecOption func(*Spec)

// Named sets the expression name used in failure messages instead of the
// generic word "subject".
func Named(name string) SpecOption {
	return func(s *Spec) {
		s.name = name
	}
}

// DescribedAs sets a custom description about what is being asserted. It
// prefixes every failure message of this Spec.
func DescribedAs(description string) SpecOption {
	return func(s *Spec) {
		s.description = description
	}
}

// At records the call-site location of the assertion. It is passed through
// untouched to the report formatter.
func At(file string, line int) SpecOption {
	return func(s *Spec) {
		s.location = &expect.Location{File: file, Line: line}
	}
}

// WithT attaches the failure handler a failing hard assertion reports to.
// Without one, hard failures panic with the formatted message.
func WithT(handler FailureHandler) SpecOption {
	return func(s *Spec) {
		s.handler = handler
	}
}

// WithMode pins the highlight mode for this Spec instead of the configured
// one.
func WithMode(mode highlight.Mode) SpecOption {
	return func(s *Spec) {
		s.mode = &mode
	}
}

// WithScope hands every failing outcome to the given soft assertion scope.
// Implies soft mode.
func WithScope(scope *softassert.Scope) SpecOption {
	return func(s *Spec) {
		s.scope = scope
		s.soft = true
	}
}

func newSpec(subject any, soft bool, opts []SpecOption) *Spec {
	s := &Spec{
		subject: subject,
		name:    expect.DefaultExpression,
		soft:    soft,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// That starts a hard assertion for the given subject: the first failing
// expectation is raised immediately.
func That(subject any, opts ...SpecOption) *Spec {
	return newSpec(subject, false, opts)
}

// Verify starts a soft assertion for the given subject: failing
// expectations are collected and never raised by the Spec itself.
func Verify(subject any, opts ...SpecOption) *Spec {
	return newSpec(subject, true, opts)
}

// Not inverts an expectation.
func Not(inner expect.Expectation) expect.Expectation {
	return expect.NotOf(inner)
}

// AllOf combines expectations with AND semantics.
func AllOf(inner ...expect.Expectation) expect.Expectation {
	return expect.AllOf(inner...)
}

// AnyOf combines expectations with OR semantics.
func AnyOf(inner ...expect.Expectation) expect.Expectation {
	return expect.AnyOf(inner...)
}

// Subject returns the value under test.
func (s *Spec) Subject() any {
	return s.subject
}

// Should evaluates the expectation against the subject. On a mismatch the
// failure is raised or recorded according to the Spec's mode. Returns the
// Spec for chaining.
func (s *Spec) Should(e expect.Expectation) *Spec {
	out := expect.EvaluateNamed(s.name, s.subject, e)
	if out.Passed {
		return s
	}

	message := output.Format(out, s.highlightMode(), s.description, s.location)
	s.failures = append(s.failures, Failure{
		Description: s.description,
		Message:     message,
		Location:    s.location,
	})
	if s.scope != nil {
		s.scope.RecordWith(out, s.description, s.location)
	}
	if !s.soft {
		if s.handler != nil {
			s.handler.Fatalf("%s", message)
		} else {
			panic(message)
		}
	}
	return s
}

func (s *Spec) highlightMode() highlight.Mode {
	if s.mode != nil {
		return *s.mode
	}
	return config.Mode()
}

// Failures returns the assertion failures collected so far.
func (s *Spec) Failures() []Failure {
	return append([]Failure(nil), s.failures...)
}

// DisplayFailures returns the collected failures as formatted text.
func (s *Spec) DisplayFailures() []string {
	messages := make([]string, len(s.failures))
	for i, f := range s.failures {
		messages[i] = f.Message
	}
	return messages
}
