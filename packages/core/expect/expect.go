package expect

import (
	"fmt"
	"strings"
)

// DefaultExpression is the generic word used in failure messages when the
// caller did not name the asserted expression.
const DefaultExpression = "subject"

// Predicate tests a property of a subject. Returning a non-nil error means
// the predicate cannot even be applied to the subject (a violated type
// precondition); this is a programming error, not an assertion failure, and
// makes the evaluator panic.
type Predicate func(subject any) (bool, error)

// Reprs is a pair of comparable textual representations of the expected and
// actual values, produced by the caller for diff rendering.
type Reprs struct {
	Expected string
	Actual   string
}

// ReprFunc builds the representation pair for a given subject. Returning
// nil suppresses the diff for that mismatch.
type ReprFunc func(subject any) *Reprs

// Mismatch is the failure detail of one evaluated expectation.
type Mismatch struct {
	Description string
	Reprs       *Reprs
}

// Outcome is the result of evaluating one expectation. Mismatch is non-nil
// if and only if the evaluation failed.
type Outcome struct {
	Passed   bool
	Mismatch *Mismatch
}

func pass() Outcome {
	return Outcome{Passed: true}
}

func fail(description string, reprs *Reprs) Outcome {
	return Outcome{Mismatch: &Mismatch{Description: description, Reprs: reprs}}
}

// Location is the call site of an assertion in test code.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Expectation is a composable description of a condition to check against a
// subject. The set of variants is closed: Atomic, Not, All and Any.
type Expectation interface {
	// Describe returns the positive description of the condition, phrased
	// to follow "expected <expression> ...", e.g. "to be positive".
	Describe() string

	variant()
}

// Atomic is a single check backed by an opaque predicate.
type Atomic struct {
	name        string
	description string
	test        Predicate
	repr        ReprFunc
}

// AtomicOption configures an Atomic expectation.
type AtomicOption func(*Atomic)

// WithReprs attaches a representation builder so failures of this
// expectation carry a diffable expected/actual pair.
func WithReprs(fn ReprFunc) AtomicOption {
	return func(a *Atomic) {
		a.repr = fn
	}
}

// NewAtomic builds an atomic expectation. The name identifies the predicate
// in programming-error messages; the description is the positive condition
// phrase, e.g. "to be equal to 42".
func NewAtomic(name, description string, test Predicate, opts ...AtomicOption) *Atomic {
	a := &Atomic{name: name, description: description, test: test}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Atomic) Describe() string { return a.description }

// Name returns the predicate identifier.
func (a *Atomic) Name() string { return a.name }

func (*Atomic) variant() {}

// Not passes iff its inner expectation fails. The inner expectation is
// evaluated exactly once.
type Not struct {
	Inner Expectation
}

// NotOf wraps an expectation in a Not combinator.
func NotOf(inner Expectation) *Not {
	return &Not{Inner: inner}
}

func (n *Not) Describe() string { return "NOT " + n.Inner.Describe() }

func (*Not) variant() {}

// All passes iff every inner expectation passes. Every inner expectation is
// evaluated, without short-circuiting, so a failure reports all violated
// sub-conditions at once.
type All struct {
	Inner []Expectation
}

// AllOf combines expectations with AND semantics.
func AllOf(inner ...Expectation) *All {
	return &All{Inner: inner}
}

func (a *All) Describe() string {
	return "to satisfy all of: " + describeList(a.Inner)
}

func (*All) variant() {}

// Any passes iff at least one inner expectation passes. Evaluation stops at
// the first success; on overall failure every inner expectation has been
// evaluated and all failure descriptions are reported.
type Any struct {
	Inner []Expectation
}

// AnyOf combines expectations with OR semantics.
func AnyOf(inner ...Expectation) *Any {
	return &Any{Inner: inner}
}

func (a *Any) Describe() string {
	return "to satisfy any of: " + describeList(a.Inner)
}

func (*Any) variant() {}

func describeList(inner []Expectation) string {
	parts := make([]string, len(inner))
	for i, e := range inner {
		parts[i] = e.Describe()
	}
	return strings.Join(parts, ", ")
}

// Evaluate runs the expectation against the subject using the generic
// expression word in failure messages.
func Evaluate(subject any, e Expectation) Outcome {
	return EvaluateNamed(DefaultExpression, subject, e)
}

// EvaluateNamed runs the expectation against the subject, naming the
// asserted expression in failure messages. Evaluation is pure: the only
// effect is the returned Outcome. Combinators recurse in declared order
// with no parallelism. An unknown expectation variant or an inapplicable
// predicate is a programming error and panics.
func EvaluateNamed(expression string, subject any, e Expectation) Outcome {
	switch exp := e.(type) {
	case *Atomic:
		return evaluateAtomic(expression, subject, exp)
	case *Not:
		return evaluateNot(expression, subject, exp)
	case *All:
		return evaluateAll(expression, subject, exp)
	case *Any:
		return evaluateAny(expression, subject, exp)
	default:
		panic(fmt.Sprintf("veritas: unknown expectation variant %T", e))
	}
}

func evaluateAtomic(expression string, subject any, a *Atomic) Outcome {
	if a.test == nil {
		panic(fmt.Sprintf("veritas: predicate %q has no test function", a.name))
	}
	ok, err := a.test(subject)
	if err != nil {
		panic(fmt.Sprintf("veritas: predicate %q cannot be applied: %v", a.name, err))
	}
	if ok {
		return pass()
	}
	var reprs *Reprs
	if a.repr != nil {
		reprs = a.repr(subject)
	}
	return fail(fmt.Sprintf("expected %s %s", expression, a.description), reprs)
}

func evaluateNot(expression string, subject any, n *Not) Outcome {
	inner := EvaluateNamed(expression, subject, n.Inner)
	if inner.Passed {
		return fail(fmt.Sprintf("expected %s NOT %s, but it did", expression, n.Inner.Describe()), nil)
	}
	return pass()
}

func evaluateAll(expression string, subject any, a *All) Outcome {
	var failed []string
	for i, inner := range a.Inner {
		out := EvaluateNamed(expression, subject, inner)
		if !out.Passed {
			failed = append(failed, fmt.Sprintf("%d. %s", i+1, flatten(out.Mismatch)))
		}
	}
	if len(failed) == 0 {
		return pass()
	}
	return fail(strings.Join(failed, "\n"), nil)
}

func evaluateAny(expression string, subject any, a *Any) Outcome {
	var failed []string
	for i, inner := range a.Inner {
		out := EvaluateNamed(expression, subject, inner)
		if out.Passed {
			return pass()
		}
		failed = append(failed, fmt.Sprintf("%d. %s", i+1, flatten(out.Mismatch)))
	}
	description := fmt.Sprintf("expected %s %s, but none was satisfied:\n%s",
		expression, a.Describe(), strings.Join(failed, "\n"))
	if len(a.Inner) == 0 {
		description = fmt.Sprintf("expected %s to satisfy any of no conditions", expression)
	}
	return fail(description, nil)
}

// flatten folds a sub-expectation's representation pair into its
// description, since combinator mismatches aggregate text only.
func flatten(m *Mismatch) string {
	if m.Reprs == nil {
		return m.Description
	}
	return fmt.Sprintf("%s\n   but was: %s\n  expected: %s", m.Description, m.Reprs.Actual, m.Reprs.Expected)
}
