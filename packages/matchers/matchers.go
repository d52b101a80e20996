package matchers

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/go-cmp/cmp"

	"github.com/abdul-hamid-achik/veritas/packages/core/expect"
)

// formatValue renders a value the way failure messages show it. Strings are
// quoted so whitespace differences stay visible in diffs.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return strconv.Quote(val)
	case []byte:
		return strconv.Quote(string(val))
	default:
		return fmt.Sprintf("%v", v)
	}
}

func reprPair(expected any) expect.ReprFunc {
	return func(subject any) *expect.Reprs {
		return &expect.Reprs{
			Expected: formatValue(expected),
			Actual:   formatValue(subject),
		}
	}
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	}
	return 0, false
}

// valuesEqual compares loosely: deep equality first, then numeric equality
// across integer and float kinds, then the formatted forms.
func valuesEqual(a, b any) bool {
	if reflect.DeepEqual(a, b) {
		return true
	}
	an, aOk := toFloat64(a)
	bn, bOk := toFloat64(b)
	if aOk && bOk && an == bn {
		return true
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

// computeLength returns the length of a value, or -1 if length cannot be
// computed.
func computeLength(v any) int {
	switch val := v.(type) {
	case string:
		return len(val)
	case []any:
		return len(val)
	case map[string]any:
		return len(val)
	default:
		rv := reflect.ValueOf(v)
		switch rv.Kind() {
		case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
			return rv.Len()
		default:
			return -1
		}
	}
}

// IsEqualTo expects the subject to equal the expected value, comparing
// loosely across numeric kinds.
func IsEqualTo(expected any) expect.Expectation {
	return expect.NewAtomic("is_equal_to",
		fmt.Sprintf("to be equal to %s", formatValue(expected)),
		func(subject any) (bool, error) {
			return valuesEqual(subject, expected), nil
		},
		expect.WithReprs(reprPair(expected)),
	)
}

// IsNotEqualTo is the inversion of IsEqualTo.
func IsNotEqualTo(expected any) expect.Expectation {
	return expect.NotOf(IsEqualTo(expected))
}

// IsDeepEqualTo expects structural equality as reported by go-cmp. Subject
// and expected value must be comparable by cmp.Equal (no unexported fields
// without options).
func IsDeepEqualTo(expected any) expect.Expectation {
	return expect.NewAtomic("is_deep_equal_to",
		fmt.Sprintf("to be deeply equal to %s", formatValue(expected)),
		func(subject any) (bool, error) {
			return cmp.Equal(expected, subject), nil
		},
		expect.WithReprs(reprPair(expected)),
	)
}

func numeric(name, phrase string, threshold any, test func(subject, threshold float64) bool) expect.Expectation {
	want, wantOk := toFloat64(threshold)
	return expect.NewAtomic(name,
		fmt.Sprintf("to be %s %v", phrase, threshold),
		func(subject any) (bool, error) {
			if !wantOk {
				return false, fmt.Errorf("threshold %v (%T) is not numeric", threshold, threshold)
			}
			got, ok := toFloat64(subject)
			if !ok {
				return false, fmt.Errorf("cannot compare non-numeric value %v (%T)", subject, subject)
			}
			return test(got, want), nil
		},
		expect.WithReprs(func(subject any) *expect.Reprs {
			return &expect.Reprs{
				Expected: fmt.Sprintf("%s %v", comparePhraseSymbol(phrase), threshold),
				Actual:   fmt.Sprintf("%v", subject),
			}
		}),
	)
}

func comparePhraseSymbol(phrase string) string {
	switch phrase {
	case "greater than":
		return ">"
	case "at least":
		return ">="
	case "less than":
		return "<"
	case "at most":
		return "<="
	default:
		return phrase
	}
}

// IsGreaterThan expects subject > threshold, numerically.
func IsGreaterThan(threshold any) expect.Expectation {
	return numeric("is_greater_than", "greater than", threshold, func(s, t float64) bool { return s > t })
}

// IsAtLeast expects subject >= threshold, numerically.
func IsAtLeast(threshold any) expect.Expectation {
	return numeric("is_at_least", "at least", threshold, func(s, t float64) bool { return s >= t })
}

// IsLessThan expects subject < threshold, numerically.
func IsLessThan(threshold any) expect.Expectation {
	return numeric("is_less_than", "less than", threshold, func(s, t float64) bool { return s < t })
}

// IsAtMost expects subject <= threshold, numerically.
func IsAtMost(threshold any) expect.Expectation {
	return numeric("is_at_most", "at most", threshold, func(s, t float64) bool { return s <= t })
}

// IsInRange expects min <= subject <= max, numerically.
func IsInRange(min, max any) expect.Expectation {
	lo, loOk := toFloat64(min)
	hi, hiOk := toFloat64(max)
	return expect.NewAtomic("is_in_range",
		fmt.Sprintf("to be in range %v..=%v", min, max),
		func(subject any) (bool, error) {
			if !loOk || !hiOk {
				return false, fmt.Errorf("range bounds %v..%v are not numeric", min, max)
			}
			got, ok := toFloat64(subject)
			if !ok {
				return false, fmt.Errorf("cannot compare non-numeric value %v (%T)", subject, subject)
			}
			return got >= lo && got <= hi, nil
		},
		expect.WithReprs(func(subject any) *expect.Reprs {
			return &expect.Reprs{
				Expected: fmt.Sprintf("%v..=%v", min, max),
				Actual:   fmt.Sprintf("%v", subject),
			}
		}),
	)
}

// IsPositive expects subject > 0.
func IsPositive() expect.Expectation {
	return numeric("is_positive", "greater than", 0, func(s, t float64) bool { return s > t })
}

// IsNegative expects subject < 0.
func IsNegative() expect.Expectation {
	return numeric("is_negative", "less than", 0, func(s, t float64) bool { return s < t })
}

// IsEven expects an integer subject divisible by two.
func IsEven() expect.Expectation {
	return expect.NewAtomic("is_even", "to be even",
		func(subject any) (bool, error) {
			n, ok := toInt64(subject)
			if !ok {
				return false, fmt.Errorf("cannot test parity of non-integer value %v (%T)", subject, subject)
			}
			return n%2 == 0, nil
		},
	)
}

// IsOdd expects an integer subject not divisible by two.
func IsOdd() expect.Expectation {
	return expect.NewAtomic("is_odd", "to be odd",
		func(subject any) (bool, error) {
			n, ok := toInt64(subject)
			if !ok {
				return false, fmt.Errorf("cannot test parity of non-integer value %v (%T)", subject, subject)
			}
			return n%2 != 0, nil
		},
	)
}

// IsEmpty expects a string, slice, array, map or channel subject with
// length zero.
func IsEmpty() expect.Expectation {
	return expect.NewAtomic("is_empty", "to be empty",
		func(subject any) (bool, error) {
			length := computeLength(subject)
			if length == -1 {
				return false, fmt.Errorf("cannot get length of %T", subject)
			}
			return length == 0, nil
		},
	)
}

// HasLength expects the subject's length to equal n.
func HasLength(n int) expect.Expectation {
	return expect.NewAtomic("has_length",
		fmt.Sprintf("to have a length of %d", n),
		func(subject any) (bool, error) {
			length := computeLength(subject)
			if length == -1 {
				return false, fmt.Errorf("cannot get length of %T", subject)
			}
			return length == n, nil
		},
		expect.WithReprs(func(subject any) *expect.Reprs {
			return &expect.Reprs{
				Expected: strconv.Itoa(n),
				Actual:   strconv.Itoa(computeLength(subject)),
			}
		}),
	)
}

// Contains expects the formatted subject to contain the formatted expected
// value as a substring.
func Contains(part any) expect.Expectation {
	return expect.NewAtomic("contains",
		fmt.Sprintf("to contain %s", formatValue(part)),
		func(subject any) (bool, error) {
			return strings.Contains(fmt.Sprintf("%v", subject), fmt.Sprintf("%v", part)), nil
		},
		expect.WithReprs(reprPair(part)),
	)
}

// StartsWith expects the formatted subject to start with the given prefix.
func StartsWith(prefix string) expect.Expectation {
	return expect.NewAtomic("starts_with",
		fmt.Sprintf("to start with %s", formatValue(prefix)),
		func(subject any) (bool, error) {
			return strings.HasPrefix(fmt.Sprintf("%v", subject), prefix), nil
		},
		expect.WithReprs(reprPair(prefix)),
	)
}

// EndsWith expects the formatted subject to end with the given suffix.
func EndsWith(suffix string) expect.Expectation {
	return expect.NewAtomic("ends_with",
		fmt.Sprintf("to end with %s", formatValue(suffix)),
		func(subject any) (bool, error) {
			return strings.HasSuffix(fmt.Sprintf("%v", subject), suffix), nil
		},
		expect.WithReprs(reprPair(suffix)),
	)
}

// MatchesPattern expects the formatted subject to match the regular
// expression. An invalid pattern is a programming error surfaced when the
// expectation is evaluated.
func MatchesPattern(pattern string) expect.Expectation {
	re, compileErr := regexp.Compile(pattern)
	return expect.NewAtomic("matches_pattern",
		fmt.Sprintf("to match /%s/", pattern),
		func(subject any) (bool, error) {
			if compileErr != nil {
				return false, fmt.Errorf("invalid regex pattern: %w", compileErr)
			}
			return re.MatchString(fmt.Sprintf("%v", subject)), nil
		},
	)
}

// ContainsElement expects a slice or array subject to contain an element
// equal to the expected value.
func ContainsElement(element any) expect.Expectation {
	return expect.NewAtomic("contains_element",
		fmt.Sprintf("to contain the element %s", formatValue(element)),
		func(subject any) (bool, error) {
			rv := reflect.ValueOf(subject)
			if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
				return false, fmt.Errorf("expected a sequence, got %T", subject)
			}
			for i := 0; i < rv.Len(); i++ {
				if valuesEqual(rv.Index(i).Interface(), element) {
					return true, nil
				}
			}
			return false, nil
		},
		expect.WithReprs(reprPair(element)),
	)
}

// Satisfies expects the subject to satisfy an arbitrary predicate. The
// description should read naturally after "expected <expression>".
func Satisfies(description string, pred func(subject any) bool) expect.Expectation {
	return expect.NewAtomic("satisfies", description,
		func(subject any) (bool, error) {
			return pred(subject), nil
		},
	)
}
