package matchers

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/tidwall/gjson"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/abdul-hamid-achik/veritas/packages/core/expect"
)

func subjectJSON(subject any) (string, error) {
	switch doc := subject.(type) {
	case string:
		if !gjson.Valid(doc) {
			return "", fmt.Errorf("subject is not valid JSON")
		}
		return doc, nil
	case []byte:
		if !gjson.ValidBytes(doc) {
			return "", fmt.Errorf("subject is not valid JSON")
		}
		return string(doc), nil
	default:
		data, err := json.Marshal(subject)
		if err != nil {
			return "", fmt.Errorf("subject is not JSON-serializable: %w", err)
		}
		return string(data), nil
	}
}

// JSONPathEquals expects a JSON document subject whose value at the given
// gjson path equals the expected value.
func JSONPathEquals(path string, expected any) expect.Expectation {
	return expect.NewAtomic("jsonpath_equals",
		fmt.Sprintf("to have the value %s at %q", formatValue(expected), path),
		func(subject any) (bool, error) {
			doc, err := subjectJSON(subject)
			if err != nil {
				return false, err
			}
			result := gjson.Get(doc, path)
			if !result.Exists() {
				return false, nil
			}
			return valuesEqual(result.Value(), expected), nil
		},
		expect.WithReprs(func(subject any) *expect.Reprs {
			doc, err := subjectJSON(subject)
			if err != nil {
				return nil
			}
			return &expect.Reprs{
				Expected: formatValue(expected),
				Actual:   formatValue(gjson.Get(doc, path).Value()),
			}
		}),
	)
}

// JSONPathExists expects a JSON document subject with any value present at
// the given gjson path.
func JSONPathExists(path string) expect.Expectation {
	return expect.NewAtomic("jsonpath_exists",
		fmt.Sprintf("to have a value at %q", path),
		func(subject any) (bool, error) {
			doc, err := subjectJSON(subject)
			if err != nil {
				return false, err
			}
			return gjson.Get(doc, path).Exists(), nil
		},
	)
}

// MatchesJSONSchema expects a JSON document subject that validates against
// the given JSON Schema. Validation errors become the mismatch detail.
func MatchesJSONSchema(schema string) expect.Expectation {
	var violations []string
	return expect.NewAtomic("matches_json_schema",
		"to match the JSON schema",
		func(subject any) (bool, error) {
			doc, err := subjectJSON(subject)
			if err != nil {
				return false, err
			}
			result, err := gojsonschema.Validate(
				gojsonschema.NewStringLoader(schema),
				gojsonschema.NewStringLoader(doc),
			)
			if err != nil {
				return false, fmt.Errorf("schema validation error: %w", err)
			}
			if result.Valid() {
				return true, nil
			}
			violations = violations[:0]
			for _, desc := range result.Errors() {
				violations = append(violations, desc.String())
			}
			return false, nil
		},
		expect.WithReprs(func(subject any) *expect.Reprs {
			return &expect.Reprs{
				Expected: "a document matching the schema",
				Actual:   strings.Join(violations, "; "),
			}
		}),
	)
}

// MatchesYAML expects the subject, parsed as YAML, to be structurally equal
// to the expected YAML document. Both raw texts are kept as the diffable
// representations.
func MatchesYAML(expected string) expect.Expectation {
	return expect.NewAtomic("matches_yaml",
		"to match the expected YAML document",
		func(subject any) (bool, error) {
			text, ok := subject.(string)
			if !ok {
				if raw, isBytes := subject.([]byte); isBytes {
					text = string(raw)
				} else {
					return false, fmt.Errorf("expected a YAML document string, got %T", subject)
				}
			}
			var got, want any
			if err := yaml.Unmarshal([]byte(text), &got); err != nil {
				return false, fmt.Errorf("subject is not valid YAML: %w", err)
			}
			if err := yaml.Unmarshal([]byte(expected), &want); err != nil {
				return false, fmt.Errorf("expected document is not valid YAML: %w", err)
			}
			return cmp.Equal(want, got), nil
		},
		expect.WithReprs(func(subject any) *expect.Reprs {
			text, _ := subject.(string)
			if raw, ok := subject.([]byte); ok {
				text = string(raw)
			}
			return &expect.Reprs{
				Expected: strings.TrimSpace(expected),
				Actual:   strings.TrimSpace(text),
			}
		}),
	)
}
