package scenario

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Validate turns raw model text into a Scenario. It parses first and checks
// structure second so that syntax errors (MalformedOutput) and shape errors
// (SchemaViolation) stay distinguishable. Validate has no side effects.
func Validate(raw string) (Scenario, *Error) {
	parsed, err := parseJSON(raw)
	if err != nil {
		return Scenario{}, malformedError(raw, err)
	}
	if violations := validateShape(parsed); len(violations) > 0 {
		return Scenario{}, schemaError(parsed, violations)
	}
	sc, err := toScenario(parsed.(map[string]any))
	if err != nil {
		return Scenario{}, malformedError(raw, err)
	}
	return sc, nil
}

func parseJSON(raw string) (any, error) {
	dec := json.NewDecoder(bytes.NewBufferString(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level JSON value")
	}
	return v, nil
}

func validateShape(v any) []Violation {
	obj, ok := v.(map[string]any)
	if !ok {
		return []Violation{{Field: "(root)", Expected: "object", Got: jsonType(v)}}
	}
	var out []Violation
	for _, f := range scenarioFields {
		val, present := obj[f.Name]
		if !present {
			out = append(out, Violation{Field: f.Name, Expected: f.Kind.String(), Got: "missing"})
			continue
		}
		out = append(out, checkField(f, val)...)
	}
	return out
}

func checkField(f field, val any) []Violation {
	switch f.Kind {
	case kindBoolean:
		if _, ok := val.(bool); !ok {
			return []Violation{{Field: f.Name, Expected: "boolean", Got: jsonType(val)}}
		}
	case kindStringList:
		items, ok := val.([]any)
		if !ok {
			return []Violation{{Field: f.Name, Expected: f.Kind.String(), Got: jsonType(val)}}
		}
		if len(items) == 0 {
			return []Violation{{Field: f.Name, Expected: "non-empty array of strings", Got: "empty array"}}
		}
		var out []Violation
		for i, item := range items {
			name := fmt.Sprintf("%s[%d]", f.Name, i)
			s, ok := item.(string)
			if !ok {
				out = append(out, Violation{Field: name, Expected: "string", Got: jsonType(item)})
			} else if s == "" {
				out = append(out, Violation{Field: name, Expected: "non-empty string", Got: "empty string"})
			}
		}
		return out
	default:
		s, ok := val.(string)
		if !ok {
			return []Violation{{Field: f.Name, Expected: "string", Got: jsonType(val)}}
		}
		if s == "" {
			return []Violation{{Field: f.Name, Expected: "non-empty string", Got: "empty string"}}
		}
	}
	return nil
}

// toScenario maps a shape-checked object onto the typed view through the
// struct's json tags. Only table fields are carried over, so extra keys
// (including case variants the decoder would fold) cannot leak in.
func toScenario(obj map[string]any) (Scenario, error) {
	known := make(map[string]any, len(scenarioFields))
	for _, f := range scenarioFields {
		known[f.Name] = obj[f.Name]
	}
	b, err := json.Marshal(known)
	if err != nil {
		return Scenario{}, err
	}
	var sc Scenario
	if err := json.Unmarshal(b, &sc); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
