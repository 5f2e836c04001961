package scenario

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"scamgame/internal/metrics"
)

// Kind classifies a failed generation.
type Kind int

const (
	MissingInput Kind = iota + 1
	ProviderCallFailure
	MalformedOutput
	SchemaViolation
)

func (k Kind) String() string {
	switch k {
	case MissingInput:
		return "MissingInput"
	case ProviderCallFailure:
		return "ProviderCallFailure"
	case MalformedOutput:
		return "MalformedOutput"
	case SchemaViolation:
		return "SchemaViolation"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// HTTPStatus maps the kind to the response status code. Only MissingInput
// is the caller's fault.
func (k Kind) HTTPStatus() int {
	if k == MissingInput {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (k Kind) outcome() string {
	switch k {
	case MissingInput:
		return metrics.OutcomeMissingInput
	case ProviderCallFailure:
		return metrics.OutcomeProviderCallFailure
	case MalformedOutput:
		return metrics.OutcomeMalformedOutput
	case SchemaViolation:
		return metrics.OutcomeSchemaViolation
	default:
		return "unknown"
	}
}

// Violation is one structural mismatch between a parsed reply and the
// scenario shape.
type Violation struct {
	Field    string
	Expected string
	Got      string
}

func (v Violation) String() string {
	if v.Got == "missing" {
		return fmt.Sprintf("%s: missing, expected %s", v.Field, v.Expected)
	}
	return fmt.Sprintf("%s: expected %s, got %s", v.Field, v.Expected, v.Got)
}

// Error is a tagged generation failure.
type Error struct {
	Kind    Kind
	Message string
	// Raw is the unparsed model text (MalformedOutput).
	Raw string
	// Data is the parsed but invalid value (SchemaViolation).
	Data       any
	Violations []Violation
	Err        error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if d := e.Details(); d != "" {
		b.WriteString(": ")
		b.WriteString(d)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Details is the diagnostic message: the violation list for SchemaViolation,
// otherwise the wrapped error text.
func (e *Error) Details() string {
	if len(e.Violations) > 0 {
		parts := make([]string, 0, len(e.Violations))
		for _, v := range e.Violations {
			parts = append(parts, v.String())
		}
		return strings.Join(parts, "; ")
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return ""
}

// Chain lists the wrapped error chain, outermost first, one cause per line.
func (e *Error) Chain() string {
	var lines []string
	for err := e.Err; err != nil; err = errors.Unwrap(err) {
		lines = append(lines, err.Error())
	}
	return strings.Join(lines, "\n")
}

const (
	msgMissingInput    = "Prompt is required"
	msgProviderFailure = "Failed to generate AI content."
	msgMalformed       = "AI response was not valid JSON."
	msgSchemaViolation = "AI response missing required fields or has wrong types."
)

var errPromptRequired = errors.New("prompt is empty")

func missingInputError() *Error {
	return &Error{Kind: MissingInput, Message: msgMissingInput, Err: errPromptRequired}
}

func providerError(err error) *Error {
	return &Error{Kind: ProviderCallFailure, Message: msgProviderFailure, Err: err}
}

func malformedError(raw string, err error) *Error {
	return &Error{Kind: MalformedOutput, Message: msgMalformed, Raw: raw, Err: err}
}

func schemaError(data any, violations []Violation) *Error {
	return &Error{Kind: SchemaViolation, Message: msgSchemaViolation, Data: data, Violations: violations}
}
