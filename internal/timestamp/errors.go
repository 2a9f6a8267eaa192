package timestamp

import "fmt"

// ErrorType represents the type of timestamp parsing error.
type ErrorType string

const (
	// InvalidFormat means the value does not match the extended ISO 8601
	// grammar, or violates a structural dependency between fields.
	InvalidFormat ErrorType = "INVALID_FORMAT"
	// OutOfRange means a field's value falls outside its valid numeric range.
	OutOfRange ErrorType = "OUT_OF_RANGE"
	// ConstructionError means validated components could not be converted
	// into an absolute instant. It should be unreachable when validation is
	// correct.
	ConstructionError ErrorType = "CONSTRUCTION_ERROR"
)

// ParseError represents an error that occurred while parsing a date/time
// value. Field and Value name the offending field and its value as written.
type ParseError struct {
	Type   ErrorType
	Field  string
	Value  string
	Reason string
}

func (e *ParseError) Error() string {
	switch e.Type {
	case InvalidFormat:
		if e.Field != "" {
			return fmt.Sprintf("invalid format: %s", e.Reason)
		}
		return fmt.Sprintf("invalid format: %q is not an extended ISO 8601 date/time", e.Value)
	case OutOfRange:
		return fmt.Sprintf("%s %s is out of range: %s", e.Field, e.Value, e.Reason)
	case ConstructionError:
		return fmt.Sprintf("cannot construct instant: %s", e.Reason)
	default:
		return fmt.Sprintf("timestamp parse error: %s", e.Reason)
	}
}

func invalidFormatErr(value string) *ParseError {
	return &ParseError{Type: InvalidFormat, Value: value}
}

func structuralErr(field, value, reason string) *ParseError {
	return &ParseError{Type: InvalidFormat, Field: field, Value: value, Reason: reason}
}

func rangeErr(field, value, reason string) *ParseError {
	return &ParseError{Type: OutOfRange, Field: field, Value: value, Reason: reason}
}
