package errors

import (
	"fmt"
	"strings"
)

// ErrorType categorizes a taxonomy validation failure.
type ErrorType string

const (
	ErrorTypeKeyFormat          ErrorType = "invalid_key_format"          // Key contains characters outside [A-Za-z0-9._-] or is empty
	ErrorTypeSelfReference      ErrorType = "self_reference"              // parent_key equals the resource's own key
	ErrorTypeParentMismatch     ErrorType = "parent_mismatch"             // Key does not extend parent_key by one or more dotted segments
	ErrorTypeUnknownDataType    ErrorType = "unknown_data_type"           // Declared field data type is not in the allow-list
	ErrorTypeInvalidCountryCode ErrorType = "invalid_country_code"        // Country code absent from the ISO 3166-1 alpha-3 set
	ErrorTypeMissingDirection   ErrorType = "missing_direction"           // Declaration uses egress/ingress the system does not define
	ErrorTypeUnknownDataFlow    ErrorType = "unknown_data_flow_reference" // Declaration references a key absent from the system's data flows
	ErrorTypeUserTypeMismatch   ErrorType = "user_type_mismatch"          // DataFlow key/type disagree on the "user" pseudo-resource
	ErrorTypeIncompleteRights   ErrorType = "incomplete_rights_strategy"  // INCLUDE/EXCLUDE strategy without rights values
	ErrorTypeMissingAssessment  ErrorType = "missing_impact_assessment"   // Legitimate-interest basis without an assessment link
	ErrorTypeInvalidObjectField ErrorType = "invalid_object_field"        // Sub-fields under a non-object type, or categories on an object field
	ErrorTypeInvalidValue       ErrorType = "invalid_value"               // Value outside a fixed enumeration, or a required field left empty
	ErrorTypeSyntax             ErrorType = "syntax"                      // YAML syntax error
	ErrorTypeIO                 ErrorType = "io"                          // File I/O error
)

// Error is a single taxonomy validation failure. It carries enough
// context (resource key, field, offending value) to be actionable
// without consulting the manifest source.
type Error struct {
	Type     ErrorType `json:"type"`               // Category of failure
	Message  string    `json:"message"`            // Human-readable message
	Resource string    `json:"resource,omitempty"` // Fides key of the resource being validated
	Field    string    `json:"field,omitempty"`    // Field on which the failure was detected
	Value    string    `json:"value,omitempty"`    // Offending value, if there is a single one
}

// Error implements the error interface.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("[%s] %s", e.Type, e.Message))

	var ctx []string
	if e.Resource != "" {
		ctx = append(ctx, "resource="+e.Resource)
	}
	if e.Field != "" {
		ctx = append(ctx, "field="+e.Field)
	}
	if e.Value != "" {
		ctx = append(ctx, "value="+e.Value)
	}
	if len(ctx) > 0 {
		sb.WriteString(" (" + strings.Join(ctx, ", ") + ")")
	}

	return sb.String()
}

// ErrorList accumulates validation errors so that a single pass can
// report every violation instead of failing on the first.
type ErrorList struct {
	Errors []*Error
}

// NewErrorList creates a new empty error list.
func NewErrorList() *ErrorList {
	return &ErrorList{
		Errors: make([]*Error, 0),
	}
}

// Add appends an error to the list.
func (el *ErrorList) Add(err *Error) {
	el.Errors = append(el.Errors, err)
}

// AddError creates and adds a new error with the given parameters.
func (el *ErrorList) AddError(errType ErrorType, message, resource, field string) {
	el.Add(&Error{
		Type:     errType,
		Message:  message,
		Resource: resource,
		Field:    field,
	})
}

// AddValueError creates and adds a new error that names a single offending value.
func (el *ErrorList) AddValueError(errType ErrorType, message, resource, field, value string) {
	el.Add(&Error{
		Type:     errType,
		Message:  message,
		Resource: resource,
		Field:    field,
		Value:    value,
	})
}

// Merge appends all errors from another list or single error.
// Non-taxonomy errors are wrapped as IO errors to avoid dropping them.
func (el *ErrorList) Merge(err error) {
	switch e := err.(type) {
	case nil:
	case *ErrorList:
		el.Errors = append(el.Errors, e.Errors...)
	case *Error:
		el.Add(e)
	default:
		el.Add(&Error{Type: ErrorTypeIO, Message: err.Error()})
	}
}

// HasErrors returns true if the error list contains any errors.
func (el *ErrorList) HasErrors() bool {
	return len(el.Errors) > 0
}

// Count returns the number of errors in the list.
func (el *ErrorList) Count() int {
	return len(el.Errors)
}

// Error implements the error interface.
// It returns all errors formatted as a single string.
func (el *ErrorList) Error() string {
	if !el.HasErrors() {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("found %d validation error(s):\n", el.Count()))

	for i, err := range el.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}

	return sb.String()
}

// ToError returns nil if the error list is empty, otherwise the list itself.
func (el *ErrorList) ToError() error {
	if !el.HasErrors() {
		return nil
	}
	return el
}

// ByType returns all errors of the given type.
func (el *ErrorList) ByType(errType ErrorType) []*Error {
	var result []*Error
	for _, err := range el.Errors {
		if err.Type == errType {
			result = append(result, err)
		}
	}
	return result
}

// HasErrorType returns true if the list contains at least one error of the given type.
func (el *ErrorList) HasErrorType(errType ErrorType) bool {
	for _, err := range el.Errors {
		if err.Type == errType {
			return true
		}
	}
	return false
}
