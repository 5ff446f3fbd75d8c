package validator

import (
	"fmt"
	"strings"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
)

// arrayMarker is the suffix that marks a declared data type as an
// array of its base type.
const arrayMarker = "[]"

// validDataTypes is the allow-list of supported base type names for
// dataset field declarations.
var validDataTypes = map[string]bool{
	"string":    true,
	"integer":   true,
	"float":     true,
	"boolean":   true,
	"object_id": true,
	"object":    true,
}

// ParseDataType splits a declared data-type string into its base type
// and an is-array flag. An empty input means the type is simply
// unspecified and parses to ("", false) without error. An unrecognized
// base type fails with an unknown_data_type error.
func ParseDataType(typeString string) (string, bool, *taxErrors.Error) {
	if typeString == "" {
		return "", false, nil
	}

	isArray := strings.HasSuffix(typeString, arrayMarker)
	baseType := strings.TrimSuffix(typeString, arrayMarker)

	if !validDataTypes[baseType] {
		return "", false, &taxErrors.Error{
			Type:    taxErrors.ErrorTypeUnknownDataType,
			Message: fmt.Sprintf("the data type %q is not supported", baseType),
			Value:   typeString,
		}
	}

	return baseType, isArray, nil
}

// DataTypeNames returns the sorted-in-source allow-list of base type
// names, for error messages and docs.
func DataTypeNames() []string {
	return []string{"boolean", "float", "integer", "object", "object_id", "string"}
}
