package validator

import (
	"fmt"
	"regexp"
	"strings"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

// fidesKeyPattern is the restricted alphabet every fides key must
// match in full.
var fidesKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// pathSeparator delimits hierarchy segments in dotted keys.
const pathSeparator = "."

// ValidateKey checks that a candidate key is non-empty and stays
// within the restricted character set. It returns nil on success.
func ValidateKey(key resource.FidesKey) *taxErrors.Error {
	if key == "" {
		return &taxErrors.Error{
			Type:    taxErrors.ErrorTypeKeyFormat,
			Message: "fides key must not be empty",
		}
	}
	if !fidesKeyPattern.MatchString(string(key)) {
		return &taxErrors.Error{
			Type:    taxErrors.ErrorTypeKeyFormat,
			Message: fmt.Sprintf("fides key %q may only contain alphanumeric characters, '.', '_' or '-'", key),
			Value:   string(key),
		}
	}
	return nil
}

// ValidateCollectionKey checks a two-part "dataset.collection" key
// where both halves must themselves be valid fides keys.
func ValidateCollectionKey(key resource.FidesKey) *taxErrors.Error {
	parts := strings.Split(string(key), pathSeparator)
	if len(parts) != 2 {
		return &taxErrors.Error{
			Type:    taxErrors.ErrorTypeKeyFormat,
			Message: fmt.Sprintf("collection key %q must be specified in the form 'dataset.collection'", key),
			Value:   string(key),
		}
	}
	for _, part := range parts {
		if err := ValidateKey(resource.FidesKey(part)); err != nil {
			return &taxErrors.Error{
				Type:    taxErrors.ErrorTypeKeyFormat,
				Message: fmt.Sprintf("collection key %q has an invalid component %q", key, part),
				Value:   string(key),
			}
		}
	}
	return nil
}

// ValidateHierarchy enforces parent/child consistency for hierarchical
// resources. It runs regardless of whether a parent key was declared:
//
//   - a single-segment key is a root and must not declare a parent
//     equal to itself;
//   - a multi-segment key must declare a parent, and the key must
//     literally extend the parent by one or more dotted segments.
func ValidateHierarchy(ownKey, parentKey resource.FidesKey) *taxErrors.Error {
	if parentKey == "" {
		// A dotted key without a declared parent is an orphan, not a root.
		if strings.Contains(string(ownKey), pathSeparator) {
			return &taxErrors.Error{
				Type:     taxErrors.ErrorTypeParentMismatch,
				Message:  fmt.Sprintf("hierarchical key %q requires a parent_key", ownKey),
				Resource: string(ownKey),
				Field:    "parent_key",
			}
		}
		return nil
	}

	if parentKey == ownKey {
		return &taxErrors.Error{
			Type:     taxErrors.ErrorTypeSelfReference,
			Message:  fmt.Sprintf("resource %q may not reference itself as parent", ownKey),
			Resource: string(ownKey),
			Field:    "parent_key",
			Value:    string(parentKey),
		}
	}

	if !strings.HasPrefix(string(ownKey), string(parentKey)+pathSeparator) {
		return &taxErrors.Error{
			Type:     taxErrors.ErrorTypeParentMismatch,
			Message:  fmt.Sprintf("the parent_key %q does not match the resource's own key %q", parentKey, ownKey),
			Resource: string(ownKey),
			Field:    "parent_key",
			Value:    string(parentKey),
		}
	}

	return nil
}
