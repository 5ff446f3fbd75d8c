package validator

import (
	"fmt"
	"strings"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
)

// ValidateCountryCodes checks every code in the list against the
// injected set of valid ISO 3166-1 alpha-3 codes. An empty list is a
// no-op. All offending codes are reported in a single error rather
// than failing on the first.
func ValidateCountryCodes(codes []string, valid map[string]bool, resourceKey string) *taxErrors.Error {
	if len(codes) == 0 {
		return nil
	}

	var invalid []string
	for _, code := range codes {
		if !valid[code] {
			invalid = append(invalid, code)
		}
	}

	if len(invalid) > 0 {
		return &taxErrors.Error{
			Type:     taxErrors.ErrorTypeInvalidCountryCode,
			Message:  fmt.Sprintf("country codes must use the ISO 3166-1 alpha-3 format, invalid: %s", strings.Join(invalid, ", ")),
			Resource: resourceKey,
			Field:    "third_country_transfers",
			Value:    strings.Join(invalid, ","),
		}
	}

	return nil
}
