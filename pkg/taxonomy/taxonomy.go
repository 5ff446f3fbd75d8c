// Package taxonomy is the entry point for parsing and validating
// privacy taxonomy manifests. Downstream tooling should only consume
// Taxonomy values obtained from this package: a returned Taxonomy is
// guaranteed fully valid, there is no partially valid intermediate
// state.
package taxonomy

import (
	"privacyhq/meridian/pkg/taxonomy/defaults"
	"privacyhq/meridian/pkg/taxonomy/parser"
	"privacyhq/meridian/pkg/taxonomy/resource"
	"privacyhq/meridian/pkg/taxonomy/validator"
)

// ParseAndValidate parses a manifest file and validates every resource
// in it. It returns the taxonomy only if parsing and validation both
// succeed.
func ParseAndValidate(path string) (*resource.Taxonomy, error) {
	p := parser.NewParser()
	t, err := p.Parse(path)
	if err != nil {
		return nil, err
	}

	v := validator.NewValidator(defaults.CountryCodes())
	if err := v.Validate(t); err != nil {
		return nil, err
	}

	return t, nil
}

// ParseAndValidateBytes parses and validates manifest YAML from bytes.
func ParseAndValidateBytes(data []byte, source string) (*resource.Taxonomy, error) {
	p := parser.NewParser()
	t, err := p.ParseBytes(data, source)
	if err != nil {
		return nil, err
	}

	v := validator.NewValidator(defaults.CountryCodes())
	if err := v.Validate(t); err != nil {
		return nil, err
	}

	return t, nil
}

// ParseAndValidateMulti parses several manifest files, merges them
// into one taxonomy, and validates the result.
func ParseAndValidateMulti(paths []string) (*resource.Taxonomy, error) {
	p := parser.NewParser()
	t, err := p.ParseMulti(paths)
	if err != nil {
		return nil, err
	}

	v := validator.NewValidator(defaults.CountryCodes())
	if err := v.Validate(t); err != nil {
		return nil, err
	}

	return t, nil
}

// Parse parses a manifest file without validation. Use this to inspect
// resources before validation; the result must not be handed to
// downstream tooling.
func Parse(path string) (*resource.Taxonomy, error) {
	p := parser.NewParser()
	return p.Parse(path)
}

// Validate normalizes and validates a programmatically constructed
// taxonomy, using the default country code set.
func Validate(t *resource.Taxonomy) error {
	validator.Normalize(t)
	v := validator.NewValidator(defaults.CountryCodes())
	return v.Validate(t)
}

// ValidateWith normalizes and validates a taxonomy against an injected
// country code set.
func ValidateWith(t *resource.Taxonomy, countries map[string]bool) error {
	validator.Normalize(t)
	v := validator.NewValidator(countries)
	return v.Validate(t)
}
