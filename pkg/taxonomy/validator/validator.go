package validator

import (
	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

// Validator runs every validation pass over a taxonomy. Validation is
// synchronous, pure, and free of shared mutable state: independent
// taxonomies can be validated in parallel.
//
// The ISO 3166-1 alpha-3 set is injected at construction; the engine
// does not own the authoritative country list.
type Validator struct {
	countries map[string]bool
}

// NewValidator creates a validator with the given set of valid ISO
// 3166-1 alpha-3 country codes.
func NewValidator(countries map[string]bool) *Validator {
	return &Validator{countries: countries}
}

// Validate checks every resource of a normalized taxonomy and
// accumulates all violations into a single error. It returns nil when
// the taxonomy is fully valid.
//
// Cross-resource-kind references (a declaration's data categories, a
// data flow's dataset key) are deliberately not resolved against the
// aggregate; only intra-resource and intra-system consistency is
// enforced.
func (v *Validator) Validate(t *resource.Taxonomy) error {
	errs := taxErrors.NewErrorList()

	for i := range t.DataCategories {
		v.checkDataCategory(errs, &t.DataCategories[i])
	}
	for i := range t.DataQualifiers {
		v.checkDataQualifier(errs, &t.DataQualifiers[i])
	}
	for i := range t.DataUses {
		v.checkDataUse(errs, &t.DataUses[i])
	}
	for i := range t.DataSubjects {
		v.checkDataSubject(errs, &t.DataSubjects[i])
	}
	for i := range t.Datasets {
		v.checkDataset(errs, &t.Datasets[i])
	}
	for i := range t.Systems {
		v.checkSystem(errs, &t.Systems[i])
	}
	for i := range t.Policies {
		v.checkPolicy(errs, &t.Policies[i])
	}
	for i := range t.Registries {
		v.checkModel(errs, &t.Registries[i].FidesModel)
	}
	for i := range t.Organizations {
		v.checkOrganization(errs, &t.Organizations[i])
	}

	return errs.ToError()
}

// ValidateDataCategory validates a single data category.
func (v *Validator) ValidateDataCategory(c *resource.DataCategory) error {
	errs := taxErrors.NewErrorList()
	v.checkDataCategory(errs, c)
	return errs.ToError()
}

// ValidateDataQualifier validates a single data qualifier.
func (v *Validator) ValidateDataQualifier(q *resource.DataQualifier) error {
	errs := taxErrors.NewErrorList()
	v.checkDataQualifier(errs, q)
	return errs.ToError()
}

// ValidateDataUse validates a single data use.
func (v *Validator) ValidateDataUse(u *resource.DataUse) error {
	errs := taxErrors.NewErrorList()
	v.checkDataUse(errs, u)
	return errs.ToError()
}

// ValidateDataSubject validates a single data subject.
func (v *Validator) ValidateDataSubject(s *resource.DataSubject) error {
	errs := taxErrors.NewErrorList()
	v.checkDataSubject(errs, s)
	return errs.ToError()
}

// ValidateDataset validates a single dataset with its collections and
// nested fields.
func (v *Validator) ValidateDataset(d *resource.Dataset) error {
	errs := taxErrors.NewErrorList()
	v.checkDataset(errs, d)
	return errs.ToError()
}

// ValidateSystem validates a single system, including the
// cross-reference checks between its data flows and privacy
// declarations.
func (v *Validator) ValidateSystem(s *resource.System) error {
	errs := taxErrors.NewErrorList()
	v.checkSystem(errs, s)
	return errs.ToError()
}

// ValidatePolicy validates a single policy and its rules.
func (v *Validator) ValidatePolicy(p *resource.Policy) error {
	errs := taxErrors.NewErrorList()
	v.checkPolicy(errs, p)
	return errs.ToError()
}

// ValidateOrganization validates a single organization.
func (v *Validator) ValidateOrganization(o *resource.Organization) error {
	errs := taxErrors.NewErrorList()
	v.checkOrganization(errs, o)
	return errs.ToError()
}

// ValidateEvaluation validates an evaluation record.
func (v *Validator) ValidateEvaluation(e *resource.Evaluation) error {
	errs := taxErrors.NewErrorList()
	v.checkKey(errs, e.FidesKey, string(e.FidesKey), "fides_key")
	switch e.Status {
	case resource.StatusPass, resource.StatusFail:
	default:
		errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
			"evaluation status must be one of PASS, FAIL",
			string(e.FidesKey), "status", string(e.Status))
	}
	return errs.ToError()
}

// checkKey validates key format and records the failure against the
// owning resource and field.
func (v *Validator) checkKey(errs *taxErrors.ErrorList, key resource.FidesKey, resourceKey, field string) {
	if err := ValidateKey(key); err != nil {
		err.Resource = resourceKey
		err.Field = field
		errs.Add(err)
	}
}

// checkOptionalKey validates key format for a field that may be left
// unset. Normalization fills most of these with defaults, but resources
// validated directly may still carry an empty value.
func (v *Validator) checkOptionalKey(errs *taxErrors.ErrorList, key resource.FidesKey, resourceKey, field string) {
	if key == "" {
		return
	}
	v.checkKey(errs, key, resourceKey, field)
}

// checkKeyList validates key format for every entry of a list field.
func (v *Validator) checkKeyList(errs *taxErrors.ErrorList, keys []resource.FidesKey, resourceKey, field string) {
	for _, key := range keys {
		v.checkKey(errs, key, resourceKey, field)
	}
}

// checkModel validates the fields every resource shares.
func (v *Validator) checkModel(errs *taxErrors.ErrorList, m *resource.FidesModel) {
	v.checkKey(errs, m.FidesKey, string(m.FidesKey), "fides_key")
	v.checkKey(errs, m.OrganizationFidesKey, string(m.FidesKey), "organization_fides_key")
}
