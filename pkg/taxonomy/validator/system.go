package validator

import (
	"fmt"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

// flowDirections are the two directions a system may declare data
// flows and a declaration may reference.
var flowDirections = []string{"egress", "ingress"}

var validFlowableTypes = map[resource.FlowableType]bool{
	resource.FlowableDataset: true,
	resource.FlowableSystem:  true,
	resource.FlowableUser:    true,
}

func (v *Validator) checkSystem(errs *taxErrors.ErrorList, s *resource.System) {
	v.checkModel(errs, &s.FidesModel)

	if s.SystemType == "" {
		errs.AddError(taxErrors.ErrorTypeInvalidValue,
			"system_type is required, examples include: Service, Application, Third Party",
			string(s.FidesKey), "system_type")
	}

	switch s.DataResponsibilityTitle {
	case "", resource.TitleController, resource.TitleProcessor, resource.TitleSubProcessor:
	default:
		errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
			fmt.Sprintf("data responsibility title %q must be one of Controller, Processor, Sub-Processor", s.DataResponsibilityTitle),
			string(s.FidesKey), "data_responsibility_title", string(s.DataResponsibilityTitle))
	}

	if err := ValidateCountryCodes(s.ThirdCountryTransfers, v.countries, string(s.FidesKey)); err != nil {
		errs.Add(err)
	}

	for _, direction := range flowDirections {
		flows := s.Flows(direction)
		for i := range flows {
			v.checkDataFlow(errs, string(s.FidesKey), direction, &flows[i])
		}
	}

	for i := range s.PrivacyDeclarations {
		v.checkDeclaration(errs, s, &s.PrivacyDeclarations[i])
	}
}

// checkDataFlow validates a single declared communication endpoint.
func (v *Validator) checkDataFlow(errs *taxErrors.ErrorList, systemKey, direction string, flow *resource.DataFlow) {
	v.checkKey(errs, flow.FidesKey, systemKey, direction+".fides_key")
	v.checkKeyList(errs, flow.DataCategories, systemKey, direction+".data_categories")

	if !validFlowableTypes[flow.Type] {
		errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
			fmt.Sprintf("data flow type %q must be one of dataset, system, user", flow.Type),
			systemKey, direction+".type", string(flow.Type))
	}

	// The "user" pseudo-resource key and the "user" type require each
	// other.
	keyIsUser := flow.FidesKey == resource.UserKey
	typeIsUser := flow.Type == resource.FlowableUser
	if keyIsUser != typeIsUser {
		errs.AddValueError(taxErrors.ErrorTypeUserTypeMismatch,
			fmt.Sprintf("the 'user' fides_key is required for, and requires, the type 'user' (%s declares fides_key %q with type %q)", direction, flow.FidesKey, flow.Type),
			systemKey, direction, string(flow.FidesKey))
	}
}

// checkDeclaration validates a privacy declaration's own fields and
// the cross-references into the owning system's data flow lists.
func (v *Validator) checkDeclaration(errs *taxErrors.ErrorList, s *resource.System, d *resource.PrivacyDeclaration) {
	systemKey := string(s.FidesKey)

	v.checkKeyList(errs, d.DataCategories, systemKey, "privacy_declarations.data_categories")
	v.checkKey(errs, d.DataUse, systemKey, "privacy_declarations.data_use")
	v.checkOptionalKey(errs, d.DataQualifier, systemKey, "privacy_declarations.data_qualifier")
	v.checkKeyList(errs, d.DataSubjects, systemKey, "privacy_declarations.data_subjects")
	v.checkKeyList(errs, d.DatasetReferences, systemKey, "privacy_declarations.dataset_references")

	for _, direction := range flowDirections {
		var declared []resource.FidesKey
		switch direction {
		case "egress":
			declared = d.Egress
		case "ingress":
			declared = d.Ingress
		}
		if len(declared) == 0 {
			continue
		}

		flowKeys := s.FlowKeys(direction)
		if len(flowKeys) == 0 {
			errs.AddError(taxErrors.ErrorTypeMissingDirection,
				fmt.Sprintf("privacy declaration %q defines %s with one or more resources and is applied to the system %q, which does not itself define any %s", d.Name, direction, systemKey, direction),
				systemKey, "privacy_declarations."+direction)
			continue
		}

		for _, key := range declared {
			v.checkKey(errs, key, systemKey, "privacy_declarations."+direction)
			if !containsKey(flowKeys, key) {
				errs.AddValueError(taxErrors.ErrorTypeUnknownDataFlow,
					fmt.Sprintf("privacy declaration %q defines %s with %q and is applied to the system %q, which does not itself define %s with that resource", d.Name, direction, key, systemKey, direction),
					systemKey, "privacy_declarations."+direction, string(key))
			}
		}
	}
}

func containsKey(keys []resource.FidesKey, key resource.FidesKey) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
