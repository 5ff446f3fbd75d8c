package validator

import (
	"fmt"
	"net/url"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

// checkHierarchy validates parent/child key consistency and records
// the failure against the resource.
func (v *Validator) checkHierarchy(errs *taxErrors.ErrorList, ownKey, parentKey resource.FidesKey) {
	if parentKey != "" {
		v.checkKey(errs, parentKey, string(ownKey), "parent_key")
	}
	if err := ValidateHierarchy(ownKey, parentKey); err != nil {
		errs.Add(err)
	}
}

func (v *Validator) checkDataCategory(errs *taxErrors.ErrorList, c *resource.DataCategory) {
	v.checkModel(errs, &c.FidesModel)
	v.checkHierarchy(errs, c.FidesKey, c.ParentKey)
}

func (v *Validator) checkDataQualifier(errs *taxErrors.ErrorList, q *resource.DataQualifier) {
	v.checkModel(errs, &q.FidesModel)
	v.checkHierarchy(errs, q.FidesKey, q.ParentKey)
}

func (v *Validator) checkDataUse(errs *taxErrors.ErrorList, u *resource.DataUse) {
	v.checkModel(errs, &u.FidesModel)
	v.checkHierarchy(errs, u.FidesKey, u.ParentKey)

	if u.LegalBasis != "" && !validLegalBases[u.LegalBasis] {
		errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
			fmt.Sprintf("legal basis %q is not an allowable category", u.LegalBasis),
			string(u.FidesKey), "legal_basis", string(u.LegalBasis))
	}
	if u.SpecialCategory != "" && !validSpecialCategories[u.SpecialCategory] {
		errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
			fmt.Sprintf("special category %q is not an allowable category", u.SpecialCategory),
			string(u.FidesKey), "special_category", string(u.SpecialCategory))
	}

	// A legitimate interest requires a reachable impact assessment.
	// The legal basis alone implies the flag, whether or not the
	// taxonomy has been normalized yet.
	if u.LegitimateInterest || u.LegalBasis == resource.BasisLegitimateInterest {
		if u.LegitimateInterestImpactAssessment == "" {
			errs.AddError(taxErrors.ErrorTypeMissingAssessment,
				"impact assessment cannot be empty for a legitimate interest, please provide a valid url",
				string(u.FidesKey), "legitimate_interest_impact_assessment")
		} else if !isValidURL(u.LegitimateInterestImpactAssessment) {
			errs.AddValueError(taxErrors.ErrorTypeMissingAssessment,
				fmt.Sprintf("impact assessment %q is not a valid url", u.LegitimateInterestImpactAssessment),
				string(u.FidesKey), "legitimate_interest_impact_assessment",
				u.LegitimateInterestImpactAssessment)
		}
	}
}

func (v *Validator) checkDataSubject(errs *taxErrors.ErrorList, s *resource.DataSubject) {
	v.checkModel(errs, &s.FidesModel)

	if s.Rights == nil {
		return
	}

	switch s.Rights.Strategy {
	case resource.StrategyAll, resource.StrategyNone:
	case resource.StrategyInclude, resource.StrategyExclude:
		if len(s.Rights.Values) == 0 {
			errs.AddValueError(taxErrors.ErrorTypeIncompleteRights,
				fmt.Sprintf("if %s is chosen, rights must also be listed", s.Rights.Strategy),
				string(s.FidesKey), "rights", string(s.Rights.Strategy))
		}
	default:
		errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
			fmt.Sprintf("rights strategy %q must be one of ALL, EXCLUDE, INCLUDE, NONE", s.Rights.Strategy),
			string(s.FidesKey), "rights.strategy", string(s.Rights.Strategy))
	}
}

func (v *Validator) checkOrganization(errs *taxErrors.ErrorList, o *resource.Organization) {
	v.checkModel(errs, &o.FidesModel)

	if o.SecurityPolicy != "" && !isValidURL(o.SecurityPolicy) {
		errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
			fmt.Sprintf("security policy %q is not a valid url", o.SecurityPolicy),
			string(o.FidesKey), "security_policy", o.SecurityPolicy)
	}
}

func (v *Validator) checkPolicy(errs *taxErrors.ErrorList, p *resource.Policy) {
	v.checkModel(errs, &p.FidesModel)

	for i := range p.Rules {
		rule := &p.Rules[i]
		for _, target := range []struct {
			field string
			rule  *resource.PrivacyRule
		}{
			{"data_categories", &rule.DataCategories},
			{"data_uses", &rule.DataUses},
			{"data_subjects", &rule.DataSubjects},
		} {
			field, pr := target.field, target.rule
			if !validMatchTypes[pr.Matches] {
				errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
					fmt.Sprintf("rule %q %s matches %q must be one of ANY, ALL, NONE, OTHER", rule.Name, field, pr.Matches),
					string(p.FidesKey), field+".matches", string(pr.Matches))
			}
			v.checkKeyList(errs, pr.Values, string(p.FidesKey), field+".values")
		}
		v.checkOptionalKey(errs, rule.DataQualifier, string(p.FidesKey), "data_qualifier")
	}
}

var validLegalBases = map[resource.LegalBasis]bool{
	resource.BasisConsent:            true,
	resource.BasisContract:           true,
	resource.BasisLegalObligation:    true,
	resource.BasisVitalInterest:      true,
	resource.BasisPublicInterest:     true,
	resource.BasisLegitimateInterest: true,
}

var validSpecialCategories = map[resource.SpecialCategory]bool{
	resource.SpecialConsent:             true,
	resource.SpecialEmployment:          true,
	resource.SpecialVitalInterest:       true,
	resource.SpecialNonProfitBodies:     true,
	resource.SpecialPublicByDataSubject: true,
	resource.SpecialLegalClaims:         true,
	resource.SpecialPublicInterest:      true,
	resource.SpecialMedical:             true,
	resource.SpecialPublicHealth:        true,
}

var validMatchTypes = map[resource.MatchType]bool{
	resource.MatchAny:   true,
	resource.MatchAll:   true,
	resource.MatchNone:  true,
	resource.MatchOther: true,
}

// isValidURL accepts absolute URLs with a scheme and host.
func isValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
