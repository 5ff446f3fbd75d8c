package validator

import (
	"testing"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

var testCountries = map[string]bool{
	"USA": true,
	"GBR": true,
	"CAN": true,
	"DEU": true,
}

func model(key resource.FidesKey) resource.FidesModel {
	return resource.FidesModel{
		FidesKey:             key,
		OrganizationFidesKey: resource.DefaultOrganizationKey,
	}
}

func errTypes(t *testing.T, err error) *taxErrors.ErrorList {
	t.Helper()
	errList, ok := err.(*taxErrors.ErrorList)
	if !ok {
		t.Fatalf("Expected ErrorList, got %T", err)
	}
	return errList
}

func TestValidator_ValidateDataCategory(t *testing.T) {
	tests := []struct {
		name     string
		category resource.DataCategory
		wantErr  bool
		errType  taxErrors.ErrorType
	}{
		{
			name:     "valid root category",
			category: resource.DataCategory{FidesModel: model("user")},
			wantErr:  false,
		},
		{
			name: "valid child category",
			category: resource.DataCategory{
				FidesModel: model("user.contact.email"),
				ParentKey:  "user.contact",
			},
			wantErr: false,
		},
		{
			name: "parent mismatch",
			category: resource.DataCategory{
				FidesModel: model("user.contact"),
				ParentKey:  "account",
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeParentMismatch,
		},
		{
			name: "self reference",
			category: resource.DataCategory{
				FidesModel: model("user.contact"),
				ParentKey:  "user.contact",
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeSelfReference,
		},
		{
			name: "invalid key characters",
			category: resource.DataCategory{
				FidesModel: model("user contact"),
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeKeyFormat,
		},
		{
			name: "dotted key without parent",
			category: resource.DataCategory{
				FidesModel: model("user.contact"),
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeParentMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(testCountries)
			err := v.ValidateDataCategory(&tt.category)

			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDataCategory() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errTypes(t, err).HasErrorType(tt.errType) {
				t.Errorf("Expected error type %v, got: %v", tt.errType, err)
			}
		})
	}
}

func TestValidator_ValidateDataUse(t *testing.T) {
	tests := []struct {
		name    string
		use     resource.DataUse
		wantErr bool
		errType taxErrors.ErrorType
	}{
		{
			name:    "valid use",
			use:     resource.DataUse{FidesModel: model("advertising")},
			wantErr: false,
		},
		{
			name: "valid legitimate interest with assessment",
			use: resource.DataUse{
				FidesModel:                         model("improve"),
				LegalBasis:                         resource.BasisLegitimateInterest,
				LegitimateInterest:                 true,
				LegitimateInterestImpactAssessment: "https://example.org/lia",
			},
			wantErr: false,
		},
		{
			name: "legitimate interest without assessment",
			use: resource.DataUse{
				FidesModel:         model("improve"),
				LegitimateInterest: true,
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeMissingAssessment,
		},
		{
			name: "legitimate interest basis alone without assessment",
			use: resource.DataUse{
				FidesModel: model("improve"),
				LegalBasis: resource.BasisLegitimateInterest,
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeMissingAssessment,
		},
		{
			name: "legitimate interest with malformed assessment url",
			use: resource.DataUse{
				FidesModel:                         model("improve"),
				LegitimateInterest:                 true,
				LegitimateInterestImpactAssessment: "not a url",
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeMissingAssessment,
		},
		{
			name: "unknown legal basis",
			use: resource.DataUse{
				FidesModel: model("advertising"),
				LegalBasis: "Because We Can",
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidValue,
		},
		{
			name: "unknown special category",
			use: resource.DataUse{
				FidesModel:      model("advertising"),
				SpecialCategory: "Curiosity",
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(testCountries)
			err := v.ValidateDataUse(&tt.use)

			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDataUse() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errTypes(t, err).HasErrorType(tt.errType) {
				t.Errorf("Expected error type %v, got: %v", tt.errType, err)
			}
		})
	}
}

func TestValidator_ValidateDataSubject(t *testing.T) {
	tests := []struct {
		name    string
		subject resource.DataSubject
		wantErr bool
		errType taxErrors.ErrorType
	}{
		{
			name:    "no rights declared",
			subject: resource.DataSubject{FidesModel: model("customer")},
			wantErr: false,
		},
		{
			name: "ALL strategy without values",
			subject: resource.DataSubject{
				FidesModel: model("customer"),
				Rights:     &resource.DataSubjectRights{Strategy: resource.StrategyAll},
			},
			wantErr: false,
		},
		{
			name: "NONE strategy without values",
			subject: resource.DataSubject{
				FidesModel: model("customer"),
				Rights:     &resource.DataSubjectRights{Strategy: resource.StrategyNone},
			},
			wantErr: false,
		},
		{
			name: "INCLUDE strategy with values",
			subject: resource.DataSubject{
				FidesModel: model("customer"),
				Rights: &resource.DataSubjectRights{
					Strategy: resource.StrategyInclude,
					Values:   []resource.DataSubjectRight{resource.RightAccess, resource.RightErasure},
				},
			},
			wantErr: false,
		},
		{
			name: "INCLUDE strategy without values",
			subject: resource.DataSubject{
				FidesModel: model("customer"),
				Rights:     &resource.DataSubjectRights{Strategy: resource.StrategyInclude},
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeIncompleteRights,
		},
		{
			name: "EXCLUDE strategy without values",
			subject: resource.DataSubject{
				FidesModel: model("customer"),
				Rights:     &resource.DataSubjectRights{Strategy: resource.StrategyExclude},
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeIncompleteRights,
		},
		{
			name: "unknown strategy",
			subject: resource.DataSubject{
				FidesModel: model("customer"),
				Rights:     &resource.DataSubjectRights{Strategy: "SOME"},
			},
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(testCountries)
			err := v.ValidateDataSubject(&tt.subject)

			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDataSubject() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errTypes(t, err).HasErrorType(tt.errType) {
				t.Errorf("Expected error type %v, got: %v", tt.errType, err)
			}
		})
	}
}

func TestValidator_ValidatePolicy(t *testing.T) {
	validRule := resource.PolicyRule{
		Name:           "reject-direct-marketing",
		DataCategories: resource.PrivacyRule{Matches: resource.MatchAny, Values: []resource.FidesKey{"user.contact"}},
		DataUses:       resource.PrivacyRule{Matches: resource.MatchAll, Values: []resource.FidesKey{"advertising"}},
		DataSubjects:   resource.PrivacyRule{Matches: resource.MatchNone, Values: []resource.FidesKey{"customer"}},
		DataQualifier:  resource.DefaultDataQualifierKey,
	}

	tests := []struct {
		name    string
		mutate  func(*resource.PolicyRule)
		wantErr bool
		errType taxErrors.ErrorType
	}{
		{
			name:    "valid rule",
			mutate:  func(r *resource.PolicyRule) {},
			wantErr: false,
		},
		{
			name:    "unknown match type",
			mutate:  func(r *resource.PolicyRule) { r.DataUses.Matches = "SOME" },
			wantErr: true,
			errType: taxErrors.ErrorTypeInvalidValue,
		},
		{
			name:    "invalid key in rule values",
			mutate:  func(r *resource.PolicyRule) { r.DataCategories.Values = []resource.FidesKey{"user contact"} },
			wantErr: true,
			errType: taxErrors.ErrorTypeKeyFormat,
		},
		{
			name:    "invalid qualifier key",
			mutate:  func(r *resource.PolicyRule) { r.DataQualifier = "not a key" },
			wantErr: true,
			errType: taxErrors.ErrorTypeKeyFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := validRule
			tt.mutate(&rule)
			policy := resource.Policy{
				FidesModel: model("primary_policy"),
				Rules:      []resource.PolicyRule{rule},
			}

			v := NewValidator(testCountries)
			err := v.ValidatePolicy(&policy)

			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePolicy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !errTypes(t, err).HasErrorType(tt.errType) {
				t.Errorf("Expected error type %v, got: %v", tt.errType, err)
			}
		})
	}
}

func TestValidator_ValidatePolicy_ErrorOrder(t *testing.T) {
	policy := resource.Policy{
		FidesModel: model("primary_policy"),
		Rules: []resource.PolicyRule{{
			Name:           "bad-matches",
			DataCategories: resource.PrivacyRule{Matches: "SOME"},
			DataUses:       resource.PrivacyRule{Matches: "SOME"},
			DataSubjects:   resource.PrivacyRule{Matches: "SOME"},
		}},
	}
	wantFields := []string{
		"data_categories.matches",
		"data_uses.matches",
		"data_subjects.matches",
	}

	// Rule fields are checked in declaration order, so repeated runs
	// must report errors against the same fields in the same sequence.
	for run := 0; run < 5; run++ {
		v := NewValidator(testCountries)
		errList := errTypes(t, v.ValidatePolicy(&policy))

		if len(errList.Errors) != len(wantFields) {
			t.Fatalf("run %d: got %d errors, want %d: %v", run, len(errList.Errors), len(wantFields), errList)
		}
		for i, want := range wantFields {
			if got := errList.Errors[i].Field; got != want {
				t.Errorf("run %d: error %d field = %q, want %q", run, i, got, want)
			}
		}
	}
}

func TestValidator_ValidateOrganization(t *testing.T) {
	tests := []struct {
		name    string
		org     resource.Organization
		wantErr bool
	}{
		{
			name:    "valid without security policy",
			org:     resource.Organization{FidesModel: model("default_organization")},
			wantErr: false,
		},
		{
			name: "valid security policy url",
			org: resource.Organization{
				FidesModel:     model("default_organization"),
				SecurityPolicy: "https://example.org/security",
			},
			wantErr: false,
		},
		{
			name: "malformed security policy url",
			org: resource.Organization{
				FidesModel:     model("default_organization"),
				SecurityPolicy: "ftp:///nohost",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewValidator(testCountries)
			err := v.ValidateOrganization(&tt.org)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOrganization() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateCountryCodes(t *testing.T) {
	tests := []struct {
		name        string
		codes       []string
		wantErr     bool
		wantInvalid string
	}{
		{name: "empty list", codes: nil, wantErr: false},
		{name: "all valid", codes: []string{"USA", "GBR"}, wantErr: false},
		{name: "alpha-2 code", codes: []string{"US"}, wantErr: true, wantInvalid: "US"},
		{name: "all invalid reported together", codes: []string{"US", "UK", "DEU"}, wantErr: true, wantInvalid: "US,UK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCountryCodes(tt.codes, testCountries, "test_system")

			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateCountryCodes(%v) error = %v, wantErr %v", tt.codes, err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				return
			}
			if err.Type != taxErrors.ErrorTypeInvalidCountryCode {
				t.Errorf("error type = %v, want %v", err.Type, taxErrors.ErrorTypeInvalidCountryCode)
			}
			if err.Value != tt.wantInvalid {
				t.Errorf("invalid codes = %q, want %q", err.Value, tt.wantInvalid)
			}
		})
	}
}

func TestValidator_ValidateEvaluation(t *testing.T) {
	v := NewValidator(testCountries)

	eval := resource.NewEvaluation(resource.StatusPass)
	if eval.FidesKey == "" {
		t.Fatal("NewEvaluation() did not generate a key")
	}
	if err := v.ValidateEvaluation(eval); err != nil {
		t.Errorf("ValidateEvaluation() error = %v", err)
	}

	eval.Status = "MAYBE"
	err := v.ValidateEvaluation(eval)
	if err == nil {
		t.Fatal("ValidateEvaluation() accepted an unknown status")
	}
	if !errTypes(t, err).HasErrorType(taxErrors.ErrorTypeInvalidValue) {
		t.Errorf("Expected invalid value error, got: %v", err)
	}
}

func TestValidator_Validate_AccumulatesAllErrors(t *testing.T) {
	taxonomy := &resource.Taxonomy{
		DataCategories: []resource.DataCategory{
			{FidesModel: model("bad key")},
			{FidesModel: model("user.contact"), ParentKey: "account"},
		},
		DataUses: []resource.DataUse{
			{FidesModel: model("improve"), LegitimateInterest: true},
		},
	}
	Normalize(taxonomy)

	v := NewValidator(testCountries)
	err := v.Validate(taxonomy)
	if err == nil {
		t.Fatal("Validate() = nil, want accumulated errors")
	}

	errList := errTypes(t, err)
	if errList.Count() != 3 {
		t.Errorf("Count() = %d, want 3: %v", errList.Count(), errList)
	}
	for _, want := range []taxErrors.ErrorType{
		taxErrors.ErrorTypeKeyFormat,
		taxErrors.ErrorTypeParentMismatch,
		taxErrors.ErrorTypeMissingAssessment,
	} {
		if !errList.HasErrorType(want) {
			t.Errorf("missing error type %v in: %v", want, errList)
		}
	}
}
