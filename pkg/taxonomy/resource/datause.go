package resource

// LegalBasis is an allowable legal basis category for a data use,
// based on article 6 of the GDPR.
type LegalBasis string

const (
	BasisConsent            LegalBasis = "Consent"
	BasisContract           LegalBasis = "Contract"
	BasisLegalObligation    LegalBasis = "Legal Obligation"
	BasisVitalInterest      LegalBasis = "Vital Interest"
	BasisPublicInterest     LegalBasis = "Public Interest"
	BasisLegitimateInterest LegalBasis = "Legitimate Interests"
)

// SpecialCategory is a category for processing special classes of
// personal data, based on article 9 of the GDPR.
type SpecialCategory string

const (
	SpecialConsent             SpecialCategory = "Consent"
	SpecialEmployment          SpecialCategory = "Employment"
	SpecialVitalInterest       SpecialCategory = "Vital Interests"
	SpecialNonProfitBodies     SpecialCategory = "Non-profit Bodies"
	SpecialPublicByDataSubject SpecialCategory = "Public by Data Subject"
	SpecialLegalClaims         SpecialCategory = "Legal Claims"
	SpecialPublicInterest      SpecialCategory = "Substantial Public Interest"
	SpecialMedical             SpecialCategory = "Medical"
	SpecialPublicHealth        SpecialCategory = "Public Health Interest"
)

// DataUse describes a purpose for which data is used. Uses form a
// dotted-path hierarchy via ParentKey.
//
// When LegalBasis is "Legitimate Interests", LegitimateInterest is
// force-set true at construction time and a non-empty
// LegitimateInterestImpactAssessment URL becomes mandatory.
type DataUse struct {
	FidesModel `yaml:",inline"`

	ParentKey                          FidesKey        `yaml:"parent_key,omitempty" json:"parent_key,omitempty"`
	LegalBasis                         LegalBasis      `yaml:"legal_basis,omitempty" json:"legal_basis,omitempty"`
	SpecialCategory                    SpecialCategory `yaml:"special_category,omitempty" json:"special_category,omitempty"`
	Recipients                         []string        `yaml:"recipients,omitempty" json:"recipients,omitempty"`
	LegitimateInterest                 bool            `yaml:"legitimate_interest,omitempty" json:"legitimate_interest,omitempty"`
	LegitimateInterestImpactAssessment string          `yaml:"legitimate_interest_impact_assessment,omitempty" json:"legitimate_interest_impact_assessment,omitempty"`
	IsDefault                          bool            `yaml:"is_default,omitempty" json:"is_default,omitempty"`
}
