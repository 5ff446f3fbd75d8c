package resource

// RightsStrategy determines whether the listed rights are included,
// excluded, all applied, or none applied for a data subject.
type RightsStrategy string

const (
	StrategyAll     RightsStrategy = "ALL"
	StrategyExclude RightsStrategy = "EXCLUDE"
	StrategyInclude RightsStrategy = "INCLUDE"
	StrategyNone    RightsStrategy = "NONE"
)

// DataSubjectRight is a right a data subject holds over their personal
// data, based on chapter 3 of the GDPR.
type DataSubjectRight string

const (
	RightInformed                  DataSubjectRight = "Informed"
	RightAccess                    DataSubjectRight = "Access"
	RightRectification             DataSubjectRight = "Rectification"
	RightErasure                   DataSubjectRight = "Erasure"
	RightPortability               DataSubjectRight = "Portability"
	RightRestrictProcessing        DataSubjectRight = "Restrict Processing"
	RightWithdrawConsent           DataSubjectRight = "Withdraw Consent"
	RightObject                    DataSubjectRight = "Object"
	RightObjectAutomatedProcessing DataSubjectRight = "Object to Automated Processing"
)

// DataSubjectRights pairs a strategy with an optional list of rights to
// apply via that strategy. INCLUDE and EXCLUDE require the list to be
// populated.
type DataSubjectRights struct {
	Strategy RightsStrategy     `yaml:"strategy" json:"strategy"`
	Values   []DataSubjectRight `yaml:"values,omitempty" json:"values,omitempty"`
}

// DataSubject describes whose data is being processed, e.g. a customer
// or an employee.
type DataSubject struct {
	FidesModel `yaml:",inline"`

	Rights                        *DataSubjectRights `yaml:"rights,omitempty" json:"rights,omitempty"`
	AutomatedDecisionsOrProfiling *bool              `yaml:"automated_decisions_or_profiling,omitempty" json:"automated_decisions_or_profiling,omitempty"`
	IsDefault                     bool               `yaml:"is_default,omitempty" json:"is_default,omitempty"`
}
