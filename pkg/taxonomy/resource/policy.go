package resource

// MatchType determines how the listed keys of a PrivacyRule are
// matched during evaluation.
type MatchType string

const (
	MatchAny   MatchType = "ANY"
	MatchAll   MatchType = "ALL"
	MatchNone  MatchType = "NONE"
	MatchOther MatchType = "OTHER"
)

// PrivacyRule pairs a match method with a list of fides keys.
type PrivacyRule struct {
	Matches MatchType  `yaml:"matches" json:"matches"`
	Values  []FidesKey `yaml:"values" json:"values"`
}

// PolicyRule describes an allowed combination of the privacy data
// types.
type PolicyRule struct {
	Name           string      `yaml:"name" json:"name"`
	DataCategories PrivacyRule `yaml:"data_categories" json:"data_categories"`
	DataUses       PrivacyRule `yaml:"data_uses" json:"data_uses"`
	DataSubjects   PrivacyRule `yaml:"data_subjects" json:"data_subjects"`
	DataQualifier  FidesKey    `yaml:"data_qualifier,omitempty" json:"data_qualifier,omitempty"`
}

// Policy organizes a list of PolicyRules. Rules are held in canonical
// name order.
type Policy struct {
	FidesModel `yaml:",inline"`

	Rules []PolicyRule `yaml:"rules" json:"rules"`
}

// GetRule returns the rule with the given name, or nil if not found.
func (p *Policy) GetRule(name string) *PolicyRule {
	for i := range p.Rules {
		if p.Rules[i].Name == name {
			return &p.Rules[i]
		}
	}
	return nil
}
