package resource

// DataCategory describes a category of personal data. Categories form
// a dotted-path hierarchy via ParentKey.
type DataCategory struct {
	FidesModel `yaml:",inline"`

	ParentKey FidesKey `yaml:"parent_key,omitempty" json:"parent_key,omitempty"`
	IsDefault bool     `yaml:"is_default,omitempty" json:"is_default,omitempty"`
}

// DataQualifier describes the degree of identifiability of data.
// Qualifiers form a dotted-path hierarchy via ParentKey, from
// aggregated down to identified.
type DataQualifier struct {
	FidesModel `yaml:",inline"`

	ParentKey FidesKey `yaml:"parent_key,omitempty" json:"parent_key,omitempty"`
	IsDefault bool     `yaml:"is_default,omitempty" json:"is_default,omitempty"`
}
