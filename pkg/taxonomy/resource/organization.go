package resource

// ResourceFilter names a class of resources to ignore when generating
// or scanning systems (e.g. ignore_resource_arn).
type ResourceFilter struct {
	Type  string `yaml:"type" json:"type"`
	Value string `yaml:"value" json:"value"`
}

// OrganizationMetadata holds application-specific metadata for an
// organization.
type OrganizationMetadata struct {
	ResourceFilters []ResourceFilter `yaml:"resource_filters,omitempty" json:"resource_filters,omitempty"`
}

// Organization is the root grouping resource all other resources
// belong to. Organizations have no parent.
type Organization struct {
	FidesModel `yaml:",inline"`

	Controller            *ContactDetails       `yaml:"controller,omitempty" json:"controller,omitempty"`
	DataProtectionOfficer *ContactDetails       `yaml:"data_protection_officer,omitempty" json:"data_protection_officer,omitempty"`
	FidesctlMeta          *OrganizationMetadata `yaml:"fidesctl_meta,omitempty" json:"fidesctl_meta,omitempty"`
	Representative        *ContactDetails       `yaml:"representative,omitempty" json:"representative,omitempty"`
	SecurityPolicy        string                `yaml:"security_policy,omitempty" json:"security_policy,omitempty"`
}

// Registry groups systems. It carries no fields beyond the base model
// and does not inherently point at other resources.
type Registry struct {
	FidesModel `yaml:",inline"`
}
