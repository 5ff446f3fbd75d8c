package resource

// FidesKey is a restricted-alphabet identifier, unique within its
// resource kind. Valid keys match ^[A-Za-z0-9._-]+$; dotted segments
// denote hierarchy for categories, qualifiers, and uses.
type FidesKey string

// String returns the key as a plain string.
func (k FidesKey) String() string {
	return string(k)
}

const (
	// DefaultOrganizationKey is the well-known root organization every
	// resource belongs to unless it declares otherwise.
	DefaultOrganizationKey FidesKey = "default_organization"

	// DefaultDataQualifierKey is the most restrictive qualifier in the
	// default taxonomy, applied wherever a qualifier is not declared.
	DefaultDataQualifierKey FidesKey = "aggregated.anonymized.unlinked_pseudonymized.pseudonymized.identified"
)

// FidesModel carries the fields shared by every top-level taxonomy
// resource.
type FidesModel struct {
	FidesKey             FidesKey `yaml:"fides_key" json:"fides_key"`
	OrganizationFidesKey FidesKey `yaml:"organization_fides_key" json:"organization_fides_key"`
	Tags                 []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	Name                 string   `yaml:"name,omitempty" json:"name,omitempty"`
	Description          string   `yaml:"description,omitempty" json:"description,omitempty"`
}

// ContactDetails captures contact information for controllers,
// data protection officers, and representatives. Nested under an
// Organization and optionally under a System or Dataset.
type ContactDetails struct {
	Name    string `yaml:"name,omitempty" json:"name,omitempty"`
	Address string `yaml:"address,omitempty" json:"address,omitempty"`
	Email   string `yaml:"email,omitempty" json:"email,omitempty"`
	Phone   string `yaml:"phone,omitempty" json:"phone,omitempty"`
}
