package resource

// DataResponsibilityTitle identifies the role an organization holds
// over the data a system processes.
type DataResponsibilityTitle string

const (
	TitleController   DataResponsibilityTitle = "Controller"
	TitleProcessor    DataResponsibilityTitle = "Processor"
	TitleSubProcessor DataResponsibilityTitle = "Sub-Processor"
)

// FlowableType enumerates the resource kinds a DataFlow may reference.
type FlowableType string

const (
	FlowableDataset FlowableType = "dataset"
	FlowableSystem  FlowableType = "system"
	FlowableUser    FlowableType = "user"
)

// UserKey is the pseudo-resource key representing the user(s) of a
// system. A DataFlow's key is "user" if and only if its type is "user".
const UserKey FidesKey = "user"

// DataFlow declares a communication endpoint of a System: a dataset,
// another system, or the end user.
type DataFlow struct {
	FidesKey       FidesKey     `yaml:"fides_key" json:"fides_key"`
	Type           FlowableType `yaml:"type" json:"type"`
	DataCategories []FidesKey   `yaml:"data_categories,omitempty" json:"data_categories,omitempty"`
}

// Cookie describes a cookie set by a system in service of a data use.
type Cookie struct {
	Name   string `yaml:"name" json:"name"`
	Path   string `yaml:"path,omitempty" json:"path,omitempty"`
	Domain string `yaml:"domain,omitempty" json:"domain,omitempty"`
}

// PrivacyDeclaration states one function of a System in terms of
// privacy data types. Keys in Egress and Ingress must reference
// DataFlow entries declared on the owning System.
type PrivacyDeclaration struct {
	Name              string     `yaml:"name,omitempty" json:"name,omitempty"`
	DataCategories    []FidesKey `yaml:"data_categories" json:"data_categories"`
	DataUse           FidesKey   `yaml:"data_use" json:"data_use"`
	DataQualifier     FidesKey   `yaml:"data_qualifier,omitempty" json:"data_qualifier,omitempty"`
	DataSubjects      []FidesKey `yaml:"data_subjects" json:"data_subjects"`
	DatasetReferences []FidesKey `yaml:"dataset_references,omitempty" json:"dataset_references,omitempty"`
	Egress            []FidesKey `yaml:"egress,omitempty" json:"egress,omitempty"`
	Ingress           []FidesKey `yaml:"ingress,omitempty" json:"ingress,omitempty"`
	Cookies           []Cookie   `yaml:"cookies,omitempty" json:"cookies,omitempty"`
}

// SystemMetadata holds application-specific metadata for a system.
type SystemMetadata struct {
	ResourceID      string `yaml:"resource_id,omitempty" json:"resource_id,omitempty"`
	EndpointAddress string `yaml:"endpoint_address,omitempty" json:"endpoint_address,omitempty"`
	EndpointPort    string `yaml:"endpoint_port,omitempty" json:"endpoint_port,omitempty"`
}

// DataProtectionImpactAssessment records DPIA status for a system, a
// legal requirement under GDPR for high-risk processing.
type DataProtectionImpactAssessment struct {
	IsRequired bool   `yaml:"is_required,omitempty" json:"is_required,omitempty"`
	Progress   string `yaml:"progress,omitempty" json:"progress,omitempty"`
	Link       string `yaml:"link,omitempty" json:"link,omitempty"`
}

// System describes an application or service and the privacy
// declarations that state its functions. Declarations are held in
// canonical name order.
type System struct {
	FidesModel `yaml:",inline"`

	RegistryID                     int                            `yaml:"registry_id,omitempty" json:"registry_id,omitempty"`
	Meta                           map[string]interface{}         `yaml:"meta,omitempty" json:"meta,omitempty"`
	FidesctlMeta                   *SystemMetadata                `yaml:"fidesctl_meta,omitempty" json:"fidesctl_meta,omitempty"`
	SystemType                     string                         `yaml:"system_type" json:"system_type"`
	DataResponsibilityTitle        DataResponsibilityTitle        `yaml:"data_responsibility_title,omitempty" json:"data_responsibility_title,omitempty"`
	Egress                         []DataFlow                     `yaml:"egress,omitempty" json:"egress,omitempty"`
	Ingress                        []DataFlow                     `yaml:"ingress,omitempty" json:"ingress,omitempty"`
	PrivacyDeclarations            []PrivacyDeclaration           `yaml:"privacy_declarations" json:"privacy_declarations"`
	JointController                *ContactDetails                `yaml:"joint_controller,omitempty" json:"joint_controller,omitempty"`
	ThirdCountryTransfers          []string                       `yaml:"third_country_transfers,omitempty" json:"third_country_transfers,omitempty"`
	AdministratingDepartment       string                         `yaml:"administrating_department,omitempty" json:"administrating_department,omitempty"`
	DataProtectionImpactAssessment DataProtectionImpactAssessment `yaml:"data_protection_impact_assessment,omitempty" json:"data_protection_impact_assessment,omitempty"`
}

// DefaultAdministratingDepartment is assumed when a system does not
// declare an owning department.
const DefaultAdministratingDepartment = "Not defined"

// Flows returns the system's DataFlow list for the given direction
// ("egress" or "ingress").
func (s *System) Flows(direction string) []DataFlow {
	switch direction {
	case "egress":
		return s.Egress
	case "ingress":
		return s.Ingress
	}
	return nil
}

// FlowKeys returns the fides keys of the system's DataFlows for the
// given direction.
func (s *System) FlowKeys(direction string) []FidesKey {
	flows := s.Flows(direction)
	keys := make([]FidesKey, 0, len(flows))
	for _, flow := range flows {
		keys = append(keys, flow.FidesKey)
	}
	return keys
}

// GetDeclaration returns the privacy declaration with the given name,
// or nil if not found.
func (s *System) GetDeclaration(name string) *PrivacyDeclaration {
	for i := range s.PrivacyDeclarations {
		if s.PrivacyDeclarations[i].Name == name {
			return &s.PrivacyDeclarations[i]
		}
	}
	return nil
}
