package resource

// Taxonomy is the root aggregate of all resource kinds. Downstream
// tooling receives a Taxonomy only after every member resource has
// validated; it should be treated as immutable from then on.
//
// Kind names are deliberately singular, matching the manifest keys.
type Taxonomy struct {
	DataCategories []DataCategory  `yaml:"data_category,omitempty" json:"data_category,omitempty"`
	DataSubjects   []DataSubject   `yaml:"data_subject,omitempty" json:"data_subject,omitempty"`
	DataUses       []DataUse       `yaml:"data_use,omitempty" json:"data_use,omitempty"`
	DataQualifiers []DataQualifier `yaml:"data_qualifier,omitempty" json:"data_qualifier,omitempty"`

	Datasets []Dataset `yaml:"dataset,omitempty" json:"dataset,omitempty"`
	Systems  []System  `yaml:"system,omitempty" json:"system,omitempty"`
	Policies []Policy  `yaml:"policy,omitempty" json:"policy,omitempty"`

	Registries    []Registry     `yaml:"registry,omitempty" json:"registry,omitempty"`
	Organizations []Organization `yaml:"organization,omitempty" json:"organization,omitempty"`
}

// NewTaxonomy returns an empty taxonomy with every kind initialized to
// an empty, non-nil list.
func NewTaxonomy() *Taxonomy {
	return &Taxonomy{
		DataCategories: []DataCategory{},
		DataSubjects:   []DataSubject{},
		DataUses:       []DataUse{},
		DataQualifiers: []DataQualifier{},
		Datasets:       []Dataset{},
		Systems:        []System{},
		Policies:       []Policy{},
		Registries:     []Registry{},
		Organizations:  []Organization{},
	}
}

// ResourceCount returns the total number of resources across all kinds.
func (t *Taxonomy) ResourceCount() int {
	return len(t.DataCategories) + len(t.DataSubjects) + len(t.DataUses) +
		len(t.DataQualifiers) + len(t.Datasets) + len(t.Systems) +
		len(t.Policies) + len(t.Registries) + len(t.Organizations)
}

// Merge appends all resources from another taxonomy. Used when several
// manifest files compose a single taxonomy.
func (t *Taxonomy) Merge(other *Taxonomy) {
	if other == nil {
		return
	}
	t.DataCategories = append(t.DataCategories, other.DataCategories...)
	t.DataSubjects = append(t.DataSubjects, other.DataSubjects...)
	t.DataUses = append(t.DataUses, other.DataUses...)
	t.DataQualifiers = append(t.DataQualifiers, other.DataQualifiers...)
	t.Datasets = append(t.Datasets, other.Datasets...)
	t.Systems = append(t.Systems, other.Systems...)
	t.Policies = append(t.Policies, other.Policies...)
	t.Registries = append(t.Registries, other.Registries...)
	t.Organizations = append(t.Organizations, other.Organizations...)
}

// KindCounts returns per-kind resource counts keyed by manifest kind
// name. Used by telemetry and CLI reporting.
func (t *Taxonomy) KindCounts() map[string]int {
	return map[string]int{
		"data_category":  len(t.DataCategories),
		"data_subject":   len(t.DataSubjects),
		"data_use":       len(t.DataUses),
		"data_qualifier": len(t.DataQualifiers),
		"dataset":        len(t.Datasets),
		"system":         len(t.Systems),
		"policy":         len(t.Policies),
		"registry":       len(t.Registries),
		"organization":   len(t.Organizations),
	}
}
