package validator

import "privacyhq/meridian/pkg/taxonomy/resource"

// Normalize applies field defaults and canonical ordering to a
// taxonomy in place. It is idempotent and never fails; validation
// assumes it has run. The parser's builder calls it for every parsed
// taxonomy, and the facade calls it before validating
// programmatically constructed taxonomies.
func Normalize(t *resource.Taxonomy) {
	if t == nil {
		return
	}

	// Empty, not absent.
	ensureLists(t)

	for i := range t.DataCategories {
		defaultModel(&t.DataCategories[i].FidesModel)
	}
	for i := range t.DataQualifiers {
		defaultModel(&t.DataQualifiers[i].FidesModel)
	}
	for i := range t.DataSubjects {
		defaultModel(&t.DataSubjects[i].FidesModel)
	}
	for i := range t.DataUses {
		normalizeDataUse(&t.DataUses[i])
	}
	for i := range t.Datasets {
		normalizeDataset(&t.Datasets[i])
	}
	for i := range t.Systems {
		normalizeSystem(&t.Systems[i])
	}
	for i := range t.Policies {
		normalizePolicy(&t.Policies[i])
	}
	for i := range t.Registries {
		defaultModel(&t.Registries[i].FidesModel)
	}
	for i := range t.Organizations {
		defaultModel(&t.Organizations[i].FidesModel)
	}
}

func ensureLists(t *resource.Taxonomy) {
	if t.DataCategories == nil {
		t.DataCategories = []resource.DataCategory{}
	}
	if t.DataSubjects == nil {
		t.DataSubjects = []resource.DataSubject{}
	}
	if t.DataUses == nil {
		t.DataUses = []resource.DataUse{}
	}
	if t.DataQualifiers == nil {
		t.DataQualifiers = []resource.DataQualifier{}
	}
	if t.Datasets == nil {
		t.Datasets = []resource.Dataset{}
	}
	if t.Systems == nil {
		t.Systems = []resource.System{}
	}
	if t.Policies == nil {
		t.Policies = []resource.Policy{}
	}
	if t.Registries == nil {
		t.Registries = []resource.Registry{}
	}
	if t.Organizations == nil {
		t.Organizations = []resource.Organization{}
	}
}

func defaultModel(m *resource.FidesModel) {
	if m.OrganizationFidesKey == "" {
		m.OrganizationFidesKey = resource.DefaultOrganizationKey
	}
}

func normalizeDataUse(use *resource.DataUse) {
	defaultModel(&use.FidesModel)

	// A "Legitimate Interests" legal basis implies the flag, declared
	// or not.
	if use.LegalBasis == resource.BasisLegitimateInterest {
		use.LegitimateInterest = true
	}
}

func normalizeDataset(dataset *resource.Dataset) {
	defaultModel(&dataset.FidesModel)

	if dataset.DataQualifier == "" {
		dataset.DataQualifier = resource.DefaultDataQualifierKey
	}
	if dataset.Retention == "" {
		dataset.Retention = resource.DefaultRetention
	}

	dataset.Collections = SortByName(dataset.Collections, func(c resource.DatasetCollection) string {
		return c.Name
	})
	for i := range dataset.Collections {
		normalizeCollection(&dataset.Collections[i])
	}
}

func normalizeCollection(collection *resource.DatasetCollection) {
	if collection.DataQualifier == "" {
		collection.DataQualifier = resource.DefaultDataQualifierKey
	}

	collection.Fields = SortByName(collection.Fields, func(f resource.DatasetField) string {
		return f.Name
	})
	for i := range collection.Fields {
		normalizeField(&collection.Fields[i])
	}
}

func normalizeField(field *resource.DatasetField) {
	if field.DataQualifier == "" {
		field.DataQualifier = resource.DefaultDataQualifierKey
	}

	field.Fields = SortByName(field.Fields, func(f resource.DatasetField) string {
		return f.Name
	})
	for i := range field.Fields {
		normalizeField(&field.Fields[i])
	}
}

func normalizeSystem(system *resource.System) {
	defaultModel(&system.FidesModel)

	if system.DataResponsibilityTitle == "" {
		system.DataResponsibilityTitle = resource.TitleController
	}
	if system.AdministratingDepartment == "" {
		system.AdministratingDepartment = resource.DefaultAdministratingDepartment
	}

	system.PrivacyDeclarations = SortByName(system.PrivacyDeclarations, func(d resource.PrivacyDeclaration) string {
		return d.Name
	})
	for i := range system.PrivacyDeclarations {
		if system.PrivacyDeclarations[i].DataQualifier == "" {
			system.PrivacyDeclarations[i].DataQualifier = resource.DefaultDataQualifierKey
		}
	}
}

func normalizePolicy(policy *resource.Policy) {
	defaultModel(&policy.FidesModel)

	policy.Rules = SortByName(policy.Rules, func(r resource.PolicyRule) string {
		return r.Name
	})
	for i := range policy.Rules {
		if policy.Rules[i].DataQualifier == "" {
			policy.Rules[i].DataQualifier = resource.DefaultDataQualifierKey
		}
	}
}
