package defaults

import "privacyhq/meridian/pkg/taxonomy/resource"

// DataQualifiers returns the built-in data qualifier chain, from
// aggregated down to identified. These ship as fixture data; the
// validation engine treats them like any user-supplied resource.
func DataQualifiers() []resource.DataQualifier {
	return []resource.DataQualifier{
		{
			FidesModel: resource.FidesModel{
				FidesKey:             "aggregated",
				OrganizationFidesKey: resource.DefaultOrganizationKey,
				Name:                 "Aggregated Data",
				Description:          "Statistical data that does not contain individually identifying information but includes information about groups of individuals that renders individual identification impossible.",
			},
			IsDefault: true,
		},
		{
			FidesModel: resource.FidesModel{
				FidesKey:             "aggregated.anonymized",
				OrganizationFidesKey: resource.DefaultOrganizationKey,
				Name:                 "Anonymized Data",
				Description:          "Data where all attributes have been sufficiently altered that the individual cannot be reidentified by this data or in combination with other datasets.",
			},
			ParentKey: "aggregated",
			IsDefault: true,
		},
		{
			FidesModel: resource.FidesModel{
				FidesKey:             "aggregated.anonymized.unlinked_pseudonymized",
				OrganizationFidesKey: resource.DefaultOrganizationKey,
				Name:                 "Unlinked Pseudonymized Data",
				Description:          "Data for which all identifiers have been substituted with unrelated values and linkages broken such that it may not be reversed, even by the party that performed the pseudonymization.",
			},
			ParentKey: "aggregated.anonymized",
			IsDefault: true,
		},
		{
			FidesModel: resource.FidesModel{
				FidesKey:             "aggregated.anonymized.unlinked_pseudonymized.pseudonymized",
				OrganizationFidesKey: resource.DefaultOrganizationKey,
				Name:                 "Pseudonymized Data",
				Description:          "Data for which all identifiers have been substituted with unrelated values, rendering the individual unidentifiable and cannot be reasonably reversed other than by the party that performed the pseudonymization.",
			},
			ParentKey: "aggregated.anonymized.unlinked_pseudonymized",
			IsDefault: true,
		},
		{
			FidesModel: resource.FidesModel{
				FidesKey:             resource.DefaultDataQualifierKey,
				OrganizationFidesKey: resource.DefaultOrganizationKey,
				Name:                 "Identified Data",
				Description:          "Data that directly identifies an individual.",
			},
			ParentKey: "aggregated.anonymized.unlinked_pseudonymized.pseudonymized",
			IsDefault: true,
		},
	}
}

// Organization returns the well-known root organization every resource
// belongs to unless it declares otherwise.
func Organization() resource.Organization {
	return resource.Organization{
		FidesModel: resource.FidesModel{
			FidesKey:             resource.DefaultOrganizationKey,
			OrganizationFidesKey: resource.DefaultOrganizationKey,
			Name:                 "Default Organization",
			Description:          "The default organization resource.",
		},
	}
}

// Taxonomy returns a taxonomy pre-populated with the built-in seed
// resources.
func Taxonomy() *resource.Taxonomy {
	t := resource.NewTaxonomy()
	t.DataQualifiers = DataQualifiers()
	t.Organizations = []resource.Organization{Organization()}
	return t
}
