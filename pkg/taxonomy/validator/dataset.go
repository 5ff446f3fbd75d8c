package validator

import (
	"fmt"

	taxErrors "privacyhq/meridian/pkg/taxonomy/errors"
	"privacyhq/meridian/pkg/taxonomy/resource"
)

func (v *Validator) checkDataset(errs *taxErrors.ErrorList, d *resource.Dataset) {
	v.checkModel(errs, &d.FidesModel)
	v.checkKeyList(errs, d.DataCategories, string(d.FidesKey), "data_categories")
	v.checkOptionalKey(errs, d.DataQualifier, string(d.FidesKey), "data_qualifier")

	if err := ValidateCountryCodes(d.ThirdCountryTransfers, v.countries, string(d.FidesKey)); err != nil {
		errs.Add(err)
	}

	if d.FidesMeta != nil {
		v.checkKeyList(errs, d.FidesMeta.After, string(d.FidesKey), "fides_meta.after")
	}

	for i := range d.Collections {
		v.checkCollection(errs, string(d.FidesKey), &d.Collections[i])
	}
}

func (v *Validator) checkCollection(errs *taxErrors.ErrorList, datasetKey string, c *resource.DatasetCollection) {
	v.checkKeyList(errs, c.DataCategories, datasetKey, "data_categories")
	v.checkOptionalKey(errs, c.DataQualifier, datasetKey, "data_qualifier")

	if c.Meta != nil {
		for _, after := range c.Meta.After {
			if err := ValidateCollectionKey(after); err != nil {
				err.Resource = datasetKey
				err.Field = "fides_meta.after"
				errs.Add(err)
			}
		}
	}

	for i := range c.Fields {
		v.checkField(errs, datasetKey, c.Name+"."+c.Fields[i].Name, &c.Fields[i])
	}
}

// checkField validates one dataset field and recurses into its
// sub-fields. fieldPath is the dotted path from the collection down to
// this field, used for error context.
func (v *Validator) checkField(errs *taxErrors.ErrorList, datasetKey, fieldPath string, f *resource.DatasetField) {
	v.checkKeyList(errs, f.DataCategories, datasetKey, fieldPath+".data_categories")
	v.checkOptionalKey(errs, f.DataQualifier, datasetKey, fieldPath+".data_qualifier")

	baseType := ""
	isArray := false
	if f.Meta != nil {
		var err *taxErrors.Error
		baseType, isArray, err = ParseDataType(f.Meta.DataType)
		if err != nil {
			err.Resource = datasetKey
			err.Field = fieldPath + ".fides_meta.data_type"
			errs.Add(err)
		}

		// Querying for the whole array only makes sense on an array.
		if f.Meta.ReturnAllElements != nil && !isArray {
			errs.AddError(taxErrors.ErrorTypeInvalidValue,
				fmt.Sprintf("the 'return_all_elements' attribute on field '%s' can only be specified on array fields", fieldPath),
				datasetKey, fieldPath+".fides_meta.return_all_elements")
		}

		for _, ref := range f.Meta.References {
			v.checkKey(errs, ref.Dataset, datasetKey, fieldPath+".fides_meta.references.dataset")
			switch ref.Direction {
			case "", resource.DirectionFrom, resource.DirectionTo:
			default:
				errs.AddValueError(taxErrors.ErrorTypeInvalidValue,
					fmt.Sprintf("reference direction on field '%s' must be 'from' or 'to'", fieldPath),
					datasetKey, fieldPath+".fides_meta.references.direction", string(ref.Direction))
			}
		}
	}

	if f.HasSubFields() {
		// Sub-fields only nest under an undeclared or object type.
		if baseType != "" && baseType != "object" {
			errs.AddValueError(taxErrors.ErrorTypeInvalidObjectField,
				fmt.Sprintf("the data type '%s' on field '%s' is not compatible with specified sub-fields, convert to an 'object' field", baseType, fieldPath),
				datasetKey, fieldPath+".fides_meta.data_type", f.Meta.DataType)
		}
	}

	// Categories belong on leaf fields; an object carries none itself.
	if (f.HasSubFields() || baseType == "object") && len(f.DataCategories) > 0 {
		errs.AddError(taxErrors.ErrorTypeInvalidObjectField,
			fmt.Sprintf("object field '%s' cannot have specified data_categories, specify the category on the sub-field instead", fieldPath),
			datasetKey, fieldPath+".data_categories")
	}

	for i := range f.Fields {
		v.checkField(errs, datasetKey, fieldPath+"."+f.Fields[i].Name, &f.Fields[i])
	}
}
