// Package validator enforces the structural and referential integrity
// of taxonomy resources before a Taxonomy is handed to downstream
// tooling.
//
// The checks fall into a handful of small, interacting rules:
//
//   - Key format: every fides key, parent key, and cross-resource key
//     reference must match ^[A-Za-z0-9._-]+$.
//   - Hierarchy: a hierarchical resource's key must literally extend
//     its parent_key by one or more dotted segments, never reference
//     itself, and never omit a parent when the key is dotted.
//   - Data types: a field's declared type is a base type from a fixed
//     allow-list with an optional trailing "[]" array marker.
//   - Country codes: third-country transfers are checked against an
//     injected ISO 3166-1 alpha-3 set; all offenders are reported in
//     one error.
//   - Nested fields: sub-fields only nest under an "object" (or
//     undeclared) type, object fields carry no data categories, and
//     return_all_elements is reserved for array fields.
//   - Cross-references: a privacy declaration's egress/ingress keys
//     must resolve to data flows declared on the same system, and the
//     "user" pseudo-resource key and type require each other.
//
// Every violation found in a pass is accumulated into an
// errors.ErrorList; a resource is either fully valid or rejected with
// every failure named. Normalize applies field defaults and canonical
// name ordering and must run before Validate; both are invoked by the
// parser and by the taxonomy package facade.
//
// Basic usage:
//
//	v := validator.NewValidator(defaults.CountryCodes())
//	validator.Normalize(tax)
//	if err := v.Validate(tax); err != nil {
//	    log.Fatal(err)
//	}
package validator
