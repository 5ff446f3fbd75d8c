// Package parser loads taxonomy manifest files.
//
// A manifest is a YAML document whose top-level keys name resource
// kinds, each carrying a list of resources:
//
//	data_category:
//	  - fides_key: user.contact
//	    parent_key: user
//	system:
//	  - fides_key: analytics
//	    system_type: Service
//	    privacy_declarations: []
//
// Parsing happens in three stages: the file is decoded into a raw
// yaml node tree, legacy field names (fidesops_meta) are promoted to
// their current spelling directly on that tree, and only then are the
// typed resource models constructed, with defaults and canonical name
// ordering applied. Deprecated-but-working fields log a warning
// through slog.
//
// The parser does not validate; the taxonomy package facade combines
// it with the validator so that callers only ever receive a fully
// valid Taxonomy.
package parser
