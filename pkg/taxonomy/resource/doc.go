// Package resource defines the typed models for every taxonomy
// resource kind: privacy data types (categories, qualifiers, uses,
// subjects), datasets with their collections and recursively nested
// fields, systems with data flows and privacy declarations, policies,
// registries, organizations, and evaluations.
//
// Models here are plain data. Construction-time invariants live in the
// validator package and are applied by the parser's builder, so a
// Taxonomy obtained through the taxonomy package facade is guaranteed
// fully valid. Nested child structures (fields within collections,
// collections within datasets, declarations and data flows within
// systems) are exclusively owned by their parent; hierarchical
// resources reference their parent only by key.
//
// # Structure
//
//	Taxonomy
//	├── DataCategory / DataQualifier / DataUse (dotted-path hierarchy)
//	├── DataSubject (rights strategy)
//	├── Dataset
//	│   └── DatasetCollection (name-ordered)
//	│       └── DatasetField (name-ordered, recursive)
//	├── System
//	│   ├── DataFlow (egress / ingress)
//	│   └── PrivacyDeclaration (name-ordered)
//	├── Policy
//	│   └── PolicyRule (name-ordered)
//	├── Registry
//	└── Organization
package resource
