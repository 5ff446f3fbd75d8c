package resource

// EdgeDirection is the direction of a DatasetReference edge.
type EdgeDirection string

const (
	DirectionFrom EdgeDirection = "from"
	DirectionTo   EdgeDirection = "to"
)

// DatasetReference points at a field in another collection, used for
// drawing the edges of a subject-request graph.
type DatasetReference struct {
	Dataset   FidesKey      `yaml:"dataset" json:"dataset"`
	Field     string        `yaml:"field" json:"field"`
	Direction EdgeDirection `yaml:"direction,omitempty" json:"direction,omitempty"`
}

// FieldMeta is supplementary, application-facing metadata attached to a
// DatasetField.
type FieldMeta struct {
	References        []DatasetReference `yaml:"references,omitempty" json:"references,omitempty"`
	Identity          string             `yaml:"identity,omitempty" json:"identity,omitempty"`
	PrimaryKey        *bool              `yaml:"primary_key,omitempty" json:"primary_key,omitempty"`
	DataType          string             `yaml:"data_type,omitempty" json:"data_type,omitempty"`
	Length            int                `yaml:"length,omitempty" json:"length,omitempty"`
	ReturnAllElements *bool              `yaml:"return_all_elements,omitempty" json:"return_all_elements,omitempty"`
	ReadOnly          *bool              `yaml:"read_only,omitempty" json:"read_only,omitempty"`
}

// DatasetField describes a single field within a DatasetCollection.
// Fields nest recursively through sub-fields, as found in document
// stores; the structure is strictly a tree.
type DatasetField struct {
	Name           string         `yaml:"name" json:"name"`
	Description    string         `yaml:"description,omitempty" json:"description,omitempty"`
	DataCategories []FidesKey     `yaml:"data_categories,omitempty" json:"data_categories,omitempty"`
	DataQualifier  FidesKey       `yaml:"data_qualifier,omitempty" json:"data_qualifier,omitempty"`
	Retention      string         `yaml:"retention,omitempty" json:"retention,omitempty"`
	Meta           *FieldMeta     `yaml:"fides_meta,omitempty" json:"fides_meta,omitempty"`
	Fields         []DatasetField `yaml:"fields,omitempty" json:"fields,omitempty"`
}

// CollectionMeta holds collection-level annotations used for query
// traversal. Entries in After are two-part "dataset.collection" keys.
type CollectionMeta struct {
	After []FidesKey `yaml:"after,omitempty" json:"after,omitempty"`
}

// DatasetCollection describes one queryable collection (table) within
// a Dataset. Fields are held in canonical name order.
type DatasetCollection struct {
	Name           string          `yaml:"name" json:"name"`
	Description    string          `yaml:"description,omitempty" json:"description,omitempty"`
	DataCategories []FidesKey      `yaml:"data_categories,omitempty" json:"data_categories,omitempty"`
	DataQualifier  FidesKey        `yaml:"data_qualifier,omitempty" json:"data_qualifier,omitempty"`
	Retention      string          `yaml:"retention,omitempty" json:"retention,omitempty"`
	Fields         []DatasetField  `yaml:"fields" json:"fields"`
	Meta           *CollectionMeta `yaml:"fides_meta,omitempty" json:"fides_meta,omitempty"`
}

// DatasetMetadata holds application-specific metadata for a Dataset.
type DatasetMetadata struct {
	ResourceID string     `yaml:"resource_id,omitempty" json:"resource_id,omitempty"`
	After      []FidesKey `yaml:"after,omitempty" json:"after,omitempty"`
}

// Dataset describes a store of data (a database, a bucket) in terms of
// privacy data types. Collections are held in canonical name order.
type Dataset struct {
	FidesModel `yaml:",inline"`

	Meta                  map[string]interface{} `yaml:"meta,omitempty" json:"meta,omitempty"`
	DataCategories        []FidesKey             `yaml:"data_categories,omitempty" json:"data_categories,omitempty"`
	DataQualifier         FidesKey               `yaml:"data_qualifier,omitempty" json:"data_qualifier,omitempty"`
	FidesMeta             *DatasetMetadata       `yaml:"fides_meta,omitempty" json:"fides_meta,omitempty"`
	JointController       *ContactDetails        `yaml:"joint_controller,omitempty" json:"joint_controller,omitempty"`
	Retention             string                 `yaml:"retention,omitempty" json:"retention,omitempty"`
	ThirdCountryTransfers []string               `yaml:"third_country_transfers,omitempty" json:"third_country_transfers,omitempty"`
	Collections           []DatasetCollection    `yaml:"collections" json:"collections"`
}

// DefaultRetention is the retention policy assumed for a Dataset that
// does not declare one.
const DefaultRetention = "No retention or erasure policy"

// GetCollection returns the collection with the given name, or nil.
func (d *Dataset) GetCollection(name string) *DatasetCollection {
	for i := range d.Collections {
		if d.Collections[i].Name == name {
			return &d.Collections[i]
		}
	}
	return nil
}

// GetField returns the field with the given name, or nil.
func (c *DatasetCollection) GetField(name string) *DatasetField {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i]
		}
	}
	return nil
}

// DataType returns the declared data type string for this field, or ""
// when the field carries no meta or no declared type.
func (f *DatasetField) DataType() string {
	if f.Meta == nil {
		return ""
	}
	return f.Meta.DataType
}

// HasSubFields returns true if the field declares nested sub-fields.
func (f *DatasetField) HasSubFields() bool {
	return len(f.Fields) > 0
}
