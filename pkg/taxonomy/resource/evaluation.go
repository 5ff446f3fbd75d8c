package resource

import "github.com/google/uuid"

// EvaluationStatus is the outcome of an executed evaluation.
type EvaluationStatus string

const (
	StatusPass EvaluationStatus = "PASS"
	StatusFail EvaluationStatus = "FAIL"
)

// ViolationAttributes names the privacy data types that led to an
// evaluation violation.
type ViolationAttributes struct {
	DataCategories []string `yaml:"data_categories" json:"data_categories"`
	DataSubjects   []string `yaml:"data_subjects" json:"data_subjects"`
	DataUses       []string `yaml:"data_uses" json:"data_uses"`
	DataQualifier  string   `yaml:"data_qualifier" json:"data_qualifier"`
}

// Violation is a single failure recorded within an evaluation.
type Violation struct {
	ViolatingAttributes ViolationAttributes `yaml:"violating_attributes" json:"violating_attributes"`
	Detail              string              `yaml:"detail" json:"detail"`
}

// Evaluation records the outcome of executing a policy against a
// taxonomy.
type Evaluation struct {
	FidesKey   FidesKey         `yaml:"fides_key" json:"fides_key"`
	Status     EvaluationStatus `yaml:"status" json:"status"`
	Violations []Violation      `yaml:"violations,omitempty" json:"violations,omitempty"`
	Message    string           `yaml:"message,omitempty" json:"message,omitempty"`
}

// NewEvaluation creates an evaluation with a generated unique key.
func NewEvaluation(status EvaluationStatus) *Evaluation {
	return &Evaluation{
		FidesKey:   FidesKey(uuid.NewString()),
		Status:     status,
		Violations: []Violation{},
	}
}
