// Package survey holds the fixed catalog of self-assessment questions.
// The responses are persisted verbatim on the assessment row; the catalog
// only supplies the form field names and display labels.
package survey

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var questionsYAML []byte

// Question is one survey question served to the form
type Question struct {
	Field string `yaml:"field" json:"field"`
	Label string `yaml:"label" json:"label"`
}

type catalogFile struct {
	Questions []Question `yaml:"questions"`
}

// LoadCatalog parses the embedded question catalog
func LoadCatalog() ([]Question, error) {
	var file catalogFile
	if err := yaml.Unmarshal(questionsYAML, &file); err != nil {
		return nil, fmt.Errorf("parse question catalog: %w", err)
	}
	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("question catalog is empty")
	}
	return file.Questions, nil
}
