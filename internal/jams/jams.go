package jams

import (
	"encoding/json"
	"fmt"
	"os"
)

// SchemaVersion is written into every document's file_metadata as
// jams_version
const SchemaVersion = "0.2.2"

// Sandbox is an open, schema-less extension mapping
type Sandbox map[string]any

// Observation is a single time-labeled event within an annotation
type Observation struct {
	Time       float64 `json:"time"`
	Duration   float64 `json:"duration"`
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
}

// Curator identifies who curated the annotated corpus
type Curator struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AnnotationMetadata carries the provenance of one annotation
type AnnotationMetadata struct {
	Curator         Curator `json:"curator"`
	Annotator       Sandbox `json:"annotator"`
	Version         string  `json:"version"`
	Corpus          string  `json:"corpus"`
	AnnotationTools string  `json:"annotation_tools"`
	AnnotationRules string  `json:"annotation_rules"`
	Validation      string  `json:"validation"`
	DataSource      string  `json:"data_source"`
}

// Annotation is one namespaced block of observations
type Annotation struct {
	AnnotationMetadata AnnotationMetadata `json:"annotation_metadata"`
	Namespace          string             `json:"namespace"`
	Data               []Observation      `json:"data"`
	Sandbox            Sandbox            `json:"sandbox"`
	Time               float64            `json:"time"`
	Duration           float64            `json:"duration"`
}

// FileMetadata describes the audio file the document annotates
type FileMetadata struct {
	Title       string  `json:"title"`
	Artist      string  `json:"artist"`
	Release     string  `json:"release"`
	Duration    float64 `json:"duration"`
	Identifiers Sandbox `json:"identifiers"`
	JAMSVersion string  `json:"jams_version"`
}

// JAMS is a complete annotation document
type JAMS struct {
	Annotations  []*Annotation `json:"annotations"`
	FileMetadata FileMetadata  `json:"file_metadata"`
	Sandbox      Sandbox       `json:"sandbox"`
}

// New creates an empty document with all sandboxes initialized, so
// that serialization emits {} rather than null
func New() *JAMS {
	return &JAMS{
		Annotations: []*Annotation{},
		FileMetadata: FileMetadata{
			Identifiers: Sandbox{},
			JAMSVersion: SchemaVersion,
		},
		Sandbox: Sandbox{},
	}
}

// NewAnnotation creates an empty annotation for the given namespace
func NewAnnotation(namespace string) *Annotation {
	return &Annotation{
		Namespace: namespace,
		Data:      []Observation{},
		Sandbox:   Sandbox{},
		AnnotationMetadata: AnnotationMetadata{
			Annotator: Sandbox{},
		},
	}
}

// Append adds one observation to the annotation's data
func (a *Annotation) Append(obs Observation) {
	a.Data = append(a.Data, obs)
}

// Save writes the document to path in its canonical persisted form:
// two-space indented JSON with a trailing newline. Serialization is
// deterministic (encoding/json sorts map keys), so saving the same
// document twice produces byte-identical files. The destination
// directory must already exist.
func (j *JAMS) Save(path string) error {
	data, err := json.MarshalIndent(j, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing document: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	return nil
}

// Load reads a document previously written by Save
func Load(path string) (*JAMS, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	j := New()
	if err := json.Unmarshal(data, j); err != nil {
		return nil, fmt.Errorf("parsing document %s: %w", path, err)
	}

	return j, nil
}
