package snippet

import (
	"fmt"
	"strings"

	"github.com/urbansounds/us8kjams/internal/jams"
	"github.com/urbansounds/us8kjams/internal/metadata"
)

// Fixed file-level and provenance metadata of the UrbanSound8K
// corpus. These values come from the dataset's original curation and
// are identical in every generated document.
const (
	Namespace = "tag_open"

	Artist  = "UrbanSound8K"
	Release = "1.0"

	Corpus            = "UrbanSound8K"
	AnnotationVersion = "1.0"
	AnnotationTools   = "Sonic Visualiser"
	DataSource        = "https://serv.cusp.nyu.edu/projects/urbansounddataset/"

	AnnotationRules = `See: J. Salamon, C. Jacoby and J. P. Bello, "A Dataset and Taxonomy ` +
		`for Urban Sound Research", in Proc. 22nd ACM International Conference ` +
		`on Multimedia, Orlando, USA, Nov. 2014.`
)

var (
	curator = jams.Curator{
		Name:  "Justin Salamon",
		Email: "justin.salamon@nyu.edu",
	}

	annotators = []map[string]string{
		{"name": "Justin Salamon", "email": "justin.salamon@nyu.edu"},
		{"name": "Christopher Jacoby", "email": "christopher.jacoby@gmail.com"},
	}
)

// MappingError indicates a metadata record could not be turned into
// a document. It is fatal to the whole run; rows converted before it
// remain on disk.
type MappingError struct {
	Clip string
	Err  error
}

func (e *MappingError) Error() string {
	return fmt.Sprintf("mapping clip %q: %v", e.Clip, e.Err)
}

func (e *MappingError) Unwrap() error {
	return e.Err
}

// BuildJAMS converts one metadata record into a complete annotation
// document. It is a pure function of the record: no other row and no
// external state influences the result.
//
// The record's start and end must parse as numbers; anything else is
// a MappingError. end >= start is deliberately not checked - a
// reversed span propagates as a negative duration, matching the
// behavior of the original corpus tooling.
func BuildJAMS(rec metadata.Record) (*jams.JAMS, error) {
	clip := rec.Field("slice_file_name")

	start, err := rec.Float("start")
	if err != nil {
		return nil, &MappingError{Clip: clip, Err: err}
	}
	end, err := rec.Float("end")
	if err != nil {
		return nil, &MappingError{Clip: clip, Err: err}
	}
	duration := end - start

	jam := jams.New()
	jam.FileMetadata.Title = clip
	jam.FileMetadata.Artist = Artist
	jam.FileMetadata.Release = Release
	jam.FileMetadata.Duration = duration

	ann := jams.NewAnnotation(Namespace)
	ann.Append(jams.Observation{
		Time:       0,
		Duration:   duration,
		Value:      rec.Field("class"),
		Confidence: 1.0,
	})
	ann.Duration = duration

	fillAnnotationMetadata(ann)

	// Stash the entire source row for traceability; no column is
	// discarded, interpreted or not.
	for _, col := range rec.Columns() {
		ann.Sandbox[col] = rec.SandboxValue(col)
	}

	jam.Annotations = append(jam.Annotations, ann)

	return jam, nil
}

func fillAnnotationMetadata(ann *jams.Annotation) {
	ann.AnnotationMetadata.Curator = curator
	ann.AnnotationMetadata.Annotator = jams.Sandbox{"annotators": annotators}
	ann.AnnotationMetadata.Version = AnnotationVersion
	ann.AnnotationMetadata.Corpus = Corpus
	ann.AnnotationMetadata.AnnotationTools = AnnotationTools
	ann.AnnotationMetadata.AnnotationRules = AnnotationRules
	ann.AnnotationMetadata.DataSource = DataSource
	ann.AnnotationMetadata.Validation = ""
}

// OutputName derives the document filename for a clip: the trailing
// .wav extension is replaced by .jams and nothing else changes
func OutputName(sliceFileName string) string {
	return strings.TrimSuffix(sliceFileName, ".wav") + ".jams"
}
