package codec

import (
	"fmt"
	"io"

	"netmodel/internal/rdf"
)

// Exporter interface for serializing graphs to various formats
type Exporter interface {
	Export(g *rdf.Graph, w io.Writer) error
	Format() string
}

// Importer interface for reading graphs from various formats
type Importer interface {
	Parse(r io.Reader) (*rdf.Graph, error)
	Format() string
}

// ExporterFor returns the exporter registered for a format name
func ExporterFor(format string) (Exporter, error) {
	switch format {
	case "turtle", "ttl":
		return NewTurtleExporter(), nil
	case "ntriples", "nt":
		return NewNTriplesCodec(rdf.DefaultVocabulary()), nil
	case "json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("unknown export format: %s", format)
	}
}

// ImporterFor returns the importer registered for a format name
func ImporterFor(format string, vocab rdf.Vocabulary) (Importer, error) {
	switch format {
	case "ntriples", "nt":
		return NewNTriplesCodec(vocab), nil
	case "json":
		return NewJSONCodec(), nil
	default:
		return nil, fmt.Errorf("unknown import format: %s", format)
	}
}
