package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"netmodel/internal/rdf"
)

// jsonDocument mirrors the wire structure of an exported graph
type jsonDocument struct {
	Namespaces jsonNamespaces `json:"namespaces"`
	Count      int            `json:"count"`
	Triples    []rdf.Triple   `json:"triples"`
}

type jsonNamespaces struct {
	Ontology rdf.IRI `json:"ontology"`
	Instance rdf.IRI `json:"instance"`
}

// JSONCodec handles JSON import/export
type JSONCodec struct{}

// NewJSONCodec creates a new JSON codec
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{}
}

// Format returns the codec format identifier
func (c *JSONCodec) Format() string {
	return "json"
}

// Parse imports a graph from JSON, restoring the namespaces recorded in
// the document
func (c *JSONCodec) Parse(r io.Reader) (*rdf.Graph, error) {
	var doc jsonDocument
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	vocab := rdf.Vocabulary{OntologyNS: doc.Namespaces.Ontology, InstanceNS: doc.Namespaces.Instance}
	if vocab.OntologyNS == "" || vocab.InstanceNS == "" {
		vocab = rdf.DefaultVocabulary()
	}

	g := rdf.NewGraph(vocab)
	for _, tr := range doc.Triples {
		g.Add(tr)
	}
	return g, nil
}

// Export writes the graph as an indented JSON document
func (c *JSONCodec) Export(g *rdf.Graph, w io.Writer) error {
	v := g.Vocab()
	doc := jsonDocument{
		Namespaces: jsonNamespaces{Ontology: v.OntologyNS, Instance: v.InstanceNS},
		Count:      g.Len(),
		Triples:    g.Triples(),
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
