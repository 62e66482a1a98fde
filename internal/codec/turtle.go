package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"netmodel/internal/rdf"
)

// turtlePrefix binds a prefix label to its namespace
type turtlePrefix struct {
	name string
	ns   rdf.IRI
}

// TurtleExporter serializes graphs as Turtle, grouped by subject with
// prefixed names
type TurtleExporter struct{}

// NewTurtleExporter creates a new Turtle exporter
func NewTurtleExporter() *TurtleExporter {
	return &TurtleExporter{}
}

// Format returns the codec format identifier
func (e *TurtleExporter) Format() string {
	return "turtle"
}

// Export writes the graph as Turtle. Subjects appear in first-emission
// order, one predicate-object pair per line.
func (e *TurtleExporter) Export(g *rdf.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	v := g.Vocab()
	prefixes := []turtlePrefix{
		{"network", v.OntologyNS},
		{"ex", v.InstanceNS},
		{"rdf", rdf.RDFNS},
		{"rdfs", rdf.RDFSNS},
		{"xsd", rdf.XSDNS},
	}
	for _, p := range prefixes {
		fmt.Fprintf(bw, "@prefix %s: <%s> .\n", p.name, p.ns)
	}

	for _, subject := range g.Subjects() {
		fmt.Fprintf(bw, "\n%s", e.term(prefixes, subject))
		for i, tr := range g.TriplesFor(subject) {
			if i > 0 {
				bw.WriteString(" ;\n   ")
			}
			fmt.Fprintf(bw, " %s %s", e.predicate(prefixes, tr.Predicate), e.object(prefixes, tr.Object))
		}
		bw.WriteString(" .\n")
	}
	return bw.Flush()
}

// predicate renders a predicate, using the "a" shorthand for rdf:type
func (e *TurtleExporter) predicate(prefixes []turtlePrefix, iri rdf.IRI) string {
	if iri == rdf.RDFType {
		return "a"
	}
	return e.term(prefixes, iri)
}

// term renders an IRI as a prefixed name when a known namespace matches,
// falling back to an angle-bracketed reference
func (e *TurtleExporter) term(prefixes []turtlePrefix, iri rdf.IRI) string {
	for _, p := range prefixes {
		if p.ns == "" {
			continue
		}
		if strings.HasPrefix(string(iri), string(p.ns)) {
			local := strings.TrimPrefix(string(iri), string(p.ns))
			if safeLocalName(local) {
				return p.name + ":" + local
			}
		}
	}
	return "<" + string(iri) + ">"
}

// object renders the object position: a term for references, a quoted
// literal with optional datatype otherwise
func (e *TurtleExporter) object(prefixes []turtlePrefix, o rdf.Object) string {
	if o.IsRef() {
		return e.term(prefixes, o.IRI)
	}
	lit := quoteLiteral(o.Lex)
	if o.Datatype != "" {
		return lit + "^^" + e.term(prefixes, o.Datatype)
	}
	return lit
}

// safeLocalName reports whether a local name can appear after a prefix
// without escaping. Anything else (IPv6 colons, trailing dots) is written
// as a full IRI reference instead.
func safeLocalName(s string) bool {
	if s == "" || strings.HasSuffix(s, ".") {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}
