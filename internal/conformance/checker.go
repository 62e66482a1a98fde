// Package conformance checks emitted graphs against the network ontology's
// shape constraints.
//
// The checker is the local stand-in for an external schema oracle: it
// verifies that every subject carries the properties its type closure
// requires, with the right cardinality, the right object kind, and the right
// literal datatype. Class constraints are inherited, so a Router is checked
// as a Router, a Node, a HWNetEntity, and a BaseEntity.
package conformance

import (
	"fmt"
	"sort"
	"strings"

	"netmodel/internal/rdf"
)

// Violation is one failed constraint check
type Violation struct {
	Focus   string `json:"focus"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Result is the outcome of checking one graph
type Result struct {
	Conforms   bool        `json:"conforms"`
	Violations []Violation `json:"violations,omitempty"`
}

// Report renders the result as a diagnostic text block
func (r *Result) Report() string {
	var b strings.Builder
	b.WriteString("Validation Report\n")
	fmt.Fprintf(&b, "Conforms: %t\n", r.Conforms)
	if len(r.Violations) > 0 {
		fmt.Fprintf(&b, "Results (%d):\n", len(r.Violations))
		for _, v := range r.Violations {
			b.WriteString("Constraint Violation:\n")
			fmt.Fprintf(&b, "\tFocus Node: %s\n", v.Focus)
			fmt.Fprintf(&b, "\tResult Path: %s\n", v.Path)
			fmt.Fprintf(&b, "\tMessage: %s\n", v.Message)
		}
	}
	return b.String()
}

// Err returns a ConformanceFailure carrying the full report when the graph
// does not conform, nil otherwise
func (r *Result) Err() error {
	if r.Conforms {
		return nil
	}
	return &ConformanceFailure{Report: r.Report()}
}

// ConformanceFailure is the whole-run failure raised when an emitted graph
// violates the schema
type ConformanceFailure struct {
	Report string
}

// Error returns the failure with its diagnostic report
func (e *ConformanceFailure) Error() string {
	return "graph does not conform to schema:\n" + e.Report
}

// Checker validates graphs against a shape document
type Checker struct {
	shapes Shapes
	vocab  rdf.Vocabulary
}

// NewChecker creates a checker using the built-in shapes
func NewChecker(vocab rdf.Vocabulary) *Checker {
	return &Checker{shapes: DefaultShapes(), vocab: vocab}
}

// NewCheckerWithShapes creates a checker for a custom shape document
func NewCheckerWithShapes(vocab rdf.Vocabulary, shapes Shapes) *Checker {
	return &Checker{shapes: shapes, vocab: vocab}
}

// Check validates every typed subject in the graph against the shapes of
// its type closure. Untyped subjects are not constrained; dangling
// references surface as class violations on the referring side.
func (c *Checker) Check(g *rdf.Graph) *Result {
	types := c.collectTypes(g)
	result := &Result{Conforms: true}

	for _, subject := range g.Subjects() {
		declared, ok := types[subject]
		if !ok {
			continue
		}
		for _, class := range c.orderedClosure(declared) {
			shape, ok := c.shapes.Classes[class]
			if !ok {
				continue
			}
			c.checkClass(g, types, subject, shape, result)
		}
	}

	result.Conforms = len(result.Violations) == 0
	return result
}

func (c *Checker) checkClass(g *rdf.Graph, types map[rdf.IRI][]string, subject rdf.IRI, shape ClassShape, result *Result) {
	names := make([]string, 0, len(shape.Properties))
	for name := range shape.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := shape.Properties[name]
		objects := g.Objects(subject, c.propIRI(name))

		report := func(msg string) {
			result.Violations = append(result.Violations, Violation{
				Focus:   c.display(subject),
				Path:    name,
				Message: msg,
			})
		}

		if len(objects) < prop.MinCount {
			report(fmt.Sprintf("expected at least %d value(s), found %d", prop.MinCount, len(objects)))
		}
		if prop.MaxCount > 0 && len(objects) > prop.MaxCount {
			report(fmt.Sprintf("expected at most %d value(s), found %d", prop.MaxCount, len(objects)))
		}

		for _, o := range objects {
			switch prop.Kind {
			case "ref":
				if !o.IsRef() {
					report("expected a node reference, found a literal")
					continue
				}
				if prop.Class != "" && !c.nodeHasClass(types, o.IRI, prop.Class) {
					report(fmt.Sprintf("referenced node %s is not a %s", c.display(o.IRI), prop.Class))
				}
			case "literal":
				if o.IsRef() {
					report("expected a literal, found a node reference")
					continue
				}
			}
			if o.IsRef() {
				continue
			}
			switch prop.Datatype {
			case "integer":
				if o.Datatype != rdf.XSDInteger {
					report(fmt.Sprintf("value %q is not an xsd:integer literal", o.Lex))
				}
			case "string":
				if o.Datatype != rdf.XSDString {
					report(fmt.Sprintf("value %q is not an xsd:string literal", o.Lex))
				}
			case "plain":
				if o.Datatype != "" {
					report(fmt.Sprintf("value %q should be a plain literal", o.Lex))
				}
			}
			if len(prop.In) > 0 && !contains(prop.In, o.Lex) {
				report(fmt.Sprintf("value %q is not one of the allowed values %v", o.Lex, prop.In))
			}
		}
	}
}

// collectTypes maps each subject to the ontology class names it declares
func (c *Checker) collectTypes(g *rdf.Graph) map[rdf.IRI][]string {
	types := make(map[rdf.IRI][]string)
	for _, tr := range g.Triples() {
		if tr.Predicate != rdf.RDFType || !tr.Object.IsRef() {
			continue
		}
		class := string(tr.Object.IRI)
		ns := string(c.vocab.OntologyNS)
		if !strings.HasPrefix(class, ns) {
			continue
		}
		types[tr.Subject] = append(types[tr.Subject], strings.TrimPrefix(class, ns))
	}
	return types
}

// orderedClosure lists the declared classes and their ancestors in a
// stable order
func (c *Checker) orderedClosure(declared []string) []string {
	var ordered []string
	seen := make(map[string]bool)
	add := func(class string) {
		if !seen[class] {
			seen[class] = true
			ordered = append(ordered, class)
		}
	}
	for _, class := range declared {
		add(class)
		for _, ancestor := range c.shapes.Ancestors(class) {
			add(ancestor)
		}
	}
	return ordered
}

func (c *Checker) nodeHasClass(types map[rdf.IRI][]string, node rdf.IRI, class string) bool {
	declared, ok := types[node]
	if !ok {
		return false
	}
	return c.shapes.Closure(declared)[class]
}

// propIRI resolves a shape property name to its IRI. Names are ontology
// properties unless prefixed with rdf: or rdfs:.
func (c *Checker) propIRI(name string) rdf.IRI {
	switch {
	case strings.HasPrefix(name, "rdfs:"):
		return rdf.RDFSNS + rdf.IRI(strings.TrimPrefix(name, "rdfs:"))
	case strings.HasPrefix(name, "rdf:"):
		return rdf.RDFNS + rdf.IRI(strings.TrimPrefix(name, "rdf:"))
	default:
		return c.vocab.Prop(name)
	}
}

// display compacts an IRI to a prefixed form for report text
func (c *Checker) display(iri rdf.IRI) string {
	s := string(iri)
	switch {
	case strings.HasPrefix(s, string(c.vocab.InstanceNS)):
		return "ex:" + strings.TrimPrefix(s, string(c.vocab.InstanceNS))
	case strings.HasPrefix(s, string(c.vocab.OntologyNS)):
		return "network:" + strings.TrimPrefix(s, string(c.vocab.OntologyNS))
	default:
		return s
	}
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
