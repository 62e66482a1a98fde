package rdf

import "strconv"

// IRI is an absolute IRI naming a graph node, a predicate, or a datatype
type IRI string

// Standard namespaces
const (
	RDFNS  IRI = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	RDFSNS IRI = "http://www.w3.org/2000/01/rdf-schema#"
	XSDNS  IRI = "http://www.w3.org/2001/XMLSchema#"
)

// XSD datatype IRIs used for typed literals
const (
	XSDString  IRI = XSDNS + "string"
	XSDInteger IRI = XSDNS + "integer"
)

// Core RDF/RDFS terms used during emission
const (
	RDFType     IRI = RDFNS + "type"
	RDFSLabel   IRI = RDFSNS + "label"
	RDFSComment IRI = RDFSNS + "comment"
)

// ObjectKind discriminates the object position of a triple
type ObjectKind string

const (
	ObjectRef     ObjectKind = "ref"     // reference to another graph node
	ObjectLiteral ObjectKind = "literal" // plain or typed literal value
)

// Object is the third position of a triple: a node reference or a literal.
// Objects are comparable values so triples can back a set.
type Object struct {
	Kind     ObjectKind `json:"kind"`
	IRI      IRI        `json:"iri,omitempty"`      // set when Kind == ObjectRef
	Lex      string     `json:"value,omitempty"`    // literal lexical form
	Datatype IRI        `json:"datatype,omitempty"` // empty for plain literals
}

// Ref returns an object referencing another graph node
func Ref(iri IRI) Object {
	return Object{Kind: ObjectRef, IRI: iri}
}

// Text returns a plain (untyped) string literal
func Text(s string) Object {
	return Object{Kind: ObjectLiteral, Lex: s}
}

// TypedText returns an xsd:string typed literal
func TypedText(s string) Object {
	return Object{Kind: ObjectLiteral, Lex: s, Datatype: XSDString}
}

// Integer returns an xsd:integer typed literal
func Integer(n int) Object {
	return Object{Kind: ObjectLiteral, Lex: strconv.Itoa(n), Datatype: XSDInteger}
}

// IsRef reports whether the object references a graph node
func (o Object) IsRef() bool {
	return o.Kind == ObjectRef
}

// Triple is one (subject, predicate, object) fact
type Triple struct {
	Subject   IRI    `json:"subject"`
	Predicate IRI    `json:"predicate"`
	Object    Object `json:"object"`
}
