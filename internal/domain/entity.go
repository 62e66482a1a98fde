package domain

import (
	"netmodel/internal/rdf"
)

// Kind identifies the entity class and doubles as its ontology class name
type Kind string

const (
	KindVLAN              Kind = "VLAN"
	KindSubnet            Kind = "Subnet"
	KindAddressAssignment Kind = "AddressAssignment"
	KindIface             Kind = "Iface"
	KindLink              Kind = "Link"
	KindNode              Kind = "Node"
	KindHost              Kind = "Host"
	KindRouter            Kind = "Router"
	KindSwitch            Kind = "Switch"
)

// HWStatus represents the operational status of a hardware entity
type HWStatus string

const (
	StatusOn       HWStatus = "ON"
	StatusOff      HWStatus = "OFF"
	StatusAbnormal HWStatus = "ABN"
)

// Entity is implemented by every topology element that can describe itself
// as graph triples.
//
// EmitSelf writes the entity's intrinsic description: its type, label,
// optional comment, and literal attributes. EmitRelations writes edges to
// other entities, resolved by identity. An engine runs EmitSelf for every
// entity before any EmitRelations call, so relations always target subjects
// that already exist.
type Entity interface {
	// EntityID returns the stable identifier the entity was created with
	EntityID() string

	// Kind returns the entity class
	Kind() Kind

	// Identity returns the local name of the entity's graph subject
	Identity() string

	// EmitSelf adds the entity's intrinsic triples to the graph
	EmitSelf(g *rdf.Graph) error

	// EmitRelations adds the entity's relationship triples to the graph
	EmitRelations(g *rdf.Graph) error
}

// BaseAttributes carries the fields shared by every entity
type BaseAttributes struct {
	ID          string `json:"id" yaml:"id"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// EntityID returns the entity identifier
func (b BaseAttributes) EntityID() string {
	return b.ID
}

// HardwareAttributes carries the fields shared by hardware entities
type HardwareAttributes struct {
	Status HWStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// NormalizedStatus returns the status, defaulting to ON when unset
func (h HardwareAttributes) NormalizedStatus() HWStatus {
	if h.Status == "" {
		return StatusOn
	}
	return h.Status
}

// NodeAttributes carries the relation fields shared by all node kinds
type NodeAttributes struct {
	Ifaces    []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Neighbors []string `json:"neighbors,omitempty" yaml:"neighbors,omitempty"`
}

// emitHeader adds the type, label, and optional comment triples every
// entity starts with
func emitHeader(g *rdf.Graph, subject rdf.IRI, kind Kind, label, comment string) {
	g.Add(rdf.Triple{Subject: subject, Predicate: rdf.RDFType, Object: rdf.Ref(g.Vocab().Class(string(kind)))})
	g.Add(rdf.Triple{Subject: subject, Predicate: rdf.RDFSLabel, Object: rdf.Text(label)})
	if comment != "" {
		g.Add(rdf.Triple{Subject: subject, Predicate: rdf.RDFSComment, Object: rdf.Text(comment)})
	}
}

// emitStatus adds the HWStatus triple for a hardware entity
func emitStatus(g *rdf.Graph, subject rdf.IRI, status HWStatus) {
	if status == "" {
		status = StatusOn
	}
	g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropHWStatus), Object: rdf.Text(string(status))})
}

// emitRef adds an edge from subject to the entity named by identity
func emitRef(g *rdf.Graph, subject rdf.IRI, prop string, identity string) {
	g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(prop), Object: rdf.Ref(g.Vocab().Node(identity))})
}
