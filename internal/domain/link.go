package domain

import (
	"netmodel/internal/rdf"
)

// Link represents a physical or logical connection between interfaces
type Link struct {
	BaseAttributes
	HardwareAttributes
	Bandwidth  int      `json:"bandwidth,omitempty" yaml:"bandwidth,omitempty"`
	Technology string   `json:"technology,omitempty" yaml:"technology,omitempty"`
	Cost       int      `json:"cost,omitempty" yaml:"cost,omitempty"`
	Ifaces     []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
}

// NewLink creates a link between the given interface IDs
func NewLink(id string, ifaceIDs ...string) *Link {
	return &Link{
		BaseAttributes: BaseAttributes{ID: id},
		Ifaces:         ifaceIDs,
	}
}

// Kind returns KindLink
func (l *Link) Kind() Kind {
	return KindLink
}

// Identity returns the entity ID
func (l *Link) Identity() string {
	return l.ID
}

// EmitSelf adds the link's type, label, status, and attribute triples.
// Bandwidth and cost are emitted only when positive; zero means unset.
func (l *Link) EmitSelf(g *rdf.Graph) error {
	subject := g.Vocab().Node(l.Identity())
	emitHeader(g, subject, KindLink, l.ID, l.Description)
	emitStatus(g, subject, l.Status)
	if l.Bandwidth > 0 {
		g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropBandwidth), Object: rdf.Integer(l.Bandwidth)})
	}
	if l.Technology != "" {
		g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropTechnology), Object: rdf.Text(l.Technology)})
	}
	if l.Cost > 0 {
		g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropCost), Object: rdf.Integer(l.Cost)})
	}
	return nil
}

// EmitRelations adds an edge to each attached interface plus the reverse
// edge from the interface back to the link
func (l *Link) EmitRelations(g *rdf.Graph) error {
	subject := g.Vocab().Node(l.Identity())
	for _, ifaceID := range l.Ifaces {
		emitRef(g, subject, rdf.PropHasInterface, ifaceID)
		emitRef(g, g.Vocab().Node(ifaceID), rdf.PropConnectedToLink, l.Identity())
	}
	return nil
}
