package domain

import (
	"fmt"

	"netmodel/internal/rdf"
)

// Subnet represents an IP subnet identified by its CIDR notation
type Subnet struct {
	BaseAttributes
	CIDR string `json:"cidr" yaml:"cidr"`
}

// NewSubnet creates a subnet for the given CIDR
func NewSubnet(id, cidr string) *Subnet {
	return &Subnet{
		BaseAttributes: BaseAttributes{ID: id},
		CIDR:           cidr,
	}
}

// Kind returns KindSubnet
func (s *Subnet) Kind() Kind {
	return KindSubnet
}

// Identity returns the canonical subject name derived from the CIDR,
// not from the entity ID
func (s *Subnet) Identity() string {
	return SubnetIdentity(s.CIDR)
}

// EmitSelf adds the subnet's type, label, and CIDR triples
func (s *Subnet) EmitSelf(g *rdf.Graph) error {
	if s.CIDR == "" {
		return NewConfigurationError(s.ID, "cidr", fmt.Sprintf("subnet must have a cidr (Subnet ID: %s)", s.ID))
	}
	subject := g.Vocab().Node(s.Identity())
	emitHeader(g, subject, KindSubnet, s.Identity(), s.Description)
	g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropSubnetCIDR), Object: rdf.TypedText(s.CIDR)})
	return nil
}

// EmitRelations is a no-op; subnets carry no outgoing edges
func (s *Subnet) EmitRelations(g *rdf.Graph) error {
	return nil
}

// VLAN represents a virtual LAN identified by its VLAN number
type VLAN struct {
	BaseAttributes
	VLANID  int      `json:"vlan_id" yaml:"vlan_id"`
	Name    string   `json:"name,omitempty" yaml:"name,omitempty"`
	Subnets []string `json:"subnets,omitempty" yaml:"subnets,omitempty"`
}

// NewVLAN creates a VLAN with the given number
func NewVLAN(id string, vlanID int) *VLAN {
	return &VLAN{
		BaseAttributes: BaseAttributes{ID: id},
		VLANID:         vlanID,
	}
}

// Kind returns KindVLAN
func (v *VLAN) Kind() Kind {
	return KindVLAN
}

// Identity returns the canonical subject name derived from the VLAN
// number, not from the entity ID
func (v *VLAN) Identity() string {
	return VLANIdentity(v.VLANID)
}

// Label returns the display label, e.g. "VLAN 100 (corp)" for a named VLAN
func (v *VLAN) Label() string {
	if v.Name != "" {
		return fmt.Sprintf("VLAN %d (%s)", v.VLANID, v.Name)
	}
	return fmt.Sprintf("VLAN %d", v.VLANID)
}

// EmitSelf adds the VLAN's type, label, number, and name triples
func (v *VLAN) EmitSelf(g *rdf.Graph) error {
	subject := g.Vocab().Node(v.Identity())
	emitHeader(g, subject, KindVLAN, v.Label(), v.Description)
	g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropVlanID), Object: rdf.Integer(v.VLANID)})
	if v.Name != "" {
		g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropVlanName), Object: rdf.Text(v.Name)})
	}
	return nil
}

// EmitRelations adds hasSubnet edges for each associated subnet CIDR
func (v *VLAN) EmitRelations(g *rdf.Graph) error {
	subject := g.Vocab().Node(v.Identity())
	for _, cidr := range v.Subnets {
		emitRef(g, subject, rdf.PropHasSubnet, SubnetIdentity(cidr))
	}
	return nil
}

// AddressAssignment represents an IP address bound to a subnet
type AddressAssignment struct {
	BaseAttributes
	IPValue  string `json:"ip_value" yaml:"ip_value"`
	OnSubnet string `json:"on_subnet,omitempty" yaml:"on_subnet,omitempty"`
}

// NewAddressAssignment creates an address assignment for the given IP
func NewAddressAssignment(id, ipValue string) *AddressAssignment {
	return &AddressAssignment{
		BaseAttributes: BaseAttributes{ID: id},
		IPValue:        ipValue,
	}
}

// Kind returns KindAddressAssignment
func (a *AddressAssignment) Kind() Kind {
	return KindAddressAssignment
}

// Identity returns the entity ID
func (a *AddressAssignment) Identity() string {
	return a.ID
}

// EmitSelf adds the assignment's type, label, and IP value triples
func (a *AddressAssignment) EmitSelf(g *rdf.Graph) error {
	subject := g.Vocab().Node(a.Identity())
	emitHeader(g, subject, KindAddressAssignment, a.ID, a.Description)
	g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropIPValue), Object: rdf.TypedText(a.IPValue)})
	return nil
}

// EmitRelations adds the onSubnet edge when a subnet CIDR is set
func (a *AddressAssignment) EmitRelations(g *rdf.Graph) error {
	if a.OnSubnet == "" {
		return nil
	}
	subject := g.Vocab().Node(a.Identity())
	emitRef(g, subject, rdf.PropOnSubnet, SubnetIdentity(a.OnSubnet))
	return nil
}
