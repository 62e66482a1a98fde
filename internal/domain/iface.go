package domain

import (
	"fmt"

	"netmodel/internal/rdf"
)

// PortMode represents the switchport configuration of an interface
type PortMode string

const (
	PortModeAccess       PortMode = "ACCESS"
	PortModeTrunk        PortMode = "TRUNK"
	PortModeUnconfigured PortMode = "UNCONFIGURED"
)

// Iface represents a network interface on a node
type Iface struct {
	BaseAttributes
	HardwareAttributes
	PortMode      PortMode `json:"port_mode,omitempty" yaml:"port_mode,omitempty"`
	AccessVLAN    int      `json:"access_vlan,omitempty" yaml:"access_vlan,omitempty"`
	AllowedVLANs  []int    `json:"allowed_vlans,omitempty" yaml:"allowed_vlans,omitempty"`
	BelongsTo     string   `json:"belongs_to,omitempty" yaml:"belongs_to,omitempty"`
	ConnectedLink string   `json:"connected_link,omitempty" yaml:"connected_link,omitempty"`
	Assignments   []string `json:"assignments,omitempty" yaml:"assignments,omitempty"`
}

// NewIface creates an interface in the given port mode and validates its
// VLAN configuration. An empty mode means UNCONFIGURED.
func NewIface(id string, mode PortMode) (*Iface, error) {
	i := &Iface{
		BaseAttributes: BaseAttributes{ID: id},
		PortMode:       mode,
	}
	if err := i.Revalidate(); err != nil {
		return nil, err
	}
	return i, nil
}

// Kind returns KindIface
func (i *Iface) Kind() Kind {
	return KindIface
}

// Identity returns the entity ID
func (i *Iface) Identity() string {
	return i.ID
}

// Mode returns the port mode, defaulting to UNCONFIGURED when unset
func (i *Iface) Mode() PortMode {
	if i.PortMode == "" {
		return PortModeUnconfigured
	}
	return i.PortMode
}

// Revalidate checks the VLAN fields against the port mode.
//
// An ACCESS port cannot carry allowed VLANs, a TRUNK port cannot carry an
// access VLAN, and any other mode can carry neither. An ACCESS port with no
// access VLAN set is legal. The error messages name the offending field and
// the interface so a misconfigured topology document points straight at its
// own line.
func (i *Iface) Revalidate() error {
	switch i.Mode() {
	case PortModeAccess:
		if len(i.AllowedVLANs) > 0 {
			return NewConfigurationError(i.ID, "allowed_vlans",
				fmt.Sprintf("allowed_vlans cannot be set when port_mode is ACCESS (Interface ID: %s)", i.ID))
		}
	case PortModeTrunk:
		if i.AccessVLAN != 0 {
			return NewConfigurationError(i.ID, "access_vlan",
				fmt.Sprintf("access_vlan cannot be set when port_mode is TRUNK (Interface ID: %s)", i.ID))
		}
	default:
		if i.AccessVLAN != 0 {
			return NewConfigurationError(i.ID, "access_vlan",
				fmt.Sprintf("access_vlan cannot be set when port_mode is %s (Interface ID: %s)", i.Mode(), i.ID))
		}
		if len(i.AllowedVLANs) > 0 {
			return NewConfigurationError(i.ID, "allowed_vlans",
				fmt.Sprintf("allowed_vlans cannot be set when port_mode is %s (Interface ID: %s)", i.Mode(), i.ID))
		}
	}
	return nil
}

// EmitSelf adds the interface's type, label, status, and port mode triples.
// The port mode is emitted even when UNCONFIGURED so every interface states
// its switchport role explicitly.
func (i *Iface) EmitSelf(g *rdf.Graph) error {
	if err := i.Revalidate(); err != nil {
		return err
	}
	subject := g.Vocab().Node(i.Identity())
	emitHeader(g, subject, KindIface, i.ID, i.Description)
	emitStatus(g, subject, i.Status)
	g.Add(rdf.Triple{Subject: subject, Predicate: g.Vocab().Prop(rdf.PropPortMode), Object: rdf.Text(string(i.Mode()))})
	return nil
}

// EmitRelations adds the interface's edges: its owning node, its link, its
// address assignments, and its VLAN bindings. Node and link edges are written
// in both directions; the graph's presence check keeps each direction single
// even when the other endpoint also emits it.
func (i *Iface) EmitRelations(g *rdf.Graph) error {
	if err := i.Revalidate(); err != nil {
		return err
	}
	subject := g.Vocab().Node(i.Identity())

	if i.BelongsTo != "" {
		emitRef(g, subject, rdf.PropBelongsToNode, i.BelongsTo)
		emitRef(g, g.Vocab().Node(i.BelongsTo), rdf.PropHasIface, i.Identity())
	}
	if i.ConnectedLink != "" {
		emitRef(g, subject, rdf.PropConnectedToLink, i.ConnectedLink)
		emitRef(g, g.Vocab().Node(i.ConnectedLink), rdf.PropHasInterface, i.Identity())
	}
	for _, assignment := range i.Assignments {
		emitRef(g, subject, rdf.PropHasAddressAssignment, assignment)
	}

	switch i.Mode() {
	case PortModeAccess:
		if i.AccessVLAN != 0 {
			emitRef(g, subject, rdf.PropAccessVLAN, VLANIdentity(i.AccessVLAN))
		}
	case PortModeTrunk:
		for _, vlanID := range i.AllowedVLANs {
			emitRef(g, subject, rdf.PropAllowedVLAN, VLANIdentity(vlanID))
		}
	}
	return nil
}
