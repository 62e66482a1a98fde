package rdf

// Default namespaces for the network ontology and its instance data.
// A deployment can override both through configuration; the resulting
// Vocabulary is built once at startup and treated as read-only after.
const (
	DefaultOntologyNS IRI = "http://www.example.org/network-ontology#"
	DefaultInstanceNS IRI = "http://www.example.org/network-instance#"
)

// Ontology class names. These are external vocabulary: verbatim and
// case-sensitive, or the downstream shape checker rejects the graph.
const (
	ClassBaseEntity        = "BaseEntity"
	ClassHWNetEntity       = "HWNetEntity"
	ClassLogicalEntity     = "LogicalEntity"
	ClassVLAN              = "VLAN"
	ClassSubnet            = "Subnet"
	ClassAddressAssignment = "AddressAssignment"
	ClassIface             = "Iface"
	ClassLink              = "Link"
	ClassNode              = "Node"
	ClassHost              = "Host"
	ClassRouter            = "Router"
	ClassSwitch            = "Switch"
)

// Ontology property names. Casing is inherited from the published ontology
// and is intentionally mixed (HWStatus vs vlanId); do not normalize.
const (
	// PropHWStatus is the operational status literal of hardware entities.
	PropHWStatus = "HWStatus"

	// PropVlanID is the numeric VLAN identifier (xsd:integer).
	PropVlanID = "vlanId"

	// PropVlanName is the optional human VLAN name.
	PropVlanName = "vlanName"

	// PropHasSubnet links a VLAN to an associated subnet.
	PropHasSubnet = "hasSubnet"

	// PropSubnetCIDR is the subnet CIDR literal (xsd:string).
	PropSubnetCIDR = "subnetCidr"

	// PropIPValue is the assigned IP literal (xsd:string).
	PropIPValue = "ipValue"

	// PropOnSubnet links an address assignment to its subnet.
	PropOnSubnet = "onSubnet"

	// PropHasAddressAssignment links an interface to an address assignment.
	PropHasAddressAssignment = "hasAddressAssignment"

	// PropBelongsToNode links an interface to its owning node.
	// Inverse of PropHasIface.
	PropBelongsToNode = "BelongsToNode"

	// PropHasIface links a node to an owned interface.
	PropHasIface = "HasIFace"

	// PropConnectedToLink links an interface to the link it attaches to.
	// Inverse of PropHasInterface.
	PropConnectedToLink = "ConnectedToLink"

	// PropHasInterface links a link to an attached interface.
	PropHasInterface = "hasInterface"

	// PropPortMode is the switching mode literal of an interface.
	PropPortMode = "portMode"

	// PropAccessVLAN links an ACCESS interface to its single VLAN.
	PropAccessVLAN = "accessVlan"

	// PropAllowedVLAN links a TRUNK interface to a carried VLAN.
	PropAllowedVLAN = "allowedVlan"

	// PropBandwidth is the optional link bandwidth (xsd:integer).
	PropBandwidth = "Bandwidth"

	// PropTechnology is the optional link technology label.
	PropTechnology = "Technology"

	// PropCost is the optional link routing cost (xsd:integer).
	PropCost = "Cost"

	// PropHasNeighbor links a node to an adjacent node. Symmetric: the
	// emitted graph carries the edge in both directions.
	PropHasNeighbor = "HasNeighbor"

	// PropRoutesSubnet links a router to a subnet it routes.
	PropRoutesSubnet = "routesSubnet"
)

// Vocabulary binds the ontology vocabulary to a concrete namespace pair.
// It is a small value type; copy it freely, never mutate a shared one.
type Vocabulary struct {
	OntologyNS IRI `json:"ontology_ns" yaml:"ontology_ns"`
	InstanceNS IRI `json:"instance_ns" yaml:"instance_ns"`
}

// DefaultVocabulary returns the vocabulary bound to the published namespaces
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		OntologyNS: DefaultOntologyNS,
		InstanceNS: DefaultInstanceNS,
	}
}

// Node returns the instance IRI for a graph node name
func (v Vocabulary) Node(name string) IRI {
	return v.InstanceNS + IRI(name)
}

// Class returns the ontology IRI for a class name
func (v Vocabulary) Class(name string) IRI {
	return v.OntologyNS + IRI(name)
}

// Prop returns the ontology IRI for a property name
func (v Vocabulary) Prop(name string) IRI {
	return v.OntologyNS + IRI(name)
}
