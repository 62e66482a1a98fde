package domain

import (
	"netmodel/internal/rdf"
)

// Node represents a network device. Hosts and switches are nodes with a
// different kind tag; routers extend Node with routed subnets.
type Node struct {
	BaseAttributes
	HardwareAttributes
	NodeAttributes
	kind Kind
}

// NewNode creates a generic node
func NewNode(id string) *Node {
	return &Node{
		BaseAttributes: BaseAttributes{ID: id},
		kind:           KindNode,
	}
}

// NewHost creates a node typed as a host
func NewHost(id string) *Node {
	n := NewNode(id)
	n.kind = KindHost
	return n
}

// NewSwitch creates a node typed as a switch
func NewSwitch(id string) *Node {
	n := NewNode(id)
	n.kind = KindSwitch
	return n
}

// Kind returns the node's kind tag, defaulting to KindNode for
// zero-value nodes
func (n *Node) Kind() Kind {
	if n.kind == "" {
		return KindNode
	}
	return n.kind
}

// Identity returns the entity ID
func (n *Node) Identity() string {
	return n.ID
}

// AddIface attaches an interface by ID
func (n *Node) AddIface(ifaceID string) {
	n.Ifaces = append(n.Ifaces, ifaceID)
}

// AddNeighbor records an adjacency to another node by ID
func (n *Node) AddNeighbor(nodeID string) {
	n.Neighbors = append(n.Neighbors, nodeID)
}

// EmitSelf adds the node's type, label, and status triples. The type
// reflects the kind tag, so a host asserts Host rather than Node.
func (n *Node) EmitSelf(g *rdf.Graph) error {
	subject := g.Vocab().Node(n.Identity())
	emitHeader(g, subject, n.Kind(), n.ID, n.Description)
	emitStatus(g, subject, n.Status)
	return nil
}

// EmitRelations adds interface and neighbor edges. Interface edges are
// written in both directions, and neighbor adjacency is symmetric; the
// graph's presence check keeps each triple single even when the peer
// entity emits the same pair.
func (n *Node) EmitRelations(g *rdf.Graph) error {
	subject := g.Vocab().Node(n.Identity())
	for _, ifaceID := range n.Ifaces {
		emitRef(g, subject, rdf.PropHasIface, ifaceID)
		emitRef(g, g.Vocab().Node(ifaceID), rdf.PropBelongsToNode, n.Identity())
	}
	for _, neighborID := range n.Neighbors {
		emitRef(g, subject, rdf.PropHasNeighbor, neighborID)
		emitRef(g, g.Vocab().Node(neighborID), rdf.PropHasNeighbor, n.Identity())
	}
	return nil
}

// Router is a node that routes traffic for a set of subnets
type Router struct {
	Node
	RoutesSubnets []string `json:"routes_subnets,omitempty" yaml:"routes_subnets,omitempty"`
}

// NewRouter creates a router node
func NewRouter(id string) *Router {
	return &Router{
		Node: Node{
			BaseAttributes: BaseAttributes{ID: id},
			kind:           KindRouter,
		},
	}
}

// AddRoutedSubnet records a subnet CIDR this router serves
func (r *Router) AddRoutedSubnet(cidr string) {
	r.RoutesSubnets = append(r.RoutesSubnets, cidr)
}

// EmitRelations adds the node edges plus a routesSubnet edge for each
// routed CIDR
func (r *Router) EmitRelations(g *rdf.Graph) error {
	if err := r.Node.EmitRelations(g); err != nil {
		return err
	}
	subject := g.Vocab().Node(r.Identity())
	for _, cidr := range r.RoutesSubnets {
		emitRef(g, subject, rdf.PropRoutesSubnet, SubnetIdentity(cidr))
	}
	return nil
}
