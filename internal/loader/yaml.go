// Package loader reads topology documents into domain entities.
package loader

import (
	"fmt"
	"os"

	"netmodel/internal/domain"
	"netmodel/internal/rdf"

	"gopkg.in/yaml.v3"
)

// TopologyYAML represents the YAML file structure
type TopologyYAML struct {
	Version     string           `yaml:"version,omitempty"`
	Description string           `yaml:"description,omitempty"`
	Namespaces  *NamespacesYAML  `yaml:"namespaces,omitempty"`
	VLANs       []VLANYAML       `yaml:"vlans,omitempty"`
	Subnets     []SubnetYAML     `yaml:"subnets,omitempty"`
	Assignments []AssignmentYAML `yaml:"assignments,omitempty"`
	Interfaces  []InterfaceYAML  `yaml:"interfaces,omitempty"`
	Links       []LinkYAML       `yaml:"links,omitempty"`
	Nodes       []NodeYAML       `yaml:"nodes,omitempty"`
}

// NamespacesYAML overrides the graph namespaces for a document
type NamespacesYAML struct {
	Ontology string `yaml:"ontology,omitempty"`
	Instance string `yaml:"instance,omitempty"`
}

// VLANYAML represents a VLAN entry
type VLANYAML struct {
	ID          string   `yaml:"id"`
	VLANID      int      `yaml:"vlan_id"`
	Name        string   `yaml:"name,omitempty"`
	Description string   `yaml:"description,omitempty"`
	Subnets     []string `yaml:"subnets,omitempty"`
}

// SubnetYAML represents a subnet entry
type SubnetYAML struct {
	ID          string `yaml:"id"`
	CIDR        string `yaml:"cidr"`
	Description string `yaml:"description,omitempty"`
}

// AssignmentYAML represents an address assignment entry
type AssignmentYAML struct {
	ID          string `yaml:"id"`
	IP          string `yaml:"ip"`
	Subnet      string `yaml:"subnet,omitempty"`
	Description string `yaml:"description,omitempty"`
}

// InterfaceYAML represents an interface entry
type InterfaceYAML struct {
	ID           string   `yaml:"id"`
	Description  string   `yaml:"description,omitempty"`
	Status       string   `yaml:"status,omitempty"`
	PortMode     string   `yaml:"port_mode,omitempty"`
	AccessVLAN   int      `yaml:"access_vlan,omitempty"`
	AllowedVLANs []int    `yaml:"allowed_vlans,omitempty"`
	Node         string   `yaml:"node,omitempty"`
	Link         string   `yaml:"link,omitempty"`
	Assignments  []string `yaml:"assignments,omitempty"`
}

// LinkYAML represents a link entry
type LinkYAML struct {
	ID          string   `yaml:"id"`
	Description string   `yaml:"description,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	Bandwidth   int      `yaml:"bandwidth,omitempty"`
	Technology  string   `yaml:"technology,omitempty"`
	Cost        int      `yaml:"cost,omitempty"`
	Interfaces  []string `yaml:"interfaces,omitempty"`
}

// NodeYAML represents a node entry
type NodeYAML struct {
	ID          string   `yaml:"id"`
	Kind        string   `yaml:"kind,omitempty"` // node, host, router, switch
	Description string   `yaml:"description,omitempty"`
	Status      string   `yaml:"status,omitempty"`
	Interfaces  []string `yaml:"interfaces,omitempty"`
	Neighbors   []string `yaml:"neighbors,omitempty"`
	Routes      []string `yaml:"routes,omitempty"` // routed subnet CIDRs, routers only
}

// Topology is a parsed topology document: the entity collection in
// document order plus any namespace override it declares
type Topology struct {
	Version     string
	Description string
	Vocabulary  *rdf.Vocabulary
	Entities    []domain.Entity
}

// LoadYAML loads a topology from a YAML file
func LoadYAML(path string) (*Topology, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseYAML(data)
}

// ParseYAML parses a topology from YAML bytes. Entities are validated as
// they are constructed; the first invalid entry fails the load with its
// document position.
func ParseYAML(data []byte) (*Topology, error) {
	var doc TopologyYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return convertYAMLToTopology(&doc)
}

func convertYAMLToTopology(doc *TopologyYAML) (*Topology, error) {
	topo := &Topology{
		Version:     doc.Version,
		Description: doc.Description,
	}

	if doc.Namespaces != nil {
		vocab := rdf.DefaultVocabulary()
		if doc.Namespaces.Ontology != "" {
			vocab.OntologyNS = rdf.IRI(doc.Namespaces.Ontology)
		}
		if doc.Namespaces.Instance != "" {
			vocab.InstanceNS = rdf.IRI(doc.Namespaces.Instance)
		}
		topo.Vocabulary = &vocab
	}

	for idx, v := range doc.VLANs {
		if v.ID == "" {
			return nil, fmt.Errorf("vlans[%d]: missing id", idx)
		}
		if v.VLANID == 0 {
			return nil, fmt.Errorf("vlan %s: missing vlan_id", v.ID)
		}
		vlan := domain.NewVLAN(v.ID, v.VLANID)
		vlan.Name = v.Name
		vlan.Description = v.Description
		vlan.Subnets = v.Subnets
		topo.Entities = append(topo.Entities, vlan)
	}

	for idx, s := range doc.Subnets {
		if s.ID == "" {
			return nil, fmt.Errorf("subnets[%d]: missing id", idx)
		}
		if s.CIDR == "" {
			return nil, fmt.Errorf("subnet %s: missing cidr", s.ID)
		}
		subnet := domain.NewSubnet(s.ID, s.CIDR)
		subnet.Description = s.Description
		topo.Entities = append(topo.Entities, subnet)
	}

	for idx, a := range doc.Assignments {
		if a.ID == "" {
			return nil, fmt.Errorf("assignments[%d]: missing id", idx)
		}
		if a.IP == "" {
			return nil, fmt.Errorf("assignment %s: missing ip", a.ID)
		}
		addr := domain.NewAddressAssignment(a.ID, a.IP)
		addr.OnSubnet = a.Subnet
		addr.Description = a.Description
		topo.Entities = append(topo.Entities, addr)
	}

	for idx, i := range doc.Interfaces {
		if i.ID == "" {
			return nil, fmt.Errorf("interfaces[%d]: missing id", idx)
		}
		status, err := parseStatus(i.Status)
		if err != nil {
			return nil, fmt.Errorf("interface %s: %w", i.ID, err)
		}
		iface := &domain.Iface{
			BaseAttributes:     domain.BaseAttributes{ID: i.ID, Description: i.Description},
			HardwareAttributes: domain.HardwareAttributes{Status: status},
			PortMode:           domain.PortMode(i.PortMode),
			AccessVLAN:         i.AccessVLAN,
			AllowedVLANs:       i.AllowedVLANs,
			BelongsTo:          i.Node,
			ConnectedLink:      i.Link,
			Assignments:        i.Assignments,
		}
		if err := iface.Revalidate(); err != nil {
			return nil, fmt.Errorf("interface %s: %w", i.ID, err)
		}
		topo.Entities = append(topo.Entities, iface)
	}

	for idx, l := range doc.Links {
		if l.ID == "" {
			return nil, fmt.Errorf("links[%d]: missing id", idx)
		}
		status, err := parseStatus(l.Status)
		if err != nil {
			return nil, fmt.Errorf("link %s: %w", l.ID, err)
		}
		link := domain.NewLink(l.ID, l.Interfaces...)
		link.Description = l.Description
		link.Status = status
		link.Bandwidth = l.Bandwidth
		link.Technology = l.Technology
		link.Cost = l.Cost
		topo.Entities = append(topo.Entities, link)
	}

	for idx, n := range doc.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("nodes[%d]: missing id", idx)
		}
		status, err := parseStatus(n.Status)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}

		entity, err := buildNode(n, status)
		if err != nil {
			return nil, err
		}
		topo.Entities = append(topo.Entities, entity)
	}

	return topo, nil
}

func buildNode(n NodeYAML, status domain.HWStatus) (domain.Entity, error) {
	if n.Kind == "router" {
		r := domain.NewRouter(n.ID)
		r.Description = n.Description
		r.Status = status
		r.Ifaces = n.Interfaces
		r.Neighbors = n.Neighbors
		r.RoutesSubnets = n.Routes
		return r, nil
	}

	if len(n.Routes) > 0 {
		return nil, fmt.Errorf("node %s: routes are only valid for kind router", n.ID)
	}

	var node *domain.Node
	switch n.Kind {
	case "", "node":
		node = domain.NewNode(n.ID)
	case "host":
		node = domain.NewHost(n.ID)
	case "switch":
		node = domain.NewSwitch(n.ID)
	default:
		return nil, fmt.Errorf("node %s: unknown kind %q", n.ID, n.Kind)
	}
	node.Description = n.Description
	node.Status = status
	node.Ifaces = n.Interfaces
	node.Neighbors = n.Neighbors
	return node, nil
}

func parseStatus(s string) (domain.HWStatus, error) {
	switch domain.HWStatus(s) {
	case "", domain.StatusOn, domain.StatusOff, domain.StatusAbnormal:
		return domain.HWStatus(s), nil
	default:
		return "", fmt.Errorf("unknown status %q", s)
	}
}
