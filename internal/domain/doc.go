// Package domain defines the network topology entities that the emitter
// translates into a labeled graph.
//
// This package contains the fundamental entity types that represent network
// topology concepts, including nodes, interfaces, links, VLANs, subnets, and
// address assignments.
//
// # Entity Model
//
// Every entity satisfies the Entity interface: it has a stable identifier, a
// kind (which doubles as its ontology class name), a graph identity, and two
// emission methods. EmitSelf writes the entity's intrinsic description (type,
// label, comment, status, literal attributes); EmitRelations writes edges to
// other entities. Splitting the two lets an engine materialize every subject
// before any edge refers to it, so output never depends on input order.
//
// # Identity
//
// Entities are connected by identifier, never by pointer. Relation fields hold
// node IDs, link IDs, assignment IDs, subnet CIDRs, or VLAN numbers, and the
// emitter resolves them to graph subjects through SubnetIdentity and
// VLANIdentity. Two entities that reference the same subnet CIDR therefore
// converge on the same subject without sharing memory.
//
// # Kinds
//
// Node is the generic device; Host and Switch are nodes with a different kind
// tag; Router extends Node with routed subnets. VLAN, Subnet, and
// AddressAssignment are purely logical entities with no hardware status.
//
// # Validation
//
// Iface enforces the switchport configuration matrix: an ACCESS port cannot
// carry allowed VLANs, a TRUNK port cannot carry an access VLAN, and an
// UNCONFIGURED port can carry neither. Violations surface as
// ConfigurationError at construction and again at emission time.
//
// # Design Principles
//
// - Plain value semantics, no hidden state
// - No database or external dependencies
// - Relations by identifier, never by pointer
// - Emission is deterministic for a given entity set
package domain
