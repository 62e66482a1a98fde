// Package adapter turns live-network discovery results into topology
// entities.
//
// The Scanner sweeps configured targets (CIDR ranges, single addresses,
// or hostnames) and synthesizes a Subnet per scanned range plus a node,
// a first interface, and an address assignment per live host. Device
// kinds are inferred from the open port profile: name servers that also
// answer on web ports look like routers, management-plane-only devices
// look like switches, everything else reachable is a host.
//
// An optional SSH probe connects to hosts exposing port 22 and records
// the hostname they report. Discovery output feeds the same emission
// pipeline as loaded topology documents.
package adapter
